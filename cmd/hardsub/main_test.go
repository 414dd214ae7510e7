package main

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"thirdcoast.systems/hardsub/pkg/ffmpeg"
)

func TestExitStatusPlainError(t *testing.T) {
	if got := exitStatus(errors.New("boom")); got != 1 {
		t.Fatalf("exitStatus = %d, want 1", got)
	}
}

func TestExitStatusSignalTermination(t *testing.T) {
	err := &ffmpeg.Error{Err: errors.New("signal: killed")}
	if got := exitStatus(err); got != 1 {
		t.Fatalf("exitStatus = %d, want 1", got)
	}
}

func TestExitStatusPropagatesEncoderCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	runErr := exec.Command("sh", "-c", "exit 3").Run()
	var ee *exec.ExitError
	if !errors.As(runErr, &ee) {
		t.Fatalf("expected an exit error, got %v", runErr)
	}

	err := fmt.Errorf("concatenating: %w", &ffmpeg.Error{Err: runErr})
	if got := exitStatus(err); got != 3 {
		t.Fatalf("exitStatus = %d, want 3", got)
	}
}
