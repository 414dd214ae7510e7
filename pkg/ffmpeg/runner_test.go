package ffmpeg

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessageKeepsLastLines(t *testing.T) {
	e := &Error{
		Args:   []string{"-i", "in.mp4", "out.mp4"},
		Stderr: "line one\nline two\nline three\nline four\nline five",
		Err:    errors.New("exit status 1"),
	}

	msg := e.Error()
	if strings.Contains(msg, "line one") || strings.Contains(msg, "line two") {
		t.Fatalf("expected only trailing stderr lines, got %q", msg)
	}
	for _, want := range []string{"line three", "line four", "line five", "exit status 1"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestErrorMessageEmptyStderr(t *testing.T) {
	e := &Error{Err: errors.New("exit status 1")}
	if got := e.Error(); got != "ffmpeg: exit status 1" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := &Error{Err: cause}
	if !errors.Is(e, cause) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
}

func TestErrorExitCodeWithoutExit(t *testing.T) {
	e := &Error{Err: errors.New("signal: killed")}
	if got := e.ExitCode(); got != 0 {
		t.Fatalf("expected 0 for non-exit error, got %d", got)
	}
}

func TestErrorCommand(t *testing.T) {
	e := &Error{Args: []string{"-i", "in.mp4", "out.mp4"}}
	want := BinPath + " -i in.mp4 out.mp4"
	if got := e.Command(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestErrorFullStderr(t *testing.T) {
	e := &Error{Stderr: "frame=1\nframe=2\nconversion failed"}
	if got := e.FullStderr(); got != e.Stderr {
		t.Fatalf("expected full stderr, got %q", got)
	}
}
