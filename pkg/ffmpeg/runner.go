package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// BinPath is the ffmpeg executable Start launches. Defaults to PATH
// lookup; main wires it from configuration.
var BinPath = "ffmpeg"

// Process is a launched encoder with lifecycle control. Stderr is
// captured for the lifetime of the process so failures can carry the
// encoder's own diagnostics.
type Process struct {
	cmd    *exec.Cmd
	args   []string
	pid    int
	done   chan struct{}
	err    error
	stderr bytes.Buffer
}

// Start launches ffmpeg with the given argument vector. When progress
// is non-nil, stdout is parsed for -progress updates and the channel
// is closed once the process exits; the argv must then include the
// progress flags (see buildWithProgress). The caller must Wait or
// Kill the returned Process.
func Start(ctx context.Context, args []string, progress chan<- Progress) (*Process, error) {
	p := &Process{
		cmd:  exec.CommandContext(ctx, BinPath, args...),
		args: args,
		done: make(chan struct{}),
	}
	p.cmd.Stderr = &p.stderr

	var stdout io.ReadCloser
	if progress != nil {
		pipe, err := p.cmd.StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("ffmpeg: stdout pipe: %w", err)
		}
		stdout = pipe
	}

	if err := p.cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg: failed to start: %w", err)
	}
	p.pid = p.cmd.Process.Pid

	go p.supervise(stdout, progress)

	return p, nil
}

// supervise drains progress output, reaps the process, and records
// the outcome before signaling done.
func (p *Process) supervise(stdout io.Reader, progress chan<- Progress) {
	defer close(p.done)

	if progress != nil {
		ParseProgressOutput(bufio.NewScanner(stdout), progress)
	}

	if err := p.cmd.Wait(); err != nil {
		p.err = &Error{Args: p.args, Stderr: p.stderr.String(), Err: err}
	}

	if progress != nil {
		close(progress)
	}
}

// PID returns the launched process's ID.
func (p *Process) PID() int { return p.pid }

// Wait blocks until the process exits and returns its outcome.
func (p *Process) Wait() error {
	<-p.done
	return p.err
}

// Kill forcibly terminates the process.
func (p *Process) Kill() error {
	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

// Signal delivers sig to the process.
func (p *Process) Signal(sig os.Signal) error {
	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Signal(sig)
}

// Done returns a channel that closes when the process exits.
func (p *Process) Done() <-chan struct{} { return p.done }

// Stderr returns the captured stderr, complete once Wait has
// returned.
func (p *Process) Stderr() string { return p.stderr.String() }

// run launches and waits, the blocking form of Start.
func run(ctx context.Context, args []string, progress chan<- Progress) error {
	proc, err := Start(ctx, args, progress)
	if err != nil {
		return err
	}
	return proc.Wait()
}

// RunResult is the outcome of a captured invocation.
type RunResult struct {
	// Logs is the full encoder stderr, populated on success and
	// failure alike.
	Logs string
	// Err is non-nil when the encoder exited nonzero.
	Err error
}

// runCapture launches, waits, and hands back the encoder's stderr.
func runCapture(ctx context.Context, args []string) RunResult {
	proc, err := Start(ctx, args, nil)
	if err != nil {
		return RunResult{Err: err}
	}
	waitErr := proc.Wait()
	return RunResult{Logs: proc.Stderr(), Err: waitErr}
}

// Error is an encoder failure carrying the argv and captured stderr.
type Error struct {
	Args   []string
	Stderr string
	Err    error
}

// Error keeps the message readable by quoting only the tail of the
// encoder's stderr; FullStderr has the rest.
func (e *Error) Error() string {
	lines := strings.Split(strings.TrimSpace(e.Stderr), "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	if tail := strings.Join(lines, "\n"); tail != "" {
		return fmt.Sprintf("ffmpeg: %v: %s", e.Err, tail)
	}
	return fmt.Sprintf("ffmpeg: %v", e.Err)
}

// Unwrap exposes the underlying exec error.
func (e *Error) Unwrap() error { return e.Err }

// ExitCode returns the encoder's exit status, or 0 when the process
// did not run to a normal exit (start failures, kill signals).
func (e *Error) ExitCode() int {
	var ee *exec.ExitError
	if errors.As(e.Err, &ee) && ee.ExitCode() > 0 {
		return ee.ExitCode()
	}
	return 0
}

// FullStderr returns everything the encoder wrote to stderr.
func (e *Error) FullStderr() string { return e.Stderr }

// Command reconstructs the invocation for log output.
func (e *Error) Command() string {
	return BinPath + " " + strings.Join(e.Args, " ")
}
