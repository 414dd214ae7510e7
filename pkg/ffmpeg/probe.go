package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"thirdcoast.systems/hardsub/pkg/mediainfo"
)

// Prober runs ffprobe and decodes its JSON stream report.
type Prober struct {
	// Path to the ffprobe executable. Defaults to "ffprobe" (PATH lookup).
	Path string

	execFn func(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// NewProber returns a prober that resolves ffprobe from PATH.
func NewProber() *Prober {
	return &Prober{Path: "ffprobe"}
}

// DefaultProber backs the package-level Probe.
var DefaultProber = NewProber()

// PathOrDefault returns the configured path or "ffprobe" if unset.
func (p *Prober) PathOrDefault() string {
	if strings.TrimSpace(p.Path) == "" {
		return "ffprobe"
	}
	return p.Path
}

func (p *Prober) exec(ctx context.Context, args ...string) (stdout []byte, stderr []byte, err error) {
	name := p.PathOrDefault()

	if p.execFn != nil {
		return p.execFn(ctx, name, args...)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.Bytes(), errBuf.Bytes(), err
}

// Probe runs ffprobe on path and decodes the stream report. Probe is
// deliberately forgiving of a misbehaving prober: stderr chatter is
// logged and the document parse is attempted regardless of exit
// status, and output that cannot be decoded yields an empty report
// rather than an error. Probe fails only when the prober cannot be
// launched or the context ends first.
func (p *Prober) Probe(ctx context.Context, path string) (*mediainfo.Report, error) {
	args := []string{
		"-hide_banner",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}

	stdout, stderr, err := p.exec(ctx, args...)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		slog.Warn("ffprobe: stderr output", "file", path, "stderr", msg)
	}
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			return nil, fmt.Errorf("ffprobe: %w", err)
		}
		slog.Warn("ffprobe: non-zero exit, parsing output anyway", "file", path, "error", err)
	}

	report, err := mediainfo.Decode(bytes.TrimSpace(stdout))
	if err != nil {
		slog.Warn("ffprobe: unreadable output, continuing with empty report", "file", path, "error", err)
		return &mediainfo.Report{}, nil
	}
	return report, nil
}

// Probe runs ffprobe on path via the DefaultProber.
func Probe(ctx context.Context, path string) (*mediainfo.Report, error) {
	return DefaultProber.Probe(ctx, path)
}
