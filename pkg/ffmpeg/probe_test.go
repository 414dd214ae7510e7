package ffmpeg

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

const sampleProbeJSON = `{
	"streams": [
		{"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720, "r_frame_rate": "30/1", "bit_rate": "2500000"},
		{"index": 1, "codec_type": "audio", "codec_name": "aac", "sample_rate": "48000", "bit_rate": "128000"}
	],
	"format": {"format_name": "matroska,webm", "duration": "12.5"}
}`

func TestProbe_ParsesReport(t *testing.T) {
	p := NewProber()
	p.execFn = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(sampleProbeJSON), nil, nil
	}

	report, err := p.Probe(context.Background(), "input.mkv")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(report.Streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(report.Streams))
	}
	if got := report.VideoCodec(); got != "h264" {
		t.Fatalf("expected video codec h264, got %q", got)
	}
	if got := report.AudioCodec(); got != "aac" {
		t.Fatalf("expected audio codec aac, got %q", got)
	}
}

func TestProbe_ProberInvocation(t *testing.T) {
	var gotName string
	var gotArgs []string

	p := &Prober{Path: "/opt/ffprobe"}
	p.execFn = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		gotName = name
		gotArgs = args
		return []byte(`{}`), nil, nil
	}

	if _, err := p.Probe(context.Background(), "input.mkv"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotName != "/opt/ffprobe" {
		t.Fatalf("expected configured path, got %q", gotName)
	}

	want := "-hide_banner -v quiet -print_format json -show_format -show_streams input.mkv"
	if got := strings.Join(gotArgs, " "); got != want {
		t.Fatalf("unexpected args:\n got %q\nwant %q", got, want)
	}
}

func TestProbe_StderrIsAdvisory(t *testing.T) {
	p := NewProber()
	p.execFn = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(sampleProbeJSON), []byte("deprecated option in use\n"), nil
	}

	report, err := p.Probe(context.Background(), "input.mkv")
	if err != nil {
		t.Fatalf("expected stderr chatter to be non-fatal, got %v", err)
	}
	if len(report.Streams) != 2 {
		t.Fatalf("expected parse to proceed despite stderr, got %d streams", len(report.Streams))
	}
}

func TestProbe_GarbageOutputYieldsEmptyReport(t *testing.T) {
	p := NewProber()
	p.execFn = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte("this is not json"), []byte("boom"), &exec.ExitError{ProcessState: &os.ProcessState{}}
	}

	report, err := p.Probe(context.Background(), "input.mkv")
	if err != nil {
		t.Fatalf("expected garbage output to be recovered, got %v", err)
	}
	if len(report.Streams) != 0 {
		t.Fatalf("expected empty report, got %d streams", len(report.Streams))
	}
}

func TestProbe_EmptyOutputYieldsEmptyReport(t *testing.T) {
	p := NewProber()
	p.execFn = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return nil, nil, nil
	}

	report, err := p.Probe(context.Background(), "input.mkv")
	if err != nil {
		t.Fatalf("expected empty output to be recovered, got %v", err)
	}
	if len(report.Streams) != 0 {
		t.Fatalf("expected empty report, got %d streams", len(report.Streams))
	}
}

func TestProbe_LaunchFailure(t *testing.T) {
	p := NewProber()
	p.execFn = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return nil, nil, errors.New(`exec: "ffprobe": executable file not found in $PATH`)
	}

	if _, err := p.Probe(context.Background(), "input.mkv"); err == nil {
		t.Fatalf("expected launch failure to surface")
	}
}

func TestProbe_ContextCanceled(t *testing.T) {
	p := NewProber()
	p.execFn = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(sampleProbeJSON), nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Probe(ctx, "input.mkv"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
