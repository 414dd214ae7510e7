// Package ffmpeg provides a composable API for building and executing
// ffmpeg commands, and for probing media files with ffprobe.
package ffmpeg

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Command is an ffmpeg invocation under construction. Arguments
// accumulate in three zones: before -i, after -i, and the -vf filter
// chain, so option application order never produces an invalid argv.
type Command struct {
	input     string
	output    string
	preInput  []string
	postInput []string
	filters   []string
}

// Option mutates a Command during construction.
type Option interface {
	Apply(cmd *Command)
}

// OptionFunc adapts a plain function into an Option.
type OptionFunc func(cmd *Command)

// Apply implements Option.
func (f OptionFunc) Apply(cmd *Command) { f(cmd) }

// NewCommand builds a command for the given input and output paths,
// applying each option in turn.
func NewCommand(input, output string, opts ...Option) *Command {
	cmd := &Command{input: input, output: output}
	for _, opt := range opts {
		opt.Apply(cmd)
	}
	return cmd
}

// Build assembles the full argument vector. Every value is its own
// argv element; nothing is ever routed through a shell. All builds
// lead with -hide_banner -y, video filters merge into a single -vf
// chain, and faststart-capable containers get -movflags +faststart.
func (c *Command) Build() []string {
	args := make([]string, 0, 8+len(c.preInput)+len(c.postInput))
	args = append(args, "-hide_banner", "-y")
	args = append(args, c.preInput...)
	args = append(args, "-i", c.input)
	args = append(args, c.postInput...)

	if len(c.filters) > 0 {
		args = append(args, "-vf", strings.Join(c.filters, ","))
	}
	if wantsFaststart(c.output) {
		args = append(args, "-movflags", "+faststart")
	}

	return append(args, c.output)
}

// wantsFaststart reports whether the container benefits from the moov
// atom being relocated to the front for streaming playback.
func wantsFaststart(output string) bool {
	switch strings.ToLower(filepath.Ext(output)) {
	case ".mp4", ".m4a", ".mov":
		return true
	}
	return false
}

// buildWithProgress is Build with the machine-readable progress flags
// slotted in right after the -hide_banner -y preamble.
func (c *Command) buildWithProgress() []string {
	args := c.Build()
	withProgress := []string{args[0], args[1], "-progress", "pipe:1", "-nostats"}
	return append(withProgress, args[2:]...)
}

// Run executes the command and blocks until the encoder exits.
func (c *Command) Run(ctx context.Context) error {
	return run(ctx, c.Build(), nil)
}

// RunCapture executes the command and returns the encoder's stderr
// alongside any error.
func (c *Command) RunCapture(ctx context.Context) RunResult {
	return runCapture(ctx, c.Build())
}

// RunWithProgress executes the command, streaming progress updates to
// the channel until the encoder exits.
func (c *Command) RunWithProgress(ctx context.Context, progress chan<- Progress) error {
	return run(ctx, c.buildWithProgress(), progress)
}

// Start launches the command and hands back a Process for lifecycle
// control. The caller must Wait or Kill it.
func (c *Command) Start(ctx context.Context) (*Process, error) {
	return Start(ctx, c.Build(), nil)
}

// StartWithProgress is Start with progress streaming. The caller must
// Wait or Kill the returned Process.
func (c *Command) StartWithProgress(ctx context.Context, progress chan<- Progress) (*Process, error) {
	return Start(ctx, c.buildWithProgress(), progress)
}

// Run builds and executes a command in one call.
func Run(ctx context.Context, input, output string, opts ...Option) error {
	return NewCommand(input, output, opts...).Run(ctx)
}

// RunCapture builds and executes a command, returning captured stderr
// alongside any error.
func RunCapture(ctx context.Context, input, output string, opts ...Option) RunResult {
	return NewCommand(input, output, opts...).RunCapture(ctx)
}

// RunWithProgress builds and executes a command with progress
// streaming.
func RunWithProgress(ctx context.Context, input, output string, progress chan<- Progress, opts ...Option) error {
	return NewCommand(input, output, opts...).RunWithProgress(ctx, progress)
}

// Seek positions the input before decoding starts (-ss before -i).
func Seek(start time.Duration) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.preInput = append(cmd.preInput, "-ss", formatDuration(start))
	})
}

// ConcatDemuxer reads the input as a concat demuxer manifest rather
// than a media file. -safe 0 permits absolute and relative paths in
// the manifest.
var ConcatDemuxer Option = OptionFunc(func(cmd *Command) {
	cmd.preInput = append(cmd.preInput, "-f", "concat", "-safe", "0")
})

// VideoCodec selects the video encoder (-c:v).
func VideoCodec(codec string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, "-c:v", codec)
	})
}

// VideoBitrate sets the target video bitrate (-b:v), e.g. "4500000"
// or "500k".
func VideoBitrate(bitrate string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, "-b:v", bitrate)
	})
}

// AudioCodec selects the audio encoder (-c:a).
func AudioCodec(codec string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, "-c:a", codec)
	})
}

// AudioBitrate sets the target audio bitrate (-b:a).
func AudioBitrate(bitrate string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, "-b:a", bitrate)
	})
}

// CopyAudio passes the audio stream through unencoded (-c:a copy).
var CopyAudio Option = OptionFunc(func(cmd *Command) {
	cmd.postInput = append(cmd.postInput, "-c:a", "copy")
})

// CopyAll passes every stream through unencoded (-c copy).
var CopyAll Option = OptionFunc(func(cmd *Command) {
	cmd.postInput = append(cmd.postInput, "-c", "copy")
})

// MapAll carries all input streams to the output (-map 0), not just
// the default ffmpeg selection.
var MapAll Option = OptionFunc(func(cmd *Command) {
	cmd.postInput = append(cmd.postInput, "-map", "0")
})

// Filter appends a raw filter to the -vf chain.
func Filter(f string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.filters = append(cmd.filters, f)
	})
}

// Frames limits the number of output video frames (-frames:v).
func Frames(n int) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, "-frames:v", strconv.Itoa(n))
	})
}

// Quality sets image output quality (-q:v), 1-31 with lower better.
func Quality(q int) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, "-q:v", strconv.Itoa(q))
	})
}

// Metadata sets one output metadata key-value pair.
func Metadata(key, value string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, "-metadata", key+"="+value)
	})
}

// LogLevel sets the encoder's log verbosity. It prepends so the flag
// takes effect before any input is opened.
func LogLevel(level string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.preInput = append([]string{"-loglevel", level}, cmd.preInput...)
	})
}

// ExtraArgs appends raw output arguments, the escape hatch for flags
// without a dedicated option.
func ExtraArgs(args ...string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.postInput = append(cmd.postInput, args...)
	})
}

// formatDuration renders a duration as seconds with millisecond
// precision, the form ffmpeg accepts for -ss.
func formatDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
