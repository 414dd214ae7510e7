package ffmpeg

import (
	"context"
	"sort"
	"time"
)

// ThumbnailOptions configures ExtractThumbnail. Zero fields take the
// defaults: 5s offset, 640px max width, quality 4.
type ThumbnailOptions struct {
	Offset   time.Duration
	MaxWidth int
	Quality  int // -q:v, 1-31, lower is better
}

// ExtractThumbnail grabs a single frame from input as an image.
func ExtractThumbnail(ctx context.Context, input, output string, opts *ThumbnailOptions) error {
	o := ThumbnailOptions{Offset: 5 * time.Second, MaxWidth: 640, Quality: 4}
	if opts != nil {
		if opts.Offset != 0 {
			o.Offset = opts.Offset
		}
		if opts.MaxWidth != 0 {
			o.MaxWidth = opts.MaxWidth
		}
		if opts.Quality != 0 {
			o.Quality = opts.Quality
		}
	}

	return Run(ctx, input, output,
		Seek(o.Offset),
		ScaleWidth(o.MaxWidth),
		Frames(1),
		Quality(o.Quality),
	)
}

// RemuxOptions configures Remux.
type RemuxOptions struct {
	Metadata map[string]string
}

// Remux rewraps every stream of input into output's container without
// re-encoding. Metadata is applied in key order so the argv is
// deterministic.
func Remux(ctx context.Context, input, output string, opts *RemuxOptions) error {
	runOpts := []Option{CopyAll, MapAll}

	if opts != nil && len(opts.Metadata) > 0 {
		keys := make([]string, 0, len(opts.Metadata))
		for k := range opts.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			runOpts = append(runOpts, Metadata(k, opts.Metadata[k]))
		}
	}

	return Run(ctx, input, output, runOpts...)
}
