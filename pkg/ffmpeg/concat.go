package ffmpeg

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteConcatList writes a concat demuxer manifest for inputs: one
// `file '<path>'` line per input, in order, each newline-terminated.
func WriteConcatList(w io.Writer, inputs []string) error {
	for _, in := range inputs {
		if _, err := fmt.Fprintf(w, "file '%s'\n", in); err != nil {
			return err
		}
	}
	return nil
}

// createConcatManifest writes the manifest to path, flushed and closed
// before the encoder reads it.
func createConcatManifest(path string, inputs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ffmpeg: create concat manifest: %w", err)
	}
	if err := WriteConcatList(f, inputs); err != nil {
		f.Close()
		return fmt.Errorf("ffmpeg: write concat manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ffmpeg: write concat manifest: %w", err)
	}
	return nil
}

// ConcatCommand builds the stream-copy join command for a written
// manifest.
func ConcatCommand(manifest, output string) *Command {
	return NewCommand(manifest, output, ConcatDemuxer, CopyAll)
}

// ConcatenateOptions configures Concatenate.
type ConcatenateOptions struct {
	// Dir is where the transient manifest is written. The demuxer
	// resolves relative manifest entries against the manifest's own
	// directory, so this defaults to the working directory rather
	// than the system temp dir.
	Dir string

	// ManifestPath overrides the generated manifest location entirely.
	ManifestPath string
}

// Concatenate joins inputs into output with the concat demuxer,
// stream-copying rather than re-encoding. The transient manifest is
// removed on every path out, success or failure.
func Concatenate(ctx context.Context, inputs []string, output string, opts *ConcatenateOptions) error {
	if opts == nil {
		opts = &ConcatenateOptions{}
	}

	manifest := opts.ManifestPath
	if manifest == "" {
		manifest = filepath.Join(opts.Dir, fmt.Sprintf("concat-%s.txt", uuid.NewString()))
	}

	if err := createConcatManifest(manifest, inputs); err != nil {
		return err
	}
	defer os.Remove(manifest)

	return ConcatCommand(manifest, output).Run(ctx)
}
