package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"thirdcoast.systems/hardsub/pkg/ffmpeg"
)

var concatManifest string

var concatCmd = &cobra.Command{
	Use:   "concat <output path> <input video>...",
	Short: "Join videos without re-encoding",
	Long: "concat writes a transient concat demuxer manifest for the inputs and\n" +
		"stream-copies them into a single output. The manifest is removed when\n" +
		"the encoder finishes, whatever the outcome.",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd.Context())
		defer cancel()

		output := args[0]
		inputs := args[1:]

		slog.Info("concatenating", "inputs", len(inputs), "output", output)

		err := ffmpeg.Concatenate(ctx, inputs, output, &ffmpeg.ConcatenateOptions{
			Dir:          cfg.ConcatDir,
			ManifestPath: concatManifest,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Concatenated %d files to %s\n", len(inputs), output)
		return nil
	},
}

func init() {
	concatCmd.Flags().StringVar(&concatManifest, "manifest", "", "explicit manifest path (default: generated in the concat dir)")
}
