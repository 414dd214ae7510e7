package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"thirdcoast.systems/hardsub/pkg/ffmpeg"
)

var (
	thumbOffset  time.Duration
	thumbWidth   int
	thumbQuality int

	remuxMetadata map[string]string
)

var thumbCmd = &cobra.Command{
	Use:   "thumb <input video> <output image>",
	Short: "Extract a single frame as an image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd.Context())
		defer cancel()

		slog.Info("extracting thumbnail", "input", args[0], "output", args[1], "offset", thumbOffset)

		err := ffmpeg.ExtractThumbnail(ctx, args[0], args[1], &ffmpeg.ThumbnailOptions{
			Offset:   thumbOffset,
			MaxWidth: thumbWidth,
			Quality:  thumbQuality,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Thumbnail written to %s\n", args[1])
		return nil
	},
}

var remuxCmd = &cobra.Command{
	Use:   "remux <input video> <output path>",
	Short: "Rewrap streams into a new container without re-encoding",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd.Context())
		defer cancel()

		slog.Info("remuxing", "input", args[0], "output", args[1])

		err := ffmpeg.Remux(ctx, args[0], args[1], &ffmpeg.RemuxOptions{
			Metadata: remuxMetadata,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Remuxed %s to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	thumbCmd.Flags().DurationVar(&thumbOffset, "offset", 5*time.Second, "timestamp to extract the frame from")
	thumbCmd.Flags().IntVar(&thumbWidth, "width", 640, "maximum thumbnail width")
	thumbCmd.Flags().IntVar(&thumbQuality, "quality", 4, "JPEG quality, 1-31, lower is better")

	remuxCmd.Flags().StringToStringVar(&remuxMetadata, "metadata", nil, "metadata to set, as key=value pairs")
}
