package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"thirdcoast.systems/hardsub/pkg/ffmpeg"
	"thirdcoast.systems/hardsub/pkg/mediainfo"
)

var typeColors = map[mediainfo.CodecType]*color.Color{
	mediainfo.CodecTypeVideo:    color.New(color.FgHiGreen),
	mediainfo.CodecTypeAudio:    color.New(color.FgHiCyan),
	mediainfo.CodecTypeSubtitle: color.New(color.FgHiYellow),
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the stream layout of a media file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd.Context())
		defer cancel()

		report, err := ffmpeg.Probe(ctx, args[0])
		if err != nil {
			return err
		}
		if len(report.Streams) == 0 {
			return fmt.Errorf("no streams found in %s", args[0])
		}

		printReport(report)
		return nil
	},
}

func printReport(r *mediainfo.Report) {
	f := r.Format
	if f.FormatName != "" {
		header := f.FormatName
		if f.Duration != "" {
			header += "  " + mediainfo.FormatSeconds(f.Duration)
		}
		if f.Size != "" {
			header += "  " + mediainfo.FormatSize(f.Size)
		}
		fmt.Println(header)
	}

	for _, s := range r.Streams {
		label := string(s.CodecType)
		if c, ok := typeColors[s.CodecType]; ok {
			label = c.Sprint(label)
		}

		detail := s.DisplayCodec()
		switch s.CodecType {
		case mediainfo.CodecTypeVideo:
			if s.Width > 0 && s.Height > 0 {
				detail += fmt.Sprintf("  %dx%d", s.Width, s.Height)
			}
			if fr := s.DisplayFrameRate(); fr != "" {
				detail += "  " + fr
			}
			if br := s.DisplayBitRate(); br != "" {
				detail += "  " + br
			}
		case mediainfo.CodecTypeAudio:
			if sr := s.DisplaySampleRate(); sr != "" {
				detail += "  " + sr
			}
			if s.ChannelLayout != "" {
				detail += "  " + s.ChannelLayout
			}
			if br := s.DisplayBitRate(); br != "" {
				detail += "  " + br
			}
		}

		if lang := mediainfo.LanguageName(s.Language()); lang != "" {
			detail += "  [" + lang + "]"
		}
		if title := s.Title(); title != "" {
			detail += "  " + strconv.Quote(title)
		}
		if s.Disposition.IsDefault() {
			detail += "  (default)"
		}
		if s.Disposition.IsForced() {
			detail += "  (forced)"
		}

		fmt.Printf("  #%d %s  %s\n", s.Index, label, detail)
	}
}
