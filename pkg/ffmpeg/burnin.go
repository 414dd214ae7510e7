package ffmpeg

import (
	"context"

	"thirdcoast.systems/hardsub/pkg/mediainfo"
)

// BurnCommand builds the encode command that burns subtitleFile into
// input's video frames. The video track is re-encoded with the source's
// own codec and bitrate so the overlay rasterizes into the picture;
// audio is stream-copied untouched. Fails with
// *mediainfo.MissingStreamError when the report carries no video
// stream to derive a bitrate from.
func BurnCommand(report *mediainfo.Report, input, subtitleFile, output string, extra ...Option) (*Command, error) {
	bitrate, err := report.VideoBitrate()
	if err != nil {
		return nil, err
	}

	opts := append([]Option{
		VideoCodec(report.VideoCodec()),
		VideoBitrate(bitrate),
		Subtitles(subtitleFile),
		CopyAudio,
	}, extra...)
	return NewCommand(input, output, opts...), nil
}

// BurnSubtitles probes input, builds the burn-in command, and runs it
// to completion.
func BurnSubtitles(ctx context.Context, input, subtitleFile, output string, extra ...Option) error {
	report, err := Probe(ctx, input)
	if err != nil {
		return err
	}

	cmd, err := BurnCommand(report, input, subtitleFile, output, extra...)
	if err != nil {
		return err
	}
	return cmd.Run(ctx)
}
