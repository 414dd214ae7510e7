package ffmpeg

import "strconv"

// SubtitlesFilter rasterizes a subtitle file into the video frames.
type SubtitlesFilter struct {
	Path string
}

// String renders the filter expression. The path is embedded verbatim;
// callers with filter-special characters in the path (colons, quotes)
// escape them per ffmpeg's filter syntax.
func (s SubtitlesFilter) String() string {
	return "subtitles=" + s.Path
}

// Subtitles adds a subtitle burn-in filter to the -vf chain.
func Subtitles(path string) Option {
	return Filter(SubtitlesFilter{Path: path}.String())
}

// ScaleFilter resizes the video. A Width or Height of -2 lets ffmpeg
// derive the other side from the aspect ratio, rounded to even (h264
// rejects odd dimensions).
type ScaleFilter struct {
	Width  int
	Height int
}

// String renders the filter expression.
func (s ScaleFilter) String() string {
	return "scale=" + strconv.Itoa(s.Width) + ":" + strconv.Itoa(s.Height)
}

// Scale adds a scale filter with explicit dimensions.
func Scale(width, height int) Option {
	return Filter(ScaleFilter{Width: width, Height: height}.String())
}

// ScaleWidth scales to a width, deriving an even height.
func ScaleWidth(width int) Option {
	return Scale(width, -2)
}

// ScaleHeight scales to a height, deriving an even width.
func ScaleHeight(height int) Option {
	return Scale(-2, height)
}
