package mediainfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Display helpers for rendering probe data to humans. These are
// deliberately lenient: they never fail, falling back to the raw wire
// value when it cannot be interpreted.

// FormatSeconds converts a decimal seconds string to H:MM:SS or M:SS.
func FormatSeconds(d string) string {
	secs, err := strconv.ParseFloat(d, 64)
	if err != nil || secs <= 0 {
		return d
	}
	total := int(secs)
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatSize renders a byte-count string human-readable ("12.4 MB").
func FormatSize(s string) string {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return s
	}
	return humanize.Bytes(n)
}

// LanguageName resolves a stream language tag ("eng", "de") to its
// English display name. Unresolvable tags come back verbatim.
func LanguageName(tag string) string {
	if tag == "" || tag == "und" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.English.Languages().Name(t); name != "" {
		return name
	}
	return tag
}

// DisplayFrameRate renders the r_frame_rate fraction for display.
func (s Stream) DisplayFrameRate() string {
	numStr, denStr, found := strings.Cut(s.RFrameRate, "/")
	if !found {
		return s.RFrameRate
	}
	num, numErr := strconv.ParseFloat(numStr, 64)
	den, denErr := strconv.ParseFloat(denStr, 64)
	if numErr != nil || denErr != nil || den == 0 {
		return s.RFrameRate
	}
	fps := num / den
	if fps == float64(int(fps)) {
		return fmt.Sprintf("%d fps", int(fps))
	}
	return fmt.Sprintf("%.3f fps", fps)
}

// DisplayBitRate renders a stream bit rate human-readable.
func (s Stream) DisplayBitRate() string {
	if s.BitRate == "" {
		return ""
	}
	bps, err := strconv.ParseFloat(s.BitRate.String(), 64)
	if err != nil || bps <= 0 {
		return s.BitRate.String()
	}
	if bps >= 1000000 {
		return fmt.Sprintf("%.1f Mbps", bps/1000000)
	}
	return fmt.Sprintf("%.0f kbps", bps/1000)
}

// DisplaySampleRate renders a sample rate with a kHz suffix.
func (s Stream) DisplaySampleRate() string {
	if s.SampleRate == "" {
		return ""
	}
	sr, err := strconv.ParseFloat(s.SampleRate, 64)
	if err != nil || sr <= 0 {
		return s.SampleRate
	}
	return fmt.Sprintf("%.1f kHz", sr/1000)
}

// DisplayCodec returns a human-readable codec description.
func (s Stream) DisplayCodec() string {
	switch {
	case s.CodecName == "":
		return "unknown"
	case s.CodecLongName != "" && s.CodecLongName != s.CodecName:
		return s.CodecName + " (" + s.CodecLongName + ")"
	default:
		return s.CodecName
	}
}
