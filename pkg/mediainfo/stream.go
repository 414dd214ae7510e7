// Package mediainfo models the stream metadata a prober reports for a
// media container and derives encode parameters from it.
package mediainfo

import (
	"encoding/json"
	"strings"
)

// CodecType classifies a stream within a container.
type CodecType string

const (
	CodecTypeVideo      CodecType = "video"
	CodecTypeAudio      CodecType = "audio"
	CodecTypeSubtitle   CodecType = "subtitle"
	CodecTypeData       CodecType = "data"
	CodecTypeAttachment CodecType = "attachment"
	CodecTypeUnknown    CodecType = "unknown"
)

// Disposition is the fixed set of role flags a stream can carry. The
// prober reports them as 0/1 integers and the flag set is closed, so
// this is a record rather than a map.
type Disposition struct {
	Default         int `json:"default"`
	Dub             int `json:"dub"`
	Original        int `json:"original"`
	Comment         int `json:"comment"`
	Lyrics          int `json:"lyrics"`
	Karaoke         int `json:"karaoke"`
	Forced          int `json:"forced"`
	HearingImpaired int `json:"hearing_impaired"`
	VisualImpaired  int `json:"visual_impaired"`
	CleanEffects    int `json:"clean_effects"`
	AttachedPic     int `json:"attached_pic"`
	TimedThumbnails int `json:"timed_thumbnails"`
	NonDiegetic     int `json:"non_diegetic"`
	Captions        int `json:"captions"`
	Descriptions    int `json:"descriptions"`
	Metadata        int `json:"metadata"`
	Dependent       int `json:"dependent"`
	StillImage      int `json:"still_image"`
}

// IsDefault returns whether the stream carries the default flag.
func (d Disposition) IsDefault() bool { return d.Default == 1 }

// IsForced returns whether the stream carries the forced flag.
func (d Disposition) IsForced() bool { return d.Forced == 1 }

// IsAttachedPic returns whether the stream is an attached picture.
func (d Disposition) IsAttachedPic() bool { return d.AttachedPic == 1 }

// BitRate is a bit rate as reported by the prober. Some containers
// report it as a JSON string, others as a bare number; both decode to
// the same canonical string form. The zero value means the field was
// absent.
type BitRate string

// UnmarshalJSON accepts both string and numeric wire forms.
func (b *BitRate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BitRate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = BitRate(n.String())
	return nil
}

func (b BitRate) String() string { return string(b) }

// Stream is one entry in a probed file's stream list.
type Stream struct {
	Index         int               `json:"index"`
	CodecType     CodecType         `json:"codec_type"`
	CodecName     string            `json:"codec_name"`
	CodecLongName string            `json:"codec_long_name,omitempty"`
	Profile       string            `json:"profile,omitempty"`
	Width         int               `json:"width,omitempty"`
	Height        int               `json:"height,omitempty"`
	PixFmt        string            `json:"pix_fmt,omitempty"`
	RFrameRate    string            `json:"r_frame_rate,omitempty"`
	AvgFrameRate  string            `json:"avg_frame_rate,omitempty"`
	SampleRate    string            `json:"sample_rate,omitempty"`
	Channels      int               `json:"channels,omitempty"`
	ChannelLayout string            `json:"channel_layout,omitempty"`
	BitRate       BitRate           `json:"bit_rate,omitempty"`
	Duration      string            `json:"duration,omitempty"`
	NbFrames      string            `json:"nb_frames,omitempty"`
	Disposition   Disposition       `json:"disposition"`
	Tags          map[string]string `json:"tags,omitempty"`
}

// Language returns the stream's language tag, or "" when untagged.
func (s Stream) Language() string {
	if lang, ok := s.Tags["language"]; ok && strings.TrimSpace(lang) != "" && lang != "und" {
		return strings.TrimSpace(lang)
	}
	return ""
}

// Title returns the stream's title tag, or "".
func (s Stream) Title() string {
	if t, ok := s.Tags["title"]; ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return ""
}

// Format is the container-level block the prober emits alongside the
// stream list.
type Format struct {
	Filename       string            `json:"filename,omitempty"`
	NbStreams      int               `json:"nb_streams,omitempty"`
	FormatName     string            `json:"format_name,omitempty"`
	FormatLongName string            `json:"format_long_name,omitempty"`
	Duration       string            `json:"duration,omitempty"`
	Size           string            `json:"size,omitempty"`
	BitRate        BitRate           `json:"bit_rate,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
}
