package mediainfo

import (
	"encoding/json"
	"fmt"
)

// Report is the parsed prober output for one media file: the stream
// list in container order plus container-level format metadata. A
// Report is read-only once constructed; derivations never modify it.
type Report struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Decode parses raw prober JSON into a Report. Callers that want the
// lenient empty-report-on-garbage behavior recover the error themselves
// (the prober client does).
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("mediainfo: decode probe output: %w", err)
	}
	return &r, nil
}

// StreamsOfType returns the streams of the given type, preserving
// container order. The result is a fresh slice and can be ranged over
// any number of times.
func (r *Report) StreamsOfType(t CodecType) []Stream {
	var out []Stream
	for _, s := range r.Streams {
		if s.CodecType == t {
			out = append(out, s)
		}
	}
	return out
}

// FirstOfType returns the first stream of the given type in container
// order. First-in-container-order is the primary-stream policy: the
// prober's ordering decides, not index values or stream quality.
func (r *Report) FirstOfType(t CodecType) (Stream, bool) {
	for _, s := range r.Streams {
		if s.CodecType == t {
			return s, true
		}
	}
	return Stream{}, false
}

// VideoStreams returns all video-type streams.
func (r *Report) VideoStreams() []Stream { return r.StreamsOfType(CodecTypeVideo) }

// AudioStreams returns all audio-type streams.
func (r *Report) AudioStreams() []Stream { return r.StreamsOfType(CodecTypeAudio) }

// SubtitleStreams returns all subtitle-type streams.
func (r *Report) SubtitleStreams() []Stream { return r.StreamsOfType(CodecTypeSubtitle) }
