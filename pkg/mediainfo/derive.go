package mediainfo

import (
	"strconv"
	"strings"
)

// Derivations compute encode parameters from a report's primary
// streams. They recompute on every call, never cache, and never panic
// on missing optional fields. Derivations without a documented
// fallback return *MissingStreamError when the required stream is
// absent; the rest report absence through their ok result.

// DefaultVideoBitrate is substituted when the primary video stream
// carries no bit_rate field.
const DefaultVideoBitrate = "500k"

// VideoCodec returns the primary video stream's codec name, or "copy"
// when there is no video stream or the stream has no codec name.
// "copy" tells the encoder to pass the stream through unencoded.
func (r *Report) VideoCodec() string {
	s, ok := r.FirstOfType(CodecTypeVideo)
	if !ok || s.CodecName == "" {
		return "copy"
	}
	return s.CodecName
}

// AudioCodec returns the primary audio stream's codec name, or "copy"
// when there is no audio stream.
func (r *Report) AudioCodec() string {
	s, ok := r.FirstOfType(CodecTypeAudio)
	if !ok {
		return "copy"
	}
	return s.CodecName
}

// VideoBitrate returns the primary video stream's bit rate, defaulting
// to DefaultVideoBitrate when the field is absent. A report without a
// video stream has no meaningful bitrate to derive and fails with
// *MissingStreamError.
func (r *Report) VideoBitrate() (string, error) {
	s, ok := r.FirstOfType(CodecTypeVideo)
	if !ok {
		return "", &MissingStreamError{Type: CodecTypeVideo}
	}
	if s.BitRate == "" {
		return DefaultVideoBitrate, nil
	}
	return s.BitRate.String(), nil
}

// AudioBitrate returns the primary audio stream's bit rate. Absent
// when there is no audio stream or the stream carries no bit_rate.
func (r *Report) AudioBitrate() (string, bool) {
	s, ok := r.FirstOfType(CodecTypeAudio)
	if !ok || s.BitRate == "" {
		return "", false
	}
	return s.BitRate.String(), true
}

// Dimensions returns the primary video stream's width and height.
// ok is false when there is no video stream; a stream without
// dimension fields reports zeros.
func (r *Report) Dimensions() (width, height int, ok bool) {
	s, found := r.FirstOfType(CodecTypeVideo)
	if !found {
		return 0, 0, false
	}
	return s.Width, s.Height, true
}

// SampleRate returns the primary audio stream's sample rate. Absent
// when there is no audio stream or the field is missing.
func (r *Report) SampleRate() (string, bool) {
	s, ok := r.FirstOfType(CodecTypeAudio)
	if !ok || s.SampleRate == "" {
		return "", false
	}
	return s.SampleRate, true
}

// FrameRate returns the primary video stream's frame rate computed
// from its r_frame_rate fraction. Absent when there is no video
// stream, the field is missing, or the fraction is malformed or has a
// zero denominator.
func (r *Report) FrameRate() (float64, bool) {
	s, ok := r.FirstOfType(CodecTypeVideo)
	if !ok || s.RFrameRate == "" {
		return 0, false
	}
	return parseFraction(s.RFrameRate)
}

// parseFraction parses a strict "num/den" integer fraction. Anything
// else, including a zero denominator, reports false.
func parseFraction(s string) (float64, bool) {
	numStr, denStr, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, false
	}
	den, err := strconv.Atoi(denStr)
	if err != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// DurationSeconds returns the primary video stream's duration in
// seconds. A report without a video stream fails with
// *MissingStreamError; a video stream whose duration field is absent
// or not a decimal number reports ok=false with a nil error.
func (r *Report) DurationSeconds() (float64, bool, error) {
	s, found := r.FirstOfType(CodecTypeVideo)
	if !found {
		return 0, false, &MissingStreamError{Type: CodecTypeVideo}
	}
	if s.Duration == "" {
		return 0, false, nil
	}
	secs, err := strconv.ParseFloat(s.Duration, 64)
	if err != nil {
		return 0, false, nil
	}
	return secs, true, nil
}
