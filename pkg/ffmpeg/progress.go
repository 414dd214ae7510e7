package ffmpeg

import (
	"bufio"
	"strconv"
	"strings"
)

// Progress is one snapshot of the encoder's -progress output. The
// encoder emits key=value lines and marks each snapshot complete with
// a progress= line ("continue", then a final "end").
type Progress struct {
	Frame     int64
	FPS       float64
	Bitrate   string // as reported, e.g. "1234.5kbits/s"
	TotalSize int64  // bytes written so far
	OutTimeUS int64  // output timestamp in microseconds
	Speed     string // realtime multiplier, e.g. "2.5x"
	Progress  string // "continue" or "end"
}

// OutTimeSeconds converts the output timestamp to seconds.
func (p Progress) OutTimeSeconds() float64 {
	return float64(p.OutTimeUS) / 1e6
}

// ParseProgressLine splits one key=value line from -progress output.
func ParseProgressLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	return strings.Cut(line, "=")
}

// ProgressParser accumulates key=value lines into Progress snapshots.
type ProgressParser struct {
	current Progress
}

// NewProgressParser returns an empty parser.
func NewProgressParser() *ProgressParser {
	return &ProgressParser{}
}

// ParseLine folds one line into the pending snapshot. It reports true
// on the progress= line that completes a snapshot; Current then holds
// the full update. Unknown keys and unparsable values are ignored.
func (p *ProgressParser) ParseLine(line string) bool {
	key, value, ok := ParseProgressLine(line)
	if !ok {
		return false
	}

	switch key {
	case "frame":
		p.current.Frame, _ = strconv.ParseInt(value, 10, 64)
	case "fps":
		p.current.FPS, _ = strconv.ParseFloat(value, 64)
	case "bitrate":
		p.current.Bitrate = value
	case "total_size":
		p.current.TotalSize, _ = strconv.ParseInt(value, 10, 64)
	case "out_time_us":
		p.current.OutTimeUS, _ = strconv.ParseInt(value, 10, 64)
	case "speed":
		p.current.Speed = value
	case "progress":
		p.current.Progress = value
		return true
	}
	return false
}

// Current returns the most recent snapshot state.
func (p *ProgressParser) Current() Progress {
	return p.current
}

// Reset discards accumulated state.
func (p *ProgressParser) Reset() {
	p.current = Progress{}
}

// ParseProgressOutput scans encoder stdout and sends each completed
// snapshot to the channel, stopping at the final "end" snapshot or
// when the stream closes.
func ParseProgressOutput(scanner *bufio.Scanner, progress chan<- Progress) {
	parser := NewProgressParser()
	for scanner.Scan() {
		if !parser.ParseLine(scanner.Text()) {
			continue
		}
		progress <- parser.Current()
		if parser.Current().Progress == "end" {
			return
		}
	}
}
