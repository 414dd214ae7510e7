package mediainfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoCodec(t *testing.T) {
	tests := []struct {
		name    string
		streams []Stream
		want    string
	}{
		{
			name:    "named codec",
			streams: []Stream{{CodecType: CodecTypeVideo, CodecName: "h264"}},
			want:    "h264",
		},
		{
			name:    "no video stream",
			streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac"}},
			want:    "copy",
		},
		{
			name:    "video stream without codec name",
			streams: []Stream{{CodecType: CodecTypeVideo}},
			want:    "copy",
		},
		{
			name: "empty report",
			want: "copy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Streams: tt.streams}
			assert.Equal(t, tt.want, r.VideoCodec())
		})
	}
}

func TestAudioCodec(t *testing.T) {
	tests := []struct {
		name    string
		streams []Stream
		want    string
	}{
		{
			name:    "named codec",
			streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac"}},
			want:    "aac",
		},
		{
			name:    "no audio stream",
			streams: []Stream{{CodecType: CodecTypeVideo, CodecName: "h264"}},
			want:    "copy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Streams: tt.streams}
			assert.Equal(t, tt.want, r.AudioCodec())
		})
	}
}

func TestVideoBitrate(t *testing.T) {
	t.Run("reported value", func(t *testing.T) {
		r := &Report{Streams: []Stream{
			{CodecType: CodecTypeVideo, CodecName: "h264", BitRate: "4500000"},
		}}
		br, err := r.VideoBitrate()
		require.NoError(t, err)
		assert.Equal(t, "4500000", br)
	})

	t.Run("missing field falls back to default", func(t *testing.T) {
		r := &Report{Streams: []Stream{
			{CodecType: CodecTypeVideo, CodecName: "h264"},
		}}
		br, err := r.VideoBitrate()
		require.NoError(t, err)
		assert.Equal(t, DefaultVideoBitrate, br)
	})

	t.Run("missing stream is an error", func(t *testing.T) {
		r := &Report{Streams: []Stream{
			{CodecType: CodecTypeAudio, CodecName: "aac"},
		}}
		_, err := r.VideoBitrate()
		var mse *MissingStreamError
		require.ErrorAs(t, err, &mse)
		assert.Equal(t, CodecTypeVideo, mse.Type)
	})
}

func TestAudioBitrate(t *testing.T) {
	tests := []struct {
		name    string
		streams []Stream
		want    string
		wantOK  bool
	}{
		{
			name:    "reported value",
			streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac", BitRate: "192000"}},
			want:    "192000",
			wantOK:  true,
		},
		{
			name:    "missing field",
			streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac"}},
		},
		{
			name:    "no audio stream",
			streams: []Stream{{CodecType: CodecTypeVideo, CodecName: "h264"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Streams: tt.streams}
			got, ok := r.AudioBitrate()
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDimensions(t *testing.T) {
	t.Run("reported", func(t *testing.T) {
		r := &Report{Streams: []Stream{
			{CodecType: CodecTypeVideo, CodecName: "h264", Width: 1920, Height: 1080},
		}}
		w, h, ok := r.Dimensions()
		require.True(t, ok)
		assert.Equal(t, 1920, w)
		assert.Equal(t, 1080, h)
	})

	t.Run("no video stream", func(t *testing.T) {
		r := &Report{}
		_, _, ok := r.Dimensions()
		assert.False(t, ok)
	})
}

func TestSampleRate(t *testing.T) {
	tests := []struct {
		name    string
		streams []Stream
		want    string
		wantOK  bool
	}{
		{
			name:    "reported",
			streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac", SampleRate: "48000"}},
			want:    "48000",
			wantOK:  true,
		},
		{
			name:    "missing field",
			streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac"}},
		},
		{
			name: "no audio stream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Streams: tt.streams}
			got, ok := r.SampleRate()
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrameRate(t *testing.T) {
	tests := []struct {
		name     string
		fraction string
		want     float64
		wantOK   bool
	}{
		{name: "ntsc film", fraction: "24000/1001", want: 23.976, wantOK: true},
		{name: "integer rate", fraction: "30/1", want: 30, wantOK: true},
		{name: "zero denominator", fraction: "0/0"},
		{name: "zero denominator nonzero numerator", fraction: "30/0"},
		{name: "absent field", fraction: ""},
		{name: "not a fraction", fraction: "29.97"},
		{name: "non-integer parts", fraction: "30/1.001"},
		{name: "trailing garbage", fraction: "30/1fps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Streams: []Stream{
				{CodecType: CodecTypeVideo, CodecName: "h264", RFrameRate: tt.fraction},
			}}
			got, ok := r.FrameRate()
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestFrameRateWithoutVideo(t *testing.T) {
	r := &Report{Streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac"}}}
	_, ok := r.FrameRate()
	assert.False(t, ok)
}

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     float64
		wantOK   bool
	}{
		{name: "decimal seconds", duration: "1421.253167", want: 1421.253167, wantOK: true},
		{name: "integer seconds", duration: "90", want: 90, wantOK: true},
		{name: "absent field", duration: ""},
		{name: "not a number", duration: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{Streams: []Stream{
				{CodecType: CodecTypeVideo, CodecName: "h264", Duration: tt.duration},
			}}
			got, ok, err := r.DurationSeconds()
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDurationSecondsWithoutVideo(t *testing.T) {
	r := &Report{Streams: []Stream{{CodecType: CodecTypeAudio, CodecName: "aac"}}}
	_, _, err := r.DurationSeconds()
	var mse *MissingStreamError
	require.ErrorAs(t, err, &mse)
	assert.Equal(t, CodecTypeVideo, mse.Type)
}

func TestDerivationsUseFirstStreamOfType(t *testing.T) {
	r := &Report{Streams: []Stream{
		{Index: 0, CodecType: CodecTypeAudio, CodecName: "aac", BitRate: "192000", SampleRate: "48000"},
		{Index: 1, CodecType: CodecTypeVideo, CodecName: "h264", Width: 1920, Height: 1080, BitRate: "4500000"},
		{Index: 2, CodecType: CodecTypeVideo, CodecName: "mjpeg", Width: 640, Height: 360},
		{Index: 3, CodecType: CodecTypeAudio, CodecName: "opus", BitRate: "96000"},
	}}

	assert.Equal(t, "h264", r.VideoCodec())
	assert.Equal(t, "aac", r.AudioCodec())

	br, err := r.VideoBitrate()
	require.NoError(t, err)
	assert.Equal(t, "4500000", br)

	ab, ok := r.AudioBitrate()
	require.True(t, ok)
	assert.Equal(t, "192000", ab)

	w, h, ok := r.Dimensions()
	require.True(t, ok)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}

func TestDerivationsAreStable(t *testing.T) {
	r, err := Decode([]byte(probeDoc))
	require.NoError(t, err)

	assert.Equal(t, r.VideoCodec(), r.VideoCodec())
	assert.Equal(t, r.AudioCodec(), r.AudioCodec())

	br1, err1 := r.VideoBitrate()
	br2, err2 := r.VideoBitrate()
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, br1, br2)

	ab1, ok1 := r.AudioBitrate()
	ab2, ok2 := r.AudioBitrate()
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, ab1, ab2)

	fr1, frOK1 := r.FrameRate()
	fr2, frOK2 := r.FrameRate()
	assert.Equal(t, frOK1, frOK2)
	assert.Equal(t, fr1, fr2)

	d1, dOK1, dErr1 := r.DurationSeconds()
	d2, dOK2, dErr2 := r.DurationSeconds()
	require.NoError(t, dErr1)
	require.NoError(t, dErr2)
	assert.Equal(t, dOK1, dOK2)
	assert.Equal(t, d1, d2)
}

func TestDerivationsOnEmptyReport(t *testing.T) {
	r := &Report{}

	assert.Equal(t, "copy", r.VideoCodec())
	assert.Equal(t, "copy", r.AudioCodec())

	var mse *MissingStreamError
	_, err := r.VideoBitrate()
	require.ErrorAs(t, err, &mse)

	_, ok := r.AudioBitrate()
	assert.False(t, ok)

	_, _, ok = r.Dimensions()
	assert.False(t, ok)

	_, ok = r.SampleRate()
	assert.False(t, ok)

	_, ok = r.FrameRate()
	assert.False(t, ok)

	_, _, err = r.DurationSeconds()
	require.ErrorAs(t, err, &mse)
}
