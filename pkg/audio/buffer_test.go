package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferValidation(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate int
		channels   [][]float64
		wantErr    bool
	}{
		{"valid stereo", 44100, [][]float64{{0, 0.5}, {0, -0.5}}, false},
		{"valid mono", 48000, [][]float64{{0.1, 0.2, 0.3}}, false},
		{"zero sample rate", 0, [][]float64{{0.1}}, true},
		{"negative sample rate", -44100, [][]float64{{0.1}}, true},
		{"no channels", 44100, [][]float64{}, true},
		{"empty channel", 44100, [][]float64{{}}, true},
		{"mismatched channel lengths", 44100, [][]float64{{0.1, 0.2}, {0.1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuffer(tt.sampleRate, tt.channels)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBuffer)
				assert.Nil(t, buf)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, buf.Validate())
		})
	}
}

func TestBufferAccessors(t *testing.T) {
	buf, err := NewBuffer(44100, [][]float64{
		make([]float64, 44100),
		make([]float64, 44100),
	})
	require.NoError(t, err)

	assert.Equal(t, 44100, buf.SampleRate())
	assert.Equal(t, 2, buf.NumChannels())
	assert.Equal(t, 44100, buf.Len())
	assert.InDelta(t, 1.0, buf.Duration(), 1e-9)
}

func TestDownmixStereoMean(t *testing.T) {
	buf, err := NewBuffer(44100, [][]float64{
		{1.0, 0.5, -1.0},
		{0.0, 0.5, 1.0},
	})
	require.NoError(t, err)

	mono := buf.Downmix()
	require.Len(t, mono, 3)
	assert.InDelta(t, 0.5, mono[0], 1e-12)
	assert.InDelta(t, 0.5, mono[1], 1e-12)
	assert.InDelta(t, 0.0, mono[2], 1e-12)
}

func TestDownmixMonoReturnsCopy(t *testing.T) {
	samples := []float64{0.1, 0.2, 0.3}
	buf, err := NewBuffer(44100, [][]float64{samples})
	require.NoError(t, err)

	mono := buf.Downmix()
	assert.Equal(t, samples, mono)

	mono[0] = 99
	assert.Equal(t, 0.1, buf.Channel(0)[0])
}

func TestValidateZeroValue(t *testing.T) {
	var buf Buffer
	assert.ErrorIs(t, buf.Validate(), ErrInvalidBuffer)

	var nilBuf *Buffer
	assert.ErrorIs(t, nilBuf.Validate(), ErrInvalidBuffer)
}
