package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDBFloor(t *testing.T) {
	assert.InDelta(t, -200.0, toDB(0), 1e-9)
	assert.InDelta(t, 0.0, toDB(1), 1e-9)
	assert.InDelta(t, -6.02, toDB(0.5), 0.01)
}

func TestFrameRMSCount(t *testing.T) {
	samples := make([]float64, testSampleRate)
	frames := frameRMS(samples, 2048, 512)
	assert.Len(t, frames, (testSampleRate-2048)/512+1)
}

func TestFrameRMSShortSignal(t *testing.T) {
	samples := sineChannel(440, 0.5, 1000)
	frames := frameRMS(samples, 2048, 512)
	require.Len(t, frames, 1)
	assert.InDelta(t, rms(samples), frames[0], 1e-12)
}

func TestRMSAndMaxAbs(t *testing.T) {
	samples := []float64{0.5, -0.5, 0.5, -0.5}
	assert.InDelta(t, 0.5, rms(samples), 1e-12)
	assert.InDelta(t, 0.5, maxAbs(samples), 1e-12)

	assert.Zero(t, rms(nil))
	assert.Zero(t, maxAbs(nil))
}

func TestRMSSine(t *testing.T) {
	samples := sineChannel(440, 0.5, testSampleRate)
	assert.InDelta(t, 0.5/math.Sqrt2, rms(samples), 1e-3)
}

func TestPercentileSpread(t *testing.T) {
	constant := []float64{-20, -20, -20, -20}
	assert.Zero(t, percentileSpread(constant, 0.10, 0.95))

	assert.Zero(t, percentileSpread(nil, 0.10, 0.95))

	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	spread := percentileSpread(values, 0.10, 0.95)
	assert.Greater(t, spread, 80.0)
	assert.Less(t, spread, 90.0)
}

func TestPercentileSpreadDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_ = percentileSpread(values, 0.10, 0.95)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestClipTo(t *testing.T) {
	assert.Equal(t, 0.0, clipTo(-5, 0, 100))
	assert.Equal(t, 100.0, clipTo(150, 0, 100))
	assert.Equal(t, 42.0, clipTo(42, 0, 100))
}
