package analyzers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSine(freq, amplitude float64, sampleRate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return out
}

func TestFFT(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)

	assert.Empty(t, sa.FFT(nil))

	signal := testSine(1000, 1.0, 44100, 2048)
	result := sa.FFT(signal)
	assert.Len(t, result, len(signal))
}

func TestComputeSTFTShape(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)
	signal := testSine(1000, 0.5, 44100, 44100)

	spec, err := sa.ComputeSTFT(signal, 2048, 512)
	require.NoError(t, err)

	wantFrames := (len(signal)-2048)/512 + 1
	assert.Equal(t, wantFrames, spec.TimeFrames)
	assert.Equal(t, 2048/2+1, spec.FreqBins)
	assert.Len(t, spec.Magnitude, wantFrames)
	assert.Len(t, spec.Magnitude[0], spec.FreqBins)
	assert.InDelta(t, 44100.0/2048.0, spec.FreqResolution, 1e-9)
}

func TestComputeSTFTInvalidArgs(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)
	signal := testSine(1000, 0.5, 44100, 4096)

	_, err := sa.ComputeSTFT(nil, 2048, 512)
	assert.Error(t, err)

	_, err = sa.ComputeSTFT(signal, 0, 512)
	assert.Error(t, err)

	_, err = sa.ComputeSTFT(signal, 2048, 0)
	assert.Error(t, err)
}

func TestComputeSTFTDeterministic(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)
	signal := testSine(1000, 0.5, 44100, 22050)

	first, err := sa.ComputeSTFT(signal, 2048, 512)
	require.NoError(t, err)
	second, err := sa.ComputeSTFT(signal, 2048, 512)
	require.NoError(t, err)

	assert.Equal(t, first.Magnitude, second.Magnitude)
}

func TestFrequencyBins(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)
	freqs := sa.FrequencyBins(1025)

	require.Len(t, freqs, 1025)
	assert.Zero(t, freqs[0])
	assert.InDelta(t, 22050, freqs[1024], 1e-9)
}

func TestSpectralCentroid(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)

	// All energy in one bin puts the centroid exactly there.
	spectrum := []float64{0, 0, 1, 0}
	freqs := []float64{0, 100, 200, 300}
	assert.InDelta(t, 200, sa.SpectralCentroid(spectrum, freqs), 1e-9)

	// Silent spectrum and mismatched lengths yield zero.
	assert.Zero(t, sa.SpectralCentroid([]float64{0, 0}, []float64{0, 100}))
	assert.Zero(t, sa.SpectralCentroid([]float64{1}, []float64{0, 100}))
}

func TestMeanSpectralCentroidSine(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)
	signal := testSine(1000, 0.5, 44100, 44100)

	centroid, err := sa.MeanSpectralCentroid(signal, 2048, 512)
	require.NoError(t, err)
	assert.InDelta(t, 1000, centroid, 100)
}

func TestMeanSpectralCentroidShortSignal(t *testing.T) {
	sa := NewSpectralAnalyzer(44100)
	signal := testSine(1000, 0.5, 44100, 1000)

	// Shorter than one window; falls back to a single FFT frame.
	centroid, err := sa.MeanSpectralCentroid(signal, 2048, 512)
	require.NoError(t, err)
	assert.Greater(t, centroid, 0.0)

	_, err = sa.MeanSpectralCentroid(nil, 2048, 512)
	assert.Error(t, err)
}
