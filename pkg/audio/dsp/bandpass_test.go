package dsp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSine(freq, amplitude float64, sampleRate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return out
}

func signalRMS(samples []float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestDesignBandpassValidWindow(t *testing.T) {
	sections, err := DesignBandpass(100, 2000, 44100)
	require.NoError(t, err)
	assert.Len(t, sections, BandpassOrder)

	for _, s := range sections {
		assert.True(t, finiteCoefficients(s))
	}
}

func TestDesignBandpassDegenerateWindows(t *testing.T) {
	tests := []struct {
		name       string
		low, high  float64
		sampleRate float64
	}{
		{"inverted", 100, 50, 44100},
		{"collapsed", 1000, 1000, 44100},
		{"both clipped high", 30000, 40000, 44100},
		{"both clipped low", 0, 0.001, 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DesignBandpass(tt.low, tt.high, tt.sampleRate)
			assert.ErrorIs(t, err, ErrDegenerateBand)
		})
	}
}

func TestDesignBandpassBadSampleRate(t *testing.T) {
	_, err := DesignBandpass(100, 2000, 0)
	assert.ErrorIs(t, err, ErrUnstableDesign)
}

func TestBandPassInvertedWindowReturnsZeros(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	input := make([]float64, 4096)
	for i := range input {
		input[i] = rng.Float64()*2 - 1
	}

	out := BandPass(input, 44100, 100, 50)
	require.Len(t, out, len(input))
	for _, v := range out {
		assert.Zero(t, v)
	}
}

func TestBandPassPreservesLength(t *testing.T) {
	input := makeSine(440, 0.5, 44100, 12345)
	out := BandPass(input, 44100, 100, 2000)
	assert.Len(t, out, len(input))
}

func TestBandPassInBandToneSurvives(t *testing.T) {
	input := makeSine(1000, 0.5, 44100, 44100)
	out := BandPass(input, 44100, 500, 2000)

	inRMS := signalRMS(input)
	outRMS := signalRMS(out)
	assert.Greater(t, outRMS, 0.5*inRMS, "in-band tone should pass mostly unattenuated")
}

func TestBandPassOutOfBandToneAttenuated(t *testing.T) {
	input := makeSine(1000, 0.5, 44100, 44100)
	out := BandPass(input, 44100, 5000, 8000)

	inRMS := signalRMS(input)
	outRMS := signalRMS(out)
	assert.Less(t, outRMS, 0.05*inRMS, "tone far below the band should be strongly attenuated")
}

func TestBandPassDoesNotMutateInput(t *testing.T) {
	input := makeSine(440, 0.5, 44100, 4096)
	snapshot := make([]float64, len(input))
	copy(snapshot, input)

	_ = BandPass(input, 44100, 100, 2000)
	assert.Equal(t, snapshot, input)
}

func TestSectionBlockMatchesSampleProcessing(t *testing.T) {
	coeffs, err := DesignBandpass(200, 4000, 44100)
	require.NoError(t, err)

	input := makeSine(440, 0.5, 44100, 2048)

	blockOut := make([]float64, len(input))
	copy(blockOut, input)
	NewChain(coeffs).ProcessBlock(blockOut)

	chain := NewChain(coeffs)
	for i, x := range input {
		y := x
		for s := range chain.sections {
			y = chain.sections[s].ProcessSample(y)
		}
		assert.InDelta(t, blockOut[i], y, 1e-12)
	}
}

func TestChainReset(t *testing.T) {
	coeffs, err := DesignBandpass(200, 4000, 44100)
	require.NoError(t, err)

	input := makeSine(440, 0.5, 44100, 2048)

	first := make([]float64, len(input))
	copy(first, input)
	chain := NewChain(coeffs)
	chain.ProcessBlock(first)

	chain.Reset()

	second := make([]float64, len(input))
	copy(second, input)
	chain.ProcessBlock(second)

	assert.Equal(t, first, second)
}

func TestChainOrder(t *testing.T) {
	coeffs, err := DesignBandpass(200, 4000, 44100)
	require.NoError(t, err)

	chain := NewChain(coeffs)
	assert.Equal(t, BandpassOrder, chain.NumSections())
	assert.Equal(t, 2*BandpassOrder, chain.Order())
}
