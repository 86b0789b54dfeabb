package dsp

import (
	"errors"
	"math"
)

// Cutoff clipping bounds as fractions of Nyquist. Requested band edges
// outside (0, Nyquist) are clipped here rather than rejected.
const (
	minNormalizedCutoff = 0.001
	maxNormalizedCutoff = 0.999
)

// BandpassOrder is the per-edge order of the bandpass realization: a
// 4th-order Butterworth highpass at the low edge cascaded with a
// 4th-order Butterworth lowpass at the high edge, four second-order
// sections in total.
const BandpassOrder = 4

var (
	// ErrDegenerateBand reports a frequency window that inverted or
	// collapsed after cutoff clipping (low >= high).
	ErrDegenerateBand = errors.New("degenerate frequency band after clipping")

	// ErrUnstableDesign reports a filter design that produced
	// non-finite coefficients.
	ErrUnstableDesign = errors.New("filter design produced non-finite coefficients")
)

// DesignBandpass designs the cascaded second-order sections for a
// Butterworth bandpass between lowHz and highHz. The cutoffs are
// normalized to Nyquist fractions and clipped to
// (minNormalizedCutoff, maxNormalizedCutoff) before design; a window
// that is inverted or collapsed after clipping fails with
// ErrDegenerateBand. Callers that must not fail use BandPass instead.
func DesignBandpass(lowHz, highHz, sampleRate float64) ([]Coefficients, error) {
	if sampleRate <= 0 {
		return nil, ErrUnstableDesign
	}

	nyquist := sampleRate / 2
	lowNorm := clip(lowHz/nyquist, minNormalizedCutoff, maxNormalizedCutoff)
	highNorm := clip(highHz/nyquist, minNormalizedCutoff, maxNormalizedCutoff)

	if lowNorm >= highNorm {
		return nil, ErrDegenerateBand
	}

	sections := make([]Coefficients, 0, BandpassOrder)
	sections = append(sections, butterworthHP(lowNorm*nyquist, BandpassOrder, sampleRate)...)
	sections = append(sections, butterworthLP(highNorm*nyquist, BandpassOrder, sampleRate)...)

	for _, s := range sections {
		if !finiteCoefficients(s) {
			return nil, ErrUnstableDesign
		}
	}

	return sections, nil
}

// BandPass filters samples through the bandpass window in one causal
// forward pass (non-zero group delay; no zero-phase compensation) and
// returns a new slice of identical length. Degenerate windows and
// design failures yield an all-zero slice: one bad band must never
// abort a caller's full analysis.
func BandPass(samples []float64, sampleRate, lowHz, highHz float64) []float64 {
	out := make([]float64, len(samples))

	sections, err := DesignBandpass(lowHz, highHz, sampleRate)
	if err != nil {
		return out
	}

	copy(out, samples)
	NewChain(sections).ProcessBlock(out)

	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			// Unstable application; honor the zero-sequence contract.
			return make([]float64, len(samples))
		}
	}

	return out
}

// butterworthLP designs a lowpass Butterworth cascade of even order.
func butterworthLP(freq float64, order int, sampleRate float64) []Coefficients {
	sections := make([]Coefficients, 0, order/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassBiquad(freq, butterworthQ(order, i), sampleRate))
	}
	return sections
}

// butterworthHP designs a highpass Butterworth cascade of even order.
func butterworthHP(freq float64, order int, sampleRate float64) []Coefficients {
	sections := make([]Coefficients, 0, order/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, highpassBiquad(freq, butterworthQ(order, i), sampleRate))
	}
	return sections
}

// butterworthQ returns the quality factor for Butterworth section
// index, index in [0, order/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// lowpassBiquad designs an RBJ lowpass biquad at freq (Hz) with
// quality factor q.
func lowpassBiquad(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// highpassBiquad designs an RBJ highpass biquad at freq (Hz) with
// quality factor q.
func highpassBiquad(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return Coefficients{}
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// normalizedW0 converts freq (Hz) to rad/sample, rejecting frequencies
// outside (0, Nyquist).
func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}
	return 2 * math.Pi * freq / sampleRate, true
}

// normalizeBiquad divides through by a0.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}
	}

	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

func finiteCoefficients(c Coefficients) bool {
	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	// An all-zero section means a design helper rejected its input.
	return c != Coefficients{}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
