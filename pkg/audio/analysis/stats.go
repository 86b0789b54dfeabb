package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// toDB converts a linear amplitude to decibels with the epsilon floor.
func toDB(amplitude float64) float64 {
	return 20 * math.Log10(amplitude+Epsilon)
}

// maxAbs returns the largest absolute sample value.
func maxAbs(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// rms returns the whole-signal root-mean-square amplitude.
func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// frameRMS computes per-frame RMS values over fully contained frames
// at hop intervals. A signal shorter than one frame yields a single
// whole-signal frame.
func frameRMS(samples []float64, frameLength, hopLength int) []float64 {
	if len(samples) < frameLength {
		return []float64{rms(samples)}
	}

	numFrames := (len(samples)-frameLength)/hopLength + 1
	values := make([]float64, numFrames)
	for i := range numFrames {
		start := i * hopLength
		values[i] = rms(samples[start : start+frameLength])
	}
	return values
}

// mean returns the arithmetic mean.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// percentileSpread returns percentile(high) - percentile(low) of
// values, linearly interpolated.
func percentileSpread(values []float64, low, high float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	hi := stat.Quantile(high, stat.LinInterp, sorted, nil)
	lo := stat.Quantile(low, stat.LinInterp, sorted, nil)
	return hi - lo
}

// clipTo clamps v into [lo, hi].
func clipTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
