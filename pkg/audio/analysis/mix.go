package analysis

import (
	"sync"

	"github.com/RyanBlaney/mixcheck/pkg/audio"
	"github.com/RyanBlaney/mixcheck/pkg/audio/dsp"
	"github.com/RyanBlaney/mixcheck/pkg/logging"
)

// AnalyzeMix computes the whole-mix descriptor for a decoded buffer.
// The only failure mode is an invalid buffer; every downstream
// computation is epsilon-guarded or absorbed by the band filter's
// zero-sequence contract.
func (a *Analyzer) AnalyzeMix(buf *audio.Buffer) (*MixFeatures, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	logger := a.logger.WithFields(logging.Fields{
		"function":    "AnalyzeMix",
		"channels":    buf.NumChannels(),
		"sample_rate": buf.SampleRate(),
		"duration_s":  buf.Duration(),
	})
	logger.Debug("analyzing 2-mix")

	mono := buf.Downmix()

	// Loudness is the mean of linear per-frame RMS values, converted
	// to dB once. The instrument path intentionally differs (whole
	// signal RMS); see AnalyzeInstrument.
	frames := frameRMS(mono, a.config.FrameLength, a.config.HopLength)
	rmsDB := toDB(mean(frames))

	peakDB := toDB(maxAbs(mono))

	features := &MixFeatures{
		RMSDB:          rmsDB,
		PeakDB:         peakDB,
		CrestFactorDB:  peakDB - rmsDB,
		StereoWidthPct: stereoWidth(buf),
		BandEnergies:   a.bandEnergies(mono, buf.SampleRate()),
		DynamicRangeDB: dynamicRange(frames),
		DurationS:      buf.Duration(),
	}

	logger.Debug("2-mix analysis completed", logging.Fields{
		"rms_db":        features.RMSDB,
		"peak_db":       features.PeakDB,
		"crest_factor":  features.CrestFactorDB,
		"stereo_width":  features.StereoWidthPct,
		"dynamic_range": features.DynamicRangeDB,
	})

	return features, nil
}

// stereoWidth measures the share of energy in the side component of a
// mid/side decomposition, as a 0-100 percentage. Mono buffers and
// silent buffers measure 0.
func stereoWidth(buf *audio.Buffer) float64 {
	if buf.NumChannels() < 2 {
		return 0
	}

	left := buf.Channel(0)
	right := buf.Channel(1)

	midEnergy := 0.0
	sideEnergy := 0.0
	for i := range left {
		mid := (left[i] + right[i]) / 2
		side := (left[i] - right[i]) / 2
		midEnergy += mid * mid
		sideEnergy += side * side
	}

	if midEnergy+sideEnergy == 0 {
		return 0
	}

	width := 100 * sideEnergy / (midEnergy + sideEnergy)
	return clipTo(width, 0, 100)
}

// bandEnergies computes the seven-band energy profile. Bands are
// independent, so each runs on its own goroutine writing to its own
// slot; output order is the fixed table order regardless of completion
// order. A degenerate or unstable band yields the filter's zero
// sequence and therefore the epsilon floor in dB, never an error.
func (a *Analyzer) bandEnergies(mono []float64, sampleRate int) BandEnergies {
	bands := FullMixBands()
	energies := make([]float64, len(bands))

	var wg sync.WaitGroup
	for i, band := range bands {
		wg.Add(1)
		go func() {
			defer wg.Done()
			filtered := dsp.BandPass(mono, float64(sampleRate), band.LowHz, band.HighHz)
			energies[i] = toDB(rms(filtered))
		}()
	}
	wg.Wait()

	var result BandEnergies
	for i, band := range bands {
		result.set(band.Label, energies[i])
	}
	return result
}

// dynamicRange is the spread between the 95th and 10th percentile of
// framewise loudness in dB.
func dynamicRange(frames []float64) float64 {
	framesDB := make([]float64, len(frames))
	for i, v := range frames {
		framesDB[i] = toDB(v)
	}
	return percentileSpread(framesDB, 0.10, 0.95)
}
