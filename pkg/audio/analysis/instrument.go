package analysis

import (
	"sync"

	"github.com/RyanBlaney/mixcheck/pkg/audio"
	"github.com/RyanBlaney/mixcheck/pkg/audio/analyzers"
	"github.com/RyanBlaney/mixcheck/pkg/audio/dsp"
	"github.com/RyanBlaney/mixcheck/pkg/logging"
)

// AnalyzeInstrument computes narrowband descriptors for one frequency
// window.
//
// RMSDB here is a single whole-signal RMS converted to dB, unlike the
// mix path's framewise-mean-then-dB. The asymmetry is inherited
// behavior and is kept deliberately: unifying the two would shift
// every stored instrument level.
func (a *Analyzer) AnalyzeInstrument(buf *audio.Buffer, window InstrumentWindow) (*InstrumentFeatures, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	logger := a.logger.WithFields(logging.Fields{
		"function":   "AnalyzeInstrument",
		"instrument": window.Label,
		"low_hz":     window.LowHz,
		"high_hz":    window.HighHz,
	})
	logger.Debug("analyzing instrument window")

	mono := buf.Downmix()
	filtered := dsp.BandPass(mono, float64(buf.SampleRate()), window.LowHz, window.HighHz)

	spectral := analyzers.NewSpectralAnalyzer(buf.SampleRate())
	centroid, err := spectral.MeanSpectralCentroid(filtered, a.config.CentroidWindow, a.config.CentroidHop)
	if err != nil {
		// Validate guarantees a non-empty signal, so the only STFT
		// failures are parameter mistakes; treat them as zero
		// brightness rather than aborting sibling windows.
		logger.Error(err, "spectral centroid computation failed")
		centroid = 0
	}

	return &InstrumentFeatures{
		Name:               window.Label,
		FreqRange:          [2]float64{window.LowHz, window.HighHz},
		RMSDB:              toDB(rms(filtered)),
		PeakDB:             toDB(maxAbs(filtered)),
		SpectralCentroidHz: centroid,
	}, nil
}

// AnalyzeInstruments runs every configured instrument window against
// the buffer. Windows are independent and run in parallel; the result
// slice is always in fixed table order.
func (a *Analyzer) AnalyzeInstruments(buf *audio.Buffer) ([]InstrumentFeatures, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	windows := InstrumentWindows()
	results := make([]InstrumentFeatures, len(windows))

	var wg sync.WaitGroup
	for i, window := range windows {
		wg.Add(1)
		go func() {
			defer wg.Done()
			features, err := a.AnalyzeInstrument(buf, window)
			if err != nil {
				// Unreachable past the Validate above; keep the slot's
				// zero value rather than failing siblings.
				return
			}
			results[i] = *features
		}()
	}
	wg.Wait()

	return results, nil
}
