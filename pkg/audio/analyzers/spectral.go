// Package analyzers provides the frequency-domain analysis primitives
// the feature extractors build on.
package analyzers

import (
	"fmt"
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/RyanBlaney/mixcheck/pkg/logging"
)

// SpectralAnalyzer provides FFT and short-time spectral analysis.
type SpectralAnalyzer struct {
	sampleRate int
	logger     logging.Logger
}

// SpectrogramResult holds the magnitude output of STFT analysis.
type SpectrogramResult struct {
	Magnitude      [][]float64 `json:"magnitude"`       // Time x Frequency magnitude matrix
	TimeFrames     int         `json:"time_frames"`     // Number of time frames
	FreqBins       int         `json:"freq_bins"`       // Number of frequency bins
	SampleRate     int         `json:"sample_rate"`     // Sample rate
	WindowSize     int         `json:"window_size"`     // FFT window size
	HopSize        int         `json:"hop_size"`        // Hop size between frames
	FreqResolution float64     `json:"freq_resolution"` // Frequency resolution (Hz/bin)
}

// NewSpectralAnalyzer creates a new spectral analyzer.
func NewSpectralAnalyzer(sampleRate int) *SpectralAnalyzer {
	return &SpectralAnalyzer{
		sampleRate: sampleRate,
		logger: logging.WithFields(logging.Fields{
			"component":   "spectral_analyzer",
			"sample_rate": sampleRate,
		}),
	}
}

// FFT computes the Fast Fourier Transform using mjibson/go-dsp, which
// handles non-power-of-2 sizes.
func (sa *SpectralAnalyzer) FFT(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFTReal(x)
}

// ComputeSTFT computes a Hann-windowed magnitude spectrogram with
// frames processed on a bounded worker pool. Frame indices map
// directly into the result matrix, so parallel order never leaks into
// the output.
func (sa *SpectralAnalyzer) ComputeSTFT(signal []float64, windowSize, hopSize int) (*SpectrogramResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive")
	}
	if hopSize <= 0 {
		return nil, fmt.Errorf("hop size must be positive")
	}

	logger := sa.logger.WithFields(logging.Fields{
		"function":      "ComputeSTFT",
		"signal_length": len(signal),
		"window_size":   windowSize,
		"hop_size":      hopSize,
	})

	numFrames := (len(signal)-windowSize)/hopSize + 1
	if numFrames <= 0 {
		return nil, fmt.Errorf("signal too short for given window size and hop size")
	}

	freqBins := windowSize/2 + 1
	hann := window.Hann(windowSize)

	magnitude := make([][]float64, numFrames)
	for i := range magnitude {
		magnitude[i] = make([]float64, freqBins)
	}

	numWorkers := sa.optimalWorkerCount(numFrames)
	jobs := make(chan int, numFrames)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			frameBuffer := make([]float64, windowSize)

			for frameIdx := range jobs {
				start := frameIdx * hopSize
				end := start + windowSize
				if end > len(signal) {
					continue
				}

				copy(frameBuffer, signal[start:end])
				for i := range frameBuffer {
					frameBuffer[i] *= hann[i]
				}

				fftResult := sa.FFT(frameBuffer)
				for i := range freqBins {
					magnitude[frameIdx][i] = cmplx.Abs(fftResult[i])
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for frameIdx := range numFrames {
			jobs <- frameIdx
		}
	}()

	wg.Wait()

	result := &SpectrogramResult{
		Magnitude:      magnitude,
		TimeFrames:     numFrames,
		FreqBins:       freqBins,
		SampleRate:     sa.sampleRate,
		WindowSize:     windowSize,
		HopSize:        hopSize,
		FreqResolution: float64(sa.sampleRate) / float64(windowSize),
	}

	logger.Debug("STFT computation completed", logging.Fields{
		"time_frames":  result.TimeFrames,
		"freq_bins":    result.FreqBins,
		"workers_used": numWorkers,
	})

	return result, nil
}

// FrequencyBins returns the frequency value (Hz) for each FFT bin.
func (sa *SpectralAnalyzer) FrequencyBins(numBins int) []float64 {
	freqs := make([]float64, numBins)
	for i := range numBins {
		freqs[i] = float64(i) * float64(sa.sampleRate) / float64((numBins-1)*2)
	}
	return freqs
}

// SpectralCentroid computes the magnitude-weighted mean frequency of a
// single magnitude spectrum frame.
func (sa *SpectralAnalyzer) SpectralCentroid(spectrum, freqs []float64) float64 {
	if len(spectrum) != len(freqs) {
		return 0
	}

	numerator := 0.0
	denominator := 0.0
	for i := range spectrum {
		numerator += freqs[i] * spectrum[i]
		denominator += spectrum[i]
	}

	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// MeanSpectralCentroid computes the per-frame spectral centroid over a
// Hann STFT and averages across frames. Signals shorter than one
// window fall back to a single whole-signal FFT frame.
func (sa *SpectralAnalyzer) MeanSpectralCentroid(signal []float64, windowSize, hopSize int) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("empty signal")
	}

	if len(signal) < windowSize {
		fftResult := sa.FFT(signal)
		freqBins := len(fftResult)/2 + 1
		spectrum := make([]float64, freqBins)
		for i := range freqBins {
			spectrum[i] = cmplx.Abs(fftResult[i])
		}
		return sa.SpectralCentroid(spectrum, sa.FrequencyBins(freqBins)), nil
	}

	spectrogram, err := sa.ComputeSTFT(signal, windowSize, hopSize)
	if err != nil {
		return 0, err
	}

	freqs := sa.FrequencyBins(spectrogram.FreqBins)

	sum := 0.0
	for t := range spectrogram.TimeFrames {
		sum += sa.SpectralCentroid(spectrogram.Magnitude[t], freqs)
	}

	return sum / float64(spectrogram.TimeFrames), nil
}

// optimalWorkerCount bounds worker goroutines by CPU count and frame
// count.
func (sa *SpectralAnalyzer) optimalWorkerCount(numFrames int) int {
	workers := runtime.NumCPU()
	if numFrames < workers {
		workers = numFrames
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
