package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/RyanBlaney/mixcheck/pkg/logging"
)

// DecodeWAVFile reads a PCM WAV file into a Buffer. This is the only
// container format the CLI handles; anything richer belongs to an
// external decode step that hands the analyzer per-channel floats.
func DecodeWAVFile(path string) (*Buffer, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "wav_decoder",
		"path":      path,
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%s is not a valid WAV file", path)
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data from %s: %w", path, err)
	}
	if pcm.Format == nil {
		return nil, fmt.Errorf("%s carries no format information", path)
	}

	numChannels := pcm.Format.NumChannels
	sampleRate := pcm.Format.SampleRate
	bitDepth := pcm.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}

	if numChannels <= 0 {
		return nil, fmt.Errorf("%w: WAV reports %d channels", ErrInvalidBuffer, numChannels)
	}

	frames := len(pcm.Data) / numChannels
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	channels := make([][]float64, numChannels)
	for c := range channels {
		channels[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < numChannels; c++ {
			channels[c][i] = float64(pcm.Data[i*numChannels+c]) * scale
		}
	}

	buf, err := NewBuffer(sampleRate, channels)
	if err != nil {
		return nil, err
	}

	logger.Debug("decoded WAV file", logging.Fields{
		"sample_rate": sampleRate,
		"channels":    numChannels,
		"bit_depth":   bitDepth,
		"duration_s":  buf.Duration(),
	})

	return buf, nil
}
