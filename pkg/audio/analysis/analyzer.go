// Package analysis extracts loudness, dynamics, stereo-image and
// spectral descriptors from a decoded buffer. One Analyzer performs
// synchronous, stateless runs: it borrows the input buffer for the
// duration of a call and retains nothing afterwards.
package analysis

import (
	"github.com/RyanBlaney/mixcheck/pkg/logging"
)

// Epsilon is the floor added before every dB conversion so silence
// maps to a finite level instead of log(0).
const Epsilon = 1e-10

// Default frame parameters. Framewise RMS and the spectral centroid
// STFT both use a 2048-sample window with a 512-sample hop; the
// centroid additionally applies a Hann window per frame.
const (
	DefaultFrameLength    = 2048
	DefaultHopLength      = 512
	DefaultCentroidWindow = 2048
	DefaultCentroidHop    = 512
)

// Config holds the analysis frame parameters.
type Config struct {
	FrameLength    int `mapstructure:"frame_length" json:"frame_length"`
	HopLength      int `mapstructure:"hop_length" json:"hop_length"`
	CentroidWindow int `mapstructure:"centroid_window" json:"centroid_window"`
	CentroidHop    int `mapstructure:"centroid_hop" json:"centroid_hop"`
}

// DefaultConfig returns the default frame parameters.
func DefaultConfig() Config {
	return Config{
		FrameLength:    DefaultFrameLength,
		HopLength:      DefaultHopLength,
		CentroidWindow: DefaultCentroidWindow,
		CentroidHop:    DefaultCentroidHop,
	}
}

// normalize falls back to defaults for unset or nonsensical values so
// a zero Config behaves like DefaultConfig.
func (c Config) normalize() Config {
	if c.FrameLength <= 0 {
		c.FrameLength = DefaultFrameLength
	}
	if c.HopLength <= 0 {
		c.HopLength = DefaultHopLength
	}
	if c.CentroidWindow <= 0 {
		c.CentroidWindow = DefaultCentroidWindow
	}
	if c.CentroidHop <= 0 {
		c.CentroidHop = DefaultCentroidHop
	}
	return c
}

// Analyzer computes mix and instrument descriptors.
type Analyzer struct {
	config Config
	logger logging.Logger
}

// NewAnalyzer creates an Analyzer with the given frame parameters.
func NewAnalyzer(config Config) *Analyzer {
	cfg := config.normalize()
	return &Analyzer{
		config: cfg,
		logger: logging.WithFields(logging.Fields{
			"component":    "analyzer",
			"frame_length": cfg.FrameLength,
			"hop_length":   cfg.HopLength,
		}),
	}
}
