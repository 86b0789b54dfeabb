package configs

import (
	"github.com/spf13/viper"

	"github.com/RyanBlaney/mixcheck/pkg/audio/analysis"
)

// SetDefaults registers default configuration values with viper.
func SetDefaults() {
	// Application defaults
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("output_format", "table")

	// Analysis defaults: frame 2048 / hop 512 for framewise RMS and
	// for the spectral centroid STFT.
	viper.SetDefault("analysis.frame_length", analysis.DefaultFrameLength)
	viper.SetDefault("analysis.hop_length", analysis.DefaultHopLength)
	viper.SetDefault("analysis.centroid_window", analysis.DefaultCentroidWindow)
	viper.SetDefault("analysis.centroid_hop", analysis.DefaultCentroidHop)

	// Output defaults
	viper.SetDefault("output.precision", 1)
	viper.SetDefault("output.include_metadata", true)
	viper.SetDefault("output.pretty", true)
}
