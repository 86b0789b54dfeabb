package analysis

// MixFeatures is the whole-mix descriptor. Field names and units match
// the record consumed by persistence and presentation collaborators:
// levels in dBFS, stereo width as a 0-100 percentage, duration in
// seconds. Computed once per run and immutable thereafter.
type MixFeatures struct {
	RMSDB          float64      `json:"rms_db" yaml:"rms_db"`
	PeakDB         float64      `json:"peak_db" yaml:"peak_db"`
	CrestFactorDB  float64      `json:"crest_factor" yaml:"crest_factor"`
	StereoWidthPct float64      `json:"stereo_width" yaml:"stereo_width"`
	BandEnergies   BandEnergies `json:"band_energies" yaml:"band_energies"`
	DynamicRangeDB float64      `json:"dynamic_range" yaml:"dynamic_range"`
	DurationS      float64      `json:"duration" yaml:"duration"`
}

// BandEnergies holds the seven-band energy profile in dB. A struct
// rather than a map keeps serialization in fixed table order.
type BandEnergies struct {
	SubBass    float64 `json:"sub_bass" yaml:"sub_bass"`
	Bass       float64 `json:"bass" yaml:"bass"`
	LowMid     float64 `json:"low_mid" yaml:"low_mid"`
	Mid        float64 `json:"mid" yaml:"mid"`
	HighMid    float64 `json:"high_mid" yaml:"high_mid"`
	Presence   float64 `json:"presence" yaml:"presence"`
	Brilliance float64 `json:"brilliance" yaml:"brilliance"`
}

// Get returns the energy for a band label from the fixed table.
func (b BandEnergies) Get(label string) (float64, bool) {
	switch label {
	case "sub_bass":
		return b.SubBass, true
	case "bass":
		return b.Bass, true
	case "low_mid":
		return b.LowMid, true
	case "mid":
		return b.Mid, true
	case "high_mid":
		return b.HighMid, true
	case "presence":
		return b.Presence, true
	case "brilliance":
		return b.Brilliance, true
	}
	return 0, false
}

// set assigns by label; band computations write through here so the
// table stays the single source of label truth.
func (b *BandEnergies) set(label string, energyDB float64) {
	switch label {
	case "sub_bass":
		b.SubBass = energyDB
	case "bass":
		b.Bass = energyDB
	case "low_mid":
		b.LowMid = energyDB
	case "mid":
		b.Mid = energyDB
	case "high_mid":
		b.HighMid = energyDB
	case "presence":
		b.Presence = energyDB
	case "brilliance":
		b.Brilliance = energyDB
	}
}

// InstrumentFeatures is the narrowband descriptor for one configured
// instrument window.
type InstrumentFeatures struct {
	Name               string     `json:"name" yaml:"name"`
	FreqRange          [2]float64 `json:"freq_range" yaml:"freq_range,flow"`
	RMSDB              float64    `json:"rms_db" yaml:"rms_db"`
	PeakDB             float64    `json:"peak_db" yaml:"peak_db"`
	SpectralCentroidHz float64    `json:"spectral_centroid" yaml:"spectral_centroid"`
}
