package analysis

// BandDefinition is a labeled frequency window. Low < High holds for
// every definition in the fixed tables below; degenerate windows only
// arise at runtime after Nyquist clipping and are absorbed by the
// band filter.
type BandDefinition struct {
	Label  string  `json:"label"`
	LowHz  float64 `json:"low_hz"`
	HighHz float64 `json:"high_hz"`
}

// InstrumentWindow is the analysis window for one instrument group.
type InstrumentWindow struct {
	Label  string  `json:"label"`
	LowHz  float64 `json:"low_hz"`
	HighHz float64 `json:"high_hz"`
}

// fullMixBands is the process-wide seven-band split used for the
// whole-mix energy profile. Table order is the output order.
var fullMixBands = [...]BandDefinition{
	{Label: "sub_bass", LowHz: 20, HighHz: 60},
	{Label: "bass", LowHz: 60, HighHz: 250},
	{Label: "low_mid", LowHz: 250, HighHz: 500},
	{Label: "mid", LowHz: 500, HighHz: 2000},
	{Label: "high_mid", LowHz: 2000, HighHz: 4000},
	{Label: "presence", LowHz: 4000, HighHz: 8000},
	{Label: "brilliance", LowHz: 8000, HighHz: 20000},
}

// instrumentWindows is the process-wide instrument window table.
// Table order is the output order.
var instrumentWindows = [...]InstrumentWindow{
	{Label: "vocals", LowHz: 200, HighHz: 4000},
	{Label: "kick", LowHz: 40, HighHz: 100},
	{Label: "snare", LowHz: 150, HighHz: 250},
	{Label: "bass", LowHz: 60, HighHz: 250},
	{Label: "guitar", LowHz: 200, HighHz: 5000},
}

// FullMixBands returns the seven fixed full-mix bands in table order.
// The returned slice is a copy; the table itself is never mutated.
func FullMixBands() []BandDefinition {
	bands := make([]BandDefinition, len(fullMixBands))
	copy(bands, fullMixBands[:])
	return bands
}

// InstrumentWindows returns the fixed instrument windows in table
// order. The returned slice is a copy.
func InstrumentWindows() []InstrumentWindow {
	windows := make([]InstrumentWindow, len(instrumentWindows))
	copy(windows, instrumentWindows[:])
	return windows
}
