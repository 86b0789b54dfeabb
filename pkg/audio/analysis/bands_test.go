package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullMixBandsTable(t *testing.T) {
	bands := FullMixBands()
	require.Len(t, bands, 7)

	assert.Equal(t, BandDefinition{Label: "sub_bass", LowHz: 20, HighHz: 60}, bands[0])
	assert.Equal(t, BandDefinition{Label: "brilliance", LowHz: 8000, HighHz: 20000}, bands[6])

	for _, band := range bands {
		assert.Less(t, band.LowHz, band.HighHz, "band %s", band.Label)
	}
}

func TestInstrumentWindowsTable(t *testing.T) {
	windows := InstrumentWindows()
	require.Len(t, windows, 5)

	labels := make([]string, len(windows))
	for i, w := range windows {
		labels[i] = w.Label
		assert.Less(t, w.LowHz, w.HighHz, "window %s", w.Label)
	}
	assert.Equal(t, []string{"vocals", "kick", "snare", "bass", "guitar"}, labels)
}

func TestBandTablesReturnCopies(t *testing.T) {
	bands := FullMixBands()
	bands[0].Label = "mangled"
	assert.Equal(t, "sub_bass", FullMixBands()[0].Label)

	windows := InstrumentWindows()
	windows[0].LowHz = -1
	assert.Equal(t, 200.0, InstrumentWindows()[0].LowHz)
}

func TestBandEnergiesGet(t *testing.T) {
	energies := BandEnergies{Bass: -12.5, Brilliance: -40}

	v, ok := energies.Get("bass")
	require.True(t, ok)
	assert.Equal(t, -12.5, v)

	v, ok = energies.Get("brilliance")
	require.True(t, ok)
	assert.Equal(t, -40.0, v)

	_, ok = energies.Get("air")
	assert.False(t, ok)
}
