package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/mixcheck/pkg/audio/analysis"
	"github.com/RyanBlaney/mixcheck/pkg/recommend"
)

func TestNewReportFillsSentinels(t *testing.T) {
	metadata := SessionMetadata{Venue: "Paradiso"}

	report := NewReport("mix.wav", metadata, &analysis.MixFeatures{}, nil, &recommend.Advice{})

	assert.Equal(t, "mix.wav", report.SourceFile)
	assert.Equal(t, "Paradiso", report.Metadata.Venue)
	assert.Equal(t, MetadataUnknown, report.Metadata.AnalysisName)
	assert.Equal(t, MetadataUnknown, report.Metadata.Mixer)
	assert.Equal(t, MetadataUnknown, report.Metadata.PASystem)
	assert.Equal(t, MetadataUnknown, report.Metadata.BandLineup)

	// Notes stay empty when not supplied.
	assert.Empty(t, report.Metadata.Notes)
}

func TestNewReportRunID(t *testing.T) {
	first := NewReport("a.wav", SessionMetadata{}, &analysis.MixFeatures{}, nil, &recommend.Advice{})
	second := NewReport("a.wav", SessionMetadata{}, &analysis.MixFeatures{}, nil, &recommend.Advice{})

	_, err := uuid.Parse(first.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)

	assert.False(t, first.Timestamp.IsZero())
	assert.Equal(t, "UTC", first.Timestamp.Location().String())
}

func TestWithSentinelsPreservesSetFields(t *testing.T) {
	metadata := SessionMetadata{
		AnalysisName:  "soundcheck",
		Venue:         "013",
		VenueCapacity: 3000,
		Mixer:         "house",
		PASystem:      "d&b",
		BandLineup:    "quartet",
		Notes:         "loud stage",
	}

	assert.Equal(t, metadata, metadata.withSentinels())
}
