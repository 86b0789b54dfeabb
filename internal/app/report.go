package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/RyanBlaney/mixcheck/pkg/audio/analysis"
	"github.com/RyanBlaney/mixcheck/pkg/recommend"
)

// MetadataUnknown is the sentinel written for session metadata the
// operator did not supply. Sentinels are resolved here at the
// reporting boundary; the numeric core never sees metadata.
const MetadataUnknown = "unknown"

// SessionMetadata is the free-text context attached to one analysis
// run: where it happened and on what rig.
type SessionMetadata struct {
	AnalysisName  string `json:"analysis_name" yaml:"analysis_name"`
	Venue         string `json:"venue" yaml:"venue"`
	VenueCapacity int    `json:"venue_capacity,omitempty" yaml:"venue_capacity,omitempty"`
	Mixer         string `json:"mixer" yaml:"mixer"`
	PASystem      string `json:"pa_system" yaml:"pa_system"`
	BandLineup    string `json:"band_lineup" yaml:"band_lineup"`
	Notes         string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// withSentinels fills unset fields with the explicit unknown sentinel.
// Notes stay empty: absence of free-form notes is itself meaningful.
func (m SessionMetadata) withSentinels() SessionMetadata {
	if m.AnalysisName == "" {
		m.AnalysisName = MetadataUnknown
	}
	if m.Venue == "" {
		m.Venue = MetadataUnknown
	}
	if m.Mixer == "" {
		m.Mixer = MetadataUnknown
	}
	if m.PASystem == "" {
		m.PASystem = MetadataUnknown
	}
	if m.BandLineup == "" {
		m.BandLineup = MetadataUnknown
	}
	return m
}

// Report is the full descriptor bundle for one run: the contract
// consumed by persistence and presentation collaborators.
type Report struct {
	RunID       string                        `json:"run_id" yaml:"run_id"`
	Timestamp   time.Time                     `json:"timestamp" yaml:"timestamp"`
	SourceFile  string                        `json:"source_file" yaml:"source_file"`
	Metadata    SessionMetadata               `json:"metadata" yaml:"metadata"`
	Mix         *analysis.MixFeatures         `json:"mix" yaml:"mix"`
	Instruments []analysis.InstrumentFeatures `json:"instruments" yaml:"instruments"`
	Advice      *recommend.Advice             `json:"recommendations" yaml:"recommendations"`
}

// NewReport assembles a report bundle with a fresh run id and sentinel
// resolution applied to the metadata.
func NewReport(sourceFile string, metadata SessionMetadata, mix *analysis.MixFeatures,
	instruments []analysis.InstrumentFeatures, advice *recommend.Advice) *Report {

	return &Report{
		RunID:       uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		SourceFile:  sourceFile,
		Metadata:    metadata.withSentinels(),
		Mix:         mix,
		Instruments: instruments,
		Advice:      advice,
	}
}
