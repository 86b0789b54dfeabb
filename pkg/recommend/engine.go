// Package recommend maps a computed mix descriptor to categorized
// advisory text. Evaluation is pure and deterministic: metrics are
// checked in a fixed order (rms, peak, crest factor, stereo width) and
// each contributes at most one message.
package recommend

import (
	"fmt"

	"github.com/RyanBlaney/mixcheck/pkg/audio/analysis"
)

// Category ranks a recommendation.
type Category string

const (
	CategoryCritical  Category = "critical"
	CategoryImportant Category = "important"
	CategoryGood      Category = "good"
)

// Recommendation is one advisory message tied to the metric that
// produced it.
type Recommendation struct {
	Category Category `json:"category" yaml:"category"`
	Metric   string   `json:"metric" yaml:"metric"`
	Message  string   `json:"message" yaml:"message"`
}

// Advice groups recommendations by category, each list in metric
// evaluation order.
type Advice struct {
	Critical  []Recommendation `json:"critical" yaml:"critical"`
	Important []Recommendation `json:"important" yaml:"important"`
	Good      []Recommendation `json:"good" yaml:"good"`
}

// Metric tags attached to recommendations.
const (
	MetricRMS         = "rms_db"
	MetricPeak        = "peak_db"
	MetricCrestFactor = "crest_factor"
	MetricStereoWidth = "stereo_width"
)

// Level thresholds in dB / percent. The gaps between the critical (or
// important) bands and the good bands are deliberate: a value inside a
// gap produces no message for that metric.
const (
	rmsCriticalLow   = -23.0
	rmsCriticalHigh  = -14.0
	rmsGoodLow       = -20.0
	rmsGoodHigh      = -16.0
	peakCriticalHigh = -1.0
	peakImportantLow = -6.0
	crestLow         = 8.0
	crestHigh        = 16.0
	crestGoodLow     = 10.0
	crestGoodHigh    = 14.0
	widthNarrow      = 30.0
	widthWide        = 80.0
	widthGoodLow     = 50.0
	widthGoodHigh    = 70.0
)

// Evaluate classifies a mix descriptor into critical, important, and
// good findings. Two calls with the same descriptor produce identical,
// identically ordered output.
func Evaluate(features *analysis.MixFeatures) *Advice {
	advice := &Advice{
		Critical:  []Recommendation{},
		Important: []Recommendation{},
		Good:      []Recommendation{},
	}

	evaluateRMS(features.RMSDB, advice)
	evaluatePeak(features.PeakDB, advice)
	evaluateCrestFactor(features.CrestFactorDB, advice)
	evaluateStereoWidth(features.StereoWidthPct, advice)

	return advice
}

func evaluateRMS(rms float64, advice *Advice) {
	switch {
	case rms < rmsCriticalLow:
		advice.add(CategoryCritical, MetricRMS, fmt.Sprintf(
			"Overall level is too low (%.1f dB). Raise the master fader and aim for around -18 dB.", rms))
	case rms > rmsCriticalHigh:
		advice.add(CategoryCritical, MetricRMS, fmt.Sprintf(
			"Overall level is too high (%.1f dB). There is no headroom left and distortion is a risk.", rms))
	case rms >= rmsGoodLow && rms <= rmsGoodHigh:
		advice.add(CategoryGood, MetricRMS, fmt.Sprintf(
			"Overall level is appropriate (%.1f dB). Well suited for a live room.", rms))
	}
}

func evaluatePeak(peak float64, advice *Advice) {
	switch {
	case peak > peakCriticalHigh:
		advice.add(CategoryCritical, MetricPeak, fmt.Sprintf(
			"Peak level is too high (%.1f dB). Clipping is a real risk.", peak))
	case peak < peakImportantLow:
		advice.add(CategoryImportant, MetricPeak, fmt.Sprintf(
			"Peak level has spare headroom (%.1f dB). The mix can come up louder.", peak))
	}
}

func evaluateCrestFactor(crest float64, advice *Advice) {
	switch {
	case crest < crestLow:
		advice.add(CategoryImportant, MetricCrestFactor, fmt.Sprintf(
			"Crest factor is low (%.1f dB). The mix may be over-compressed.", crest))
	case crest > crestHigh:
		advice.add(CategoryImportant, MetricCrestFactor, fmt.Sprintf(
			"Crest factor is high (%.1f dB). Dynamics may be wider than the room can carry.", crest))
	case crest >= crestGoodLow && crest <= crestGoodHigh:
		advice.add(CategoryGood, MetricCrestFactor, fmt.Sprintf(
			"Crest factor is ideal (%.1f dB). Good dynamic balance.", crest))
	}
}

func evaluateStereoWidth(width float64, advice *Advice) {
	switch {
	case width < widthNarrow:
		advice.add(CategoryImportant, MetricStereoWidth, fmt.Sprintf(
			"Stereo width is narrow (%.1f%%). Revisit the panning.", width))
	case width > widthWide:
		advice.add(CategoryImportant, MetricStereoWidth, fmt.Sprintf(
			"Stereo width is very wide (%.1f%%). Mono playback positions may suffer.", width))
	case width >= widthGoodLow && width <= widthGoodHigh:
		advice.add(CategoryGood, MetricStereoWidth, fmt.Sprintf(
			"Stereo width is ideal (%.1f%%). Balanced stereo field.", width))
	}
}

func (a *Advice) add(category Category, metric, message string) {
	rec := Recommendation{Category: category, Metric: metric, Message: message}
	switch category {
	case CategoryCritical:
		a.Critical = append(a.Critical, rec)
	case CategoryImportant:
		a.Important = append(a.Important, rec)
	case CategoryGood:
		a.Good = append(a.Good, rec)
	}
}

// Total returns the number of recommendations across all categories.
func (a *Advice) Total() int {
	return len(a.Critical) + len(a.Important) + len(a.Good)
}
