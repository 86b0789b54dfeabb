// Package app wires the analysis pipeline behind the CLI: decode a
// file, run the extractors, classify the result, and emit the report.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/RyanBlaney/mixcheck/configs"
	"github.com/RyanBlaney/mixcheck/pkg/audio"
	"github.com/RyanBlaney/mixcheck/pkg/audio/analysis"
	"github.com/RyanBlaney/mixcheck/pkg/logging"
	"github.com/RyanBlaney/mixcheck/pkg/output"
	"github.com/RyanBlaney/mixcheck/pkg/recommend"
)

// Context holds the application context for one analyze invocation.
type Context struct {
	// CLI arguments
	InputFile    string
	OutputFile   string
	OutputFormat string
	Verbose      bool
	Quiet        bool
	Metadata     SessionMetadata

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// AnalyzerApp handles the analyze command lifecycle.
type AnalyzerApp struct {
	ctx    *Context
	config *configs.Config
	logger logging.Logger
}

// NewAnalyzerApp creates an analyzer application from CLI context.
func NewAnalyzerApp(ctx *Context) (*AnalyzerApp, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if ctx.OutputFormat != "" {
		config.OutputFormat = ctx.OutputFormat
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	ctx.Config = config

	logger.Info("analyzer initialized", logging.Fields{
		"input_file":    ctx.InputFile,
		"output_format": config.OutputFormat,
	})

	return &AnalyzerApp{
		ctx:    ctx,
		config: config,
		logger: logger,
	}, nil
}

// Run executes a full analysis: decode, extract, classify, report.
func (app *AnalyzerApp) Run() error {
	buf, err := audio.DecodeWAVFile(app.ctx.InputFile)
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	analyzer := analysis.NewAnalyzer(app.config.Analysis)

	mix, err := analyzer.AnalyzeMix(buf)
	if err != nil {
		return fmt.Errorf("mix analysis failed: %w", err)
	}

	instruments, err := analyzer.AnalyzeInstruments(buf)
	if err != nil {
		return fmt.Errorf("instrument analysis failed: %w", err)
	}

	advice := recommend.Evaluate(mix)

	report := NewReport(app.ctx.InputFile, app.ctx.Metadata, mix, instruments, advice)

	app.logger.Info("analysis completed", logging.Fields{
		"run_id":          report.RunID,
		"duration_s":      mix.DurationS,
		"recommendations": advice.Total(),
	})

	return app.outputReport(report)
}

// setupLogging configures the package logger from CLI verbosity.
func setupLogging(ctx *Context) logging.Logger {
	level := "info"
	if ctx.Verbose {
		level = "debug"
	} else if ctx.Quiet {
		level = "error"
	}
	logging.SetLevel(level)

	return logging.WithFields(logging.Fields{
		"component": "analyzer_app",
	})
}

// outputReport writes the report in the configured format. The table
// format prints a human summary to stdout; json and yaml go to the
// output file when one is set.
func (app *AnalyzerApp) outputReport(report *Report) error {
	if app.config.OutputFormat == "table" {
		app.printSummary(report)
		return nil
	}

	formatter, err := output.ForName(app.config.OutputFormat)
	if err != nil {
		return err
	}

	data, err := formatter.Format(report, app.config.Output.Pretty)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if app.ctx.OutputFile != "" {
		return app.writeToFile(data)
	}

	_, err = os.Stdout.Write(data)
	return err
}

// writeToFile writes report data to the configured output file.
func (app *AnalyzerApp) writeToFile(data []byte) error {
	dir := filepath.Dir(app.ctx.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(app.ctx.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	app.logger.Info("report written to file", logging.Fields{
		"output_file": app.ctx.OutputFile,
		"size_bytes":  len(data),
	})

	return nil
}

// printSummary prints a human-readable report to stdout.
func (app *AnalyzerApp) printSummary(report *Report) {
	titler := cases.Title(language.English)
	prettyLabel := func(label string) string {
		return titler.String(strings.ReplaceAll(label, "_", " "))
	}

	fmt.Printf("\nMIX ANALYSIS: %s\n", report.Metadata.AnalysisName)
	fmt.Printf("========================================\n")
	fmt.Printf("Run ID:        %s\n", report.RunID)
	fmt.Printf("Venue:         %s", report.Metadata.Venue)
	if report.Metadata.VenueCapacity > 0 {
		fmt.Printf(" (capacity %d)", report.Metadata.VenueCapacity)
	}
	fmt.Printf("\nMixer:         %s\n", report.Metadata.Mixer)
	fmt.Printf("PA System:     %s\n", report.Metadata.PASystem)
	fmt.Printf("Lineup:        %s\n", report.Metadata.BandLineup)
	fmt.Printf("Duration:      %.1fs\n", report.Mix.DurationS)

	fmt.Printf("\nKEY METRICS\n")
	fmt.Printf("========================================\n")
	fmt.Printf("RMS Level:     %.1f dB (target around -18 dB)\n", report.Mix.RMSDB)
	fmt.Printf("Peak Level:    %.1f dB (ceiling -1 dB)\n", report.Mix.PeakDB)
	fmt.Printf("Crest Factor:  %.1f dB (ideal 10-14 dB)\n", report.Mix.CrestFactorDB)
	fmt.Printf("Stereo Width:  %.1f %% (ideal 50-70 %%)\n", report.Mix.StereoWidthPct)
	fmt.Printf("Dynamic Range: %.1f dB\n", report.Mix.DynamicRangeDB)

	fmt.Printf("\nBAND ENERGIES\n")
	fmt.Printf("========================================\n")
	for _, band := range analysis.FullMixBands() {
		energy, _ := report.Mix.BandEnergies.Get(band.Label)
		fmt.Printf("%-12s %7.0f-%-6.0f Hz  %7.1f dB\n",
			prettyLabel(band.Label), band.LowHz, band.HighHz, energy)
	}

	fmt.Printf("\nINSTRUMENT WINDOWS\n")
	fmt.Printf("========================================\n")
	for _, inst := range report.Instruments {
		fmt.Printf("%-8s rms %7.1f dB  peak %7.1f dB  centroid %7.0f Hz\n",
			prettyLabel(inst.Name), inst.RMSDB, inst.PeakDB, inst.SpectralCentroidHz)
	}

	printAdviceSection := func(heading string, recs []recommend.Recommendation) {
		if len(recs) == 0 {
			return
		}
		fmt.Printf("\n%s\n", heading)
		fmt.Printf("========================================\n")
		for _, rec := range recs {
			fmt.Printf("- [%s] %s\n", rec.Metric, rec.Message)
		}
	}

	printAdviceSection("GOOD POINTS", report.Advice.Good)
	printAdviceSection("CRITICAL", report.Advice.Critical)
	printAdviceSection("IMPORTANT", report.Advice.Important)

	fmt.Printf("\n")
}
