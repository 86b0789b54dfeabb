package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/mixcheck/internal/app"
)

var (
	analyzeName     string
	analyzeVenue    string
	analyzeCapacity int
	analyzeMixer    string
	analyzePASystem string
	analyzeLineup   string
	analyzeNotes    string
	analyzeOutFile  string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] file.wav",
	Short: "Analyze a 2-mix recording and produce mixing advice",
	Long: `Analyze a 2-mix WAV recording: whole-mix loudness, dynamics,
stereo image and band energies, per-instrument narrowband metrics, and
categorized recommendations.

Examples:
  # Analyze a board recording with a table summary
  mixcheck analyze show.wav

  # Attach session metadata and write a JSON report
  mixcheck analyze --name "Friday night" --venue "Club X" --mixer "CL5" \
    --output json --out report.json show.wav

  # Quiet machine-readable run
  mixcheck analyze -q -o yaml show.wav`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeName, "name", "",
		"analysis name for the report")
	analyzeCmd.Flags().StringVar(&analyzeVenue, "venue", "",
		"venue name")
	analyzeCmd.Flags().IntVar(&analyzeCapacity, "capacity", 0,
		"venue capacity (people)")
	analyzeCmd.Flags().StringVar(&analyzeMixer, "mixer", "",
		"mixing console used")
	analyzeCmd.Flags().StringVar(&analyzePASystem, "pa-system", "",
		"PA system used")
	analyzeCmd.Flags().StringVar(&analyzeLineup, "lineup", "",
		"band lineup description")
	analyzeCmd.Flags().StringVar(&analyzeNotes, "notes", "",
		"free-form notes")
	analyzeCmd.Flags().StringVar(&analyzeOutFile, "out", "",
		"write the report to this file instead of stdout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		InputFile:    args[0],
		OutputFile:   analyzeOutFile,
		OutputFormat: viper.GetString("output_format"),
		Verbose:      viper.GetBool("verbose"),
		Quiet:        quiet,
		Metadata: app.SessionMetadata{
			AnalysisName:  analyzeName,
			Venue:         analyzeVenue,
			VenueCapacity: analyzeCapacity,
			Mixer:         analyzeMixer,
			PASystem:      analyzePASystem,
			BandLineup:    analyzeLineup,
			Notes:         analyzeNotes,
		},
	}

	analyzerApp, err := app.NewAnalyzerApp(ctx)
	if err != nil {
		return err
	}

	return analyzerApp.Run()
}
