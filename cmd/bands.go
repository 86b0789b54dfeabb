package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/mixcheck/pkg/audio/analysis"
)

// bandsCmd prints the fixed analysis tables so operators can see what
// the analyzer measures without reading source.
var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Show the configured frequency bands and instrument windows",
	RunE:  runBands,
}

func init() {
	rootCmd.AddCommand(bandsCmd)
}

func runBands(cmd *cobra.Command, args []string) error {
	fmt.Printf("Full-mix bands:\n")
	for _, band := range analysis.FullMixBands() {
		fmt.Printf("  %-12s %7.0f - %-7.0f Hz\n", band.Label, band.LowHz, band.HighHz)
	}

	fmt.Printf("\nInstrument windows:\n")
	for _, window := range analysis.InstrumentWindows() {
		fmt.Printf("  %-12s %7.0f - %-7.0f Hz\n", window.Label, window.LowHz, window.HighHz)
	}

	return nil
}
