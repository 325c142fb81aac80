package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reflow/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "reflow",
	Short: "Reflow script source text",
	Long:  `Reflow beautifies or minifies script-like source text without ever corrupting string, pattern, or comment contents`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(beautifyCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "maximum parallel workers (0 = all CPUs)")
	rootCmd.PersistentFlags().String("ui", "auto", "progress UI for batch runs (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
