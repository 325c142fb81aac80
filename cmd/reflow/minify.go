package main

import (
	"github.com/spf13/cobra"

	"reflow/internal/driver"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] [path...]",
	Short: "Strip comments and collapse whitespace",
	Long: `Minify removes comments and collapses inter-token whitespace to the
minimum that preserves tokenization; the output is never longer than the
input. With no paths (or "-") it filters stdin to stdout; with paths it
rewrites files in place unless --stdout or --check is given.`,
	RunE: runMinify,
}

func init() {
	addFormatFlags(minifyCmd, false)
	minifyCmd.Flags().Bool("stats", false, "report byte savings per file")
}

func runMinify(cmd *cobra.Command, args []string) error {
	return runFormatCommand(cmd, args, driver.ModeMinify)
}
