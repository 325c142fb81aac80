package main

import (
	"github.com/spf13/cobra"

	"reflow/internal/driver"
)

var beautifyCmd = &cobra.Command{
	Use:   "beautify [flags] [path...]",
	Short: "Rewrite source with consistent indentation",
	Long: `Beautify re-emits source text with one statement per line and a fixed
number of spaces per brace-nesting level. String, pattern, and comment
contents are copied verbatim. With no paths (or "-") it filters stdin to
stdout; with paths it rewrites files in place unless --stdout or --check is
given.`,
	RunE: runBeautify,
}

func init() {
	addFormatFlags(beautifyCmd, true)
}

func runBeautify(cmd *cobra.Command, args []string) error {
	return runFormatCommand(cmd, args, driver.ModeBeautify)
}
