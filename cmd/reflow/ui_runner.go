package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"reflow/internal/driver"
	"reflow/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// useProgressUI decides whether a batch run gets the live progress view.
// Single files and machine-readable outputs stay plain.
func useProgressUI(cmd *cobra.Command, files []string, ff formatFlags, quiet bool) bool {
	if quiet || ff.stdout || ff.output != "text" || len(files) < 2 {
		return false
	}
	value, err := cmd.Root().PersistentFlags().GetString("ui")
	if err != nil {
		return false
	}
	mode, err := readUIMode(value)
	if err != nil {
		return false
	}
	return shouldUseTUI(mode)
}

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFormatWithUI runs the batch through the driver while a Bubble Tea
// progress model consumes its event stream.
func runFormatWithUI(ctx context.Context, mode driver.Mode, files []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		results, err := driver.FormatPaths(ctx, files, optsCopy)
		outcomeCh <- formatOutcome{results: results, err: err}
		close(events)
	}()

	title := fmt.Sprintf("%s %d files", mode, len(files))
	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
