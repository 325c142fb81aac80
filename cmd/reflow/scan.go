package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"reflow/internal/driver"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [file]",
	Short: "Dump the classified segments of a source file",
	Long: `Scan partitions a source file (or stdin) into classified segments: code,
string literals, pattern literals, and comments. Concatenating the segments
in order reproduces the input exactly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runScan(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var result *driver.ScanResult
	if len(args) == 0 || args[0] == "-" {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("scan: read stdin: %w", readErr)
		}
		result = driver.ScanVirtual("<stdin>", data)
	} else {
		result, err = driver.ScanFile(args[0])
		if err != nil {
			return err
		}
	}

	for _, notice := range result.Notices {
		start, _ := result.FileSet.Resolve(notice.Span)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", result.File.Path, start.Line, start.Col, notice.Msg)
	}

	switch outputFormat {
	case "pretty":
		return renderScanPretty(cmd.OutOrStdout(), result)
	case "json":
		return renderScanJSON(cmd.OutOrStdout(), result)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
}

func renderScanPretty(out io.Writer, result *driver.ScanResult) error {
	for _, seg := range result.Segments {
		start, end := result.FileSet.Resolve(seg.Span)
		preview := seg.Text
		if len(preview) > 48 {
			preview = preview[:45] + "..."
		}
		_, err := fmt.Fprintf(out, "%4d:%-3d %4d:%-3d %-12s %s\n",
			start.Line, start.Col, end.Line, end.Col, seg.Kind, strconv.Quote(preview))
		if err != nil {
			return err
		}
	}
	return nil
}

func renderScanJSON(out io.Writer, result *driver.ScanResult) error {
	type jsonSegment struct {
		Kind  string `json:"kind"`
		Start uint32 `json:"start"`
		End   uint32 `json:"end"`
		Text  string `json:"text"`
	}
	payload := make([]jsonSegment, 0, len(result.Segments))
	for _, seg := range result.Segments {
		payload = append(payload, jsonSegment{
			Kind:  seg.Kind.String(),
			Start: seg.Span.Start,
			End:   seg.Span.End,
			Text:  seg.Text,
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
