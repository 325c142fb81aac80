package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"reflow/internal/driver"
	"reflow/internal/format"
	"reflow/internal/source"
)

// formatFlags is the shared flag surface of the beautify and minify commands.
type formatFlags struct {
	check   bool
	stdout  bool
	output  string // text|json
	indent  int
	tabs    bool
	noCache bool
	stats   bool
}

func addFormatFlags(cmd *cobra.Command, withIndent bool) {
	cmd.Flags().Bool("check", false, "check if files are properly formatted without rewriting them")
	cmd.Flags().Bool("stdout", false, "print formatted text to stdout instead of rewriting files")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
	if withIndent {
		cmd.Flags().Int("indent", 0, "spaces per indentation level (default 2, or reflow.toml)")
		cmd.Flags().Bool("tabs", false, "indent with tabs instead of spaces")
	}
}

func readFormatFlags(cmd *cobra.Command) (formatFlags, error) {
	var ff formatFlags
	var err error
	if ff.check, err = cmd.Flags().GetBool("check"); err != nil {
		return ff, err
	}
	if ff.stdout, err = cmd.Flags().GetBool("stdout"); err != nil {
		return ff, err
	}
	if ff.output, err = cmd.Flags().GetString("format"); err != nil {
		return ff, err
	}
	if ff.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return ff, err
	}
	if cmd.Flags().Lookup("indent") != nil {
		if ff.indent, err = cmd.Flags().GetInt("indent"); err != nil {
			return ff, err
		}
		if ff.tabs, err = cmd.Flags().GetBool("tabs"); err != nil {
			return ff, err
		}
	}
	if cmd.Flags().Lookup("stats") != nil {
		if ff.stats, err = cmd.Flags().GetBool("stats"); err != nil {
			return ff, err
		}
	}
	return ff, nil
}

func runFormatCommand(cmd *cobra.Command, args []string, mode driver.Mode) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ff, err := readFormatFlags(cmd)
	if err != nil {
		return err
	}
	if ff.stdout && ff.check {
		return fmt.Errorf("%s: --stdout cannot be used with --check", mode)
	}
	if ff.stdout && ff.output != "text" {
		return fmt.Errorf("%s: --stdout is only supported with text output", mode)
	}

	manifest, _, err := loadProjectManifest(".")
	if err != nil {
		return err
	}

	fopts := resolveFormatOptions(ff, manifest)

	// Stdin mode: no paths (or "-") means filter stdin to stdout.
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return runFormatStdin(cmd, mode, fopts, ff)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	exts := []string{".js"}
	if manifest != nil && len(manifest.Config.Format.Ext) > 0 {
		exts = manifest.Config.Format.Ext
	}

	var cache *driver.Cache
	if !ff.noCache && (manifest == nil || manifest.Config.Cache.enabled()) {
		// A cache that fails to open just means every file is rendered.
		cache, _ = driver.OpenCache("reflow")
	}

	files, err := driver.CollectFiles(cmd.Context(), args, exts)
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Mode:    mode,
		Options: fopts,
		Check:   ff.check,
		Write:   !ff.stdout && !ff.check,
		Jobs:    jobs,
		Exts:    exts,
		Cache:   cache,
	}

	var results []driver.FormatResult
	if useProgressUI(cmd, files, ff, quiet) {
		results, err = runFormatWithUI(cmd.Context(), mode, files, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch ff.output {
	case "text":
		if ff.stdout {
			renderFormatStdout(results, &hasErrors)
		} else {
			renderFormatText(results, ff.check, quiet, &hasErrors, &hasChanges)
		}
	case "json":
		if err := renderFormatJSON(cmd.OutOrStdout(), results, ff.check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		return fmt.Errorf("%s: unsupported output format %q", mode, ff.output)
	}

	if ff.stats {
		renderStatsTable(os.Stderr, results)
	}

	if hasErrors {
		return fmt.Errorf("%s: failed to format some files", mode)
	}
	if ff.check && hasChanges {
		return fmt.Errorf("%s: formatting changes required", mode)
	}
	return nil
}

func resolveFormatOptions(ff formatFlags, manifest *projectManifest) format.Options {
	opts := format.Options{}
	if manifest != nil {
		opts.IndentWidth = manifest.Config.Format.Indent
		opts.UseTabs = manifest.Config.Format.Tabs
	}
	if ff.indent > 0 {
		opts.IndentWidth = ff.indent
	}
	if ff.tabs {
		opts.UseTabs = true
	}
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = format.DefaultIndentWidth
	}
	return opts
}

func runFormatStdin(cmd *cobra.Command, mode driver.Mode, fopts format.Options, ff formatFlags) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("%s: read stdin: %w", mode, err)
	}

	// Route stdin through the same normalization files get.
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual("<stdin>", data))
	out := driver.FormatBytes(file.Content, mode, fopts)

	if ff.check {
		if !bytes.Equal(file.Content, out) {
			return fmt.Errorf("%s: formatting changes required", mode)
		}
		return nil
	}

	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}
	if ff.stats {
		renderStatsTable(os.Stderr, []driver.FormatResult{{
			Path:     "<stdin>",
			BytesIn:  len(file.Content),
			BytesOut: len(out),
		}})
	}
	return nil
}

func renderFormatStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "reflow: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFormatText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "reflow: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderFormatJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Cached   bool   `json:"cached"`
		BytesIn  int    `json:"bytes_in"`
		BytesOut int    `json:"bytes_out"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:     res.Path,
			Changed:  res.Changed,
			Cached:   res.Cached,
			BytesIn:  res.BytesIn,
			BytesOut: res.BytesOut,
			CheckRun: check,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
