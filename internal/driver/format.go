package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"reflow/internal/format"
	"reflow/internal/source"
)

// Mode selects which rendering the driver applies.
type Mode uint8

const (
	ModeBeautify Mode = iota
	ModeMinify
)

func (m Mode) String() string {
	if m == ModeMinify {
		return "minify"
	}
	return "beautify"
}

// FormatOptions configures a batch formatting run.
type FormatOptions struct {
	Mode    Mode
	Options format.Options

	// Check reports whether files would change without touching them.
	Check bool
	// Write rewrites changed files in place.
	Write bool
	// Jobs bounds render parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Exts filters files collected from directories; defaults to .js.
	Exts []string

	// Cache, when non-nil, short-circuits renders of unchanged content.
	Cache *Cache
	// Events, when non-nil, receives per-file pipeline progress.
	Events chan<- Event
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Formatted []byte
	Changed   bool
	Cached    bool
	Err       error

	BytesIn  int
	BytesOut int
	LinesIn  int
	LinesOut int
}

// FormatBytes renders in-memory text in the given mode. It is the pure core
// entry point; it never fails.
func FormatBytes(src []byte, mode Mode, opt format.Options) []byte {
	if mode == ModeMinify {
		return format.Minify(src)
	}
	return format.Beautify(src, opt)
}

// FormatPaths formats the provided files or directories (recursively
// collecting files matching opts.Exts). Files are rendered in parallel;
// results come back in deterministic path order. Per-file failures land in
// FormatResult.Err; only setup failures are returned as an error.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectFiles(ctx, paths, opts.exts())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slot per file: each goroutine owns a unique index, no mutex needed.
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = formatOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}

	emit(opts.Events, Event{Path: path, Stage: StageRead})
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", path, err)
		emit(opts.Events, Event{Path: path, Stage: StageDone, Err: res.Err})
		return res
	}
	content := fileSet.Get(fileID).Content
	res.BytesIn = len(content)
	res.LinesIn = countLines(content)

	emit(opts.Events, Event{Path: path, Stage: StageRender})
	key := Key(content, opts.Mode, opts.Options)
	formatted, cached := opts.Cache.Get(key, opts.Mode, opts.Options)
	if !cached {
		formatted = FormatBytes(content, opts.Mode, opts.Options)
		// A cache failure never fails the run.
		_ = opts.Cache.Put(key, opts.Mode, opts.Options, formatted)
	}

	res.Formatted = formatted
	res.Cached = cached
	res.Changed = !bytes.Equal(content, formatted)
	res.BytesOut = len(formatted)
	res.LinesOut = countLines(formatted)

	if opts.Write && res.Changed && !opts.Check {
		emit(opts.Events, Event{Path: path, Stage: StageWrite})
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if writeErr := os.WriteFile(path, formatted, mode.Perm()); writeErr != nil {
			res.Err = fmt.Errorf("write %s: %w", path, writeErr)
		}
	}

	emit(opts.Events, Event{Path: path, Stage: StageDone, Cached: cached, Err: res.Err})
	return res
}

func (o FormatOptions) exts() []string {
	if len(o.Exts) == 0 {
		return []string{".js"}
	}
	return o.Exts
}

// CollectFiles expands the provided files and directories into the sorted,
// de-duplicated list of files a formatting run would visit. Directory walks
// honor the extension filter; explicit file arguments bypass it.
func CollectFiles(ctx context.Context, paths []string, exts []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	matches := func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range exts {
			if ext == strings.ToLower(e) {
				return true
			}
		}
		return false
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if matches(path) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		// Explicit file arguments bypass the extension filter.
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}

func countLines(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := bytes.Count(b, []byte{'\n'})
	if b[len(b)-1] != '\n' {
		n++
	}
	return n
}
