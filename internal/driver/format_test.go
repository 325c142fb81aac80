package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"reflow/internal/format"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatBytesModes(t *testing.T) {
	src := []byte("if (a) { b(); }")

	min := FormatBytes(src, ModeMinify, format.Options{})
	if string(min) != "if(a){b();}" {
		t.Errorf("minify = %q", min)
	}

	beau := FormatBytes(src, ModeBeautify, format.Options{IndentWidth: 2})
	want := "if (a) {\n  b();\n}"
	if string(beau) != want {
		t.Errorf("beautify = %q, want %q", beau, want)
	}
}

func TestFormatPathsWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "if (a) { b(); }\n")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Mode:    ModeMinify,
		Write:   true,
		Options: format.Options{IndentWidth: 2},
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if res.Err != nil {
		t.Fatalf("result error: %v", res.Err)
	}
	if !res.Changed {
		t.Error("Changed = false for content that minifies smaller")
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != "if(a){b();}" {
		t.Errorf("file content after write = %q", onDisk)
	}
	if res.BytesIn <= res.BytesOut {
		t.Errorf("BytesIn %d should exceed BytesOut %d", res.BytesIn, res.BytesOut)
	}
}

func TestFormatPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	original := "if (a) { b(); }\n"
	path := writeTestFile(t, dir, "a.js", original)

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Mode:  ModeMinify,
		Check: true,
		Write: true,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if !results[0].Changed {
		t.Error("check run did not report pending changes")
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != original {
		t.Errorf("check mode modified the file: %q", onDisk)
	}
}

func TestFormatPathsUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.js", "a();b();")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Mode:  ModeMinify,
		Write: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Error("already-minimal input reported as changed")
	}
}

func TestFormatPathsCacheHit(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.js", "if (a) { b(); }\n")

	cache, err := OpenCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := FormatOptions{Mode: ModeMinify, Cache: cache}

	first, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Error("first run reported a cache hit")
	}

	second, err := FormatPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Error("second run over unchanged content missed the cache")
	}
	if string(second[0].Formatted) != string(first[0].Formatted) {
		t.Errorf("cached output %q differs from rendered %q",
			second[0].Formatted, first[0].Formatted)
	}
}

func TestFormatPathsMissingFile(t *testing.T) {
	_, err := FormatPaths(context.Background(), []string{filepath.Join(t.TempDir(), "nope.js")},
		FormatOptions{Mode: ModeMinify})
	if err == nil {
		t.Error("missing path did not fail")
	}
}

func TestFormatPathsEmitsEvents(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.js", "a ();")

	events := make(chan Event, 16)
	_, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Mode:   ModeMinify,
		Events: events,
	})
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	var stages []Stage
	for ev := range events {
		if ev.Path != path {
			t.Errorf("event for unexpected path %q", ev.Path)
		}
		stages = append(stages, ev.Stage)
	}
	if len(stages) == 0 || stages[len(stages)-1] != StageDone {
		t.Errorf("stages = %v, want trailing StageDone", stages)
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.js", "")
	b := writeTestFile(t, dir, "sub/b.JS", "")
	writeTestFile(t, dir, "sub/skip.txt", "")
	readme := writeTestFile(t, dir, "README.md", "")

	ctx := context.Background()

	files, err := CollectFiles(ctx, []string{dir}, []string{".js"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[0] != a || files[1] != b {
		t.Errorf("dir walk = %v, want [%s %s]", files, a, b)
	}

	// Explicit files bypass the extension filter, and duplicates collapse.
	files, err = CollectFiles(ctx, []string{readme, readme, a}, []string{".js"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[0] != readme || files[1] != a {
		t.Errorf("explicit args = %v", files)
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
	}
	for _, tt := range tests {
		if got := countLines([]byte(tt.input)); got != tt.want {
			t.Errorf("countLines(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
