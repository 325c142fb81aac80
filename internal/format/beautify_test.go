package format_test

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"reflow/internal/format"
	"reflow/internal/scanner"
	"reflow/internal/segment"
)

func beautify(input string) string {
	return string(format.Beautify([]byte(input), format.Options{}))
}

// literalTexts returns the sorted texts of string and pattern literals, used
// to check that formatting never touches literal interiors.
func literalTexts(input string) []string {
	var out []string
	for _, seg := range scanner.ScanBytes([]byte(input), scanner.Options{}) {
		if seg.IsLiteral() {
			out = append(out, seg.Text)
		}
	}
	sort.Strings(out)
	return out
}

func countBraces(s string) (open, closed int) {
	for _, seg := range scanner.ScanBytes([]byte(s), scanner.Options{}) {
		if seg.Kind != segment.Code {
			continue
		}
		open += strings.Count(seg.Text, "{")
		closed += strings.Count(seg.Text, "}")
	}
	return open, closed
}

var formatCorpus = []string{
	"",
	"const x = 1;",
	"function greet(name){if(name){doA();}else{doB();}}",
	"// comment\ncodeLine();",
	`const s = "{not a brace}";`,
	"x = /ab[/]c/g;",
	"let t = `tpl ${a} end`;",
	"a(); /* inline */ b();",
	"f(a, b, c)",
	"[1, 2,]",
	"}}stray{",
	"one();\n\n\n\ntwo();",
	"unterminated = \"oops",
	"let t = `line  \ntext`;",
	"let t = `a\n\n\n\nb`;",
}

func TestBeautifyNested(t *testing.T) {
	got := beautify("function greet(name){if(name){doA();}else{doB();}}")
	want := strings.Join([]string{
		"function greet(name){",
		"  if(name){",
		"    doA();",
		"  }else{",
		"    doB();",
		"  }",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("Beautify nested =\n%s\nwant\n%s", got, want)
	}

	// Indentation rises then falls, one unit at a time.
	depths := []int{}
	for _, line := range strings.Split(got, "\n") {
		depths = append(depths, len(line)-len(strings.TrimLeft(line, " ")))
	}
	wantDepths := []int{0, 2, 4, 2, 4, 2, 0}
	for i := range wantDepths {
		if depths[i] != wantDepths[i] {
			t.Errorf("line %d indent = %d, want %d", i, depths[i], wantDepths[i])
		}
	}
}

func TestBeautifyCommentPlacement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "own line comment stays put",
			input: "// comment\ncodeLine();",
			want:  "// comment\ncodeLine();\n",
		},
		{
			name:  "trailing comment stays trailing",
			input: "a(); // hi\nb();",
			want:  "a(); // hi\nb();\n",
		},
		{
			name:  "comment after brace trails the brace line",
			input: "if(x){ // open\ny();\n}",
			want:  "if(x){ // open\n  y();\n}",
		},
		{
			name:  "block comment interior is not reindented",
			input: "/* a\n   b */\nc();",
			want:  "/* a\n   b */\nc();\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := beautify(tt.input); got != tt.want {
				t.Errorf("Beautify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBeautifyCommaRule(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// List items break to new lines.
		{"f(a, b)", "f(a,\nb)"},
		// A trailing comma before a closer does not force an extra line.
		{"[1, 2,]", "[1,\n2,]"},
		{"g(x,)", "g(x,)"},
		// Lookahead crosses segment boundaries: a literal after the comma counts.
		{`f(a, "s")`, "f(a,\n\"s\")"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := beautify(tt.input); got != tt.want {
				t.Errorf("Beautify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBeautifyStringOpaque(t *testing.T) {
	input := `const s = "{not a brace}";`
	got := beautify(input)
	if !strings.Contains(got, `"{not a brace}"`) {
		t.Errorf("string interior was altered: %q", got)
	}
	// The braces inside the quotes must not create indentation.
	if strings.Contains(got, "\n ") {
		t.Errorf("unexpected indentation from quoted braces: %q", got)
	}
}

func TestBeautifyStrayBraceClamps(t *testing.T) {
	got := beautify("}}a{")
	// No negative indentation, no panic, braces preserved.
	if strings.Count(got, "}") != 2 || strings.Count(got, "{") != 1 {
		t.Errorf("braces not preserved: %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, " ") && strings.TrimSpace(line) == "}" {
			t.Errorf("closing brace indented below zero depth: %q", got)
		}
	}
}

func TestBeautifyBlankLineCollapse(t *testing.T) {
	got := beautify("one();\n\n\n\ntwo();")
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank lines not collapsed: %q", got)
	}
	if !strings.Contains(got, "one();\n\ntwo();") {
		t.Errorf("expected exactly one blank line between statements: %q", got)
	}
}

func TestBeautifyMultilineLiteralInterior(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing spaces before an interior newline survive",
			input: "let t = `line  \ntext`;",
			want:  "let t = `line  \ntext`;\n",
		},
		{
			name:  "blank lines inside a template are not collapsed",
			input: "let t = `a\n\n\n\nb`;",
			want:  "let t = `a\n\n\n\nb`;\n",
		},
		{
			name:  "code blank lines after a literal still collapse",
			input: "x = `a\n\n\n\nb`;\n\n\n\ny();",
			want:  "x = `a\n\n\n\nb`;\n\ny();\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := beautify(tt.input); got != tt.want {
				t.Errorf("Beautify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBeautifyTrailingWhitespaceStripped(t *testing.T) {
	got := beautify("a();   \nb();")
	for _, line := range strings.Split(got, "\n") {
		if strings.TrimRight(line, " \t") != line {
			t.Errorf("line with trailing whitespace: %q", line)
		}
	}
}

func TestBeautifyIndentOptions(t *testing.T) {
	input := "a{b();}"
	fourWide := string(format.Beautify([]byte(input), format.Options{IndentWidth: 4}))
	if !strings.Contains(fourWide, "\n    b();") {
		t.Errorf("IndentWidth 4 not honored: %q", fourWide)
	}
	tabs := string(format.Beautify([]byte(input), format.Options{UseTabs: true}))
	if !strings.Contains(tabs, "\n\tb();") {
		t.Errorf("UseTabs not honored: %q", tabs)
	}
}

func TestBeautifyEmptyInput(t *testing.T) {
	if got := beautify(""); got != "" {
		t.Errorf("Beautify(\"\") = %q, want \"\"", got)
	}
}

func TestBeautifyProperties(t *testing.T) {
	for _, input := range formatCorpus {
		t.Run(shorten(input), func(t *testing.T) {
			got := beautify(input)

			// Literal spans survive byte for byte.
			before, after := literalTexts(input), literalTexts(got)
			if len(before) != len(after) {
				t.Fatalf("literal count changed: %v -> %v", before, after)
			}
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("literal changed: %q -> %q", before[i], after[i])
				}
			}

			// Structural braces are neither added nor removed.
			openIn, closedIn := countBraces(input)
			openOut, closedOut := countBraces(got)
			if openIn != openOut || closedIn != closedOut {
				t.Errorf("brace counts changed: {%d %d} -> {%d %d}",
					openIn, closedIn, openOut, closedOut)
			}
		})
	}
}

func shorten(s string) string {
	if s == "" {
		return "empty"
	}
	s = strings.Map(func(r rune) rune {
		if r == '\n' {
			return '.'
		}
		return r
	}, s)
	if len(s) > 24 {
		return s[:24]
	}
	return s
}

func TestBeautifyIsPureOfInput(t *testing.T) {
	input := []byte("a{b();}")
	saved := bytes.Clone(input)
	_ = format.Beautify(input, format.Options{})
	if !bytes.Equal(input, saved) {
		t.Error("Beautify mutated its input")
	}
}
