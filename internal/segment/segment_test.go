package segment

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Code, "Code"},
		{StringLit, "StringLit"},
		{PatternLit, "PatternLit"},
		{LineComment, "LineComment"},
		{BlockComment, "BlockComment"},
		{Kind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSegmentClassifiers(t *testing.T) {
	tests := []struct {
		kind    Kind
		literal bool
		comment bool
	}{
		{Code, false, false},
		{StringLit, true, false},
		{PatternLit, true, false},
		{LineComment, false, true},
		{BlockComment, false, true},
	}
	for _, tt := range tests {
		s := Segment{Kind: tt.kind}
		if s.IsLiteral() != tt.literal {
			t.Errorf("%v.IsLiteral() = %v, want %v", tt.kind, s.IsLiteral(), tt.literal)
		}
		if s.IsComment() != tt.comment {
			t.Errorf("%v.IsComment() = %v, want %v", tt.kind, s.IsComment(), tt.comment)
		}
	}
}

func TestJoin(t *testing.T) {
	segs := []Segment{
		{Kind: Code, Text: "x = "},
		{Kind: StringLit, Text: `"a"`},
		{Kind: Code, Text: "; "},
		{Kind: LineComment, Text: "// done"},
	}
	want := `x = "a"; // done`
	if got := Join(segs); got != want {
		t.Errorf("Join = %q, want %q", got, want)
	}

	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want \"\"", got)
	}
}
