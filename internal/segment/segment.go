package segment

import (
	"reflow/internal/source"
)

// Segment is a maximal run of input classified as exactly one Kind.
type Segment struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the segment is a string or pattern literal.
// Literal interiors are never altered by any downstream stage.
func (s Segment) IsLiteral() bool {
	return s.Kind == StringLit || s.Kind == PatternLit
}

// IsComment reports whether the segment is a line or block comment.
func (s Segment) IsComment() bool {
	return s.Kind == LineComment || s.Kind == BlockComment
}

// Join concatenates the text of all segments in order. For a scan of some
// input this reproduces that input byte for byte.
func Join(segs []Segment) string {
	n := 0
	for _, s := range segs {
		n += len(s.Text)
	}
	out := make([]byte, 0, n)
	for _, s := range segs {
		out = append(out, s.Text...)
	}
	return string(out)
}
