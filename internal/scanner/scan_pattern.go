package scanner

import (
	"reflow/internal/segment"
)

// scanPattern consumes a /pattern/ literal. The caller has already decided,
// via the rule table, that '/' opens a pattern here. A backslash consumes the
// following byte; inside a [...] character class a '/' does not close the
// literal. Pattern literals cannot span lines: a bare newline ends the
// segment (exclusive) and is reported, as is EOF.
func (s *Scanner) scanPattern() segment.Segment {
	start := s.cursor.Mark()
	s.cursor.Bump() // opening '/'
	inClass := false
	for !s.cursor.EOF() {
		b := s.cursor.Peek()
		if b == '\n' {
			sp := s.cursor.SpanFrom(start)
			s.report(NoticeUnterminatedPattern, sp, "unterminated pattern literal")
			return segment.Segment{Kind: segment.PatternLit, Span: sp, Text: s.text(sp)}
		}
		s.cursor.Bump()
		switch {
		case b == '\\':
			// The escaped byte is consumed atomically, even a newline.
			if !s.cursor.EOF() {
				s.cursor.Bump()
			}
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			// Trailing flags (g, i, m, ...) belong to the literal.
			for !s.cursor.EOF() && isWordByte(s.cursor.Peek()) {
				s.cursor.Bump()
			}
			sp := s.cursor.SpanFrom(start)
			return segment.Segment{Kind: segment.PatternLit, Span: sp, Text: s.text(sp)}
		}
	}
	sp := s.cursor.SpanFrom(start)
	s.report(NoticeUnterminatedPattern, sp, "unterminated pattern literal")
	return segment.Segment{Kind: segment.PatternLit, Span: sp, Text: s.text(sp)}
}
