package scanner

import (
	"reflow/internal/segment"
)

// scanString consumes a quoted literal opened by quote (", ' or a backtick).
// A backslash consumes the following byte atomically, so escaped quotes and
// escaped newlines never close the literal. The interior is opaque: template
// placeholders are not scanned (nested interpolation is deliberately
// unsupported). An unterminated literal swallows the rest of the input.
func (s *Scanner) scanString(quote byte) segment.Segment {
	start := s.cursor.Mark()
	s.cursor.Bump() // opening quote
	for !s.cursor.EOF() {
		b := s.cursor.Bump()
		if b == '\\' {
			if !s.cursor.EOF() {
				s.cursor.Bump()
			}
			continue
		}
		if b == quote {
			sp := s.cursor.SpanFrom(start)
			return segment.Segment{Kind: segment.StringLit, Span: sp, Text: s.text(sp)}
		}
	}
	sp := s.cursor.SpanFrom(start)
	s.report(NoticeUnterminatedString, sp, "unterminated string literal")
	return segment.Segment{Kind: segment.StringLit, Span: sp, Text: s.text(sp)}
}
