package scanner

import (
	"reflow/internal/segment"
)

// scanLineComment consumes "//" up to, but not including, the line
// terminator. The newline stays outside the segment and opens the next code
// segment.
func (s *Scanner) scanLineComment() segment.Segment {
	start := s.cursor.Mark()
	s.cursor.Bump() // '/'
	s.cursor.Bump() // '/'
	for !s.cursor.EOF() && s.cursor.Peek() != '\n' {
		s.cursor.Bump()
	}
	sp := s.cursor.SpanFrom(start)
	return segment.Segment{Kind: segment.LineComment, Span: sp, Text: s.text(sp)}
}

// scanBlockComment consumes "/*" up to and including the first "*/". Block
// comments do not nest: the first closer wins regardless of interior "/*".
// Unterminated comments swallow the rest of the input.
func (s *Scanner) scanBlockComment() segment.Segment {
	start := s.cursor.Mark()
	s.cursor.Bump() // '/'
	s.cursor.Bump() // '*'
	closed := false
	for !s.cursor.EOF() {
		if b0, b1, ok := s.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			s.cursor.Bump()
			s.cursor.Bump()
			closed = true
			break
		}
		s.cursor.Bump()
	}
	sp := s.cursor.SpanFrom(start)
	if !closed {
		s.report(NoticeUnterminatedComment, sp, "unterminated block comment")
	}
	return segment.Segment{Kind: segment.BlockComment, Span: sp, Text: s.text(sp)}
}
