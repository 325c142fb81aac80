package scanner

import (
	"reflow/internal/segment"
	"reflow/internal/source"
)

// Scanner partitions a file into classified segments in a single
// left-to-right pass. It never fails: unterminated literals swallow the rest
// of the input and are reported as notices.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// prev is the class of the nearest preceding significant code token,
	// maintained across segment boundaries for the '/' decision.
	prev prevClass
	// wordStart marks a word in progress inside the current code segment,
	// or -1 when no word is open.
	wordStart int64
}

// New creates a scanner over the provided file.
func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:      file,
		cursor:    NewCursor(file),
		opts:      opts,
		prev:      classStart,
		wordStart: -1,
	}
}

// Next returns the next segment. ok is false once the input is exhausted.
func (s *Scanner) Next() (seg segment.Segment, ok bool) {
	if s.cursor.EOF() {
		return segment.Segment{}, false
	}

	b := s.cursor.Peek()
	switch {
	case isQuoteByte(b):
		seg = s.scanString(b)
		s.prev = classOperand
		return seg, true

	case b == '/':
		if _, b1, ok2 := s.cursor.Peek2(); ok2 {
			if b1 == '/' {
				return s.scanLineComment(), true
			}
			if b1 == '*' {
				return s.scanBlockComment(), true
			}
		}
		if patternAllowed[s.prev] {
			seg = s.scanPattern()
			s.prev = classOperand
			return seg, true
		}
		return s.scanCode(), true

	default:
		return s.scanCode(), true
	}
}

// Scan drains the scanner and returns all remaining segments.
func (s *Scanner) Scan() []segment.Segment {
	var segs []segment.Segment
	for {
		seg, ok := s.Next()
		if !ok {
			return segs
		}
		segs = append(segs, seg)
	}
}

// ScanBytes partitions raw text into segments using a throwaway virtual file.
func ScanBytes(src []byte, opts Options) []segment.Segment {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", src)
	return New(fs.Get(id), opts).Scan()
}

// scanCode consumes a maximal run of structural code. It stops before any
// quote, comment opener, or pattern-literal opener; a division '/' is
// consumed in place so code segments stay maximal.
func (s *Scanner) scanCode() segment.Segment {
	start := s.cursor.Mark()
	for !s.cursor.EOF() {
		b := s.cursor.Peek()
		if isWordByte(b) {
			if s.wordStart < 0 {
				s.wordStart = int64(s.cursor.Off)
			}
			s.cursor.Bump()
			continue
		}
		// Any non-word byte terminates a word in progress; classify it
		// before deciding what to do with b.
		s.flushWord()

		if isQuoteByte(b) {
			break
		}
		if b == '/' {
			if _, b1, ok := s.cursor.Peek2(); ok && (b1 == '/' || b1 == '*') {
				break
			}
			if patternAllowed[s.prev] {
				break
			}
			s.cursor.Bump()
			s.prev = classOperator
			continue
		}
		s.cursor.Bump()
		if !isSpaceByte(b) {
			s.prev = classify(b)
		}
	}
	s.flushWord()
	sp := s.cursor.SpanFrom(start)
	return segment.Segment{Kind: segment.Code, Span: sp, Text: s.text(sp)}
}

// flushWord closes a word in progress (the cursor sits just past its last
// byte) and classifies it for the '/' rule.
func (s *Scanner) flushWord() {
	if s.wordStart < 0 {
		return
	}
	word := string(s.file.Content[s.wordStart:s.cursor.Off])
	s.wordStart = -1
	if exprKeywords[word] {
		s.prev = classKeyword
		return
	}
	s.prev = classOperand
}

func (s *Scanner) text(sp source.Span) string {
	return string(s.file.Content[sp.Start:sp.End])
}
