package format

import (
	"reflow/internal/scanner"
)

// Minify renders src with comments removed and inter-token whitespace
// collapsed to the minimum that preserves tokenization. Literal interiors
// are copied verbatim. The result is a single pass, never longer than the
// input, and idempotent. Any internal panic is recovered and the input is
// returned unchanged.
func Minify(src []byte) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			out = append([]byte(nil), src...)
		}
	}()

	segs := scanner.ScanBytes(src, scanner.Options{})
	m := minifier{buf: make([]byte, 0, len(src))}
	for _, seg := range segs {
		switch {
		case seg.IsComment():
			// A dropped comment still separates what surrounded it, so it
			// degrades to pending whitespace and never glues two words.
			m.pending = true
		case seg.IsLiteral():
			m.flush(seg.Text[0])
			m.buf = append(m.buf, seg.Text...)
		default:
			m.code(seg.Text)
		}
	}
	return m.buf
}

type minifier struct {
	buf     []byte
	pending bool // whitespace (or a dropped comment) awaiting a keep/drop decision
}

// flush resolves pending whitespace before emitting next: it survives as a
// single space only when dropping it would merge two word bytes into one
// token; next to punctuation it disappears entirely.
func (m *minifier) flush(next byte) {
	if !m.pending {
		return
	}
	m.pending = false
	if len(m.buf) == 0 {
		return
	}
	if isWordByte(m.buf[len(m.buf)-1]) && isWordByte(next) {
		m.buf = append(m.buf, ' ')
	}
}

func (m *minifier) code(text string) {
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			m.pending = true
			continue
		}
		m.flush(ch)
		m.buf = append(m.buf, ch)
	}
}

// isWordByte mirrors the scanner's identifier byte class.
func isWordByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}
