package format

import (
	"reflow/internal/scanner"
	"reflow/internal/segment"
)

// Beautify renders src as an indented, one-statement-per-line listing.
// It is deterministic and total: any internal panic is recovered and the
// input is returned unchanged.
func Beautify(src []byte, opts Options) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			out = append([]byte(nil), src...)
		}
	}()

	segs := scanner.ScanBytes(src, scanner.Options{})
	b := beautifier{
		w:    NewWriter(opts, len(src)+len(src)/4),
		segs: segs,
	}
	for i, seg := range segs {
		b.renderSegment(i, seg)
	}
	if b.pendingBreak {
		b.w.Newline()
	}
	return b.w.Bytes()
}

type beautifier struct {
	w    *Writer
	segs []segment.Segment
	// pendingBreak holds a structural line break (after '{', ';', a comma or
	// a comment) open until the next content arrives, so a trailing comment
	// can still attach to the line that logically ended.
	pendingBreak bool
}

func (b *beautifier) renderSegment(i int, seg segment.Segment) {
	switch seg.Kind {
	case segment.StringLit, segment.PatternLit:
		b.flushBreak()
		b.w.WriteLiteral(seg.Text)

	case segment.LineComment, segment.BlockComment:
		b.renderComment(seg)

	case segment.Code:
		b.renderCode(i, seg.Text)
	}
}

// renderComment puts a comment on its own line when the line is empty,
// otherwise appends it trailing the line's content; either way the line is
// closed afterwards.
func (b *beautifier) renderComment(seg segment.Segment) {
	if b.w.LineHasContent() {
		b.w.Space()
	}
	b.w.WriteString(seg.Text)
	b.pendingBreak = true
}

func (b *beautifier) renderCode(i int, text string) {
	for j := 0; j < len(text); j++ {
		ch := text[j]
		switch ch {
		case '\n':
			// An input newline realizes a held structural break; otherwise
			// it is the author's own line break (blank lines survive here
			// and are capped by the final collapse pass).
			if b.pendingBreak {
				b.pendingBreak = false
			}
			b.w.Newline()

		case ' ', '\t', '\r':
			if !b.pendingBreak {
				b.w.Space()
			}

		case '{':
			b.flushBreak()
			_ = b.w.WriteByte('{')
			b.w.IndentPush()
			b.pendingBreak = true

		case '}':
			// A closing brace always starts its own line, one level out.
			if b.pendingBreak {
				b.flushBreak()
			} else if b.w.LineHasContent() {
				b.w.Newline()
			}
			b.w.IndentPop()
			_ = b.w.WriteByte('}')

		case ';':
			b.flushBreak()
			_ = b.w.WriteByte(';')
			b.pendingBreak = true

		case ',':
			b.flushBreak()
			_ = b.w.WriteByte(',')
			// List items break to new lines, but a trailing comma before a
			// closer must not manufacture an extra line.
			next, ok := b.nextSignificant(i, j+1)
			if !ok || (next != '}' && next != ']' && next != ')') {
				b.pendingBreak = true
			}

		default:
			b.flushBreak()
			_ = b.w.WriteByte(ch)
		}
	}
}

func (b *beautifier) flushBreak() {
	if b.pendingBreak {
		b.w.Newline()
		b.pendingBreak = false
	}
}

// nextSignificant finds the next non-whitespace byte at or after offset j of
// code segment i, looking across segment boundaries. For literal and comment
// segments the opening delimiter is the significant byte.
func (b *beautifier) nextSignificant(i, j int) (byte, bool) {
	rest := b.segs[i].Text[j:]
	for k := i; k < len(b.segs); k++ {
		if k > i {
			rest = b.segs[k].Text
		}
		for n := 0; n < len(rest); n++ {
			ch := rest[n]
			if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
				continue
			}
			return ch, true
		}
	}
	return 0, false
}
