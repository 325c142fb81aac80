package format

// Writer accumulates beautified output. It keeps an explicit line state
// (at line start vs. mid-line) so indentation is written lazily, only when a
// line actually receives content. Cleanup (trailing-whitespace trim, blank
// line capping) happens as lines close, never over bytes already written, so
// literal interiors stay untouched.
type Writer struct {
	opt          Options
	buf          []byte
	depth        int
	atLineStart  bool
	pendingSpace bool
	// newlineRun counts consecutive newlines emitted by Newline; at most one
	// blank line survives between content lines.
	newlineRun int
	// protected is the buffer length covered by literal text; Newline never
	// trims below it.
	protected int
}

// NewWriter creates a writer for beautified output.
func NewWriter(opt Options, sizeHint int) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, sizeHint),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// LineHasContent reports whether the current line already received content.
func (w *Writer) LineHasContent() bool {
	return !w.atLineStart
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		if w.pendingSpace {
			w.buf = append(w.buf, ' ')
			w.pendingSpace = false
		}
		return
	}
	if w.opt.UseTabs {
		for i := 0; i < w.depth; i++ {
			w.buf = append(w.buf, '\t')
		}
	} else {
		for i := 0; i < w.depth*w.opt.IndentWidth; i++ {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
	w.pendingSpace = false
	w.newlineRun = 0
}

// WriteString writes s to the current line, materializing indentation or a
// single pending space first.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
}

// WriteByte writes a single byte to the current line.
func (w *Writer) WriteByte(b byte) error {
	w.writeIndent()
	w.buf = append(w.buf, b)
	return nil
}

// WriteLiteral writes literal text and marks it protected: no later trim or
// collapse may reach into it, whatever whitespace or newlines it contains.
func (w *Writer) WriteLiteral(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.protected = len(w.buf)
}

// Space requests a single space before the next content on this line.
// Requests at line start or back to back collapse to nothing and one space.
func (w *Writer) Space() {
	if !w.atLineStart {
		w.pendingSpace = true
	}
}

// Newline closes the current line, trimming trailing spaces and tabs (but
// never literal bytes). Runs of newlines cap at two: at most one blank line
// survives between content lines.
func (w *Writer) Newline() {
	w.atLineStart = true
	w.pendingSpace = false
	if w.newlineRun >= 2 {
		return
	}
	for len(w.buf) > w.protected {
		last := w.buf[len(w.buf)-1]
		if last != ' ' && last != '\t' {
			break
		}
		w.buf = w.buf[:len(w.buf)-1]
	}
	w.buf = append(w.buf, '\n')
	w.newlineRun++
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.depth++
}

// IndentPop decreases the indentation level, clamped at zero so a stray
// closing brace never drives the depth negative.
func (w *Writer) IndentPop() {
	if w.depth > 0 {
		w.depth--
	}
}
