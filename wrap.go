package mdr

import (
	"bytes"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/termenv"
)

// quoteContext carries the active blockquote nesting and the styles used
// for its prefix glyphs and background padding.
type quoteContext struct {
	depth  int
	accent Style
	pad    Style
}

// lineWriter is the layout core. It accepts styled fragments, tracks the
// current column in display-width units, wraps at word boundaries and is the
// single sink all prose output flows through. Words are never split across
// lines and continuation lines never begin with unstyled whitespace.
type lineWriter struct {
	buf     bytes.Buffer
	width   int
	profile termenv.Profile

	col          int
	active       string
	activeBG     bool
	pendingSpace bool
	spaceStyle   Style
	quote        quoteContext
}

func newLineWriter(width int, profile termenv.Profile) *lineWriter {
	return &lineWriter{width: width, profile: profile}
}

func (w *lineWriter) writeStyled(text string, st Style) {
	if text == "" {
		return
	}
	prefix := st.prefix(w.profile)
	if prefix != w.active {
		if w.active != "" {
			w.buf.WriteString(ansiReset)
		}
		w.buf.WriteString(prefix)
		w.active = prefix
		w.activeBG = st.HasBG
	}
	w.buf.WriteString(text)
}

func (w *lineWriter) resetStyle() {
	if w.active != "" {
		w.buf.WriteString(ansiReset)
		w.active = ""
		w.activeBG = false
	}
}

func (w *lineWriter) prefixWidth() int {
	return w.quote.depth * 4
}

// ensurePrefix writes the blockquote prefix at the start of a line: one
// vertical bar plus three spaces per nesting level, all on the quote
// background.
func (w *lineWriter) ensurePrefix() {
	if w.quote.depth == 0 || w.col != 0 {
		return
	}
	for i := 0; i < w.quote.depth; i++ {
		w.writeStyled("▌", w.quote.accent)
		w.writeStyled("   ", w.quote.pad)
	}
	w.col = w.prefixWidth()
}

// padToWidth fills the rest of the line with background-colored spaces so
// an active blockquote forms a uniform rectangle.
func (w *lineWriter) padToWidth() {
	if w.quote.depth == 0 || w.col >= w.width {
		return
	}
	w.writeStyled(strings.Repeat(" ", w.width-w.col), w.quote.pad)
	w.col = w.width
}

// lineBreak forces a wrap: pad, reset, newline, and an immediate re-emit of
// the blockquote prefix when one is active. Any pending space is dropped.
func (w *lineWriter) lineBreak() {
	w.padToWidth()
	w.resetStyle()
	w.buf.WriteByte('\n')
	w.col = 0
	w.pendingSpace = false
	w.ensurePrefix()
}

// endLine terminates the current line without starting the next one.
func (w *lineWriter) endLine() {
	if w.col == 0 {
		return
	}
	w.padToWidth()
	w.resetStyle()
	w.buf.WriteByte('\n')
	w.col = 0
	w.pendingSpace = false
}

func (w *lineWriter) blankLine() {
	w.resetStyle()
	w.buf.WriteByte('\n')
	w.col = 0
	w.pendingSpace = false
}

func (w *lineWriter) endsWithBlank() bool {
	b := w.buf.Bytes()
	return len(b) >= 2 && b[len(b)-1] == '\n' && b[len(b)-2] == '\n'
}

// ensureBlankLine terminates the current line if open and guarantees
// exactly one blank line of separation, except at the very start of the
// document.
func (w *lineWriter) ensureBlankLine() {
	if w.buf.Len() == 0 && w.col == 0 {
		return
	}
	w.endLine()
	if !w.endsWithBlank() {
		w.blankLine()
	}
}

// softSpace records a collapsed run of whitespace. It is emitted as a
// single space in front of the next word, or dropped at a wrap or at the
// start of a line.
func (w *lineWriter) softSpace(st Style) {
	w.pendingSpace = true
	w.spaceStyle = st
}

// emitSpace writes the held space. A styled space is only needed when a
// background must be preserved; a plain space after a background run first
// closes the run so the color does not bleed into the gap.
func (w *lineWriter) emitSpace() {
	if w.spaceStyle.HasBG {
		w.writeStyled(" ", w.spaceStyle)
	} else {
		if w.activeBG {
			w.resetStyle()
		}
		w.buf.WriteByte(' ')
	}
	w.col++
	w.pendingSpace = false
}

// wrapBefore wraps if the pending space plus an atom of the given display
// width would overflow the budget, otherwise it emits the pending space.
// Atoms wider than the whole budget overflow rather than split.
func (w *lineWriter) wrapBefore(width int) {
	spaceWidth := 0
	if w.pendingSpace && w.col > w.prefixWidth() {
		spaceWidth = 1
	}
	if w.col > w.prefixWidth() && w.col+spaceWidth+width > w.width {
		w.lineBreak()
		return
	}
	if spaceWidth > 0 {
		w.emitSpace()
	}
	w.pendingSpace = false
}

func (w *lineWriter) emitWord(word string, st Style) {
	if word == "" {
		return
	}
	w.ensurePrefix()
	width := ansi.PrintableRuneWidth(word)
	w.wrapBefore(width)
	w.writeStyled(word, st)
	w.col += width
}

// emitStyled splits text on whitespace and lays the words out. Literal
// newlines force a hard wrap.
func (w *lineWriter) emitStyled(text string, st Style) {
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			w.emitChunk(text[start:i], st)
			w.lineBreak()
			start = i + 1
		}
	}
	w.emitChunk(text[start:], st)
}

func (w *lineWriter) emitChunk(chunk string, st Style) {
	i := 0
	for i < len(chunk) {
		j := i
		for j < len(chunk) && chunk[j] != ' ' && chunk[j] != '\t' {
			j++
		}
		if j > i {
			w.emitWord(chunk[i:j], st)
		}
		i = j
		for i < len(chunk) && (chunk[i] == ' ' || chunk[i] == '\t') {
			i++
		}
		if i > j {
			w.softSpace(st)
		}
	}
}

// emitMarker writes a short line-initial marker (bullet, list number,
// heading blocks) without any wrap logic.
func (w *lineWriter) emitMarker(text string, st Style) {
	if text == "" {
		return
	}
	w.ensurePrefix()
	w.writeStyled(text, st)
	w.col += ansi.PrintableRuneWidth(text)
}

// emitLink writes link text as one unbreakable atom. With hyperlinks on,
// the styled text and its reset both sit inside the OSC 8 open/close pair.
// With hyperlinks off the destination follows in parentheses, shortened
// when it could never fit on a line of its own.
func (w *lineWriter) emitLink(text, url string, st, urlStyle Style, hyperlink bool) {
	if text == "" {
		text = url
	}
	if text == "" {
		return
	}
	w.ensurePrefix()
	width := ansi.PrintableRuneWidth(text)
	w.wrapBefore(width)
	if hyperlink && url != "" {
		w.resetStyle()
		w.buf.WriteString(osc8Prefix + url + osc8Term)
		w.writeStyled(text, st)
		w.resetStyle()
		w.buf.WriteString(osc8Prefix + osc8Term)
		w.col += width
		return
	}
	w.writeStyled(text, st)
	w.col += width
	if url == "" || url == text {
		return
	}
	avail := w.width - w.prefixWidth()
	if avail > 4 && ansi.PrintableRuneWidth(url)+2 > avail {
		url = fitURL(url, avail-2)
	}
	ref := "(" + url + ")"
	refWidth := ansi.PrintableRuneWidth(ref)
	w.softSpace(st)
	w.wrapBefore(refWidth)
	w.writeStyled(ref, urlStyle)
	w.col += refWidth
}

// emitInlineCode writes a code span as one unbreakable atom on its
// background.
func (w *lineWriter) emitInlineCode(code string, st Style) {
	if code == "" {
		return
	}
	w.ensurePrefix()
	width := ansi.PrintableRuneWidth(code)
	w.wrapBefore(width)
	w.writeStyled(code, st)
	w.col += width
}

// appendBlock writes a self-contained pre-rendered block (code frame,
// table, image escape) verbatim.
func (w *lineWriter) appendBlock(block string) {
	w.endLine()
	w.resetStyle()
	w.buf.WriteString(block)
	w.col = 0
}

// rawNewline terminates a pre-rendered block whose last line carries no
// line terminator of its own.
func (w *lineWriter) rawNewline() {
	w.buf.WriteByte('\n')
	w.col = 0
}

func (w *lineWriter) setQuote(depth int, styles Styles) {
	w.quote.depth = depth
	if depth == 0 {
		return
	}
	accent := styles.Quote
	accent.Attrs = 0
	w.quote.accent = accent.withBG(styles.QuoteBG)
	w.quote.pad = Style{HasBG: true, BG: styles.QuoteBG}
}

// finish terminates the output: trailing blank lines collapse to a single
// newline and the final full reset lands after it, exactly once.
func (w *lineWriter) finish() string {
	w.endLine()
	w.resetStyle()
	b := w.buf.Bytes()
	n := len(b)
	for n >= 2 && b[n-1] == '\n' && b[n-2] == '\n' {
		n--
	}
	w.buf.Truncate(n)
	if n > 0 && b[n-1] != '\n' {
		w.buf.WriteByte('\n')
	}
	w.buf.WriteString(ansiReset)
	return w.buf.String()
}
