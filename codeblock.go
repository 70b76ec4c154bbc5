package mdr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// AvailableCodeThemes lists the built-in syntax highlighting styles.
func AvailableCodeThemes() []string {
	return styles.Names()
}

// codeStyleByName resolves a chroma style by name. The empty name picks a
// default matching the color mode.
func codeStyleByName(name string, light bool) (*chroma.Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		if light {
			name = "github"
		} else {
			name = "monokai"
		}
	}
	if s, ok := styles.Registry[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// codeBlockMeta holds the extras parsed from a fence info string, e.g.
//
//	```go title="main.go" showLineNumbers {1,3-5}
type codeBlockMeta struct {
	title       string
	lineNumbers *bool
	highlights  []lineRange
}

type lineRange struct {
	from, to int
}

func (m codeBlockMeta) highlighted(line int) bool {
	for _, r := range m.highlights {
		if line >= r.from && line <= r.to {
			return true
		}
	}
	return false
}

// parseFenceInfo splits a fence info string into the language token and the
// block metadata. Unknown fields are ignored.
func parseFenceInfo(info string) (string, codeBlockMeta) {
	var meta codeBlockMeta
	fields := splitFenceFields(strings.TrimSpace(info))
	if len(fields) == 0 {
		return "", meta
	}
	lang := fields[0]
	if isFenceAttribute(lang) {
		lang = ""
	} else {
		fields = fields[1:]
	}
	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "title="):
			meta.title = unquoteFenceValue(strings.TrimPrefix(f, "title="))
		case f == "showLineNumbers":
			on := true
			meta.lineNumbers = &on
		case strings.HasPrefix(f, "showLineNumbers="):
			on := strings.TrimPrefix(f, "showLineNumbers=") != "false"
			meta.lineNumbers = &on
		case strings.HasPrefix(f, "{") && strings.HasSuffix(f, "}"):
			meta.highlights = parseHighlightRanges(f[1 : len(f)-1])
		}
	}
	return lang, meta
}

func isFenceAttribute(f string) bool {
	return strings.HasPrefix(f, "title=") ||
		strings.HasPrefix(f, "showLineNumbers") ||
		strings.HasPrefix(f, "{")
}

// splitFenceFields splits on spaces but keeps quoted values together.
func splitFenceFields(s string) []string {
	var fields []string
	var b strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			b.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case c == ' ' || c == '\t':
			if b.Len() > 0 {
				fields = append(fields, b.String())
				b.Reset()
			}
		default:
			b.WriteByte(c)
		}
	}
	if b.Len() > 0 {
		fields = append(fields, b.String())
	}
	return fields
}

func unquoteFenceValue(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// parseHighlightRanges parses "1,3-5" style line sets. Zero and negative
// line numbers are dropped.
func parseHighlightRanges(s string) []lineRange {
	var ranges []lineRange
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		from, to := part, part
		if idx := strings.Index(part, "-"); idx > 0 {
			from, to = part[:idx], part[idx+1:]
		}
		a, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil || a < 1 {
			continue
		}
		b, err := strconv.Atoi(strings.TrimSpace(to))
		if err != nil || b < a {
			continue
		}
		ranges = append(ranges, lineRange{from: a, to: b})
	}
	return ranges
}

var lexerAliases = map[string]string{
	"sh":     "bash",
	"shell":  "bash",
	"zsh":    "bash",
	"c++":    "cpp",
	"js":     "javascript",
	"ts":     "typescript",
	"golang": "go",
	"py":     "python",
	"yml":    "yaml",
}

// lookupLexer resolves a language token to a grammar: extension match
// first, then exact name, lowercase name, the alias table, and finally the
// plain-text fallback.
func lookupLexer(lang string) chroma.Lexer {
	if lang != "" {
		if lx := lexers.Match("file." + lang); lx != nil {
			return chroma.Coalesce(lx)
		}
		if lx := lexers.Get(lang); lx != nil {
			return chroma.Coalesce(lx)
		}
		if lx := lexers.Get(strings.ToLower(lang)); lx != nil {
			return chroma.Coalesce(lx)
		}
		if alias, ok := lexerAliases[strings.ToLower(lang)]; ok {
			if lx := lexers.Get(alias); lx != nil {
				return chroma.Coalesce(lx)
			}
		}
	}
	return lexers.Fallback
}

// languageLabel picks the label shown in the block header. Unrecognized
// languages keep their raw token so a mermaid fence still says mermaid.
func languageLabel(lexer chroma.Lexer, rawLang string) string {
	name := strings.ToLower(lexer.Config().Name)
	if name == "plaintext" || name == "fallback" {
		if rawLang != "" {
			return strings.ToLower(rawLang)
		}
		return "text"
	}
	return name
}

// codeRenderer frames highlighted code in a full-width background block.
type codeRenderer struct {
	width   int
	profile termenv.Profile
	style   *chroma.Style
	light   bool
	numbers bool
}

func (c *codeRenderer) fg(col chroma.Colour) string {
	if !col.IsSet() {
		return ""
	}
	if c.profile == termenv.TrueColor {
		return fgEscape(col.Red(), col.Green(), col.Blue())
	}
	seq := colorSequence(RGB{R: col.Red(), G: col.Green(), B: col.Blue()}, c.profile, false)
	if seq == "" {
		return ""
	}
	return "\x1b[" + seq + "m"
}

func (c *codeRenderer) bg(rgb RGB) string {
	if c.profile == termenv.TrueColor {
		return bgEscape(rgb.R, rgb.G, rgb.B)
	}
	seq := colorSequence(rgb, c.profile, true)
	if seq == "" {
		return ""
	}
	return "\x1b[" + seq + "m"
}

func (c *codeRenderer) blockBG() RGB {
	entry := c.style.Get(chroma.Background)
	if entry.Background.IsSet() {
		return RGB{R: entry.Background.Red(), G: entry.Background.Green(), B: entry.Background.Blue()}
	}
	if c.light {
		return RGB{R: 0xf0, G: 0xf0, B: 0xf0}
	}
	return RGB{R: 0x28, G: 0x28, B: 0x28}
}

// header renders the block header: bold title left, language label right,
// exactly filling the width. Returns the empty string when there is nothing
// to show.
func (c *codeRenderer) header(title, label string) string {
	if title == "" && label == "" {
		return ""
	}
	labelWidth := runewidth.StringWidth(label)
	avail := c.width - labelWidth
	if label != "" {
		avail--
	}
	if title != "" && runewidth.StringWidth(title) > avail {
		title = truncateWithEllipsis(title, avail)
	}
	pad := c.width - runewidth.StringWidth(title) - labelWidth
	if pad < 1 {
		pad = 1
	}
	var b strings.Builder
	if title != "" {
		b.WriteString("\x1b[1m")
		b.WriteString(title)
		b.WriteString(ansiReset)
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(label)
	b.WriteString("\n")
	return b.String()
}

// render produces the full framed block: header, top padding row, one
// background-filled row per source line, and a bottom padding row with no
// trailing newline. Code lines are never wrapped.
func (c *codeRenderer) render(code, rawLang string, meta codeBlockMeta) string {
	lexer := lookupLexer(rawLang)
	label := languageLabel(lexer, rawLang)
	if rawLang == "" && meta.title != "" {
		label = ""
	}
	return c.renderWith(code, lexer, label, meta)
}

func (c *codeRenderer) renderWith(code string, lexer chroma.Lexer, label string, meta codeBlockMeta) string {
	lines := tokenizeLines(lexer, code)
	showNumbers := c.numbers
	if meta.lineNumbers != nil {
		showNumbers = *meta.lineNumbers
	}
	gutterWidth := 0
	if showNumbers {
		gutterWidth = len(strconv.Itoa(len(lines)))
	}

	blockBG := c.blockBG()
	markBG := brighten(blockBG)
	if c.light {
		markBG = darken(blockBG)
	}
	gutterFG := chroma.Colour(0)
	if entry := c.style.Get(chroma.LineNumbers); entry.Colour.IsSet() {
		gutterFG = entry.Colour
	}

	var b strings.Builder
	b.WriteString(c.header(meta.title, label))
	b.WriteString(c.paddingRow(blockBG))
	b.WriteString("\n")
	for i, line := range lines {
		rowBG := blockBG
		if meta.highlighted(i + 1) {
			rowBG = markBG
		}
		b.WriteString(c.bg(rowBG))
		if showNumbers {
			if esc := c.fg(gutterFG); esc != "" {
				b.WriteString(esc)
			} else {
				b.WriteString(fgEscape(128, 128, 128))
			}
			b.WriteString(" ")
			num := strconv.Itoa(i + 1)
			b.WriteString(strings.Repeat(" ", gutterWidth-len(num)))
			b.WriteString(num)
			b.WriteString("  ")
		}
		c.writeTokens(&b, line, rowBG)
		b.WriteString(ansiClearEOL)
		b.WriteString(ansiReset)
		b.WriteString("\n")
	}
	b.WriteString(c.paddingRow(blockBG))
	return b.String()
}

func (c *codeRenderer) paddingRow(bg RGB) string {
	return c.bg(bg) + strings.Repeat(" ", c.width) + ansiReset
}

// writeTokens emits one source line. Only foreground colors switch between
// tokens; a token that carries its own background gets the row background
// re-emitted afterwards so the frame stays uniform.
func (c *codeRenderer) writeTokens(b *strings.Builder, line []chroma.Token, rowBG RGB) {
	current := ""
	for _, tok := range line {
		text := strings.TrimRight(tok.Value, "\n")
		if text == "" {
			continue
		}
		entry := c.style.Get(tok.Type)
		if esc := c.fg(entry.Colour); esc != current {
			b.WriteString(esc)
			current = esc
		}
		if entry.Background.IsSet() {
			b.WriteString(c.bg(RGB{R: entry.Background.Red(), G: entry.Background.Green(), B: entry.Background.Blue()}))
			b.WriteString(text)
			b.WriteString(c.bg(rowBG))
			continue
		}
		b.WriteString(text)
	}
}

// tokenizeLines runs the grammar over the whole block, keeping trailing
// newlines intact so line-oriented grammars track multi-line state, then
// splits the token stream back into lines.
func tokenizeLines(lexer chroma.Lexer, code string) [][]chroma.Token {
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		it, err = lexers.Fallback.Tokenise(nil, code)
		if err != nil {
			return plainLines(code)
		}
	}
	lines := chroma.SplitTokensIntoLines(it.Tokens())
	if len(lines) == 0 {
		return [][]chroma.Token{{}}
	}
	return lines
}

func plainLines(code string) [][]chroma.Token {
	raw := strings.Split(strings.TrimRight(code, "\n"), "\n")
	lines := make([][]chroma.Token, len(raw))
	for i, l := range raw {
		lines[i] = []chroma.Token{{Type: chroma.Text, Value: l}}
	}
	return lines
}
