package mdr

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Render renders a markdown document into ANSI-styled terminal text. With
// DepthAuto, stdout is the terminal that gets probed.
func Render(source []byte, opts ...RenderOption) (string, error) {
	cfg := newRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return render(source, cfg, os.Stdout)
}

// RenderTo renders a markdown document and writes the result to w. With
// DepthAuto, w is the terminal that gets probed.
func RenderTo(w io.Writer, source []byte, opts ...RenderOption) error {
	cfg := newRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	out, err := render(source, cfg, w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func render(source []byte, cfg renderConfig, probe io.Writer) (string, error) {
	if err := ValidateInput(source); err != nil {
		return "", err
	}
	depth := cfg.depth
	if depth == DepthAuto {
		depth = DetectColorDepth(probe)
	}
	if depth == DepthNone {
		return string(source), nil
	}

	theme, err := cfg.resolvedTheme()
	if err != nil {
		return "", err
	}
	sty := theme.Styles()
	codeStyle, err := codeStyleByName(cfg.codeTheme, sty.Light)
	if err != nil {
		return "", err
	}
	italics := cfg.italics == ItalicsAlways || (cfg.italics == ItalicsAuto && DetectItalics())

	body, front := stripFrontMatter(trimBOM(source))

	r := &renderer{
		cfg:     cfg,
		styles:  sty,
		source:  body,
		italics: italics,
		out:     newLineWriter(cfg.width, depth.profile()),
		scopes:  newScopeStack(),
		images:  imageRenderer{enabled: cfg.images, base: cfg.imageBase, width: cfg.width},
		diagram: diagramRenderer{pipeline: cfg.diagramPipe, width: cfg.width},
		code: codeRenderer{
			width:   cfg.width,
			profile: depth.profile(),
			style:   codeStyle,
			light:   sty.Light,
			numbers: cfg.lineNumbers,
		},
	}

	if title := frontMatterTitle(front); title != "" {
		r.renderTitle(title)
	}

	md := goldmark.New(goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extMark,
	))
	doc := md.Parser().Parse(text.NewReader(body))
	if err := ast.Walk(doc, r.walk); err != nil {
		return "", err
	}
	return r.out.finish(), nil
}

type listFrame struct {
	ordered bool
	next    int
}

// renderer is the document driver: it consumes the parsed event tree and
// dispatches prose to the line wrapper and code, tables, images and
// diagrams to their renderers.
type renderer struct {
	cfg     renderConfig
	styles  Styles
	source  []byte
	italics bool

	out     *lineWriter
	scopes  *scopeStack
	lists   []listFrame
	table   *tableBuffer
	images  imageRenderer
	diagram diagramRenderer
	code    codeRenderer
}

func (r *renderer) style() Style {
	return resolveStyle(r.styles, r.scopes, r.italics)
}

func (r *renderer) renderTitle(title string) {
	r.scopes.push(scopeHeading, 1)
	st := r.style()
	r.out.emitMarker(headingMarker(1), st)
	r.out.emitStyled(title, st)
	r.scopes.pop()
	r.out.ensureBlankLine()
}

// headingMarker returns the block-glyph prefix: one block per level,
// capped at four.
func headingMarker(level int) string {
	n := level
	if n < 1 {
		n = 1
	}
	if n > 4 {
		n = 4
	}
	return strings.Repeat("█", n) + " "
}

func (r *renderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Document:
		return ast.WalkContinue, nil

	case *ast.Heading:
		if entering {
			r.out.ensureBlankLine()
			r.scopes.push(scopeHeading, node.Level)
			r.out.emitMarker(headingMarker(node.Level), r.style())
		} else {
			r.scopes.pop()
			r.out.ensureBlankLine()
		}
		return ast.WalkContinue, nil

	case *ast.Paragraph:
		if !entering {
			if len(r.lists) == 0 && r.scopes.quoteDepth() == 0 {
				r.out.ensureBlankLine()
			} else {
				r.out.endLine()
			}
		}
		return ast.WalkContinue, nil

	case *ast.TextBlock:
		if !entering {
			r.out.endLine()
		}
		return ast.WalkContinue, nil

	case *ast.Text:
		if entering {
			st := r.style()
			r.out.emitStyled(string(node.Segment.Value(r.source)), st)
			if node.HardLineBreak() {
				r.out.lineBreak()
			} else if node.SoftLineBreak() {
				r.out.softSpace(st)
			}
		}
		return ast.WalkContinue, nil

	case *ast.String:
		if entering {
			r.out.emitStyled(string(node.Value), r.style())
		}
		return ast.WalkContinue, nil

	case *ast.Emphasis:
		kind := scopeEmphasis
		if node.Level >= 2 {
			kind = scopeStrong
		}
		if entering {
			r.scopes.push(kind, 0)
		} else {
			r.scopes.pop()
		}
		return ast.WalkContinue, nil

	case *extast.Strikethrough:
		if entering {
			r.scopes.push(scopeStrike, 0)
		} else {
			r.scopes.pop()
		}
		return ast.WalkContinue, nil

	case *markNode:
		if entering {
			r.scopes.push(scopeMark, 0)
		} else {
			r.scopes.pop()
		}
		return ast.WalkContinue, nil

	case *ast.CodeSpan:
		if entering {
			r.scopes.push(scopeCode, 0)
			r.out.emitInlineCode(r.codeSpanText(node), r.style())
			r.scopes.pop()
		}
		return ast.WalkSkipChildren, nil

	case *ast.Link:
		if entering {
			r.scopes.push(scopeLink, 0)
			r.out.emitLink(r.textOf(node), string(node.Destination), r.style(), r.styles.LinkURL, r.cfg.hyperlinks)
			r.scopes.pop()
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			label := string(node.Label(r.source))
			url := label
			if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(label, "mailto:") {
				url = "mailto:" + label
			}
			if !r.cfg.hyperlinks {
				url = label
			}
			r.scopes.push(scopeLink, 0)
			r.out.emitLink(label, url, r.style(), r.styles.LinkURL, r.cfg.hyperlinks)
			r.scopes.pop()
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		if entering {
			r.renderImage(string(node.Destination), r.textOf(node))
		}
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock:
		if entering {
			info := ""
			if node.Info != nil {
				info = string(node.Info.Segment.Value(r.source))
			}
			r.renderCodeBlock(r.blockText(node), info)
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			r.renderCodeBlock(r.blockText(node), "")
		}
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if entering {
			depth := r.scopes.quoteDepth()
			if depth == 0 {
				r.out.ensureBlankLine()
			} else {
				r.out.endLine()
			}
			r.scopes.push(scopeQuote, 0)
			r.out.setQuote(depth+1, r.styles)
		} else {
			r.out.endLine()
			r.scopes.pop()
			depth := r.scopes.quoteDepth()
			r.out.setQuote(depth, r.styles)
			if depth == 0 {
				r.out.ensureBlankLine()
			}
		}
		return ast.WalkContinue, nil

	case *ast.List:
		if entering {
			start := node.Start
			if start < 1 {
				start = 1
			}
			r.lists = append(r.lists, listFrame{ordered: node.IsOrdered(), next: start})
		} else {
			r.lists = r.lists[:len(r.lists)-1]
			if len(r.lists) == 0 {
				r.out.ensureBlankLine()
			}
		}
		return ast.WalkContinue, nil

	case *ast.ListItem:
		if entering {
			r.out.endLine()
			frame := &r.lists[len(r.lists)-1]
			indent := strings.Repeat("  ", len(r.lists)-1)
			marker := indent + "- "
			if frame.ordered {
				marker = indent + strconv.Itoa(frame.next) + ". "
				frame.next++
			}
			r.out.emitMarker(marker, r.styles.ListMarker)
		} else {
			r.out.endLine()
		}
		return ast.WalkContinue, nil

	case *ast.ThematicBreak:
		if entering {
			r.out.ensureBlankLine()
			r.out.emitMarker(strings.Repeat("─", r.cfg.width), r.styles.ThematicBreak)
			r.out.ensureBlankLine()
		}
		return ast.WalkContinue, nil

	case *extast.Table:
		if entering {
			r.out.ensureBlankLine()
			r.table = &tableBuffer{aligns: tableAlignments(node.Alignments)}
		} else {
			r.out.appendBlock(renderTable(r.table, r.cfg.width))
			r.out.ensureBlankLine()
			r.table = nil
		}
		return ast.WalkContinue, nil

	case *extast.TableHeader, *extast.TableRow:
		if entering && r.table != nil {
			r.table.startRow()
		}
		return ast.WalkContinue, nil

	case *extast.TableCell:
		if entering && r.table != nil {
			r.table.addCell(r.collectSpans(node))
		}
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock:
		if entering {
			raw := r.blockText(node)
			if node.HasClosure() {
				raw += string(node.ClosureLine.Value(r.source))
			}
			r.out.emitStyled(raw, r.styles.Text)
			r.out.ensureBlankLine()
		}
		return ast.WalkContinue, nil

	case *ast.RawHTML:
		if entering {
			st := r.style()
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				r.out.emitStyled(string(seg.Value(r.source)), st)
			}
		}
		return ast.WalkContinue, nil

	default:
		return ast.WalkContinue, nil
	}
}

// blockText concatenates the raw source lines of a block node.
func (r *renderer) blockText(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(r.source))
	}
	return b.String()
}

// textOf flattens the inline text of a subtree, turning line breaks into
// single spaces.
func (r *renderer) textOf(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(r.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// codeSpanText flattens a code span. Line endings inside it count as
// spaces, which keeps the span a single layout atom.
func (r *renderer) codeSpanText(n ast.Node) string {
	return strings.ReplaceAll(r.textOf(n), "\n", " ")
}

// collectSpans flattens a table cell into tagged spans: code spans keep
// their tag for the table renderer, everything else becomes plain text.
func (r *renderer) collectSpans(n ast.Node) []cellSpan {
	var spans []cellSpan
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			spans = append(spans, cellSpan{text: string(t.Segment.Value(r.source))})
			if t.SoftLineBreak() || t.HardLineBreak() {
				spans = append(spans, cellSpan{text: " "})
			}
		case *ast.String:
			spans = append(spans, cellSpan{text: string(t.Value)})
		case *ast.CodeSpan:
			spans = append(spans, cellSpan{code: true, text: r.codeSpanText(t)})
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			spans = append(spans, cellSpan{text: imagePlaceholder(r.textOf(t))})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return spans
}

func (r *renderer) renderImage(target, alt string) {
	if block, ok := r.images.render(target); ok {
		r.out.appendBlock(block)
		return
	}
	r.out.emitWord(imagePlaceholder(alt), r.style())
}

// renderCodeBlock frames a fenced or indented block. Mermaid fences go
// through the diagram pipeline in image mode; on any failure they fall back
// to highlighted code with their generic language label.
func (r *renderer) renderCodeBlock(code, info string) {
	lang, meta := parseFenceInfo(info)
	if isDiagramLang(lang) && r.cfg.diagrams == DiagramsImage && r.cfg.images {
		if img, err := r.diagram.render(code); err == nil {
			if header := r.code.header(meta.title, ""); header != "" {
				r.out.appendBlock(header)
			}
			r.out.appendBlock(img)
			r.out.ensureBlankLine()
			return
		}
	}
	r.out.appendBlock(r.code.render(code, lang, meta))
	r.out.rawNewline()
	r.out.ensureBlankLine()
}

func tableAlignments(aligns []extast.Alignment) []tw.Align {
	out := make([]tw.Align, len(aligns))
	for i, a := range aligns {
		switch a {
		case extast.AlignRight:
			out[i] = tw.AlignRight
		case extast.AlignCenter:
			out[i] = tw.AlignCenter
		default:
			out[i] = tw.AlignLeft
		}
	}
	return out
}
