package mdr

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// cellSpan is one run of table cell content. Code spans are tagged so width
// measurement never has to strip marker syntax; at hand-off the tag is
// dropped and the plain text is used, trading the inline-code background for
// correct column accounting.
type cellSpan struct {
	code bool
	text string
}

// tableBuffer accumulates a whole table before layout. Row 0 is the header.
type tableBuffer struct {
	rows   [][][]cellSpan
	aligns []tw.Align
}

func (t *tableBuffer) startRow() {
	t.rows = append(t.rows, nil)
}

func (t *tableBuffer) addCell(spans []cellSpan) {
	if len(t.rows) == 0 {
		t.startRow()
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], spans)
}

func spanText(spans []cellSpan) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.text)
	}
	return b.String()
}

// renderTable lays the buffered rows out as a box-drawn grid within the
// width budget. Identical input yields identical bytes.
func renderTable(buf *tableBuffer, width int) string {
	if len(buf.rows) == 0 {
		return ""
	}
	plain := make([][]string, len(buf.rows))
	cols := 0
	for i, row := range buf.rows {
		plain[i] = make([]string, len(row))
		for c, spans := range row {
			plain[i][c] = spanText(spans)
		}
		if len(row) > cols {
			cols = len(row)
		}
	}
	aligns := make([]tw.Align, cols)
	for c := range aligns {
		if c < len(buf.aligns) {
			aligns[c] = buf.aligns[c]
		} else {
			aligns[c] = tw.AlignLeft
		}
	}

	cfg := tablewriter.Config{
		MaxWidth: width,
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
			Alignment:  tw.CellAlignment{PerColumn: aligns},
		},
		Row: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoWrap: tw.WrapNormal},
			Alignment:  tw.CellAlignment{PerColumn: aligns},
		},
	}
	if widths := solveColumnWidths(plain, cols, width); widths != nil {
		cfg.Widths = tw.CellWidth{PerColumn: widths}
	}

	var sb strings.Builder
	table := tablewriter.NewTable(&sb,
		tablewriter.WithRendition(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleLight)}),
		tablewriter.WithConfig(cfg),
	)
	header := make([]string, len(plain[0]))
	for c, cell := range plain[0] {
		header[c] = "\x1b[1m" + cell + ansiReset
	}
	table.Header(header)
	for _, row := range plain[1:] {
		table.Append(row)
	}
	if err := table.Render(); err != nil {
		return plainTableFallback(plain)
	}
	return sb.String()
}

// solveColumnWidths derives per-column widths. Wide enough terminals get
// each column's natural width; otherwise every column keeps at least the
// width of its longest unbreakable word, with leftover space shared in
// proportion to demand; when even that cannot fit, minimums scale down
// proportionally to a 4-cell floor. A nil result means no constraints:
// the grid primitive wraps freely.
func solveColumnWidths(rows [][]string, cols, width int) tw.Mapper[int, int] {
	minW := make([]int, cols)
	natW := make([]int, cols)
	for _, row := range rows {
		for c, cell := range row {
			if nat := runewidth.StringWidth(cell) + 2; nat > natW[c] {
				natW[c] = nat
			}
			for _, word := range strings.Fields(cell) {
				if w := runewidth.StringWidth(word) + 2; w > minW[c] {
					minW[c] = w
				}
			}
		}
	}
	sumMin, sumNat := 0, 0
	for c := 0; c < cols; c++ {
		if minW[c] == 0 {
			minW[c] = 3
		}
		if natW[c] < minW[c] {
			natW[c] = minW[c]
		}
		sumMin += minW[c]
		sumNat += natW[c]
	}
	avail := width - (cols + 1)

	widths := tw.Mapper[int, int]{}
	switch {
	case sumNat <= avail:
		for c := 0; c < cols; c++ {
			widths[c] = natW[c]
		}
	case sumMin <= avail:
		leftover := avail - sumMin
		flex := sumNat - sumMin
		for c := 0; c < cols; c++ {
			extra := 0
			if flex > 0 {
				extra = leftover * (natW[c] - minW[c]) / flex
			}
			widths[c] = minW[c] + extra
		}
	case avail >= 4*cols:
		total := 0
		scaled := make([]int, cols)
		for c := 0; c < cols; c++ {
			w := minW[c] * avail / sumMin
			if w < 4 {
				w = 4
			}
			scaled[c] = w
			total += w
		}
		for total > avail {
			trimmed := false
			for c := 0; c < cols && total > avail; c++ {
				if scaled[c] > 4 {
					scaled[c]--
					total--
					trimmed = true
				}
			}
			if !trimmed {
				break
			}
		}
		for c := 0; c < cols; c++ {
			widths[c] = scaled[c]
		}
	default:
		return nil
	}
	return widths
}

func plainTableFallback(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}
