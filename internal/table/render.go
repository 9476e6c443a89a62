package table

import (
	"strings"

	"github.com/szabop/md-table-tools/internal/textblock"
	"github.com/szabop/md-table-tools/internal/textutil"
)

// minColumnWidth keeps every delimiter cell at least three dashes wide.
const minColumnWidth = 3

// DetermineColumnAlignments maps delimiter-row cells to per-column alignment:
// colons on both ends center, a leading colon aligns left, a trailing colon
// aligns right, bare dashes leave the column unaligned.
func DetermineColumnAlignments(cells []string) []textblock.Alignment {
	aligns := make([]textblock.Alignment, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = textblock.AlignCenter
		case right:
			aligns[i] = textblock.AlignRight
		case left:
			aligns[i] = textblock.AlignLeft
		default:
			aligns[i] = textblock.AlignNone
		}
	}
	return aligns
}

// Renderer lays out parsed table cells into one aligned text block. The zero
// value is ready to use.
type Renderer struct {
	// Trace receives per-column layout decisions when non-nil.
	Trace func(format string, args ...any)
}

func (r *Renderer) tracef(format string, args ...any) {
	if r.Trace != nil {
		r.Trace(format, args...)
	}
}

// Render lays out a table from raw header cells, body rows and per-column
// alignment. Each column is rendered independently at its negotiated width
// (the widest of header, body and the three-dash floor), then the columns
// are joined left to right with pipe separators and a closing pipe.
//
// The three inputs may disagree on column count; missing header or body
// cells render empty and missing alignment defaults to none.
func (r *Renderer) Render(header []string, rows [][]string, aligns []textblock.Alignment) *textblock.Block {
	headerCols := make(map[int]*textblock.Block)
	accumulateRow(header, headerCols)

	bodyCols := make(map[int]*textblock.Block)
	for _, row := range rows {
		accumulateRow(row, bodyCols)
	}

	columnCount := len(header)
	for _, row := range rows {
		if len(row) > columnCount {
			columnCount = len(row)
		}
	}
	if len(aligns) > columnCount {
		columnCount = len(aligns)
	}

	tableBlock := textblock.New()
	for i := 0; i < columnCount; i++ {
		align := alignmentAt(aligns, i)
		headerBlock := textblock.New(columnAt(headerCols, i).Lines()...)
		bodyBlock := textblock.New(columnAt(bodyCols, i).Lines()...)

		width := headerBlock.Width()
		if w := bodyBlock.Width(); w > width {
			width = w
		}
		if width < minColumnWidth {
			width = minColumnWidth
		}
		r.tracef("column %d: align=%s width=%d", i+1, align, width)

		column := headerBlock.Align(align, width).Map(padCell).
			AppendLine(delimiterLine(width, align)).
			StackBelow(bodyBlock.Align(align, width).Map(padCell))

		tableBlock.PlaceLeftOf(column, textblock.WithSeparator("|"))
	}

	// One more composition with an empty block closes every row with a
	// trailing pipe and pads short rows out to the full table width.
	return tableBlock.PlaceLeftOf(textblock.New(), textblock.WithSeparator("|"))
}

// Format parses src as one pipe table and returns it realigned. A trailing
// newline on src is preserved on the output.
func (r *Renderer) Format(src string) (string, error) {
	trailingNewline := strings.HasSuffix(src, "\n")
	parsed, err := Parse(strings.Split(strings.TrimSuffix(src, "\n"), "\n"))
	if err != nil {
		return "", err
	}
	rendered := r.Render(parsed.Header, parsed.Rows, DetermineColumnAlignments(parsed.Delimiter))
	out := strings.Join(rendered.Lines(), "\n")
	if trailingNewline {
		out += "\n"
	}
	return out, nil
}

// accumulateRow appends each cell's trimmed, tab-expanded text as one line
// to the block for its column index, creating blocks on first touch. Raw
// pipes in the cell are re-escaped here, before width negotiation, so column
// widths account for the backslash.
func accumulateRow(cells []string, columns map[int]*textblock.Block) {
	for i, cell := range cells {
		block, ok := columns[i]
		if !ok {
			block = textblock.New()
			columns[i] = block
		}
		cell = escapePipes(strings.TrimSpace(cell))
		block.AppendLine(textutil.ExpandTabs(cell, textutil.DefaultTabWidth))
	}
}

func columnAt(columns map[int]*textblock.Block, idx int) *textblock.Block {
	if block, ok := columns[idx]; ok {
		return block
	}
	return textblock.New()
}

func alignmentAt(aligns []textblock.Alignment, idx int) textblock.Alignment {
	if idx < len(aligns) {
		return aligns[idx]
	}
	return textblock.AlignNone
}

func padCell(line string) string {
	return " " + line + " "
}

func delimiterLine(width int, align textblock.Alignment) string {
	dashes := strings.Repeat("-", width)
	switch align {
	case textblock.AlignLeft:
		return ":" + dashes + "-"
	case textblock.AlignCenter:
		return ":" + dashes + ":"
	case textblock.AlignRight:
		return "-" + dashes + ":"
	default:
		return "-" + dashes + "-"
	}
}
