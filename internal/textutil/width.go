package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

// DisplayWidth reports the printable terminal width of text. It walks
// grapheme clusters rather than runes so ZWJ sequences, variation selectors
// and regional-indicator pairs measure as a single unit. A cluster that
// measures below one column counts as one, so control characters and
// undecodable bytes never shrink a line.
func DisplayWidth(text string) int {
	width := 0
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		w := graphemes.Width()
		if w < 1 {
			w = 1
		}
		width += w
	}
	return width
}

// PadRight appends spaces until text occupies width display columns.
// Text already at or beyond width is returned unchanged.
func PadRight(text string, width int) string {
	gap := width - DisplayWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				builder.WriteByte(' ')
			}
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		width := runewidth.RuneWidth(ru)
		if width < 1 {
			width = 1
		}
		column += width
	}
	return builder.String()
}
