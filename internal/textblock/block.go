// Package textblock provides a small algebra over rectangular blocks of text
// lines: measurement in display columns, padding, alignment, and horizontal
// and vertical composition.
package textblock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/szabop/md-table-tools/internal/textutil"
)

// ErrNegativeCount reports an invalid repeat count passed to Repeat.
var ErrNegativeCount = errors.New("textblock: negative repeat count")

// Alignment selects how Align justifies lines within a column width.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// Block is a mutable ordered sequence of text lines. Mutating methods return
// the receiver so calls can be chained; a block passed as an argument to a
// composition method is never mutated or aliased. A block with zero lines is
// valid and measures zero in both dimensions.
type Block struct {
	lines []string
}

// New returns a block containing the given lines.
func New(lines ...string) *Block {
	b := &Block{lines: make([]string, len(lines))}
	copy(b.lines, lines)
	return b
}

// Repeat returns a block of count identical lines. A count of zero yields a
// valid empty block; a negative count is an error.
func Repeat(text string, count int) (*Block, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	b := &Block{lines: make([]string, count)}
	for i := range b.lines {
		b.lines[i] = text
	}
	return b, nil
}

// Height reports the number of lines.
func (b *Block) Height() int {
	return len(b.lines)
}

// Width reports the maximum display width over all lines.
func (b *Block) Width() int {
	width := 0
	for _, line := range b.lines {
		if w := textutil.DisplayWidth(line); w > width {
			width = w
		}
	}
	return width
}

// PrependLine inserts text as the new first line.
func (b *Block) PrependLine(text string) *Block {
	b.lines = append([]string{text}, b.lines...)
	return b
}

// AppendLine inserts text as the new last line.
func (b *Block) AppendLine(text string) *Block {
	b.lines = append(b.lines, text)
	return b
}

// Lines returns a copy of the block's lines in order.
func (b *Block) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// StackBelow appends copies of other's lines below b's own.
func (b *Block) StackBelow(other *Block) *Block {
	b.lines = append(b.lines, other.lines...)
	return b
}

type composeConfig struct {
	separator string
	padFill   string
}

// ComposeOption adjusts how PlaceLeftOf joins two blocks.
type ComposeOption func(*composeConfig)

// WithSeparator inserts sep between the two blocks on every line.
func WithSeparator(sep string) ComposeOption {
	return func(c *composeConfig) { c.separator = sep }
}

// WithPadFill sets the line used to grow b when the other block is taller.
func WithPadFill(fill string) ComposeOption {
	return func(c *composeConfig) { c.padFill = fill }
}

// PlaceLeftOf joins other to the right of b along a shared edge. When other
// is taller, b first grows with pad-fill lines until the heights match. Every
// line of b is then padded with spaces to b's width as it was before any
// growing, followed by the separator and other's line at the same index (or
// an empty string past other's height). The result is rectangular regardless
// of how ragged the two heights were.
func (b *Block) PlaceLeftOf(other *Block, opts ...ComposeOption) *Block {
	var cfg composeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	width := b.Width()
	for len(b.lines) < len(other.lines) {
		b.lines = append(b.lines, cfg.padFill)
	}
	for i, line := range b.lines {
		right := ""
		if i < len(other.lines) {
			right = other.lines[i]
		}
		b.lines[i] = textutil.PadRight(line, width) + cfg.separator + right
	}
	return b
}

// Align trims the surrounding whitespace of every line and justifies each
// within max(Width, minWidth) columns. Left and none keep the trimmed line;
// right pads on the left to the full width; center pads on the left with
// half the free space, rounding down, so an odd remainder falls to the right
// once the line is padded out by a later composition.
func (b *Block) Align(mode Alignment, minWidth int) *Block {
	width := b.Width()
	if minWidth > width {
		width = minWidth
	}
	for i, line := range b.lines {
		trimmed := strings.TrimSpace(line)
		space := width - textutil.DisplayWidth(trimmed)
		if space < 0 {
			space = 0
		}
		switch mode {
		case AlignRight:
			b.lines[i] = strings.Repeat(" ", space) + trimmed
		case AlignCenter:
			b.lines[i] = strings.Repeat(" ", space/2) + trimmed
		default:
			b.lines[i] = trimmed
		}
	}
	return b
}

// Map replaces every line with f(line), preserving order and count.
func (b *Block) Map(f func(string) string) *Block {
	for i, line := range b.lines {
		b.lines[i] = f(line)
	}
	return b
}
