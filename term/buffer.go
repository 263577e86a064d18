package term

import (
	"strings"

	"github.com/germtb/grid"
	"github.com/mattn/go-runewidth"
)

// Buffer is a fixed-size grid of cells. Writes outside the buffer or
// outside the current clip rectangle are dropped.
type Buffer struct {
	width, height int
	cells         []Cell
	clip          grid.Rect
}

// NewBuffer creates a buffer of blank cells.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Clear()
	return b
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) inClip(x, y int) bool {
	c := b.clip
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

// Clip restricts writes to r until the returned function is called.
func (b *Buffer) Clip(r grid.Rect) (restore func()) {
	prev := b.clip
	b.clip = intersect(prev, r)
	return func() { b.clip = prev }
}

func intersect(a, b grid.Rect) grid.Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	return grid.Rect{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

// Get returns the cell at (x, y), or EmptyCell outside the buffer.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell
	}
	return b.cells[y*b.width+x]
}

// Set stores c at (x, y).
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) || !b.inClip(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetMerge stores char at (x, y), merging style into the cell's style.
func (b *Buffer) SetMerge(x, y int, char rune, style Style) {
	b.Set(x, y, Cell{Char: char, Style: b.Get(x, y).Style.Merge(style)})
}

// SetString writes s from (x, y) to the right and returns the number of
// columns it advanced. Wide runes take two columns; one that would be
// cut by the clip edge is replaced by a space.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		switch w {
		case 0:
			continue
		case 2:
			if !b.inClip(col+1, y) || !b.inBounds(col+1, y) {
				b.SetMerge(col, y, ' ', style)
				col += 2
				continue
			}
			b.SetMerge(col, y, r, style)
			b.SetMerge(col+1, y, 0, style)
		default:
			b.SetMerge(col, y, r, style)
		}
		col += w
	}
	return col - x
}

// Fill paints every cell of r with a blank of the given style.
func (b *Buffer) Fill(r grid.Rect, style Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.Set(x, y, Cell{Char: ' ', Style: style})
		}
	}
}

// DrawBox draws the outline of r. Boxes smaller than 2x2 are not drawn.
func (b *Buffer) DrawBox(r grid.Rect, border Border, style Style) {
	chars, ok := border.Chars()
	if !ok || r.Width < 2 || r.Height < 2 {
		return
	}
	x1, y1 := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < x1; x++ {
		b.SetMerge(x, r.Y, chars.Horizontal, style)
		b.SetMerge(x, y1, chars.Horizontal, style)
	}
	for y := r.Y + 1; y < y1; y++ {
		b.SetMerge(r.X, y, chars.Vertical, style)
		b.SetMerge(x1, y, chars.Vertical, style)
	}
	b.SetMerge(r.X, r.Y, chars.TopLeft, style)
	b.SetMerge(x1, r.Y, chars.TopRight, style)
	b.SetMerge(r.X, y1, chars.BottomLeft, style)
	b.SetMerge(x1, y1, chars.BottomRight, style)
}

// Clear blanks the buffer and removes the clip.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
	b.clip = grid.Rect{Width: b.width, Height: b.height}
}

// LastRow returns the index of the last row holding anything but blank
// unstyled cells, or -1.
func (b *Buffer) LastRow() int {
	for y := b.height - 1; y >= 0; y-- {
		for x := 0; x < b.width; x++ {
			c := b.Get(x, y)
			if c.Char != ' ' || !c.Style.IsZero() {
				return y
			}
		}
	}
	return -1
}

// String returns the characters of the buffer, one line per row, with
// trailing spaces removed.
func (b *Buffer) String() string {
	return b.lines(b.height-1, false)
}

// ANSI returns the buffer with styles as ANSI escape sequences.
func (b *Buffer) ANSI() string {
	return b.lines(b.height-1, true)
}

func (b *Buffer) lines(last int, styled bool) string {
	var sb strings.Builder
	for y := 0; y <= last; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		if styled {
			writeAnsiRow(&sb, b.cells[y*b.width:(y+1)*b.width])
			continue
		}
		var row strings.Builder
		for x := 0; x < b.width; x++ {
			if c := b.Get(x, y); c.Char != 0 {
				row.WriteRune(c.Char)
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
	}
	return sb.String()
}
