package term

import (
	"strings"

	"github.com/germtb/grid"
	"github.com/mattn/go-runewidth"
)

// Kind says what a node draws.
type Kind string

const (
	// KindFrame is a container with an optional border and title.
	KindFrame Kind = "frame"
	// KindLabel shows text.
	KindLabel Kind = "label"
)

// Node is a rectangle of cells managed by the grid. It implements
// grid.Window and grid.InternalBorderer.
type Node struct {
	Name    string
	Kind    Kind
	Text    string
	Title   string
	Border  Border
	Padding int

	// Width and Height fix the requested size when positive. A node with
	// a fixed size refuses geometry requests.
	Width, Height int
	Style         Style

	screen   *Screen
	parent   *Node
	children []*Node

	requested  bool
	reqW, reqH int

	in         *Node
	x, y, w, h int
	mapped     bool
	destroyed  bool
}

var (
	_ grid.Window           = (*Node)(nil)
	_ grid.InternalBorderer = (*Node)(nil)
)

func (n *Node) String() string {
	if n.parent == nil {
		return "."
	}
	return n.Name
}

// Children returns the nodes created inside n, in creation order.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) edge() int {
	return n.Border.Width() + n.Padding
}

// textSize measures the text in cells. A label is at least one line tall.
func (n *Node) textSize() (width, height int) {
	if n.Text == "" {
		if n.Kind == KindLabel {
			return 0, 1
		}
		return 0, 0
	}
	lines := strings.Split(n.Text, "\n")
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return width, len(lines)
}

// ReqSize is the fixed size if set, the size the grid asked for when n
// is a container, or the text plus border and padding.
func (n *Node) ReqSize() (width, height int) {
	if n.requested {
		width, height = n.reqW, n.reqH
	} else {
		width, height = n.textSize()
		e := 2 * n.edge()
		width += e
		height += e
		if n.Title != "" {
			width = max(width, runewidth.StringWidth(n.Title)+2*n.Border.Width())
		}
	}
	if n.Width > 0 {
		width = n.Width
	}
	if n.Height > 0 {
		height = n.Height
	}
	return width, height
}

func (n *Node) Size() (width, height int) {
	return n.w, n.h
}

func (n *Node) Geometry() (x, y, width, height int) {
	return n.x, n.y, n.w, n.h
}

func (n *Node) Parent() grid.Window {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) IsTopLevel() bool { return n.parent == nil }
func (n *Node) IsMapped() bool   { return n.mapped }

func (n *Node) InternalBorder() grid.Borders {
	e := n.edge()
	return grid.Borders{Left: e, Top: e, Right: e, Bottom: e}
}

func (n *Node) MoveResize(in grid.Window, x, y, width, height int) {
	n.in, _ = in.(*Node)
	n.x, n.y = x, y
	if width == n.w && height == n.h {
		return
	}
	n.w, n.h = width, height
	n.screen.mgr.Resized(n)
}

func (n *Node) Map() {
	if n.mapped || n.destroyed {
		return
	}
	n.mapped = true
	n.screen.mgr.Mapped(n)
}

func (n *Node) Unmap() {
	if !n.mapped {
		return
	}
	n.mapped = false
	n.screen.mgr.Unmapped(n)
}

// GeometryRequest records the size the grid wants for n. A top-level node
// takes the size at once; any other node asks its own container for it.
func (n *Node) GeometryRequest(width, height int) bool {
	if n.Width > 0 || n.Height > 0 || n.destroyed {
		return false
	}
	n.requested = true
	n.reqW, n.reqH = width, height
	if n.parent == nil {
		n.w, n.h = width, height
		return true
	}
	n.screen.mgr.GeometryChanged(n)
	return true
}

// Rect returns the placement of n in screen coordinates.
func (n *Node) Rect() grid.Rect {
	x, y := n.x, n.y
	for in := n.in; in != nil; in = in.in {
		x += in.x
		y += in.y
	}
	return grid.Rect{X: x, Y: y, Width: n.w, Height: n.h}
}

// Inner is the part of Rect inside the border and padding.
func (n *Node) Inner() grid.Rect {
	r := n.Rect()
	e := n.edge()
	return grid.Rect{X: r.X + e, Y: r.Y + e, Width: max(r.Width-2*e, 0), Height: max(r.Height-2*e, 0)}
}

// paint draws n and its mapped children clipped to n's rectangle.
func (n *Node) paint(buf *Buffer) {
	r := n.Rect()
	restore := buf.Clip(r)
	defer restore()

	if n.Style.hasBackground() {
		buf.Fill(r, n.Style)
	}
	buf.DrawBox(r, n.Border, n.Style)
	if n.Title != "" && r.Height > 0 {
		bw := n.Border.Width()
		restoreTitle := buf.Clip(grid.Rect{X: r.X + bw, Y: r.Y, Width: r.Width - 2*bw, Height: 1})
		buf.SetString(r.X+bw, r.Y, n.Title, n.Style.Merge(Style{Bold: true}))
		restoreTitle()
	}
	if n.Text != "" {
		n.paintText(buf)
	}
	for _, child := range n.children {
		if child.mapped {
			child.paint(buf)
		}
	}
}

// paintText centers the text lines in the inner area.
func (n *Node) paintText(buf *Buffer) {
	inner := n.Inner()
	restore := buf.Clip(inner)
	defer restore()

	lines := strings.Split(n.Text, "\n")
	top := inner.Y + max((inner.Height-len(lines))/2, 0)
	for i, line := range lines {
		left := inner.X + max((inner.Width-runewidth.StringWidth(line))/2, 0)
		buf.SetString(left, top+i, line, n.Style)
	}
}
