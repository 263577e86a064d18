package grid

// Window is the collaborator the Manager lays out. Implementations are
// usually widgets of a toolkit; the term package provides one for
// terminal cells.
//
// Windows are compared by identity, so implementations should be
// pointer types.
type Window interface {
	// ReqSize is the natural size the window asks for. It is read fresh
	// on every layout pass.
	ReqSize() (width, height int)
	// Size is the size the window actually has.
	Size() (width, height int)
	// Geometry is the last placement relative to the container the
	// window was placed in.
	Geometry() (x, y, width, height int)
	Parent() Window
	IsTopLevel() bool
	IsMapped() bool
	// MoveResize places the window at x, y relative to the inside of in.
	MoveResize(in Window, x, y, width, height int)
	Map()
	Unmap()
	// GeometryRequest asks for a new natural size. It returns false when
	// the request is refused, for example because the window has a fixed
	// size; the Manager then lays out within Size.
	GeometryRequest(width, height int) bool
}

// BorderWidther is implemented by windows with an outer border. The
// border is counted twice, once per side, in the space an item needs.
type BorderWidther interface {
	BorderWidth() int
}

// InternalBorderer is implemented by containers that reserve space along
// their inner edges.
type InternalBorderer interface {
	InternalBorder() Borders
}

// MinReqSizer is implemented by containers that never want to be
// smaller than a minimum size.
type MinReqSizer interface {
	MinReqSize() (width, height int)
}

func borderWidth(w Window) int {
	if b, ok := w.(BorderWidther); ok {
		return b.BorderWidth()
	}
	return 0
}

func internalBorder(w Window) Borders {
	if b, ok := w.(InternalBorderer); ok {
		return b.InternalBorder()
	}
	return Borders{}
}

func minReqSize(w Window) (int, int) {
	if m, ok := w.(MinReqSizer); ok {
		return m.MinReqSize()
	}
	return 0, 0
}
