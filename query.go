package grid

// ItemInfo is the placement of a managed window.
type ItemInfo struct {
	In         Window
	Column     int
	Row        int
	ColumnSpan int
	RowSpan    int
	IPadX      int
	IPadY      int
	// PadX and PadY are left/right and top/bottom.
	PadX   [2]int
	PadY   [2]int
	Sticky Sticky
}

// Info returns the placement of w. ok is false when w is not managed.
func (m *Manager) Info(w Window) (info ItemInfo, ok bool) {
	g := m.lookup(w)
	if g == nil || g.container == nil {
		return ItemInfo{}, false
	}
	return ItemInfo{
		In:         g.container.win,
		Column:     g.column,
		Row:        g.row,
		ColumnSpan: g.numCols,
		RowSpan:    g.numRows,
		IPadX:      g.iPadX / 2,
		IPadY:      g.iPadY / 2,
		PadX:       [2]int{g.padLeft, g.padX - g.padLeft},
		PadY:       [2]int{g.padTop, g.padY - g.padTop},
		Sticky:     g.sticky,
	}, true
}

// BBox returns the rectangle covered by a range of cells of container,
// relative to its top left corner. cells is empty for the whole grid,
// column and row for one cell, or two corners as column, row, column2,
// row2. A pending layout pass runs first.
func (m *Manager) BBox(container Window, cells ...int) (Rect, error) {
	column, row, column2, row2 := 0, 0, 0, 0
	switch len(cells) {
	case 0:
	case 2:
		column, row = cells[0], cells[1]
		column2, row2 = column, row
	case 4:
		column, row, column2, row2 = cells[0], cells[1], cells[2], cells[3]
	default:
		return Rect{}, newError(UsageError, CodeUsage,
			"bbox: want 0, 2 or 4 cell values, got %d", len(cells))
	}

	c := m.lookup(container)
	if c == nil || c.grid == nil {
		return Rect{}, nil
	}
	m.flush(c)
	m.setGridSize(c)
	d := c.grid
	endX, endY := d.columns.count(), d.rows.count()
	if endX == 0 || endY == 0 {
		return Rect{}, nil
	}
	if len(cells) == 0 {
		column2, row2 = endX, endY
	}
	if column > column2 {
		column, column2 = column2, column
	}
	if row > row2 {
		row, row2 = row2, row
	}

	x, y := 0, 0
	if column > 0 {
		x = d.columns.offset(min(column, endX) - 1)
	}
	if row > 0 {
		y = d.rows.offset(min(row, endY) - 1)
	}
	r := Rect{X: x + d.startX, Y: y + d.startY}
	if column2 >= 0 {
		r.Width = d.columns.offset(min(column2, endX-1)) - x
	}
	if row2 >= 0 {
		r.Height = d.rows.offset(min(row2, endY-1)) - y
	}
	return r, nil
}

// Location returns the cell of container that contains the point x, y.
// A coordinate before the first slot maps to -1 and one past the last
// slot maps to the slot count. A pending layout pass runs first.
func (m *Manager) Location(container Window, x, y int) (column, row int) {
	c := m.lookup(container)
	if c == nil || c.grid == nil {
		return -1, -1
	}
	m.flush(c)
	m.setGridSize(c)
	d := c.grid
	return locate(&d.columns, x-d.startX), locate(&d.rows, y-d.startY)
}

func locate(t *slotTable, pos int) int {
	if pos < 0 {
		return -1
	}
	end := t.count()
	i := 0
	for i < end && t.offset(i) <= pos {
		i++
	}
	return i
}

// Size returns the number of columns and rows of container: the larger
// of the occupied and the configured extent.
func (m *Manager) Size(container Window) (columns, rows int) {
	c := m.lookup(container)
	if c == nil || c.grid == nil {
		return 0, 0
	}
	m.setGridSize(c)
	return c.grid.columns.count(), c.grid.rows.count()
}

// ContentOption filters Content.
type ContentOption func(*contentFilter)

type contentFilter struct {
	column, row int
	err         error
}

// InColumn keeps the items that cover column n.
func InColumn(n int) ContentOption {
	return func(f *contentFilter) {
		if n < 0 && f.err == nil {
			f.err = newError(UsageError, CodeNegIndex, "column value %d must be a non-negative integer", n)
		}
		f.column = n
	}
}

// InRow keeps the items that cover row n.
func InRow(n int) ContentOption {
	return func(f *contentFilter) {
		if n < 0 && f.err == nil {
			f.err = newError(UsageError, CodeNegIndex, "row value %d must be a non-negative integer", n)
		}
		f.row = n
	}
}

// Content returns the windows managed inside container, most recently
// added first.
func (m *Manager) Content(container Window, opts ...ContentOption) ([]Window, error) {
	f := contentFilter{column: -1, row: -1}
	for _, opt := range opts {
		opt(&f)
	}
	if f.err != nil {
		return nil, f.err
	}
	c := m.lookup(container)
	if c == nil {
		return nil, nil
	}
	var out []Window
	for _, item := range c.content {
		if f.column >= 0 && (item.column > f.column || item.column+item.numCols-1 < f.column) {
			continue
		}
		if f.row >= 0 && (item.row > f.row || item.row+item.numRows-1 < f.row) {
			continue
		}
		out = append(out, item.win)
	}
	return out, nil
}

// SetAnchor sets where the layout sits inside container when the
// container is larger than the layout and no slot has weight.
func (m *Manager) SetAnchor(container Window, a Anchor) error {
	if container == nil {
		return newError(UsageError, CodeBadParameter, "anchor: container is nil")
	}
	a, err := ParseAnchor(string(a))
	if err != nil {
		return err
	}
	c := m.getGrid(container)
	d := c.initContainer()
	if d.anchor != a {
		d.anchor = a
		m.invalidate(c)
	}
	return nil
}

// Anchor returns the anchor of container.
func (m *Manager) Anchor(container Window) Anchor {
	c := m.lookup(container)
	if c == nil || c.grid == nil {
		return DefaultAnchor
	}
	return c.grid.anchor
}

// SetPropagate controls whether container asks to be resized to fit its
// content. It is on by default.
func (m *Manager) SetPropagate(container Window, propagate bool) error {
	if container == nil {
		return newError(UsageError, CodeBadParameter, "propagate: container is nil")
	}
	c := m.getGrid(container)
	if c.dontPropagate == !propagate {
		return nil
	}
	c.dontPropagate = !propagate
	m.invalidate(c)
	return nil
}

// Propagate reports whether container propagates its layout size.
func (m *Manager) Propagate(container Window) bool {
	c := m.lookup(container)
	return c == nil || !c.dontPropagate
}
