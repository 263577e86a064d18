package grid

import (
	"slices"
	"time"
)

// Outcome says how a layout pass ended.
type Outcome int

const (
	// OutcomeCompleted: every item was placed.
	OutcomeCompleted Outcome = iota
	// OutcomePropagated: the container asked for a new size and the pass
	// was deferred until the request is honoured.
	OutcomePropagated
	// OutcomeAborted: a newer change made the pass stale.
	OutcomeAborted
	// OutcomeSkipped: the container has no content.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomePropagated:
		return "propagated"
	case OutcomeAborted:
		return "aborted"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// PassStats describes one layout pass over a container.
type PassStats struct {
	Outcome Outcome
	Items   int
	Columns int
	Rows    int
	// Width and Height are the size the layout asked for, borders
	// included.
	Width  int
	Height int
	// Overflow is set when the container was too small for the minimum
	// sizes of its weighted slots.
	Overflow bool
	Duration time.Duration
}

// Observer is notified after every layout pass.
type Observer interface {
	LayoutPass(container Window, stats PassStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(container Window, stats PassStats)

func (f ObserverFunc) LayoutPass(container Window, stats PassStats) {
	f(container, stats)
}

// maxSyncPasses bounds Flush for a container whose geometry requests keep
// changing its size.
const maxSyncPasses = 16

// Flush runs the pending layout pass of container now instead of waiting
// for the scheduler.
func (m *Manager) Flush(container Window) {
	c := m.lookup(container)
	if c == nil {
		return
	}
	m.flush(c)
}

func (m *Manager) flush(c *gridder) {
	for i := 0; c.requested && !c.destroyed && i < maxSyncPasses; i++ {
		m.cancel(c)
		m.arrange(c)
	}
}

// resolve runs the constraint solver for one axis of c and stores the
// offsets. It returns the required size.
func (m *Manager) resolve(c *gridder, a axis) int {
	table := c.grid.table(a)
	n := table.count()
	spans := make([]Span, 0, len(c.content))
	for _, item := range c.content {
		start, span := item.extent(a)
		reqW, reqH := item.win.ReqSize()
		size := reqW + item.padX + item.iPadX
		if a == rowAxis {
			size = reqH + item.padY + item.iPadY
		}
		spans = append(spans, Span{Start: start, Count: span, Size: size + item.doubleBw})
	}
	offsets, required, settled := resolveConstraints(table.configs(n), spans, 0)
	if !settled {
		m.log.Debug("grid slack left undistributed", "container", windowName(c.win), "axis", a.String())
	}
	if len(offsets) > n {
		_ = table.reserve(len(offsets))
	}
	table.storeOffsets(offsets)
	return required
}

// adjust fits the stored offsets of one axis into size.
func (m *Manager) adjust(c *gridder, a axis, size int) (used int, overflow bool) {
	table := c.grid.table(a)
	n := table.count()
	offsets := table.offsets(n)
	used, overflow = AdjustOffsets(size, table.configs(n), offsets)
	table.storeOffsets(offsets)
	return used, overflow
}

// arrange lays out the content of c. It may be re-entered through the
// callbacks it makes on windows; the inner call bumps the generation so
// the outer one stops placing stale geometry.
func (m *Manager) arrange(c *gridder) {
	began := time.Now()
	c.requested = false
	if len(c.content) == 0 || c.grid == nil {
		m.report(c, PassStats{Outcome: OutcomeSkipped}, began)
		return
	}

	c.generation++
	gen := c.generation
	d := c.grid

	m.setGridSize(c)
	for _, item := range c.content {
		item.doubleBw = 2 * borderWidth(item.win)
	}
	width := m.resolve(c, columnAxis)
	height := m.resolve(c, rowAxis)
	b := internalBorder(c.win)
	width += b.Left + b.Right
	height += b.Top + b.Bottom
	minW, minH := minReqSize(c.win)
	width = max(width, minW)
	height = max(height, minH)

	stats := PassStats{
		Items:   len(c.content),
		Columns: d.columns.count(),
		Rows:    d.rows.count(),
		Width:   width,
		Height:  height,
	}

	reqW, reqH := c.win.ReqSize()
	if (width != reqW || height != reqH) && !c.dontPropagate {
		if c.win.GeometryRequest(width, height) {
			if width > 1 && height > 1 {
				m.schedule(c)
			}
			stats.Outcome = OutcomePropagated
			m.report(c, stats, began)
			return
		}
		m.log.Debug("grid geometry request refused",
			"container", windowName(c.win), "width", width, "height", height)
	}

	realW, realH := c.win.Size()
	realW -= b.Left + b.Right
	realH -= b.Top + b.Bottom
	usedX, overX := m.adjust(c, columnAxis, realW)
	usedY, overY := m.adjust(c, rowAxis, realH)
	if overX || overY {
		stats.Overflow = true
		m.log.Warn("grid container smaller than its minimum sizes",
			"container", windowName(c.win), "width", realW, "height", realH,
			"used_width", usedX, "used_height", usedY)
	}
	outerW, outerH := c.win.Size()
	d.startX, d.startY = d.anchor.origin(outerW, outerH, b, usedX, usedY)

	stats.Outcome = OutcomeCompleted
	for _, item := range slices.Clone(c.content) {
		if c.generation != gen || c.destroyed {
			stats.Outcome = OutcomeAborted
			break
		}
		if item.container != c {
			continue
		}
		r := m.cell(c, item)
		reqW, reqH := item.win.ReqSize()
		r = stickyPlacement{
			sticky:    item.sticky,
			padLeft:   item.padLeft,
			padTop:    item.padTop,
			padX:      item.padX,
			padY:      item.padY,
			iPadX:     item.iPadX,
			iPadY:     item.iPadY,
			reqWidth:  reqW,
			reqHeight: reqH,
		}.place(r)

		if r.Width <= 0 || r.Height <= 0 {
			item.win.Unmap()
			continue
		}
		if x, y, w, h := item.win.Geometry(); x != r.X || y != r.Y || w != r.Width || h != r.Height {
			item.win.MoveResize(c.win, r.X, r.Y, r.Width, r.Height)
		}
		if c.generation != gen || c.destroyed {
			stats.Outcome = OutcomeAborted
			break
		}
		// Content of an unmapped container is mapped when it is.
		if c.win.IsMapped() {
			item.win.Map()
		}
	}
	if stats.Outcome == OutcomeAborted {
		m.log.Debug("grid layout aborted", "container", windowName(c.win))
	}
	m.report(c, stats, began)
}

// cell returns the rectangle of the slots item covers, relative to the
// inside of the container.
func (m *Manager) cell(c *gridder, item *gridder) Rect {
	d := c.grid
	x, y := 0, 0
	if item.column > 0 {
		x = d.columns.offset(item.column - 1)
	}
	if item.row > 0 {
		y = d.rows.offset(item.row - 1)
	}
	return Rect{
		X:      x + d.startX,
		Y:      y + d.startY,
		Width:  d.columns.offset(item.column+item.numCols-1) - x,
		Height: d.rows.offset(item.row+item.numRows-1) - y,
	}
}

func (m *Manager) report(c *gridder, stats PassStats, began time.Time) {
	stats.Duration = time.Since(began)
	m.log.Debug("grid layout pass",
		"container", windowName(c.win), "outcome", stats.Outcome.String(),
		"items", stats.Items, "width", stats.Width, "height", stats.Height)
	if m.observer != nil {
		m.observer.LayoutPass(c.win, stats)
	}
}
