// Package grid is a grid geometry manager. It arranges windows in rows
// and columns inside a container, honouring per-item span, padding and
// sticky alignment and per-slot minimum size, weight, padding and
// uniform groups.
//
// A Manager owns the layout state of every window it has seen. Layout
// passes are deferred through a Scheduler and coalesced per container;
// call Update (or Batch) from the owning event loop to run them.
package grid

import (
	"fmt"
	"log/slog"
	"slices"
)

type axis int

const (
	columnAxis axis = iota
	rowAxis
)

func (a axis) String() string {
	if a == columnAxis {
		return "column"
	}
	return "row"
}

// containerData is the slot state of a window used as a container.
type containerData struct {
	columns slotTable
	rows    slotTable
	startX  int
	startY  int
	anchor  Anchor
}

func (d *containerData) table(a axis) *slotTable {
	if a == columnAxis {
		return &d.columns
	}
	return &d.rows
}

// gridder is the per-window record. A window can be content of one
// container and a container of others at the same time.
type gridder struct {
	win       Window
	container *gridder
	content   []*gridder
	grid      *containerData

	// in remembers the container after Remove.
	in Window

	column, row      int
	numCols, numRows int
	padX, padY       int
	padLeft, padTop  int
	iPadX, iPadY     int
	sticky           Sticky
	doubleBw         int

	requested     bool
	dontPropagate bool
	destroyed     bool

	// generation changes whenever a running pass over this container
	// must stop.
	generation uint64
}

func newGridder(w Window) *gridder {
	return &gridder{
		win:      w,
		column:   -1,
		row:      -1,
		numCols:  1,
		numRows:  1,
		doubleBw: 2 * borderWidth(w),
	}
}

func (g *gridder) extent(a axis) (start, span int) {
	if a == columnAxis {
		return g.column, g.numCols
	}
	return g.row, g.numRows
}

func (g *gridder) initContainer() *containerData {
	if g.grid == nil {
		g.grid = &containerData{
			columns: newSlotTable(),
			rows:    newSlotTable(),
			anchor:  DefaultAnchor,
		}
	}
	return g.grid
}

func (g *gridder) removeContent(c *gridder) {
	if i := slices.Index(g.content, c); i >= 0 {
		g.content = slices.Delete(g.content, i, i+1)
	}
}

// Manager is the grid geometry manager for one display or session. It is
// not safe for concurrent use.
type Manager struct {
	items      map[Window]*gridder
	sched      Scheduler
	queue      *IdleQueue
	log        *slog.Logger
	observer   Observer
	batchDepth int
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithScheduler replaces the built-in IdleQueue. Update then has nothing
// to drain; the scheduler's owner runs the deferred passes.
func WithScheduler(s Scheduler) ManagerOption {
	return func(m *Manager) {
		m.sched = s
		m.queue = nil
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = l
	}
}

// WithObserver receives statistics for every layout pass.
func WithObserver(o Observer) ManagerOption {
	return func(m *Manager) {
		m.observer = o
	}
}

// NewManager creates a Manager.
func NewManager(opts ...ManagerOption) *Manager {
	q := NewIdleQueue()
	m := &Manager{
		items: make(map[Window]*gridder),
		sched: q,
		queue: q,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Update runs every pending layout pass of the built-in scheduler and
// returns how many ran.
func (m *Manager) Update() int {
	if m.queue == nil {
		return 0
	}
	return m.queue.Run()
}

// Batch runs fn and then drains pending layout passes once, after the
// outermost Batch returns.
//
// Example:
//
//	m.Batch(func() {
//	    m.Configure(a, grid.Row(0), grid.Column(0))
//	    m.Configure(b, grid.Row(0), grid.Column(1))
//	    // one pass lays out both
//	})
func (m *Manager) Batch(fn func()) {
	m.batchDepth++
	defer func() {
		m.batchDepth--
		if m.batchDepth == 0 {
			m.Update()
		}
	}()
	fn()
}

// Pending reports whether container has a layout pass scheduled.
func (m *Manager) Pending(container Window) bool {
	g := m.lookup(container)
	return g != nil && g.requested
}

func (m *Manager) lookup(w Window) *gridder {
	if w == nil {
		return nil
	}
	return m.items[w]
}

// getGrid returns the record for w, creating it on first use.
func (m *Manager) getGrid(w Window) *gridder {
	if g, ok := m.items[w]; ok {
		return g
	}
	g := newGridder(w)
	m.items[w] = g
	return g
}

// schedule queues a pass for c unless one is pending.
func (m *Manager) schedule(c *gridder) {
	if c.requested || c.destroyed {
		return
	}
	c.requested = true
	m.sched.DoWhenIdle(c, func() {
		if !c.requested || c.destroyed {
			return
		}
		m.arrange(c)
	})
	m.log.Debug("grid layout scheduled", "container", windowName(c.win))
}

// invalidate stops any pass running over c and schedules a new one.
func (m *Manager) invalidate(c *gridder) {
	c.generation++
	m.schedule(c)
}

func (m *Manager) cancel(c *gridder) {
	if c.requested {
		c.requested = false
		m.sched.CancelIdle(c)
	}
}

// setGridSize recomputes the occupied extent of a container.
func (m *Manager) setGridSize(c *gridder) {
	d := c.initContainer()
	maxX, maxY := 0, 0
	for _, item := range c.content {
		maxX = max(maxX, item.column+item.numCols)
		maxY = max(maxY, item.row+item.numRows)
	}
	d.columns.end = maxX
	d.rows.end = maxY
	// Extents are validated against MaxSlot when items are placed.
	_ = d.columns.reserve(maxX)
	_ = d.rows.reserve(maxY)
}

// unlink removes g from its container and schedules the container.
func (m *Manager) unlink(g *gridder) {
	c := g.container
	if c == nil {
		return
	}
	c.removeContent(g)
	g.container = nil
	m.invalidate(c)
	m.setGridSize(c)
}

func windowName(w Window) string {
	if w == nil {
		return "<nil>"
	}
	if s, ok := w.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T@%p", w, w)
}
