package grid

import (
	"fmt"
	"slices"
)

// Shortcut is a placeholder in a row passed to ConfigureRow.
type Shortcut byte

const (
	// ShortcutSkip leaves a column empty.
	ShortcutSkip Shortcut = 'x'
	// ShortcutExtend widens the window before it by one column.
	ShortcutExtend Shortcut = '-'
	// ShortcutAbove grows the item in the row above down into this row.
	ShortcutAbove Shortcut = '^'
)

// Entry is a window or a shortcut in a row.
type Entry struct {
	Window   Window
	Shortcut Shortcut
}

// W wraps a window as a row entry.
func W(w Window) Entry {
	return Entry{Window: w}
}

// Row entries for the shortcuts.
var (
	Skip   = Entry{Shortcut: ShortcutSkip}
	Extend = Entry{Shortcut: ShortcutExtend}
	Above  = Entry{Shortcut: ShortcutAbove}
)

// ParseShortcut maps "x", "-" and "^" to their entries.
func ParseShortcut(s string) (Entry, error) {
	switch s {
	case "x":
		return Skip, nil
	case "-":
		return Extend, nil
	case "^":
		return Above, nil
	}
	return Entry{}, newError(UsageError, CodeShortcutUsage,
		"invalid window shortcut %q: should be '-', 'x', or '^'", s)
}

func (e Entry) String() string {
	if e.Window != nil {
		return windowName(e.Window)
	}
	return string(e.Shortcut)
}

// Configure manages w with the given options. A window that is already
// managed keeps its placement except for the options given; a new one is
// placed in the first column of the row after the last occupied row.
func (m *Manager) Configure(w Window, opts ...Option) error {
	if w == nil {
		return newError(UsageError, CodeBadParameter, "configure: window is nil")
	}
	return m.ConfigureRow([]Entry{W(w)}, opts...)
}

// ConfigureRow manages a row of windows in consecutive columns. Skip
// leaves a column empty, Extend widens the previous window and Above
// extends the item of the row above into this row. The options apply to
// every window of the row.
//
// Either every change is applied or none is.
func (m *Manager) ConfigureRow(entries []Entry, opts ...Option) error {
	if len(entries) == 0 {
		return newError(UsageError, CodeUsage, "configure: no windows given")
	}
	if err := checkShortcuts(entries); err != nil {
		return err
	}
	o, err := collectOptions(opts)
	if err != nil {
		return err
	}

	t := newTxn(m)
	if err := t.configureRow(entries, o); err != nil {
		t.rollback()
		m.log.Debug("grid configure rejected", "error", err)
		return err
	}
	t.commit()
	return nil
}

func checkShortcuts(entries []Entry) error {
	windows := 0
	var prev Shortcut
	for _, e := range entries {
		if e.Window != nil {
			windows++
			prev = 0
			continue
		}
		switch e.Shortcut {
		case ShortcutExtend:
			if windows == 0 || prev == ShortcutSkip || prev == ShortcutAbove {
				return newError(UsageError, CodeShortcutUsage, "must specify window before shortcut '-'")
			}
		case ShortcutSkip, ShortcutAbove:
		default:
			return newError(UsageError, CodeShortcutUsage,
				"invalid window shortcut %q: should be '-', 'x', or '^'", string(e.Shortcut))
		}
		prev = e.Shortcut
	}
	return nil
}

// txn records the state of every record a configure call touches so a
// failed call can restore it.
type txn struct {
	m       *Manager
	saved   map[*gridder]gridder
	created []*gridder
	dirty   []*gridder
}

func newTxn(m *Manager) *txn {
	return &txn{m: m, saved: make(map[*gridder]gridder)}
}

func (t *txn) touch(g *gridder) {
	if _, ok := t.saved[g]; ok {
		return
	}
	s := *g
	s.content = slices.Clone(g.content)
	t.saved[g] = s
}

func (t *txn) grid(w Window) *gridder {
	if g := t.m.lookup(w); g != nil {
		t.touch(g)
		return g
	}
	g := t.m.getGrid(w)
	t.created = append(t.created, g)
	return g
}

func (t *txn) container(w Window) *gridder {
	c := t.grid(w)
	c.initContainer()
	return c
}

func (t *txn) markDirty(c *gridder) {
	if !slices.Contains(t.dirty, c) {
		t.dirty = append(t.dirty, c)
	}
}

func (t *txn) link(g, c *gridder) {
	t.touch(g)
	t.touch(c)
	g.container = c
	c.content = slices.Insert(c.content, 0, g)
	t.markDirty(c)
}

func (t *txn) unlink(g *gridder) {
	c := g.container
	t.touch(g)
	t.touch(c)
	c.removeContent(g)
	g.container = nil
	t.markDirty(c)
}

func (t *txn) rollback() {
	for g, s := range t.saved {
		*g = s
	}
	for _, g := range t.created {
		delete(t.m.items, g.win)
	}
	for g := range t.saved {
		if g.grid != nil {
			t.m.setGridSize(g)
		}
	}
}

func (t *txn) commit() {
	for _, c := range t.dirty {
		t.m.setGridSize(c)
		t.m.invalidate(c)
	}
}

func (t *txn) configureRow(entries []Entry, o *itemOptions) error {
	m := t.m

	// The container defaults to the one remembered by Remove for the
	// first window, then to that window's parent.
	var container *gridder
	for _, e := range entries {
		if e.Window == nil {
			continue
		}
		if g := m.lookup(e.Window); g != nil && g.in != nil {
			container = t.container(g.in)
		} else if p := e.Window.Parent(); p != nil {
			container = t.container(p)
		}
		if container != nil {
			break
		}
	}
	if o.inSet {
		container = t.container(o.in)
	}

	defaultRow := o.row
	if defaultRow < 0 {
		if container != nil {
			m.setGridSize(container)
			defaultRow = container.grid.rows.end
		} else {
			defaultRow = 0
		}
	}

	positionGiven := false
	defaultColumn := 0
	for j := 0; j < len(entries); j++ {
		e := entries[j]
		if e.Window == nil {
			if e.Shortcut == ShortcutSkip || e.Shortcut == ShortcutAbove {
				defaultColumn++
			}
			continue
		}

		span := 1
		for j+span < len(entries) && entries[j+span].Window == nil &&
			entries[j+span].Shortcut == ShortcutExtend {
			span++
		}

		w := e.Window
		if w.IsTopLevel() {
			return newError(TopologyError, CodeTopLevel, "can't manage %s: it's a top-level window", windowName(w))
		}
		g := t.grid(w)
		if err := o.apply(g); err != nil {
			return err
		}
		if o.inSet {
			if o.in == w {
				return newError(TopologyError, CodeSelf, "window %s can't be managed in itself", windowName(w))
			}
			positionGiven = true
			container = t.container(o.in)
		}

		if !positionGiven && g.container != nil {
			container = g.container
			t.markDirty(container)
			continue
		}
		if positionGiven && container == g.container {
			t.markDirty(container)
			continue
		}

		parent := w.Parent()
		if container == nil {
			if parent == nil {
				return newError(UsageError, CodeShortcutUsage, "can't determine container window for %s", windowName(w))
			}
			container = t.container(parent)
		}

		if g.container != nil && g.container != container {
			t.unlink(g)
		}
		if g.container == nil {
			t.link(g, container)
		}

		if err := checkHierarchy(w, parent, container.win); err != nil {
			return err
		}
		for c := container; c != nil; c = c.container {
			if c == g {
				return newError(TopologyError, CodeLoop, "can't put %s inside %s: would cause management loop",
					windowName(w), windowName(container.win))
			}
		}

		if g.column == -1 {
			if err := setColumn(g, defaultColumn, -1); err != nil {
				return err
			}
		}
		if err := setColumn(g, -1, g.numCols+span-1); err != nil {
			return err
		}
		if g.row == -1 {
			if err := setRow(g, defaultRow, -1); err != nil {
				return err
			}
		}
		defaultColumn += g.numCols
	}

	if err := t.extendAbove(entries, container, defaultRow); err != nil {
		return err
	}
	if container == nil {
		return newError(UsageError, CodeShortcutUsage, "can't determine container window")
	}
	t.markDirty(container)
	return nil
}

// checkHierarchy requires the container to be the parent of w or one of
// the parent's descendants, without crossing a top-level window.
func checkHierarchy(w, parent, container Window) error {
	for anc := container; ; anc = anc.Parent() {
		if anc == nil || (anc != parent && anc.IsTopLevel()) {
			return newError(TopologyError, CodeHierarchy, "can't put %s inside %s", windowName(w), windowName(container))
		}
		if anc == parent {
			return nil
		}
	}
}

// extendAbove handles the Above shortcuts once every window of the row is
// placed.
func (t *txn) extendAbove(entries []Entry, container *gridder, defaultRow int) error {
	var last *gridder
	numSkip := 0
	for j := 0; j < len(entries); j++ {
		e := entries[j]
		if e.Window != nil {
			last = t.m.lookup(e.Window)
			numSkip = 0
			continue
		}
		if e.Shortcut == ShortcutSkip {
			numSkip++
		}
		if e.Shortcut != ShortcutAbove {
			continue
		}
		if container == nil {
			return newError(UsageError, CodeShortcutUsage, "can't use '^', can't find container window")
		}

		width := 1
		for j+width < len(entries) && entries[j+width].Window == nil &&
			entries[j+width].Shortcut == ShortcutAbove {
			width++
		}

		lastRow, lastColumn := defaultRow-1, 0
		if last != nil {
			lastRow = last.row + last.numRows - 2
			lastColumn = last.column + last.numCols
		}
		lastColumn += numSkip

		var match *gridder
		for _, c := range container.content {
			if c.column == lastColumn && c.row+c.numRows-1 == lastRow && c.numCols <= width {
				match = c
				break
			}
		}
		if match == nil {
			return newError(UsageError, CodeShortcutUsage, "can't find content to extend with \"^\" at column %d", lastColumn)
		}
		t.touch(match)
		if err := setRow(match, -1, match.numRows+1); err != nil {
			return err
		}
		j += match.numCols - 1
		last = match
		numSkip = 0
	}
	return nil
}

// Forget stops managing the windows and resets their options.
func (m *Manager) Forget(windows ...Window) {
	m.forget(windows, true)
}

// Remove stops managing the windows but keeps their options and
// container, so a later Configure without options puts them back.
func (m *Manager) Remove(windows ...Window) {
	m.forget(windows, false)
}

func (m *Manager) forget(windows []Window, reset bool) {
	for _, w := range windows {
		g := m.lookup(w)
		if g == nil || g.container == nil {
			continue
		}
		if reset {
			g.column, g.row = -1, -1
			g.numCols, g.numRows = 1, 1
			g.padX, g.padY = 0, 0
			g.padLeft, g.padTop = 0, 0
			g.iPadX, g.iPadY = 0, 0
			g.sticky = StickNone
			g.in = nil
			g.doubleBw = 2 * borderWidth(w)
			m.cancel(g)
		} else {
			g.in = g.container.win
		}
		m.unlink(g)
		w.Unmap()
	}
}

// Managed reports whether w is content of some container.
func (m *Manager) Managed(w Window) bool {
	g := m.lookup(w)
	return g != nil && g.container != nil
}

func (m *Manager) String() string {
	return fmt.Sprintf("grid.Manager(%d windows)", len(m.items))
}
