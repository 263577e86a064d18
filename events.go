package grid

// The methods below are the notifications a toolkit forwards to the
// Manager. Windows the Manager has never seen are ignored.

// GeometryChanged tells the Manager that w asked for a new natural size.
// Its container is laid out again.
func (m *Manager) GeometryChanged(w Window) {
	g := m.lookup(w)
	if g == nil || g.container == nil {
		return
	}
	m.schedule(g.container)
}

// Resized tells the Manager that w got a new size or border. Its content
// is laid out again, and so is its own container if the border width
// changed.
func (m *Manager) Resized(w Window) {
	g := m.lookup(w)
	if g == nil {
		return
	}
	if len(g.content) > 0 {
		m.schedule(g)
	}
	if g.container != nil {
		if bw := 2 * borderWidth(w); bw != g.doubleBw {
			g.doubleBw = bw
			m.schedule(g.container)
		}
	}
}

// Mapped tells the Manager that w became visible. Its content is mapped
// by the next pass.
func (m *Manager) Mapped(w Window) {
	g := m.lookup(w)
	if g == nil || len(g.content) == 0 {
		return
	}
	m.schedule(g)
}

// Unmapped tells the Manager that w was hidden. Its content is hidden
// with it.
func (m *Manager) Unmapped(w Window) {
	g := m.lookup(w)
	if g == nil {
		return
	}
	for _, item := range g.content {
		item.win.Unmap()
	}
}

// Destroyed drops every record of w. Its content becomes unmanaged and
// is unmapped, and any pending pass over w is cancelled.
func (m *Manager) Destroyed(w Window) {
	g := m.lookup(w)
	if g == nil {
		return
	}
	if g.container != nil {
		m.unlink(g)
	}
	for _, item := range g.content {
		item.container = nil
		item.win.Unmap()
	}
	g.content = nil
	m.cancel(g)
	g.generation++
	g.destroyed = true
	delete(m.items, w)
	for _, other := range m.items {
		if other.in == w {
			other.in = nil
		}
	}
	m.log.Debug("grid window destroyed", "window", windowName(w))
}

// LostContent tells the Manager that another geometry manager took over
// w. It is removed from its container and unmapped.
func (m *Manager) LostContent(w Window) {
	g := m.lookup(w)
	if g == nil || g.container == nil {
		return
	}
	m.unlink(g)
	w.Unmap()
}
