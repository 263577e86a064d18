package grid

import (
	"log/slog"
	"testing"
)

// fakeWindow records what the Manager does to it.
type fakeWindow struct {
	name     string
	parent   *fakeWindow
	topLevel bool

	reqW, reqH int
	x, y, w, h int
	in         Window
	mapped     bool

	bw     int
	border Borders
	minW   int
	minH   int

	// fixed windows refuse geometry requests.
	fixed    bool
	requests int
	moves    int
	onMove   func(f *fakeWindow)
}

func newTop(name string) *fakeWindow {
	return &fakeWindow{name: name, topLevel: true, mapped: true}
}

func newFixedTop(name string, w, h int) *fakeWindow {
	return &fakeWindow{name: name, topLevel: true, mapped: true, fixed: true, w: w, h: h}
}

func newChild(name string, parent *fakeWindow, reqW, reqH int) *fakeWindow {
	return &fakeWindow{name: name, parent: parent, reqW: reqW, reqH: reqH}
}

func (f *fakeWindow) String() string                 { return f.name }
func (f *fakeWindow) ReqSize() (int, int)            { return f.reqW, f.reqH }
func (f *fakeWindow) Size() (int, int)               { return f.w, f.h }
func (f *fakeWindow) Geometry() (int, int, int, int) { return f.x, f.y, f.w, f.h }
func (f *fakeWindow) IsTopLevel() bool               { return f.topLevel }
func (f *fakeWindow) IsMapped() bool                 { return f.mapped }
func (f *fakeWindow) Map()                           { f.mapped = true }
func (f *fakeWindow) Unmap()                         { f.mapped = false }
func (f *fakeWindow) BorderWidth() int               { return f.bw }
func (f *fakeWindow) InternalBorder() Borders        { return f.border }
func (f *fakeWindow) MinReqSize() (int, int)         { return f.minW, f.minH }

func (f *fakeWindow) Parent() Window {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

func (f *fakeWindow) MoveResize(in Window, x, y, w, h int) {
	f.in = in
	f.x, f.y, f.w, f.h = x, y, w, h
	f.moves++
	if f.onMove != nil {
		f.onMove(f)
	}
}

func (f *fakeWindow) GeometryRequest(w, h int) bool {
	f.requests++
	if f.fixed {
		return false
	}
	f.reqW, f.reqH = w, h
	f.w, f.h = w, h
	return true
}

func (f *fakeWindow) rect() Rect {
	return Rect{X: f.x, Y: f.y, Width: f.w, Height: f.h}
}

// passLog is an Observer that keeps every pass.
type passLog struct {
	stats []PassStats
}

func (p *passLog) LayoutPass(_ Window, s PassStats) {
	p.stats = append(p.stats, s)
}

func (p *passLog) outcomes() []Outcome {
	out := make([]Outcome, len(p.stats))
	for i, s := range p.stats {
		out[i] = s.Outcome
	}
	return out
}

func newTestManager(opts ...ManagerOption) *Manager {
	opts = append([]ManagerOption{WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	return NewManager(opts...)
}

func mustConfigure(t *testing.T, m *Manager, w Window, opts ...Option) {
	t.Helper()
	if err := m.Configure(w, opts...); err != nil {
		t.Fatalf("Configure(%v) error: %v", w, err)
	}
}
