package term

import (
	"fmt"
	"slices"

	"github.com/germtb/grid"
)

// maxRenderRounds bounds how often Render drains the layout queue while
// geometry requests keep scheduling new passes.
const maxRenderRounds = 8

// Screen owns a grid Manager and the root frame every node lives under.
type Screen struct {
	mgr    *grid.Manager
	root   *Node
	byName map[string]*Node
	serial int
}

// NewScreen creates a screen of the given size. The root frame has a
// fixed size, so the layout never grows past the screen.
func NewScreen(width, height int, opts ...grid.ManagerOption) *Screen {
	s := &Screen{
		mgr:    grid.NewManager(opts...),
		byName: make(map[string]*Node),
	}
	s.root = &Node{
		Name:   ".",
		Kind:   KindFrame,
		Width:  width,
		Height: height,
		screen: s,
		w:      width,
		h:      height,
		mapped: true,
	}
	s.byName["."] = s.root
	return s
}

func (s *Screen) Manager() *grid.Manager { return s.mgr }
func (s *Screen) Root() *Node            { return s.root }

// Lookup finds a node by name.
func (s *Screen) Lookup(name string) (*Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

// NewNode creates a node inside parent. An empty name is replaced by a
// generated one.
func (s *Screen) NewNode(parent *Node, kind Kind, name string) (*Node, error) {
	if parent == nil {
		parent = s.root
	}
	if parent.screen != s || parent.destroyed {
		return nil, fmt.Errorf("parent %s does not belong to this screen", parent)
	}
	if name == "" {
		s.serial++
		name = fmt.Sprintf("%s%d", kind, s.serial)
	}
	if _, taken := s.byName[name]; taken {
		return nil, fmt.Errorf("node name %q already in use", name)
	}
	n := &Node{Name: name, Kind: kind, screen: s, parent: parent}
	parent.children = append(parent.children, n)
	s.byName[name] = n
	return n, nil
}

// Destroy removes n and everything inside it. The root cannot be
// destroyed.
func (s *Screen) Destroy(n *Node) {
	if n == nil || n.parent == nil || n.destroyed {
		return
	}
	for _, child := range slices.Clone(n.children) {
		s.Destroy(child)
	}
	n.Unmap()
	n.destroyed = true
	s.mgr.Destroyed(n)
	n.parent.children = slices.DeleteFunc(n.parent.children, func(c *Node) bool { return c == n })
	delete(s.byName, n.Name)
}

// Resize changes the screen size and lays the root out again.
func (s *Screen) Resize(width, height int) {
	r := s.root
	r.Width, r.Height = width, height
	r.w, r.h = width, height
	s.mgr.Resized(r)
}

// Changed tells the layout that n's text, border or fixed size changed.
func (s *Screen) Changed(n *Node) {
	s.mgr.GeometryChanged(n)
	s.mgr.Resized(n)
}

// Layout runs pending layout passes until none is left.
func (s *Screen) Layout() {
	for range maxRenderRounds {
		if s.mgr.Update() == 0 {
			return
		}
	}
}

// Render lays the screen out and paints every mapped node.
func (s *Screen) Render() *Buffer {
	s.Layout()
	buf := NewBuffer(s.root.w, s.root.h)
	s.root.paint(buf)
	return buf
}
