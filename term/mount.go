package term

import (
	"fmt"
	"strings"

	"github.com/germtb/gox"
	"github.com/germtb/grid"
)

// Element types Mount understands.
const (
	ElementFrame = "frame"
	ElementLabel = "label"
	ElementRow   = "row"
)

// IsTextNode reports whether v is a gox text node.
func IsTextNode(v gox.VNode) bool {
	s, ok := v.Type.(string)
	return ok && s == gox.TextNodeType
}

// TextContent returns the text of a text node.
func TextContent(v gox.VNode) (string, bool) {
	if !IsTextNode(v) {
		return "", false
	}
	if content, ok := v.Props["content"].(string); ok {
		return content, true
	}
	if text, ok := v.Props["text"].(string); ok {
		return text, true
	}
	return "", false
}

// Expand replaces functional components by what they render.
func Expand(v gox.VNode) gox.VNode {
	if _, ok := v.Type.(string); ok {
		if len(v.Children) == 0 {
			return v
		}
		children := make([]gox.VNode, len(v.Children))
		for i, child := range v.Children {
			children[i] = Expand(child)
		}
		return gox.VNode{Type: v.Type, Props: v.Props, Children: children}
	}
	if comp, ok := v.Type.(gox.Component); ok {
		props := gox.Props{}
		for k, val := range v.Props {
			props[k] = val
		}
		props["children"] = v.Children
		return Expand(comp(props))
	}
	return v
}

// flatten inlines fragments.
func flatten(children []gox.VNode) []gox.VNode {
	var out []gox.VNode
	for _, child := range children {
		if s, ok := child.Type.(string); ok && (s == gox.FragmentNodeType || s == "fragment") {
			out = append(out, flatten(child.Children)...)
			continue
		}
		out = append(out, child)
	}
	return out
}

func collectText(v gox.VNode) string {
	if text, ok := TextContent(v); ok {
		return text
	}
	var sb strings.Builder
	for _, child := range flatten(v.Children) {
		sb.WriteString(collectText(child))
	}
	return sb.String()
}

// Mount builds the nodes of an element tree on s. The top element must
// be a frame; its props configure the root of the screen.
//
// Children of a frame are gridded one per row unless they carry row or
// column props. Children wrapped in a row element are gridded side by
// side, and text inside the row ("x", "-", "^") is read as shortcuts:
//
//	<frame columns={...}>
//	  <row><label>a</label>-<label>b</label></row>
//	  <row>^ x <label>c</label></row>
//	</frame>
func Mount(s *Screen, v gox.VNode) (*Node, error) {
	v = Expand(v)
	if t, _ := v.Type.(string); t != ElementFrame {
		return nil, fmt.Errorf("mount: top element must be a %s, got %v", ElementFrame, v.Type)
	}
	root := s.Root()
	if err := applyNodeProps(root, v); err != nil {
		return nil, fmt.Errorf("mount %s: %w", root, err)
	}
	if err := mountFrame(s, root, v); err != nil {
		return nil, fmt.Errorf("mount: %w", err)
	}
	return root, nil
}

func mountNode(s *Screen, parent *Node, v gox.VNode) (*Node, error) {
	t, _ := v.Type.(string)
	var kind Kind
	switch t {
	case ElementFrame:
		kind = KindFrame
	case ElementLabel:
		kind = KindLabel
	default:
		return nil, fmt.Errorf("%s: unknown element %v", parent, v.Type)
	}
	name, _, err := stringProp(v.Props, "name")
	if err != nil {
		return nil, err
	}
	n, err := s.NewNode(parent, kind, name)
	if err != nil {
		return nil, err
	}
	if err := applyNodeProps(n, v); err != nil {
		return nil, fmt.Errorf("%s: %w", n, err)
	}
	if kind == KindFrame {
		if err := mountFrame(s, n, v); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func applyNodeProps(n *Node, v gox.VNode) error {
	var err error
	if n.Border, err = ParseBorder(v.Props["border"]); err != nil {
		return err
	}
	if n.Style, err = styleProp(v.Props); err != nil {
		return err
	}
	if n.Padding, _, err = intProp(v.Props, "padding"); err != nil {
		return err
	}
	if n.Padding < 0 {
		return fmt.Errorf("prop \"padding\": must be non-negative, got %d", n.Padding)
	}
	if n.parent != nil {
		if n.Width, _, err = intProp(v.Props, "width"); err != nil {
			return err
		}
		if n.Height, _, err = intProp(v.Props, "height"); err != nil {
			return err
		}
	}
	if n.Title, _, err = stringProp(v.Props, "title"); err != nil {
		return err
	}
	if n.Kind == KindLabel {
		text, ok, err := stringProp(v.Props, "text")
		if err != nil {
			return err
		}
		if !ok {
			text = collectText(v)
		}
		n.Text = text
	}
	return nil
}

// mountFrame configures the slots of frame and grids its children.
func mountFrame(s *Screen, frame *Node, v gox.VNode) error {
	m := s.Manager()
	for _, axis := range []struct {
		key       string
		configure func(grid.Window, []grid.SlotRef, ...grid.SlotOption) error
	}{
		{"columns", m.ColumnConfigure},
		{"rows", m.RowConfigure},
	} {
		specs, err := slotSpecs(v.Props, axis.key)
		if err != nil {
			return fmt.Errorf("%s: %w", frame, err)
		}
		for _, spec := range specs {
			if err := axis.configure(frame, grid.Slots(spec.Index), spec.options()...); err != nil {
				return fmt.Errorf("%s: %s %d: %w", frame, axis.key, spec.Index, err)
			}
		}
	}
	if anchor, ok, err := stringProp(v.Props, "anchor"); err != nil {
		return fmt.Errorf("%s: %w", frame, err)
	} else if ok {
		if err := m.SetAnchor(frame, grid.Anchor(anchor)); err != nil {
			return fmt.Errorf("%s: %w", frame, err)
		}
	}
	if propagate, ok := v.Props["propagate"].(bool); ok {
		if err := m.SetPropagate(frame, propagate); err != nil {
			return fmt.Errorf("%s: %w", frame, err)
		}
	}

	for _, child := range flatten(v.Children) {
		if text, ok := TextContent(child); ok {
			if strings.TrimSpace(text) != "" {
				return fmt.Errorf("%s: text %q outside a row or label", frame, text)
			}
			continue
		}
		if t, _ := child.Type.(string); t == ElementRow {
			if err := mountRow(s, frame, child); err != nil {
				return err
			}
			continue
		}
		n, err := mountNode(s, frame, child)
		if err != nil {
			return err
		}
		opts, err := gridOptions(child.Props)
		if err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
		if err := m.Configure(n, opts...); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
	}
	return nil
}

// mountRow grids the children of a row element side by side. Props on
// the row apply to all of them; props on a child apply to that child.
func mountRow(s *Screen, frame *Node, v gox.VNode) error {
	var entries []grid.Entry
	type placed struct {
		node *Node
		opts []grid.Option
	}
	var own []placed
	for _, child := range flatten(v.Children) {
		if text, ok := TextContent(child); ok {
			for _, field := range strings.Fields(text) {
				e, err := grid.ParseShortcut(field)
				if err != nil {
					return fmt.Errorf("%s: row: %w", frame, err)
				}
				entries = append(entries, e)
			}
			continue
		}
		n, err := mountNode(s, frame, child)
		if err != nil {
			return err
		}
		opts, err := gridOptions(child.Props)
		if err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
		if len(opts) > 0 {
			own = append(own, placed{n, opts})
		}
		entries = append(entries, grid.W(n))
	}
	rowOpts, err := gridOptions(v.Props)
	if err != nil {
		return fmt.Errorf("%s: row: %w", frame, err)
	}
	if err := s.Manager().ConfigureRow(entries, rowOpts...); err != nil {
		return fmt.Errorf("%s: row: %w", frame, err)
	}
	for _, p := range own {
		if err := s.Manager().Configure(p.node, p.opts...); err != nil {
			return fmt.Errorf("%s: %w", p.node, err)
		}
	}
	return nil
}
