package layoutfile

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/germtb/grid"
	"github.com/germtb/grid/term"
)

// PathError reports a problem with one node of the tree.
type PathError struct {
	// Path locates the node, e.g. "root.children[2]".
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func isShortcut(t string) bool {
	_, err := grid.ParseShortcut(t)
	return err == nil
}

// Validate checks every node. The first problem is returned as a
// *PathError.
func (d *Document) Validate() error {
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("negative screen size %dx%d", d.Width, d.Height)
	}
	if d.Root.Type != TypeFrame {
		return &PathError{Path: "root", Err: fmt.Errorf("must be a %s, got %q", TypeFrame, d.Root.Type)}
	}
	return d.Root.validate("root", "")
}

func (n *Node) validate(path, parentType string) error {
	fail := func(format string, args ...any) error {
		return &PathError{Path: path, Err: fmt.Errorf(format, args...)}
	}
	switch {
	case n.Type == TypeFrame, n.Type == TypeLabel:
	case n.Type == TypeRow:
		if parentType != TypeFrame {
			return fail("a row must be the child of a frame")
		}
	case isShortcut(n.Type):
		if parentType != TypeRow {
			return fail("shortcut %q outside a row", n.Type)
		}
		return nil
	default:
		return fail("unknown node type %q", n.Type)
	}

	for name, v := range map[string]int{
		"padding":    n.Padding,
		"width":      n.Width,
		"height":     n.Height,
		"rowspan":    n.RowSpan,
		"columnspan": n.ColumnSpan,
		"ipadx":      n.IPadX,
		"ipady":      n.IPadY,
	} {
		if v < 0 {
			return fail("%s must be non-negative, got %d", name, v)
		}
	}
	if n.Row != nil && *n.Row < 0 {
		return fail("row must be non-negative, got %d", *n.Row)
	}
	if n.Column != nil && *n.Column < 0 {
		return fail("column must be non-negative, got %d", *n.Column)
	}
	if n.Sticky != "" {
		if _, err := grid.ParseSticky(n.Sticky); err != nil {
			return &PathError{Path: path, Err: err}
		}
	}
	if n.Anchor != "" {
		if _, err := grid.ParseAnchor(n.Anchor); err != nil {
			return &PathError{Path: path, Err: err}
		}
	}
	if _, err := term.ParseBorder(n.Border); err != nil {
		return &PathError{Path: path, Err: err}
	}
	for _, pad := range []struct {
		name string
		v    any
	}{{"padx", n.PadX}, {"pady", n.PadY}} {
		if pad.v == nil {
			continue
		}
		values, err := padValues(pad.v)
		if err != nil {
			return fail("%s: %v", pad.name, err)
		}
		if len(values) < 1 || len(values) > 2 {
			return fail("%s takes one or two amounts, got %d", pad.name, len(values))
		}
	}
	for key, specs := range map[string][]term.SlotSpec{"columns": n.Columns, "rows": n.Rows} {
		if len(specs) > 0 && n.Type != TypeFrame {
			return fail("%s only apply to frames", key)
		}
		for i, s := range specs {
			if s.Index < 0 || s.MinSize < 0 || s.Weight < 0 || s.Pad < 0 {
				return fail("%s[%d]: values must be non-negative", key, i)
			}
		}
	}
	if n.Type == TypeLabel && len(n.Children) > 0 {
		return fail("a label has no children")
	}
	if n.Type == TypeRow && len(n.Children) == 0 {
		return fail("empty row")
	}
	for i := range n.Children {
		if err := n.Children[i].validate(path+".children["+strconv.Itoa(i)+"]", n.Type); err != nil {
			return err
		}
	}
	return nil
}

var errNotInteger = errors.New("expected an integer")

// padValues reads the ints yaml.v3 and go-toml decode into an any field,
// or an []int set by hand.
func padValues(v any) ([]int, error) {
	switch x := v.(type) {
	case []any:
		out := make([]int, 0, len(x))
		for _, e := range x {
			n, err := padValues(e)
			if err != nil {
				return nil, err
			}
			if len(n) != 1 {
				return nil, errNotInteger
			}
			out = append(out, n[0])
		}
		return out, nil
	case []int:
		out := make([]int, 0, len(x))
		for _, n := range x {
			if n < 0 {
				return nil, fmt.Errorf("must be non-negative, got %d", n)
			}
			out = append(out, n)
		}
		return out, nil
	case int:
		return nonNegative(x)
	case int64:
		return nonNegative(int(x))
	case uint64:
		return nonNegative(int(x))
	case float64:
		if x != math.Trunc(x) {
			return nil, errNotInteger
		}
		return nonNegative(int(x))
	}
	return nil, errNotInteger
}

func nonNegative(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("must be non-negative, got %d", n)
	}
	return []int{n}, nil
}
