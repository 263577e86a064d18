package layoutfile

import (
	"github.com/germtb/gox"
	"github.com/germtb/grid/term"
)

// VNode validates the document and converts it into the element tree
// term.Mount reads.
func (d *Document) VNode() (gox.VNode, error) {
	if err := d.Validate(); err != nil {
		return gox.VNode{}, err
	}
	return d.Root.vnode(), nil
}

// vnode assumes n passed Validate.
func (n *Node) vnode() gox.VNode {
	if isShortcut(n.Type) {
		return gox.VNode{Type: gox.TextNodeType, Props: gox.Props{"text": n.Type, "content": n.Type}}
	}
	props := gox.Props{}
	set := func(key string, v any, present bool) {
		if present {
			props[key] = v
		}
	}
	set("name", n.Name, n.Name != "")
	set("text", n.Text, n.Text != "")
	set("title", n.Title, n.Title != "")
	set("border", n.Border, n.Border != "")
	set("padding", n.Padding, n.Padding > 0)
	set("width", n.Width, n.Width > 0)
	set("height", n.Height, n.Height > 0)
	set("style", n.Style, len(n.Style) > 0)
	set("anchor", n.Anchor, n.Anchor != "")
	if n.Propagate != nil {
		props["propagate"] = *n.Propagate
	}
	set("columns", n.Columns, len(n.Columns) > 0)
	set("rows", n.Rows, len(n.Rows) > 0)
	if n.Row != nil {
		props["row"] = *n.Row
	}
	if n.Column != nil {
		props["column"] = *n.Column
	}
	set("rowspan", n.RowSpan, n.RowSpan > 0)
	set("columnspan", n.ColumnSpan, n.ColumnSpan > 0)
	set("sticky", n.Sticky, n.Sticky != "")
	if n.PadX != nil {
		props["padx"], _ = padValues(n.PadX)
	}
	if n.PadY != nil {
		props["pady"], _ = padValues(n.PadY)
	}
	set("ipadx", n.IPadX, n.IPadX > 0)
	set("ipady", n.IPadY, n.IPadY > 0)

	children := make([]gox.VNode, len(n.Children))
	for i := range n.Children {
		children[i] = n.Children[i].vnode()
	}
	return gox.VNode{Type: n.Type, Props: props, Children: children}
}

// PrintOptions fills a zero Width or Height of opts from the document.
func (d *Document) PrintOptions(opts term.PrintOptions) term.PrintOptions {
	if opts.Width == 0 {
		opts.Width = d.Width
	}
	if opts.Height == 0 {
		opts.Height = d.Height
	}
	return opts
}
