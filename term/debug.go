package term

import (
	"fmt"
	"io"
	"strings"
)

// SprintTree returns the node tree of s as text.
func SprintTree(s *Screen) string {
	var sb strings.Builder
	FprintTree(&sb, s)
	return sb.String()
}

// FprintTree writes one line per node: its kind, placement in screen
// coordinates and, for gridded nodes, its cell.
func FprintTree(w io.Writer, s *Screen) {
	fprintNode(w, s, s.Root(), 0)
}

func fprintNode(w io.Writer, s *Screen, n *Node, depth int) {
	r := n.Rect()
	line := fmt.Sprintf("%s%s %s x=%d y=%d w=%d h=%d",
		strings.Repeat("  ", depth), n.Kind, n, r.X, r.Y, r.Width, r.Height)
	if info, ok := s.Manager().Info(n); ok {
		line += fmt.Sprintf(" grid(row=%d col=%d span=%dx%d sticky=%q)",
			info.Row, info.Column, info.ColumnSpan, info.RowSpan, info.Sticky.String())
	}
	if !n.mapped {
		line += " unmapped"
	}
	fmt.Fprintln(w, line)
	for _, child := range n.children {
		fprintNode(w, s, child, depth+1)
	}
}
