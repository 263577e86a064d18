package grid

import "strings"

// Sticky is the set of cell edges an item sticks to.
type Sticky uint8

const (
	StickNorth Sticky = 1 << iota
	StickEast
	StickSouth
	StickWest

	StickNone Sticky = 0
	StickAll         = StickNorth | StickEast | StickSouth | StickWest
)

// ParseSticky parses a string made of n, e, s and w in any case and any
// order. Spaces, commas, tabs and newlines are ignored.
func ParseSticky(s string) (Sticky, error) {
	var sticky Sticky
	for _, c := range s {
		switch c {
		case 'n', 'N':
			sticky |= StickNorth
		case 'e', 'E':
			sticky |= StickEast
		case 's', 'S':
			sticky |= StickSouth
		case 'w', 'W':
			sticky |= StickWest
		case ' ', ',', '\t', '\r', '\n':
		default:
			return 0, newError(UsageError, CodeSticky,
				"bad stickyness value %q: must be a string containing n, e, s, and/or w", s)
		}
	}
	return sticky, nil
}

// String returns the flags in n, e, s, w order, "" for none.
func (s Sticky) String() string {
	var sb strings.Builder
	if s&StickNorth != 0 {
		sb.WriteByte('n')
	}
	if s&StickEast != 0 {
		sb.WriteByte('e')
	}
	if s&StickSouth != 0 {
		sb.WriteByte('s')
	}
	if s&StickWest != 0 {
		sb.WriteByte('w')
	}
	return sb.String()
}

// Rect is an integer rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// stickyPlacement carries the per-item data sticky placement needs.
type stickyPlacement struct {
	sticky              Sticky
	padLeft, padTop     int
	padX, padY          int
	iPadX, iPadY        int
	reqWidth, reqHeight int
}

// place fits the item into cell. The outer padding is removed first, then
// each dimension shrinks to the requested size plus inner padding unless
// the item sticks to both opposing edges. Leftover space is split evenly
// or given to the side the item does not stick to.
func (p stickyPlacement) place(cell Rect) Rect {
	r := cell
	r.X += p.padLeft
	r.Width -= p.padX
	r.Y += p.padTop
	r.Height -= p.padY

	diffX, diffY := 0, 0
	if want := p.reqWidth + p.iPadX; r.Width > want {
		diffX = r.Width - want
		r.Width = want
	}
	if want := p.reqHeight + p.iPadY; r.Height > want {
		diffY = r.Height - want
		r.Height = want
	}

	if p.sticky&StickEast != 0 && p.sticky&StickWest != 0 {
		r.Width += diffX
	}
	if p.sticky&StickNorth != 0 && p.sticky&StickSouth != 0 {
		r.Height += diffY
	}
	if p.sticky&StickWest == 0 {
		if p.sticky&StickEast != 0 {
			r.X += diffX
		} else {
			r.X += diffX / 2
		}
	}
	if p.sticky&StickNorth == 0 {
		if p.sticky&StickSouth != 0 {
			r.Y += diffY
		} else {
			r.Y += diffY / 2
		}
	}
	return r
}
