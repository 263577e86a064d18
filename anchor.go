package grid

// Anchor positions the laid out block inside a container that is larger
// than the block when no weight absorbs the extra space.
type Anchor string

const (
	AnchorN      Anchor = "n"
	AnchorNE     Anchor = "ne"
	AnchorE      Anchor = "e"
	AnchorSE     Anchor = "se"
	AnchorS      Anchor = "s"
	AnchorSW     Anchor = "sw"
	AnchorW      Anchor = "w"
	AnchorNW     Anchor = "nw"
	AnchorCenter Anchor = "center"

	DefaultAnchor = AnchorNW
)

// ParseAnchor validates an anchor name.
func ParseAnchor(s string) (Anchor, error) {
	switch a := Anchor(s); a {
	case AnchorN, AnchorNE, AnchorE, AnchorSE, AnchorS, AnchorSW, AnchorW, AnchorNW, AnchorCenter:
		return a, nil
	}
	return "", newError(UsageError, CodeAnchor,
		"bad anchor %q: must be n, ne, e, se, s, sw, w, nw, or center", s)
}

// Borders is the inner border of a container on each side.
type Borders struct {
	Left, Top, Right, Bottom int
}

// origin returns where a block of innerWidth x innerHeight starts inside
// a container of width x height.
func (a Anchor) origin(width, height int, b Borders, innerWidth, innerHeight int) (x, y int) {
	if a == "" {
		a = DefaultAnchor
	}
	switch a {
	case AnchorNW, AnchorW, AnchorSW:
		x = b.Left
	case AnchorN, AnchorCenter, AnchorS:
		x = (width-innerWidth-b.Left-b.Right)/2 + b.Left
	default:
		x = width - b.Right - innerWidth
	}
	switch a {
	case AnchorNW, AnchorN, AnchorNE:
		y = b.Top
	case AnchorW, AnchorCenter, AnchorE:
		y = (height-innerHeight-b.Top-b.Bottom)/2 + b.Top
	default:
		y = height - b.Bottom - innerHeight
	}
	return x, y
}
