package term

import "fmt"

// Border is the line style drawn around a node.
type Border string

const (
	BorderNone    Border = "none"
	BorderSingle  Border = "single"
	BorderDouble  Border = "double"
	BorderRounded Border = "rounded"
	BorderBold    Border = "bold"
)

// BorderChars holds the runes of one border style.
type BorderChars struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

var borderCharSets = map[Border]BorderChars{
	BorderSingle:  {'┌', '┐', '└', '┘', '─', '│'},
	BorderDouble:  {'╔', '╗', '╚', '╝', '═', '║'},
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
	BorderBold:    {'┏', '┓', '┗', '┛', '━', '┃'},
}

// ParseBorder accepts a border name, "" for none, or a bool.
func ParseBorder(v any) (Border, error) {
	switch b := v.(type) {
	case nil:
		return BorderNone, nil
	case bool:
		if b {
			return BorderSingle, nil
		}
		return BorderNone, nil
	case Border:
		return ParseBorder(string(b))
	case string:
		if b == "" || b == string(BorderNone) {
			return BorderNone, nil
		}
		if _, ok := borderCharSets[Border(b)]; ok {
			return Border(b), nil
		}
		return BorderNone, fmt.Errorf("bad border %q: must be none, single, double, rounded or bold", b)
	}
	return BorderNone, fmt.Errorf("bad border %v of type %T", v, v)
}

// Chars returns the runes of b. ok is false for BorderNone.
func (b Border) Chars() (chars BorderChars, ok bool) {
	chars, ok = borderCharSets[b]
	return chars, ok
}

// Width is the number of cells the border takes on each side.
func (b Border) Width() int {
	if _, ok := borderCharSets[b]; ok {
		return 1
	}
	return 0
}
