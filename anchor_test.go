package grid

import (
	"errors"
	"testing"
)

func TestAnchorOrigin(t *testing.T) {
	b := Borders{Left: 2, Top: 3, Right: 4, Bottom: 5}
	tests := []struct {
		anchor Anchor
		x, y   int
	}{
		{AnchorNW, 2, 3},
		{"", 2, 3},
		{AnchorN, 29, 3},
		{AnchorNE, 56, 3},
		{AnchorW, 2, 14},
		{AnchorCenter, 29, 14},
		{AnchorE, 56, 14},
		{AnchorSW, 2, 25},
		{AnchorS, 29, 25},
		{AnchorSE, 56, 25},
	}
	for _, tt := range tests {
		x, y := tt.anchor.origin(100, 50, b, 40, 20)
		if x != tt.x || y != tt.y {
			t.Errorf("Anchor(%q).origin = (%d, %d), want (%d, %d)", tt.anchor, x, y, tt.x, tt.y)
		}
	}
}

func TestParseAnchor(t *testing.T) {
	for _, s := range []string{"n", "ne", "e", "se", "s", "sw", "w", "nw", "center"} {
		a, err := ParseAnchor(s)
		if err != nil {
			t.Errorf("ParseAnchor(%q) error: %v", s, err)
		}
		if string(a) != s {
			t.Errorf("ParseAnchor(%q) = %q", s, a)
		}
	}

	_, err := ParseAnchor("middle")
	if !errors.Is(err, ErrUsage) || CodeOf(err) != CodeAnchor {
		t.Errorf("ParseAnchor(middle) error = %v, want anchor usage error", err)
	}
}
