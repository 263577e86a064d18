// Package term is a terminal backend for the grid geometry manager. Its
// nodes are grid windows measured in character cells; a Screen lays them
// out and paints them into a Buffer.
package term

import (
	"strconv"
	"strings"
)

// Color is one of the eight named terminal colors, or ColorNone.
type Color uint8

const (
	ColorNone    Color = iota // no color set
	ColorDefault              // terminal default
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// NameToColor maps color names used in props and layout files.
var NameToColor = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

// RGB is a 24-bit color. It takes precedence over the named color.
type RGB struct {
	R, G, B uint8
}

// ParseRGB parses "#rrggbb".
func ParseRGB(s string) (RGB, bool) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// Style holds the attributes of a cell.
type Style struct {
	Color      Color
	Background Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underline  bool
	Inverse    bool

	ColorRGB      *RGB
	BackgroundRGB *RGB
}

// Cell is one character position of the terminal. A wide rune occupies
// its cell and a continuation cell whose Char is 0.
type Cell struct {
	Char  rune
	Style Style
}

// EmptyCell is a blank unstyled cell.
var EmptyCell = Cell{Char: ' '}

func (a Style) Equal(b Style) bool {
	return a.Color == b.Color && a.Background == b.Background &&
		a.Bold == b.Bold && a.Dim == b.Dim && a.Italic == b.Italic &&
		a.Underline == b.Underline && a.Inverse == b.Inverse &&
		rgbEqual(a.ColorRGB, b.ColorRGB) && rgbEqual(a.BackgroundRGB, b.BackgroundRGB)
}

func rgbEqual(a, b *RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// IsZero reports whether the style sets nothing.
func (a Style) IsZero() bool {
	return a.Equal(Style{})
}

func (a Style) hasBackground() bool {
	return a.Background != ColorNone || a.BackgroundRGB != nil
}

// Merge returns base with every attribute overlay sets.
func (base Style) Merge(overlay Style) Style {
	result := base
	if overlay.Color != ColorNone || overlay.ColorRGB != nil {
		result.Color = overlay.Color
		result.ColorRGB = overlay.ColorRGB
	}
	if overlay.hasBackground() {
		result.Background = overlay.Background
		result.BackgroundRGB = overlay.BackgroundRGB
	}
	result.Bold = result.Bold || overlay.Bold
	result.Dim = result.Dim || overlay.Dim
	result.Italic = result.Italic || overlay.Italic
	result.Underline = result.Underline || overlay.Underline
	result.Inverse = result.Inverse || overlay.Inverse
	return result
}

// StyleFromMap reads a style from props such as
// {"color": "red", "background": "#202020", "bold": true}.
func StyleFromMap(m map[string]any) Style {
	var s Style
	if v, ok := m["color"].(string); ok {
		s.Color, s.ColorRGB = parseColor(v)
	}
	if v, ok := m["background"].(string); ok {
		s.Background, s.BackgroundRGB = parseColor(v)
	}
	s.Bold, _ = m["bold"].(bool)
	s.Dim, _ = m["dim"].(bool)
	s.Italic, _ = m["italic"].(bool)
	s.Underline, _ = m["underline"].(bool)
	s.Inverse, _ = m["inverse"].(bool)
	return s
}

func parseColor(v string) (Color, *RGB) {
	if c, ok := NameToColor[strings.ToLower(v)]; ok {
		return c, nil
	}
	if rgb, ok := ParseRGB(v); ok {
		return ColorNone, &rgb
	}
	return ColorNone, nil
}
