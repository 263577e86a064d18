package term

import (
	"strings"
	"testing"

	"github.com/germtb/grid"
)

func TestBufferSetString(t *testing.T) {
	buf := NewBuffer(6, 1)
	if n := buf.SetString(1, 0, "abc", Style{}); n != 3 {
		t.Errorf("SetString advanced %d, want 3", n)
	}
	if got := buf.String(); got != " abc" {
		t.Errorf("String() = %q, want %q", got, " abc")
	}
}

func TestBufferWideRunes(t *testing.T) {
	buf := NewBuffer(3, 1)
	buf.SetString(0, 0, "日本", Style{})

	if c := buf.Get(0, 0); c.Char != '日' {
		t.Errorf("Get(0, 0) = %q, want '日'", c.Char)
	}
	if c := buf.Get(1, 0); c.Char != 0 {
		t.Errorf("Get(1, 0) = %q, want continuation cell", c.Char)
	}
	if c := buf.Get(2, 0); c.Char != ' ' {
		t.Errorf("Get(2, 0) = %q, want a space for the cut rune", c.Char)
	}
	if got := buf.String(); got != "日" {
		t.Errorf("String() = %q, want %q", got, "日")
	}
}

func TestBufferClip(t *testing.T) {
	buf := NewBuffer(5, 2)
	restore := buf.Clip(grid.Rect{X: 1, Y: 0, Width: 2, Height: 1})
	buf.SetString(0, 0, "abcd", Style{})
	buf.SetString(0, 1, "abcd", Style{})
	restore()
	buf.SetString(4, 1, "z", Style{})

	if got, want := buf.String(), " bc\n    z"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBufferDrawBox(t *testing.T) {
	tests := []struct {
		border Border
		rect   grid.Rect
		want   string
	}{
		{BorderSingle, grid.Rect{Width: 4, Height: 3}, "┌──┐\n│  │\n└──┘"},
		{BorderRounded, grid.Rect{Width: 2, Height: 2}, "╭╮\n╰╯\n\n"},
		{BorderDouble, grid.Rect{X: 1, Y: 1, Width: 3, Height: 2}, "\n ╔═╗\n ╚═╝\n"},
		{BorderNone, grid.Rect{Width: 4, Height: 3}, "\n\n\n"},
		{BorderBold, grid.Rect{Width: 1, Height: 3}, "\n\n\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.border), func(t *testing.T) {
			buf := NewBuffer(4, 4)
			buf.DrawBox(tt.rect, tt.border, Style{})
			got := strings.TrimRight(buf.String(), "\n")
			want := strings.TrimRight(tt.want, "\n")
			if got != want {
				t.Errorf("DrawBox(%v) =\n%s\nwant\n%s", tt.rect, got, want)
			}
		})
	}
}

func TestBufferANSI(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.SetString(0, 0, "A", Style{Bold: true})
	buf.SetString(1, 0, "b", Style{})
	buf.SetString(0, 1, "c", Style{Color: ColorRed})

	want := resetStr + boldStr + "A" + resetStr + "b\n" +
		resetStr + "\x1b[31m" + "c" + resetStr
	if got := buf.ANSI(); got != want {
		t.Errorf("ANSI() = %q, want %q", got, want)
	}
}

func TestBufferLastRow(t *testing.T) {
	buf := NewBuffer(3, 4)
	if got := buf.LastRow(); got != -1 {
		t.Errorf("LastRow() on a blank buffer = %d, want -1", got)
	}
	buf.Set(2, 1, Cell{Char: ' ', Style: Style{Background: ColorBlue}})
	if got := buf.LastRow(); got != 1 {
		t.Errorf("LastRow() = %d, want 1", got)
	}
}

func TestStyleMerge(t *testing.T) {
	base := Style{Color: ColorRed, Background: ColorBlue}
	got := base.Merge(Style{Color: ColorGreen, Bold: true})
	want := Style{Color: ColorGreen, Background: ColorBlue, Bold: true}
	if !got.Equal(want) {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestStyleFromMap(t *testing.T) {
	s := StyleFromMap(map[string]any{"color": "Cyan", "background": "#102030", "underline": true})
	if s.Color != ColorCyan {
		t.Errorf("Color = %d, want %d", s.Color, ColorCyan)
	}
	if s.BackgroundRGB == nil || *s.BackgroundRGB != (RGB{0x10, 0x20, 0x30}) {
		t.Errorf("BackgroundRGB = %v, want #102030", s.BackgroundRGB)
	}
	if !s.Underline || s.Bold {
		t.Errorf("flags = %+v, want only underline", s)
	}
	if got := colorCode(ColorNone, s.BackgroundRGB, false); got != "\x1b[48;2;16;32;48m" {
		t.Errorf("colorCode = %q", got)
	}
}

func TestParseBorder(t *testing.T) {
	tests := []struct {
		in      any
		want    Border
		wantErr bool
	}{
		{nil, BorderNone, false},
		{"", BorderNone, false},
		{true, BorderSingle, false},
		{false, BorderNone, false},
		{"double", BorderDouble, false},
		{BorderBold, BorderBold, false},
		{"dotted", BorderNone, true},
		{3, BorderNone, true},
	}
	for _, tt := range tests {
		got, err := ParseBorder(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBorder(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseBorder(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
