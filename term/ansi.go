package term

import (
	"strconv"
	"strings"
)

const (
	csiStr    = "\x1b["
	resetStr  = "\x1b[0m"
	boldStr   = "\x1b[1m"
	dimStr    = "\x1b[2m"
	italicStr = "\x1b[3m"
	underStr  = "\x1b[4m"
	invStr    = "\x1b[7m"
)

var fgCodes = [...]string{
	ColorNone:    "",
	ColorDefault: "\x1b[39m",
	ColorBlack:   "\x1b[30m",
	ColorRed:     "\x1b[31m",
	ColorGreen:   "\x1b[32m",
	ColorYellow:  "\x1b[33m",
	ColorBlue:    "\x1b[34m",
	ColorMagenta: "\x1b[35m",
	ColorCyan:    "\x1b[36m",
	ColorWhite:   "\x1b[37m",
}

var bgCodes = [...]string{
	ColorNone:    "",
	ColorDefault: "\x1b[49m",
	ColorBlack:   "\x1b[40m",
	ColorRed:     "\x1b[41m",
	ColorGreen:   "\x1b[42m",
	ColorYellow:  "\x1b[43m",
	ColorBlue:    "\x1b[44m",
	ColorMagenta: "\x1b[45m",
	ColorCyan:    "\x1b[46m",
	ColorWhite:   "\x1b[47m",
}

func colorCode(color Color, rgb *RGB, fg bool) string {
	if rgb != nil {
		kind := "48;2;"
		if fg {
			kind = "38;2;"
		}
		return csiStr + kind + strconv.Itoa(int(rgb.R)) + ";" + strconv.Itoa(int(rgb.G)) + ";" + strconv.Itoa(int(rgb.B)) + "m"
	}
	if int(color) >= len(fgCodes) {
		return ""
	}
	if fg {
		return fgCodes[color]
	}
	return bgCodes[color]
}

func writeStyle(sb *strings.Builder, style Style) {
	if style.Bold {
		sb.WriteString(boldStr)
	}
	if style.Dim {
		sb.WriteString(dimStr)
	}
	if style.Italic {
		sb.WriteString(italicStr)
	}
	if style.Underline {
		sb.WriteString(underStr)
	}
	if style.Inverse {
		sb.WriteString(invStr)
	}
	sb.WriteString(colorCode(style.Color, style.ColorRGB, true))
	sb.WriteString(colorCode(style.Background, style.BackgroundRGB, false))
}

// writeAnsiRow writes one row, switching styles only where they change.
// Trailing blank unstyled cells are dropped.
func writeAnsiRow(sb *strings.Builder, cells []Cell) {
	end := len(cells)
	for end > 0 && cells[end-1].Char == ' ' && cells[end-1].Style.IsZero() {
		end--
	}
	current := Style{}
	for _, c := range cells[:end] {
		if !c.Style.Equal(current) {
			sb.WriteString(resetStr)
			writeStyle(sb, c.Style)
			current = c.Style
		}
		if c.Char != 0 {
			sb.WriteRune(c.Char)
		}
	}
	if !current.IsZero() {
		sb.WriteString(resetStr)
	}
}
