package term

import (
	"io"
	"os"
	"strings"

	"github.com/germtb/gox"
	"github.com/germtb/grid"
)

// PrintOptions configures Fprint.
type PrintOptions struct {
	Width  int // 0 = terminal width, or 80
	Height int // 0 = terminal height, or 24

	// Color writes ANSI styles. Plain text otherwise.
	Color bool

	// Manager options for the screen, such as a logger or an observer.
	Manager []grid.ManagerOption
}

// Size resolves the screen size: the given one, then the terminal size,
// then 80x24.
func (o PrintOptions) Size() (width, height int) {
	width, height = o.Width, o.Height
	if width == 0 || height == 0 {
		if tw, th, err := TerminalSize(int(os.Stdout.Fd())); err == nil {
			if width == 0 {
				width = tw
			}
			if height == 0 {
				height = th
			}
		}
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return width, height
}

// Print lays node out at the terminal size and writes it to stdout,
// with color when stdout is a terminal.
func Print(node gox.VNode) error {
	return Fprint(os.Stdout, node, PrintOptions{Color: ColorEnabled(os.Stdout)})
}

// Sprint lays node out and returns it as plain text.
func Sprint(node gox.VNode, opts PrintOptions) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, node, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Fprint mounts node on a fresh screen, lays it out and writes the rows
// up to the last non-blank one.
func Fprint(w io.Writer, node gox.VNode, opts PrintOptions) error {
	width, height := opts.Size()
	s := NewScreen(width, height, opts.Manager...)
	if _, err := Mount(s, node); err != nil {
		return err
	}
	return WriteBuffer(w, s.Render(), opts.Color)
}

// WriteBuffer writes buf up to its last non-blank row, followed by a
// newline. Nothing is written for a blank buffer.
func WriteBuffer(w io.Writer, buf *Buffer, color bool) error {
	last := buf.LastRow()
	if last < 0 {
		return nil
	}
	out := buf.lines(last, color)
	_, err := io.WriteString(w, out+"\n")
	return err
}
