package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether ANSI styles should be written to f: it
// must be a terminal and NO_COLOR must be unset.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
