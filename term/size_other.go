//go:build !unix

package term

import "errors"

// TerminalSize is not supported on this platform; callers fall back to a
// default size.
func TerminalSize(fd int) (width, height int, err error) {
	return 0, 0, errors.ErrUnsupported
}
