package grid

import (
	"errors"
	"fmt"
)

// Kind classifies a grid error.
type Kind int

const (
	// RangeError reports a slot index or item extent beyond MaxSlot.
	RangeError Kind = iota + 1
	// UsageError reports a malformed configuration value.
	UsageError
	// TopologyError reports a placement that would break the window
	// hierarchy or create a management loop.
	TopologyError
	// NotManagedError reports a window that is not content of the
	// container it was used with.
	NotManagedError
)

func (k Kind) String() string {
	switch k {
	case RangeError:
		return "range"
	case UsageError:
		return "usage"
	case TopologyError:
		return "topology"
	case NotManagedError:
		return "not managed"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind. Use errors.Is to classify an error
// returned by the Manager.
var (
	ErrRange      = &Error{Kind: RangeError}
	ErrUsage      = &Error{Kind: UsageError}
	ErrTopology   = &Error{Kind: TopologyError}
	ErrNotManaged = &Error{Kind: NotManagedError}
)

// Error codes. They are stable and meant for programmatic matching.
const (
	CodeIndexRange    = "INDEX_RANGE"
	CodeBadColumn     = "BAD_COLUMN"
	CodeBadRow        = "BAD_ROW"
	CodeNegIndex      = "NEG_INDEX"
	CodeSticky        = "STICKY"
	CodeAnchor        = "ANCHOR"
	CodeSelf          = "SELF"
	CodeTopLevel      = "TOPLEVEL"
	CodeHierarchy     = "HIERARCHY"
	CodeLoop          = "LOOP"
	CodeNotManaged    = "NOT_MANAGED"
	CodeShortcutUsage = "SHORTCUT_USAGE"
	CodeNoIndex       = "NO_INDEX"
	CodeUsage         = "USAGE"
	CodeBadParameter  = "BAD_PARAMETER"
)

// Error is the error type returned by every fallible grid operation.
type Error struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "grid: " + e.Kind.String() + " error"
	}
	return "grid: " + e.Msg
}

// Is matches any *Error of the same Kind, so the sentinels above work
// with errors.Is regardless of code and message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

func newError(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of a grid error, or "" if err is not one.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
