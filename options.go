package grid

// Option sets one placement option of an item.
type Option func(*itemOptions)

type itemOptions struct {
	column, row         int // -1 when not given
	columnSpan, rowSpan int // 0 when not given
	in                  Window
	inSet               bool
	padX, padY          *padAmount
	iPadX, iPadY        int // -1 when not given
	sticky              Sticky
	stickySet           bool
	err                 error
}

type padAmount struct {
	first int
	total int
}

func collectOptions(opts []Option) (*itemOptions, error) {
	o := &itemOptions{column: -1, row: -1, iPadX: -1, iPadY: -1}
	for _, opt := range opts {
		opt(o)
		if o.err != nil {
			return nil, o.err
		}
	}
	return o, nil
}

func (o *itemOptions) fail(format string, args ...any) {
	if o.err == nil {
		o.err = newError(UsageError, CodeBadParameter, format, args...)
	}
}

// Column places the item in column n.
func Column(n int) Option {
	return func(o *itemOptions) {
		if n < 0 {
			o.fail("bad column value %d: must be a non-negative integer", n)
			return
		}
		o.column = n
	}
}

// Row places the item in row n.
func Row(n int) Option {
	return func(o *itemOptions) {
		if n < 0 {
			o.fail("bad row value %d: must be a non-negative integer", n)
			return
		}
		o.row = n
	}
}

// ColumnSpan makes the item cover n columns.
func ColumnSpan(n int) Option {
	return func(o *itemOptions) {
		if n <= 0 {
			o.fail("bad columnspan value %d: must be a positive integer", n)
			return
		}
		o.columnSpan = n
	}
}

// RowSpan makes the item cover n rows.
func RowSpan(n int) Option {
	return func(o *itemOptions) {
		if n <= 0 {
			o.fail("bad rowspan value %d: must be a positive integer", n)
			return
		}
		o.rowSpan = n
	}
}

// In manages the item inside container instead of its parent. The
// container must be the parent of the item or one of its descendants.
func In(container Window) Option {
	return func(o *itemOptions) {
		if container == nil {
			o.fail("bad in value: container is nil")
			return
		}
		o.in = container
		o.inSet = true
	}
}

// PadX sets the outer horizontal padding: one value for both sides or
// left and right.
func PadX(values ...int) Option {
	return func(o *itemOptions) {
		o.padX = parsePad(o, "padx", values)
	}
}

// PadY sets the outer vertical padding: one value for both sides or top
// and bottom.
func PadY(values ...int) Option {
	return func(o *itemOptions) {
		o.padY = parsePad(o, "pady", values)
	}
}

func parsePad(o *itemOptions, name string, values []int) *padAmount {
	var p padAmount
	switch len(values) {
	case 1:
		p = padAmount{first: values[0], total: 2 * values[0]}
	case 2:
		p = padAmount{first: values[0], total: values[0] + values[1]}
	default:
		o.fail("bad %s value %v: must be one or two distances", name, values)
		return nil
	}
	for _, v := range values {
		if v < 0 {
			o.fail("bad %s value %v: must be non-negative", name, values)
			return nil
		}
	}
	return &p
}

// IPadX adds n units of inner padding on the left and on the right.
func IPadX(n int) Option {
	return func(o *itemOptions) {
		if n < 0 {
			o.fail("bad ipadx value %d: must be positive screen distance", n)
			return
		}
		o.iPadX = 2 * n
	}
}

// IPadY adds n units of inner padding on the top and on the bottom.
func IPadY(n int) Option {
	return func(o *itemOptions) {
		if n < 0 {
			o.fail("bad ipady value %d: must be positive screen distance", n)
			return
		}
		o.iPadY = 2 * n
	}
}

// StickTo sets the cell edges the item sticks to.
func StickTo(s Sticky) Option {
	return func(o *itemOptions) {
		o.sticky = s & StickAll
		o.stickySet = true
	}
}

// StickyString is StickTo with the flags given as text, e.g. "nsew".
func StickyString(s string) Option {
	return func(o *itemOptions) {
		sticky, err := ParseSticky(s)
		if err != nil {
			if o.err == nil {
				o.err = err
			}
			return
		}
		o.sticky = sticky
		o.stickySet = true
	}
}

// apply copies the given options into g.
func (o *itemOptions) apply(g *gridder) error {
	if o.column >= 0 || o.columnSpan > 0 {
		if err := setColumn(g, o.column, o.columnSpan); err != nil {
			return err
		}
	}
	if o.row >= 0 || o.rowSpan > 0 {
		if err := setRow(g, o.row, o.rowSpan); err != nil {
			return err
		}
	}
	if o.stickySet {
		g.sticky = o.sticky
	}
	if o.iPadX >= 0 {
		g.iPadX = o.iPadX
	}
	if o.iPadY >= 0 {
		g.iPadY = o.iPadY
	}
	if o.padX != nil {
		g.padLeft, g.padX = o.padX.first, o.padX.total
	}
	if o.padY != nil {
		g.padTop, g.padY = o.padY.first, o.padY.total
	}
	return nil
}

// setColumn updates column and span, -1 and 0 meaning unchanged.
func setColumn(g *gridder, column, numCols int) error {
	if column < 0 {
		column = g.column
	}
	if numCols < 1 {
		numCols = g.numCols
	}
	if max(column, 0)+numCols >= MaxSlot {
		return newError(RangeError, CodeBadColumn, "column out of bounds: %d+%d", max(column, 0), numCols)
	}
	g.column, g.numCols = column, numCols
	return nil
}

// setRow updates row and span, -1 and 0 meaning unchanged.
func setRow(g *gridder, row, numRows int) error {
	if row < 0 {
		row = g.row
	}
	if numRows < 1 {
		numRows = g.numRows
	}
	if max(row, 0)+numRows >= MaxSlot {
		return newError(RangeError, CodeBadRow, "row out of bounds: %d+%d", max(row, 0), numRows)
	}
	g.row, g.numRows = row, numRows
	return nil
}
