package grid

import "strconv"

// SlotRef selects the rows or columns a slot configuration applies to.
type SlotRef struct {
	index int
	win   Window
	all   bool
}

// Index selects slot i.
func Index(i int) SlotRef {
	return SlotRef{index: i}
}

// Slots selects each of the given slots.
func Slots(indices ...int) []SlotRef {
	refs := make([]SlotRef, len(indices))
	for i, idx := range indices {
		refs[i] = Index(idx)
	}
	return refs
}

// Of selects every slot w covers. w must be content of the container.
func Of(w Window) SlotRef {
	return SlotRef{win: w}
}

// AllContent selects every slot covered by any content of the container.
var AllContent = SlotRef{all: true}

func (r SlotRef) String() string {
	switch {
	case r.all:
		return "all"
	case r.win != nil:
		return windowName(r.win)
	default:
		return strconv.Itoa(r.index)
	}
}

// SlotOption sets one constraint of a row or column.
type SlotOption func(*slotOptions)

type slotOptions struct {
	minSize, weight, pad *int
	uniform              *string
	err                  error
}

func negative(name string, v int) error {
	return newError(UsageError, CodeNegIndex, "invalid %s %d: should be non-negative", name, v)
}

// MinSize sets the minimum size of the slot.
func MinSize(n int) SlotOption {
	return func(o *slotOptions) {
		if n < 0 && o.err == nil {
			o.err = negative("minsize", n)
		}
		o.minSize = &n
	}
}

// Weight sets the share of extra space the slot receives or gives up.
func Weight(n int) SlotOption {
	return func(o *slotOptions) {
		if n < 0 && o.err == nil {
			o.err = negative("weight", n)
		}
		o.weight = &n
	}
}

// Pad sets extra space added to the largest item of the slot.
func Pad(n int) SlotOption {
	return func(o *slotOptions) {
		if n < 0 && o.err == nil {
			o.err = negative("pad", n)
		}
		o.pad = &n
	}
}

// Uniform puts the slot in a uniform group; "" removes it from its group.
func Uniform(group string) SlotOption {
	return func(o *slotOptions) {
		o.uniform = &group
	}
}

func (o *slotOptions) apply(cfg SlotConfig) SlotConfig {
	if o.minSize != nil {
		cfg.MinSize = *o.minSize
	}
	if o.weight != nil {
		cfg.Weight = *o.weight
	}
	if o.pad != nil {
		cfg.Pad = *o.pad
	}
	if o.uniform != nil {
		cfg.Uniform = *o.uniform
	}
	return cfg
}

// ColumnConfigure sets constraints on columns of container.
func (m *Manager) ColumnConfigure(container Window, targets []SlotRef, opts ...SlotOption) error {
	return m.slotConfigure(container, columnAxis, targets, opts)
}

// RowConfigure sets constraints on rows of container.
func (m *Manager) RowConfigure(container Window, targets []SlotRef, opts ...SlotOption) error {
	return m.slotConfigure(container, rowAxis, targets, opts)
}

func (m *Manager) slotConfigure(container Window, a axis, targets []SlotRef, opts []SlotOption) error {
	if container == nil {
		return newError(UsageError, CodeBadParameter, "%sconfigure: container is nil", a)
	}
	if len(targets) == 0 {
		return newError(UsageError, CodeNoIndex, "no %s indices specified", a)
	}
	o := &slotOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return o.err
	}

	// Resolve and validate every target before writing anything.
	c := m.lookup(container)
	var slots []int
	for _, ref := range targets {
		switch {
		case ref.all:
			if c == nil {
				continue
			}
			for _, item := range c.content {
				start, span := item.extent(a)
				for s := start; s < start+span; s++ {
					slots = append(slots, s)
				}
			}
		case ref.win != nil:
			item := m.lookup(ref.win)
			if item == nil || c == nil || item.container != c {
				return newError(NotManagedError, CodeNotManaged, "the window %s is not managed by %s",
					windowName(ref.win), windowName(container))
			}
			start, span := item.extent(a)
			for s := start; s < start+span; s++ {
				slots = append(slots, s)
			}
		default:
			slots = append(slots, ref.index)
		}
	}
	for _, s := range slots {
		if err := checkSlot(s); err != nil {
			return newError(RangeError, CodeIndexRange, "%s %d is out of range", a, s)
		}
	}

	c = m.getGrid(container)
	table := c.initContainer().table(a)
	for _, s := range slots {
		// checked above
		_ = table.set(s, o.apply(table.get(s)))
	}
	table.trim()
	m.invalidate(c)
	return nil
}

// ColumnInfo returns the constraints of column index of container. Slots
// never configured report zero values.
func (m *Manager) ColumnInfo(container Window, index int) SlotConfig {
	return m.slotInfo(container, columnAxis, index)
}

// RowInfo returns the constraints of row index of container.
func (m *Manager) RowInfo(container Window, index int) SlotConfig {
	return m.slotInfo(container, rowAxis, index)
}

func (m *Manager) slotInfo(container Window, a axis, index int) SlotConfig {
	c := m.lookup(container)
	if c == nil || c.grid == nil {
		return SlotConfig{}
	}
	return c.grid.table(a).get(index)
}
