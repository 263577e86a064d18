package grid

const (
	// MaxSlot bounds row and column indices. An item's extent
	// (index + span) must also stay below it.
	MaxSlot = 10000

	typicalSize = 25
	preAlloc    = 10
)

// SlotConfig holds the user constraints of one row or column.
type SlotConfig struct {
	MinSize int
	Weight  int
	Pad     int
	Uniform string
}

// IsZero reports whether every constraint is at its default.
func (c SlotConfig) IsZero() bool {
	return c.MinSize == 0 && c.Weight == 0 && c.Pad == 0 && c.Uniform == ""
}

type slotInfo struct {
	SlotConfig
	offset int
}

// slotTable stores the constraints and resolved offsets of one axis.
//
// max is one past the highest slot with a non-default constraint and end
// is one past the highest slot occupied by an item.
type slotTable struct {
	slots []slotInfo
	max   int
	end   int
}

func newSlotTable() slotTable {
	return slotTable{slots: make([]slotInfo, typicalSize)}
}

func checkSlot(index int) error {
	if index < 0 || index >= MaxSlot {
		return newError(RangeError, CodeIndexRange, "slot %d is out of range", index)
	}
	return nil
}

// reserve makes room for index without touching max.
func (t *slotTable) reserve(index int) error {
	if err := checkSlot(index); err != nil {
		return err
	}
	if index >= len(t.slots) {
		grown := make([]slotInfo, index+preAlloc)
		copy(grown, t.slots)
		t.slots = grown
	}
	return nil
}

// ensure makes room for index and counts it as constrained.
func (t *slotTable) ensure(index int) error {
	if err := t.reserve(index); err != nil {
		return err
	}
	if index >= t.max {
		t.max = index + 1
	}
	return nil
}

func (t *slotTable) get(index int) SlotConfig {
	if index < 0 || index >= t.max || index >= len(t.slots) {
		return SlotConfig{}
	}
	return t.slots[index].SlotConfig
}

func (t *slotTable) set(index int, cfg SlotConfig) error {
	if err := t.ensure(index); err != nil {
		return err
	}
	t.slots[index].SlotConfig = cfg
	return nil
}

// trim drops trailing default slots from max.
func (t *slotTable) trim() {
	last := t.max - 1
	for last >= 0 && t.slots[last].IsZero() {
		last--
	}
	t.max = last + 1
}

// count is the number of slots a layout pass works on.
func (t *slotTable) count() int {
	return max(t.end, t.max)
}

func (t *slotTable) configs(n int) []SlotConfig {
	out := make([]SlotConfig, n)
	for i := 0; i < n && i < t.max; i++ {
		out[i] = t.slots[i].SlotConfig
	}
	return out
}

func (t *slotTable) offsets(n int) []int {
	out := make([]int, n)
	for i := 0; i < n && i < len(t.slots); i++ {
		out[i] = t.slots[i].offset
	}
	return out
}

func (t *slotTable) storeOffsets(offsets []int) {
	for i, off := range offsets {
		t.slots[i].offset = off
	}
}

// offset returns the resolved right or bottom edge of index.
func (t *slotTable) offset(index int) int {
	if index < 0 || index >= len(t.slots) {
		return 0
	}
	return t.slots[index].offset
}

func (t *slotTable) clone() slotTable {
	c := *t
	c.slots = append([]slotInfo(nil), t.slots...)
	return c
}
