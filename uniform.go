package grid

// resolveUniform equalizes the per-weight minimum size of slots sharing a
// uniform tag. A zero weight counts as one for the ratio.
func resolveUniform(slots []layoutSlot) {
	groups := make(map[string]int)
	for i := range slots {
		s := &slots[i]
		if s.uniform == "" {
			continue
		}
		w := max(s.weight, 1)
		perWeight := (s.minSize + w - 1) / w
		if cur, ok := groups[s.uniform]; !ok || perWeight > cur {
			groups[s.uniform] = perWeight
		}
	}
	if len(groups) == 0 {
		return
	}
	for i := range slots {
		s := &slots[i]
		if s.uniform == "" {
			continue
		}
		s.minSize = groups[s.uniform] * max(s.weight, 1)
	}
}
