package grid

// AdjustOffsets fits resolved offsets into size units, rewriting offsets
// in place. Extra space goes to slots by weight; missing space is taken
// from slots by weight, never below their configured MinSize. When no
// slot has weight nothing changes and the natural size is returned so the
// caller can anchor the block.
//
// used is the size the slots occupy afterwards. overflow reports that the
// slots could not shrink to size because every shrinkable slot already
// sits at its minimum.
func AdjustOffsets(size int, slots []SlotConfig, offsets []int) (used int, overflow bool) {
	n := len(offsets)
	if n == 0 {
		return 0, false
	}
	cfg := func(i int) SlotConfig {
		if i < len(slots) {
			return slots[i]
		}
		return SlotConfig{}
	}
	current := func(i int) int {
		if i == 0 {
			return offsets[0]
		}
		return offsets[i] - offsets[i-1]
	}

	diff := size - offsets[n-1]
	if diff == 0 {
		return size, false
	}

	totalWeight := 0
	for i := range n {
		totalWeight += cfg(i).Weight
	}
	if totalWeight == 0 {
		return offsets[n-1], false
	}

	if diff > 0 {
		weight := 0
		for i := range n {
			weight += cfg(i).Weight
			offsets[i] += diff * weight / totalWeight
		}
		return size, false
	}

	// Weighted slots may shrink to their minimum, the others keep
	// their current size.
	floor := make([]int, n)
	minTotal := 0
	for i := range n {
		if cfg(i).Weight > 0 {
			floor[i] = cfg(i).MinSize
		} else {
			floor[i] = current(i)
		}
		minTotal += floor[i]
	}
	if size <= minTotal {
		offset := 0
		for i := range n {
			offset += floor[i]
			offsets[i] = offset
		}
		return minTotal, size < minTotal
	}

	// Shrink by weight, renormalizing whenever a slot reaches its minimum.
	shrinkable := floor
	for diff < 0 {
		totalWeight = 0
		for i := range n {
			if current(i) > cfg(i).MinSize {
				shrinkable[i] = cfg(i).Weight
				totalWeight += shrinkable[i]
			} else {
				shrinkable[i] = 0
			}
		}
		if totalWeight == 0 {
			return offsets[n-1], true
		}

		step := diff
		for i := range n {
			if shrinkable[i] == 0 {
				continue
			}
			limit := totalWeight * (cfg(i).MinSize - current(i)) / shrinkable[i]
			if limit > step {
				step = limit
			}
		}

		weight := 0
		for i := range n {
			weight += shrinkable[i]
			offsets[i] += step * weight / totalWeight
		}
		diff -= step
	}
	return size, false
}
