package grid

// Span is one item projected onto an axis: it covers Count slots starting
// at Start and needs Size units including padding and border.
type Span struct {
	Start int
	Count int
	Size  int
}

func (s Span) end() int {
	return s.Start + max(s.Count, 1) - 1
}

type layoutSlot struct {
	minSize   int
	weight    int
	pad       int
	uniform   string
	minOffset int
	maxOffset int
	// spanning items whose trailing edge is this slot
	bin []Span
}

// layout keeps an origin entry in front of the slots so slot -1 is
// addressable and always has offset 0.
type layout []layoutSlot

func (l layout) at(slot int) *layoutSlot {
	return &l[slot+1]
}

func (l layout) slots() []layoutSlot {
	return l[1:]
}

// maxRelaxPasses bounds the inner fixed point of the slack distribution.
// The search converges in a handful of passes for real tables.
const maxRelaxPasses = 1024

// ResolveConstraints computes the offset of the right (or bottom) edge of
// every slot of one axis. The result has one entry per slot and never has
// fewer entries than the furthest span needs. required is the smallest
// total size that satisfies every minimum and span. When maxOffset is
// larger than required, the extra space is handed out by weight (or
// evenly when no slot has weight) up to maxOffset.
func ResolveConstraints(slots []SlotConfig, spans []Span, maxOffset int) (offsets []int, required int) {
	offsets, required, _ = resolveConstraints(slots, spans, maxOffset)
	return offsets, required
}

// resolveConstraints is ResolveConstraints that also reports whether the
// slack distribution ran to the end. When settled is false some slack was
// left unused; the offsets still meet every minimum and span.
func resolveConstraints(slots []SlotConfig, spans []Span, maxOffset int) (offsets []int, required int, settled bool) {
	n := len(slots)
	for _, sp := range spans {
		n = max(n, sp.end()+1)
	}
	if n == 0 {
		return nil, 0, true
	}

	l := make(layout, n+1)
	for i, cfg := range slots {
		s := l.at(i)
		s.minSize = cfg.MinSize
		s.weight = cfg.Weight
		s.pad = cfg.Pad
		s.uniform = cfg.Uniform
	}

	// Single-slot items raise their slot's minimum directly; wider items
	// are binned by trailing edge.
	for _, sp := range spans {
		edge := sp.end()
		if edge < 0 {
			continue
		}
		if sp.Count > 1 {
			s := l.at(edge)
			s.bin = append(s.bin, sp)
			continue
		}
		s := l.at(edge)
		if size := sp.Size + s.pad; size > s.minSize {
			s.minSize = size
		}
	}

	resolveUniform(l.slots())

	scratch := make([]int, n)
	l.lowerBounds(scratch, 0, nil)
	required = scratch[n-1]
	total := max(required, maxOffset)
	l.setBounds(scratch, total)

	settled = distributeSlack(l, scratch, total)

	offsets = make([]int, n)
	for slot := range offsets {
		offsets[slot] = l.at(slot).minOffset
	}
	return offsets, required, settled
}

// lowerBounds writes the smallest offset of every boundary into dst. grow,
// when set, is added to the minimums of the slots from first on.
func (l layout) lowerBounds(dst []int, first int, grow []int) {
	prev := 0
	for slot := range dst {
		s := l.at(slot)
		size := s.minSize
		if i := slot - first; i >= 0 && i < len(grow) {
			size += grow[i]
		}
		off := prev + size
		for _, sp := range s.bin {
			base := 0
			if start := slot - sp.Count; start >= 0 {
				base = dst[start]
			}
			off = max(off, base+sp.Size)
		}
		dst[slot] = off
		prev = off
	}
}

// setBounds stores the smallest and largest offset each boundary can take
// when the last one may not pass total.
func (l layout) setBounds(scratch []int, total int) {
	l.lowerBounds(scratch, 0, nil)
	for slot, off := range scratch {
		s := l.at(slot)
		s.minOffset = off
		s.maxOffset = total
	}
	for slot := len(scratch) - 1; slot >= 0; slot-- {
		s := l.at(slot)
		if slot > 0 {
			prev := l.at(slot - 1)
			prev.maxOffset = min(prev.maxOffset, s.maxOffset-s.minSize)
		}
		for _, sp := range s.bin {
			if start := slot - sp.Count; start >= 0 {
				l.at(start).maxOffset = min(l.at(start).maxOffset, s.maxOffset-sp.Size)
			}
		}
	}
}

// distributeSlack walks runs of boundaries that still have a range of
// legal positions and grows the slots of each run by weight. Growth that
// would push the last boundary past total is cut back, and the bounds are
// recomputed after every run so spans starting inside a run hold.
func distributeSlack(l layout, scratch []int, total int) (settled bool) {
	n := len(scratch)
	settled = true
	grow := make([]int, 0, n)
	runs := 0
	for start := 0; start < n; {
		if l.at(start).minOffset >= l.at(start).maxOffset {
			start++
			continue
		}
		if runs++; runs > 2*n+16 {
			return false
		}

		end := start + 1
		for ; end < n; end++ {
			if l.at(end).minOffset >= l.at(end).maxOffset {
				break
			}
		}
		if end >= n {
			end = n - 1
		}

		totalWeight, need := 0, 0
		for slot := start; slot <= end; slot++ {
			totalWeight += l.at(slot).weight
			need += l.at(slot).minSize
		}
		have := l.at(end).maxOffset - l.at(start-1).minOffset

		noWeights := totalWeight == 0
		if noWeights {
			totalWeight = end - start + 1
		}
		weightOf := func(slot int) int {
			if noWeights {
				return 1
			}
			return l.at(slot).weight
		}

		have, ok := fitRun(l, start, end, have, need, totalWeight, weightOf)
		if !ok {
			settled = false
		}
		spread := func(extra int) []int {
			grow = grow[:0]
			prevGrow, acc := 0, 0
			for slot := start; slot <= end; slot++ {
				acc += weightOf(slot)
				g := extra*acc/totalWeight - prevGrow
				prevGrow += g
				grow = append(grow, g)
			}
			return grow
		}
		fits := func(extra int) bool {
			l.lowerBounds(scratch, start, spread(extra))
			return scratch[n-1] <= total
		}

		extra := have - need
		if extra > 0 && !fits(extra) {
			lo, hi := 0, extra
			for hi-lo > 1 {
				if mid := (lo + hi) / 2; fits(mid) {
					lo = mid
				} else {
					hi = mid
				}
			}
			extra = lo
		}
		if extra <= 0 {
			start = end + 1
			continue
		}
		for i, g := range spread(extra) {
			l.at(start + i).minSize += g
		}
		l.setBounds(scratch, total)
	}
	return settled
}

// fitRun lowers have until distributing have-need over the run keeps
// every weighted boundary within its maxOffset. Growth is computed from a
// cumulative weight so rounding never loses a unit. ok is false when the
// search gave up; have is then need.
func fitRun(l layout, start, end, have, need, totalWeight int, weightOf func(int) int) (int, bool) {
	for pass := 0; pass < maxRelaxPasses; pass++ {
		prevMinOffset := l.at(start - 1).minOffset
		prevGrow, acc := 0, 0
		fits := true
		for slot := start; slot <= end; slot++ {
			s := l.at(slot)
			weight := weightOf(slot)
			acc += weight
			grow := (have-need)*acc/totalWeight - prevGrow
			prevGrow += grow

			if weight > 0 && prevMinOffset+s.minSize+grow > s.maxOffset {
				grow = s.maxOffset - s.minSize - prevMinOffset
				have = need + reducedHave(grow, have-need, weight, totalWeight)
				fits = false
				break
			}
			prevMinOffset += s.minSize + grow
			if prevMinOffset < s.minOffset {
				prevMinOffset = s.minOffset
			}
		}
		if fits {
			return have, true
		}
	}
	return need, false
}

// reducedHave picks the next amount of extra space to try after a slot
// overflowed while receiving grow units.
func reducedHave(grow, extra, weight, totalWeight int) int {
	newHave := grow * totalWeight / weight
	if newHave > totalWeight {
		newHave = newHave / totalWeight * totalWeight
	}
	if newHave > 0 {
		return newHave
	}

	// Earlier slots took all the space; back off from the current amount.
	newHave = extra - 1
	if newHave > 3*totalWeight {
		newHave = newHave * 3 / 4
	}
	if newHave > totalWeight {
		newHave = newHave / totalWeight * totalWeight
	}
	if newHave <= 0 {
		newHave = 1
	}
	return newHave
}
