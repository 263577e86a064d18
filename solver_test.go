package grid

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestResolveConstraints(t *testing.T) {
	tests := []struct {
		name      string
		slots     []SlotConfig
		spans     []Span
		maxOffset int
		want      []int
		required  int
	}{
		{
			name:     "no items",
			want:     nil,
			required: 0,
		},
		{
			name:     "single slot items",
			spans:    []Span{{0, 1, 10}, {1, 1, 20}, {0, 1, 4}},
			want:     []int{10, 30},
			required: 30,
		},
		{
			name:     "slot pad is added to the largest item",
			slots:    []SlotConfig{{Pad: 2}},
			spans:    []Span{{0, 1, 10}},
			want:     []int{12},
			required: 12,
		},
		{
			name:     "minimum size wins over smaller items",
			slots:    []SlotConfig{{}, {MinSize: 40}},
			spans:    []Span{{0, 1, 10}, {1, 1, 20}},
			want:     []int{10, 50},
			required: 50,
		},
		{
			name:     "spanning item spreads evenly without weights",
			spans:    []Span{{0, 1, 20}, {1, 1, 20}, {2, 1, 20}, {0, 3, 90}},
			want:     []int{30, 60, 90},
			required: 90,
		},
		{
			name:     "spanning item grows the weighted slot",
			slots:    []SlotConfig{{}, {Weight: 1}},
			spans:    []Span{{0, 1, 20}, {1, 1, 20}, {0, 2, 100}},
			want:     []int{20, 100},
			required: 100,
		},
		{
			name:     "span longer than the table",
			spans:    []Span{{0, 5, 50}},
			want:     []int{10, 20, 30, 40, 50},
			required: 50,
		},
		{
			name:     "negative start is anchored at the origin",
			spans:    []Span{{-2, 3, 15}},
			want:     []int{15},
			required: 15,
		},
		{
			name:     "empty slots before an item",
			spans:    []Span{{3, 1, 10}},
			want:     []int{0, 0, 0, 10},
			required: 10,
		},
		{
			name:      "extra space goes by weight",
			slots:     []SlotConfig{{Weight: 1}, {Weight: 1}},
			spans:     []Span{{0, 1, 10}, {1, 1, 10}},
			maxOffset: 40,
			want:      []int{20, 40},
			required:  20,
		},
		{
			name: "spans starting inside a grown run keep their size",
			slots: []SlotConfig{
				{MinSize: 12, Pad: 1},
				{MinSize: 1, Weight: 3, Pad: 2},
				{MinSize: 3, Weight: 1},
				{MinSize: 8, Pad: 2},
				{MinSize: 9, Weight: 2},
				{MinSize: 5, Weight: 2, Pad: 1},
			},
			spans:     []Span{{2, 2, 115}, {1, 3, 60}},
			maxOffset: 180,
			want:      []int{12, 29, 136, 144, 164, 180},
			required:  142,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, required := ResolveConstraints(tt.slots, tt.spans, tt.maxOffset)
			if !slices.Equal(got, tt.want) {
				t.Errorf("offsets = %v, want %v", got, tt.want)
			}
			if required != tt.required {
				t.Errorf("required = %d, want %d", required, tt.required)
			}
		})
	}
}

// checkMinimums verifies that every slot is at least its configured
// minimum size.
func checkMinimums(t *testing.T, slots []SlotConfig, offsets []int) {
	t.Helper()
	prev := 0
	for i, off := range offsets {
		floor := 0
		if i < len(slots) {
			floor = slots[i].MinSize
		}
		if off-prev < floor {
			t.Errorf("slot %d size %d below minimum %d (offsets %v)", i, off-prev, floor, offsets)
		}
		prev = off
	}
}

// checkSpans verifies that every span gets at least its size between the
// boundary before its first slot and its trailing boundary.
func checkSpans(t *testing.T, spans []Span, offsets []int) {
	t.Helper()
	offset := func(slot int) int {
		if slot < 0 {
			return 0
		}
		return offsets[slot]
	}
	for _, sp := range spans {
		edge := sp.end()
		if edge < 0 {
			continue
		}
		if got := offset(edge) - offset(max(sp.Start-1, -1)); got < sp.Size {
			t.Errorf("span %+v gets %d (offsets %v)", sp, got, offsets)
		}
	}
}

func TestResolveConstraintsInvariants(t *testing.T) {
	for seed := 1; seed <= 40; seed++ {
		t.Run(fmt.Sprintf("table%d", seed), func(t *testing.T) {
			n := seed%7 + 2
			slots := make([]SlotConfig, n)
			for i := range slots {
				v := (seed*31 + i*17) % 13
				slots[i] = SlotConfig{MinSize: v % 5, Weight: v % 3, Pad: v % 2}
			}
			var spans []Span
			for i := 0; i < n+3; i++ {
				v := (seed*7 + i*11) % 29
				start := v % n
				count := 1 + v%3
				if start+count > n {
					count = n - start
				}
				spans = append(spans, Span{Start: start, Count: count, Size: 3 + v})
			}

			offsets, required := ResolveConstraints(slots, spans, 0)
			if len(offsets) != n {
				t.Fatalf("len(offsets) = %d, want %d", len(offsets), n)
			}
			checkMinimums(t, slots, offsets)
			checkSpans(t, spans, offsets)
			if offsets[n-1] != required {
				t.Errorf("last offset = %d, want required %d", offsets[n-1], required)
			}
			for i := 1; i < n; i++ {
				if offsets[i] < offsets[i-1] {
					t.Errorf("offsets decrease at %d: %v", i, offsets)
				}
			}

			again, _ := ResolveConstraints(slots, spans, 0)
			if !slices.Equal(offsets, again) {
				t.Errorf("second run = %v, want %v", again, offsets)
			}

			wide, _ := ResolveConstraints(slots, spans, required+37)
			checkMinimums(t, slots, wide)
			checkSpans(t, spans, wide)
			if wide[n-1] > required+37 {
				t.Errorf("grown last offset = %d, want at most %d", wide[n-1], required+37)
			}
		})
	}
}

func TestResolveConstraintsRandomTables(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		n := 1 + r.IntN(8)
		slots := make([]SlotConfig, n)
		for j := range slots {
			slots[j] = SlotConfig{MinSize: r.IntN(13), Weight: r.IntN(4), Pad: r.IntN(3)}
		}
		spans := make([]Span, r.IntN(7))
		for j := range spans {
			spans[j] = Span{Start: r.IntN(n), Count: 1 + r.IntN(4), Size: r.IntN(121)}
		}

		_, required := ResolveConstraints(slots, spans, 0)
		for _, target := range []int{0, required + 1 + r.IntN(100)} {
			offsets, _ := ResolveConstraints(slots, spans, target)
			checkMinimums(t, slots, offsets)
			checkSpans(t, spans, offsets)
			if last := offsets[len(offsets)-1]; last > max(target, required) {
				t.Errorf("table %d: last offset %d past %d (offsets %v)", i, last, max(target, required), offsets)
			}
			for j := 1; j < len(offsets); j++ {
				if offsets[j] < offsets[j-1] {
					t.Errorf("table %d: offsets decrease at %d: %v", i, j, offsets)
				}
			}
		}
	}
}

func TestResolveConstraintsUnsettled(t *testing.T) {
	slots := []SlotConfig{{MinSize: 12, Weight: 3, Pad: 1}, {MinSize: 10, Weight: 2, Pad: 2}}
	spans := []Span{{1, 1, 12}, {1, 4, 11}, {1, 3, 75}, {0, 2, 21}}

	offsets, required, settled := resolveConstraints(slots, spans, 95)
	if settled {
		t.Errorf("settled = true, want the run limit to stop the distribution")
	}
	if required != 87 {
		t.Errorf("required = %d, want 87", required)
	}
	checkMinimums(t, slots, offsets)
	checkSpans(t, spans, offsets)
	if last := offsets[len(offsets)-1]; last > 95 {
		t.Errorf("last offset = %d, want at most 95", last)
	}

	if _, _, settled := resolveConstraints(slots, spans, 0); !settled {
		t.Error("settled = false without extra space")
	}
}

func TestReducedHave(t *testing.T) {
	tests := []struct {
		grow, extra, weight, totalWeight int
		want                             int
	}{
		{grow: 6, extra: 20, weight: 1, totalWeight: 2, want: 12},
		{grow: 3, extra: 20, weight: 1, totalWeight: 4, want: 12},
		{grow: 0, extra: 20, weight: 1, totalWeight: 2, want: 14},
		{grow: 0, extra: 1, weight: 1, totalWeight: 2, want: 1},
		{grow: -5, extra: 5, weight: 2, totalWeight: 3, want: 3},
	}
	for _, tt := range tests {
		got := reducedHave(tt.grow, tt.extra, tt.weight, tt.totalWeight)
		if got != tt.want {
			t.Errorf("reducedHave(%d, %d, %d, %d) = %d, want %d",
				tt.grow, tt.extra, tt.weight, tt.totalWeight, got, tt.want)
		}
	}
}
