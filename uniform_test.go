package grid

import "testing"

func TestResolveUniform(t *testing.T) {
	tests := []struct {
		name  string
		slots []layoutSlot
		want  []int
	}{
		{
			name: "weighted group keeps ratio",
			slots: []layoutSlot{
				{minSize: 15, weight: 1, uniform: "g"},
				{minSize: 20, weight: 2, uniform: "g"},
			},
			want: []int{15, 30},
		},
		{
			name: "larger weight sets the unit",
			slots: []layoutSlot{
				{minSize: 10, weight: 1, uniform: "g"},
				{minSize: 30, weight: 2, uniform: "g"},
			},
			want: []int{15, 30},
		},
		{
			name: "zero weight counts as one",
			slots: []layoutSlot{
				{minSize: 10, uniform: "g"},
				{minSize: 4, uniform: "g"},
			},
			want: []int{10, 10},
		},
		{
			name: "rounds per weight up",
			slots: []layoutSlot{
				{minSize: 7, weight: 2, uniform: "g"},
				{minSize: 1, weight: 3, uniform: "g"},
			},
			want: []int{8, 12},
		},
		{
			name: "separate groups and untagged slots",
			slots: []layoutSlot{
				{minSize: 5, uniform: "a"},
				{minSize: 9},
				{minSize: 8, uniform: "b"},
				{minSize: 2, uniform: "a"},
				{minSize: 3, uniform: "b"},
			},
			want: []int{5, 9, 8, 5, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolveUniform(tt.slots)
			for i, s := range tt.slots {
				if s.minSize != tt.want[i] {
					t.Errorf("slot %d minSize = %d, want %d", i, s.minSize, tt.want[i])
				}
			}
		})
	}
}

func TestUniformThroughSolver(t *testing.T) {
	slots := []SlotConfig{
		{Weight: 1, Uniform: "g"},
		{Weight: 2, Uniform: "g"},
	}
	spans := []Span{{Start: 0, Count: 1, Size: 15}, {Start: 1, Count: 1, Size: 20}}
	offsets, required := ResolveConstraints(slots, spans, 0)
	if required != 45 {
		t.Errorf("required = %d, want 45", required)
	}
	if len(offsets) != 2 || offsets[0] != 15 || offsets[1] != 45 {
		t.Errorf("offsets = %v, want [15 45]", offsets)
	}
}
