package grid

import (
	"fmt"
	"testing"
)

func benchmarkArrange(b *testing.B, size int) {
	top := newFixedTop("top", size*8, size*2)
	m := newTestManager()
	for r := range size {
		for c := range size {
			w := newChild(fmt.Sprintf("r%dc%d", r, c), top, 1+(r+c)%5, 1)
			if err := m.Configure(w, Row(r), Column(c), StickTo(StickAll)); err != nil {
				b.Fatal(err)
			}
		}
	}
	if err := m.ColumnConfigure(top, []SlotRef{AllContent}, Weight(1)); err != nil {
		b.Fatal(err)
	}
	m.Update()
	c := m.lookup(top)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.invalidate(c)
		m.flush(c)
	}
}

func BenchmarkArrange10(b *testing.B)  { benchmarkArrange(b, 10) }
func BenchmarkArrange50(b *testing.B)  { benchmarkArrange(b, 50) }
func BenchmarkArrange100(b *testing.B) { benchmarkArrange(b, 100) }

func BenchmarkResolveConstraints(b *testing.B) {
	const n = 200
	configs := make([]SlotConfig, n)
	spans := make([]Span, 0, n*2)
	for i := range n {
		configs[i] = SlotConfig{Weight: i % 3}
		spans = append(spans, Span{Start: i, Count: 1, Size: i % 7})
		if i+3 < n {
			spans = append(spans, Span{Start: i, Count: 3, Size: 20})
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ResolveConstraints(configs, spans, 0)
	}
}
