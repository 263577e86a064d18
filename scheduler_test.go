package grid

import (
	"slices"
	"testing"
)

func TestIdleQueueOrderAndDedup(t *testing.T) {
	q := NewIdleQueue()
	var got []string
	q.DoWhenIdle("a", func() { got = append(got, "a") })
	q.DoWhenIdle("b", func() { got = append(got, "b") })
	q.DoWhenIdle("a", func() { got = append(got, "a2") })

	if q.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", q.Pending())
	}
	if n := q.Run(); n != 2 {
		t.Errorf("Run() = %d, want 2", n)
	}
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("ran %v, want %v", got, want)
	}
	if q.Pending() != 0 {
		t.Errorf("Pending() after Run = %d, want 0", q.Pending())
	}
}

func TestIdleQueueCancel(t *testing.T) {
	q := NewIdleQueue()
	ran := false
	q.DoWhenIdle(1, func() { ran = true })
	q.CancelIdle(1)
	q.CancelIdle(2)
	if n := q.Run(); n != 0 {
		t.Errorf("Run() = %d, want 0", n)
	}
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestIdleQueueTasksScheduledWhileRunning(t *testing.T) {
	q := NewIdleQueue()
	var got []string
	q.DoWhenIdle("first", func() {
		got = append(got, "first")
		q.DoWhenIdle("first", func() { got = append(got, "again") })
	})
	if n := q.Run(); n != 2 {
		t.Errorf("Run() = %d, want 2", n)
	}
	if want := []string{"first", "again"}; !slices.Equal(got, want) {
		t.Errorf("ran %v, want %v", got, want)
	}
}

func TestIdleQueueBoundsRounds(t *testing.T) {
	q := NewIdleQueue()
	var loop func()
	loop = func() { q.DoWhenIdle("loop", loop) }
	q.DoWhenIdle("loop", loop)

	if n := q.Run(); n != maxIdleRounds {
		t.Errorf("Run() = %d, want %d", n, maxIdleRounds)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d, want the task left queued", q.Pending())
	}
}
