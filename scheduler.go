package grid

import "sync"

// Scheduler defers work until the caller's event loop is idle. A key has
// at most one pending task; scheduling a key that is already pending is
// a no-op.
type Scheduler interface {
	DoWhenIdle(key any, fn func())
	CancelIdle(key any)
}

// maxIdleRounds bounds one Run call. Tasks scheduled by tasks run in the
// next round; a layout that keeps asking for more passes is left pending
// instead of spinning.
const maxIdleRounds = 64

// IdleQueue is the default Scheduler: a FIFO of keyed tasks drained by
// Run. It is safe to schedule from other goroutines, but Run must be
// called from the goroutine that owns the Manager.
type IdleQueue struct {
	mu    sync.Mutex
	order []any
	tasks map[any]func()
}

// NewIdleQueue creates an empty queue.
func NewIdleQueue() *IdleQueue {
	return &IdleQueue{tasks: make(map[any]func())}
}

// DoWhenIdle queues fn under key unless key is already queued.
func (q *IdleQueue) DoWhenIdle(key any, fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.tasks[key]; ok {
		return
	}
	q.tasks[key] = fn
	q.order = append(q.order, key)
}

// CancelIdle drops the task queued under key, if any.
func (q *IdleQueue) CancelIdle(key any) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.tasks[key]; !ok {
		return
	}
	delete(q.tasks, key)
	for i, k := range q.order {
		if k == key {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}

// Pending returns the number of queued tasks.
func (q *IdleQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order)
}

// Run executes queued tasks in the order they were queued, including the
// ones queued while running, and returns how many ran.
func (q *IdleQueue) Run() int {
	ran := 0
	for round := 0; round < maxIdleRounds; round++ {
		q.mu.Lock()
		keys := q.order
		q.order = nil
		toRun := make([]func(), 0, len(keys))
		for _, k := range keys {
			toRun = append(toRun, q.tasks[k])
			delete(q.tasks, k)
		}
		q.mu.Unlock()

		if len(toRun) == 0 {
			break
		}
		for _, fn := range toRun {
			fn()
			ran++
		}
	}
	return ran
}
