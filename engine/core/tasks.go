package core

import "sync"

// TaskQueue collects work posted from any goroutine and runs it on the loop goroutine.
type TaskQueue struct {
	mu      sync.Mutex
	pending []func()
}

// Post appends task. It reports false for a nil task.
func (q *TaskQueue) Post(task func()) bool {
	if task == nil {
		return false
	}
	q.mu.Lock()
	q.pending = append(q.pending, task)
	q.mu.Unlock()
	return true
}

// Len returns the number of tasks waiting for the next Drain.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs every task posted before the swap, in posting order.
// The lock is released before any task runs, so tasks may Post again;
// those land in the next Drain.
func (q *TaskQueue) Drain() int {
	q.mu.Lock()
	tasks := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
