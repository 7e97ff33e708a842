package core

import (
	"sync"
	"testing"
)

func TestTaskQueueFIFO(t *testing.T) {
	var q TaskQueue
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		q.Post(func() { got = append(got, i) })
	}
	if n := q.Len(); n != 5 {
		t.Fatalf("Len = %d, want 5", n)
	}
	if n := q.Drain(); n != 5 {
		t.Fatalf("Drain ran %d tasks, want 5", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order = %v, want ascending", got)
		}
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}
}

func TestTaskQueueRejectsNil(t *testing.T) {
	var q TaskQueue
	if q.Post(nil) {
		t.Error("Post(nil) = true, want false")
	}
	if q.Len() != 0 {
		t.Error("nil task must not be queued")
	}
}

func TestTaskQueueRepostDuringDrain(t *testing.T) {
	var q TaskQueue
	runs := 0
	var task func()
	task = func() {
		runs++
		q.Post(task)
	}
	q.Post(task)
	q.Drain()
	if runs != 1 {
		t.Fatalf("runs = %d after first drain, want 1", runs)
	}
	if q.Len() != 1 {
		t.Fatalf("reposted task should wait for the next drain, Len = %d", q.Len())
	}
	q.Drain()
	if runs != 2 {
		t.Fatalf("runs = %d after second drain, want 2", runs)
	}
}

func TestTaskQueueConcurrentPostAndDrain(t *testing.T) {
	var q TaskQueue
	const n = 1000
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		count int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
	}
	stop := make(chan struct{})
	go func() { wg.Wait(); close(stop) }()
	total := 0
	for {
		select {
		case <-stop:
			total += q.Drain()
			if total != n || count != n {
				t.Fatalf("drained %d, counted %d, want %d", total, count, n)
			}
			return
		default:
			total += q.Drain()
		}
	}
}
