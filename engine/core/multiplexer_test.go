package core

import "testing"

func TestMultiplexerTopFirst(t *testing.T) {
	var order []string
	bottom := InputFunc(func(InputEvent) bool {
		order = append(order, "bottom")
		return true
	})
	top := InputFunc(func(InputEvent) bool {
		order = append(order, "top")
		return false
	})
	m := NewInputMultiplexer(bottom, top)

	if !m.HandleInput(EventKey{Action: KeyDown, Key: KeyQ}) {
		t.Fatal("bottom handles the event, HandleInput should report true")
	}
	if len(order) != 2 || order[0] != "top" || order[1] != "bottom" {
		t.Fatalf("order = %v, want [top bottom]", order)
	}
}

func TestMultiplexerStopsWhenHandled(t *testing.T) {
	calls := 0
	m := NewInputMultiplexer()
	m.Push(InputFunc(func(InputEvent) bool {
		calls++
		return false
	}))
	m.Push(InputFunc(func(InputEvent) bool { return true }))
	m.HandleInput(EventPointer{Action: PointerMove})
	if calls != 0 {
		t.Errorf("lower processor called %d times, want 0", calls)
	}
	if _, ok := m.Pop(); !ok || m.Len() != 1 {
		t.Fatalf("Pop should remove the top processor, Len = %d", m.Len())
	}
	if m.HandleInput(EventPointer{Action: PointerMove}) {
		t.Error("remaining processor does not handle, want false")
	}
	m.Pop()
	if _, ok := m.Pop(); ok {
		t.Error("Pop on empty multiplexer should report false")
	}
}
