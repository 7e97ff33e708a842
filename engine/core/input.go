package core

import "sync"

// InputProcessor receives raw input events on the loop goroutine.
// It returns true if the event was handled.
type InputProcessor interface {
	HandleInput(ev InputEvent) bool
}

// Input is the polled key and pointer state. The notifications and state
// queries may be called from any goroutine; ProcessEvents, ResetFrame,
// JustTouched and the processor belong to the loop goroutine.
type Input struct {
	mu             sync.Mutex
	keys           map[Key]bool
	buttons        [buttonCount]bool
	mouseX, mouseY int
	pending        []InputEvent

	// loop goroutine only
	justTouched bool
	processor   InputProcessor
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

// OnKey records a native key notification.
func (in *Input) OnKey(action KeyAction, key Key, char rune) {
	in.mu.Lock()
	switch action {
	case KeyDown:
		in.keys[key] = true
	case KeyUp:
		delete(in.keys, key)
	}
	in.pending = append(in.pending, EventKey{Action: action, Key: key, Char: char})
	in.mu.Unlock()
}

// OnPointer records a native pointer notification.
func (in *Input) OnPointer(action PointerAction, x, y int, button Button) {
	in.mu.Lock()
	in.mouseX, in.mouseY = x, y
	if button >= 0 && button < buttonCount {
		switch action {
		case PointerDown:
			in.buttons[button] = true
		case PointerUp:
			in.buttons[button] = false
		}
	}
	in.pending = append(in.pending, EventPointer{Action: action, X: x, Y: y, Button: button})
	in.mu.Unlock()
}

// ProcessEvents takes the events recorded since the last call, raises
// JustTouched if any was a pointer-down and hands them to the processor.
func (in *Input) ProcessEvents() {
	in.mu.Lock()
	events := in.pending
	in.pending = nil
	in.mu.Unlock()

	for _, ev := range events {
		if p, ok := ev.(EventPointer); ok && p.Action == PointerDown {
			in.justTouched = true
		}
		if in.processor != nil {
			in.processor.HandleInput(ev)
		}
	}
}

// ResetFrame clears per-frame flags.
func (in *Input) ResetFrame() { in.justTouched = false }

func (in *Input) SetProcessor(p InputProcessor) { in.processor = p }
func (in *Input) Processor() InputProcessor     { return in.processor }

// JustTouched is true only during the frame that processed a pointer-down.
func (in *Input) JustTouched() bool { return in.justTouched }

func (in *Input) IsKeyDown(k Key) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.keys[k]
}

// Pointer returns the last known pointer position.
func (in *Input) Pointer() (int, int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.mouseX, in.mouseY
}

func (in *Input) IsButtonPressed(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.buttons[b]
}

// IsTouched reports whether any button is held.
func (in *Input) IsTouched() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, down := range in.buttons {
		if down {
			return true
		}
	}
	return false
}
