package core

import (
	"github.com/hubastard/esloop/engine/audio"
	"github.com/hubastard/esloop/engine/colors"
	"github.com/hubastard/esloop/engine/logging"
)

// Listener defines the application hooks. All of them run on the loop goroutine.
type Listener interface {
	Create(app *Application) // once, on the first frame
	Resize(width, height int)
	Render()
	Pause()
	Resume()
	Dispose()
}

// Window abstraction over the native event pump.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// GL is the subset of GL entry points the loop itself touches.
type GL interface {
	Viewport(x, y, width, height int32)
	Clear(r, g, b, a float32)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
}

// Audio is the playback capability exposed to applications.
type Audio interface {
	NewSound(path string) *audio.Sound
	Play(s *audio.Sound) int64
	Dispose()
}

// Event model emitted by a Window.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventIconify struct{ Iconified bool }

func (EventIconify) isEvent() {}

type EventKey struct {
	Action KeyAction
	Key    Key
	Char   rune // set for KeyTyped
}

func (EventKey) isEvent()      {}
func (EventKey) isInputEvent() {}

type EventPointer struct {
	Action PointerAction
	X, Y   int
	Button Button
}

func (EventPointer) isEvent()      {}
func (EventPointer) isInputEvent() {}

// InputEvent is either an EventKey or an EventPointer.
type InputEvent interface {
	Event
	isInputEvent()
}

type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
	KeyTyped
)

type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerUp
	PointerMove
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	buttonCount
)

// Key enum (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyQ
	KeyR
	KeyF
)

// Config for the application.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Fullscreen bool         `yaml:"fullscreen"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color,flow"`
	AssetsDir  string       `yaml:"assets_dir"`
	PrefsDir   string       `yaml:"prefs_dir"` // relative to the user's home unless absolute

	Logger logging.Logger `yaml:"-"` // nil logs to stderr
	Audio  Audio          `yaml:"-"` // nil uses a silent device
}
