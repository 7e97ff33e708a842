package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/esloop/engine/core"
)

// GLFWWindow implements core.Window and pushes native callbacks to the app as events.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

// Must be called on the main thread before any GL calls; core.New locks
// the calling goroutine to it before invoking the window factory.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &GLFWWindow{w: win}

	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		gw.emit(core.EventIconify{Iconified: iconified})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventPointer{Action: core.PointerMove, X: int(x), Y: int(y), Button: gw.heldButton()})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := translateButton(button)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		pa := core.PointerDown
		if action == glfw.Release {
			pa = core.PointerUp
		}
		gw.emit(core.EventPointer{Action: pa, X: int(x), Y: int(y), Button: b})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		switch action {
		case glfw.Press:
			gw.emit(core.EventKey{Action: core.KeyDown, Key: k})
		case glfw.Release:
			gw.emit(core.EventKey{Action: core.KeyUp, Key: k})
		}
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventKey{Action: core.KeyTyped, Key: core.KeyUnknown, Char: r})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

func (g *GLFWWindow) heldButton() core.Button {
	for _, b := range []glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle} {
		if g.w.GetMouseButton(b) == glfw.Press {
			cb, _ := translateButton(b)
			return cb
		}
	}
	return core.ButtonLeft
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyBackspace:
		return core.KeyBackspace
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyLeft:
		return core.KeyArrowLeft
	case glfw.KeyRight:
		return core.KeyArrowRight
	case glfw.KeyUp:
		return core.KeyArrowUp
	case glfw.KeyDown:
		return core.KeyArrowDown
	case glfw.KeyW:
		return core.KeyW
	case glfw.KeyA:
		return core.KeyA
	case glfw.KeyS:
		return core.KeyS
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyP:
		return core.KeyP
	case glfw.KeyQ:
		return core.KeyQ
	case glfw.KeyR:
		return core.KeyR
	case glfw.KeyF:
		return core.KeyF
	default:
		return core.KeyUnknown
	}
}

func translateButton(b glfw.MouseButton) (core.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.ButtonLeft, true
	case glfw.MouseButtonRight:
		return core.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return core.ButtonMiddle, true
	}
	return 0, false
}
