package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/hubastard/esloop/engine/audio"
	"github.com/hubastard/esloop/engine/files"
	"github.com/hubastard/esloop/engine/logging"
	"github.com/hubastard/esloop/engine/prefs"
)

var _ Audio = (*audio.Silent)(nil)

// Swapped in tests to observe thread pinning.
var (
	lockThread   = runtime.LockOSThread
	unlockThread = runtime.UnlockOSThread
)

// State of the application lifecycle.
type State int32

const (
	StateUninitialized State = iota
	StateRunning
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Application drives a Listener from the native loop. OnFrame, OnResize,
// OnIconify, Quit and Run belong to the loop goroutine; PostRunnable, Exit,
// State and the Input notifications are safe from anywhere.
type Application struct {
	listener Listener
	cfg      Config
	window   Window
	graphics *Graphics
	input    *Input
	files    *files.Files
	audio    Audio
	prefs    *prefs.Store
	logger   logging.Logger
	tasks    TaskQueue

	state atomic.Int32
	exit  atomic.Bool

	// loop goroutine only
	created       bool
	pendingResize bool
	paused        bool
	inFrame       bool
	quitPending   bool
}

// New creates the window and GL entry points, wires the collaborators and
// installs the application as the active one. newGL may be nil when no GL
// context is wanted. The framebuffer size is handed to the listener right
// before Create, together with any resize that arrives in between.
//
// The calling goroutine stays locked to its OS thread on success, since
// graphics contexts require it.
func New(listener Listener, cfg Config, newWindow func(Config) (Window, error), newGL func(Window) (GL, error)) (_ *Application, err error) {
	if listener == nil {
		return nil, errors.New("core: nil listener")
	}
	lockThread()
	defer func() {
		if err != nil {
			unlockThread()
		}
	}()

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStd(nil)
	}

	win, err := newWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	var gl GL
	if newGL != nil {
		if gl, err = newGL(win); err != nil {
			win.Destroy()
			return nil, fmt.Errorf("init GL: %w", err)
		}
	}

	w, h := win.FramebufferSize()
	if w < 1 || h < 1 {
		w, h = cfg.Width, cfg.Height
	}

	fs := files.New(cfg.AssetsDir)
	prefsDir := cfg.PrefsDir
	if !filepath.IsAbs(prefsDir) {
		prefsDir = filepath.Join(fs.ExternalRoot(), prefsDir)
	}
	au := cfg.Audio
	if au == nil {
		au = audio.NewSilent()
	}

	a := &Application{
		listener: listener,
		cfg:      cfg,
		window:   win,
		graphics: NewGraphics(gl, w, h),
		input:    NewInput(),
		files:    fs,
		audio:    au,
		prefs:    prefs.NewStore(prefsDir, logger),
		logger:   logger,
	}
	if err = Install(a); err != nil {
		win.Destroy()
		return nil, err
	}
	a.state.Store(int32(StateRunning))
	win.SetEventCallback(a.handleEvent)
	if gl != nil {
		logger.Log("core", fmt.Sprintf("GL %s (%s, %s)", gl.GPUVersion(), gl.GPURenderer(), gl.GPUVendor()))
	}

	a.OnResize(w, h)
	return a, nil
}

func (a *Application) handleEvent(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		a.input.OnKey(e.Action, e.Key, e.Char)
	case EventPointer:
		a.input.OnPointer(e.Action, e.X, e.Y, e.Button)
	case EventResize:
		if e.W < 1 || e.H < 1 {
			return
		}
		a.OnResize(e.W, e.H)
	case EventIconify:
		a.OnIconify(e.Iconified)
	case EventCloseRequested:
		a.Exit()
	}
}

// OnFrame runs one tick of the loop. It does nothing once the application has quit.
func (a *Application) OnFrame() {
	if a.State() != StateRunning {
		return
	}
	a.inFrame = true
	a.graphics.updateTime()
	if !a.created {
		if a.pendingResize {
			a.pendingResize = false
			a.listener.Resize(a.graphics.Width(), a.graphics.Height())
		}
		a.listener.Create(a)
		a.created = true
	}
	a.tasks.Drain()
	a.input.ProcessEvents()
	a.listener.Render()
	a.input.ResetFrame()
	a.inFrame = false

	if a.quitPending {
		a.quitPending = false
		a.shutdownListener()
	}
}

// OnResize records the new framebuffer size. Before Create the latest size
// is delivered once, ahead of Create; afterwards only Graphics follows it.
func (a *Application) OnResize(width, height int) {
	if a.State() == StateQuit {
		return
	}
	a.graphics.setSize(width, height)
	if !a.created {
		a.pendingResize = true
	}
}

// OnIconify pauses the listener while the window is minimized.
func (a *Application) OnIconify(iconified bool) {
	if a.State() != StateRunning || !a.created || iconified == a.paused {
		return
	}
	a.paused = iconified
	if iconified {
		a.listener.Pause()
	} else {
		a.listener.Resume()
	}
}

// Quit pauses then disposes the listener and stops further frames. Called
// from inside a frame, the listener is shut down once that frame completes.
func (a *Application) Quit() {
	if !a.state.CompareAndSwap(int32(StateRunning), int32(StateQuit)) {
		return
	}
	if a.inFrame {
		a.quitPending = true
		return
	}
	a.shutdownListener()
}

// shutdownListener skips Pause when an iconify already paused the listener.
func (a *Application) shutdownListener() {
	if !a.paused {
		a.paused = true
		a.listener.Pause()
	}
	a.listener.Dispose()
}

// Exit asks Run to return after the current frame. Safe from any goroutine.
func (a *Application) Exit() { a.exit.Store(true) }

// Run pumps the window until it closes or Exit is called, then quits and
// releases the window and the active-application slot.
func (a *Application) Run() error {
	defer func() {
		Uninstall(a)
		a.window.Destroy()
	}()

	cc := a.cfg.ClearColor
	for a.State() == StateRunning && !a.exit.Load() && !a.window.ShouldClose() {
		a.window.PollEvents()

		if gl := a.graphics.GL(); gl != nil {
			gl.Clear(cc[0], cc[1], cc[2], cc[3])
		}
		a.OnFrame()

		a.window.SwapBuffers()
	}

	a.Quit()
	a.logger.Log("core", "application exit")
	return nil
}

// PostRunnable schedules task to run on the loop goroutine at the start of
// the next frame. It reports false for a nil task or once the application
// has quit, since no further frames will drain it.
func (a *Application) PostRunnable(task func()) bool {
	if a.State() == StateQuit {
		return false
	}
	return a.tasks.Post(task)
}

func (a *Application) State() State { return State(a.state.Load()) }

// Created reports whether Listener.Create has run.
func (a *Application) Created() bool { return a.created }

func (a *Application) Window() Window         { return a.window }
func (a *Application) Graphics() *Graphics    { return a.graphics }
func (a *Application) Input() *Input          { return a.input }
func (a *Application) Files() *files.Files    { return a.files }
func (a *Application) Audio() Audio           { return a.audio }
func (a *Application) Logger() logging.Logger { return a.logger }

// Preferences returns the named preference set, shared for the life of the process.
func (a *Application) Preferences(name string) *prefs.Preferences { return a.prefs.Get(name) }

func (a *Application) Log(tag, message string) { a.logger.Log(tag, message) }
func (a *Application) LogError(tag, message string, err error) {
	a.logger.LogError(tag, message, err)
}

// ApplicationType names the backend family an application runs on.
type ApplicationType int

const (
	TypeDesktop ApplicationType = iota
	TypeAndroid
	TypeWeb
)

func (t ApplicationType) String() string {
	switch t {
	case TypeDesktop:
		return "desktop"
	case TypeAndroid:
		return "android"
	case TypeWeb:
		return "web"
	}
	return "unknown"
}

// Type is always TypeDesktop for a GLFW-driven loop.
func (a *Application) Type() ApplicationType { return TypeDesktop }

// Version is the platform API level. Desktop backends report 0.
func (a *Application) Version() int { return 0 }

// HeapUsage returns the bytes of live heap objects.
func (a *Application) HeapUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// NativeHeap returns the bytes of memory obtained from the OS.
func (a *Application) NativeHeap() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}
