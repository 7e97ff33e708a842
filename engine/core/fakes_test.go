package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hubastard/esloop/engine/logging"
)

type fakeWindow struct {
	w, h       int
	cb         func(Event)
	polls      int
	closeAfter int // ShouldClose turns true after this many polls; 0 never
	onPoll     func(n int)
	swaps      int
	destroyed  bool
}

func (f *fakeWindow) PollEvents() {
	f.polls++
	if f.onPoll != nil {
		f.onPoll(f.polls)
	}
}
func (f *fakeWindow) SwapBuffers()                    { f.swaps++ }
func (f *fakeWindow) ShouldClose() bool               { return f.closeAfter > 0 && f.polls >= f.closeAfter }
func (f *fakeWindow) RequestClose()                   { f.closeAfter = f.polls }
func (f *fakeWindow) FramebufferSize() (int, int)     { return f.w, f.h }
func (f *fakeWindow) SetTitle(string)                 {}
func (f *fakeWindow) SetEventCallback(cb func(Event)) { f.cb = cb }
func (f *fakeWindow) Destroy()                        { f.destroyed = true }

func (f *fakeWindow) emit(ev Event) {
	if f.cb != nil {
		f.cb(ev)
	}
}

type fakeGL struct {
	viewports [][2]int32
	clears    int
}

func (g *fakeGL) Viewport(x, y, w, h int32) { g.viewports = append(g.viewports, [2]int32{w, h}) }
func (g *fakeGL) Clear(r, gg, b, a float32) { g.clears++ }
func (g *fakeGL) GPUVendor() string         { return "test" }
func (g *fakeGL) GPURenderer() string       { return "fake" }
func (g *fakeGL) GPUVersion() string        { return "0.0" }

// recorder logs every listener callback in order.
type recorder struct {
	calls    []string
	app      *Application
	onCreate func(app *Application)
	onRender func()
}

func (r *recorder) Create(app *Application) {
	r.app = app
	r.calls = append(r.calls, "create")
	if r.onCreate != nil {
		r.onCreate(app)
	}
}
func (r *recorder) Resize(w, h int) { r.calls = append(r.calls, fmt.Sprintf("resize %dx%d", w, h)) }
func (r *recorder) Render() {
	r.calls = append(r.calls, "render")
	if r.onRender != nil {
		r.onRender()
	}
}
func (r *recorder) Pause()   { r.calls = append(r.calls, "pause") }
func (r *recorder) Resume()  { r.calls = append(r.calls, "resume") }
func (r *recorder) Dispose() { r.calls = append(r.calls, "dispose") }

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name || strings.HasPrefix(c, name+" ") {
			n++
		}
	}
	return n
}

func (r *recorder) String() string { return strings.Join(r.calls, ", ") }

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 640, 480
	cfg.PrefsDir = t.TempDir()
	cfg.AssetsDir = t.TempDir()
	cfg.Logger = logging.Noop{}
	return cfg
}

// newTestApp builds an Application over a fake window and GL and
// releases the active slot when the test ends.
func newTestApp(t *testing.T, l Listener) (*Application, *fakeWindow, *fakeGL) {
	t.Helper()
	win := &fakeWindow{w: 800, h: 600}
	gl := &fakeGL{}
	app, err := New(l, testConfig(t),
		func(Config) (Window, error) { return win, nil },
		func(Window) (GL, error) { return gl, nil })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { Uninstall(app) })
	return app, win, gl
}
