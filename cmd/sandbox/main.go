package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hubastard/esloop/engine/core"
	glbackend "github.com/hubastard/esloop/engine/gfx/gl"
	"github.com/hubastard/esloop/engine/platform"
	"github.com/hubastard/esloop/engine/prefs"
)

// App spins a triangle, counts launches and quits on Escape.
type App struct {
	app      *core.Application
	tri      *glbackend.Triangle
	settings *prefs.Preferences
	angle    float32
	touches  int
}

func (a *App) Create(app *core.Application) {
	a.app = app
	a.settings = app.Preferences("sandbox")
	launches := a.settings.GetInt("launches", 0) + 1
	a.settings.PutInt("launches", launches)
	app.Log("sandbox", fmt.Sprintf("launch #%d", launches))

	var err error
	a.tri, err = glbackend.NewTriangle()
	if err != nil {
		app.LogError("sandbox", "triangle setup failed", err)
	}

	app.Input().SetProcessor(core.NewInputMultiplexer(
		core.InputFunc(a.handleKeys),
	))

	// Work finished off the loop goroutine is handed back through PostRunnable.
	go func() {
		time.Sleep(2 * time.Second)
		app.PostRunnable(func() { app.Log("sandbox", "background warm-up done") })
	}()
}

func (a *App) handleKeys(ev core.InputEvent) bool {
	k, ok := ev.(core.EventKey)
	if !ok || k.Action != core.KeyDown {
		return false
	}
	switch k.Key {
	case core.KeyEscape:
		a.app.Exit()
		return true
	case core.KeyR:
		a.angle = 0
		return true
	}
	return false
}

// Resize only arrives before Create, so reach the app through the registry.
func (a *App) Resize(w, h int) {
	core.Current().Log("sandbox", fmt.Sprintf("initial size %dx%d", w, h))
}

func (a *App) Render() {
	in := a.app.Input()
	if in.JustTouched() {
		a.touches++
		x, y := in.Pointer()
		a.app.Log("sandbox", fmt.Sprintf("touch #%d at %d,%d", a.touches, x, y))
	}
	speed := float32(1)
	if in.IsKeyDown(core.KeySpace) {
		speed = 4
	}
	a.angle += speed * float32(a.app.Graphics().Delta())
	if a.tri != nil {
		a.tri.Draw(a.angle)
	}
}

func (a *App) Pause() {
	if a.app != nil {
		a.app.Log("sandbox", "pause")
	}
}

func (a *App) Resume() { a.app.Log("sandbox", "resume") }

func (a *App) Dispose() {
	if a.app == nil {
		return // closed before the first frame
	}
	a.settings.PutInt("touches", a.settings.GetInt("touches", 0)+a.touches)
	if err := a.settings.Flush(); err != nil {
		a.app.LogError("sandbox", "saving preferences failed", err)
	}
	if a.tri != nil {
		a.tri.Dispose()
	}
}

func main() {
	configPath := flag.String("config", "esloop.yaml", "optional yaml config file")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}

	app, err := core.New(&App{}, cfg, newWindow, glbackend.NewGL)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
