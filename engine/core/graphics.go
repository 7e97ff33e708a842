package core

import "time"

// Graphics carries the GL entry points plus the size and timing fields
// the loop updates every frame.
type Graphics struct {
	gl     GL
	width  int
	height int

	now       func() time.Time
	last      time.Time
	delta     time.Duration
	frameID   uint64
	fps       int
	fpsFrames int
	fpsStart  time.Time
}

func NewGraphics(gl GL, width, height int) *Graphics {
	return &Graphics{gl: gl, width: width, height: height, now: time.Now}
}

func (g *Graphics) GL() GL                   { return g.gl }
func (g *Graphics) Width() int               { return g.width }
func (g *Graphics) Height() int              { return g.height }
func (g *Graphics) DeltaTime() time.Duration { return g.delta }
func (g *Graphics) FrameID() uint64          { return g.frameID }
func (g *Graphics) FramesPerSecond() int     { return g.fps }
func (g *Graphics) Delta() float64           { return g.delta.Seconds() }

// setSize updates the dimensions and the GL viewport.
func (g *Graphics) setSize(w, h int) {
	g.width, g.height = w, h
	if g.gl != nil && w > 0 && h > 0 {
		g.gl.Viewport(0, 0, int32(w), int32(h))
	}
}

// updateTime advances the frame clock. The first frame reports a zero delta.
func (g *Graphics) updateTime() {
	now := g.now()
	if g.last.IsZero() {
		g.fpsStart = now
	} else {
		g.delta = now.Sub(g.last)
	}
	g.last = now
	g.frameID++

	g.fpsFrames++
	if now.Sub(g.fpsStart) >= time.Second {
		g.fps = g.fpsFrames
		g.fpsFrames = 0
		g.fpsStart = now
	}
}
