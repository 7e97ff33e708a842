package glbackend

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/esloop/engine/core"
)

// GL20 implements core.GL on top of the current go-gl context.
type GL20 struct{}

// NewGL loads the GL entry points for the context current on win.
func NewGL(win core.Window) (core.GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("load GL entry points: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	return GL20{}, nil
}

func (GL20) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (GL20) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (GL20) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (GL20) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (GL20) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// Triangle is a single colored triangle, enough to show the loop is alive.
// The vertices are rotated on the CPU and re-uploaded each draw.
type Triangle struct {
	program uint32
	vao     uint32
	vbo     uint32
	verts   [3 * 5]float32 // x, y, r, g, b
}

var (
	trianglePos   = [3][2]float32{{0, 0.6}, {-0.6, -0.6}, {0.6, -0.6}}
	triangleColor = [3][3]float32{{1, 0.2, 0.2}, {0.2, 1, 0.2}, {0.2, 0.2, 1}}
)

func NewTriangle() (*Triangle, error) {
	prog, err := linkProgram(
		stage{gl.VERTEX_SHADER, "#version 330 core\nlayout(location=0) in vec2 p; layout(location=1) in vec3 c; out vec3 vc; void main() { vc = c; gl_Position = vec4(p, 0, 1); }\x00"},
		stage{gl.FRAGMENT_SHADER, "#version 330 core\nin vec3 vc; out vec4 o; void main() { o = vec4(vc, 1); }\x00"},
	)
	if err != nil {
		return nil, err
	}
	t := &Triangle{program: prog}
	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(t.verts)*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 5*4, 2*4)
	gl.BindVertexArray(0)
	return t, nil
}

// Draw renders the triangle rotated by angle radians.
func (t *Triangle) Draw(angle float32) {
	t.rotate(angle)
	gl.UseProgram(t.program)
	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(t.verts)*4, gl.Ptr(&t.verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// rotate fills the vertex buffer with the base triangle turned by angle.
func (t *Triangle) rotate(angle float32) {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	for i, p := range trianglePos {
		v := t.verts[i*5 : i*5+5]
		v[0], v[1] = c*p[0]-s*p[1], s*p[0]+c*p[1]
		copy(v[2:], triangleColor[i][:])
	}
}

func (t *Triangle) Dispose() {
	gl.DeleteBuffers(1, &t.vbo)
	gl.DeleteVertexArrays(1, &t.vao)
	gl.DeleteProgram(t.program)
}

type stage struct {
	kind uint32
	src  string // NUL-terminated
}

// linkProgram compiles every stage and links them. Shader objects are
// released whether or not linking succeeds.
func linkProgram(stages ...stage) (uint32, error) {
	prog := gl.CreateProgram()
	var shaders []uint32
	defer func() {
		for _, sh := range shaders {
			gl.DeleteShader(sh)
		}
	}()
	for _, st := range stages {
		sh := gl.CreateShader(st.kind)
		shaders = append(shaders, sh)
		src, free := gl.Strs(st.src)
		gl.ShaderSource(sh, 1, src, nil)
		free()
		gl.CompileShader(sh)
		if msg, ok := status(sh, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog); !ok {
			gl.DeleteProgram(prog)
			return 0, fmt.Errorf("compile shader %#x: %s", st.kind, msg)
		}
		gl.AttachShader(prog, sh)
	}
	gl.LinkProgram(prog)
	if msg, ok := status(prog, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog); !ok {
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return prog, nil
}

func status(id, param uint32, get func(uint32, uint32, *int32), infoLog func(uint32, int32, *int32, *uint8)) (string, bool) {
	var v int32
	get(id, param, &v)
	if v != gl.FALSE {
		return "", true
	}
	get(id, gl.INFO_LOG_LENGTH, &v)
	if v == 0 {
		return "", false
	}
	buf := make([]uint8, v)
	infoLog(id, v, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00"), false
}
