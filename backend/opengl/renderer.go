// Package opengl draws the datagrid interaction overlay (header bands,
// hover, selection and focus) with OpenGL 4.1.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer uploads a DrawList and draws it with one scissor rectangle per command.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	projLoc  int32
	width    int
	height   int
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec4 Color;
out vec4 FragColor;

void main() {
    FragColor = Color;
}
` + "\x00"

// NewRenderer creates a renderer for a framebuffer of the given size.
// A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create overlay shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(Vertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return r, nil
}

// Resize updates the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws dl and restores the GL state it touched.
func (r *Renderer) Render(dl *DrawList) {
	if dl == nil || len(dl.IdxBuffer) == 0 {
		return
	}

	var lastProgram int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(Vertex{})), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*4, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		x, y, w, h, ok := r.scissor(cmd.ClipRect)
		if cmd.ElemCount == 0 || !ok {
			continue
		}
		gl.Scissor(x, y, w, h)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_INT, uintptr(cmd.IndexOffset)*4)
	}

	gl.BindVertexArray(0)
	gl.UseProgram(uint32(lastProgram))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
}

// scissor converts a top-left clip rectangle to GL's bottom-left scissor
// box, clamped to the framebuffer.
func (r *Renderer) scissor(clip [4]float32) (x, y, w, h int32, ok bool) {
	x1 := max(clip[0], 0)
	y1 := max(clip[1], 0)
	x2 := min(clip[2], float32(r.width))
	y2 := min(clip[3], float32(r.height))
	if x2 <= x1 || y2 <= y1 {
		return 0, 0, 0, 0, false
	}
	return int32(x1), int32(float32(r.height) - y2), int32(x2 - x1), int32(y2 - y1), true
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", string(log))
	}
	return shader, nil
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link shader program: %s", string(log))
	}
	return program, nil
}

// orthoMatrix creates a 2D orthographic projection with y pointing down.
func orthoMatrix(left, right, bottom, top float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -1, 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), 0, 1,
	}
}
