// Package opengl provides an OpenGL 4.1 backend for the GUI package.
//
// Widgets draw into software ImageSurfaces. Present uploads the changed
// areas of the screen surface into a texture and draws it as one quad.
package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/retained-gui"
)

// ErrUnsupportedSurface is returned by Present for screens not allocated by
// this renderer.
var ErrUnsupportedSurface = errors.New("opengl: screen is not a *gui.ImageSurface")

// vertex is a screen-space corner of the quad with its texture coordinate.
type vertex struct {
	X, Y float32
	U, V float32
}

// Renderer implements gui.Renderer using OpenGL.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	screen   uint32 // screen texture
	projLoc  int32
	texLoc   int32

	texWidth, texHeight int
	viewport            gui.Size

	// swap shows the back buffer; set by Window.
	swap func()
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D screenTexture;

void main() {
    FragColor = texture(screenTexture, TexCoord);
}
` + "\x00"

// NewRenderer creates a new OpenGL GUI renderer. A GL context must be
// current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{viewport: gui.Size{Width: width, Height: height}}

	// Create shader program
	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// Get uniform locations
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("screenTexture\x00"))

	// Create VAO
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// Create VBO
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats)
	stride := int32(unsafe.Sizeof(vertex{}))

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.U))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	// Create screen texture
	gl.GenTextures(1, &r.screen)
	gl.BindTexture(gl.TEXTURE_2D, r.screen)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

// NewSurface implements gui.Renderer.
func (r *Renderer) NewSurface(size gui.Size) (gui.Surface, error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("opengl: surface %dx%d: %w", size.Width, size.Height, gui.ErrNegativeSize)
	}
	return gui.NewImageSurface(size), nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.viewport = gui.Size{Width: width, Height: height}
}

// Present implements gui.Renderer. Only the dirty areas are uploaded; the
// whole texture is drawn every time.
func (r *Renderer) Present(screen gui.Surface, dirty []gui.Rect) error {
	img, ok := screen.(*gui.ImageSurface)
	if !ok {
		return ErrUnsupportedSurface
	}
	size := img.Size()
	if size.Width == 0 || size.Height == 0 {
		return nil
	}
	rgba := img.Image()

	gl.BindTexture(gl.TEXTURE_2D, r.screen)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(rgba.Stride/4))

	if r.texWidth != size.Width || r.texHeight != size.Height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.Width), int32(size.Height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
		r.texWidth, r.texHeight = size.Width, size.Height
		dirty = nil
	} else {
		if dirty == nil {
			dirty = []gui.Rect{gui.Bounds(img)}
		}
		for _, d := range dirty {
			d = d.Intersect(gui.Bounds(img))
			if d.Empty() {
				continue
			}
			off := rgba.PixOffset(d.X, d.Y)
			gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(d.X), int32(d.Y), int32(d.W), int32(d.H),
				gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&rgba.Pix[off]))
		}
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	r.draw(size)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if r.swap != nil {
		r.swap()
	}
	return nil
}

// draw renders the screen texture over the viewport.
func (r *Renderer) draw(size gui.Size) {
	// Save GL state
	var lastProgram int32
	var blendEnabled, depthEnabled, cullEnabled, scissorEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	// Setup render state
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	// Set projection matrix (orthographic)
	proj := orthoMatrix(0, float32(r.viewport.Width), float32(r.viewport.Height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	w, h := float32(size.Width), float32(size.Height)
	quad := [4]vertex{
		{X: 0, Y: 0, U: 0, V: 0},
		{X: w, Y: 0, U: 1, V: 0},
		{X: 0, Y: h, U: 0, V: 1},
		{X: w, Y: h, U: 1, V: 1},
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*int(unsafe.Sizeof(vertex{})), gl.Ptr(&quad[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quad)))
	gl.BindVertexArray(0)

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	restore(gl.BLEND, blendEnabled)
	restore(gl.DEPTH_TEST, depthEnabled)
	restore(gl.CULL_FACE, cullEnabled)
	restore(gl.SCISSOR_TEST, scissorEnabled)
}

func restore(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.screen != 0 {
		gl.DeleteTextures(1, &r.screen)
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

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
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
		return 0, errors.New(string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
