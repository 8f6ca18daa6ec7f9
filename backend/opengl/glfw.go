package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/retained-gui"
)

var logger = gui.Logger("opengl")

// Window is a GLFW window with a current OpenGL 4.1 context and a Renderer
// presenting into it. GLFW must run on the main thread; lock it in init.
type Window struct {
	*glfw.Window
	renderer *Renderer
}

// WindowOption configures window creation.
type WindowOption func(*windowConfig)

type windowConfig struct {
	visible bool
	vsync   bool
}

// Hidden creates the window invisible, for offscreen rendering.
func Hidden() WindowOption {
	return func(c *windowConfig) { c.visible = false }
}

// NoVSync disables waiting for the vertical blank on swap.
func NoVSync() WindowOption {
	return func(c *windowConfig) { c.vsync = false }
}

// NewWindow initializes GLFW and OpenGL, creates a window and a renderer
// that swaps its buffers on every present. Call Destroy when done.
func NewWindow(title string, width, height int, opts ...WindowOption) (*Window, error) {
	cfg := windowConfig{visible: true, vsync: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !cfg.visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	}

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	renderer, err := NewRenderer(width, height)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gui renderer: %w", err)
	}
	renderer.swap = window.SwapBuffers

	return &Window{Window: window, renderer: renderer}, nil
}

// Renderer returns the renderer presenting into the window.
func (w *Window) Renderer() *Renderer { return w.renderer }

// Size returns the window size in screen coordinates.
func (w *Window) Size() gui.Size {
	width, height := w.GetSize()
	return gui.Size{Width: width, Height: height}
}

// Attach makes window resizes resize ui's screen. onResize, when not nil,
// adapts the application's roots to the new size before the single redraw.
func (w *Window) Attach(ui *gui.GUI, onResize func(gui.Size) error) {
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, fbw, fbh int) {
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
	})
	w.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		size := gui.Size{Width: width, Height: height}
		w.renderer.Resize(width, height)
		if err := ui.ResizeWith(size, onResize); err != nil {
			logger.Error("resize", "width", width, "height", height, "err", err)
		}
	})
}

// Destroy releases the renderer, the window and GLFW.
func (w *Window) Destroy() {
	w.renderer.Delete()
	w.Window.Destroy()
	glfw.Terminate()
}
