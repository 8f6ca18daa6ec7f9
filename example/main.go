// Example demonstrates a minimal GUI window with a widget tree and a dialog.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window with the OpenGL renderer, builds the demo
// tree once and then only flushes dirty widgets each frame.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/retained-gui"
	"github.com/go-theft-auto/retained-gui/backend/opengl"
	"github.com/go-theft-auto/retained-gui/example/demo"
)

const windowTitle = "gui example"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	verbose := flag.Bool("verbose", false, "log redraws")
	flag.Parse()
	gui.SetVerbose(*verbose)

	if err := run(gui.Size{Width: *width, Height: *height}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(size gui.Size) error {
	window, err := opengl.NewWindow(windowTitle, size.Width, size.Height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	theme, err := gui.NewTheme(gui.GTAPalette(), gui.NewCachedFont(gui.BasicFont()), nil, window.Renderer())
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	ui, err := gui.New(window.Renderer(), size, gui.WithTheme(theme), gui.WithBackground(theme.BackgroundColor))
	if err != nil {
		return err
	}

	d, err := demo.Build(theme, size, 8)
	if err != nil {
		return fmt.Errorf("build demo: %w", err)
	}
	if err := d.Attach(ui); err != nil {
		return err
	}
	window.Attach(ui, d.Resize)

	if err := ui.Redraw(); err != nil {
		return fmt.Errorf("gui render: %w", err)
	}

	// Main loop.
	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(1.0 / 30.0)

		if err := d.Tick(); err != nil {
			return err
		}
		if err := ui.Flush(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
	}

	return nil
}
