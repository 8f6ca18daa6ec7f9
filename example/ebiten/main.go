// Command ebiten runs the demo tree on the Ebitengine backend.
//
//	go run ./example/ebiten/ -verbose
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	gui "github.com/go-theft-auto/retained-gui"
	ebitenbackend "github.com/go-theft-auto/retained-gui/backend/ebiten"
	"github.com/go-theft-auto/retained-gui/example/demo"
)

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
	renderer := ebitenbackend.NewRenderer()
	font := ebitenbackend.BasicFont()
	theme, err := gui.NewTheme(gui.DefaultPalette(), gui.NewCachedFont(font), nil, renderer)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	ui, err := gui.New(renderer, size, gui.WithTheme(theme), gui.WithBackground(theme.BackgroundColor))
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

	ebiten.SetWindowSize(size.Width, size.Height)
	ebiten.SetWindowTitle("gui ebiten example")
	ebiten.SetTPS(30)

	game := ebitenbackend.NewGame(ui, renderer, d.Tick)
	game.OnResize(d.Resize)
	return ebiten.RunGame(game)
}
