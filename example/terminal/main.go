// Command terminal runs the demo tree in a terminal with the tcell backend.
// Press q or Escape to quit.
//
//	go run ./example/terminal/
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	gui "github.com/go-theft-auto/retained-gui"
	"github.com/go-theft-auto/retained-gui/backend/terminal"
	"github.com/go-theft-auto/retained-gui/example/demo"
)

func main() {
	verbose := flag.Bool("verbose", false, "log redraws to stderr")
	interval := flag.Duration("tick", 100*time.Millisecond, "time between demo ticks")
	flag.Parse()
	gui.SetVerbose(*verbose)

	if err := run(*interval); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()

	renderer := terminal.NewRenderer(screen)
	size := renderer.Size()
	theme, err := gui.NewTheme(gui.DefaultPalette(), terminal.CellFont{}, nil, renderer)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	theme.ButtonPadding = gui.Symmetric(1, 0)
	ui, err := gui.New(renderer, size, gui.WithTheme(theme), gui.WithBackground(theme.BackgroundColor))
	if err != nil {
		return err
	}

	d, err := demo.Build(theme, size, 1)
	if err != nil {
		return fmt.Errorf("build demo: %w", err)
	}
	if err := d.Attach(ui); err != nil {
		return err
	}
	if err := ui.Redraw(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				size := gui.Size{Width: w, Height: h}
				if err := ui.ResizeWith(size, d.Resize); err != nil {
					return err
				}
				screen.Sync()
			}
		case <-ticker.C:
			if err := d.Tick(); err != nil {
				return err
			}
			if err := ui.Flush(); err != nil {
				return err
			}
		}
	}
}
