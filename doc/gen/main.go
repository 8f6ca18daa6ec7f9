// Command gen renders every widget with sample data on the software surface
// and saves JPEG screenshots, plus a tree dump for each, to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	gui "github.com/go-theft-auto/retained-gui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// softRenderer presents nothing; the screen surface is read back directly.
type softRenderer struct{}

func (softRenderer) NewSurface(size gui.Size) (gui.Surface, error) {
	return gui.NewImageSurface(size), nil
}

func (softRenderer) Present(gui.Surface, []gui.Rect) error { return nil }

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                                         // filename without extension
	width  int                                            // screen width
	height int                                            // screen height
	build  func(theme *gui.Theme, root *gui.Root) error // fills the root
}

func run() error {
	theme, err := gui.NewTheme(gui.GTAPalette(), gui.NewCachedFont(gui.BasicFont()), nil, softRenderer{})
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(theme, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(theme *gui.Theme, s screenshot, outDir string) error {
	size := gui.Size{Width: s.width, Height: s.height}

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui, err := gui.New(softRenderer{}, size, gui.WithTheme(theme), gui.WithBackground(theme.BackgroundColor))
	if err != nil {
		return err
	}
	root, err := gui.NewRoot(size, gui.Position{}, gui.WithName(s.name))
	if err != nil {
		return err
	}
	root.SetBackground(theme.PanelColor)
	if err := s.build(theme, root); err != nil {
		return err
	}
	if err := ui.AddRoot(root); err != nil {
		return err
	}
	if err := ui.Redraw(); err != nil {
		return err
	}

	dump := filepath.Join(outDir, s.name+".txt")
	if err := os.WriteFile(dump, []byte(gui.Dump(root)), 0o644); err != nil {
		return err
	}

	screen, ok := ui.Screen().(*gui.ImageSurface)
	if !ok {
		return fmt.Errorf("screen is %T", ui.Screen())
	}

	// Encode JPEG
	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, screen.Image(), &jpeg.Options{Quality: 90})
}

func rects(sizes []gui.Size, colors []gui.Color, expand []bool) ([]gui.Widget, error) {
	out := make([]gui.Widget, len(sizes))
	for i, size := range sizes {
		var opts []gui.Option
		if expand[i] {
			opts = append(opts, gui.WithExpand(gui.ExpandBoth), gui.WithFill(gui.FillBoth))
		}
		r, err := gui.NewColorRect(size, colors[i%len(colors)], opts...)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

var swatches = []gui.Color{gui.ColorRed, gui.RGBA(0, 150, 200, 255), gui.ColorYellow}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	square := gui.Size{Width: 50, Height: 50}

	row := func(expand ...bool) func(*gui.Theme, *gui.Root) error {
		return func(_ *gui.Theme, root *gui.Root) error {
			box, err := gui.NewHBox(gui.WithFill(gui.FillBoth))
			if err != nil {
				return err
			}
			children, err := rects([]gui.Size{square, square, square}, swatches, expand)
			if err != nil {
				return err
			}
			if err := box.Add(children...); err != nil {
				return err
			}
			return root.SetChild(box)
		}
	}

	return []screenshot{
		{name: "hbox-middle-expands", width: 450, height: 120, build: row(false, true, false)},
		{name: "hbox-all-expand", width: 450, height: 120, build: row(true, true, true)},
		{name: "hbox-none-expand", width: 450, height: 120, build: row(false, false, false)},
		{
			name: "vbox-align", width: 300, height: 200,
			build: func(theme *gui.Theme, root *gui.Root) error {
				box, err := gui.NewVBox(gui.WithMargin(gui.Uniform(gui.SpaceMD)), gui.WithFill(gui.FillBoth))
				if err != nil {
					return err
				}
				for _, h := range []gui.HAlign{gui.AlignLeft, gui.AlignCenter, gui.AlignRight} {
					l, err := gui.NewLabel(fmt.Sprintf("aligned %d", h), theme.Font, theme.TextColor,
						gui.WithAlign(h, gui.AlignMiddle), gui.WithExpand(gui.ExpandBoth))
					if err != nil {
						return err
					}
					l.SetBackground(theme.ButtonColor)
					if err := box.Add(l); err != nil {
						return err
					}
				}
				return root.SetChild(box)
			},
		},
		{
			name: "text-label", width: 320, height: 140,
			build: func(theme *gui.Theme, root *gui.Root) error {
				t, err := gui.NewTextLabel("This is wrapped text that will break across lines when it reaches the edge of the available width.",
					theme.Font, theme.TextColor, 280, gui.WrapModeWord)
				if err != nil {
					return err
				}
				return root.SetChild(t)
			},
		},
		{
			name: "border", width: 240, height: 160,
			build: func(theme *gui.Theme, root *gui.Root) error {
				border, err := gui.NewBorder(gui.Size{Width: 200, Height: 120}, theme.Button.Pressed,
					gui.WithMargin(gui.Uniform(gui.SpaceMD)))
				if err != nil {
					return err
				}
				inner, err := gui.NewColorRect(gui.Size{Width: 20, Height: 20}, gui.ColorYellow,
					gui.WithMargin(gui.Uniform(5)))
				if err != nil {
					return err
				}
				if err := border.SetChild(inner); err != nil {
					return err
				}
				return root.SetChild(border)
			},
		},
		{
			name: "menu", width: 240, height: 160,
			build: func(theme *gui.Theme, root *gui.Root) error {
				m, err := gui.NewMenu("Main Menu", []string{"Start Game", "Options", "Quit"}, theme,
					gui.WithMargin(gui.Uniform(gui.SpaceMD)))
				if err != nil {
					return err
				}
				m.Select(1)
				return root.SetChild(m)
			},
		},
	}
}
