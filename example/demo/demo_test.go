package demo_test

import (
	"slices"
	"testing"

	gui "github.com/go-theft-auto/retained-gui"
	"github.com/go-theft-auto/retained-gui/example/demo"
)

type recorder struct {
	presents [][]gui.Rect
}

func (r *recorder) NewSurface(size gui.Size) (gui.Surface, error) {
	return gui.NewImageSurface(size), nil
}

func (r *recorder) Present(_ gui.Surface, dirty []gui.Rect) error {
	r.presents = append(r.presents, slices.Clone(dirty))
	return nil
}

func TestDemoTicks(t *testing.T) {
	r := &recorder{}
	screen := gui.Size{Width: 640, Height: 480}
	theme, err := gui.NewTheme(gui.GTAPalette(), gui.NewCachedFont(gui.BasicFont()), nil, r)
	if err != nil {
		t.Fatal(err)
	}
	ui, err := gui.New(r, screen, gui.WithTheme(theme))
	if err != nil {
		t.Fatal(err)
	}
	d, err := demo.Build(theme, screen, 4)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if err := d.Attach(ui); err != nil {
		t.Fatal(err)
	}
	if err := ui.Flush(); err != nil {
		t.Fatal(err)
	}
	if len(r.presents) != 1 || r.presents[0] != nil {
		t.Fatalf("expected one full present, got %v", r.presents)
	}

	// "tick 0" and "tick 1" measure the same: only the status line redraws.
	if err := d.Tick(); err != nil {
		t.Fatal(err)
	}
	if err := ui.Flush(); err != nil {
		t.Fatal(err)
	}
	last := r.presents[len(r.presents)-1]
	if len(last) != 1 {
		t.Fatalf("expected one dirty rect, got %v", last)
	}
	if last[0].W >= screen.Width {
		t.Errorf("dirty rect %v covers the whole width", last[0])
	}

	for range 99 {
		if err := d.Tick(); err != nil {
			t.Fatal(err)
		}
		if err := ui.Flush(); err != nil {
			t.Fatal(err)
		}
	}
	if roots := ui.Roots(); roots[len(roots)-1] != d.Dialog {
		t.Error("dialog should be on top after 100 ticks")
	}
}

func TestDemoResize(t *testing.T) {
	r := &recorder{}
	theme, err := gui.NewTheme(gui.DefaultPalette(), gui.BasicFont(), nil, r)
	if err != nil {
		t.Fatal(err)
	}
	ui, err := gui.New(r, gui.Size{Width: 640, Height: 480}, gui.WithTheme(theme))
	if err != nil {
		t.Fatal(err)
	}
	d, err := demo.Build(theme, gui.Size{Width: 640, Height: 480}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Attach(ui); err != nil {
		t.Fatal(err)
	}

	r.presents = nil

	size := gui.Size{Width: 800, Height: 600}
	if err := ui.ResizeWith(size, d.Resize); err != nil {
		t.Fatal(err)
	}
	if got := d.Main.Surface().Size(); got != size {
		t.Errorf("main surface = %v, want %v", got, size)
	}
	if len(r.presents) != 1 || r.presents[0] != nil {
		t.Errorf("presents = %v, want one full present", r.presents)
	}
}
