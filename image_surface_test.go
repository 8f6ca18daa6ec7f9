package gui_test

import (
	"image"
	"image/color"
	"testing"

	gui "github.com/go-theft-auto/retained-gui"
)

func rgba(c gui.Color) color.RGBA {
	r, g, b, a := gui.UnpackRGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func TestImageSurfaceFill(t *testing.T) {
	s := gui.NewImageSurface(gui.Size{Width: 10, Height: 10})
	s.Clear(gui.ColorBlack)
	s.Fill(gui.Rect{X: 2, Y: 2, W: 3, H: 3}, gui.ColorRed)

	img := s.Image()
	tests := []struct {
		x, y int
		want gui.Color
	}{
		{2, 2, gui.ColorRed},
		{4, 4, gui.ColorRed},
		{5, 5, gui.ColorBlack},
		{0, 0, gui.ColorBlack},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != rgba(tt.want) {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, rgba(tt.want))
		}
	}
}

func TestImageSurfaceClip(t *testing.T) {
	s := gui.NewImageSurface(gui.Size{Width: 10, Height: 10})
	s.Clear(gui.ColorBlack)

	s.PushClip(gui.Rect{X: 0, Y: 0, W: 5, H: 10})
	s.PushClip(gui.Rect{X: 3, Y: 0, W: 10, H: 10})
	s.Fill(gui.Rect{W: 10, H: 10}, gui.ColorRed)
	s.PopClip()
	s.PopClip()
	s.PopClip() // extra pops are ignored

	img := s.Image()
	for x := range 10 {
		want := gui.ColorBlack
		if x >= 3 && x < 5 {
			want = gui.ColorRed
		}
		if got := img.RGBAAt(x, 5); got != rgba(want) {
			t.Errorf("pixel (%d,5) = %v, want %v", x, got, rgba(want))
		}
	}

	// Clear ignores the clip.
	s.PushClip(gui.Rect{W: 1, H: 1})
	s.Clear(gui.ColorBlue)
	if got := img.RGBAAt(9, 9); got != rgba(gui.ColorBlue) {
		t.Errorf("Clear() respected the clip: %v", got)
	}
}

func TestImageSurfaceTranslucentFill(t *testing.T) {
	s := gui.NewImageSurface(gui.Size{Width: 1, Height: 1})
	s.Clear(gui.ColorBlack)
	s.Fill(gui.Rect{W: 1, H: 1}, gui.RGBA(255, 255, 255, 128))

	got := s.Image().RGBAAt(0, 0)
	if got.A != 255 || got.R < 120 || got.R > 135 {
		t.Errorf("blended pixel = %v, want half grey", got)
	}
}

func TestImageSurfaceBlit(t *testing.T) {
	src := gui.NewImageSurface(gui.Size{Width: 2, Height: 2})
	src.Clear(gui.ColorRed)

	tests := []struct {
		name string
		dst  gui.Rect
	}{
		{"same size", gui.Rect{X: 1, Y: 1, W: 2, H: 2}},
		{"scaled", gui.Rect{X: 2, Y: 2, W: 6, H: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := gui.NewImageSurface(gui.Size{Width: 10, Height: 10})
			s.Clear(gui.ColorBlack)
			s.Blit(src, gui.Bounds(src), tt.dst)

			img := s.Image()
			for y := range 10 {
				for x := range 10 {
					want := gui.ColorBlack
					if tt.dst.Contains(gui.Position{X: x, Y: y}) {
						want = gui.ColorRed
					}
					if got := img.RGBAAt(x, y); got != rgba(want) {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, rgba(want))
					}
				}
			}
		})
	}
}

func TestImageSurfaceBlitIgnoresForeignSources(t *testing.T) {
	s := gui.NewImageSurface(gui.Size{Width: 4, Height: 4})
	s.Clear(gui.ColorBlack)
	s.Blit(gui.NewDrawList(gui.Size{Width: 4, Height: 4}), gui.Rect{W: 4, H: 4}, gui.Rect{W: 4, H: 4})
	if got := s.Image().RGBAAt(0, 0); got != rgba(gui.ColorBlack) {
		t.Errorf("pixel changed to %v", got)
	}
}

func TestImageSurfaceFrom(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.NRGBA{G: 255, A: 255})

	s := gui.ImageSurfaceFrom(src)
	if got := s.Size(); got != (gui.Size{Width: 3, Height: 2}) {
		t.Errorf("Size() = %v", got)
	}
	if got := s.Image().RGBAAt(0, 0); got != rgba(gui.ColorGreen) {
		t.Errorf("pixel (0,0) = %v, want green", got)
	}
}

func TestImageSurfaceDrawText(t *testing.T) {
	s := gui.NewImageSurface(gui.Size{Width: 40, Height: 20})
	s.Clear(gui.ColorBlack)

	// A foreign font falls back to the bitmap face.
	s.PushClip(gui.Rect{W: 20, H: 20})
	s.DrawText(gui.Position{X: 2, Y: 2}, "HHHHH", &monoFont{}, gui.ColorWhite)
	s.PopClip()

	img := s.Image()
	lit := 0
	for y := range 20 {
		for x := range 40 {
			if img.RGBAAt(x, y) == rgba(gui.ColorBlack) {
				continue
			}
			if x >= 20 {
				t.Fatalf("text drawn outside the clip at (%d,%d)", x, y)
			}
			lit++
		}
	}
	if lit == 0 {
		t.Error("no text pixels drawn")
	}
}

func TestImageSurfaceGeneration(t *testing.T) {
	s := gui.NewImageSurface(gui.Size{Width: 10, Height: 10})
	if got := s.Generation(); got != 0 {
		t.Fatalf("Generation() of a new surface = %d, want 0", got)
	}

	s.Fill(gui.Rect{X: 20, Y: 20, W: 5, H: 5}, gui.ColorRed)
	if got := s.Generation(); got != 0 {
		t.Errorf("fill outside the surface changed the generation to %d", got)
	}

	steps := []struct {
		name string
		draw func()
	}{
		{"Fill", func() { s.Fill(gui.Rect{W: 5, H: 5}, gui.ColorRed) }},
		{"Clear", func() { s.Clear(gui.ColorBlack) }},
		{"DrawText", func() { s.DrawText(gui.Position{}, "a", gui.BasicFont(), gui.ColorWhite) }},
		{"Touch", s.Touch},
	}
	for _, step := range steps {
		before := s.Generation()
		step.draw()
		if s.Generation() == before {
			t.Errorf("%s did not advance the generation", step.name)
		}
	}
}
