// Package terminal provides a tcell backend for the GUI package: one
// terminal cell is one pixel, and text takes one cell per column of width.
package terminal

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	gui "github.com/go-theft-auto/retained-gui"
)

// Cell is one character cell. A zero Rune draws as a space; wide runes are
// followed by a continuation cell with Rune set to -1.
type Cell struct {
	Rune rune
	Fg   gui.Color
	Bg   gui.Color
}

const continuation rune = -1

// Surface is a gui.Surface over a grid of cells.
type Surface struct {
	size  gui.Size
	cells []Cell
	clip  gui.ClipStack
}

// NewSurface allocates a surface of blank cells with a transparent
// background.
func NewSurface(size gui.Size) *Surface {
	size = gui.Size{Width: max(0, size.Width), Height: max(0, size.Height)}
	s := &Surface{size: size, cells: make([]Cell, size.Width*size.Height)}
	s.clip.Reset(gui.Bounds(s))
	return s
}

// Size implements gui.Surface.
func (s *Surface) Size() gui.Size { return s.size }

// Cell returns the cell at x, y. Out of range coordinates return a blank
// cell.
func (s *Surface) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.size.Width || y >= s.size.Height {
		return Cell{}
	}
	return s.cells[y*s.size.Width+x]
}

func (s *Surface) at(x, y int) *Cell {
	return &s.cells[y*s.size.Width+x]
}

// Clear implements gui.Surface.
func (s *Surface) Clear(c gui.Color) {
	for i := range s.cells {
		s.cells[i] = Cell{Bg: c, Fg: c}
	}
}

// Fill implements gui.Surface. Translucent colors blend into the existing
// background and leave the text in place.
func (s *Surface) Fill(r gui.Rect, c gui.Color) {
	r = r.Intersect(s.clip.Current())
	opaque := c.Alpha() == 0xFF
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cell := s.at(x, y)
			if opaque {
				*cell = Cell{Bg: c, Fg: c}
				continue
			}
			cell.Bg = Blend(cell.Bg, c)
		}
	}
}

// Blit implements gui.Surface with nearest-neighbour sampling. Sources can
// be other terminal surfaces or software ImageSurfaces, whose pixels become
// cell backgrounds.
func (s *Surface) Blit(src gui.Surface, srcRect, dst gui.Rect) {
	if srcRect.Empty() || dst.Empty() {
		return
	}
	sample := sampler(src)
	if sample == nil {
		return
	}
	visible := dst.Intersect(s.clip.Current())
	for y := visible.Y; y < visible.Y+visible.H; y++ {
		sy := srcRect.Y + (y-dst.Y)*srcRect.H/dst.H
		for x := visible.X; x < visible.X+visible.W; x++ {
			sx := srcRect.X + (x-dst.X)*srcRect.W/dst.W
			from, ok := sample(sx, sy)
			if !ok {
				continue
			}
			cell := s.at(x, y)
			if from.Bg.Alpha() == 0xFF {
				*cell = from
				continue
			}
			cell.Bg = Blend(cell.Bg, from.Bg)
			if from.Rune != 0 {
				cell.Rune, cell.Fg = from.Rune, from.Fg
			}
		}
	}
}

func sampler(src gui.Surface) func(x, y int) (Cell, bool) {
	switch v := src.(type) {
	case *Surface:
		return func(x, y int) (Cell, bool) {
			if x < 0 || y < 0 || x >= v.size.Width || y >= v.size.Height {
				return Cell{}, false
			}
			return v.cells[y*v.size.Width+x], true
		}
	case *gui.ImageSurface:
		img := v.Image()
		return func(x, y int) (Cell, bool) {
			if !image.Pt(x, y).In(img.Rect) {
				return Cell{}, false
			}
			c := img.RGBAAt(x, y)
			if c.A == 0 {
				return Cell{}, false
			}
			return Cell{Bg: gui.RGBA(c.R, c.G, c.B, c.A)}, true
		}
	}
	return nil
}

// DrawText implements gui.Surface. Every font is drawn one rune per cell
// run; wide runes take two cells.
func (s *Surface) DrawText(at gui.Position, text string, _ gui.Font, c gui.Color) {
	clip := s.clip.Current()
	if at.Y < clip.Y || at.Y >= clip.Y+clip.H {
		return
	}
	x := at.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= clip.X && x+w <= clip.X+clip.W {
			cell := s.at(x, at.Y)
			cell.Rune, cell.Fg = r, c
			if w == 2 {
				next := s.at(x+1, at.Y)
				next.Rune, next.Fg, next.Bg = continuation, c, cell.Bg
			}
		}
		x += w
	}
}

// PushClip implements gui.Surface.
func (s *Surface) PushClip(r gui.Rect) { s.clip.Push(r) }

// PopClip implements gui.Surface.
func (s *Surface) PopClip() { s.clip.Pop() }

// Blend composites over onto under by over's alpha, in RGB space.
func Blend(under, over gui.Color) gui.Color {
	switch over.Alpha() {
	case 0:
		return under
	case 0xFF:
		return over
	}
	t := float64(over.Alpha()) / 255
	mixed := toColorful(under).BlendRgb(toColorful(over), t).Clamped()
	r, g, b := mixed.RGB255()
	return gui.RGBA(r, g, b, max(under.Alpha(), over.Alpha()))
}

func toColorful(c gui.Color) colorful.Color {
	r, g, b, _ := gui.UnpackRGBA(c)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// CellFont measures text in terminal columns, one row high.
type CellFont struct{}

// MeasureText implements gui.Font.
func (CellFont) MeasureText(text string) gui.Size {
	return gui.Size{Width: runewidth.StringWidth(text), Height: 1}
}

// LineHeight implements gui.Font.
func (CellFont) LineHeight() int { return 1 }
