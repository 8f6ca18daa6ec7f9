package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	gui "github.com/go-theft-auto/retained-gui"
)

// ErrUnsupportedSurface is returned by Present for screens not allocated by
// this renderer.
var ErrUnsupportedSurface = errors.New("terminal: screen is not a *terminal.Surface")

// Renderer implements gui.Renderer on a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer presenting to an initialized tcell screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Size returns the terminal size in cells.
func (r *Renderer) Size() gui.Size {
	w, h := r.screen.Size()
	return gui.Size{Width: w, Height: h}
}

// NewSurface implements gui.Renderer.
func (r *Renderer) NewSurface(size gui.Size) (gui.Surface, error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("terminal: surface %dx%d: %w", size.Width, size.Height, gui.ErrNegativeSize)
	}
	return NewSurface(size), nil
}

// Present implements gui.Renderer. Only the dirty cells are sent to the
// screen.
func (r *Renderer) Present(screen gui.Surface, dirty []gui.Rect) error {
	s, ok := screen.(*Surface)
	if !ok {
		return ErrUnsupportedSurface
	}
	bounds := gui.Bounds(s)
	if dirty == nil {
		r.screen.Clear()
		dirty = []gui.Rect{bounds}
	}
	for _, d := range dirty {
		d = d.Intersect(bounds)
		for y := d.Y; y < d.Y+d.H; y++ {
			for x := d.X; x < d.X+d.W; x++ {
				cell := s.Cell(x, y)
				if cell.Rune == continuation {
					continue
				}
				ch := cell.Rune
				if ch == 0 {
					ch = ' '
				}
				r.screen.SetContent(x, y, ch, nil, Style(cell))
			}
		}
	}
	r.screen.Show()
	return nil
}

// Style converts cell colors to a tcell style. Transparent colors keep the
// terminal default.
func Style(c Cell) tcell.Style {
	style := tcell.StyleDefault
	if c.Fg.Alpha() != 0 {
		style = style.Foreground(tcellColor(c.Fg))
	}
	if c.Bg.Alpha() != 0 {
		style = style.Background(tcellColor(c.Bg))
	}
	return style
}

func tcellColor(c gui.Color) tcell.Color {
	r, g, b, _ := gui.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
