package ebiten

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	gui "github.com/go-theft-auto/retained-gui"
)

// Font is a gui.Font measuring and drawing with an ebiten text face.
type Font struct {
	face       text.Face
	lineHeight int
}

// NewFont wraps an ebiten text face.
func NewFont(face text.Face) *Font {
	m := face.Metrics()
	return &Font{
		face:       face,
		lineHeight: int(math.Ceil(m.HAscent + m.HDescent + m.HLineGap)),
	}
}

// BasicFont returns the built-in 7x13 bitmap face.
func BasicFont() *Font {
	return NewFont(text.NewGoXFace(basicfont.Face7x13))
}

// Face returns the wrapped face.
func (f *Font) Face() text.Face { return f.face }

// MeasureText implements gui.Font.
func (f *Font) MeasureText(s string) gui.Size {
	if s == "" {
		return gui.Size{Height: f.lineHeight}
	}
	w, _ := text.Measure(s, f.face, float64(f.lineHeight))
	return gui.Size{Width: int(math.Ceil(w)), Height: f.lineHeight}
}

// LineHeight implements gui.Font.
func (f *Font) LineHeight() int { return f.lineHeight }

func (f *Font) draw(dst *ebiten.Image, at gui.Position, s string, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = float64(f.lineHeight)
	text.Draw(dst, s, f.face, op)
}

// faces maps x/image faces of other backends to ebiten faces.
var (
	facesMu sync.Mutex
	faces   = make(map[*gui.FaceFont]*Font)
)

// faceOf returns an ebiten font for any gui.Font: its own fonts as they are,
// x/image faces converted once, anything else drawn with BasicFont.
func faceOf(f gui.Font) *Font {
	switch v := gui.UnwrapFont(f).(type) {
	case *Font:
		return v
	case *gui.FaceFont:
		facesMu.Lock()
		defer facesMu.Unlock()
		if ef, ok := faces[v]; ok {
			return ef
		}
		ef := NewFont(text.NewGoXFace(v.Face()))
		faces[v] = ef
		return ef
	}
	return defaultFont()
}

var defaultFont = sync.OnceValue(BasicFont)
