package gui

import "image/color"

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference, clamped to zero.
func (s Size) Sub(other Size) Size {
	return Size{Width: maxi(0, s.Width-other.Width), Height: maxi(0, s.Height-other.Height)}
}

// Grow returns s expanded by the margin on every side.
func (s Size) Grow(m Margin) Size {
	return Size{Width: s.Width + m.Horizontal(), Height: s.Height + m.Vertical()}
}

// Shrink returns s reduced by the margin, clamped to zero.
func (s Size) Shrink(m Margin) Size {
	return s.Sub(Size{Width: m.Horizontal(), Height: m.Vertical()})
}

// Max returns the component-wise maximum.
func (s Size) Max(other Size) Size {
	return Size{Width: maxi(s.Width, other.Width), Height: maxi(s.Height, other.Height)}
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Position is a pixel offset relative to a surface origin.
type Position struct {
	X, Y int
}

// Add returns the sum of two positions.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two positions.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// RectAt builds a Rect from a position and a size.
func RectAt(p Position, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.Width, H: s.Height}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Position { return Position{X: r.X, Y: r.Y} }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{Width: r.W, Height: r.H} }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlapping area, or the zero Rect if there is none.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := maxi(r.X, other.X), maxi(r.Y, other.Y)
	x1, y1 := mini(r.X+r.W, other.X+other.W), mini(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both. Empty inputs are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0, y0 := mini(r.X, other.X), mini(r.Y, other.Y)
	x1, y1 := maxi(r.X+r.W, other.X+other.W), maxi(r.Y+r.H, other.Y+other.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Offset returns r translated by p.
func (r Rect) Offset(p Position) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Inset returns r shrunk by the margin on every side, clamped to zero size.
func (r Rect) Inset(m Margin) Rect {
	s := r.Size().Shrink(m)
	return Rect{X: r.X + m.Left, Y: r.Y + m.Top, W: s.Width, H: s.Height}
}

// Margin is spacing around a widget. It is fixed once attached to a widget.
type Margin struct {
	Left, Right, Top, Bottom int
}

// Uniform returns a margin with the same value on every side.
func Uniform(n int) Margin {
	return Margin{Left: n, Right: n, Top: n, Bottom: n}
}

// Symmetric returns a margin with separate horizontal and vertical values.
func Symmetric(h, v int) Margin {
	return Margin{Left: h, Right: h, Top: v, Bottom: v}
}

// Horizontal returns Left+Right.
func (m Margin) Horizontal() int { return m.Left + m.Right }

// Vertical returns Top+Bottom.
func (m Margin) Vertical() int { return m.Top + m.Bottom }

// Add returns the side-wise sum of two margins.
func (m Margin) Add(other Margin) Margin {
	return Margin{
		Left:   m.Left + other.Left,
		Right:  m.Right + other.Right,
		Top:    m.Top + other.Top,
		Bottom: m.Bottom + other.Bottom,
	}
}

func (m Margin) valid() bool {
	return m.Left >= 0 && m.Right >= 0 && m.Top >= 0 && m.Bottom >= 0
}

// Color is an RGBA color packed as 0xAABBGGRR.
type Color uint32

// Color constants (RGBA packed as 0xAABBGGRR)
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorYellow      Color = 0xFF00FFFF
	ColorCyan        Color = 0xFFFFFF00
	ColorMagenta     Color = 0xFFFF00FF
	ColorGray        Color = 0xFF808080
	ColorDarkGray    Color = 0xFF404040
	ColorLightGray   Color = 0xFFC0C0C0
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c Color) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// NRGBA converts to the image/color representation used by the backends.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
