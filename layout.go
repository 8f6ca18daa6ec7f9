package gui

// HAlign is the horizontal placement of a widget inside space larger than
// its minimum size. The zero value centers.
type HAlign uint8

const (
	AlignCenter HAlign = iota // centered (default)
	AlignLeft                 // flush with the left edge
	AlignRight                // flush with the right edge
	AlignFillH                // stretch to the full width
)

// VAlign is the vertical counterpart of HAlign. The zero value centers.
type VAlign uint8

const (
	AlignMiddle VAlign = iota // centered (default)
	AlignTop                  // flush with the top edge
	AlignBottom               // flush with the bottom edge
	AlignFillV                // stretch to the full height
)

// Alignment pairs the two independent axes.
type Alignment struct {
	H HAlign
	V VAlign
}

// withoutFill maps the fill values to centering, for placing content
// inside a rectangle that already absorbed the stretch.
func (a Alignment) withoutFill() Alignment {
	if a.H == AlignFillH {
		a.H = AlignCenter
	}
	if a.V == AlignFillV {
		a.V = AlignMiddle
	}
	return a
}

// Expand declares that a widget wants a share of its parent's surplus space.
type Expand struct {
	Horizontal, Vertical bool
}

// Expand presets.
var (
	ExpandNone       = Expand{}
	ExpandHorizontal = Expand{Horizontal: true}
	ExpandVertical   = Expand{Vertical: true}
	ExpandBoth       = Expand{Horizontal: true, Vertical: true}
)

// Fill makes a widget stretch over its assigned rectangle instead of being
// placed inside it at its minimum size.
type Fill struct {
	Horizontal, Vertical bool
}

// Fill presets.
var (
	FillNone = Fill{}
	FillBoth = Fill{Horizontal: true, Vertical: true}
)

// Option configures the common widget properties at construction.
type Option func(*Base)

// WithMargin sets the widget margin.
func WithMargin(m Margin) Option {
	return func(b *Base) { b.margin = m }
}

// WithAlign sets both alignment axes.
func WithAlign(h HAlign, v VAlign) Option {
	return func(b *Base) { b.align = Alignment{H: h, V: v} }
}

// WithExpand sets the expand flags.
func WithExpand(e Expand) Option {
	return func(b *Base) { b.expand = e }
}

// WithFill sets the fill flags.
func WithFill(f Fill) Option {
	return func(b *Base) { b.fill = f }
}

// WithName labels the widget in logs and tree dumps.
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// axis selects width or height out of the 2D types.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (a axis) cross() axis {
	if a == horizontal {
		return vertical
	}
	return horizontal
}

func (a axis) of(s Size) int {
	if a == horizontal {
		return s.Width
	}
	return s.Height
}

func (a axis) size(main, cross int) Size {
	if a == horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (a axis) pos(main, cross int) Position {
	if a == horizontal {
		return Position{X: main, Y: cross}
	}
	return Position{X: cross, Y: main}
}

func (a axis) expands(e Expand) bool {
	if a == horizontal {
		return e.Horizontal
	}
	return e.Vertical
}

// place resolves where content of the given size sits inside the available
// space on one axis. It returns the offset from the start and the extent.
// When the space is smaller than the content the content keeps its size and
// starts at the origin; drawing past the end is the caller's problem.
func place(avail, content int, fill bool, where int) (offset, extent int) {
	if fill {
		return 0, maxi(avail, content)
	}
	if avail <= content {
		return 0, content
	}
	switch where {
	case alignStart:
		return 0, content
	case alignEnd:
		return avail - content, content
	default:
		return (avail - content) / 2, content
	}
}

const (
	alignMid = iota
	alignStart
	alignEnd
	alignStretch
)

func (h HAlign) where() int {
	switch h {
	case AlignLeft:
		return alignStart
	case AlignRight:
		return alignEnd
	case AlignFillH:
		return alignStretch
	}
	return alignMid
}

func (v VAlign) where() int {
	switch v {
	case AlignTop:
		return alignStart
	case AlignBottom:
		return alignEnd
	case AlignFillV:
		return alignStretch
	}
	return alignMid
}

// Place computes the rectangle a widget's content occupies when rendered at
// pos with avail space. content is the size without margin.
func Place(pos Position, avail, content Size, m Margin, a Alignment, f Fill) Rect {
	inner := avail.Shrink(m)
	hw := a.H.where()
	vw := a.V.where()
	x, w := place(inner.Width, content.Width, f.Horizontal || hw == alignStretch, hw)
	y, h := place(inner.Height, content.Height, f.Vertical || vw == alignStretch, vw)
	return Rect{X: pos.X + m.Left + x, Y: pos.Y + m.Top + y, W: w, H: h}
}
