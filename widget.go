package gui

import "weak"

// Widget is a node of the widget tree.
//
// Every widget reports the smallest space it can occupy (MinSize, inclusive
// of its margin) and draws itself into a rectangle handed down by its parent
// (Render). Concrete widgets embed Base, which carries the common layout
// properties and the render bookkeeping.
type Widget interface {
	// MinSize returns the smallest size this widget can be rendered at,
	// including its margin. It has no side effects and is recomputed from
	// the current content on every call.
	MinSize() Size

	// Render draws the widget onto s inside the area at pos of size avail
	// (margin included) and returns the rectangle it occupied, excluding the
	// margin. When avail is smaller than MinSize the widget renders at its
	// minimum and overflows; it never fails.
	Render(s Surface, pos Position, avail Size) Rect

	// Expand reports on which axes the widget wants surplus space.
	Expand() Expand

	// Parent returns the owning container, or nil for a detached widget.
	Parent() Widget

	// RenderRect returns the last rectangle occupied; ok is false before
	// the first render.
	RenderRect() (r Rect, ok bool)

	// ID returns the process-unique widget identifier.
	ID() ID

	base() *Base
}

// Base holds the properties shared by all widgets. Embed it and call Init
// from the constructor.
type Base struct {
	id     ID
	name   string
	self   Widget
	parent weak.Pointer[Base]

	margin Margin
	align  Alignment
	expand Expand
	fill   Fill

	// Render bookkeeping, written only by Rendered.
	rect      Rect
	rendered  bool
	lastPos   Position
	lastAvail Size
	lastMin   Size
}

// Init binds the Base to the widget embedding it and applies options.
// It returns ErrNegativeMargin for margins with a negative side.
func (b *Base) Init(self Widget, opts ...Option) error {
	b.id = newID()
	b.self = self
	for _, opt := range opts {
		opt(b)
	}
	if !b.margin.valid() {
		return ErrNegativeMargin
	}
	return nil
}

func (b *Base) base() *Base { return b }

// ID returns the widget's process-unique identifier.
func (b *Base) ID() ID { return b.id }

// Name returns the name given with WithName, or the empty string.
func (b *Base) Name() string { return b.name }

// Margin returns the widget margin.
func (b *Base) Margin() Margin { return b.margin }

// Alignment returns the widget alignment.
func (b *Base) Alignment() Alignment { return b.align }

// Fill returns the fill flags. An axis aligned with AlignFillH/AlignFillV
// counts as filled.
func (b *Base) Fill() Fill {
	return Fill{
		Horizontal: b.fill.Horizontal || b.align.H == AlignFillH,
		Vertical:   b.fill.Vertical || b.align.V == AlignFillV,
	}
}

// Expand returns the stored expand flags. Containers override it.
func (b *Base) Expand() Expand { return b.expand }

// SetExpand changes the expand flags. It takes effect on the next layout.
func (b *Base) SetExpand(e Expand) { b.expand = e }

// RenderRect returns the rectangle the widget last occupied on its owning
// surface. ok is false before the first render.
func (b *Base) RenderRect() (r Rect, ok bool) {
	return b.rect, b.rendered
}

// Parent returns the widget owning this one, or nil. The back-reference is
// weak: it never keeps a detached parent alive.
func (b *Base) Parent() Widget {
	p := b.parent.Value()
	if p == nil {
		return nil
	}
	return p.self
}

// Place positions content of the given size (without margin) inside avail
// according to the widget's margin, alignment and fill.
func (b *Base) Place(pos Position, avail, content Size) Rect {
	return Place(pos, avail, content, b.margin, b.align, b.Fill())
}

// Rendered records the outcome of a Render call and returns r. Widgets call
// it last thing in Render; it is the only writer of the render rectangle.
func (b *Base) Rendered(pos Position, avail Size, r Rect) Rect {
	b.rect = r
	b.rendered = true
	b.lastPos = pos
	b.lastAvail = avail
	if b.self != nil {
		b.lastMin = b.self.MinSize()
	}
	return r
}

// String names the widget for logs.
func (b *Base) String() string {
	if b.name != "" {
		return b.name + b.id.String()
	}
	return b.id.String()
}

// invalidate reports the widget to the dirty tracker of the GUI its root is
// attached to. Widgets not yet on screen are ignored.
func (b *Base) invalidate() {
	if b.self == nil {
		return
	}
	root := RootOf(b.self)
	if root == nil || root.gui == nil {
		return
	}
	root.gui.tracker.MarkDirty(b.self)
}
