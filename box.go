package gui

import (
	"errors"
	"fmt"
	"slices"
)

// Box lays out its children in a row (HBox) or a column (VBox).
//
// Every child gets at least its minimum size along the box axis. Surplus
// space is split among the children that expand along the axis; a box with
// no expanding child leaves the surplus unused. The split is exact: the
// assigned sizes always add up to the available space.
type Box struct {
	Base
	axis     axis
	children []Widget
}

// NewHBox creates a box laying out children left to right.
func NewHBox(opts ...Option) (*Box, error) {
	return newBox(horizontal, opts)
}

// NewVBox creates a box laying out children top to bottom.
func NewVBox(opts ...Option) (*Box, error) {
	return newBox(vertical, opts)
}

func newBox(a axis, opts []Option) (*Box, error) {
	b := &Box{axis: a}
	if err := b.Init(b, opts...); err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}
	return b, nil
}

// Horizontal reports whether this is an HBox.
func (b *Box) Horizontal() bool { return b.axis == horizontal }

// Add appends children in order. A child already in this box is skipped.
// On error the children before the failing one stay added.
func (b *Box) Add(children ...Widget) error {
	for _, child := range children {
		if err := b.Insert(len(b.children), child); err != nil {
			return err
		}
	}
	return nil
}

// Insert places child at index i, clamped to the valid range.
func (b *Box) Insert(i int, child Widget) error {
	if err := attach(b, child); err != nil {
		if errors.Is(err, errAlreadyChild) {
			return nil
		}
		return fmt.Errorf("box %s: %w", &b.Base, err)
	}
	i = max(0, min(i, len(b.children)))
	b.children = slices.Insert(b.children, i, child)
	b.invalidate()
	return nil
}

// Remove detaches child. It reports whether child was in the box.
func (b *Box) Remove(child Widget) bool {
	if child == nil {
		return false
	}
	i := slices.IndexFunc(b.children, func(w Widget) bool { return w.ID() == child.ID() })
	if i < 0 {
		return false
	}
	detach(child)
	b.children = slices.Delete(b.children, i, i+1)
	b.invalidate()
	return true
}

// Clear detaches every child.
func (b *Box) Clear() {
	if len(b.children) == 0 {
		return
	}
	for _, child := range b.children {
		detach(child)
	}
	b.children = nil
	b.invalidate()
}

// Children implements Container.
func (b *Box) Children() []Widget {
	return slices.Clone(b.children)
}

// Len returns the number of children.
func (b *Box) Len() int { return len(b.children) }

// Expand is derived from the children: the box expands on an axis when any
// child does.
func (b *Box) Expand() Expand {
	var e Expand
	for _, child := range b.children {
		ce := child.Expand()
		e.Horizontal = e.Horizontal || ce.Horizontal
		e.Vertical = e.Vertical || ce.Vertical
	}
	return e
}

// MinSize is the sum of the children along the box axis and their maximum
// across it, plus the margin.
func (b *Box) MinSize() Size {
	return b.content().Grow(b.margin)
}

func (b *Box) content() Size {
	var main, cross int
	for _, child := range b.children {
		ms := child.MinSize()
		main += b.axis.of(ms)
		cross = max(cross, b.axis.cross().of(ms))
	}
	return b.axis.size(main, cross)
}

// CalculateSizes returns the size assigned to each child, in order, for
// avail space inside the margin.
func (b *Box) CalculateSizes(avail Size) []Size {
	if len(b.children) == 0 {
		return []Size{}
	}
	main, cross := b.axis, b.axis.cross()

	mins := make([]Size, len(b.children))
	var fixed, maxCross, expanders int
	for i, child := range b.children {
		mins[i] = child.MinSize()
		fixed += main.of(mins[i])
		maxCross = max(maxCross, cross.of(mins[i]))
		if main.expands(child.Expand()) {
			expanders++
		}
	}

	var share, extra int
	if expanders > 0 {
		remaining := max(0, main.of(avail)-fixed)
		share, extra = remaining/expanders, remaining%expanders
	}

	sizes := make([]Size, len(b.children))
	for i, child := range b.children {
		e := child.Expand()
		m := main.of(mins[i])
		if main.expands(e) {
			m += share
			if extra > 0 {
				m++
				extra--
			}
		}
		c := maxCross
		if cross.expands(e) {
			c = max(cross.of(avail), maxCross)
		}
		sizes[i] = main.size(m, c)
	}
	return sizes
}

// Render implements Widget. Children are placed one after the other from the
// start of the box; each advances the offset by its assigned size.
func (b *Box) Render(s Surface, pos Position, avail Size) Rect {
	fill := b.Fill()
	e := b.Expand()
	fill.Horizontal = fill.Horizontal || e.Horizontal
	fill.Vertical = fill.Vertical || e.Vertical
	rect := Place(pos, avail, b.content(), b.margin, b.align, fill)

	occupied := rect
	offset := 0
	for i, size := range b.CalculateSizes(rect.Size()) {
		at := rect.Pos().Add(b.axis.pos(offset, 0))
		occupied = occupied.Union(RectAt(at, size))
		b.children[i].Render(s, at, size)
		offset += b.axis.of(size)
	}
	return b.Rendered(pos, avail, occupied)
}
