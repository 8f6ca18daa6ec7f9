package gui

import "fmt"

// Backgrounder is implemented by widgets that paint an opaque background
// over their whole render rectangle. The dirty tracker repaints a widget's
// area with the nearest such ancestor before redrawing it in place.
type Backgrounder interface {
	Background() (c Color, ok bool)
}

// ColorRect is a solid rectangle of fixed size.
type ColorRect struct {
	Base
	size  Size
	color Color
}

// NewColorRect creates a rectangle whose content is size (margin excluded).
func NewColorRect(size Size, c Color, opts ...Option) (*ColorRect, error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("color rect %dx%d: %w", size.Width, size.Height, ErrNegativeSize)
	}
	r := &ColorRect{size: size, color: c}
	if err := r.Init(r, opts...); err != nil {
		return nil, fmt.Errorf("color rect: %w", err)
	}
	return r, nil
}

// MinSize implements Widget.
func (r *ColorRect) MinSize() Size {
	return r.size.Grow(r.margin)
}

// Render implements Widget.
func (r *ColorRect) Render(s Surface, pos Position, avail Size) Rect {
	rect := r.Place(pos, avail, r.size)
	s.Fill(rect, r.color)
	return r.Rendered(pos, avail, rect)
}

// Color returns the fill color.
func (r *ColorRect) Color() Color { return r.color }

// SetColor changes the fill color and marks the rectangle dirty.
func (r *ColorRect) SetColor(c Color) {
	if r.color == c {
		return
	}
	r.color = c
	r.invalidate()
}

// SetSize changes the content size. The new size needs a fresh layout, which
// the dirty tracker performs for the owning root.
func (r *ColorRect) SetSize(size Size) {
	if r.size == size || size.Width < 0 || size.Height < 0 {
		return
	}
	r.size = size
	r.invalidate()
}

// Background implements Backgrounder.
func (r *ColorRect) Background() (Color, bool) {
	return r.color, r.color.Alpha() == 0xFF
}

// Spacer occupies space without drawing. With expand flags set it soaks up
// surplus space in a box.
type Spacer struct {
	Base
	size Size
}

// NewSpacer creates an empty widget of the given content size.
func NewSpacer(size Size, opts ...Option) (*Spacer, error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("spacer %dx%d: %w", size.Width, size.Height, ErrNegativeSize)
	}
	sp := &Spacer{size: size}
	if err := sp.Init(sp, opts...); err != nil {
		return nil, fmt.Errorf("spacer: %w", err)
	}
	return sp, nil
}

// MinSize implements Widget.
func (sp *Spacer) MinSize() Size {
	return sp.size.Grow(sp.margin)
}

// Render implements Widget.
func (sp *Spacer) Render(_ Surface, pos Position, avail Size) Rect {
	return sp.Rendered(pos, avail, sp.Place(pos, avail, sp.size))
}

// Image draws an already loaded surface. Without fill flags it is drawn at
// its natural size; filled axes stretch it.
type Image struct {
	Base
	src Surface
}

// NewImage creates an image widget. A nil source is a configuration error:
// an image widget is never rendered without content.
func NewImage(src Surface, opts ...Option) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("image: %w", ErrNilSurface)
	}
	img := &Image{src: src}
	if err := img.Init(img, opts...); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return img, nil
}

// MinSize implements Widget.
func (img *Image) MinSize() Size {
	return img.src.Size().Grow(img.margin)
}

// Render implements Widget.
func (img *Image) Render(s Surface, pos Position, avail Size) Rect {
	rect := img.Place(pos, avail, img.src.Size())
	s.Blit(img.src, Bounds(img.src), rect)
	return img.Rendered(pos, avail, rect)
}

// Source returns the drawn surface.
func (img *Image) Source() Surface { return img.src }

// SetSource replaces the drawn surface and marks the image dirty.
// A nil source is ignored.
func (img *Image) SetSource(src Surface) {
	if src == nil || src == img.src {
		return
	}
	img.src = src
	img.invalidate()
}
