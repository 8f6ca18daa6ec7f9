package gui

import (
	"errors"
	"fmt"
)

// Frame wraps at most one child in a fixed size.
//
// Unlike a Box, a frame never grows to fit its child: its min size is the
// declared size plus its margin. The child is offered the declared size less
// the margin and any decoration insets, and is clipped to that area.
type Frame struct {
	Base
	size  Size
	child Widget
	patch *NinePatchAsset
	bg    Color
}

// NewFrame creates an undecorated frame of the given size.
func NewFrame(size Size, opts ...Option) (*Frame, error) {
	f := &Frame{}
	if err := f.init(f, size, nil, opts); err != nil {
		return nil, err
	}
	return f, nil
}

// NewBorder creates a frame decorated with a nine-patch. The insets of the
// asset further shrink the area given to the child.
func NewBorder(size Size, asset NinePatchAsset, opts ...Option) (*Frame, error) {
	if err := asset.Validate(); err != nil {
		return nil, fmt.Errorf("border: %w", err)
	}
	f := &Frame{}
	if err := f.init(f, size, &asset, opts); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Frame) init(self Widget, size Size, patch *NinePatchAsset, opts []Option) error {
	if err := f.Init(self, opts...); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	f.patch = patch
	if err := f.checkSize(size); err != nil {
		return err
	}
	f.size = size
	return nil
}

// checkSize rejects sizes that cannot hold the margin and the decoration.
func (f *Frame) checkSize(size Size) error {
	if size.Width < 0 || size.Height < 0 {
		return fmt.Errorf("frame %dx%d: %w", size.Width, size.Height, ErrNegativeSize)
	}
	reserved := f.margin
	if f.patch != nil {
		reserved = reserved.Add(f.patch.Insets)
	}
	if reserved.Horizontal() > size.Width || reserved.Vertical() > size.Height {
		return fmt.Errorf("frame %dx%d reserving %+v: %w", size.Width, size.Height, reserved, ErrMarginTooLarge)
	}
	return nil
}

// Size returns the declared size.
func (f *Frame) Size() Size { return f.size }

// MinSize implements Widget. The child does not contribute.
func (f *Frame) MinSize() Size {
	return f.size.Grow(f.margin)
}

// ChildArea returns the area offered to the child relative to the frame
// content origin.
func (f *Frame) ChildArea() Rect {
	inset := f.margin
	if f.patch != nil {
		inset = inset.Add(f.patch.Insets)
	}
	return RectAt(Position{}, f.size).Inset(inset)
}

// childClip returns the child area on the frame's surface as of the last
// render.
func (f *Frame) childClip() Rect {
	return f.ChildArea().Offset(f.rect.Pos())
}

// Render implements Widget.
func (f *Frame) Render(s Surface, pos Position, avail Size) Rect {
	rect := f.Place(pos, avail, f.size)
	if f.bg.Alpha() != 0 {
		s.Fill(rect, f.bg)
	}
	if f.patch != nil {
		DrawNinePatch(s, *f.patch, rect)
	}
	if f.child != nil {
		area := f.ChildArea().Offset(rect.Pos())
		s.PushClip(area)
		f.child.Render(s, area.Pos(), area.Size())
		s.PopClip()
	}
	return f.Rendered(pos, avail, rect)
}

// Child returns the wrapped widget, or nil.
func (f *Frame) Child() Widget { return f.child }

// Children implements Container.
func (f *Frame) Children() []Widget {
	if f.child == nil {
		return nil
	}
	return []Widget{f.child}
}

// SetChild replaces the wrapped widget. A nil child empties the frame.
func (f *Frame) SetChild(child Widget) error {
	if child != nil {
		if err := attach(f.self, child); err != nil {
			if errors.Is(err, errAlreadyChild) {
				return nil
			}
			return fmt.Errorf("frame %s: %w", &f.Base, err)
		}
	}
	if f.child != nil {
		detach(f.child)
	}
	f.child = child
	f.invalidate()
	return nil
}

// SetBackground fills the frame with c under the decoration and child.
func (f *Frame) SetBackground(c Color) {
	if f.bg == c {
		return
	}
	f.bg = c
	f.invalidate()
}

// Background implements Backgrounder. A decorated frame does not count as a
// plain background.
func (f *Frame) Background() (Color, bool) {
	return f.bg, f.patch == nil && f.bg.Alpha() == 0xFF
}

// Decoration returns the nine-patch asset, or nil for a plain frame.
func (f *Frame) Decoration() *NinePatchAsset { return f.patch }

// UpdateSize changes the declared size and redraws the whole frame at once:
// the decoration is recomposited around the child, so a partial redraw of
// the child alone would be wrong.
func (f *Frame) UpdateSize(size Size) error {
	if err := f.checkSize(size); err != nil {
		return err
	}
	if f.size == size {
		return nil
	}
	f.size = size
	root := RootOf(f.self)
	if root == nil || root.gui == nil {
		return nil
	}
	return root.gui.redrawRoot(root)
}
