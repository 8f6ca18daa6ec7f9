package gui

import "fmt"

// NinePatchAsset is a decoration image split by insets into fixed corners,
// edges stretched along one axis and a center stretched along both.
// The asset layer resolves it before any widget uses it.
type NinePatchAsset struct {
	Surface Surface
	Insets  Margin
}

// Validate checks that the asset has content and its insets fit inside it.
func (a NinePatchAsset) Validate() error {
	if a.Surface == nil {
		return fmt.Errorf("nine-patch: %w", ErrNilSurface)
	}
	if !a.Insets.valid() {
		return fmt.Errorf("nine-patch insets: %w", ErrNegativeMargin)
	}
	size := a.Surface.Size()
	if a.Insets.Horizontal() > size.Width || a.Insets.Vertical() > size.Height {
		return fmt.Errorf("nine-patch insets %+v in %dx%d image: %w",
			a.Insets, size.Width, size.Height, ErrMarginTooLarge)
	}
	return nil
}

// MinSize is the smallest size the decoration can be drawn at without the
// corners overlapping.
func (a NinePatchAsset) MinSize() Size {
	return Size{Width: a.Insets.Horizontal(), Height: a.Insets.Vertical()}
}

// DrawNinePatch paints the asset stretched over dst.
func DrawNinePatch(s Surface, a NinePatchAsset, dst Rect) {
	if a.Surface == nil || dst.Empty() {
		return
	}
	src := a.Surface.Size()
	in := a.Insets

	srcX := [4]int{0, in.Left, src.Width - in.Right, src.Width}
	srcY := [4]int{0, in.Top, src.Height - in.Bottom, src.Height}
	dstX := [4]int{dst.X, dst.X + in.Left, dst.X + dst.W - in.Right, dst.X + dst.W}
	dstY := [4]int{dst.Y, dst.Y + in.Top, dst.Y + dst.H - in.Bottom, dst.Y + dst.H}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sr := Rect{X: srcX[col], Y: srcY[row], W: srcX[col+1] - srcX[col], H: srcY[row+1] - srcY[row]}
			dr := Rect{X: dstX[col], Y: dstY[row], W: dstX[col+1] - dstX[col], H: dstY[row+1] - dstY[row]}
			if sr.Empty() || dr.Empty() {
				continue
			}
			s.Blit(a.Surface, sr, dr)
		}
	}
}

// NinePatch draws a nine-patch decoration at a requested size. It grows with
// fill flags like any other widget.
type NinePatch struct {
	Base
	asset NinePatchAsset
	size  Size
}

// NewNinePatch creates a decoration whose content is at least size and never
// smaller than the asset's insets.
func NewNinePatch(asset NinePatchAsset, size Size, opts ...Option) (*NinePatch, error) {
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("nine-patch %dx%d: %w", size.Width, size.Height, ErrNegativeSize)
	}
	np := &NinePatch{asset: asset, size: size}
	if err := np.Init(np, opts...); err != nil {
		return nil, fmt.Errorf("nine-patch: %w", err)
	}
	return np, nil
}

func (np *NinePatch) content() Size {
	return np.size.Max(np.asset.MinSize())
}

// MinSize implements Widget.
func (np *NinePatch) MinSize() Size {
	return np.content().Grow(np.margin)
}

// Render implements Widget.
func (np *NinePatch) Render(s Surface, pos Position, avail Size) Rect {
	rect := np.Place(pos, avail, np.content())
	DrawNinePatch(s, np.asset, rect)
	return np.Rendered(pos, avail, rect)
}

// SetAsset swaps the decoration and marks the widget dirty.
func (np *NinePatch) SetAsset(asset NinePatchAsset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	np.asset = asset
	np.invalidate()
	return nil
}
