package gui

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageSurface is a software Surface backed by an *image.RGBA. It draws
// FaceFont text; other fonts fall back to the built-in bitmap face.
type ImageSurface struct {
	img  *image.RGBA
	clip ClipStack
	gen  uint64
}

// NewImageSurface allocates a transparent surface.
func NewImageSurface(size Size) *ImageSurface {
	s := &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, max(0, size.Width), max(0, size.Height)))}
	s.clip.Reset(Bounds(s))
	return s
}

// ImageSurfaceFrom copies a decoded image into a new surface.
func ImageSurfaceFrom(src image.Image) *ImageSurface {
	b := src.Bounds()
	s := NewImageSurface(Size{Width: b.Dx(), Height: b.Dy()})
	draw.Draw(s.img, s.img.Bounds(), src, b.Min, draw.Src)
	return s
}

// Image returns the backing image. Call Touch after writing to it directly.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Generation counts the changes made to the pixels. Backends keeping a copy
// of the surface compare it to know when to refresh the copy.
func (s *ImageSurface) Generation() uint64 { return s.gen }

// Touch records a change made through Image.
func (s *ImageSurface) Touch() { s.gen++ }

// Size implements Surface.
func (s *ImageSurface) Size() Size {
	b := s.img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// Clear implements Surface.
func (s *ImageSurface) Clear(c Color) {
	s.gen++
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// Fill implements Surface.
func (s *ImageSurface) Fill(r Rect, c Color) {
	r = r.Intersect(s.clip.Current())
	if r.Empty() {
		return
	}
	s.gen++
	op := draw.Over
	if c.Alpha() == 0xFF {
		op = draw.Src
	}
	draw.Draw(s.img, imageRect(r), image.NewUniform(c.NRGBA()), image.Point{}, op)
}

// Blit implements Surface. Sources must be ImageSurfaces.
func (s *ImageSurface) Blit(src Surface, srcRect, dst Rect) {
	from, ok := src.(*ImageSurface)
	if !ok || srcRect.Empty() || dst.Empty() {
		return
	}
	target, ok := s.clipped(dst)
	if !ok {
		return
	}
	sr := imageRect(srcRect.Intersect(Bounds(from)))
	if sr.Empty() {
		return
	}
	s.gen++
	if srcRect.Size() == dst.Size() {
		draw.Draw(target, imageRect(dst), from.img, sr.Min, draw.Over)
		return
	}
	draw.ApproxBiLinear.Scale(target, imageRect(dst), from.img, sr, draw.Over, nil)
}

// DrawText implements Surface.
func (s *ImageSurface) DrawText(at Position, text string, f Font, c Color) {
	if text == "" {
		return
	}
	face, ok := UnwrapFont(f).(*FaceFont)
	if !ok {
		face = BasicFont()
	}
	target, ok := s.clipped(RectAt(at, face.MeasureText(text)))
	if !ok {
		return
	}
	s.gen++
	d := font.Drawer{
		Dst:  target,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face.Face(),
		Dot:  fixed.P(at.X, at.Y+face.Ascent()),
	}
	d.DrawString(text)
}

// PushClip implements Surface.
func (s *ImageSurface) PushClip(r Rect) { s.clip.Push(r) }

// PopClip implements Surface.
func (s *ImageSurface) PopClip() { s.clip.Pop() }

// clipped returns the sub-image of the current clip that r touches.
func (s *ImageSurface) clipped(r Rect) (*image.RGBA, bool) {
	visible := r.Intersect(s.clip.Current())
	if visible.Empty() {
		return nil, false
	}
	return s.img.SubImage(imageRect(visible)).(*image.RGBA), true
}

func imageRect(r Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
