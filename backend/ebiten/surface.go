// Package ebiten provides an Ebitengine backend for the GUI package.
//
// Surfaces are *ebiten.Image offscreens. Present hands the screen surface to
// Game, which draws it in ebiten's Draw callback.
package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	gui "github.com/go-theft-auto/retained-gui"
)

// Surface is a gui.Surface drawing into an ebiten image.
type Surface struct {
	img     *ebiten.Image
	size    gui.Size
	clip    gui.ClipStack
	uploads *gui.SurfaceCache[*ebiten.Image]
}

// NewSurface allocates a transparent surface. ebiten cannot allocate empty
// images, so a zero-sized surface keeps a 1x1 image and draws nothing.
//
// Software surfaces blitted onto a standalone surface are uploaded on every
// blit; surfaces from Renderer.NewSurface share the renderer's cache.
func NewSurface(size gui.Size) *Surface {
	s := &Surface{
		img:  ebiten.NewImage(max(1, size.Width), max(1, size.Height)),
		size: gui.Size{Width: max(0, size.Width), Height: max(0, size.Height)},
	}
	s.clip.Reset(gui.Bounds(s))
	return s
}

// SurfaceFrom uploads a decoded image, such as a nine-patch asset.
func SurfaceFrom(src image.Image) *Surface {
	b := src.Bounds()
	s := &Surface{
		img:  ebiten.NewImageFromImage(src),
		size: gui.Size{Width: b.Dx(), Height: b.Dy()},
	}
	s.clip.Reset(gui.Bounds(s))
	return s
}

// Image returns the backing ebiten image.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Size implements gui.Surface.
func (s *Surface) Size() gui.Size { return s.size }

// Clear implements gui.Surface.
func (s *Surface) Clear(c gui.Color) {
	s.img.Fill(c.NRGBA())
}

// Fill implements gui.Surface.
func (s *Surface) Fill(r gui.Rect, c gui.Color) {
	r = r.Intersect(s.clip.Current())
	if r.Empty() {
		return
	}
	if c.Alpha() == 0xFF {
		s.img.SubImage(imageRect(r)).(*ebiten.Image).Fill(c.NRGBA())
		return
	}
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.NRGBA(), false)
}

// Blit implements gui.Surface. Sources must be *Surface or *gui.ImageSurface.
func (s *Surface) Blit(src gui.Surface, srcRect, dst gui.Rect) {
	from := s.sourceImage(src)
	if from == nil || srcRect.Empty() || dst.Empty() {
		return
	}
	target, ok := s.clipped(dst)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if srcRect.Size() != dst.Size() {
		op.GeoM.Scale(float64(dst.W)/float64(srcRect.W), float64(dst.H)/float64(srcRect.H))
		op.Filter = ebiten.FilterLinear
	}
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	target.DrawImage(from.SubImage(imageRect(srcRect)).(*ebiten.Image), op)
}

// DrawText implements gui.Surface.
func (s *Surface) DrawText(at gui.Position, str string, f gui.Font, c gui.Color) {
	if str == "" {
		return
	}
	face := faceOf(f)
	target, ok := s.clipped(gui.RectAt(at, face.MeasureText(str)))
	if !ok {
		return
	}
	face.draw(target, at, str, c.NRGBA())
}

// PushClip implements gui.Surface.
func (s *Surface) PushClip(r gui.Rect) { s.clip.Push(r) }

// PopClip implements gui.Surface.
func (s *Surface) PopClip() { s.clip.Pop() }

func (s *Surface) clipped(r gui.Rect) (*ebiten.Image, bool) {
	visible := r.Intersect(s.clip.Current())
	if visible.Empty() {
		return nil, false
	}
	return s.img.SubImage(imageRect(visible)).(*ebiten.Image), true
}

func (s *Surface) sourceImage(src gui.Surface) *ebiten.Image {
	switch v := src.(type) {
	case *Surface:
		return v.img
	case *gui.ImageSurface:
		if v.Size().Empty() {
			return nil
		}
		if s.uploads == nil {
			return uploadImage(v)
		}
		return s.uploads.Get(v)
	}
	return nil
}

func uploadImage(src *gui.ImageSurface) *ebiten.Image {
	return ebiten.NewImageFromImage(src.Image())
}

func refreshImage(dst *ebiten.Image, src *gui.ImageSurface) {
	dst.WritePixels(src.Image().Pix)
}

func imageRect(r gui.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
