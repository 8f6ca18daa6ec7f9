package gui

// Surface is a drawing target: the screen, a top-level root's offscreen
// buffer, or a loaded image. Implementations come from a backend.
//
// All coordinates are relative to the surface origin. Drawing is clipped to
// the surface bounds and to the current clip rectangle.
type Surface interface {
	// Size returns the pixel dimensions.
	Size() Size

	// Clear fills the whole surface, ignoring the clip stack.
	Clear(c Color)

	// Fill paints r with c, blending when c is translucent.
	Fill(r Rect, c Color)

	// Blit copies srcRect of src into dst, scaling when the sizes differ.
	Blit(src Surface, srcRect Rect, dst Rect)

	// DrawText draws a single line of text with its top-left corner at at.
	DrawText(at Position, text string, face Font, c Color)

	// PushClip narrows the clip rectangle to its intersection with r.
	PushClip(r Rect)

	// PopClip restores the clip rectangle active before the last PushClip.
	PopClip()
}

// Bounds returns the full rectangle of a surface.
func Bounds(s Surface) Rect {
	return RectAt(Position{}, s.Size())
}

// ClipStack is the PushClip/PopClip bookkeeping shared by Surface
// implementations. The zero value must be Reset before use.
type ClipStack struct {
	stack   []Rect
	current Rect
}

// Reset drops all pushed clips and clips to bounds.
func (c *ClipStack) Reset(bounds Rect) {
	c.stack = c.stack[:0]
	c.current = bounds
}

// Push narrows the current clip to its intersection with r.
func (c *ClipStack) Push(r Rect) {
	c.stack = append(c.stack, c.current)
	c.current = c.current.Intersect(r)
}

// Pop restores the previous clip. Popping an empty stack is a no-op.
func (c *ClipStack) Pop() {
	n := len(c.stack)
	if n > 0 {
		c.current = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Current returns the active clip rectangle.
func (c *ClipStack) Current() Rect { return c.current }

// Depth returns the number of pushed clips.
func (c *ClipStack) Depth() int { return len(c.stack) }
