package gui

import "fmt"

// Root is a top-level frame pinned at a screen position. Each root renders
// into its own offscreen surface; the GUI composites the surfaces onto the
// screen back to front.
type Root struct {
	Frame
	pos     Position
	surface Surface
	gui     *GUI
}

// NewRoot creates a root of the given size whose top-left corner sits at pos
// on the screen.
func NewRoot(size Size, pos Position, opts ...Option) (*Root, error) {
	r := &Root{pos: pos}
	if err := r.init(r, size, nil, opts); err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	return r, nil
}

// NewDecoratedRoot creates a root framed by a nine-patch, such as a dialog.
func NewDecoratedRoot(size Size, pos Position, asset NinePatchAsset, opts ...Option) (*Root, error) {
	if err := asset.Validate(); err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	r := &Root{pos: pos}
	if err := r.init(r, size, &asset, opts); err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	return r, nil
}

// Position returns the screen position.
func (r *Root) Position() Position { return r.pos }

// ScreenRect returns the screen area covered by the root's surface.
func (r *Root) ScreenRect() Rect {
	return RectAt(r.pos, r.MinSize())
}

// SetPosition moves the root. Moving uncovers and covers screen areas, so it
// counts as a change of the surface set.
func (r *Root) SetPosition(p Position) {
	if r.pos == p {
		return
	}
	r.pos = p
	if r.gui != nil {
		r.gui.tracker.surfacesChanged(r)
	}
}

// Surface returns the offscreen surface, or nil while detached from a GUI.
func (r *Root) Surface() Surface { return r.surface }

// GUI returns the GUI the root is attached to, or nil.
func (r *Root) GUI() *GUI { return r.gui }
