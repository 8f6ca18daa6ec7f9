package gui

import "slices"

// DirtyState is the redraw state of a widget as seen by a Tracker.
type DirtyState uint8

const (
	Clean DirtyState = iota // drawn content matches the widget
	Dirty                   // marked, waiting for the next Flush
)

func (s DirtyState) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "clean"
}

// Tracker collects widgets whose content changed and redraws just their
// areas on Flush instead of the whole tree.
//
// A widget updates its own state first and then marks itself (setters do
// this through Base). Marking is idempotent. Flush always empties the set.
type Tracker struct {
	gui     *GUI
	marked  []Widget
	index   map[ID]struct{}
	changed bool
}

func newTracker(g *GUI) *Tracker {
	return &Tracker{gui: g, index: make(map[ID]struct{})}
}

// MarkDirty records that w needs a redraw. Marking a widget that is already
// dirty does nothing.
func (t *Tracker) MarkDirty(w Widget) {
	if w == nil {
		return
	}
	if _, ok := t.index[w.ID()]; ok {
		return
	}
	t.index[w.ID()] = struct{}{}
	t.marked = append(t.marked, w)
}

// State reports whether w is waiting for a redraw.
func (t *Tracker) State(w Widget) DirtyState {
	if w == nil {
		return Clean
	}
	if _, ok := t.index[w.ID()]; ok {
		return Dirty
	}
	return Clean
}

// Pending returns the number of marked widgets.
func (t *Tracker) Pending() int { return len(t.marked) }

// surfacesChanged records that a root was added, removed, moved or raised.
// The next Flush redraws everything; r is marked so that Flush has work.
func (t *Tracker) surfacesChanged(r *Root) {
	t.changed = true
	t.MarkDirty(r)
}

func (t *Tracker) reset() {
	t.marked = t.marked[:0]
	clear(t.index)
	t.changed = false
}

// Flush redraws the marked widgets and presents the result once.
//
// With nothing marked it does nothing. After a change of the surface set it
// falls back to a full redraw. Otherwise each marked widget is repainted in
// place on its root's surface, unless its min size changed since it was last
// drawn, in which case its whole root is laid out again. The touched screen
// areas are recomposited back to front and presented together.
func (t *Tracker) Flush() error {
	if len(t.marked) == 0 {
		return nil
	}
	defer t.reset()

	g := t.gui
	if t.changed {
		redrawLogger.Debug("Flush: surface set changed, full redraw", "marked", len(t.marked))
		return g.Redraw()
	}

	groups := make(map[*Root][]Widget)
	relayout := make(map[*Root]bool)
	for _, w := range t.marked {
		root := RootOf(w)
		if root == nil || root.gui != g {
			redrawLogger.Debug("Flush: dropping widget without root", "widget", w.base())
			continue
		}
		groups[root] = append(groups[root], w)
		if needsLayout(w) {
			relayout[root] = true
		}
	}

	// A root whose own size changed needs a new surface; the screen areas it
	// covered change too.
	for root := range relayout {
		if root.surface == nil || root.surface.Size() != root.MinSize() {
			redrawLogger.Debug("Flush: root resized, full redraw", "root", root.base())
			return g.Redraw()
		}
	}

	var dirty []Rect
	for _, root := range g.roots {
		ws := groups[root]
		if len(ws) == 0 {
			continue
		}
		if relayout[root] {
			redrawLogger.Debug("Flush: min size changed, relayout", "root", root.base(), "marked", len(ws))
			g.renderRoot(root)
			dirty = append(dirty, root.ScreenRect())
			continue
		}
		bounds := Bounds(root.surface)
		for _, w := range ws {
			r := t.repaint(root, w).Intersect(bounds)
			if !r.Empty() {
				dirty = append(dirty, r.Offset(root.pos))
			}
		}
	}

	dirty = clipRects(dirty, Bounds(g.screen))
	if len(dirty) == 0 {
		return nil
	}
	g.composite(dirty)
	redrawLogger.Debug("Flush: partial present", "rects", len(dirty))
	return g.present(dirty)
}

// needsLayout reports whether w can no longer be repainted at its old place.
func needsLayout(w Widget) bool {
	b := w.base()
	if !b.rendered {
		return true
	}
	if _, ok := w.(*Root); ok {
		return true
	}
	return b.lastMin != w.MinSize()
}

// repaint redraws w on its root's surface at the place it was last given and
// returns the area touched. The area is limited to what the frames above w
// let through. A widget is redrawn alone only when it sits fully inside that
// area on a plain background and no other widget overlaps it; otherwise the
// whole root is rendered again under the clip, keeping the stacking order.
func (t *Tracker) repaint(root *Root, w Widget) Rect {
	b := w.base()
	s := root.surface
	area := b.rect.Intersect(visibleArea(root, w))
	if area.Empty() {
		return Rect{}
	}

	s.PushClip(area)
	defer s.PopClip()

	if c, ok := backgroundOf(w); ok && area == b.rect && !overlapsSibling(w, area) {
		s.Fill(area, c)
		w.Render(s, b.lastPos, b.lastAvail)
		return area
	}

	s.Fill(area, t.gui.background)
	root.Render(s, Position{}, s.Size())
	return area
}

// childClipper is implemented by containers that clip their children while
// rendering.
type childClipper interface {
	childClip() Rect
}

// visibleArea returns the part of the root surface that w could draw on
// during its last render.
func visibleArea(root *Root, w Widget) Rect {
	clip := Bounds(root.surface)
	for p := w.Parent(); p != nil; p = p.Parent() {
		if c, ok := p.(childClipper); ok {
			clip = clip.Intersect(c.childClip())
		}
	}
	return clip
}

// overlapsSibling reports whether area meets the last render rectangle of a
// sibling of w or of one of its ancestors.
func overlapsSibling(w Widget, area Rect) bool {
	for child, p := w, w.Parent(); p != nil; child, p = p, p.Parent() {
		c, ok := p.(Container)
		if !ok {
			continue
		}
		for _, sib := range c.Children() {
			if sib == child {
				continue
			}
			if r, ok := sib.RenderRect(); ok && r.Intersects(area) {
				return true
			}
		}
	}
	return false
}

// backgroundOf returns the color of the nearest ancestor painting a plain
// background behind w. ok is false when the nearest painting ancestor is not
// a solid fill.
func backgroundOf(w Widget) (Color, bool) {
	for p := w.Parent(); p != nil; p = p.Parent() {
		if bg, ok := p.(Backgrounder); ok {
			return bg.Background()
		}
	}
	return 0, false
}

// clipRects clips rects to bounds and drops empty and duplicate results.
func clipRects(rects []Rect, bounds Rect) []Rect {
	out := rects[:0]
	for _, r := range rects {
		r = r.Intersect(bounds)
		if r.Empty() || slices.Contains(out, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
