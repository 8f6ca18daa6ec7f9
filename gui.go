package gui

import (
	"fmt"
	"slices"
)

// Renderer is the backend collaborator: it allocates drawing targets and puts
// the screen surface on the display.
type Renderer interface {
	// NewSurface allocates a blank surface of the given size.
	NewSurface(size Size) (Surface, error)

	// Present shows screen on the display. dirty lists the screen areas that
	// changed since the last present; nil means the whole screen.
	Present(screen Surface, dirty []Rect) error
}

// GUI owns the top-level roots, their offscreen surfaces and the dirty
// tracker. Roots are stacked in the order they were added; Raise moves one
// to the top.
//
// A GUI is not safe for concurrent use. The frame loop mutates widgets and
// calls Flush from one goroutine.
type GUI struct {
	renderer   Renderer
	screen     Surface
	roots      []*Root
	tracker    *Tracker
	theme      *Theme
	background Color
	cleanables []Cleanable
	frame      uint64

	// resizing defers root redraws until ResizeWith redraws everything.
	resizing bool
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithTheme sets the theme handed to composite widgets and registers its
// cached fonts for cleanup.
func WithTheme(theme *Theme) GUIOption {
	return func(g *GUI) { g.theme = theme }
}

// WithBackground sets the color of screen areas no root covers.
func WithBackground(c Color) GUIOption {
	return func(g *GUI) { g.background = c }
}

// New creates a GUI drawing a screen of the given size through renderer.
func New(renderer Renderer, size Size, opts ...GUIOption) (*GUI, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	g := &GUI{
		renderer:   renderer,
		background: ColorBlack,
	}
	g.tracker = newTracker(g)
	for _, opt := range opts {
		opt(g)
	}
	if g.theme != nil {
		for _, c := range g.theme.Cleanables() {
			g.RegisterCleanable(c)
		}
	}
	screen, err := renderer.NewSurface(size)
	if err != nil {
		return nil, fmt.Errorf("gui: allocate %dx%d screen: %w", size.Width, size.Height, err)
	}
	g.screen = screen
	return g, nil
}

// Theme returns the theme given with WithTheme, or nil.
func (g *GUI) Theme() *Theme { return g.theme }

// Screen returns the screen surface.
func (g *GUI) Screen() Surface { return g.screen }

// Tracker returns the dirty tracker.
func (g *GUI) Tracker() *Tracker { return g.tracker }

// MarkDirty is shorthand for g.Tracker().MarkDirty(w).
func (g *GUI) MarkDirty(w Widget) { g.tracker.MarkDirty(w) }

// Flush is shorthand for g.Tracker().Flush().
func (g *GUI) Flush() error { return g.tracker.Flush() }

// Frame returns the number of full redraws so far.
func (g *GUI) Frame() uint64 { return g.frame }

// RegisterCleanable adds a store that expires its entries on every full
// redraw.
func (g *GUI) RegisterCleanable(c Cleanable) {
	if c == nil || slices.Contains(g.cleanables, c) {
		return
	}
	g.cleanables = append(g.cleanables, c)
}

// Roots returns the roots from bottom to top.
func (g *GUI) Roots() []*Root {
	return slices.Clone(g.roots)
}

// AddRoot puts r on top of the stack. The next Flush redraws everything.
func (g *GUI) AddRoot(r *Root) error {
	if r == nil {
		return ErrNilWidget
	}
	if r.gui == g {
		return nil
	}
	if r.gui != nil {
		return fmt.Errorf("add root %s: %w", r.base(), ErrHasParent)
	}
	if err := g.ensureSurface(r); err != nil {
		return err
	}
	r.gui = g
	g.roots = append(g.roots, r)
	g.tracker.surfacesChanged(r)
	return nil
}

// RemoveRoot takes r off the screen. The next Flush redraws everything.
func (g *GUI) RemoveRoot(r *Root) error {
	i := slices.Index(g.roots, r)
	if i < 0 {
		return fmt.Errorf("remove root: %w", ErrNotAttached)
	}
	g.tracker.surfacesChanged(r)
	g.roots = slices.Delete(g.roots, i, i+1)
	r.gui = nil
	r.surface = nil
	return nil
}

// Raise moves r to the top of the stack.
func (g *GUI) Raise(r *Root) error {
	i := slices.Index(g.roots, r)
	if i < 0 {
		return fmt.Errorf("raise root: %w", ErrNotAttached)
	}
	if i == len(g.roots)-1 {
		return nil
	}
	g.roots = append(slices.Delete(g.roots, i, i+1), r)
	g.tracker.surfacesChanged(r)
	return nil
}

// Resize replaces the screen surface and redraws everything.
func (g *GUI) Resize(size Size) error {
	if g.screen.Size() == size {
		return nil
	}
	return g.ResizeWith(size, nil)
}

// ResizeWith replaces the screen surface, lets layout adapt the roots to the
// new size and then redraws everything once. Root size changes made inside
// layout, such as Frame.UpdateSize, do not redraw on their own.
func (g *GUI) ResizeWith(size Size, layout func(Size) error) error {
	if layout != nil {
		g.resizing = true
		err := layout(size)
		g.resizing = false
		if err != nil {
			return fmt.Errorf("gui: layout for %dx%d: %w", size.Width, size.Height, err)
		}
	}
	if g.screen.Size() != size {
		screen, err := g.renderer.NewSurface(size)
		if err != nil {
			return fmt.Errorf("gui: resize screen to %dx%d: %w", size.Width, size.Height, err)
		}
		g.screen = screen
	}
	return g.Redraw()
}

// Redraw lays out and renders every root, composites the whole screen and
// presents it. Everything marked dirty is clean afterwards.
func (g *GUI) Redraw() error {
	for _, r := range g.roots {
		if err := g.ensureSurface(r); err != nil {
			return err
		}
		g.renderRoot(r)
	}
	g.screen.Clear(g.background)
	g.composite([]Rect{Bounds(g.screen)})
	g.tracker.reset()

	g.frame++
	for _, c := range g.cleanables {
		c.Cleanup(g.frame)
	}
	redrawLogger.Debug("Redraw: full", "roots", len(g.roots), "frame", g.frame)
	if guiVerbose() {
		for _, r := range g.roots {
			redrawLogger.Debug("Redraw: tree", "root", r.base(), "dump", Dump(r))
		}
	}
	return g.present(nil)
}

// redrawRoot lays out and renders one root again and presents its area.
func (g *GUI) redrawRoot(r *Root) error {
	if g.resizing {
		g.tracker.surfacesChanged(r)
		return nil
	}
	if r.surface == nil || r.surface.Size() != r.MinSize() {
		return g.Redraw()
	}
	g.renderRoot(r)
	dirty := clipRects([]Rect{r.ScreenRect()}, Bounds(g.screen))
	if len(dirty) == 0 {
		return nil
	}
	g.composite(dirty)
	return g.present(dirty)
}

func (g *GUI) ensureSurface(r *Root) error {
	size := r.MinSize()
	if r.surface != nil && r.surface.Size() == size {
		return nil
	}
	s, err := g.renderer.NewSurface(size)
	if err != nil {
		return fmt.Errorf("gui: allocate %dx%d surface for root %s: %w", size.Width, size.Height, r.base(), err)
	}
	r.surface = s
	return nil
}

func (g *GUI) renderRoot(r *Root) {
	r.surface.Clear(g.background)
	r.Render(r.surface, Position{}, r.surface.Size())
}

// composite copies the roots onto the screen inside the given screen areas,
// bottom root first.
func (g *GUI) composite(dirty []Rect) {
	for _, d := range dirty {
		g.screen.Fill(d, g.background)
		for _, r := range g.roots {
			if r.surface == nil {
				continue
			}
			part := d.Intersect(RectAt(r.pos, r.surface.Size()))
			if part.Empty() {
				continue
			}
			src := part.Offset(Position{X: -r.pos.X, Y: -r.pos.Y})
			g.screen.Blit(r.surface, src, part)
		}
	}
}

func (g *GUI) present(dirty []Rect) error {
	if err := g.renderer.Present(g.screen, dirty); err != nil {
		return fmt.Errorf("gui: present: %w", err)
	}
	return nil
}
