package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	gui "github.com/go-theft-auto/retained-gui"
)

var logger = gui.Logger("ebiten")

// Renderer implements gui.Renderer with ebiten images.
type Renderer struct {
	screen   *Surface
	presents int

	// uploads holds the ebiten copies of software surfaces blitted onto
	// this renderer's surfaces.
	uploads *gui.SurfaceCache[*ebiten.Image]
}

// NewRenderer creates a renderer. Images can only be drawn once the ebiten
// game loop runs; building the widget tree before that is fine.
func NewRenderer() *Renderer {
	return &Renderer{uploads: gui.NewSurfaceCache(uploadImage, refreshImage)}
}

// NewSurface implements gui.Renderer.
func (r *Renderer) NewSurface(size gui.Size) (gui.Surface, error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("ebiten: surface %dx%d: %w", size.Width, size.Height, gui.ErrNegativeSize)
	}
	s := NewSurface(size)
	s.uploads = r.uploads
	return s, nil
}

// Cleanup implements gui.Cleanable, dropping uploads unused for a frame.
func (r *Renderer) Cleanup(frame uint64) { r.uploads.Cleanup(frame) }

// Present implements gui.Renderer. The screen is shown on the next Draw.
func (r *Renderer) Present(screen gui.Surface, _ []gui.Rect) error {
	s, ok := screen.(*Surface)
	if !ok {
		return fmt.Errorf("ebiten: present %T: not an ebiten surface", screen)
	}
	r.screen = s
	r.presents++
	return nil
}

// Presents returns the number of Present calls so far.
func (r *Renderer) Presents() int { return r.presents }

// Game runs a GUI inside the ebiten game loop. Update runs the application
// callback and flushes dirty widgets; Draw shows the last presented screen.
type Game struct {
	ui       *gui.GUI
	renderer *Renderer
	update   func() error
	onResize func(gui.Size) error
	size     gui.Size
	pending  gui.Size
	redrawn  bool
}

// NewGame wires ui, drawn through renderer, into an ebiten.Game. update is
// called once per tick before the flush and may be nil. The renderer is
// registered with ui for cleanup of its uploads.
func NewGame(ui *gui.GUI, renderer *Renderer, update func() error) *Game {
	ui.RegisterCleanable(renderer)
	size := ui.Screen().Size()
	return &Game{ui: ui, renderer: renderer, update: update, size: size, pending: size}
}

// OnResize sets the function adapting the application's roots when the
// window size changes. It runs before the single redraw of the resize.
func (g *Game) OnResize(fn func(gui.Size) error) { g.onResize = fn }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.pending != g.size {
		g.size = g.pending
		if err := g.ui.ResizeWith(g.size, g.onResize); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
		g.redrawn = true
	}
	if !g.redrawn {
		g.redrawn = true
		if err := g.ui.Redraw(); err != nil {
			return err
		}
	}
	if g.update != nil {
		if err := g.update(); err != nil {
			return err
		}
	}
	return g.ui.Flush()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer.screen == nil {
		return
	}
	screen.DrawImage(g.renderer.screen.img, nil)
}

// Layout implements ebiten.Game. A new outside size is applied on the next
// Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := gui.Size{Width: outsideWidth, Height: outsideHeight}
	if size != g.pending {
		logger.Debug("layout changed", "width", outsideWidth, "height", outsideHeight)
		g.pending = size
	}
	return outsideWidth, outsideHeight
}

var _ ebiten.Game = (*Game)(nil)
