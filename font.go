package gui

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ErrFontNotFound is returned by a FontProvider for an unknown font name.
var ErrFontNotFound = errors.New("gui: font not found")

// Font measures text for layout. A surface draws text with the Font it is
// handed; each backend knows how to draw its own Font implementations.
//
// Fonts are resolved by the asset layer before widgets are built. The core
// never loads font files.
type Font interface {
	// MeasureText returns the pixel size of a single line of text.
	MeasureText(text string) Size

	// LineHeight returns the distance between consecutive baselines.
	LineHeight() int
}

// FontProvider resolves font names to loaded fonts, so a Theme can refer to
// fonts by name and applications can swap implementations (system fonts,
// terminal cells, fixed fonts for tests).
type FontProvider interface {
	// Font returns the named font or an error wrapping ErrFontNotFound.
	Font(name string) (Font, error)
}

// FontMap is a FontProvider backed by a map. Safe for concurrent use.
type FontMap struct {
	mu    sync.RWMutex
	fonts map[string]Font
}

// NewFontMap creates an empty FontMap.
func NewFontMap() *FontMap {
	return &FontMap{fonts: make(map[string]Font)}
}

// Register adds or replaces a font under name.
func (m *FontMap) Register(name string, f Font) {
	m.mu.Lock()
	m.fonts[name] = f
	m.mu.Unlock()
}

// Font implements FontProvider.
func (m *FontMap) Font(name string) (Font, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return f, nil
}

// FaceFont adapts a golang.org/x/image font.Face. ImageSurface draws it
// directly; other backends may wrap the same face.
type FaceFont struct {
	face    font.Face
	metrics font.Metrics
}

// NewFaceFont wraps an x/image face.
func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{face: face, metrics: face.Metrics()}
}

// BasicFont returns the built-in 7x13 bitmap face.
func BasicFont() *FaceFont {
	return NewFaceFont(basicfont.Face7x13)
}

// Face returns the wrapped x/image face.
func (f *FaceFont) Face() font.Face { return f.face }

// Ascent returns the pixel distance from the top of a line to the baseline.
func (f *FaceFont) Ascent() int { return f.metrics.Ascent.Ceil() }

// MeasureText implements Font.
func (f *FaceFont) MeasureText(text string) Size {
	if text == "" {
		return Size{Height: f.LineHeight()}
	}
	return Size{Width: font.MeasureString(f.face, text).Ceil(), Height: f.LineHeight()}
}

// LineHeight implements Font.
func (f *FaceFont) LineHeight() int {
	return f.metrics.Height.Ceil()
}

// UnwrapFont strips wrappers such as CachedFont and returns the font that
// actually draws.
func UnwrapFont(f Font) Font {
	for {
		u, ok := f.(interface{ Unwrap() Font })
		if !ok {
			return f
		}
		f = u.Unwrap()
	}
}
