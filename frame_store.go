package gui

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed during the previous frame) are removed.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// stateEntry wraps a value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe keyed cache whose entries expire when they go a
// full frame without being read. A GUI advances the frame counter on every
// full redraw and cleans every store registered with it.
//
// Usage:
//
//	store := gui.NewFrameStore[string, gui.Size]()
//	ui.RegisterCleanable(store)
//	size := store.Get("hello", func() gui.Size { return measure("hello") })
type FrameStore[K comparable, T any] struct {
	mu     sync.Mutex
	states map[K]*stateEntry[T]
	frame  uint64
}

// NewFrameStore creates an empty store.
func NewFrameStore[K comparable, T any]() *FrameStore[K, T] {
	return &FrameStore[K, T]{states: make(map[K]*stateEntry[T])}
}

// Get returns the value for key, computing and storing it on a miss.
// The entry is marked as used in the current frame.
func (s *FrameStore[K, T]) Get(key K, compute func() T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[key]; ok {
		entry.lastFrame = s.frame
		return entry.value
	}
	entry := &stateEntry[T]{value: compute(), lastFrame: s.frame}
	s.states[key] = entry
	return entry.value
}

// Delete removes the entry for key.
func (s *FrameStore[K, T]) Delete(key K) {
	s.mu.Lock()
	delete(s.states, key)
	s.mu.Unlock()
}

// Cleanup advances the store to frame and removes entries not used in the
// frame before it.
func (s *FrameStore[K, T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame = frame
	if frame == 0 {
		return
	}
	threshold := frame - 1
	for key, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, key)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[K, T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[K, T]) Clear() {
	s.mu.Lock()
	s.states = make(map[K]*stateEntry[T])
	s.mu.Unlock()
}

// CachedFont memoizes MeasureText of another Font. Label min sizes are asked
// for on every layout pass, so repeated strings hit the cache.
type CachedFont struct {
	Font
	sizes *FrameStore[string, Size]
}

// NewCachedFont wraps f. Register the result with GUI.RegisterCleanable (or
// pass it through a Theme given to the GUI) to expire unused strings.
func NewCachedFont(f Font) *CachedFont {
	return &CachedFont{Font: f, sizes: NewFrameStore[string, Size]()}
}

// MeasureText implements Font.
func (c *CachedFont) MeasureText(text string) Size {
	return c.sizes.Get(text, func() Size { return c.Font.MeasureText(text) })
}

// Cleanup implements Cleanable.
func (c *CachedFont) Cleanup(frame uint64) { c.sizes.Cleanup(frame) }

// Unwrap returns the measured font, for surfaces that draw by concrete type.
func (c *CachedFont) Unwrap() Font { return c.Font }

// SurfaceCache keeps backend copies of software surfaces, such as GPU images
// of the ImageSurfaces an application blits. A copy is refreshed when its
// surface changed after the copy was made, and dropped once it goes a full
// frame unused. Register the cache with GUI.RegisterCleanable.
type SurfaceCache[T any] struct {
	copies  *FrameStore[*ImageSurface, *surfaceCopy[T]]
	create  func(*ImageSurface) T
	refresh func(T, *ImageSurface)
}

type surfaceCopy[T any] struct {
	value T
	gen   uint64
}

// NewSurfaceCache creates a cache making copies with create and updating
// stale ones with refresh.
func NewSurfaceCache[T any](create func(*ImageSurface) T, refresh func(T, *ImageSurface)) *SurfaceCache[T] {
	return &SurfaceCache[T]{
		copies:  NewFrameStore[*ImageSurface, *surfaceCopy[T]](),
		create:  create,
		refresh: refresh,
	}
}

// Get returns the up to date copy of s.
func (c *SurfaceCache[T]) Get(s *ImageSurface) T {
	cp := c.copies.Get(s, func() *surfaceCopy[T] {
		return &surfaceCopy[T]{value: c.create(s), gen: s.Generation()}
	})
	if cp.gen != s.Generation() {
		c.refresh(cp.value, s)
		cp.gen = s.Generation()
	}
	return cp.value
}

// Cleanup implements Cleanable.
func (c *SurfaceCache[T]) Cleanup(frame uint64) { c.copies.Cleanup(frame) }

// Len returns the number of copies held.
func (c *SurfaceCache[T]) Len() int { return c.copies.Len() }
