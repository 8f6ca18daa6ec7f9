package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/retained-gui"
)

func TestFrameStoreGet(t *testing.T) {
	store := gui.NewFrameStore[string, int]()
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	for range 3 {
		if v := store.Get("answer", compute); v != 42 {
			t.Errorf("Get() = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	store.Delete("answer")
	store.Get("answer", compute)
	if calls != 2 {
		t.Errorf("compute called %d times after Delete, want 2", calls)
	}
}

func TestFrameStoreCleanup(t *testing.T) {
	store := gui.NewFrameStore[string, int]()
	one := func() int { return 1 }

	store.Get("old", one)
	store.Cleanup(1)
	if store.Len() != 1 {
		t.Fatalf("entry used in the previous frame was removed")
	}

	store.Get("fresh", one)
	store.Cleanup(2)
	if store.Len() != 1 {
		t.Errorf("expected only the fresh entry to survive, got %d entries", store.Len())
	}
	calls := 0
	store.Get("fresh", func() int { calls++; return 1 })
	if calls != 0 {
		t.Error("fresh entry should still be cached")
	}

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Clear() left %d entries", store.Len())
	}
}

func TestCachedFont(t *testing.T) {
	inner := &monoFont{}
	cached := gui.NewCachedFont(inner)

	for range 5 {
		if got := cached.MeasureText("abc"); got != (gui.Size{Width: 24, Height: 10}) {
			t.Errorf("MeasureText() = %v", got)
		}
	}
	if inner.measured != 1 {
		t.Errorf("inner font measured %d times, want 1", inner.measured)
	}
	if gui.UnwrapFont(cached) != gui.Font(inner) {
		t.Error("UnwrapFont() should return the wrapped font")
	}
	if cached.LineHeight() != 10 {
		t.Errorf("LineHeight() = %d", cached.LineHeight())
	}
}

func TestThemeFontsCleanedOnRedraw(t *testing.T) {
	inner := &monoFont{}
	cached := gui.NewCachedFont(inner)
	renderer := &mockRenderer{}
	theme, err := gui.NewTheme(gui.DefaultPalette(), cached, nil, renderer)
	if err != nil {
		t.Fatal(err)
	}
	ui, err := gui.New(renderer, screenSize, gui.WithTheme(theme))
	if err != nil {
		t.Fatal(err)
	}

	cached.MeasureText("stale")
	for range 3 {
		if err := ui.Redraw(); err != nil {
			t.Fatal(err)
		}
	}
	cached.MeasureText("stale")
	if inner.measured != 2 {
		t.Errorf("expected the unused entry to expire, inner measured %d times", inner.measured)
	}
}

func TestSurfaceCache(t *testing.T) {
	creates := 0
	cache := gui.NewSurfaceCache(
		func(*gui.ImageSurface) *int {
			creates++
			return new(int)
		},
		func(refreshes *int, _ *gui.ImageSurface) { *refreshes++ },
	)
	src := gui.NewImageSurface(gui.Size{Width: 4, Height: 4})

	first := cache.Get(src)
	if second := cache.Get(src); second != first || creates != 1 {
		t.Fatalf("unchanged surface: creates = %d, same copy = %v", creates, second == first)
	}
	if *first != 0 {
		t.Errorf("refreshes = %d before any change, want 0", *first)
	}

	src.Fill(gui.Rect{W: 2, H: 2}, gui.ColorRed)
	cache.Get(src)
	if *first != 1 {
		t.Errorf("refreshes after Fill = %d, want 1", *first)
	}

	src.Image().Pix[0] = 7
	src.Touch()
	cache.Get(src)
	cache.Get(src)
	if *first != 2 {
		t.Errorf("refreshes after Touch = %d, want 2", *first)
	}

	cache.Cleanup(1)
	if got := cache.Len(); got != 1 {
		t.Errorf("Len() after one frame = %d, want 1", got)
	}
	cache.Cleanup(2)
	if got := cache.Len(); got != 0 {
		t.Errorf("Len() after an unused frame = %d, want 0", got)
	}
	cache.Get(src)
	if creates != 2 {
		t.Errorf("creates after eviction = %d, want 2", creates)
	}
}
