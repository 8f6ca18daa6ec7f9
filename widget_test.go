package gui_test

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	gui "github.com/go-theft-auto/retained-gui"
)

func TestMarginAddsToMinSize(t *testing.T) {
	margin := gui.Margin{Left: 1, Right: 2, Top: 3, Bottom: 4}
	font := &monoFont{}
	src := gui.NewImageSurface(gui.Size{Width: 7, Height: 5})

	tests := []struct {
		name    string
		build   func(opts ...gui.Option) (gui.Widget, error)
		content gui.Size
	}{
		{"color rect", func(opts ...gui.Option) (gui.Widget, error) {
			return gui.NewColorRect(gui.Size{Width: 10, Height: 20}, gui.ColorRed, opts...)
		}, gui.Size{Width: 10, Height: 20}},
		{"spacer", func(opts ...gui.Option) (gui.Widget, error) {
			return gui.NewSpacer(gui.Size{Width: 4, Height: 0}, opts...)
		}, gui.Size{Width: 4, Height: 0}},
		{"label", func(opts ...gui.Option) (gui.Widget, error) {
			return gui.NewLabel("abc", font, gui.ColorWhite, opts...)
		}, gui.Size{Width: 24, Height: 10}},
		{"text label", func(opts ...gui.Option) (gui.Widget, error) {
			return gui.NewTextLabel("aaa bbb", font, gui.ColorWhite, 40, gui.WrapModeWord, opts...)
		}, gui.Size{Width: 24, Height: 20}},
		{"image", func(opts ...gui.Option) (gui.Widget, error) {
			return gui.NewImage(src, opts...)
		}, gui.Size{Width: 7, Height: 5}},
		{"frame", func(opts ...gui.Option) (gui.Widget, error) {
			return gui.NewFrame(gui.Size{Width: 30, Height: 30}, opts...)
		}, gui.Size{Width: 30, Height: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, err := tt.build()
			if err != nil {
				t.Fatal(err)
			}
			if got := plain.MinSize(); got != tt.content {
				t.Errorf("MinSize() without margin = %v, want %v", got, tt.content)
			}

			w, err := tt.build(gui.WithMargin(margin))
			if err != nil {
				t.Fatal(err)
			}
			want := tt.content.Grow(margin)
			if got := w.MinSize(); got != want {
				t.Errorf("MinSize() = %v, want %v", got, want)
			}
			if again := w.MinSize(); again != want {
				t.Errorf("second MinSize() = %v, want %v", again, want)
			}
		})
	}
}

func TestWidgetConstructorErrors(t *testing.T) {
	negative := gui.WithMargin(gui.Margin{Bottom: -2})
	tests := []struct {
		name string
		err  func() error
		want error
	}{
		{"negative margin", func() error { _, err := gui.NewColorRect(gui.Size{}, gui.ColorRed, negative); return err }, gui.ErrNegativeMargin},
		{"negative rect size", func() error { _, err := gui.NewColorRect(gui.Size{Width: -1}, gui.ColorRed); return err }, gui.ErrNegativeSize},
		{"negative spacer", func() error { _, err := gui.NewSpacer(gui.Size{Height: -1}); return err }, gui.ErrNegativeSize},
		{"nil font", func() error { _, err := gui.NewLabel("x", nil, gui.ColorRed); return err }, gui.ErrNilFont},
		{"nil text font", func() error {
			_, err := gui.NewTextLabel("x", nil, gui.ColorRed, 10, gui.WrapModeWord)
			return err
		}, gui.ErrNilFont},
		{"negative wrap", func() error {
			_, err := gui.NewTextLabel("x", &monoFont{}, gui.ColorRed, -1, gui.WrapModeWord)
			return err
		}, gui.ErrNegativeSize},
		{"nil image", func() error { _, err := gui.NewImage(nil); return err }, gui.ErrNilSurface},
		{"box margin", func() error { _, err := gui.NewHBox(negative); return err }, gui.ErrNegativeMargin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.err(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	pos := gui.Position{X: 10, Y: 20}
	avail := gui.Size{Width: 100, Height: 50}
	content := gui.Size{Width: 20, Height: 10}

	tests := []struct {
		name   string
		margin gui.Margin
		align  gui.Alignment
		fill   gui.Fill
		want   gui.Rect
	}{
		{"centered", gui.Margin{}, gui.Alignment{}, gui.FillNone, gui.Rect{X: 50, Y: 40, W: 20, H: 10}},
		{"top left", gui.Margin{}, gui.Alignment{H: gui.AlignLeft, V: gui.AlignTop}, gui.FillNone, gui.Rect{X: 10, Y: 20, W: 20, H: 10}},
		{"bottom right", gui.Margin{}, gui.Alignment{H: gui.AlignRight, V: gui.AlignBottom}, gui.FillNone, gui.Rect{X: 90, Y: 60, W: 20, H: 10}},
		{"fill", gui.Margin{}, gui.Alignment{}, gui.FillBoth, gui.Rect{X: 10, Y: 20, W: 100, H: 50}},
		{"fill by alignment", gui.Margin{}, gui.Alignment{H: gui.AlignFillH, V: gui.AlignTop}, gui.FillNone, gui.Rect{X: 10, Y: 20, W: 100, H: 10}},
		{"margin", gui.Uniform(5), gui.Alignment{H: gui.AlignLeft, V: gui.AlignTop}, gui.FillNone, gui.Rect{X: 15, Y: 25, W: 20, H: 10}},
		{"margin and fill", gui.Uniform(5), gui.Alignment{}, gui.FillBoth, gui.Rect{X: 15, Y: 25, W: 90, H: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gui.Place(pos, avail, content, tt.margin, tt.align, tt.fill); got != tt.want {
				t.Errorf("Place() = %v, want %v", got, tt.want)
			}
		})
	}

	// Overflow keeps the content size and starts at the origin.
	got := gui.Place(pos, gui.Size{Width: 5, Height: 5}, content, gui.Margin{}, gui.Alignment{H: gui.AlignRight}, gui.FillBoth)
	if want := (gui.Rect{X: 10, Y: 20, W: 20, H: 10}); got != want {
		t.Errorf("overflow Place() = %v, want %v", got, want)
	}
}

func TestRenderRectBeforeRender(t *testing.T) {
	r := colorRect(t, 5, 5)
	if _, ok := r.RenderRect(); ok {
		t.Error("RenderRect() should report not rendered")
	}
	r.Render(gui.NewDrawList(gui.Size{Width: 5, Height: 5}), gui.Position{}, gui.Size{Width: 5, Height: 5})
	if got, ok := r.RenderRect(); !ok || got != (gui.Rect{W: 5, H: 5}) {
		t.Errorf("RenderRect() = %v, %v", got, ok)
	}
}

func TestLabelTruncate(t *testing.T) {
	label, err := gui.NewLabel("hello world", &monoFont{}, gui.ColorWhite, gui.WithAlign(gui.AlignLeft, gui.AlignTop))
	if err != nil {
		t.Fatal(err)
	}
	label.SetTruncate(true)

	dl := gui.NewDrawList(gui.Size{Width: 100, Height: 100})
	got := label.Render(dl, gui.Position{}, gui.Size{Width: 40, Height: 10})
	if want := (gui.Rect{W: 40, H: 10}); got != want {
		t.Errorf("rect = %v, want %v", got, want)
	}
	texts := dl.Commands(gui.OpText)
	if len(texts) != 1 || texts[0].Text != "hel.." {
		t.Errorf("drawn text = %+v, want \"hel..\"", texts)
	}
	// The min size still asks for the full text.
	if w := label.MinSize().Width; w != 88 {
		t.Errorf("MinSize().Width = %d, want 88", w)
	}
}

func TestLabelFillAlignsText(t *testing.T) {
	label, err := gui.NewLabel("ab", &monoFont{}, gui.ColorWhite, gui.WithAlign(gui.AlignFillH, gui.AlignMiddle))
	if err != nil {
		t.Fatal(err)
	}
	label.SetBackground(gui.ColorBlue)

	dl := gui.NewDrawList(gui.Size{Width: 100, Height: 10})
	label.Render(dl, gui.Position{}, gui.Size{Width: 100, Height: 10})

	fills := dl.Commands(gui.OpFill)
	if len(fills) != 1 || fills[0].Rect != (gui.Rect{W: 100, H: 10}) {
		t.Errorf("background = %+v, want the stretched rect", fills)
	}
	texts := dl.Commands(gui.OpText)
	if len(texts) != 1 || texts[0].At != (gui.Position{X: 42}) {
		t.Errorf("text = %+v, want it centered in the stretched rect", texts)
	}
	if c, ok := label.Background(); !ok || c != gui.ColorBlue {
		t.Errorf("Background() = %v, %v", c, ok)
	}
}

func TestTextLabelRender(t *testing.T) {
	tl, err := gui.NewTextLabel("one two three", &monoFont{}, gui.ColorWhite, 56, gui.WrapModeWord)
	if err != nil {
		t.Fatal(err)
	}
	lines := tl.Lines()
	if len(lines) != 2 || lines[0] != "one two" || lines[1] != "three" {
		t.Fatalf("Lines() = %q", lines)
	}

	dl := gui.NewDrawList(gui.Size{Width: 56, Height: 20})
	tl.Render(dl, gui.Position{}, gui.Size{Width: 56, Height: 20})
	texts := dl.Commands(gui.OpText)
	if len(texts) != 2 || texts[1].At != (gui.Position{X: 0, Y: 10}) {
		t.Errorf("text commands = %+v", texts)
	}
}

func TestImageRender(t *testing.T) {
	src := gui.NewImageSurface(gui.Size{Width: 4, Height: 2})
	img, err := gui.NewImage(src, gui.WithFill(gui.Fill{Horizontal: true}))
	if err != nil {
		t.Fatal(err)
	}
	dl := gui.NewDrawList(gui.Size{Width: 40, Height: 40})
	img.Render(dl, gui.Position{}, gui.Size{Width: 40, Height: 2})

	blits := dl.Commands(gui.OpBlit)
	if len(blits) != 1 {
		t.Fatalf("expected 1 blit, got %d", len(blits))
	}
	if want := (gui.Rect{W: 40, H: 2}); blits[0].Rect != want {
		t.Errorf("blit destination = %v, want %v", blits[0].Rect, want)
	}
	if want := (gui.Rect{W: 4, H: 2}); blits[0].SrcRect != want {
		t.Errorf("blit source = %v, want %v", blits[0].SrcRect, want)
	}
}

func TestSpacerDrawsNothing(t *testing.T) {
	sp, err := gui.NewSpacer(gui.Size{Width: 10, Height: 10}, gui.WithExpand(gui.ExpandBoth))
	if err != nil {
		t.Fatal(err)
	}
	dl := gui.NewDrawList(gui.Size{Width: 10, Height: 10})
	sp.Render(dl, gui.Position{}, gui.Size{Width: 10, Height: 10})
	if len(dl.CmdBuffer) != 0 {
		t.Errorf("spacer drew %d commands", len(dl.CmdBuffer))
	}
	if sp.Expand() != gui.ExpandBoth {
		t.Errorf("Expand() = %+v", sp.Expand())
	}
}

func TestIDsUnique(t *testing.T) {
	seen := make(map[gui.ID]bool)
	for range 100 {
		id := colorRect(t, 1, 1).ID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestWalkAndDump(t *testing.T) {
	leaf := colorRect(t, 10, 10, gui.WithName("leaf"))
	box := hbox(t, leaf)
	root := newRoot(t, gui.Size{Width: 20, Height: 20}, gui.Position{}, gui.WithName("main"))
	if err := root.SetChild(box); err != nil {
		t.Fatal(err)
	}

	var visited []gui.Widget
	gui.Walk(root, func(w gui.Widget) bool {
		visited = append(visited, w)
		return true
	})
	if len(visited) != 3 {
		t.Errorf("Walk visited %d widgets, want 3", len(visited))
	}

	// Returning false skips the subtree.
	visited = visited[:0]
	gui.Walk(root, func(w gui.Widget) bool {
		visited = append(visited, w)
		return false
	})
	if len(visited) != 1 {
		t.Errorf("Walk visited %d widgets, want 1", len(visited))
	}

	if gui.RootOf(leaf) != root {
		t.Error("RootOf(leaf) should find the root")
	}
	if !gui.IsAncestor(box, leaf) || gui.IsAncestor(leaf, box) {
		t.Error("IsAncestor() mismatch")
	}

	dump := gui.Dump(root)
	lines := strings.Split(strings.TrimSpace(dump), "\n")
	if len(lines) != 3 {
		t.Fatalf("Dump() = %q, want 3 lines", dump)
	}
	if !strings.HasPrefix(lines[0], "*gui.Root main#") {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "    *gui.ColorRect leaf#") || !strings.Contains(lines[2], "min=10x10") {
		t.Errorf("leaf line = %q", lines[2])
	}
}

func TestParentIsWeak(t *testing.T) {
	child := colorRect(t, 10, 10)
	func() {
		box := hbox(t, child)
		if got := child.Parent(); got != box {
			t.Fatalf("Parent() = %v, want the box", got)
		}
	}()

	runtime.GC()
	runtime.GC()
	if got := child.Parent(); got != nil {
		t.Errorf("Parent() = %v after the box was dropped, want nil", got)
	}
}
