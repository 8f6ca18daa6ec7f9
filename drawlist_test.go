package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/retained-gui"
)

func TestDrawOpString(t *testing.T) {
	tests := []struct {
		op   gui.DrawOp
		want string
	}{
		{gui.OpClear, "clear"},
		{gui.OpFill, "fill"},
		{gui.OpBlit, "blit"},
		{gui.OpText, "text"},
		{gui.DrawOp(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDrawListRecords(t *testing.T) {
	dl := gui.NewDrawList(gui.Size{Width: 100, Height: 100})
	src := gui.NewImageSurface(gui.Size{Width: 2, Height: 2})
	font := &monoFont{}

	dl.Clear(gui.ColorBlack)
	dl.PushClip(gui.Rect{X: 10, Y: 10, W: 20, H: 20})
	dl.Fill(gui.Rect{W: 50, H: 50}, gui.ColorRed)
	dl.Fill(gui.Rect{X: 60, Y: 60, W: 5, H: 5}, gui.ColorRed) // clipped away
	dl.Blit(src, gui.Bounds(src), gui.Rect{X: 0, Y: 0, W: 40, H: 40})
	dl.DrawText(gui.Position{X: 12, Y: 12}, "hi", font, gui.ColorWhite)
	dl.DrawText(gui.Position{X: 12, Y: 12}, "", font, gui.ColorWhite)
	dl.DrawText(gui.Position{X: 12, Y: 12}, "hi", nil, gui.ColorWhite)
	dl.PopClip()

	if n := len(dl.CmdBuffer); n != 4 {
		t.Fatalf("expected 4 commands, got %d", n)
	}
	if dl.ClipDepth() != 0 {
		t.Errorf("ClipDepth() = %d", dl.ClipDepth())
	}

	fill := dl.Commands(gui.OpFill)[0]
	if want := (gui.Rect{X: 10, Y: 10, W: 20, H: 20}); fill.Rect != want {
		t.Errorf("fill rect = %v, want %v", fill.Rect, want)
	}
	blit := dl.Commands(gui.OpBlit)[0]
	if want := (gui.Rect{W: 40, H: 40}); blit.Rect != want || blit.Clip != (gui.Rect{X: 10, Y: 10, W: 20, H: 20}) {
		t.Errorf("blit = %+v, want the unclipped destination and the clip", blit)
	}
	text := dl.Commands(gui.OpText)[0]
	if text.Text != "hi" || text.Rect != (gui.Rect{X: 12, Y: 12, W: 16, H: 10}) {
		t.Errorf("text = %+v", text)
	}

	dl.Reset()
	if len(dl.CmdBuffer) != 0 {
		t.Errorf("Reset() left %d commands", len(dl.CmdBuffer))
	}
}

func TestDrawListReplay(t *testing.T) {
	dl := gui.NewDrawList(gui.Size{Width: 10, Height: 10})
	dl.Clear(gui.ColorBlack)
	dl.PushClip(gui.Rect{X: 0, Y: 0, W: 5, H: 10})
	dl.Fill(gui.Rect{W: 10, H: 10}, gui.ColorRed)
	dl.PopClip()

	s := gui.NewImageSurface(gui.Size{Width: 10, Height: 10})
	dl.Replay(s)

	img := s.Image()
	if got := img.RGBAAt(2, 2); got != rgba(gui.ColorRed) {
		t.Errorf("pixel (2,2) = %v, want red", got)
	}
	if got := img.RGBAAt(7, 2); got != rgba(gui.ColorBlack) {
		t.Errorf("pixel (7,2) = %v, want black", got)
	}
}
