package gui

// DrawOp identifies the kind of a recorded draw command.
type DrawOp uint8

const (
	OpClear DrawOp = iota
	OpFill
	OpBlit
	OpText
)

func (op DrawOp) String() string {
	switch op {
	case OpClear:
		return "clear"
	case OpFill:
		return "fill"
	case OpBlit:
		return "blit"
	case OpText:
		return "text"
	}
	return "unknown"
}

// DrawCmd is one recorded draw call. Rect is the destination, already
// clipped; commands clipped away entirely are not recorded.
type DrawCmd struct {
	Op      DrawOp
	Rect    Rect
	Color   Color
	Src     Surface // OpBlit
	SrcRect Rect    // OpBlit
	Text    string  // OpText
	At      Position
	Font    Font
	Clip    Rect // Clip rectangle active when recorded
}

// DrawList is a Surface that records draw calls instead of rasterizing them.
// Backends replay it; tests inspect it.
type DrawList struct {
	CmdBuffer []DrawCmd

	size Size
	clip ClipStack
}

// NewDrawList creates an empty recording surface of the given size.
func NewDrawList(size Size) *DrawList {
	dl := &DrawList{size: size, CmdBuffer: make([]DrawCmd, 0, 16)}
	dl.clip.Reset(RectAt(Position{}, size))
	return dl
}

// Reset drops the recorded commands and the clip stack.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Reset() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.clip.Reset(RectAt(Position{}, dl.size))
}

// Size implements Surface.
func (dl *DrawList) Size() Size { return dl.size }

// Clear implements Surface.
func (dl *DrawList) Clear(c Color) {
	bounds := RectAt(Position{}, dl.size)
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Op: OpClear, Rect: bounds, Color: c, Clip: bounds})
}

// Fill implements Surface.
func (dl *DrawList) Fill(r Rect, c Color) {
	if r = r.Intersect(dl.clip.Current()); r.Empty() {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{Op: OpFill, Rect: r, Color: c, Clip: dl.clip.Current()})
}

// Blit implements Surface. The recorded Rect is the unclipped destination so
// that scaling can be replayed; Clip carries the clipping.
func (dl *DrawList) Blit(src Surface, srcRect, dst Rect) {
	if src == nil || srcRect.Empty() || dst.Intersect(dl.clip.Current()).Empty() {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Op:      OpBlit,
		Rect:    dst,
		Src:     src,
		SrcRect: srcRect,
		Clip:    dl.clip.Current(),
	})
}

// DrawText implements Surface.
func (dl *DrawList) DrawText(at Position, text string, f Font, c Color) {
	if text == "" || f == nil {
		return
	}
	r := RectAt(at, f.MeasureText(text))
	if r.Intersect(dl.clip.Current()).Empty() {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Op:    OpText,
		Rect:  r,
		Color: c,
		Text:  text,
		At:    at,
		Font:  f,
		Clip:  dl.clip.Current(),
	})
}

// PushClip implements Surface.
func (dl *DrawList) PushClip(r Rect) { dl.clip.Push(r) }

// PopClip implements Surface.
func (dl *DrawList) PopClip() { dl.clip.Pop() }

// ClipDepth returns the number of pushed clip rectangles.
func (dl *DrawList) ClipDepth() int { return dl.clip.Depth() }

// Commands returns the recorded commands of one kind.
func (dl *DrawList) Commands(op DrawOp) []DrawCmd {
	var out []DrawCmd
	for _, cmd := range dl.CmdBuffer {
		if cmd.Op == op {
			out = append(out, cmd)
		}
	}
	return out
}

// Replay draws the recorded commands onto s, restoring each command's clip.
func (dl *DrawList) Replay(s Surface) {
	for _, cmd := range dl.CmdBuffer {
		if cmd.Op == OpClear {
			s.Clear(cmd.Color)
			continue
		}
		s.PushClip(cmd.Clip)
		switch cmd.Op {
		case OpFill:
			s.Fill(cmd.Rect, cmd.Color)
		case OpBlit:
			s.Blit(cmd.Src, cmd.SrcRect, cmd.Rect)
		case OpText:
			s.DrawText(cmd.At, cmd.Text, cmd.Font, cmd.Color)
		}
		s.PopClip()
	}
}
