package gui

import "fmt"

// Label is a single line of text. Its min size is the measured text size.
type Label struct {
	Base
	text     string
	font     Font
	color    Color
	bg       Color
	truncate bool
}

// NewLabel creates a label drawn with font f in color c.
func NewLabel(text string, f Font, c Color, opts ...Option) (*Label, error) {
	if f == nil {
		return nil, fmt.Errorf("label %q: %w", text, ErrNilFont)
	}
	l := &Label{text: text, font: f, color: c}
	if err := l.Init(l, opts...); err != nil {
		return nil, fmt.Errorf("label %q: %w", text, err)
	}
	return l, nil
}

// MinSize implements Widget.
func (l *Label) MinSize() Size {
	return l.font.MeasureText(l.text).Grow(l.margin)
}

// Render implements Widget.
func (l *Label) Render(s Surface, pos Position, avail Size) Rect {
	text := l.text
	measured := l.font.MeasureText(text)
	if inner := avail.Shrink(l.margin); l.truncate && inner.Width < measured.Width {
		text = TruncateText(l.font, text, inner.Width)
		measured = l.font.MeasureText(text)
	}
	rect := l.Place(pos, avail, measured)
	if l.bg.Alpha() != 0 {
		s.Fill(rect, l.bg)
	}
	at := Place(rect.Pos(), rect.Size(), measured, Margin{}, l.align.withoutFill(), FillNone)
	s.DrawText(at.Pos(), text, l.font, l.color)
	return l.Rendered(pos, avail, rect)
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and marks the label dirty.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.invalidate()
}

// SetColor changes the text color and marks the label dirty.
func (l *Label) SetColor(c Color) {
	if l.color == c {
		return
	}
	l.color = c
	l.invalidate()
}

// SetBackground paints the label rectangle with c before the text.
// A fully transparent color disables the background.
func (l *Label) SetBackground(c Color) {
	if l.bg == c {
		return
	}
	l.bg = c
	l.invalidate()
}

// Background implements Backgrounder.
func (l *Label) Background() (Color, bool) {
	return l.bg, l.bg.Alpha() == 0xFF
}

// SetTruncate makes the label shorten its text with ".." when it is given
// less width than it needs, instead of overflowing.
func (l *Label) SetTruncate(on bool) {
	l.truncate = on
}

// TextLabel is a block of text wrapped to a fixed width.
type TextLabel struct {
	Base
	text  string
	font  Font
	color Color
	width int
	mode  TextWrapMode
}

// NewTextLabel creates a label wrapping text at wrapWidth pixels.
// A wrapWidth of zero only breaks at explicit newlines.
func NewTextLabel(text string, f Font, c Color, wrapWidth int, mode TextWrapMode, opts ...Option) (*TextLabel, error) {
	if f == nil {
		return nil, fmt.Errorf("text label: %w", ErrNilFont)
	}
	if wrapWidth < 0 {
		return nil, fmt.Errorf("text label wrap width %d: %w", wrapWidth, ErrNegativeSize)
	}
	t := &TextLabel{text: text, font: f, color: c, width: wrapWidth, mode: mode}
	if err := t.Init(t, opts...); err != nil {
		return nil, fmt.Errorf("text label: %w", err)
	}
	return t, nil
}

// Lines returns the wrapped lines.
func (t *TextLabel) Lines() []string {
	return WrapText(t.font, t.text, t.width, t.mode)
}

// MinSize implements Widget.
func (t *TextLabel) MinSize() Size {
	return MeasureLines(t.font, t.Lines()).Grow(t.margin)
}

// Render implements Widget.
func (t *TextLabel) Render(s Surface, pos Position, avail Size) Rect {
	lines := t.Lines()
	rect := t.Place(pos, avail, MeasureLines(t.font, lines))
	lh := t.font.LineHeight()
	for i, line := range lines {
		s.DrawText(Position{X: rect.X, Y: rect.Y + i*lh}, line, t.font, t.color)
	}
	return t.Rendered(pos, avail, rect)
}

// Text returns the unwrapped text.
func (t *TextLabel) Text() string { return t.text }

// SetText replaces the text and marks the label dirty.
func (t *TextLabel) SetText(text string) {
	if t.text == text {
		return
	}
	t.text = text
	t.invalidate()
}
