package gui

import (
	"fmt"
	"slices"
)

// ButtonState is the visual state of a button. Deciding the state from input
// is up to the application.
type ButtonState uint8

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonPressed
	ButtonDisabled
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	case ButtonDisabled:
		return "disabled"
	}
	return "normal"
}

// Button is a label on a nine-patch decoration that changes with its state.
type Button struct {
	Base
	theme *Theme
	state ButtonState
	label *Label
}

// NewButton creates a button styled by theme.
func NewButton(text string, theme *Theme, opts ...Option) (*Button, error) {
	if theme == nil {
		return nil, fmt.Errorf("button %q: nil theme", text)
	}
	label, err := NewLabel(text, theme.Font, theme.TextColor, WithMargin(theme.ButtonPadding))
	if err != nil {
		return nil, fmt.Errorf("button: %w", err)
	}
	b := &Button{theme: theme, label: label}
	if err := b.Init(b, opts...); err != nil {
		return nil, fmt.Errorf("button %q: %w", text, err)
	}
	if err := attach(b, label); err != nil {
		return nil, fmt.Errorf("button %q: %w", text, err)
	}
	return b, nil
}

func (b *Button) content() Size {
	return b.label.MinSize().Grow(b.theme.Patch(b.state).Insets)
}

// MinSize implements Widget.
func (b *Button) MinSize() Size {
	return b.content().Grow(b.margin)
}

// Render implements Widget.
func (b *Button) Render(s Surface, pos Position, avail Size) Rect {
	rect := b.Place(pos, avail, b.content())
	patch := b.theme.Patch(b.state)
	DrawNinePatch(s, patch, rect)
	inner := rect.Inset(patch.Insets)
	b.label.Render(s, inner.Pos(), inner.Size())
	return b.Rendered(pos, avail, rect)
}

// Children implements Container.
func (b *Button) Children() []Widget { return []Widget{b.label} }

// Background implements Backgrounder: the decoration is not a plain fill.
func (b *Button) Background() (Color, bool) { return 0, false }

// Label returns the text widget.
func (b *Button) Label() *Label { return b.label }

// Text returns the button text.
func (b *Button) Text() string { return b.label.Text() }

// SetText replaces the button text.
func (b *Button) SetText(text string) { b.label.SetText(text) }

// State returns the visual state.
func (b *Button) State() ButtonState { return b.state }

// SetState switches the decoration and marks the button dirty.
func (b *Button) SetState(state ButtonState) {
	if b.state == state {
		return
	}
	b.state = state
	if state == ButtonDisabled {
		b.label.color = b.theme.TextDisabledColor
	} else {
		b.label.color = b.theme.TextColor
	}
	b.invalidate()
}

// Menu is a column with a title and one button per item, all buttons
// stretched to the widest.
type Menu struct {
	Box
	theme    *Theme
	title    *Label
	buttons  []*Button
	selected int
}

// NewMenu builds a menu from a theme. Nothing is selected initially.
func NewMenu(title string, items []string, theme *Theme, opts ...Option) (*Menu, error) {
	if theme == nil {
		return nil, fmt.Errorf("menu %q: nil theme", title)
	}
	m := &Menu{theme: theme, selected: -1}
	m.axis = vertical
	if err := m.Init(m, opts...); err != nil {
		return nil, fmt.Errorf("menu %q: %w", title, err)
	}

	var err error
	m.title, err = NewLabel(title, theme.TitleFont, theme.PanelHeaderTextColor,
		WithMargin(Margin{Bottom: theme.ItemSpacing}), WithName("menu-title"))
	if err != nil {
		return nil, fmt.Errorf("menu %q: %w", title, err)
	}
	if err := m.Add(m.title); err != nil {
		return nil, fmt.Errorf("menu %q: %w", title, err)
	}
	for _, item := range items {
		if _, err := m.AddItem(item); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddItem appends a button.
func (m *Menu) AddItem(text string) (*Button, error) {
	b, err := NewButton(text, m.theme,
		WithMargin(Margin{Top: m.theme.ItemSpacing}),
		WithExpand(ExpandHorizontal),
		WithFill(Fill{Horizontal: true}))
	if err != nil {
		return nil, fmt.Errorf("menu item %q: %w", text, err)
	}
	if err := m.Add(b); err != nil {
		return nil, fmt.Errorf("menu item %q: %w", text, err)
	}
	m.buttons = append(m.buttons, b)
	return b, nil
}

// Title returns the title label.
func (m *Menu) Title() *Label { return m.title }

// Buttons returns the item buttons in order.
func (m *Menu) Buttons() []*Button { return slices.Clone(m.buttons) }

// Selected returns the index of the highlighted item, or -1.
func (m *Menu) Selected() int { return m.selected }

// Select highlights item i and returns the others to normal. Disabled items
// and out of range indexes clear the selection.
func (m *Menu) Select(i int) {
	if i < 0 || i >= len(m.buttons) || m.buttons[i].State() == ButtonDisabled {
		i = -1
	}
	for j, b := range m.buttons {
		switch {
		case b.State() == ButtonDisabled:
		case j == i:
			b.SetState(ButtonHover)
		default:
			b.SetState(ButtonNormal)
		}
	}
	m.selected = i
}
