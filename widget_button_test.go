package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/retained-gui"
)

func setupTheme(t *testing.T) *gui.Theme {
	t.Helper()
	theme, err := gui.NewTheme(gui.GTAPalette(), &monoFont{}, nil, &imageRenderer{})
	if err != nil {
		t.Fatalf("NewTheme() returned error: %v", err)
	}
	return theme
}

func TestNewThemeDefaults(t *testing.T) {
	theme := setupTheme(t)
	if theme.TitleFont != theme.Font {
		t.Error("a nil title font should fall back to the body font")
	}
	for _, state := range []gui.ButtonState{gui.ButtonNormal, gui.ButtonHover, gui.ButtonPressed, gui.ButtonDisabled} {
		patch := theme.Patch(state)
		if err := patch.Validate(); err != nil {
			t.Errorf("%s patch invalid: %v", state, err)
		}
		if patch.Insets != gui.Uniform(theme.BorderSize) {
			t.Errorf("%s patch insets = %+v", state, patch.Insets)
		}
	}
	if _, err := gui.NewTheme(gui.DefaultPalette(), nil, nil, &imageRenderer{}); err == nil {
		t.Error("expected an error for a nil font")
	}
}

func TestFlatPatch(t *testing.T) {
	patch, err := gui.FlatPatch(&imageRenderer{}, gui.ColorRed, gui.ColorWhite, 2)
	if err != nil {
		t.Fatal(err)
	}
	img := patch.Surface.(*gui.ImageSurface).Image()
	if got := img.Bounds().Dx(); got != 5 {
		t.Errorf("patch width = %d, want 5", got)
	}
	if got := img.RGBAAt(2, 2); got != rgba(gui.ColorRed) {
		t.Errorf("center = %v, want red", got)
	}
	if got := img.RGBAAt(0, 2); got != rgba(gui.ColorWhite) {
		t.Errorf("border = %v, want white", got)
	}
	if _, err := gui.FlatPatch(&imageRenderer{}, gui.ColorRed, gui.ColorWhite, -1); err == nil {
		t.Error("expected an error for a negative border")
	}
}

func TestButtonMinSize(t *testing.T) {
	theme := setupTheme(t)
	b, err := gui.NewButton("OK", theme, gui.WithMargin(gui.Uniform(1)))
	if err != nil {
		t.Fatalf("NewButton() returned error: %v", err)
	}
	// Text 16x10, padding 8/2, border 1, margin 1.
	if got, want := b.MinSize(), (gui.Size{Width: 36, Height: 18}); got != want {
		t.Errorf("MinSize() = %v, want %v", got, want)
	}
	if b.Label().Parent() != b {
		t.Error("the label should belong to the button")
	}
	if _, err := gui.NewButton("x", nil); err == nil {
		t.Error("expected an error for a nil theme")
	}
}

func TestButtonRender(t *testing.T) {
	theme := setupTheme(t)
	b, err := gui.NewButton("OK", theme)
	if err != nil {
		t.Fatal(err)
	}
	dl := gui.NewDrawList(gui.Size{Width: 100, Height: 100})
	rect := b.Render(dl, gui.Position{}, b.MinSize())

	if want := (gui.Rect{W: 34, H: 16}); rect != want {
		t.Errorf("rect = %v, want %v", rect, want)
	}
	if n := len(dl.Commands(gui.OpBlit)); n != 9 {
		t.Errorf("expected 9 patch blits, got %d", n)
	}
	texts := dl.Commands(gui.OpText)
	if len(texts) != 1 || texts[0].At != (gui.Position{X: 9, Y: 3}) {
		t.Errorf("text = %+v, want at (9,3)", texts)
	}
}

func TestButtonState(t *testing.T) {
	theme := setupTheme(t)
	b, err := gui.NewButton("OK", theme)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		state gui.ButtonState
		name  string
	}{
		{gui.ButtonHover, "hover"},
		{gui.ButtonPressed, "pressed"},
		{gui.ButtonDisabled, "disabled"},
		{gui.ButtonNormal, "normal"},
	}
	for _, tt := range tests {
		b.SetState(tt.state)
		if b.State() != tt.state || b.State().String() != tt.name {
			t.Errorf("State() = %s, want %s", b.State(), tt.name)
		}
	}

	b.SetText("Cancel")
	if b.Text() != "Cancel" {
		t.Errorf("Text() = %q", b.Text())
	}
}

func TestButtonStateMarksDirty(t *testing.T) {
	theme := setupTheme(t)
	ui, err := gui.New(&mockRenderer{}, screenSize, gui.WithTheme(theme))
	if err != nil {
		t.Fatal(err)
	}
	root := newRoot(t, gui.Size{Width: 100, Height: 40}, gui.Position{})
	b, err := gui.NewButton("OK", theme)
	if err != nil {
		t.Fatal(err)
	}
	if err := root.SetChild(b); err != nil {
		t.Fatal(err)
	}
	if err := ui.AddRoot(root); err != nil {
		t.Fatal(err)
	}
	if err := ui.Flush(); err != nil {
		t.Fatal(err)
	}

	b.SetState(gui.ButtonPressed)
	if ui.Tracker().State(b) != gui.Dirty {
		t.Error("SetState should mark the button dirty")
	}
	b.SetState(gui.ButtonPressed)
	if n := ui.Tracker().Pending(); n != 1 {
		t.Errorf("expected 1 pending widget, got %d", n)
	}
}

func TestMenu(t *testing.T) {
	theme := setupTheme(t)
	m, err := gui.NewMenu("Main", []string{"Start", "Options", "Quit"}, theme)
	if err != nil {
		t.Fatalf("NewMenu() returned error: %v", err)
	}
	if m.Len() != 4 || len(m.Buttons()) != 3 {
		t.Fatalf("expected a title and 3 buttons, got %d children", m.Len())
	}
	if m.Title().Text() != "Main" || m.Selected() != -1 {
		t.Error("unexpected initial menu state")
	}

	// Widest button "Options": 56 + 16 padding + 2 border.
	if w := m.MinSize().Width; w != 74 {
		t.Errorf("MinSize().Width = %d, want 74", w)
	}

	buttons := m.Buttons()
	buttons[2].SetState(gui.ButtonDisabled)

	tests := []struct {
		name   string
		index  int
		want   int
		states []gui.ButtonState
	}{
		{"first", 0, 0, []gui.ButtonState{gui.ButtonHover, gui.ButtonNormal, gui.ButtonDisabled}},
		{"second", 1, 1, []gui.ButtonState{gui.ButtonNormal, gui.ButtonHover, gui.ButtonDisabled}},
		{"disabled", 2, -1, []gui.ButtonState{gui.ButtonNormal, gui.ButtonNormal, gui.ButtonDisabled}},
		{"out of range", 7, -1, []gui.ButtonState{gui.ButtonNormal, gui.ButtonNormal, gui.ButtonDisabled}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Select(tt.index)
			if m.Selected() != tt.want {
				t.Errorf("Selected() = %d, want %d", m.Selected(), tt.want)
			}
			for i, b := range buttons {
				if b.State() != tt.states[i] {
					t.Errorf("button %d state = %s, want %s", i, b.State(), tt.states[i])
				}
			}
		})
	}
}

func TestMenuButtonsStretch(t *testing.T) {
	theme := setupTheme(t)
	m, err := gui.NewMenu("Main", []string{"A", "Longer"}, theme)
	if err != nil {
		t.Fatal(err)
	}
	size := m.MinSize()
	m.Render(gui.NewDrawList(size), gui.Position{}, size)

	buttons := m.Buttons()
	short, _ := buttons[0].RenderRect()
	long, _ := buttons[1].RenderRect()
	if short.W != long.W {
		t.Errorf("button widths %d and %d differ", short.W, long.W)
	}
}
