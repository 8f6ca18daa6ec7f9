package gui

import "fmt"

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone = 0
	SpaceXS   = 2  // Extra small
	SpaceSM   = 4  // Small (default item spacing)
	SpaceMD   = 8  // Medium (default padding)
	SpaceLG   = 12 // Large
	SpaceXL   = 16 // Extra large
	Space2XL  = 24 // 2x extra large
	Space3XL  = 32 // 3x extra large
	Space4XL  = 48 // 4x extra large
)

// Palette holds the colors of a theme.
type Palette struct {
	// Text colors
	TextColor          Color
	TextDisabledColor  Color
	TextHighlightColor Color

	// Panel colors
	BackgroundColor      Color
	PanelColor           Color
	PanelBorderColor     Color
	PanelHeaderTextColor Color

	// Button colors
	ButtonColor         Color
	ButtonHoveredColor  Color
	ButtonActiveColor   Color
	ButtonDisabledColor Color
	ButtonBorderColor   Color

	// Separator
	SeparatorColor Color
}

// DefaultPalette returns the default colors.
func DefaultPalette() Palette {
	return Palette{
		TextColor:          ColorWhite,
		TextDisabledColor:  ColorGray,
		TextHighlightColor: ColorYellow,

		BackgroundColor:      RGBA(15, 15, 15, 255),
		PanelColor:           RGBA(20, 20, 20, 255),
		PanelBorderColor:     RGBA(80, 80, 80, 255),
		PanelHeaderTextColor: ColorWhite,

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),
		ButtonBorderColor:   RGBA(100, 100, 100, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),
	}
}

// GTAPalette returns a GTA San Andreas-inspired palette.
// Dark panels with cyan/yellow accents reminiscent of the game's menus.
func GTAPalette() Palette {
	return Palette{
		// GTA uses white/yellow text
		TextColor:          ColorWhite,
		TextDisabledColor:  RGBA(128, 128, 128, 255),
		TextHighlightColor: RGBA(255, 200, 0, 255), // GTA yellow

		BackgroundColor:      ColorBlack,
		PanelColor:           RGBA(10, 10, 10, 255),
		PanelBorderColor:     RGBA(100, 100, 100, 255),
		PanelHeaderTextColor: RGBA(255, 200, 0, 255),

		ButtonColor:         RGBA(40, 40, 40, 255),
		ButtonHoveredColor:  RGBA(60, 80, 100, 255),
		ButtonActiveColor:   RGBA(0, 150, 200, 255), // Cyan when active
		ButtonDisabledColor: RGBA(30, 30, 30, 255),
		ButtonBorderColor:   RGBA(0, 100, 150, 255),

		SeparatorColor: RGBA(0, 150, 200, 255),
	}
}

// LightPalette returns a light palette.
func LightPalette() Palette {
	return Palette{
		TextColor:          RGBA(20, 20, 20, 255),
		TextDisabledColor:  RGBA(150, 150, 150, 255),
		TextHighlightColor: RGBA(0, 100, 200, 255),

		BackgroundColor:      RGBA(235, 235, 235, 255),
		PanelColor:           RGBA(245, 245, 245, 255),
		PanelBorderColor:     RGBA(200, 200, 200, 255),
		PanelHeaderTextColor: RGBA(40, 40, 40, 255),

		ButtonColor:         RGBA(220, 220, 220, 255),
		ButtonHoveredColor:  RGBA(200, 200, 200, 255),
		ButtonActiveColor:   RGBA(180, 180, 180, 255),
		ButtonDisabledColor: RGBA(230, 230, 230, 255),
		ButtonBorderColor:   RGBA(150, 150, 150, 255),

		SeparatorColor: RGBA(200, 200, 200, 255),
	}
}

// ButtonPatches are the decorations of a button in each state.
type ButtonPatches struct {
	Normal   NinePatchAsset
	Hover    NinePatchAsset
	Pressed  NinePatchAsset
	Disabled NinePatchAsset
}

// Theme is the look shared by composite widgets. It is handed explicitly to
// the constructors that need it; there is no global theme.
type Theme struct {
	Palette

	Font      Font
	TitleFont Font

	Button ButtonPatches

	// Sizing
	ItemSpacing   int
	PanelPadding  int
	ButtonPadding Margin
	BorderSize    int
}

// NewTheme builds a theme from a palette. The button decorations are
// generated as flat bordered patches on surfaces allocated by r. A nil title
// font uses font.
func NewTheme(p Palette, font, title Font, r Renderer) (*Theme, error) {
	if font == nil {
		return nil, fmt.Errorf("theme: %w", ErrNilFont)
	}
	if title == nil {
		title = font
	}
	t := &Theme{
		Palette:       p,
		Font:          font,
		TitleFont:     title,
		ItemSpacing:   SpaceSM,
		PanelPadding:  SpaceMD,
		ButtonPadding: Symmetric(SpaceMD, SpaceXS),
		BorderSize:    1,
	}
	states := []struct {
		dst  *NinePatchAsset
		fill Color
	}{
		{&t.Button.Normal, p.ButtonColor},
		{&t.Button.Hover, p.ButtonHoveredColor},
		{&t.Button.Pressed, p.ButtonActiveColor},
		{&t.Button.Disabled, p.ButtonDisabledColor},
	}
	for _, st := range states {
		patch, err := FlatPatch(r, st.fill, p.ButtonBorderColor, t.BorderSize)
		if err != nil {
			return nil, fmt.Errorf("theme: %w", err)
		}
		*st.dst = patch
	}
	return t, nil
}

// FlatPatch creates a nine-patch filled with fill and framed by a border of
// the given width.
func FlatPatch(r Renderer, fill, border Color, width int) (NinePatchAsset, error) {
	if width < 0 {
		return NinePatchAsset{}, fmt.Errorf("flat patch border %d: %w", width, ErrNegativeSize)
	}
	side := 2*width + 1
	s, err := r.NewSurface(Size{Width: side, Height: side})
	if err != nil {
		return NinePatchAsset{}, fmt.Errorf("flat patch: %w", err)
	}
	s.Clear(border)
	s.Fill(Rect{X: width, Y: width, W: 1, H: 1}, fill)
	return NinePatchAsset{Surface: s, Insets: Uniform(width)}, nil
}

// Cleanables returns the theme fonts that cache measurements.
func (t *Theme) Cleanables() []Cleanable {
	var out []Cleanable
	for _, f := range []Font{t.Font, t.TitleFont} {
		if c, ok := f.(Cleanable); ok {
			out = append(out, c)
		}
	}
	return out
}

// Patch returns the decoration for a button state.
func (t *Theme) Patch(state ButtonState) NinePatchAsset {
	switch state {
	case ButtonHover:
		return t.Button.Hover
	case ButtonPressed:
		return t.Button.Pressed
	case ButtonDisabled:
		return t.Button.Disabled
	}
	return t.Button.Normal
}
