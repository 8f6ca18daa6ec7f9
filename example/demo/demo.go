// Package demo builds the widget tree shared by the example programs.
package demo

import (
	"fmt"

	gui "github.com/go-theft-auto/retained-gui"
)

// Demo is a main screen with a color row, wrapped text, a status line and a
// menu, plus a dialog root floating above it.
type Demo struct {
	Main   *gui.Root
	Dialog *gui.Root

	ui     *gui.GUI
	status *gui.Label
	menu   *gui.Menu
	ticks  int
}

// Build creates the demo for a screen of the given size. unit is the size of
// one layout step: 1 for terminal cells, a few pixels for pixel backends.
func Build(theme *gui.Theme, screen gui.Size, unit int) (*Demo, error) {
	d := &Demo{}
	var err error

	d.Main, err = gui.NewRoot(screen, gui.Position{}, gui.WithName("main"))
	if err != nil {
		return nil, err
	}
	d.Main.SetBackground(theme.PanelColor)

	column, err := gui.NewVBox(gui.WithMargin(gui.Uniform(unit)), gui.WithFill(gui.FillBoth))
	if err != nil {
		return nil, err
	}
	title, err := gui.NewLabel("retained-gui demo", theme.TitleFont, theme.TextHighlightColor, gui.WithAlign(gui.AlignLeft, gui.AlignTop))
	if err != nil {
		return nil, err
	}

	row, err := gui.NewHBox(gui.WithMargin(gui.Margin{Top: unit, Bottom: unit}))
	if err != nil {
		return nil, err
	}
	swatch := gui.Size{Width: 6 * unit, Height: 4 * unit}
	left, err := gui.NewColorRect(swatch, gui.ColorRed)
	if err != nil {
		return nil, err
	}
	middle, err := gui.NewColorRect(swatch, gui.RGBA(0, 150, 200, 255),
		gui.WithExpand(gui.ExpandBoth), gui.WithFill(gui.FillBoth), gui.WithName("expander"))
	if err != nil {
		return nil, err
	}
	right, err := gui.NewColorRect(swatch, gui.ColorYellow)
	if err != nil {
		return nil, err
	}
	if err := row.Add(left, middle, right); err != nil {
		return nil, err
	}

	about, err := gui.NewTextLabel(
		"The middle swatch expands and takes all surplus space. The status line below is redrawn alone on every tick.",
		theme.Font, theme.TextColor, 40*unit, gui.WrapModeAuto, gui.WithAlign(gui.AlignLeft, gui.AlignTop))
	if err != nil {
		return nil, err
	}
	d.status, err = gui.NewLabel("tick 0", theme.Font, theme.TextColor,
		gui.WithAlign(gui.AlignLeft, gui.AlignMiddle), gui.WithMargin(gui.Margin{Top: unit}))
	if err != nil {
		return nil, err
	}
	d.status.SetTruncate(true)

	d.menu, err = gui.NewMenu("Menu", []string{"Start", "Options", "Quit"}, theme,
		gui.WithMargin(gui.Margin{Top: unit}))
	if err != nil {
		return nil, err
	}

	if err := column.Add(title, row, about, d.status, d.menu); err != nil {
		return nil, err
	}
	if err := d.Main.SetChild(column); err != nil {
		return nil, err
	}

	dialog := gui.Size{Width: 24 * unit, Height: 8 * unit}
	at := gui.Position{X: screen.Width - dialog.Width - 2*unit, Y: 2 * unit}
	d.Dialog, err = gui.NewDecoratedRoot(dialog, at, theme.Button.Normal, gui.WithName("dialog"))
	if err != nil {
		return nil, err
	}
	d.Dialog.SetBackground(theme.ButtonColor)
	note, err := gui.NewLabel("Dialog", theme.Font, theme.TextColor)
	if err != nil {
		return nil, err
	}
	if err := d.Dialog.SetChild(note); err != nil {
		return nil, err
	}
	return d, nil
}

// Attach adds both roots to ui, dialog on top.
func (d *Demo) Attach(ui *gui.GUI) error {
	d.ui = ui
	if err := ui.AddRoot(d.Main); err != nil {
		return err
	}
	return ui.AddRoot(d.Dialog)
}

// Tick advances the demo state: the status text changes every tick, the
// menu selection every 20 ticks and the stacking order every 100.
func (d *Demo) Tick() error {
	d.ticks++
	d.status.SetText(fmt.Sprintf("tick %d", d.ticks))
	if d.ticks%20 == 0 {
		d.menu.Select((d.menu.Selected() + 1) % len(d.menu.Buttons()))
	}
	if d.ticks%100 == 0 && d.ui != nil {
		top := d.Dialog
		if d.ticks%200 == 0 {
			top = d.Main
		}
		return d.ui.Raise(top)
	}
	return nil
}

// Resize makes the main root cover a new screen size.
func (d *Demo) Resize(screen gui.Size) error {
	return d.Main.UpdateSize(screen)
}
