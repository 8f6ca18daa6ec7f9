/*
Package gui provides a retained-mode widget toolkit: the application builds
a tree of widgets once, and the toolkit computes layout and redraws only what
changed.

# Overview

Every widget reports a minimum size (MinSize) and draws itself into the
rectangle its parent hands down (Render). Containers ask their children for
min sizes bottom-up, split the available space, and render each child
top-down. Leaves draw and record the rectangle they occupied.

Top-level Roots are pinned at screen positions and render into their own
offscreen surfaces. The GUI composites them onto the screen, bottom root
first, and hands the screen to a backend Renderer.

# Quick Start

	// Setup
	renderer := opengl.NewRenderer()
	ui, err := gui.New(renderer, gui.Size{Width: 800, Height: 600})
	if err != nil {
	    return err
	}

	root, _ := gui.NewRoot(gui.Size{Width: 800, Height: 600}, gui.Position{})
	row, _ := gui.NewHBox()
	left, _ := gui.NewColorRect(gui.Size{Width: 50, Height: 50}, gui.ColorRed)
	mid, _ := gui.NewColorRect(gui.Size{Width: 50, Height: 50}, gui.ColorGreen,
	    gui.WithExpand(gui.ExpandBoth), gui.WithFill(gui.FillBoth))
	status, _ := gui.NewLabel("ready", gui.BasicFont(), gui.ColorWhite)
	row.Add(left, mid, status)
	root.SetChild(row)
	ui.AddRoot(root)

	// Frame loop
	for !window.ShouldClose() {
	    pollEvents()
	    status.SetText("running")  // marks the label dirty
	    if err := ui.Flush(); err != nil {
	        return err
	    }
	}

# Layout

A Box (NewHBox, NewVBox) gives each child its min size along the box axis.
The surplus goes to the children whose Expand flag is set on that axis, split
evenly with the remainder handed out one pixel at a time to the first
expanders, so the assigned sizes add up to the available space exactly. A
box with no expanding child leaves the surplus unused. Across the axis,
children get the largest sibling min size, or the full box extent when they
expand on that axis.

Inside its assigned space a widget is aligned per axis (start, center, end)
unless Fill is set, in which case it stretches.

A Frame has a declared size. Its min size ignores the child; the child gets
the declared size less the margin and the nine-patch insets, and is clipped
to it.

# Redrawing

Setters such as Label.SetText and Button.SetState mark their widget dirty.
Tracker.Flush repaints each marked widget in place on its root's surface,
recomposites the touched screen areas and presents them in one call. A
widget whose min size changed causes a relayout of its root; adding,
removing, moving or raising a root causes a full redraw. Flush with nothing
marked does nothing.

# Ownership

Each widget has at most one parent. Adding a widget under itself, under one
of its descendants, or under a second parent fails with ErrSelfChild,
ErrCycle or ErrHasParent. The parent link is weak, so a detached subtree does
not keep its former parent alive.

# Backends

	backend/opengl   go-gl textures over a software ImageSurface screen, GLFW window
	backend/ebiten   ebiten images, vector fills and text/v2 fonts
	backend/terminal terminal cell grid, one cell per pixel

ImageSurface (golang.org/x/image) is the software surface used by the OpenGL
backend, the doc image generator and the tests.

# Debugging

SetVerbose(true) logs full redraws, relayouts and dropped widgets through
log/slog. Dump prints a widget tree with min sizes and render rectangles.
*/
package gui
