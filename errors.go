package gui

import "errors"

// Configuration errors. They are programmer errors reported when a widget is
// built or attached, never while rendering.
var (
	ErrNilWidget      = errors.New("gui: nil widget")
	ErrSelfChild      = errors.New("gui: widget cannot be its own child")
	ErrCycle          = errors.New("gui: widget is an ancestor of the new parent")
	ErrHasParent      = errors.New("gui: widget already has a parent")
	ErrNegativeMargin = errors.New("gui: margin has a negative side")
	ErrMarginTooLarge = errors.New("gui: margin does not fit inside the fixed size")
	ErrNegativeSize   = errors.New("gui: size has a negative dimension")
	ErrNilSurface     = errors.New("gui: nil surface")
	ErrNilFont        = errors.New("gui: nil font")
	ErrRootChild      = errors.New("gui: a root cannot be a child")
	ErrNotAttached    = errors.New("gui: root is not attached to this GUI")
	ErrNilRenderer    = errors.New("gui: nil renderer")
)
