package gui

import (
	"errors"
	"fmt"
	"strings"
	"weak"
)

// Container is implemented by widgets that own children.
type Container interface {
	Widget
	// Children returns the children in layout order. The slice is a copy.
	Children() []Widget
}

// RootOf walks parent links up from w and returns the Root at the top of
// its tree, or nil when the tree is not rooted.
func RootOf(w Widget) *Root {
	for w != nil {
		if r, ok := w.(*Root); ok {
			return r
		}
		w = w.Parent()
	}
	return nil
}

// IsAncestor reports whether a is w or one of w's ancestors.
func IsAncestor(a, w Widget) bool {
	if a == nil {
		return false
	}
	target := a.base()
	for w != nil {
		if w.base() == target {
			return true
		}
		w = w.Parent()
	}
	return false
}

// errAlreadyChild signals that child is already owned by parent; callers
// treat it as a no-op so a child is never listed twice.
var errAlreadyChild = errors.New("gui: already a child")

// attach links child under parent after checking the tree invariants.
func attach(parent, child Widget) error {
	if child == nil || parent == nil {
		return ErrNilWidget
	}
	if _, ok := child.(*Root); ok {
		return fmt.Errorf("attach root %s: %w", child.base(), ErrRootChild)
	}
	cb := child.base()
	if cb == parent.base() {
		return fmt.Errorf("attach %s: %w", cb, ErrSelfChild)
	}
	if IsAncestor(child, parent) {
		return fmt.Errorf("attach %s under %s: %w", cb, parent.base(), ErrCycle)
	}
	if p := cb.parent.Value(); p != nil {
		if p == parent.base() {
			return errAlreadyChild
		}
		return fmt.Errorf("attach %s under %s: owned by %s: %w", cb, parent.base(), p, ErrHasParent)
	}
	cb.parent = weak.Make(parent.base())
	return nil
}

func detach(child Widget) {
	child.base().parent = weak.Pointer[Base]{}
}

// Walk calls fn for w and every descendant, parents before children.
// Returning false from fn skips the widget's subtree.
func Walk(w Widget, fn func(Widget) bool) {
	if w == nil || !fn(w) {
		return
	}
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			Walk(child, fn)
		}
	}
}

// Dump renders the tree under w as indented text: one line per widget with
// its type, min size and last render rectangle.
func Dump(w Widget) string {
	var sb strings.Builder
	dump(&sb, w, 0)
	return sb.String()
}

func dump(sb *strings.Builder, w Widget, depth int) {
	if w == nil {
		return
	}
	ms := w.MinSize()
	fmt.Fprintf(sb, "%s%T %s min=%dx%d", strings.Repeat("  ", depth), w, w.base(), ms.Width, ms.Height)
	if r, ok := w.RenderRect(); ok {
		fmt.Fprintf(sb, " rect=%d,%d %dx%d", r.X, r.Y, r.W, r.H)
	}
	sb.WriteByte('\n')
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			dump(sb, child, depth+1)
		}
	}
}
