package gui

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a widget for logging, tree dumps and the dirty tracker.
// IDs are unique within the process and never reused.
type ID uint64

var lastID atomic.Uint64

func newID() ID {
	return ID(lastID.Add(1))
}

// String formats the ID as "#n".
func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}
