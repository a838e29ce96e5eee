package watchface

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFace is returned by NewApp when no face is given.
	ErrNilFace = errors.New("watchface: nil face")

	// ErrNilSurface is returned by NewApp when no surface is given.
	ErrNilSurface = errors.New("watchface: nil surface")

	// ErrNotStarted is returned when events are dispatched before Start.
	ErrNotStarted = errors.New("watchface: app not started")

	// ErrAlreadyStarted is returned by Start on a running app.
	ErrAlreadyStarted = errors.New("watchface: app already started")
)

// UnknownEventError is returned by App.Dispatch for an event kind it does
// not handle.
type UnknownEventError struct {
	Kind EventKind
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("watchface: unknown event kind %d", uint8(e.Kind))
}
