package signal

import "errors"

var (
	// ErrSignalExists is returned by Create when a live signal already holds
	// the requested name.
	ErrSignalExists = errors.New("signal already exists")

	// ErrSignalType is returned when the named signal exists with a different
	// payload type than the one requested.
	ErrSignalType = errors.New("signal payload type mismatch")
)
