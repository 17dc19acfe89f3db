package manifest

import "errors"

var (
	// ErrEmptyName is returned when a declaration has no channel name.
	ErrEmptyName = errors.New("channel name is empty")

	// ErrUnknownVariant is returned when a declaration names a variant other
	// than "value" or "signal".
	ErrUnknownVariant = errors.New("unknown channel variant")

	// ErrDuplicateName is returned when two declarations share a name.
	ErrDuplicateName = errors.New("duplicate channel name")

	// ErrNilTarget is returned by Apply when the registry or hub is nil.
	ErrNilTarget = errors.New("nil registry or hub")
)
