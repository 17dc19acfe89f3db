package observer

import "errors"

var (
	// ErrChannelExists is returned by CreateChannel when a live channel
	// already holds the requested name.
	ErrChannelExists = errors.New("channel already exists")

	// ErrChannelType is returned by GetOrCreateChannel when the named channel
	// exists with a different payload type than the one requested.
	ErrChannelType = errors.New("channel payload type mismatch")
)
