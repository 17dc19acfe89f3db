package signal

import "sync"

// Connection is the capability returned by Connect. Its only purpose is to
// remove that one callback later; it does not own the signal. Discarding a
// Connection without disconnecting leaves the callback connected.
type Connection struct {
	once       sync.Once
	disconnect func()
}

// Disconnect removes the associated callback. Idempotent: calling it more
// than once, or after the signal was destroyed, is a harmless no-op.
func (c *Connection) Disconnect() {
	c.once.Do(c.disconnect)
}
