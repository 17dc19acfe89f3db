package signal

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/observer/pkg/logger"
)

// connection pairs an internal id with its callback. Connection order is
// preserved by keeping connections in a slice.
type connection[T any] struct {
	id string
	fn func(T)
}

// Signal is one named event stream without cached state: Fire fans the
// payload out to every currently-connected callback and retains nothing.
//
// Signal is thread-safe. Callbacks run synchronously on the firing goroutine
// without the signal lock held, so they may freely re-enter the signal or
// the hub.
//
// Example:
//
//	sig, _ := signal.GetOrCreate[OrderPlaced](hub, "order.placed")
//
//	conn := sig.Connect(func(o OrderPlaced) {
//	    fmt.Println("order:", o.ID)
//	})
//	defer conn.Disconnect()
//
//	sig.Fire(OrderPlaced{ID: "o1"})
type Signal[T any] struct {
	name   string
	hub    *Hub
	logger *slog.Logger

	mu        sync.Mutex
	conns     []connection[T]
	destroyed bool
}

func newSignal[T any](name string, h *Hub) *Signal[T] {
	return &Signal[T]{
		name:   name,
		hub:    h,
		logger: h.logger,
	}
}

// Name returns the signal's hub name.
func (s *Signal[T]) Name() string {
	return s.name
}

// Connect registers fn and returns a Connection whose Disconnect removes it.
// There is no replay: fn is only invoked by Fire calls made while it is
// connected.
//
// A nil callback, or connecting on a destroyed signal, registers nothing and
// returns an inert Connection.
func (s *Signal[T]) Connect(fn func(T)) *Connection {
	if fn == nil {
		return &Connection{disconnect: func() {}}
	}

	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return &Connection{disconnect: func() {}}
	}

	id := uuid.New().String()
	s.conns = append(s.conns, connection[T]{id: id, fn: fn})
	s.mu.Unlock()

	s.logger.Debug("connected",
		logger.Signal(s.name),
		logger.Subscription(id))

	return &Connection{disconnect: func() { s.disconnect(id) }}
}

// Fire synchronously invokes every currently-connected callback with payload,
// in connection order. Delivery iterates a snapshot taken when Fire is
// called: callbacks may connect or disconnect during delivery without
// corrupting the set, and a callback disconnected mid-delivery still receives
// the in-flight payload.
//
// Fire on a destroyed signal, or with zero connections, is a no-op.
func (s *Signal[T]) Fire(payload T) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}

	snapshot := make([]connection[T], len(s.conns))
	copy(snapshot, s.conns)
	s.mu.Unlock()

	s.logger.Debug("signal fired",
		logger.Signal(s.name),
		logger.Count("connections", len(snapshot)))

	for _, conn := range snapshot {
		conn.fn(payload)
	}
}

// Destroy removes the signal from its hub and discards the connection set.
// The name becomes available for re-creation. Further operations on this
// reference are no-ops; Connections obtained before destruction become inert.
func (s *Signal[T]) Destroy() {
	s.hub.release(s.name, s)
	s.deactivate()
}

// disconnect removes the connection registered under id. No-op if already
// removed or the signal was destroyed.
func (s *Signal[T]) disconnect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, conn := range s.conns {
		if conn.id == id {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			return
		}
	}
}

// deactivate implements entry. Idempotent.
func (s *Signal[T]) deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destroyed = true
	s.conns = nil
}
