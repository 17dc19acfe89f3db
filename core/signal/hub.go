package signal

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/observer/pkg/logger"
)

// Hub is a process-wide namespace mapping signal names to stateless signals.
// It mirrors observer.Registry but carries no cached values: signals only fan
// out live Fire calls.
//
// Hub is thread-safe.
//
// Example:
//
//	hub := signal.NewHub(signal.WithLogger(logger))
//
//	sig, err := signal.Create[OrderPlaced](hub, "order.placed")
type Hub struct {
	mu      sync.Mutex
	signals map[string]entry
	logger  *slog.Logger
}

// entry is the type-erased view of a registered signal.
type entry interface {
	deactivate()
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithLogger configures structured logging for the hub and the signals it
// creates. Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(log *slog.Logger) HubOption {
	return func(h *Hub) {
		if log != nil {
			h.logger = log
		}
	}
}

// NewHub creates an empty signal hub.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		signals: make(map[string]entry),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Create allocates a new signal with no connections and registers it under
// name. It fails with ErrSignalExists if a live signal (of any payload type)
// already holds the name.
func Create[T any](h *Hub, name string) (*Signal[T], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.signals[name]; exists {
		return nil, fmt.Errorf("create signal %q: %w", name, ErrSignalExists)
	}

	sig := newSignal[T](name, h)
	h.signals[name] = sig

	h.logger.Debug("signal created", logger.Signal(name))
	return sig, nil
}

// GetOrCreate returns the signal registered under name, creating it when
// absent. The payload type is fixed at first creation: requesting an existing
// name with a different type parameter fails with ErrSignalType.
func GetOrCreate[T any](h *Hub, name string) (*Signal[T], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, exists := h.signals[name]; exists {
		sig, ok := existing.(*Signal[T])
		if !ok {
			return nil, fmt.Errorf("get signal %q: %w", name, ErrSignalType)
		}
		return sig, nil
	}

	sig := newSignal[T](name, h)
	h.signals[name] = sig

	h.logger.Debug("signal created", logger.Signal(name))
	return sig, nil
}

// Fire invokes every callback connected to the named signal with payload.
// An absent (never created or already destroyed) name is a silent no-op:
// producers are not required to know whether any consumer exists. It fails
// only when the name is live with a different payload type.
//
// Example:
//
//	// Fires if anyone declared the signal; otherwise does nothing.
//	err := signal.Fire(hub, "order.placed", OrderPlaced{ID: "o1"})
func Fire[T any](h *Hub, name string, payload T) error {
	h.mu.Lock()
	existing, exists := h.signals[name]
	h.mu.Unlock()

	if !exists {
		return nil
	}

	sig, ok := existing.(*Signal[T])
	if !ok {
		return fmt.Errorf("fire signal %q: %w", name, ErrSignalType)
	}

	sig.Fire(payload)
	return nil
}

// Destroy removes the named signal from the hub and discards its connection
// set. Idempotent: destroying an absent name is a no-op. Connections obtained
// before destruction become inert.
func (h *Hub) Destroy(name string) {
	h.mu.Lock()
	sig, exists := h.signals[name]
	if exists {
		delete(h.signals, name)
	}
	h.mu.Unlock()

	if !exists {
		return
	}

	sig.deactivate()
	h.logger.Debug("signal destroyed", logger.Signal(name))
}

// Has reports whether a live signal is registered under name.
func (h *Hub) Has(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, exists := h.signals[name]
	return exists
}

// Names returns the names of all live signals in unspecified order.
func (h *Hub) Names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, 0, len(h.signals))
	for name := range h.signals {
		names = append(names, name)
	}
	return names
}

// release removes sig from the namespace only if it still holds the name.
func (h *Hub) release(name string, sig entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, exists := h.signals[name]; exists && current == sig {
		delete(h.signals, name)
		h.logger.Debug("signal destroyed", logger.Signal(name))
	}
}
