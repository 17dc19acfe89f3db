package observer

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/observer/pkg/logger"
)

// Registry is a process-wide namespace mapping channel names to stateful
// channels. It enforces name uniqueness on creation and supports idempotent
// teardown of individual channels.
//
// Registry is thread-safe. Construct one instance at application start and
// inject it into producers and consumers; tests can construct isolated
// instances instead of sharing ambient global state.
//
// Example:
//
//	registry := observer.NewRegistry(
//	    observer.WithLogger(logger),
//	)
//
//	ch, err := observer.CreateChannel[UserStatus](registry, "user.status")
type Registry struct {
	mu       sync.Mutex
	channels map[string]entry
	logger   *slog.Logger
}

// entry is the type-erased view of a registered channel. The registry only
// needs identity comparison and deactivation; payload-typed access happens
// through the generic package-level functions.
type entry interface {
	deactivate()
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger configures structured logging for the registry and the channels
// it creates. Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(log *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.logger = log
		}
	}
}

// NewRegistry creates an empty channel registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		channels: make(map[string]entry),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// CreateChannel allocates a new channel with no cached value and no
// subscribers, and registers it under name. It fails with ErrChannelExists if
// a live channel (of any payload type) already holds the name.
//
// Example:
//
//	ch, err := observer.CreateChannel[int](registry, "metrics.rps")
//	if err != nil {
//	    // name already taken
//	}
func CreateChannel[T any](r *Registry, name string) (*Channel[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.channels[name]; exists {
		return nil, fmt.Errorf("create channel %q: %w", name, ErrChannelExists)
	}

	ch := newChannel[T](name, r)
	r.channels[name] = ch

	r.logger.Debug("channel created", logger.Channel(name))
	return ch, nil
}

// GetOrCreateChannel returns the channel registered under name, creating it
// when absent. The payload type is fixed at first creation: requesting an
// existing name with a different type parameter fails with ErrChannelType.
//
// Example:
//
//	ch, err := observer.GetOrCreateChannel[UserStatus](registry, "user.status")
func GetOrCreateChannel[T any](r *Registry, name string) (*Channel[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.channels[name]; exists {
		ch, ok := existing.(*Channel[T])
		if !ok {
			return nil, fmt.Errorf("get channel %q: %w", name, ErrChannelType)
		}
		return ch, nil
	}

	ch := newChannel[T](name, r)
	r.channels[name] = ch

	r.logger.Debug("channel created", logger.Channel(name))
	return ch, nil
}

// DestroyChannel removes the named channel from the registry and discards its
// cached value and subscriber set. It is idempotent: destroying an absent or
// already-destroyed name is a no-op. Handles issued before destruction become
// inert rather than erroring.
func (r *Registry) DestroyChannel(name string) {
	r.mu.Lock()
	ch, exists := r.channels[name]
	if exists {
		delete(r.channels, name)
	}
	r.mu.Unlock()

	if !exists {
		return
	}

	ch.deactivate()
	r.logger.Debug("channel destroyed", logger.Channel(name))
}

// Has reports whether a live channel is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.channels[name]
	return exists
}

// Names returns the names of all live channels in unspecified order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	return names
}

// release removes ch from the namespace only if it still holds the name.
// A channel destroyed through a stale reference must not tear down a
// successor registered under the same name.
func (r *Registry) release(name string, ch entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, exists := r.channels[name]; exists && current == ch {
		delete(r.channels, name)
		r.logger.Debug("channel destroyed", logger.Channel(name))
	}
}
