package observer

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/observer/pkg/logger"
)

// SubscriptionID identifies one live subscription on a channel. It is the
// only way to remove that subscription later. The zero value is never a live
// subscription, so discarding it is always safe.
type SubscriptionID string

// subscriber pairs a subscription id with its callback. Registration order
// is preserved by keeping subscribers in a slice.
type subscriber[T any] struct {
	id SubscriptionID
	fn func(T)
}

// Channel is one named event stream with cached-value semantics: the last
// value passed to Set is retained, and late subscribers receive it
// synchronously at subscribe time.
//
// Channel is thread-safe. All delivery is synchronous on the calling
// goroutine; callbacks run without the channel lock held, so they may freely
// re-enter the channel or the registry.
//
// Example:
//
//	ch, _ := observer.GetOrCreateChannel[string](registry, "status")
//
//	id := ch.Subscribe(func(v string) {
//	    fmt.Println("status:", v)
//	})
//	defer ch.Unsubscribe(id)
//
//	ch.Set("ready") // fans out to every subscriber, caches "ready"
type Channel[T any] struct {
	name     string
	registry *Registry
	logger   *slog.Logger

	mu        sync.Mutex
	subs      []subscriber[T]
	value     T
	hasValue  bool
	destroyed bool
}

// newChannel is called by the registry with its lock held; the channel itself
// starts with no cached value and no subscribers.
func newChannel[T any](name string, r *Registry) *Channel[T] {
	return &Channel[T]{
		name:     name,
		registry: r,
		logger:   r.logger,
	}
}

// Name returns the channel's registry name.
func (c *Channel[T]) Name() string {
	return c.name
}

// Subscribe registers fn under a fresh subscription id and returns the id for
// later removal. If a cached value is present, fn is invoked with it exactly
// once, synchronously, before Subscribe returns.
//
// A nil callback, or subscribing on a destroyed channel, registers nothing
// and returns the zero SubscriptionID.
func (c *Channel[T]) Subscribe(fn func(T)) SubscriptionID {
	if fn == nil {
		return ""
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return ""
	}

	id := SubscriptionID(uuid.New().String())
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	replay := c.hasValue
	value := c.value
	c.mu.Unlock()

	c.logger.Debug("subscribed",
		logger.Channel(c.name),
		logger.Subscription(string(id)))

	// Replay runs outside the lock so the callback may re-enter the channel.
	if replay {
		fn(value)
	}
	return id
}

// Unsubscribe removes the subscription registered under id. It is a no-op if
// the id is not currently registered, already removed, or the channel was
// destroyed.
func (c *Channel[T]) Unsubscribe(id SubscriptionID) {
	if id == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.subs {
		if sub.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// Set stores value as the cached value, then synchronously invokes every
// currently-registered callback with it, in registration order. Delivery
// iterates a snapshot taken when Set is called: callbacks may subscribe or
// unsubscribe during delivery without corrupting the set, and a subscriber
// removed mid-delivery still receives the in-flight value.
//
// Set on a destroyed channel is a no-op.
func (c *Channel[T]) Set(value T) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}

	c.value = value
	c.hasValue = true
	snapshot := make([]subscriber[T], len(c.subs))
	copy(snapshot, c.subs)
	c.mu.Unlock()

	c.logger.Debug("value set",
		logger.Channel(c.name),
		logger.Count("subscribers", len(snapshot)))

	for _, sub := range snapshot {
		sub.fn(value)
	}
}

// Get returns the cached value, or false if none has been set since creation
// or the last Clear.
func (c *Channel[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasValue {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Clear discards the cached value without touching subscribers. Subsequent
// Get reports absence and new subscribers receive no replay until the next Set.
func (c *Channel[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.value = zero
	c.hasValue = false
}

// Destroy removes the channel from its registry and discards the cached value
// and subscriber set. The name becomes available for re-creation. Further
// operations on this reference are no-ops; subscription ids issued before
// destruction become inert.
func (c *Channel[T]) Destroy() {
	c.registry.release(c.name, c)
	c.deactivate()
}

// deactivate implements entry. Idempotent: destroying through a stale
// reference re-runs it harmlessly.
func (c *Channel[T]) deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.destroyed = true
	c.subs = nil
	c.value = zero
	c.hasValue = false
}
