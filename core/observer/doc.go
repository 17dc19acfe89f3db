// Package observer provides an in-process, named-channel publish/subscribe
// registry with cached-value semantics. Producers and consumers within a
// single application instance are decoupled through a shared namespace of
// typed channels: a producer sets a value on a channel by name, and every
// currently-registered subscriber is invoked synchronously, in registration
// order, on the producer's goroutine.
//
// # Core Components
//
// Registry is the process-wide namespace mapping channel names to channels.
// It enforces name uniqueness on strict creation, offers get-or-create
// lookup, and tears channels down idempotently. Construct one Registry at
// application start and inject it; tests build isolated instances.
//
// Channel[T] is one named event stream. It caches the last value passed to
// Set, so a late subscriber immediately observes current state: if a cached
// value is present at subscribe time, the callback is invoked with it once,
// synchronously, before Subscribe returns. Get, Clear and Destroy complete
// the lifecycle.
//
// SubscriptionID is the opaque token returned by Subscribe, used solely to
// remove that one subscription later. Discarding it without unsubscribing
// simply leaves the subscription live; using it after the channel was
// destroyed is a harmless no-op.
//
// # Basic Usage
//
//	import (
//		"fmt"
//
//		"github.com/dmitrymomot/observer/core/observer"
//	)
//
//	type UserStatus struct {
//		UserID string
//		Online bool
//	}
//
//	func main() {
//		registry := observer.NewRegistry()
//
//		ch, err := observer.CreateChannel[UserStatus](registry, "user.status")
//		if err != nil {
//			// a live channel already holds the name
//		}
//
//		id := ch.Subscribe(func(s UserStatus) {
//			fmt.Println(s.UserID, "online:", s.Online)
//		})
//
//		ch.Set(UserStatus{UserID: "u1", Online: true})
//
//		// A subscriber registered after Set receives the cached value
//		// immediately, before Subscribe returns.
//		ch.Subscribe(func(s UserStatus) {
//			fmt.Println("late subscriber sees:", s.UserID)
//		})
//
//		ch.Unsubscribe(id)
//		registry.DestroyChannel("user.status")
//	}
//
// # Delivery Semantics
//
// Delivery is synchronous and unbounded: Set invokes every snapshotted
// subscriber before it returns, with no queueing and no background dispatch.
// The subscriber set is snapshotted when Set is called, so callbacks may
// subscribe or unsubscribe (themselves or others) during delivery without
// corrupting the set. A subscriber removed mid-delivery still receives the
// in-flight value; a subscriber added mid-delivery does not (it receives the
// cached value through replay instead).
//
// Callbacks run without any internal lock held and may therefore re-enter
// the channel or the registry freely. There is no cross-goroutine delivery:
// whatever goroutine calls Set runs the callbacks.
//
// # Payload Typing
//
// A channel's payload type is fixed when the channel is first created.
// Requesting an existing name through GetOrCreateChannel with a different
// type parameter fails with ErrChannelType rather than silently aliasing the
// channel; CreateChannel rejects any duplicate name with ErrChannelExists
// regardless of type.
//
// # Error Handling
//
// Only strict creation and typed lookup can fail. Everything else is total:
// unsubscribing an unknown id, setting on a destroyed channel, and destroying
// an absent name are deliberate no-ops, so a producer never crashes just
// because no one is listening.
//
// For live fan-out without cached values, see the companion package
// core/signal. For pre-declaring a fixed set of named channels from a
// configuration file, see core/manifest.
package observer
