// Package signal provides the stateless counterpart to core/observer: a
// process-wide namespace of named signals that fan live Fire calls out to
// currently-connected callbacks, with no cached value and no replay.
//
// # Core Components
//
// Hub is the namespace mapping signal names to signals, with the same
// create / get-or-create / destroy lifecycle as observer.Registry.
//
// Signal[T] delivers payloads synchronously, in connection order, against a
// snapshot of the connection set taken at Fire time. Connect returns a
// Connection capability whose Disconnect removes exactly that callback and
// is safe to call any number of times.
//
// The hub-level Fire function delivers by name and treats an absent name as
// a silent no-op, so producers never need to know whether a consumer exists:
//
//	hub := signal.NewHub()
//
//	sig, _ := signal.GetOrCreate[string](hub, "config.reloaded")
//	conn := sig.Connect(func(path string) {
//	    fmt.Println("reloaded from", path)
//	})
//	defer conn.Disconnect()
//
//	_ = signal.Fire(hub, "config.reloaded", "/etc/app.yaml")
//	_ = signal.Fire(hub, "never.declared", 42) // silent no-op
//
// # Payload Tuples
//
// The payload is a single type parameter. Where the event is naturally a
// tuple of arguments, declare a small struct and fire that:
//
//	type KeyPressed struct {
//		Code int
//		Held bool
//	}
//
// # Error Handling
//
// Only strict creation and typed lookup can fail (ErrSignalExists,
// ErrSignalType). Firing an absent name, disconnecting twice, and destroying
// an absent name are deliberate no-ops.
package signal
