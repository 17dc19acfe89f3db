// Package manifest pre-declares a fixed set of named channels from a
// declarative YAML file, so applications can establish their channel
// namespace at startup without scattering creation calls across modules.
//
// A manifest lists channel names and which registry variant each belongs to:
//
//	channels:
//	  - name: user.status
//	    variant: value
//	  - name: order.placed
//	    variant: signal
//
// Typical startup wiring:
//
//	cfg, err := manifest.LoadConfig()
//	if err != nil {
//		return err
//	}
//
//	m, err := manifest.Load(cfg.Path)
//	if err != nil {
//		return err
//	}
//
//	registry := observer.NewRegistry()
//	hub := signal.NewHub()
//	if err := m.Apply(registry, hub); err != nil {
//		return err
//	}
//
//	if cfg.Watch {
//		w := manifest.NewWatcher(cfg.Path, registry, hub)
//		if err := w.Start(ctx); err != nil {
//			return err
//		}
//	}
//
// Apply uses get-or-create semantics, so re-applying is idempotent and never
// disturbs live channels. Declared channels carry `any` payloads, matching
// the untyped nature of a configuration file; code that needs compile-time
// payload typing should create its channels directly through core/observer
// or core/signal instead of declaring them here.
package manifest
