package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/observer/core/observer"
	"github.com/dmitrymomot/observer/core/signal"
)

// Variant selects which registry a declared channel lives in.
type Variant string

const (
	// VariantValue declares a stateful channel with cached-value semantics
	// (core/observer).
	VariantValue Variant = "value"

	// VariantSignal declares a stateless fan-out signal (core/signal).
	VariantSignal Variant = "signal"
)

// Declaration pre-declares one named channel.
type Declaration struct {
	Name    string  `yaml:"name"`
	Variant Variant `yaml:"variant"`
}

// Manifest is the parsed declarative channel file. It lists the fixed set of
// named channels an application declares at startup, so producers and
// consumers can rely on the names existing without coordinating creation.
//
//	channels:
//	  - name: user.status
//	    variant: value
//	  - name: order.placed
//	    variant: signal
type Manifest struct {
	Channels []Declaration `yaml:"channels"`
}

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", path, err)
	}
	return Parse(data)
}

func (m *Manifest) validate() error {
	seen := make(map[string]struct{}, len(m.Channels))

	for _, decl := range m.Channels {
		if decl.Name == "" {
			return ErrEmptyName
		}
		if decl.Variant != VariantValue && decl.Variant != VariantSignal {
			return fmt.Errorf("channel %q: variant %q: %w", decl.Name, decl.Variant, ErrUnknownVariant)
		}
		if _, dup := seen[decl.Name]; dup {
			return fmt.Errorf("channel %q: %w", decl.Name, ErrDuplicateName)
		}
		seen[decl.Name] = struct{}{}
	}
	return nil
}

// Apply pre-declares every listed channel: value declarations in reg, signal
// declarations in hub. Declarations use get-or-create, so re-applying the
// same manifest is idempotent and never disturbs live subscribers.
//
// Manifest-declared channels carry `any` payloads; typed call sites that need
// a declared name must request it with the any type parameter. Errors from
// individual declarations are aggregated with errors.Join.
func (m *Manifest) Apply(reg *observer.Registry, hub *signal.Hub) error {
	if reg == nil || hub == nil {
		return ErrNilTarget
	}

	var errs []error
	for _, decl := range m.Channels {
		var err error
		switch decl.Variant {
		case VariantValue:
			_, err = observer.GetOrCreateChannel[any](reg, decl.Name)
		case VariantSignal:
			_, err = signal.GetOrCreate[any](hub, decl.Name)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("declare %q: %w", decl.Name, err))
		}
	}
	return errors.Join(errs...)
}
