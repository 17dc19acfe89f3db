package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/observer/core/manifest"
	"github.com/dmitrymomot/observer/core/observer"
	"github.com/dmitrymomot/observer/core/signal"
)

const testManifest = `
channels:
  - name: user.status
    variant: value
  - name: order.placed
    variant: signal
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses valid manifest", func(t *testing.T) {
		t.Parallel()

		m, err := manifest.Parse([]byte(testManifest))
		require.NoError(t, err)
		require.Len(t, m.Channels, 2)

		assert.Equal(t, "user.status", m.Channels[0].Name)
		assert.Equal(t, manifest.VariantValue, m.Channels[0].Variant)
		assert.Equal(t, "order.placed", m.Channels[1].Name)
		assert.Equal(t, manifest.VariantSignal, m.Channels[1].Variant)
	})

	t.Run("parses empty manifest", func(t *testing.T) {
		t.Parallel()

		m, err := manifest.Parse([]byte("channels: []"))
		require.NoError(t, err)
		assert.Empty(t, m.Channels)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte("channels: [unclosed"))
		require.Error(t, err)
	})

	t.Run("rejects empty channel name", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte("channels:\n  - variant: value\n"))
		require.ErrorIs(t, err, manifest.ErrEmptyName)
	})

	t.Run("rejects unknown variant", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Parse([]byte("channels:\n  - name: x\n    variant: queue\n"))
		require.ErrorIs(t, err, manifest.ErrUnknownVariant)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()

		data := "channels:\n  - name: x\n    variant: value\n  - name: x\n    variant: signal\n"
		_, err := manifest.Parse([]byte(data))
		require.ErrorIs(t, err, manifest.ErrDuplicateName)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads manifest from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "observer.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testManifest), 0o644))

		m, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Len(t, m.Channels, 2)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()

		_, err := manifest.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("declares channels in both registries", func(t *testing.T) {
		t.Parallel()

		m, err := manifest.Parse([]byte(testManifest))
		require.NoError(t, err)

		registry := observer.NewRegistry()
		hub := signal.NewHub()

		require.NoError(t, m.Apply(registry, hub))

		assert.True(t, registry.Has("user.status"))
		assert.True(t, hub.Has("order.placed"))
	})

	t.Run("re-apply is idempotent", func(t *testing.T) {
		t.Parallel()

		m, err := manifest.Parse([]byte(testManifest))
		require.NoError(t, err)

		registry := observer.NewRegistry()
		hub := signal.NewHub()

		require.NoError(t, m.Apply(registry, hub))

		// A value cached between applies survives re-application.
		ch, err := observer.GetOrCreateChannel[any](registry, "user.status")
		require.NoError(t, err)
		ch.Set("online")

		require.NoError(t, m.Apply(registry, hub))

		got, ok := ch.Get()
		require.True(t, ok)
		assert.Equal(t, "online", got)
	})

	t.Run("fails on nil targets", func(t *testing.T) {
		t.Parallel()

		m, err := manifest.Parse([]byte(testManifest))
		require.NoError(t, err)

		require.ErrorIs(t, m.Apply(nil, signal.NewHub()), manifest.ErrNilTarget)
		require.ErrorIs(t, m.Apply(observer.NewRegistry(), nil), manifest.ErrNilTarget)
	})

	t.Run("reports conflict with a typed channel of the same name", func(t *testing.T) {
		t.Parallel()

		m, err := manifest.Parse([]byte(testManifest))
		require.NoError(t, err)

		registry := observer.NewRegistry()
		hub := signal.NewHub()

		// The name exists with a concrete payload type; the manifest's any
		// payload cannot alias it.
		_, err = observer.CreateChannel[int](registry, "user.status")
		require.NoError(t, err)

		err = m.Apply(registry, hub)
		require.ErrorIs(t, err, observer.ErrChannelType)

		// The non-conflicting declaration was still applied.
		assert.True(t, hub.Has("order.placed"))
	})
}

func TestLoadConfig(t *testing.T) {
	// t.Setenv is incompatible with t.Parallel.

	t.Run("uses defaults", func(t *testing.T) {
		cfg, err := manifest.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "observer.yaml", cfg.Path)
		assert.False(t, cfg.Watch)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("OBSERVER_MANIFEST_PATH", "/etc/app/channels.yaml")
		t.Setenv("OBSERVER_MANIFEST_WATCH", "true")

		cfg, err := manifest.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "/etc/app/channels.yaml", cfg.Path)
		assert.True(t, cfg.Watch)
	})
}
