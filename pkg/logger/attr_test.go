package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/observer/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("delivery", slog.String("channel", "x"), slog.Int("n", 2))
	require.Equal(t, "delivery", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "channel", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Observer Registry Identifier Tests
// ============================================================================

func TestChannel(t *testing.T) {
	t.Parallel()
	attr := logger.Channel("user.status")
	assert.Equal(t, "channel", attr.Key)
	assert.Equal(t, "user.status", attr.Value.String())
}

func TestSignal(t *testing.T) {
	t.Parallel()
	attr := logger.Signal("order.placed")
	assert.Equal(t, "signal", attr.Key)
	assert.Equal(t, "order.placed", attr.Value.String())
}

func TestSubscription(t *testing.T) {
	t.Parallel()
	attr := logger.Subscription("sub-1")
	assert.Equal(t, "subscription_id", attr.Key)
	assert.Equal(t, "sub-1", attr.Value.String())

	empty := logger.Subscription("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Generic Metadata Tests
// ============================================================================

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("watcher")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "watcher", attr.Value.String())
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("subscribers", 3)
	assert.Equal(t, "subscribers", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestPath(t *testing.T) {
	t.Parallel()
	attr := logger.Path("/etc/app/observer.yaml")
	assert.Equal(t, "path", attr.Key)
	assert.Equal(t, "/etc/app/observer.yaml", attr.Value.String())
}
