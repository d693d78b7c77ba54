package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("should honour the configured level", func(t *testing.T) {
		logger, err := New("warn", EnvProduction)
		require.NoError(t, err)

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("should default to info", func(t *testing.T) {
		logger, err := New("", EnvDevelopment)
		require.NoError(t, err)

		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("should reject an unknown level", func(t *testing.T) {
		_, err := New("loud", EnvProduction)
		assert.Error(t, err)
	})
}

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := WithContextFields(context.Background(), zap.String("method", "GET"))
	ctx = WithContextFields(ctx, zap.String("path", "/api/v1/orders"))

	FromContext(ctx, base).Info("handled")
	FromContext(context.Background(), base).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, map[string]interface{}{"method": "GET", "path": "/api/v1/orders"}, entries[0].ContextMap())
	assert.Empty(t, entries[1].ContextMap())
}
