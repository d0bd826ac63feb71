package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	cfg := telemetry.Config{
		Enabled:     false,
		ServiceName: "wms-backend-test",
	}

	tp, err := telemetry.NewTracerProvider(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, tp)

	assert.False(t, tp.IsEnabled())

	// A disabled provider still hands out usable tracers
	tracer := tp.Tracer("test")
	assert.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "test.operation")
	assert.NotPanics(t, func() { span.End() })
}

func TestTracerProvider_ForceFlush_Disabled(t *testing.T) {
	cfg := telemetry.Config{Enabled: false}

	tp, err := telemetry.NewTracerProvider(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.NoError(t, tp.ForceFlush(context.Background()))
}

func TestTracerProvider_Shutdown_Disabled(t *testing.T) {
	cfg := telemetry.Config{Enabled: false}

	tp, err := telemetry.NewTracerProvider(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.NoError(t, tp.Shutdown(context.Background()))
}
