package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"dispatch/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       bool
	}{
		{name: "production logs from info", environment: logger.ProductionEnvironment, debug: false},
		{name: "development logs debug", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "unknown falls back to development", environment: "staging", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, sync, err := logger.New(tt.environment)
			require.NoError(t, err)
			require.NotNil(t, log)
			defer sync()

			ctx := context.Background()
			assert.Equal(t, tt.debug, log.Enabled(ctx, slog.LevelDebug))
			assert.True(t, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNop(t *testing.T) {
	log := logger.Nop()

	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.With("component", "test").Info("discarded")
}
