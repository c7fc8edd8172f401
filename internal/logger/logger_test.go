package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToZapFields(t *testing.T) {
	t.Parallel()

	t.Run("key value pairs", func(t *testing.T) {
		t.Parallel()

		fields := toZapFields([]any{"page", "Bill Walsh", "depth", 2})
		require.Len(t, fields, 2)
		assert.Equal(t, zap.Any("page", "Bill Walsh"), fields[0])
		assert.Equal(t, zap.Any("depth", 2), fields[1])
	})

	t.Run("zap fields pass through", func(t *testing.T) {
		t.Parallel()

		fields := toZapFields([]any{zap.String("component", "crawl")})
		require.Len(t, fields, 1)
		assert.Equal(t, zap.String("component", "crawl"), fields[0])
	})

	t.Run("dangling key is flagged", func(t *testing.T) {
		t.Parallel()

		fields := toZapFields([]any{"orphan"})
		require.Len(t, fields, 1)
		assert.Equal(t, zap.Any("orphan", ErrInvalidFields), fields[0])
	})

	t.Run("non-string key gets a positional name", func(t *testing.T) {
		t.Parallel()

		fields := toZapFields([]any{42})
		require.Len(t, fields, 1)
		assert.Equal(t, "field_0", fields[0].Key)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, toZapFields(nil))
	})
}

func TestGetLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "debug", want: zapcore.DebugLevel},
		{level: "info", want: zapcore.InfoLevel},
		{level: "WARN", want: zapcore.WarnLevel},
		{level: "error", want: zapcore.ErrorLevel},
		{level: "fatal", want: zapcore.FatalLevel},
		{level: "unknown", want: zapcore.InfoLevel},
		{level: "", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getLogLevel(tt.level), "level %q", tt.level)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	log, err := New(&Config{})
	require.NoError(t, err)
	require.NotNil(t, log)

	// Derived loggers keep satisfying the interface.
	assert.NotNil(t, log.With("key", "value"))
	assert.NotNil(t, log.WithComponent("test"))
}

func TestNoOp(t *testing.T) {
	t.Parallel()

	log := NewNoOp()
	log.Debug("ignored", "key", "value")
	log.Info("ignored")
	log.Warn("ignored")
	log.Error("ignored")

	assert.Same(t, log, log.With("key", "value"))
	assert.Same(t, log, log.WithComponent("test"))
}
