package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WithFieldsAreAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.With(map[string]interface{}{"component": "places"}).
		WithError(errors.New("boom")).
		Warn("search failed", map[string]interface{}{"query": "museum"})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "search failed", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "places", ctx["component"])
	assert.Equal(t, "museum", ctx["query"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := New(tt.level, "json")
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNoOpLogger_DoesNotPanic(t *testing.T) {
	log := NewNoOpLogger()
	log.Debug("d", nil)
	log.Info("i", map[string]interface{}{"k": 1})
	log.With(nil).Error("e", nil)
}

func TestNewStructured_ReturnsZapLogger(t *testing.T) {
	log := NewStructured("warn", "json")

	zl, ok := log.(*zapLogger)
	assert.True(t, ok)
	assert.False(t, zl.l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zl.l.Core().Enabled(zapcore.WarnLevel))
}
