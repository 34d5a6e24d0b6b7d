package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope(t *testing.T) {
	attr := Scope("contact.intake")
	assert.Equal(t, "scope", attr.Key)
	assert.Equal(t, "contact.intake", attr.Value.String())
}

func TestError(t *testing.T) {
	err := errors.New("mailgun unreachable")
	attr := Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  slog.Level
		disabled *slog.Level
	}{
		{name: "default", level: "", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
		{name: "debug", level: "debug", enabled: slog.LevelDebug},
		{name: "mixed case", level: "DeBuG", enabled: slog.LevelDebug},
		{name: "warn", level: "warn", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{name: "warning alias", level: "warning", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{name: "error", level: "error", enabled: slog.LevelError, disabled: ptr(slog.LevelWarn)},
		{name: "unknown falls back to info", level: "verbose", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			if tt.disabled != nil {
				assert.False(t, log.Enabled(ctx, *tt.disabled))
			}
		})
	}
}

func TestNewLogger_Production(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()
	require.NotNil(t, log)
	_, isJSON := log.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "production logger should emit JSON")
}

func ptr(l slog.Level) *slog.Level { return &l }
