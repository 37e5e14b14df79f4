package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func Test_Logger_Redacts_Secret_Keys(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	log := &Logger{SugaredLogger: zap.New(core).Sugar()}

	log.Info("calling model", "api_key", "sk-live-123", "model", "gpt-4o-mini", "redis_password", "hunter2")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "[REDACTED]", fields["api_key"])
		assert.Equal(t, "[REDACTED]", fields["redis_password"])
		assert.Equal(t, "gpt-4o-mini", fields["model"])
	}
}

func Test_Logger_Keeps_Dangling_Key(t *testing.T) {
	t.Parallel()

	got := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, got)
}

func Test_New_Selects_Mode(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"production", "development", ""} {
		log, err := New(mode)
		if assert.NoError(t, err, mode) {
			assert.NotNil(t, log.SugaredLogger)
		}
	}
}
