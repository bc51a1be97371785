package logger

import (
	"homework_check_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitLoggerLevels(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop() })

	InitLogger(&config.Config{Server: config.ServerConfig{Mode: "test"}})
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))
	assert.True(t, Log.Core().Enabled(zap.InfoLevel))
}
