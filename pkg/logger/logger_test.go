package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "governance.log")
	defer func() { Log = zap.NewNop() }()

	cfg := &Config{
		Level:      "DEBUG",
		Filename:   logFile,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
	}

	err := InitLogger(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, Log)

	Named("test").Info("Test log message")
	Sync()

	_, err = os.Stat(logFile)
	assert.NoError(t, err)
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:    "INVALID",
		Filename: filepath.Join(t.TempDir(), "invalid.log"),
	}

	err := InitLogger(cfg)
	assert.Error(t, err)
}

func TestInitLoggerStdoutOnly(t *testing.T) {
	defer func() { Log = zap.NewNop() }()

	assert.NoError(t, InitLogger(&Config{Level: "warn"}))
	assert.False(t, Log.Core().Enabled(zap.InfoLevel))
	assert.True(t, Log.Core().Enabled(zap.WarnLevel))

	assert.NotPanics(t, func() {
		Named("test").Warn("stdout only")
		Sync()
	})
}

func TestDefaultLoggerIsUsable(t *testing.T) {
	assert.NotPanics(t, func() {
		Named("default").Info("no-op logger accepts writes")
	})
}
