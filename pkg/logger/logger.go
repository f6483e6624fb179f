// Package logger owns the process-wide zap logger.
package logger

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "wm-genai-models-governance"

// Log is a no-op logger until InitLogger runs, so packages can log from tests.
var Log = zap.NewNop()

// Config carries the LOG_* settings. An empty Filename logs to stdout only.
type Config struct {
	Level      string
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// InitLogger replaces Log and the zap globals.
func InitLogger(cfg *Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	core := zapcore.NewCore(jsonEncoder(), writers(cfg), level)
	Log = zap.New(core, zap.AddCaller(), zap.Fields(zap.String("service", serviceName)))
	zap.ReplaceGlobals(Log)
	return nil
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) *zap.Logger {
	return Log.With(zap.String("component", component))
}

func jsonEncoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(ec)
}

func writers(cfg *Config) zapcore.WriteSyncer {
	stdout := zapcore.Lock(os.Stdout)
	if cfg.Filename == "" {
		return stdout
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	file := &zapcore.BufferedWriteSyncer{
		WS:            zapcore.AddSync(rotating),
		Size:          256 * 1024,
		FlushInterval: 5 * time.Second,
	}
	return zapcore.NewMultiWriteSyncer(stdout, file)
}

func Sync() {
	_ = Log.Sync()
}
