// Package logger wraps zap behind a small package-level API.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the application-wide sugared logger. Init must run before use.
var Log *zap.SugaredLogger

var root *zap.Logger

// Config controls where and how verbosely the application logs.
type Config struct {
	Debug     bool
	LogToFile bool
	LogsDir   string
}

// Init builds the global logger. Console output always; file output when
// configured.
func Init(cfg Config) error {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			level,
		),
	}

	if cfg.LogToFile {
		if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		file, err := os.OpenFile(
			filepath.Join(cfg.LogsDir, "clubconnect.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0o644,
		)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(file),
			level,
		))
	}

	root = zap.New(zapcore.NewTee(cores...))
	Log = root.Sugar()
	return nil
}

// Named returns a child logger carrying name.
func Named(name string) (*zap.SugaredLogger, error) {
	if root == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return root.Named(name).Sugar(), nil
}

// Cleanup flushes buffered log entries.
func Cleanup() error {
	if root == nil {
		return nil
	}
	return root.Sync()
}
