// Package logger provides functions
// working with keygen logging.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const name = "keygen"

// Initialize - initializing a logging object
// writing json records to stderr.
func Initialize(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("Initialize->ParseAtomicLevel: %w",
			err)
	}

	cfg := zap.NewProductionConfig()

	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("Initialize->Build: %w", err)
	}

	return zl.Named(name), nil
}
