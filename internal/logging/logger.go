package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newConfig(verbose bool) zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = !verbose
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg
}

// New builds the process logger: JSON on stderr, debug level and stack
// traces when verbose. Console progress is printed to stdout by the report
// package.
func New(verbose bool) (*zap.Logger, error) {
	logger, err := newConfig(verbose).Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger.Named("teaching-export"), nil
}
