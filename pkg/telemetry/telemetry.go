// Package telemetry owns process-wide logging setup. Initialization is
// idempotent so the CLI and embedding applications can both call Init
// without coordinating.
package telemetry

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "lumin"

var (
	once    sync.Once
	initErr error
	logger  = zap.NewNop()
)

// Init configures the global zap logger with stderr output. The first call
// wins; later calls return the first call's outcome. Verbose enables debug
// logging with the development encoder, quiet raises the level to errors
// only.
func Init(verbose, quiet bool) error {
	once.Do(func() {
		var cfg zap.Config
		switch {
		case verbose:
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		case quiet:
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		default:
			cfg = zap.NewProductionConfig()
		}
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		cfg.InitialFields = map[string]interface{}{
			"service": serviceName,
		}

		l, err := cfg.Build()
		if err != nil {
			initErr = err
			return
		}
		logger = l
		zap.ReplaceGlobals(l)
	})
	return initErr
}

// L returns the process logger. Before Init it is a no-op logger, so
// library use without Init stays silent.
func L() *zap.Logger {
	return logger
}
