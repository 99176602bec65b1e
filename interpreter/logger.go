package interpreter

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the interpreter package's logger. It is a no-op logger unless SetLogger has been called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the interpreter package's logger. It must be called before any environment or executor is
// created.
func SetLogger(l *zap.Logger) {
	logger = l
}
