package testing

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the testing package's logger. It is a no-op logger unless SetLogger has been called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the testing package's logger.
func SetLogger(l *zap.Logger) {
	logger = l
}
