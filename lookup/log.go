package lookup

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs l as the package logger. The package is silent until
// a logger is installed; it only emits debug events (the shape chosen by
// [Of], the entry counts drained by [Create] and [Into]).
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "lookup").Logger()
	logger.Store(&l)
}

func log() *zerolog.Logger { return logger.Load() }
