package vybiumrescue

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/log"
)

var (
	panicHookOnce      sync.Once
	panicHookInstalled atomic.Bool
)

// InitPanicHook installs the process-wide panic diagnostics: full
// goroutine tracebacks on fatal errors, and a log record with the stack for
// any panic raised inside an adapter call. The panic itself still
// propagates. Calling it again has no effect.
func InitPanicHook() {
	panicHookOnce.Do(func() {
		debug.SetTraceback("all")
		panicHookInstalled.Store(true)
		log.Root.Debug().Msg("panic hook installed")
	})
}

// PanicHookInstalled reports whether InitPanicHook has run.
func PanicHookInstalled() bool {
	return panicHookInstalled.Load()
}

// reportPanic must be deferred directly so that recover sees the panic.
func reportPanic(logger *zerolog.Logger, op string) {
	if !panicHookInstalled.Load() {
		return
	}
	r := recover()
	if r == nil {
		return
	}
	if logger == nil {
		logger = &log.Adapter
	}
	logger.Error().
		Str("op", op).
		Interface("panic", r).
		Str("stack", string(debug.Stack())).
		Msg("panic in hash adapter")
	panic(r)
}
