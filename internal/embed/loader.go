// internal/embed/loader.go
package embed

import (
	"log/slog"
	"sync"

	"github.com/llehouerou/podcards/internal/logging"
)

// Runtime is the external widget runtime that has to be loaded once per
// process before any widget can be built.
type Runtime interface {
	// Present reports whether the runtime is already available, in which
	// case no load is issued.
	Present() bool
	// Load fetches the runtime and calls ready exactly once when done.
	// A runtime that stalls never calls ready.
	Load(ready func(error))
}

// Hook is a chainable readiness callback. Every handler registered through
// Chain runs when the hook fires, oldest first.
type Hook struct {
	mu sync.Mutex
	fn func(error)
}

// Chain registers fn. The new handler invokes the previously registered one
// before running itself.
func (h *Hook) Chain(fn func(error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	prev := h.fn
	h.fn = func(err error) {
		if prev != nil {
			prev(err)
		}
		fn(err)
	}
}

// Fire runs the handler chain.
func (h *Hook) Fire(err error) {
	h.mu.Lock()
	fn := h.fn
	h.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// Loader loads a Runtime at most once and hands every caller the same
// completion signal.
type Loader struct {
	rt     Runtime
	hook   Hook
	logger *slog.Logger

	mu     sync.Mutex
	signal *Signal
}

// NewLoader creates a loader for rt. A nil logger discards output.
func NewLoader(rt Runtime, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{
		rt:     rt,
		logger: logger.With(logging.FieldComponent, "loader"),
	}
}

var (
	sharedOnce   sync.Once
	sharedLoader *Loader
)

// Shared returns the process-wide loader. The first call creates it from rt
// and logger; later calls ignore their arguments and return the same loader.
// The shared loader is never reset.
func Shared(rt Runtime, logger *slog.Logger) *Loader {
	sharedOnce.Do(func() {
		sharedLoader = NewLoader(rt, logger)
	})
	return sharedLoader
}

// Hook exposes the runtime readiness hook so other consumers can chain onto
// it without replacing handlers registered earlier.
func (l *Loader) Hook() *Hook {
	return &l.hook
}

// EnsureLoaded returns the shared load signal, starting the runtime load on
// the first call. Concurrent and repeated calls never start a second load.
func (l *Loader) EnsureLoaded() *Signal {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.signal != nil {
		return l.signal
	}

	if l.rt.Present() {
		l.logger.Debug("runtime already present")
		l.signal = resolvedSignal()
		return l.signal
	}

	sig := NewSignal()
	l.signal = sig
	l.hook.Chain(func(err error) {
		if err != nil {
			l.logger.Error("runtime load failed", "error", err)
		} else {
			l.logger.Info("runtime loaded")
		}
		sig.settle(err)
	})

	l.logger.Info("loading runtime")
	go l.rt.Load(l.hook.Fire)

	return sig
}

// Loaded reports whether the runtime finished loading successfully.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	sig := l.signal
	l.mu.Unlock()
	return sig != nil && sig.Resolved() && sig.Err() == nil
}
