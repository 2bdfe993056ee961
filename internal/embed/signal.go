// internal/embed/signal.go
package embed

import (
	"context"
	"sync"
)

// Signal is a one-shot completion notification observed by any number of
// waiters. It settles once, optionally with an error, and stays settled.
type Signal struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewSignal returns an unsettled signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// resolvedSignal returns a signal that is already settled successfully.
func resolvedSignal() *Signal {
	s := NewSignal()
	s.settle(nil)
	return s
}

// settle marks the signal complete. Only the first call has any effect.
func (s *Signal) settle(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

// Done returns a channel closed once the signal settles.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Resolved reports whether the signal has settled.
func (s *Signal) Resolved() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Err returns the settle error. It is nil until the signal settles.
func (s *Signal) Err() error {
	if !s.Resolved() {
		return nil
	}
	return s.err
}

// Wait blocks until the signal settles or ctx is done.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
