// internal/embed/instance.go
package embed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/llehouerou/podcards/internal/logging"
)

// Builder creates widgets. *Factory is the production implementation.
type Builder interface {
	Create(containerID, contentID string, onReady func(Widget), onStateChange func(State)) (Widget, error)
}

// Verify Factory implements Builder at compile time.
var _ Builder = (*Factory)(nil)

// View is the read-only snapshot a card renders from.
type View struct {
	IsPlaying bool
	IsReady   bool
	State     State
	Phase     Phase
	Pending   Action
	Err       error
}

// Instance owns one widget for one card and exposes Toggle as its only
// command.
//
// Lifecycle:
//
//	Uninitialized ──Initialize──▶ Loading ──onReady──▶ Ready
//	      │                          │                   │
//	      └────────── Teardown ──────┴───────────────────┴──▶ Destroyed
//
// While Loading, Toggle only records the desired action in a single slot
// (last write wins). The slot is applied and cleared when the widget
// reports ready. Destroyed is terminal: late widget callbacks and commands
// are ignored.
//
// A load failure sticks to the instance. A failed play or pause command is
// reported until the next successful command or state change.
type Instance struct {
	containerID string
	contentID   string
	loader      *Loader
	builder     Builder
	logger      *slog.Logger

	mu        sync.Mutex
	phase     Phase
	widget    Widget
	state     State
	ready     bool
	pending   Action
	loadErr   error
	cmdErr    error
	destroyed bool
	done      chan struct{}
	listeners []func()
}

// NewInstance creates an instance bound to containerID playing contentID.
// Nothing is loaded until Initialize or Toggle is called.
func NewInstance(containerID, contentID string, loader *Loader, builder Builder, logger *slog.Logger) *Instance {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Instance{
		containerID: containerID,
		contentID:   contentID,
		loader:      loader,
		builder:     builder,
		logger: logger.With(
			logging.FieldComponent, "instance",
			logging.FieldContainerID, containerID,
			logging.FieldContentID, contentID,
		),
		phase: Uninitialized,
		state: Unstarted,
		done:  make(chan struct{}),
	}
}

// ContainerID returns the container the widget binds to.
func (i *Instance) ContainerID() string { return i.containerID }

// ContentID returns the content the widget plays.
func (i *Instance) ContentID() string { return i.contentID }

// OnChange registers fn to be called after every observable change.
// fn runs without the instance lock held.
func (i *Instance) OnChange(fn func()) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.listeners = append(i.listeners, fn)
}

func (i *Instance) notify() {
	i.mu.Lock()
	listeners := append([]func(){}, i.listeners...)
	i.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// Snapshot returns the current view of the instance.
func (i *Instance) Snapshot() View {
	i.mu.Lock()
	defer i.mu.Unlock()
	err := i.loadErr
	if err == nil {
		err = i.cmdErr
	}
	return View{
		IsPlaying: i.state.IsPlayingLike(),
		IsReady:   i.ready,
		State:     i.state,
		Phase:     i.phase,
		Pending:   i.pending,
		Err:       err,
	}
}

// Initialize requests the runtime and builds the widget once it is loaded.
// It returns immediately; only the first call has any effect. Cancelling ctx
// abandons the wait without tearing the instance down.
func (i *Instance) Initialize(ctx context.Context) {
	i.mu.Lock()
	if i.phase != Uninitialized {
		i.mu.Unlock()
		return
	}
	i.phase = Loading
	i.mu.Unlock()

	sig := i.loader.EnsureLoaded()
	go i.awaitRuntime(ctx, sig)
	i.notify()
}

func (i *Instance) awaitRuntime(ctx context.Context, sig *Signal) {
	select {
	case <-sig.Done():
	case <-i.done:
		return
	case <-ctx.Done():
	}
	if ctx.Err() != nil {
		i.abandon()
		return
	}

	if err := sig.Err(); err != nil {
		i.fail(fmt.Errorf("%w: %w", ErrRuntimeUnavailable, err))
		return
	}
	i.build()
}

// abandon returns an instance whose wait was cancelled to Uninitialized so
// a later Initialize or Toggle starts over. A play requested meanwhile
// restarts the wait right away.
func (i *Instance) abandon() {
	i.mu.Lock()
	if i.destroyed || i.phase != Loading || i.widget != nil {
		i.mu.Unlock()
		return
	}
	i.phase = Uninitialized
	restart := i.pending != ActionNone
	i.mu.Unlock()

	i.logger.Debug("initialization abandoned", "restart", restart)
	if restart {
		i.Initialize(context.Background())
		return
	}
	i.notify()
}

func (i *Instance) build() {
	i.mu.Lock()
	if i.destroyed || i.widget != nil {
		i.mu.Unlock()
		return
	}

	w, err := i.builder.Create(i.containerID, i.contentID, i.handleReady, i.handleStateChange)
	if err != nil {
		i.loadErr = err
		i.mu.Unlock()
		i.logger.Error("widget creation failed", "error", err)
		i.notify()
		return
	}
	i.widget = w
	i.mu.Unlock()

	i.logger.Debug("widget built, waiting for ready")
	i.notify()
}

func (i *Instance) fail(err error) {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return
	}
	i.loadErr = err
	i.mu.Unlock()

	i.logger.Error("instance unavailable", "error", err)
	i.notify()
}

// handleReady applies the pending action and refreshes the state from the
// widget, all in one critical section.
func (i *Instance) handleReady(w Widget) {
	i.mu.Lock()
	if i.destroyed || i.ready || w == nil || w != i.widget {
		i.mu.Unlock()
		return
	}

	i.ready = true
	i.phase = Ready
	action := i.pending
	i.pending = ActionNone

	var err error
	switch action {
	case ActionPlay:
		err = w.Play()
	case ActionPause:
		err = w.Pause()
	case ActionNone:
	}
	i.cmdErr = err

	if s, ok := w.State(); ok {
		i.state = s
	} else {
		i.state = Unstarted
	}
	state := i.state
	i.mu.Unlock()

	if err != nil {
		i.logger.Warn("pending action failed", "action", action.String(), "error", err)
	}
	i.logger.Debug("widget ready",
		"applied", action.String(),
		logging.FieldState, state.String())
	i.notify()
}

func (i *Instance) handleStateChange(s State) {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return
	}
	i.state = s
	i.cmdErr = nil
	i.mu.Unlock()

	i.logger.Debug("state changed", logging.FieldState, s.String())
	i.notify()
}

// Toggle plays or pauses the widget. Before the widget is ready the intent
// is buffered and applied on ready. The command itself is sent without the
// instance lock held. Whether the widget counts as playing is
// always derived from the last reported state, never from the buffer.
// The state itself only changes when the widget reports it.
func (i *Instance) Toggle() {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return
	}

	if i.widget == nil {
		i.pending = ActionPlay
		start := i.phase == Uninitialized
		i.mu.Unlock()

		// Re-request the runtime in case the initial trigger was lost.
		i.loader.EnsureLoaded()
		if start {
			i.Initialize(context.Background())
		}
		i.notify()
		return
	}

	if !i.ready {
		if i.state.IsPlayingLike() {
			i.pending = ActionPause
		} else {
			i.pending = ActionPlay
		}
		i.mu.Unlock()
		i.notify()
		return
	}

	w, playing := i.widget, i.state.IsPlayingLike()
	i.mu.Unlock()

	// Provider commands can block on the player; they run unlocked.
	var err error
	if playing {
		err = w.Pause()
	} else {
		err = w.Play()
	}

	i.mu.Lock()
	if i.destroyed || i.widget != w {
		i.mu.Unlock()
		return
	}
	changed := err != nil || i.cmdErr != nil
	i.cmdErr = err
	i.mu.Unlock()

	if err != nil {
		i.logger.Warn("toggle failed", "error", err)
	}
	if changed {
		i.notify()
	}
}

// Teardown cancels any in-flight initialization and destroys the widget.
// It is safe to call more than once.
func (i *Instance) Teardown() {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return
	}
	i.destroyed = true
	i.phase = Destroyed
	i.pending = ActionNone
	w := i.widget
	i.widget = nil
	close(i.done)
	i.mu.Unlock()

	if w != nil {
		if err := w.Destroy(); err != nil {
			i.logger.Warn("widget destroy failed", "error", err)
		}
	}
	i.logger.Debug("instance torn down")
}
