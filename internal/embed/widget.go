// internal/embed/widget.go
package embed

import "errors"

var (
	// ErrContainerNotFound is returned when a widget is built against a
	// container that is not mounted.
	ErrContainerNotFound = errors.New("container not found")
	// ErrNotLoaded is returned when a widget is built before the runtime
	// finished loading.
	ErrNotLoaded = errors.New("widget runtime not loaded")
	// ErrDestroyed is returned by widget commands after Destroy.
	ErrDestroyed = errors.New("widget destroyed")
	// ErrRuntimeUnavailable is returned when the runtime cannot be loaded.
	ErrRuntimeUnavailable = errors.New("widget runtime unavailable")
)

// Widget is the narrow view of a provider widget the instance relies on.
type Widget interface {
	Play() error
	Pause() error
	// State returns the widget's current state. ok is false when the
	// widget cannot report one yet.
	State() (s State, ok bool)
	Destroy() error
}

// Events are the callbacks a widget delivers. They are always invoked
// asynchronously, never from inside the constructor or a command method.
type Events struct {
	// OnReady fires at most once, before any OnStateChange.
	OnReady func(w Widget)
	// OnStateChange fires on every state transition after OnReady.
	OnStateChange func(s State)
}

// PlayerVars are the provider playback parameters.
type PlayerVars struct {
	RelatedContent bool
	InlinePlayback bool
	Origin         string
	Autoplay       bool
}

// Options configure a single widget.
type Options struct {
	ContentID  string
	Host       string
	PlayerVars PlayerVars
}

// Provider constructs provider-native widgets bound to a container.
type Provider interface {
	NewWidget(c Container, opts Options, ev Events) (Widget, error)
}
