// internal/embed/state.go
package embed

// State is the playback state reported by a provider widget.
//
// The numeric values are part of the provider wire contract and must not be
// renumbered:
//
//	Unstarted = -1
//	Ended     =  0
//	Playing   =  1
//	Paused    =  2
//	Buffering =  3
//	Cued      =  5
//
// Typical progression for a freshly built widget:
//
//	Unstarted ──load──▶ Cued ──play──▶ Buffering ──▶ Playing ⇄ Paused
//	                                                    │
//	                                                    ▼
//	                                                  Ended
type State int

const (
	Unstarted State = -1
	Ended     State = 0
	Playing   State = 1
	Paused    State = 2
	Buffering State = 3
	Cued      State = 5
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Ended:
		return "Ended"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Buffering:
		return "Buffering"
	case Cued:
		return "Cued"
	default:
		return "Unknown"
	}
}

// IsPlayingLike reports whether the widget is playing or about to resume
// playing on its own. A toggle in this state pauses.
func (s State) IsPlayingLike() bool {
	return s == Playing || s == Buffering
}

// Action is a buffered user intent applied once the widget is ready.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionPause
)

func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "play"
	case ActionPause:
		return "pause"
	default:
		return "none"
	}
}

// Phase is the lifecycle phase of an Instance.
type Phase int

const (
	Uninitialized Phase = iota
	Loading
	Ready
	Destroyed
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "Uninitialized"
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}
