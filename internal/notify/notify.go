// Package notify sends desktop notifications when a card starts playing or
// its player cannot load.
package notify

import "sync"

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional)
	Icon       string  // Icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
}

// NowPlaying announces an episode that started playing. replaces is the id
// of the previous now-playing notification, so only one stays on screen.
func NowPlaying(title, guest string, replaces uint32) Notification {
	return Notification{
		Title:      title,
		Body:       guest,
		Icon:       "media-playback-start",
		Timeout:    5000,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

// Unavailable reports that the player runtime could not be loaded.
func Unavailable(detail string) Notification {
	return Notification{
		Title:   "podcards: player unavailable",
		Body:    detail,
		Icon:    "dialog-error",
		Timeout: -1,
		Urgency: UrgencyCritical,
	}
}

// Disabled returns a notifier that drops every notification.
func Disabled() Notifier {
	return &stubNotifier{}
}

// Recorder is a Notifier that keeps what it was sent. Ids start at 1.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	return uint32(len(r.sent)), nil //nolint:gosec // test helper, small counts
}

// Sent returns every notification sent so far.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

var (
	_ Notifier = (*Recorder)(nil)
	_ Notifier = (*stubNotifier)(nil)
)
