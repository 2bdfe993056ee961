//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	appName       = "podcards"
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod  = notifyService + ".Notify"
)

// busNotifier sends notifications to the desktop notification daemon.
type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one it returns a notifier that
// drops everything.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Disabled(), nil //nolint:nilerr // no session bus, notifications are optional
	}
	return &busNotifier{obj: conn.Object(notifyService, notifyPath)}, nil
}

func (b *busNotifier) Notify(n Notification) (uint32, error) {
	var id uint32
	if err := b.obj.Call(notifyMethod, 0, notifyArgs(n)...).Store(&id); err != nil {
		return 0, fmt.Errorf("notify %q: %w", n.Title, err)
	}
	return id, nil
}

// notifyArgs orders n as the Notify method expects: app name, replaced id,
// icon, summary, body, actions, hints, expire timeout.
func notifyArgs(n Notification) []any {
	return []any{
		appName,
		n.ReplacesID,
		n.Icon,
		n.Title,
		n.Body,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(byte(n.Urgency))},
		n.Timeout,
	}
}
