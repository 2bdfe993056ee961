// internal/app/commands.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podcards/internal/notify"
)

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchInstances returns a command that waits for the next player change.
func (m Model) WatchInstances() tea.Cmd {
	return waitForChannel(m.Session.Changes(), func(id string, ok bool) tea.Msg {
		if !ok {
			return changesClosedMsg{}
		}
		return InstanceChangedMsg{ContainerID: id}
	})
}

// sendNotification delivers n off the update loop. Only now-playing ids are
// reported back, so the next one replaces it.
func (m Model) sendNotification(n notify.Notification, nowPlaying bool) tea.Cmd {
	notifier := m.Notifier
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		if err != nil || !nowPlaying {
			return nil
		}
		return notifiedMsg{ID: id}
	}
}

// toggle plays or pauses a card off the update loop; player commands may
// wait on mpv.
func (m Model) toggle(containerID string) tea.Cmd {
	session := m.Session
	return func() tea.Msg {
		session.Toggle(containerID)
		return nil
	}
}

// closeSession tears every player down, then quits.
func (m Model) closeSession() tea.Cmd {
	session := m.Session
	return func() tea.Msg {
		session.Close()
		return tea.QuitMsg{}
	}
}
