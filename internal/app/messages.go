// Package app contains the root bubbletea model of the card browser.
package app

// InstanceChangedMsg reports that a card's player changed.
type InstanceChangedMsg struct {
	ContainerID string
}

// changesClosedMsg is sent if the change channel is closed.
type changesClosedMsg struct{}

// notifiedMsg carries the id of a sent now-playing notification.
type notifiedMsg struct {
	ID uint32
}
