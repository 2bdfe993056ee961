// internal/app/update.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/keymap"
	"github.com/llehouerou/podcards/internal/notify"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Cards.SetSize(msg.Width, max(msg.Height-headerHeight-footerHeight, 1))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case InstanceChangedMsg:
		notifyCmd := m.refreshCards()
		return m, tea.Batch(m.WatchInstances(), notifyCmd)

	case notifiedMsg:
		if msg.ID != 0 {
			m.nowPlayingID = msg.ID
		}
		return m, nil

	case changesClosedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.Cards, cmd = m.Cards.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	action := m.Keys.ResolveKey(msg)
	switch action { //nolint:exhaustive // list actions are delegated below
	case keymap.ActionQuit:
		m.quitting = true
		return m, m.closeSession()
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		return m, nil
	case keymap.ActionPlayPause:
		if c, ok := m.Cards.Focused(); ok {
			return m, m.toggle(c.ContainerID())
		}
		return m, nil
	}

	if m.Cards.HandleAction(action) {
		if c, ok := m.Cards.Focused(); ok {
			m.Session.SetFocused(c.ContainerID())
		}
	}
	return m, nil
}

// refreshCards copies every instance view into its card. A single change
// message may stand for several dropped ones, so all cards are refreshed.
// It returns the notifications the transitions call for.
func (m *Model) refreshCards() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.Cards.Cards() {
		v, ok := m.Session.View(c.ContainerID())
		if !ok {
			continue
		}
		prev := c.PlayerView()
		m.Cards.SetPlayerView(c.ContainerID(), v)

		switch {
		case v.IsPlaying && !prev.IsPlaying:
			ep := c.Episode()
			cmds = append(cmds, m.sendNotification(notify.NowPlaying(ep.Title, ep.GuestName, m.nowPlayingID), true))
		case v.Err != nil && prev.Err == nil && errors.Is(v.Err, embed.ErrRuntimeUnavailable) && !m.failureSent:
			// Every card fails with the shared runtime; report it once.
			m.failureSent = true
			cmds = append(cmds, m.sendNotification(notify.Unavailable(v.Err.Error()), false))
		}
	}
	return tea.Batch(cmds...)
}
