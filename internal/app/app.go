// internal/app/app.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/keymap"
	"github.com/llehouerou/podcards/internal/notify"
	"github.com/llehouerou/podcards/internal/ui/cardlist"
)

// Layout rows outside the card list.
const (
	headerHeight = 1
	footerHeight = 1
)

// Model is the root application model.
type Model struct {
	Cards    cardlist.Model
	Session  *Session
	Keys     *keymap.Resolver
	Notifier notify.Notifier
	ShowHelp bool
	ErrorMsg string
	Width    int
	Height   int

	ctx          context.Context
	nowPlayingID uint32 // replaced by each now-playing notification
	failureSent  bool
	quitting     bool
}

// New creates the root model over a session built from the same episodes.
func New(ctx context.Context, episodes []catalog.Episode, session *Session) Model {
	return Model{
		Cards:    cardlist.New(episodes),
		Session:  session,
		Keys:     keymap.NewResolver(keymap.Bindings),
		Notifier: notify.Disabled(),
		ctx:      ctx,
	}
}

// Init implements tea.Model. Every card starts loading its player on mount.
func (m Model) Init() tea.Cmd {
	m.Session.Start(m.ctx)
	return tea.Batch(m.Cards.Tick(), m.WatchInstances())
}
