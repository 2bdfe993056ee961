// Package cardlist lays episode cards out in a focusable, scrolling column.
package cardlist

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/keymap"
	"github.com/llehouerou/podcards/internal/ui/card"
)

// Model is the list of cards. It owns focus and scrolling; playback is
// driven by the caller through the focused card's container id.
type Model struct {
	cards  []card.Model
	byID   map[string]int
	pos    int // focused card
	offset int // first visible card
	width  int
	height int
	now    func() time.Time
}

// New creates one card per episode, in order.
func New(episodes []catalog.Episode) Model {
	m := Model{
		cards: make([]card.Model, len(episodes)),
		byID:  make(map[string]int, len(episodes)),
		now:   time.Now,
	}
	for i, ep := range episodes {
		m.cards[i] = card.New(ep, i)
		m.byID[ep.ContainerID()] = i
	}
	return m
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Len returns the number of cards.
func (m Model) Len() int { return len(m.cards) }

// Cards returns the cards in display order.
func (m Model) Cards() []card.Model { return m.cards }

// Pos returns the index of the focused card.
func (m Model) Pos() int { return m.pos }

// Offset returns the index of the first visible card.
func (m Model) Offset() int { return m.offset }

// Focused returns the focused card.
func (m Model) Focused() (card.Model, bool) {
	if len(m.cards) == 0 {
		return card.Model{}, false
	}
	return m.cards[m.pos], true
}

// SetPlayerView updates the card bound to containerID.
func (m *Model) SetPlayerView(containerID string, v embed.View) bool {
	i, ok := m.byID[containerID]
	if !ok {
		return false
	}
	m.cards[i].SetPlayerView(v)
	return true
}

// Tick starts every card's spinner.
func (m Model) Tick() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.cards))
	for _, c := range m.cards {
		cmds = append(cmds, c.Tick())
	}
	return tea.Batch(cmds...)
}

// Update forwards non-key messages (spinner ticks) to the cards.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.cards {
		var cmd tea.Cmd
		m.cards[i], cmd = m.cards[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// HandleAction applies a navigation or card action. It reports whether the
// action belonged to the list.
func (m *Model) HandleAction(a keymap.Action) bool {
	switch a { //nolint:exhaustive // other actions belong to the app
	case keymap.ActionMoveUp:
		m.Move(-1)
	case keymap.ActionMoveDown:
		m.Move(1)
	case keymap.ActionJumpStart:
		m.Move(-len(m.cards))
	case keymap.ActionJumpEnd:
		m.Move(len(m.cards))
	case keymap.ActionToggleHighlights:
		if len(m.cards) > 0 {
			m.cards[m.pos].ToggleHighlights()
			m.ensureVisible()
		}
	default:
		return false
	}
	return true
}

// Move moves focus by delta cards, clamped to the list.
func (m *Model) Move(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.pos = min(max(m.pos+delta, 0), len(m.cards)-1)
	m.ensureVisible()
}

// ensureVisible scrolls so the focused card is fully shown when it fits.
func (m *Model) ensureVisible() {
	if len(m.cards) == 0 || m.height <= 0 {
		return
	}
	if m.pos < m.offset {
		m.offset = m.pos
		return
	}
	for m.offset < m.pos && m.heightBetween(m.offset, m.pos) > m.height {
		m.offset++
	}
}

func (m Model) heightBetween(from, to int) int {
	h := 0
	for i := from; i <= to; i++ {
		h += lipgloss.Height(m.renderCard(i))
	}
	return h
}

func (m Model) renderCard(i int) string {
	return m.cards[i].Render(m.width, i == m.pos, m.now())
}

// View renders the visible cards, cropped to the viewport height.
func (m Model) View() string {
	if len(m.cards) == 0 {
		return "No episodes."
	}

	var lines []string
	for i := m.offset; i < len(m.cards); i++ {
		lines = append(lines, strings.Split(m.renderCard(i), "\n")...)
		if m.height > 0 && len(lines) >= m.height {
			break
		}
	}
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}
