package cardlist

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/keymap"
	"github.com/llehouerou/podcards/internal/ui/testutil"
)

func episodes(n int) []catalog.Episode {
	eps := make([]catalog.Episode, n)
	for i := range eps {
		eps[i] = catalog.Episode{
			ID:        i + 1,
			Title:     "Episode " + string(rune('A'+i)),
			ContentID: "vid" + string(rune('a'+i)),
			GuestName: "Guest",
		}
	}
	return eps
}

func newList(n, width, height int) Model {
	m := New(episodes(n))
	m.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	m.SetSize(width, height)
	return m
}

func TestMove_Clamps(t *testing.T) {
	m := newList(3, 60, 100)

	m.Move(-1)
	assert.Equal(t, 0, m.Pos())
	m.Move(5)
	assert.Equal(t, 2, m.Pos())
	m.Move(-1)
	assert.Equal(t, 1, m.Pos())
}

func TestHandleAction(t *testing.T) {
	m := newList(3, 60, 100)

	assert.True(t, m.HandleAction(keymap.ActionMoveDown))
	assert.Equal(t, 1, m.Pos())
	assert.True(t, m.HandleAction(keymap.ActionJumpEnd))
	assert.Equal(t, 2, m.Pos())
	assert.True(t, m.HandleAction(keymap.ActionJumpStart))
	assert.Equal(t, 0, m.Pos())
	assert.False(t, m.HandleAction(keymap.ActionPlayPause))
	assert.False(t, m.HandleAction(keymap.ActionQuit))
}

func TestToggleHighlights_FocusedOnly(t *testing.T) {
	m := newList(2, 60, 100)
	m.Move(1)
	m.HandleAction(keymap.ActionToggleHighlights)

	assert.False(t, m.Cards()[0].Expanded())
	assert.True(t, m.Cards()[1].Expanded())
}

func TestScroll_KeepsFocusedVisible(t *testing.T) {
	m := newList(5, 60, 0)
	cardHeight := lipgloss.Height(m.renderCard(0))
	m.SetSize(60, cardHeight*2)

	m.Move(3)
	assert.Equal(t, 2, m.Offset())
	assert.True(t, testutil.ContainsLine(m.View(), "Episode D"))
	assert.False(t, testutil.ContainsLine(m.View(), "Episode A"))

	m.Move(-3)
	assert.Equal(t, 0, m.Offset())
	assert.True(t, testutil.ContainsLine(m.View(), "Episode A"))
}

func TestView_CroppedToHeight(t *testing.T) {
	m := newList(5, 60, 7)
	assert.LessOrEqual(t, len(strings.Split(m.View(), "\n")), 7)
}

func TestSetPlayerView_ByContainerID(t *testing.T) {
	m := newList(2, 60, 100)

	ok := m.SetPlayerView("podcast-player-2", embed.View{IsReady: true, Phase: embed.Ready})
	require.True(t, ok)
	assert.True(t, m.Cards()[1].PlayerView().IsReady)
	assert.False(t, m.Cards()[0].PlayerView().IsReady)

	assert.False(t, m.SetPlayerView("podcast-player-99", embed.View{}))
}

func TestFocused_Empty(t *testing.T) {
	m := newList(0, 60, 10)
	_, ok := m.Focused()
	assert.False(t, ok)
	assert.Equal(t, "No episodes.", m.View())
}
