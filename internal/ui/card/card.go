// Package card renders one podcast episode card with its play button.
package card

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/podcards/internal/catalog"
	"github.com/llehouerou/podcards/internal/embed"
	"github.com/llehouerou/podcards/internal/errmsg"
	"github.com/llehouerou/podcards/internal/icons"
	"github.com/llehouerou/podcards/internal/ui/render"
	"github.com/llehouerou/podcards/internal/ui/styles"
)

// Text limits of a collapsed card.
const (
	bioLines         = 2
	descriptionLines = 3
)

// Model is the card of one episode. It is a pure view over an embed.View;
// the play button's only command is the instance's Toggle.
type Model struct {
	episode  catalog.Episode
	theme    styles.CardTheme
	spinner  spinner.Model
	view     embed.View
	expanded bool
}

// New creates the card of ep at position index in the list.
func New(ep catalog.Episode, index int) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.T().Primary)),
	)
	return Model{
		episode: ep,
		theme:   styles.CardThemeFor(index),
		spinner: sp,
		view:    embed.View{State: embed.Unstarted},
	}
}

// Episode returns the card's episode.
func (m Model) Episode() catalog.Episode { return m.episode }

// ContainerID returns the stable id of the card's widget container.
func (m Model) ContainerID() string { return m.episode.ContainerID() }

// PlayerView returns the last instance view applied to the card.
func (m Model) PlayerView() embed.View { return m.view }

// SetPlayerView replaces the instance view the button renders from.
func (m *Model) SetPlayerView(v embed.View) { m.view = v }

// Expanded reports whether highlights are shown.
func (m Model) Expanded() bool { return m.expanded }

// ToggleHighlights shows or hides the highlights section.
func (m *Model) ToggleHighlights() { m.expanded = !m.expanded }

// Loading reports whether the button shows the spinner.
func (m Model) Loading() bool {
	return !m.view.IsReady && m.view.Err == nil && m.view.Phase != embed.Destroyed
}

// Tick starts the spinner animation.
func (m Model) Tick() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner. Ticks stop once the card is ready.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !m.Loading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return m, cmd
}

// Render draws the card at the given width. now anchors the relative date.
func (m Model) Render(width int, focused bool, now time.Time) string {
	s := styles.T().S()
	frame := styles.CardStyle(m.theme, focused, width)
	inner := max(width-frame.GetHorizontalFrameSize(), 10)

	var lines []string
	lines = append(lines, m.theme.Title(render.Truncate(m.episode.Title, inner)))
	if date := publishedLabel(m.episode.PublishedAt, now); date != "" {
		lines = append(lines, s.Subtle.Render(date))
	}

	guest := s.Guest.Render(icons.Guest() + render.Truncate(m.episode.GuestName, inner))
	if links := m.linkLabels(); links != "" {
		guest += "  " + links
	}
	lines = append(lines, "", guest)

	for _, l := range render.Clamp(render.Wrap(strings.Join(m.episode.GuestBio, " "), inner), bioLines, inner) {
		lines = append(lines, s.Muted.Render(l))
	}
	if m.episode.Description != "" && m.episode.Description != m.episode.Title {
		lines = append(lines, "")
		for _, l := range render.Clamp(render.Wrap(m.episode.Description, inner), descriptionLines, inner) {
			lines = append(lines, s.Base.Render(l))
		}
	}

	lines = append(lines, "", m.button(inner))

	if len(m.episode.Highlights) > 0 {
		if m.expanded {
			lines = append(lines, "", s.Title.Render("Highlights"))
			for _, h := range m.episode.Highlights {
				for i, l := range render.Wrap(h, inner-2) {
					prefix := "  "
					if i == 0 {
						prefix = icons.Highlight() + " "
					}
					lines = append(lines, s.Base.Render(prefix+l))
				}
			}
		} else {
			lines = append(lines, s.Subtle.Render("h: show highlights"))
		}
	}

	return frame.Render(strings.Join(lines, "\n"))
}

func (m Model) button(width int) string {
	s := styles.T().S()
	v := m.view

	switch {
	case v.Err != nil && !v.IsReady:
		return s.Error.Render(errorCaption(v.Err, width))
	case v.Phase == embed.Destroyed:
		return s.Subtle.Render(icons.Closed() + " closed")
	case !v.IsReady:
		label := "loading player"
		if v.Pending == embed.ActionPlay {
			label = "loading player, will play"
		}
		return m.spinner.View() + " " + s.Muted.Render(label)
	}

	button := s.Button.Render(icons.Play() + " play")
	if v.IsPlaying {
		button = s.Playing.Render(icons.Pause() + " pause")
	}
	// A failed command leaves the player usable; show it beside the button.
	if v.Err != nil {
		if rest := width - lipgloss.Width(button) - 2; rest > 0 {
			button += "  " + s.Error.Render(errorCaption(v.Err, rest))
		}
	}
	return button
}

func errorCaption(err error, width int) string {
	return render.Truncate(icons.Error()+" "+strings.Join(strings.Fields(describeErr(err)), " "), width)
}

func (m Model) linkLabels() string {
	links := m.episode.SocialLinks()
	if len(links) == 0 {
		return ""
	}
	labels := make([]string, 0, len(links))
	for _, l := range links {
		labels = append(labels, styles.T().S().Link.Render(l.Platform))
	}
	return strings.Join(labels, " ")
}

// describeErr turns an instance error into a short button caption.
func describeErr(err error) string {
	switch {
	case errors.Is(err, embed.ErrRuntimeUnavailable):
		return errmsg.Format(errmsg.OpRuntimeLoad, err)
	case errors.Is(err, embed.ErrContainerNotFound), errors.Is(err, embed.ErrNotLoaded):
		return errmsg.Format(errmsg.OpWidgetStart, err)
	default:
		return errmsg.Format(errmsg.OpPlayback, err)
	}
}

func publishedLabel(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006") + " · " + humanize.RelTime(t, now, "ago", "from now")
}
