// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/podcards/internal/icons"
	"github.com/llehouerou/podcards/internal/ui/render"
	"github.com/llehouerou/podcards/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	return strings.Join([]string{m.renderHeader(), m.Cards.View(), m.renderFooter()}, "\n")
}

// width falls back to a sane value before the first WindowSizeMsg.
func (m Model) width() int {
	if m.Width <= 0 {
		return 80
	}
	return m.Width
}

func (m Model) renderHeader() string {
	t := styles.T()
	title := styles.GradientTitle("podcards", t.Primary, t.Secondary)
	count := t.S().Muted.Render(fmt.Sprintf(" · %d episodes", m.Cards.Len()))

	status := ""
	if ep, v, ok := m.Session.Active(); ok && v.IsPlaying {
		status = t.S().Playing.Render(icons.NowPlaying() + " " + render.Truncate(ep.Title, m.width()/2))
	}
	return render.Row(title+count, status, m.width())
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	if m.quitting {
		return s.Muted.Render("closing players…")
	}
	if m.ErrorMsg != "" {
		return s.Error.Render(render.Truncate(m.ErrorMsg, m.width()))
	}
	help := m.Keys.Help("card")
	if m.ShowHelp {
		help = strings.Join([]string{help, m.Keys.Help("cards"), m.Keys.Help("global")}, " · ")
	}
	return s.Subtle.Render(render.Truncate(help, m.width()))
}
