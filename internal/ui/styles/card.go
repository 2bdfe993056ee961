package styles

import "github.com/charmbracelet/lipgloss"

// CardTheme is the per-card variation. Cards alternate between a plain and
// an accent theme by position in the list.
type CardTheme struct {
	Accent       bool
	Border       lipgloss.Color
	GradientFrom lipgloss.Color
	GradientTo   lipgloss.Color
}

var cardThemes = []CardTheme{
	{
		Accent:       true,
		Border:       lipgloss.Color("#7c5cd6"),
		GradientFrom: lipgloss.Color("#a78bfa"),
		GradientTo:   lipgloss.Color("#f1a208"),
	},
	{
		Border: lipgloss.Color("#585858"),
	},
}

// CardThemeFor returns the theme of the card at index.
func CardThemeFor(index int) CardTheme {
	if index < 0 {
		index = -index
	}
	return cardThemes[index%len(cardThemes)]
}

// CardStyle returns the bordered frame of a card.
func CardStyle(ct CardTheme, focused bool, width int) lipgloss.Style {
	border := ct.Border
	if focused {
		border = T().BorderFocus
	}
	st := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if focused {
		st = st.BorderStyle(lipgloss.ThickBorder())
	}
	if width > 0 {
		// Width excludes the border in lipgloss v1.
		st = st.Width(max(width-2, 1))
	}
	return st
}

// Title renders a card title, with a gradient on accent cards.
func (ct CardTheme) Title(text string) string {
	if ct.Accent {
		return GradientTitle(text, ct.GradientFrom, ct.GradientTo)
	}
	return T().S().Title.Render(text)
}
