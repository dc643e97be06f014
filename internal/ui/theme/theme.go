package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — deep ocean blues with warm accents for scores
var (
	Primary   = lipgloss.Color("#48CAE4") // Sky Blue
	Secondary = lipgloss.Color("#0096C7") // Cerulean
	Accent    = lipgloss.Color("#90E0EF") // Pale Cyan
	Success   = lipgloss.Color("#2E7D32") // Green
	Warning   = lipgloss.Color("#FB8500") // Amber
	Error     = lipgloss.Color("#D00000") // Red
	Text      = lipgloss.Color("#F1FAFF") // Near White
	TextDim   = lipgloss.Color("#8FA8BC") // Blue Grey
	BgDark    = lipgloss.Color("#03045E") // Midnight Blue
	BgCard    = lipgloss.Color("#023E8A") // Deep Blue
	Border    = lipgloss.Color("#0077B6") // Ocean Blue
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// ScoreStyle picks a style for a 0-100 quiz score: green at 80 and
// above, amber from 50, red below.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case score >= 50:
		return lipgloss.NewStyle().Foreground(Warning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Error).Bold(true)
	}
}
