package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, taken from the workbench: copper traces, LED green, solder mask
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#EA580C") // Copper
	Success   = lipgloss.Color("#22C55E") // LED Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#052E16") // Solder Mask
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(Border)
)

// RarityColor returns the display color of a badge rarity.
func RarityColor(rarity string) lipgloss.Style {
	switch rarity {
	case "uncommon":
		return lipgloss.NewStyle().Foreground(Success)
	case "rare":
		return lipgloss.NewStyle().Foreground(Secondary)
	case "epic":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#A855F7"))
	case "legendary":
		return lipgloss.NewStyle().Foreground(Primary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Text)
	}
}
