package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — calm and professional, workshop-friendly
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Per-style colors for the result breakdown bars, keyed by style code.
var StyleColors = map[string]color.Color{
	"driving":    lipgloss.Color("#EF4444"), // Red
	"expressive": lipgloss.Color("#F59E0B"), // Amber
	"amiable":    lipgloss.Color("#22C55E"), // Green
	"analytical": lipgloss.Color("#0EA5E9"), // Sky Blue
}

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

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	GroupHeading = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)
