package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/priyal/worklens/internal/ui/theme"
)

// ProgressBar displays a horizontal count-based progress bar.
type ProgressBar struct {
	Label   string
	Current int
	Total   int
	Width   int
}

// NewProgressBar creates a progress bar showing Current of Total.
func NewProgressBar(label string, current, total, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Current: current,
		Total:   total,
		Width:   width,
	}
}

// View renders the progress bar with a trailing "current/total" count.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", p.Current, p.Total)

	barWidth := p.Width - lipgloss.Width(result) - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Current / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(count)

	return result
}
