package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/scoring"
	"github.com/priyal/worklens/internal/screen"
	"github.com/priyal/worklens/internal/ui/layout"
	"github.com/priyal/worklens/internal/ui/theme"
)

// ResultScreen shows the dominant style and the per-style breakdown.
type ResultScreen struct {
	sess *assessment.Session
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen for a completed session.
func New(sess *assessment.Session) *ResultScreen {
	return &ResultScreen{sess: sess}
}

func (s *ResultScreen) Title() string {
	return "Your result"
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "enter":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	sum := s.sess.Summary
	if sum == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.ErrorText.Render("no result available"))
	}

	var sections []string

	if dom, ok := scoring.Dominant(sum); ok {
		name := lipgloss.NewStyle().
			Foreground(theme.StyleColors[dom.String()]).
			Bold(true).
			Render(dom.DisplayName())
		sections = append(sections,
			theme.Subtitle.Render("Your dominant working style is"),
			"",
			theme.Title.Render(name),
			"",
			theme.Body.Render(dom.Description()),
			"",
		)
	}

	sections = append(sections, s.renderBreakdown(min(width-12, 56))...)
	sections = append(sections, "",
		theme.Hint.Render(fmt.Sprintf("Total score: %d", sum.Total)))

	content := strings.Join(sections, "\n")
	card := theme.Card.Width(min(width-4, 68)).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderBreakdown draws one bar per style, scaled against the highest
// score a style could reach with the loaded statements.
func (s *ResultScreen) renderBreakdown(width int) []string {
	sum := s.sess.Summary

	perStyle := make(map[scoring.Style]int)
	for _, q := range s.sess.Questions {
		perStyle[q.Style]++
	}

	nameWidth := 0
	for _, st := range scoring.Styles {
		if n := len(st.DisplayName()); n > nameWidth {
			nameWidth = n
		}
	}

	lines := make([]string, 0, scoring.NumStyles)
	for _, st := range scoring.Styles {
		score := sum.Subtotal(st)
		maxScore := perStyle[st] * catalog.MaxRating

		barWidth := width - nameWidth - 8
		if barWidth < 4 {
			barWidth = 4
		}
		filled := 0
		if maxScore > 0 {
			filled = barWidth * score / maxScore
		}

		name := lipgloss.NewStyle().
			Foreground(theme.StyleColors[st.String()]).
			Width(nameWidth).
			Render(st.DisplayName())
		bar := lipgloss.NewStyle().
			Background(theme.StyleColors[st.String()]).
			Render(strings.Repeat(" ", filled)) +
			lipgloss.NewStyle().
				Background(theme.Border).
				Render(strings.Repeat(" ", barWidth-filled))
		count := theme.Hint.Render(fmt.Sprintf(" %2d", score))

		lines = append(lines, name+"  "+bar+count)
	}
	return lines
}
