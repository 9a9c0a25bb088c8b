package start

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/router"
	"github.com/priyal/worklens/internal/screen"
	"github.com/priyal/worklens/internal/screens/questions"
	"github.com/priyal/worklens/internal/ui/components"
	"github.com/priyal/worklens/internal/ui/layout"
	"github.com/priyal/worklens/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldOrganization
	fieldRole
	numFields
)

// StartScreen collects the participant's contact details before the
// questionnaire begins.
type StartScreen struct {
	sess       *assessment.Session
	fields     [numFields]components.FormField
	focus      int
	submitting bool
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates the contact form screen for the session.
func New(sess *assessment.Session) *StartScreen {
	s := &StartScreen{sess: sess}
	s.fields[fieldName] = components.NewFormField("Name", "Your full name", true)
	s.fields[fieldEmail] = components.NewFormField("Email", "you@company.com", true)
	s.fields[fieldOrganization] = components.NewFormField("Organization", "Company or team (optional)", false)
	s.fields[fieldRole] = components.NewFormField("Role", "Job title (optional)", false)
	return s
}

func (s *StartScreen) Title() string {
	return "Welcome"
}

func (s *StartScreen) Init() tea.Cmd {
	return s.fields[s.focus].Focus()
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		s.submitting = false
		if err := s.sess.FinishStart(msg.Res, msg.Err); err != nil {
			// The session keeps the user-facing message; just redraw.
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: questions.New(s.sess)}
		}

	case tea.KeyPressMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.focusField((s.focus + 1) % numFields)
		case "shift+tab", "up":
			return s, s.focusField((s.focus + numFields - 1) % numFields)
		case "enter":
			if s.focus < numFields-1 {
				return s, s.focusField(s.focus + 1)
			}
			return s, s.submit()
		case "ctrl+s":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *StartScreen) focusField(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[s.focus].Focus()
}

// submit copies the form into the session draft, validates it in place,
// and runs the store round-trip off the UI goroutine. The command only
// does store I/O; the stage transition commits when startedMsg is applied.
func (s *StartScreen) submit() tea.Cmd {
	draft := assessment.ParticipantDraft{
		FullName:     strings.TrimSpace(s.fields[fieldName].Value()),
		Email:        strings.TrimSpace(s.fields[fieldEmail].Value()),
		Organization: strings.TrimSpace(s.fields[fieldOrganization].Value()),
		Role:         strings.TrimSpace(s.fields[fieldRole].Value()),
	}
	s.sess.Draft = draft
	if err := s.sess.BeginStart(); err != nil {
		return nil
	}
	s.submitting = true

	sess := s.sess
	return func() tea.Msg {
		res, err := sess.RegisterParticipant(context.Background(), draft)
		return startedMsg{Res: res, Err: err}
	}
}

func (s *StartScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("Discover your working style"),
		"",
		theme.Subtitle.Render("A few details before we begin. Fields marked * are required."),
		"",
	)

	for i := range s.fields {
		sections = append(sections, s.fields[i].View(), "")
	}

	if s.submitting {
		sections = append(sections, theme.Hint.Render("Starting..."))
	} else if s.sess.ErrMsg != "" {
		sections = append(sections, theme.ErrorText.Render(s.sess.ErrMsg))
	}

	content := strings.Join(sections, "\n")
	card := theme.Card.Width(min(width-4, 64)).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
