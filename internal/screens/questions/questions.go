package questions

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/router"
	"github.com/priyal/worklens/internal/screen"
	"github.com/priyal/worklens/internal/screens/result"
	"github.com/priyal/worklens/internal/ui/components"
	"github.com/priyal/worklens/internal/ui/layout"
	"github.com/priyal/worklens/internal/ui/theme"
)

// QuestionsScreen walks through the rated statements one at a time.
type QuestionsScreen struct {
	sess       *assessment.Session
	rating     components.Rating
	index      int
	submitting bool
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)

// New creates the statements screen for the session.
func New(sess *assessment.Session) *QuestionsScreen {
	return &QuestionsScreen{
		sess:   sess,
		rating: components.NewRating(catalog.RatingLabels[:]),
	}
}

func (s *QuestionsScreen) Title() string {
	return "Statements"
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return s.load()
}

// load starts an async catalog fetch tagged with a fresh token.
func (s *QuestionsScreen) load() tea.Cmd {
	token := s.sess.BeginLoad()
	sess := s.sess
	return func() tea.Msg {
		qs, err := sess.FetchQuestions(context.Background())
		return questionsLoadedMsg{Token: token, Questions: qs, Err: err}
	}
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	if len(s.sess.Questions) == 0 {
		if s.sess.ErrMsg != "" {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "1-3", Description: "Rate"},
		{Key: "Tab", Description: "Skip ahead"},
		{Key: "S", Description: "Finish"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if s.sess.FinishLoad(msg.Token, msg.Questions, msg.Err) {
			s.index = 0
			s.syncRating()
		}
		return s, nil

	case submittedMsg:
		s.submitting = false
		if err := s.sess.FinishSubmit(msg.Sub, msg.Err); err != nil {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: result.New(s.sess)}
		}

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuestionsScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.submitting || s.sess.Loading {
		return s, nil
	}

	if len(s.sess.Questions) == 0 {
		if msg.String() == "r" && s.sess.ErrMsg != "" {
			s.sess.ClearError()
			return s, s.load()
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "n", "down":
		s.move(1)
		return s, nil
	case "shift+tab", "p", "up":
		s.move(-1)
		return s, nil
	case "s":
		return s, s.submit()
	}

	var picked bool
	s.rating, picked = s.rating.Update(msg)
	if picked {
		q := s.sess.Questions[s.index]
		s.sess.RecordAnswer(q.ID, s.rating.Value())
		if s.index < len(s.sess.Questions)-1 {
			s.move(1)
		} else if s.sess.AnsweredCount() == len(s.sess.Questions) {
			return s, s.submit()
		}
	}
	return s, nil
}

// move shifts to a neighboring statement and restores its saved rating.
func (s *QuestionsScreen) move(delta int) {
	next := s.index + delta
	if next < 0 || next >= len(s.sess.Questions) {
		return
	}
	s.index = next
	s.syncRating()
}

func (s *QuestionsScreen) syncRating() {
	s.rating = components.NewRating(catalog.RatingLabels[:])
	if len(s.sess.Questions) == 0 {
		return
	}
	q := s.sess.Questions[s.index]
	if v, ok := s.sess.Answers[q.ID]; ok {
		s.rating.SetValue(v)
	}
}

// submit snapshots the answers in place and runs the store round-trip off
// the UI goroutine. The command only does store I/O; the questions->result
// transition commits when submittedMsg is applied.
func (s *QuestionsScreen) submit() tea.Cmd {
	sub, err := s.sess.BeginSubmit()
	if err != nil {
		return nil
	}
	s.submitting = true

	sess := s.sess
	return func() tea.Msg {
		return submittedMsg{Sub: sub, Err: sess.PersistSubmission(context.Background(), sub)}
	}
}

func (s *QuestionsScreen) View(width, height int) string {
	if s.sess.Loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading statements..."))
	}

	if len(s.sess.Questions) == 0 {
		msg := s.sess.ErrMsg
		if msg == "" {
			msg = "No statements available."
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.ErrorText.Render(msg)+"\n\n"+theme.Hint.Render("press r to retry"))
	}

	q := s.sess.Questions[s.index]

	var sections []string
	sections = append(sections,
		theme.GroupHeading.Render(q.Group),
		"",
		theme.Body.Bold(true).Render(fmt.Sprintf("%d. %s", q.DisplayNumber, q.Prompt)),
		"",
		s.rating.View(),
		"",
	)

	bar := components.NewProgressBar("Answered",
		s.sess.AnsweredCount(), len(s.sess.Questions), min(width-12, 48))
	sections = append(sections, bar.View())

	if s.submitting {
		sections = append(sections, "", theme.Hint.Render("Saving..."))
	} else if s.sess.ErrMsg != "" {
		sections = append(sections, "", theme.ErrorText.Render(s.sess.ErrMsg))
	}

	content := strings.Join(sections, "\n")
	card := theme.Card.Width(min(width-4, 72)).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
