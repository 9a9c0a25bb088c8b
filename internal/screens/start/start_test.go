package start

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/router"
	"github.com/priyal/worklens/internal/scoring"
	"github.com/priyal/worklens/internal/screens/questions"
)

type fakeStore struct {
	failStart bool
}

func (f *fakeStore) UpsertParticipant(context.Context, assessment.ParticipantDraft) (string, error) {
	if f.failStart {
		return "", errors.New("store down")
	}
	return "participant-1", nil
}

func (f *fakeStore) CreateAssessment(context.Context, string, string) (string, error) {
	return "assessment-1", nil
}

func (f *fakeStore) ListQuestions(context.Context) ([]catalog.Question, error) {
	return nil, nil
}

func (f *fakeStore) InsertAnswers(context.Context, string, []assessment.AnswerRecord) error {
	return nil
}

func (f *fakeStore) CompleteAssessment(context.Context, string, time.Time, scoring.Summary) error {
	return nil
}

func newTestScreen(fs *fakeStore) (*StartScreen, *assessment.Session) {
	sess := assessment.New(fs, nil)
	return New(sess), sess
}

func fillRequired(s *StartScreen) {
	s.fields[fieldName].Model.SetValue("Dana Cruz")
	s.fields[fieldEmail].Model.SetValue("dana@example.com")
}

func TestTabCyclesFocus(t *testing.T) {
	s, _ := newTestScreen(&fakeStore{})
	s.Init()

	if s.focus != fieldName {
		t.Fatalf("focus = %d, want name first", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != fieldEmail {
		t.Errorf("focus = %d, want email after tab", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.focus != fieldName {
		t.Errorf("focus = %d, want name after shift+tab", s.focus)
	}
}

func TestSubmitWithEmptyNameStaysOnForm(t *testing.T) {
	s, sess := newTestScreen(&fakeStore{})

	// Validation fails before any store work, so no command is issued.
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd != nil {
		t.Error("invalid draft must not reach the store")
	}
	if sess.Stage != assessment.StageStart {
		t.Errorf("stage = %s, want start", sess.Stage)
	}
	if sess.ErrMsg == "" {
		t.Error("expected a user-facing error message")
	}
	if s.submitting {
		t.Error("submitting flag must stay clear on validation failure")
	}
}

func TestSubmitSuccessReplacesWithQuestions(t *testing.T) {
	s, sess := newTestScreen(&fakeStore{})
	fillRequired(s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*questions.QuestionsScreen); !ok {
		t.Fatalf("expected questions screen, got %T", replaceMsg.Screen)
	}
	if sess.Stage != assessment.StageQuestions {
		t.Errorf("stage = %s, want questions", sess.Stage)
	}
}

func TestTransitionCommitsWhenMessageApplied(t *testing.T) {
	s, sess := newTestScreen(&fakeStore{})
	fillRequired(s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	// Running the command performs the store round-trip only; the session
	// must not change until its message goes through Update.
	msg := cmd()
	if sess.Stage != assessment.StageStart {
		t.Errorf("stage = %s, want start before the message is applied", sess.Stage)
	}
	if sess.ParticipantID != "" || sess.AssessmentID != "" {
		t.Error("identifiers must not be recorded by the command itself")
	}

	s.Update(msg)
	if sess.Stage != assessment.StageQuestions {
		t.Errorf("stage = %s, want questions after the message is applied", sess.Stage)
	}
	if sess.AssessmentID != "assessment-1" {
		t.Errorf("assessment id = %q, want assessment-1", sess.AssessmentID)
	}
}

func TestStoreFailureShowsError(t *testing.T) {
	s, sess := newTestScreen(&fakeStore{failStart: true})
	fillRequired(s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	_, cmd2 := s.Update(cmd())
	if cmd2 != nil {
		t.Error("failed start must not navigate")
	}
	if sess.ErrMsg != "could not start the assessment" {
		t.Errorf("ErrMsg = %q", sess.ErrMsg)
	}
	if s.submitting {
		t.Error("submitting flag must clear so the form is editable again")
	}
}

func TestEnterAdvancesThenSubmits(t *testing.T) {
	s, _ := newTestScreen(&fakeStore{})
	fillRequired(s)

	// Enter on non-final fields only advances focus.
	for i := 0; i < numFields-1; i++ {
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("field %d: expected a focus command", i)
		}
	}
	if s.focus != fieldRole {
		t.Fatalf("focus = %d, want last field", s.focus)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on the last field must submit")
	}
	if _, ok := cmd().(startedMsg); !ok {
		t.Error("expected the submit round-trip to run")
	}
}

func TestTitle(t *testing.T) {
	s, _ := newTestScreen(&fakeStore{})
	if s.Title() != "Welcome" {
		t.Errorf("title = %q", s.Title())
	}
}
