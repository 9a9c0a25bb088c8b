package questions

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/router"
	"github.com/priyal/worklens/internal/scoring"
	"github.com/priyal/worklens/internal/screens/result"
)

type fakeStore struct {
	questions []catalog.Question
	listErr   error
	insertErr error
}

func (f *fakeStore) UpsertParticipant(context.Context, assessment.ParticipantDraft) (string, error) {
	return "participant-1", nil
}

func (f *fakeStore) CreateAssessment(context.Context, string, string) (string, error) {
	return "assessment-1", nil
}

func (f *fakeStore) ListQuestions(context.Context) ([]catalog.Question, error) {
	return f.questions, f.listErr
}

func (f *fakeStore) InsertAnswers(context.Context, string, []assessment.AnswerRecord) error {
	return f.insertErr
}

func (f *fakeStore) CompleteAssessment(context.Context, string, time.Time, scoring.Summary) error {
	return nil
}

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: "q1", DisplayNumber: 1, Style: scoring.StyleDriving, Group: "Decisions", Prompt: "first statement"},
		{ID: "q2", DisplayNumber: 2, Style: scoring.StyleAmiable, Group: "Decisions", Prompt: "second statement"},
	}
}

// loadedScreen returns a questions screen whose session has passed the
// contact stage and finished loading the catalog.
func loadedScreen(t *testing.T, fs *fakeStore) (*QuestionsScreen, *assessment.Session) {
	t.Helper()
	sess := assessment.New(fs, nil)
	sess.Draft = assessment.ParticipantDraft{FullName: "Dana", Email: "dana@example.com"}
	if err := sess.BeginStart(); err != nil {
		t.Fatalf("begin start: %v", err)
	}
	res, err := sess.RegisterParticipant(context.Background(), sess.Draft)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := sess.FinishStart(res, nil); err != nil {
		t.Fatalf("finish start: %v", err)
	}

	s := New(sess)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	s.Update(cmd())
	return s, sess
}

func TestLoadCommitsQuestions(t *testing.T) {
	s, sess := loadedScreen(t, &fakeStore{questions: testQuestions()})

	if len(sess.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(sess.Questions))
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "first statement") {
		t.Error("view should show the first statement")
	}
}

func TestLoadFailureOffersRetry(t *testing.T) {
	fs := &fakeStore{listErr: errors.New("store down")}
	s, sess := loadedScreen(t, fs)

	if sess.ErrMsg != "could not load questions" {
		t.Errorf("ErrMsg = %q", sess.ErrMsg)
	}

	// Fix the store and retry.
	fs.listErr = nil
	fs.questions = testQuestions()
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r'})
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	s.Update(cmd())
	if len(sess.Questions) != 2 {
		t.Errorf("questions = %d, want 2 after retry", len(sess.Questions))
	}
}

func TestStaleLoadDiscarded(t *testing.T) {
	s, sess := loadedScreen(t, &fakeStore{questions: testQuestions()})

	staleCmd := s.load()
	staleMsg := staleCmd().(questionsLoadedMsg)
	s.load() // newer load supersedes the one above

	s.Update(questionsLoadedMsg{
		Token:     staleMsg.Token,
		Questions: []catalog.Question{{ID: "old", DisplayNumber: 9, Style: scoring.StyleDriving}},
	})
	if len(sess.Questions) == 1 {
		t.Error("stale load must not overwrite the question set")
	}
}

func TestDigitKeyRecordsAndAdvances(t *testing.T) {
	s, sess := loadedScreen(t, &fakeStore{questions: testQuestions()})

	s.Update(tea.KeyPressMsg{Code: '2'})
	if sess.Answers["q1"] != 2 {
		t.Errorf("Answers[q1] = %d, want 2", sess.Answers["q1"])
	}
	if s.index != 1 {
		t.Errorf("index = %d, want advance to next statement", s.index)
	}
}

func TestNavigationRestoresSavedRating(t *testing.T) {
	s, _ := loadedScreen(t, &fakeStore{questions: testQuestions()})

	s.Update(tea.KeyPressMsg{Code: '3'}) // answers q1, advances
	s.Update(tea.KeyPressMsg{Code: 'p'}) // back to q1

	if s.index != 0 {
		t.Fatalf("index = %d, want 0", s.index)
	}
	if s.rating.Value() != 3 {
		t.Errorf("rating = %d, want restored 3", s.rating.Value())
	}
}

func TestSubmitIncompleteShowsCount(t *testing.T) {
	s, sess := loadedScreen(t, &fakeStore{questions: testQuestions()})
	s.Update(tea.KeyPressMsg{Code: '1'})

	// The precondition check fails in place, so no command is issued.
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's'})
	if cmd != nil {
		t.Error("incomplete submit must not reach the store")
	}
	if !strings.Contains(sess.ErrMsg, "1 of 2") {
		t.Errorf("ErrMsg = %q, want unanswered count", sess.ErrMsg)
	}
	if sess.Stage != assessment.StageQuestions {
		t.Errorf("stage = %s, want questions", sess.Stage)
	}
}

func TestAnsweringLastStatementSubmits(t *testing.T) {
	s, sess := loadedScreen(t, &fakeStore{questions: testQuestions()})

	s.Update(tea.KeyPressMsg{Code: '3'})
	_, cmd := s.Update(tea.KeyPressMsg{Code: '1'})
	if cmd == nil {
		t.Fatal("answering the final statement should submit")
	}

	_, nav := s.Update(cmd())
	if nav == nil {
		t.Fatal("expected a navigation command")
	}
	msg := nav()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*result.ResultScreen); !ok {
		t.Fatalf("expected result screen, got %T", replaceMsg.Screen)
	}
	if sess.Stage != assessment.StageResult {
		t.Errorf("stage = %s, want result", sess.Stage)
	}
}

func TestSubmitCommitsWhenMessageApplied(t *testing.T) {
	s, sess := loadedScreen(t, &fakeStore{questions: testQuestions()})

	s.Update(tea.KeyPressMsg{Code: '3'})
	_, cmd := s.Update(tea.KeyPressMsg{Code: '1'})
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	// Running the command performs the store round-trip only; the session
	// must not change until its message goes through Update.
	msg := cmd()
	if sess.Stage != assessment.StageQuestions {
		t.Errorf("stage = %s, want questions before the message is applied", sess.Stage)
	}
	if sess.Summary != nil {
		t.Error("summary must not be attached by the command itself")
	}

	s.Update(msg)
	if sess.Stage != assessment.StageResult {
		t.Errorf("stage = %s, want result after the message is applied", sess.Stage)
	}
	if sess.Summary == nil {
		t.Error("expected the summary after the message is applied")
	}
}

func TestInsertFailureStaysForRetry(t *testing.T) {
	fs := &fakeStore{questions: testQuestions(), insertErr: errors.New("store down")}
	s, sess := loadedScreen(t, fs)

	s.Update(tea.KeyPressMsg{Code: '3'})
	_, cmd := s.Update(tea.KeyPressMsg{Code: '1'})
	_, nav := s.Update(cmd())
	if nav != nil {
		t.Error("failed save must not navigate")
	}
	if sess.ErrMsg != "could not save answers" {
		t.Errorf("ErrMsg = %q", sess.ErrMsg)
	}

	// Answers survive, so a retry needs no re-entry.
	fs.insertErr = nil
	_, cmd = s.Update(tea.KeyPressMsg{Code: 's'})
	_, nav = s.Update(cmd())
	if nav == nil {
		t.Fatal("retry should navigate to the result")
	}
}
