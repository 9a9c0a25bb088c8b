package assessment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/scoring"
)

type fakeStore struct {
	questions []catalog.Question

	upsertErr   error
	createErr   error
	listErr     error
	insertErr   error
	completeErr error

	upsertCalls   int
	createCalls   int
	insertCalls   int
	completeCalls int

	inserted  []AnswerRecord
	completed *scoring.Summary
}

func (f *fakeStore) UpsertParticipant(ctx context.Context, draft ParticipantDraft) (string, error) {
	f.upsertCalls++
	if f.upsertErr != nil {
		return "", f.upsertErr
	}
	return "participant-1", nil
}

func (f *fakeStore) CreateAssessment(ctx context.Context, participantID, status string) (string, error) {
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	return "assessment-1", nil
}

func (f *fakeStore) ListQuestions(ctx context.Context) ([]catalog.Question, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.questions, nil
}

func (f *fakeStore) InsertAnswers(ctx context.Context, assessmentID string, answers []AnswerRecord) error {
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = answers
	return nil
}

func (f *fakeStore) CompleteAssessment(ctx context.Context, assessmentID string, completedAt time.Time, sum scoring.Summary) error {
	f.completeCalls++
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed = &sum
	return nil
}

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: "q1", DisplayNumber: 1, Style: scoring.StyleDriving, Group: "g", Prompt: "p1"},
		{ID: "q2", DisplayNumber: 2, Style: scoring.StyleExpressive, Group: "g", Prompt: "p2"},
		{ID: "q3", DisplayNumber: 3, Style: scoring.StyleAmiable, Group: "g", Prompt: "p3"},
		{ID: "q4", DisplayNumber: 4, Style: scoring.StyleAnalytical, Group: "g", Prompt: "p4"},
	}
}

func validDraft() ParticipantDraft {
	return ParticipantDraft{FullName: "Dana Cruz", Email: "dana@example.com"}
}

// doStart drives the three-step start flow the way the update loop does:
// validate, run the store round-trip, commit the result.
func doStart(s *Session) error {
	if err := s.BeginStart(); err != nil {
		return err
	}
	res, err := s.RegisterParticipant(context.Background(), s.Draft)
	return s.FinishStart(res, err)
}

// doSubmit drives the three-step submit flow the way the update loop does.
func doSubmit(s *Session) error {
	sub, err := s.BeginSubmit()
	if err != nil {
		return err
	}
	err = s.PersistSubmission(context.Background(), sub)
	return s.FinishSubmit(sub, err)
}

// startedSession returns a session already in StageQuestions with the
// catalog loaded, plus its fake store.
func startedSession(t *testing.T) (*Session, *fakeStore) {
	t.Helper()
	fs := &fakeStore{questions: testQuestions()}
	s := New(fs, nil)
	s.Draft = validDraft()
	if err := doStart(s); err != nil {
		t.Fatalf("start: %v", err)
	}
	token := s.BeginLoad()
	qs, err := s.FetchQuestions(context.Background())
	if err != nil {
		t.Fatalf("fetch questions: %v", err)
	}
	if !s.FinishLoad(token, qs, nil) {
		t.Fatal("expected load to commit")
	}
	return s, fs
}

func answerAll(s *Session, value int) {
	for _, q := range s.Questions {
		s.RecordAnswer(q.ID, value)
	}
}

func TestStart_EmptyNameFailsValidation(t *testing.T) {
	fs := &fakeStore{}
	s := New(fs, nil)
	s.Draft = ParticipantDraft{FullName: "   ", Email: "dana@example.com"}

	if err := doStart(s); err == nil {
		t.Fatal("expected validation error")
	}
	if s.Stage != StageStart {
		t.Errorf("stage = %s, want start", s.Stage)
	}
	if s.ErrMsg == "" {
		t.Error("expected a user-facing error message")
	}
	if fs.upsertCalls != 0 {
		t.Error("store should not be called on validation failure")
	}
}

func TestStart_EmptyEmailFailsValidation(t *testing.T) {
	fs := &fakeStore{}
	s := New(fs, nil)
	s.Draft = ParticipantDraft{FullName: "Dana Cruz"}

	if err := doStart(s); err == nil {
		t.Fatal("expected validation error")
	}
	if s.Stage != StageStart || fs.upsertCalls != 0 {
		t.Error("session must stay at start with no store calls")
	}
}

func TestStart_UpsertFailureLeavesNoPartialState(t *testing.T) {
	fs := &fakeStore{upsertErr: errors.New("store down")}
	s := New(fs, nil)
	s.Draft = validDraft()

	if err := doStart(s); err == nil {
		t.Fatal("expected error")
	}
	if s.Stage != StageStart {
		t.Errorf("stage = %s, want start", s.Stage)
	}
	if fs.createCalls != 0 {
		t.Error("no assessment may be created after a failed participant upsert")
	}
	if s.ParticipantID != "" || s.AssessmentID != "" {
		t.Error("no identifiers may be recorded on failure")
	}
}

func TestStart_CreateFailureRecordsNoIdentifiers(t *testing.T) {
	fs := &fakeStore{createErr: errors.New("store down")}
	s := New(fs, nil)
	s.Draft = validDraft()

	if err := doStart(s); err == nil {
		t.Fatal("expected error")
	}
	if s.Stage != StageStart {
		t.Errorf("stage = %s, want start", s.Stage)
	}
	if s.ParticipantID != "" || s.AssessmentID != "" {
		t.Error("no identifiers may be recorded on failure")
	}
	if s.ErrMsg == "" {
		t.Error("expected a user-facing error message")
	}
}

func TestStart_SuccessTransitions(t *testing.T) {
	fs := &fakeStore{}
	s := New(fs, nil)
	s.Draft = validDraft()
	s.ErrMsg = "stale error"

	if err := doStart(s); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Stage != StageQuestions {
		t.Errorf("stage = %s, want questions", s.Stage)
	}
	if s.ParticipantID != "participant-1" || s.AssessmentID != "assessment-1" {
		t.Errorf("identifiers = %q, %q", s.ParticipantID, s.AssessmentID)
	}
	if s.ErrMsg != "" {
		t.Errorf("ErrMsg = %q, want cleared", s.ErrMsg)
	}
}

func TestStart_NoOpOutsideStartStage(t *testing.T) {
	s, fs := startedSession(t)
	calls := fs.upsertCalls

	if err := doStart(s); !errors.Is(err, errWrongStage) {
		t.Fatalf("err = %v, want errWrongStage", err)
	}
	if fs.upsertCalls != calls {
		t.Error("start must be a no-op outside StageStart")
	}
	if s.Stage != StageQuestions {
		t.Errorf("stage = %s, want questions", s.Stage)
	}
}

func TestRegisterParticipant_LeavesSessionUntouched(t *testing.T) {
	fs := &fakeStore{}
	s := New(fs, nil)
	s.Draft = validDraft()
	if err := s.BeginStart(); err != nil {
		t.Fatalf("begin start: %v", err)
	}

	res, err := s.RegisterParticipant(context.Background(), s.Draft)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// The round-trip alone must not transition or record identifiers;
	// that happens when the result is committed on the update loop.
	if s.Stage != StageStart {
		t.Errorf("stage = %s, want start before FinishStart", s.Stage)
	}
	if s.ParticipantID != "" || s.AssessmentID != "" {
		t.Error("identifiers must only be recorded by FinishStart")
	}

	if err := s.FinishStart(res, nil); err != nil {
		t.Fatalf("finish start: %v", err)
	}
	if s.Stage != StageQuestions {
		t.Errorf("stage = %s, want questions after FinishStart", s.Stage)
	}
}

func TestLoad_CommitsQuestions(t *testing.T) {
	s, _ := startedSession(t)
	if s.Loading {
		t.Error("loading flag should be cleared after commit")
	}
	if len(s.Questions) != 4 {
		t.Errorf("questions = %d, want 4", len(s.Questions))
	}
}

func TestLoad_FailureSetsErrorAndEmptySet(t *testing.T) {
	fs := &fakeStore{listErr: errors.New("store down")}
	s := New(fs, nil)
	s.Draft = validDraft()
	if err := doStart(s); err != nil {
		t.Fatalf("start: %v", err)
	}

	token := s.BeginLoad()
	_, err := s.FetchQuestions(context.Background())
	if err == nil {
		t.Fatal("expected fetch error")
	}
	if !s.FinishLoad(token, nil, err) {
		t.Fatal("failure should still be committed")
	}
	if s.Stage != StageQuestions {
		t.Errorf("stage = %s, want questions (no automatic retry)", s.Stage)
	}
	if len(s.Questions) != 0 {
		t.Error("question set must stay empty on load failure")
	}
	if s.ErrMsg == "" {
		t.Error("expected a user-facing error message")
	}
}

func TestLoad_StaleTokenDiscarded(t *testing.T) {
	s, _ := startedSession(t)

	stale := s.BeginLoad()
	fresh := s.BeginLoad()

	older := []catalog.Question{{ID: "old", DisplayNumber: 1, Style: scoring.StyleDriving}}
	if s.FinishLoad(stale, older, nil) {
		t.Error("stale load must be discarded")
	}
	if len(s.Questions) == 1 && s.Questions[0].ID == "old" {
		t.Error("stale load must not overwrite questions")
	}

	if !s.FinishLoad(fresh, testQuestions(), nil) {
		t.Error("fresh load must commit")
	}
}

func TestLoad_ResolutionAfterSubmitDiscarded(t *testing.T) {
	s, _ := startedSession(t)
	token := s.BeginLoad()
	answerAll(s, 2)
	if err := doSubmit(s); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if s.FinishLoad(token, nil, errors.New("late failure")) {
		t.Error("load resolving after the stage moved on must be discarded")
	}
	if s.ErrMsg != "" {
		t.Errorf("ErrMsg = %q, late load must not touch state", s.ErrMsg)
	}
}

func TestRecordAnswer_LastWriteWins(t *testing.T) {
	s, _ := startedSession(t)
	s.RecordAnswer("q1", 1)
	s.RecordAnswer("q1", 3)
	if s.Answers["q1"] != 3 {
		t.Errorf("Answers[q1] = %d, want 3", s.Answers["q1"])
	}
}

func TestRecordAnswer_RejectsOutOfScale(t *testing.T) {
	s, _ := startedSession(t)
	s.RecordAnswer("q1", 0)
	s.RecordAnswer("q1", 4)
	if _, ok := s.Answers["q1"]; ok {
		t.Error("out-of-scale values must be rejected")
	}
}

func TestRecordAnswer_IgnoredOutsideQuestions(t *testing.T) {
	fs := &fakeStore{}
	s := New(fs, nil)
	s.RecordAnswer("q1", 2)
	if len(s.Answers) != 0 {
		t.Error("answers must not be recorded at the start stage")
	}
}

func TestSubmit_RequiresSession(t *testing.T) {
	fs := &fakeStore{}
	s := New(fs, nil)
	s.Stage = StageQuestions // no start round-trip, so no assessment id

	err := doSubmit(s)
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
	if s.Stage != StageQuestions {
		t.Errorf("stage = %s, want questions", s.Stage)
	}
}

func TestSubmit_RequiresQuestions(t *testing.T) {
	fs := &fakeStore{}
	s := New(fs, nil)
	s.Draft = validDraft()
	if err := doStart(s); err != nil {
		t.Fatalf("start: %v", err)
	}

	err := doSubmit(s)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}

func TestSubmit_ReportsUnansweredCount(t *testing.T) {
	s, fs := startedSession(t)
	s.RecordAnswer("q1", 2) // 3 of 4 unanswered

	err := doSubmit(s)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(s.ErrMsg, "3 of 4") {
		t.Errorf("ErrMsg = %q, want unanswered count", s.ErrMsg)
	}
	if fs.insertCalls != 0 {
		t.Error("no answers may be stored while the set is incomplete")
	}
}

func TestSubmit_InsertFailureRetainsAnswers(t *testing.T) {
	s, fs := startedSession(t)
	answerAll(s, 2)
	fs.insertErr = errors.New("store down")

	if err := doSubmit(s); err == nil {
		t.Fatal("expected error")
	}
	if s.Stage != StageQuestions {
		t.Errorf("stage = %s, want questions", s.Stage)
	}
	if s.ErrMsg != ErrSaveAnswers.Error() {
		t.Errorf("ErrMsg = %q, want %q", s.ErrMsg, ErrSaveAnswers.Error())
	}
	if len(s.Answers) != 4 {
		t.Error("in-memory answers must be retained for retry")
	}

	// Retry without re-entering answers.
	fs.insertErr = nil
	if err := doSubmit(s); err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if s.Stage != StageResult {
		t.Errorf("stage = %s, want result", s.Stage)
	}
}

func TestSubmit_SoftFailOnCompletion(t *testing.T) {
	s, fs := startedSession(t)
	answerAll(s, 3)
	fs.completeErr = errors.New("store down")

	if err := doSubmit(s); err != nil {
		t.Fatalf("submit must not fail on completion update: %v", err)
	}
	if s.Stage != StageResult {
		t.Errorf("stage = %s, want result", s.Stage)
	}
	if s.Summary == nil {
		t.Fatal("expected a computed summary")
	}
	if fs.insertCalls != 1 {
		t.Errorf("insertCalls = %d, want 1", fs.insertCalls)
	}
}

func TestSubmit_ComputesSummaryAndPersists(t *testing.T) {
	s, fs := startedSession(t)
	s.RecordAnswer("q1", 3)
	s.RecordAnswer("q2", 2)
	s.RecordAnswer("q3", 1)
	s.RecordAnswer("q4", 1)

	if err := doSubmit(s); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Summary.Total != 7 {
		t.Errorf("Total = %d, want 7", s.Summary.Total)
	}
	if got := s.Summary.Subtotal(scoring.StyleDriving); got != 3 {
		t.Errorf("driving subtotal = %d, want 3", got)
	}
	if len(fs.inserted) != 4 {
		t.Errorf("inserted %d answer records, want 4", len(fs.inserted))
	}
	if fs.completed == nil || fs.completed.Total != 7 {
		t.Error("completion update must carry the computed summary")
	}
	dom, ok := scoring.Dominant(s.Summary)
	if !ok || dom != scoring.StyleDriving {
		t.Errorf("dominant = %v, %v, want driving", dom, ok)
	}
}

func TestPersistSubmission_LeavesSessionUntouched(t *testing.T) {
	s, fs := startedSession(t)
	answerAll(s, 2)

	sub, err := s.BeginSubmit()
	if err != nil {
		t.Fatalf("begin submit: %v", err)
	}
	if err := s.PersistSubmission(context.Background(), sub); err != nil {
		t.Fatalf("persist: %v", err)
	}

	// Answers are stored, but the transition must wait for FinishSubmit
	// on the update loop.
	if fs.insertCalls != 1 {
		t.Errorf("insertCalls = %d, want 1", fs.insertCalls)
	}
	if s.Stage != StageQuestions {
		t.Errorf("stage = %s, want questions before FinishSubmit", s.Stage)
	}
	if s.Summary != nil {
		t.Error("summary must only be attached by FinishSubmit")
	}

	if err := s.FinishSubmit(sub, nil); err != nil {
		t.Fatalf("finish submit: %v", err)
	}
	if s.Stage != StageResult {
		t.Errorf("stage = %s, want result after FinishSubmit", s.Stage)
	}
}

func TestResult_IsTerminal(t *testing.T) {
	s, fs := startedSession(t)
	answerAll(s, 2)
	if err := doSubmit(s); err != nil {
		t.Fatalf("submit: %v", err)
	}

	s.RecordAnswer("q1", 3)
	if s.Answers["q1"] != 2 {
		t.Error("answers must not change at the result stage")
	}

	inserts := fs.insertCalls
	if err := doSubmit(s); !errors.Is(err, errWrongStage) {
		t.Fatalf("second submit: err = %v, want errWrongStage", err)
	}
	if fs.insertCalls != inserts {
		t.Error("submit must be a no-op at the result stage")
	}
}
