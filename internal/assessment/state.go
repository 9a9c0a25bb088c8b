// Package assessment holds the session state machine for the three-stage
// flow: start (contact form) -> questions (rated statements) -> result.
// All mutation goes through Session methods; the presentation layer only
// reads fields and triggers operations.
package assessment

import (
	"context"
	"log/slog"
	"time"

	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/scoring"
)

// Stage is the current step of the flow. Transitions only move forward.
type Stage int

const (
	StageStart Stage = iota
	StageQuestions
	StageResult
)

// String returns the stage name for logs and tests.
func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageQuestions:
		return "questions"
	case StageResult:
		return "result"
	default:
		return "unknown"
	}
}

// Assessment status values persisted on the assessment record.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ParticipantDraft holds the contact fields collected on the start stage.
// FullName and Email are required; the rest are optional.
type ParticipantDraft struct {
	FullName     string
	Email        string
	Organization string
	Role         string
}

// AnswerRecord is one persisted answer row.
type AnswerRecord struct {
	QuestionID string
	Value      int
}

// Store is the persistence contract the state machine depends on.
// internal/store provides the ent-backed implementation.
type Store interface {
	// UpsertParticipant creates or reuses a participant keyed by email and
	// returns its identifier.
	UpsertParticipant(ctx context.Context, draft ParticipantDraft) (string, error)

	// CreateAssessment creates a new assessment for the participant and
	// returns its identifier.
	CreateAssessment(ctx context.Context, participantID, status string) (string, error)

	// ListQuestions returns the question catalog ordered by display number.
	ListQuestions(ctx context.Context) ([]catalog.Question, error)

	// InsertAnswers stores all answer rows for the assessment as a single
	// all-or-nothing batch.
	InsertAnswers(ctx context.Context, assessmentID string, answers []AnswerRecord) error

	// CompleteAssessment marks the assessment completed and writes the
	// denormalized score summary. Best-effort: callers may ignore failure.
	CompleteAssessment(ctx context.Context, assessmentID string, completedAt time.Time, sum scoring.Summary) error
}

// Session is the transient state of one participant interaction.
type Session struct {
	store  Store
	logger *slog.Logger

	Stage Stage
	Draft ParticipantDraft

	// Identifiers assigned on the start->questions transition.
	ParticipantID string
	AssessmentID  string

	// Questions loaded on entry to StageQuestions.
	Questions []catalog.Question

	// Answers maps question id to a rating value; last write wins.
	Answers map[string]int

	// Summary is attached exactly once, on the questions->result transition.
	Summary *scoring.Summary

	// ErrMsg is the user-facing error for the current stage, "" when clear.
	ErrMsg string

	// Loading is true while a catalog load is in flight.
	Loading bool

	// loadToken invalidates in-flight catalog loads when the stage moves on.
	loadToken int
}

// New creates a session at the start stage.
func New(store Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:   store,
		logger:  logger,
		Stage:   StageStart,
		Answers: make(map[string]int),
	}
}

// ClearError clears the user-facing error message.
func (s *Session) ClearError() {
	s.ErrMsg = ""
}

// AnsweredCount returns how many loaded questions have an answer.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, q := range s.Questions {
		if _, ok := s.Answers[q.ID]; ok {
			n++
		}
	}
	return n
}
