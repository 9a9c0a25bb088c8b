package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/scoring"
)

// User-facing messages for the submit preconditions, checked in order.
var (
	ErrNoSession   = errors.New("no valid session found")
	ErrNoQuestions = errors.New("no questions loaded")
	ErrSaveAnswers = errors.New("could not save answers")
)

// errWrongStage marks an operation arriving outside its stage. Late or
// duplicate requests are dropped without touching session state.
var errWrongStage = errors.New("wrong stage")

// Each transition that needs the store is split in three: a Begin step
// that validates and snapshots inside the update loop, a store round-trip
// that reads no mutable session state and may run on another goroutine,
// and a Finish step that commits the result back inside the update loop.

// StartResult carries the identifiers minted by participant registration.
type StartResult struct {
	ParticipantID string
	AssessmentID  string
}

// BeginStart validates the draft before any store work happens. On a
// validation failure the session stays at StageStart with ErrMsg set.
func (s *Session) BeginStart() error {
	if s.Stage != StageStart {
		return errWrongStage
	}

	if strings.TrimSpace(s.Draft.FullName) == "" {
		s.ErrMsg = "please enter your name"
		return errors.New(s.ErrMsg)
	}
	if strings.TrimSpace(s.Draft.Email) == "" {
		s.ErrMsg = "please enter your email"
		return errors.New(s.ErrMsg)
	}
	return nil
}

// RegisterParticipant runs the start round-trip: upsert the participant by
// email, then create an in-progress assessment. It only touches the store,
// never session state. The two store calls are sequential, not atomic; a
// create failure after a successful upsert leaves only a reusable
// participant row behind.
func (s *Session) RegisterParticipant(ctx context.Context, draft ParticipantDraft) (StartResult, error) {
	participantID, err := s.store.UpsertParticipant(ctx, draft)
	if err != nil {
		return StartResult{}, fmt.Errorf("upsert participant: %w", err)
	}

	assessmentID, err := s.store.CreateAssessment(ctx, participantID, StatusInProgress)
	if err != nil {
		return StartResult{}, fmt.Errorf("create assessment: %w", err)
	}

	return StartResult{ParticipantID: participantID, AssessmentID: assessmentID}, nil
}

// FinishStart commits a registration result. On failure the session stays
// at StageStart with ErrMsg set and no identifiers recorded.
func (s *Session) FinishStart(res StartResult, err error) error {
	if s.Stage != StageStart {
		return errWrongStage
	}
	if err != nil {
		s.ErrMsg = "could not start the assessment"
		return err
	}

	s.ParticipantID = res.ParticipantID
	s.AssessmentID = res.AssessmentID
	s.ErrMsg = ""
	s.Stage = StageQuestions
	return nil
}

// BeginLoad marks a catalog load as in flight and returns the token the
// loader must present to FinishLoad. Starting a new load invalidates any
// earlier in-flight load.
func (s *Session) BeginLoad() int {
	s.loadToken++
	s.Loading = true
	return s.loadToken
}

// FetchQuestions performs the catalog read for an in-flight load. It does
// not touch session state; the result is committed via FinishLoad.
func (s *Session) FetchQuestions(ctx context.Context) ([]catalog.Question, error) {
	return s.store.ListQuestions(ctx)
}

// FinishLoad commits a catalog load result. Stale tokens and resolutions
// arriving outside StageQuestions are discarded so a late load can never
// overwrite newer state. Returns whether the result was committed.
func (s *Session) FinishLoad(token int, questions []catalog.Question, err error) bool {
	if token != s.loadToken || s.Stage != StageQuestions {
		return false
	}
	s.Loading = false
	if err != nil {
		s.Questions = nil
		s.ErrMsg = "could not load questions"
		return true
	}
	s.Questions = questions
	s.ErrMsg = ""
	return true
}

// RecordAnswer stores a rating for the question. Only valid while answering;
// out-of-scale values are rejected. Last write for a question wins.
func (s *Session) RecordAnswer(questionID string, value int) {
	if s.Stage != StageQuestions {
		return
	}
	if value < catalog.MinRating || value > catalog.MaxRating {
		return
	}
	s.Answers[questionID] = value
}

// Submission is the immutable snapshot handed to the submit round-trip.
// The summary is computed here, exactly once, from the snapshot.
type Submission struct {
	AssessmentID string
	Records      []AnswerRecord
	Summary      scoring.Summary
}

// BeginSubmit checks the submit preconditions in order and snapshots
// everything the store round-trip needs. The first failing precondition
// aborts with ErrMsg set and the stage unchanged.
func (s *Session) BeginSubmit() (Submission, error) {
	if s.Stage != StageQuestions {
		return Submission{}, errWrongStage
	}

	if s.AssessmentID == "" {
		s.ErrMsg = ErrNoSession.Error()
		return Submission{}, ErrNoSession
	}
	if len(s.Questions) == 0 {
		s.ErrMsg = ErrNoQuestions.Error()
		return Submission{}, ErrNoQuestions
	}
	if missing := len(s.Questions) - s.AnsweredCount(); missing > 0 {
		s.ErrMsg = fmt.Sprintf("%d of %d statements still unanswered", missing, len(s.Questions))
		return Submission{}, errors.New(s.ErrMsg)
	}

	records := make([]AnswerRecord, 0, len(s.Questions))
	for _, q := range s.Questions {
		records = append(records, AnswerRecord{QuestionID: q.ID, Value: s.Answers[q.ID]})
	}
	return Submission{
		AssessmentID: s.AssessmentID,
		Records:      records,
		Summary:      scoring.Compute(catalog.StylePairs(s.Questions), s.Answers),
	}, nil
}

// PersistSubmission stores the answer batch and marks the assessment
// completed. Like RegisterParticipant it never touches session state.
// Once the batch is stored, failure to update the assessment's
// denormalized summary is logged but not returned: the per-answer rows
// are the authoritative data and the summary is re-derivable from them.
func (s *Session) PersistSubmission(ctx context.Context, sub Submission) error {
	if err := s.store.InsertAnswers(ctx, sub.AssessmentID, sub.Records); err != nil {
		return fmt.Errorf("insert answers: %w", err)
	}

	if err := s.store.CompleteAssessment(ctx, sub.AssessmentID, time.Now().UTC(), sub.Summary); err != nil {
		s.logger.Warn("could not update assessment summary",
			"assessment_id", sub.AssessmentID, "error", err)
	}
	return nil
}

// FinishSubmit commits a submission result. On failure the session stays
// in StageQuestions with the in-memory answers retained for a retry.
func (s *Session) FinishSubmit(sub Submission, err error) error {
	if s.Stage != StageQuestions {
		return errWrongStage
	}
	if err != nil {
		s.ErrMsg = ErrSaveAnswers.Error()
		return err
	}

	sum := sub.Summary
	s.Summary = &sum
	s.ErrMsg = ""
	s.loadToken++ // invalidate any load still in flight
	s.Stage = StageResult
	return nil
}
