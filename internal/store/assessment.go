package store

import (
	"context"
	"fmt"
	"time"

	"github.com/priyal/worklens/internal/assessment"
	"github.com/priyal/worklens/internal/scoring"
)

// CreateAssessment creates a new assessment row for the participant and
// returns its id.
func (s *Store) CreateAssessment(ctx context.Context, participantID, status string) (string, error) {
	created, err := s.client.Assessment.Create().
		SetParticipantID(participantID).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create assessment: %w", err)
	}
	return created.ID, nil
}

// CompleteAssessment marks the assessment completed and writes the
// denormalized summary columns. The answer rows remain the authoritative
// record; these columns only exist so exports and listings do not need
// to re-score.
func (s *Store) CompleteAssessment(ctx context.Context, assessmentID string, completedAt time.Time, sum scoring.Summary) error {
	subtotals := make(map[string]int, scoring.NumStyles)
	for _, st := range scoring.Styles {
		subtotals[st.String()] = sum.Subtotal(st)
	}

	upd := s.client.Assessment.UpdateOneID(assessmentID).
		SetStatus(assessment.StatusCompleted).
		SetCompletedAt(completedAt).
		SetTotalScore(sum.Total).
		SetSubtotals(subtotals)
	if dom, ok := scoring.Dominant(&sum); ok {
		upd = upd.SetDominantStyle(dom.String())
	}

	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("complete assessment: %w", err)
	}
	return nil
}
