package store

import (
	"context"
	"fmt"

	"github.com/priyal/worklens/ent"
	"github.com/priyal/worklens/internal/assessment"
)

// InsertAnswers stores the full answer batch for an assessment in one
// transaction, so a partially-saved assessment can never exist.
func (s *Store) InsertAnswers(ctx context.Context, assessmentID string, answers []assessment.AnswerRecord) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	builders := make([]*ent.AnswerCreate, len(answers))
	for i, a := range answers {
		builders[i] = tx.Answer.Create().
			SetAssessmentID(assessmentID).
			SetQuestionID(a.QuestionID).
			SetValue(a.Value)
	}
	if _, err := tx.Answer.CreateBulk(builders...).Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert answers: %w", err)
	}

	return tx.Commit()
}
