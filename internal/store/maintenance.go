package store

import (
	"context"
	"fmt"
)

// ResetResponses deletes all answers and assessments in one transaction.
// Participants are kept unless includeParticipants is set. The question
// catalog always stays seeded.
func (s *Store) ResetResponses(ctx context.Context, includeParticipants bool) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Answer.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete answers: %w", err)
	}
	if _, err := tx.Assessment.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete assessments: %w", err)
	}
	if includeParticipants {
		if _, err := tx.Participant.Delete().Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("delete participants: %w", err)
		}
	}

	return tx.Commit()
}
