package store

import (
	"context"
	"fmt"

	"github.com/priyal/worklens/ent"
	"github.com/priyal/worklens/ent/question"
	"github.com/priyal/worklens/internal/catalog"
	"github.com/priyal/worklens/internal/scoring"
)

// ListQuestions returns the seeded question catalog ordered by display
// number.
func (s *Store) ListQuestions(ctx context.Context) ([]catalog.Question, error) {
	rows, err := s.client.Question.Query().
		Order(ent.Asc(question.FieldDisplayNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	out := make([]catalog.Question, 0, len(rows))
	for _, row := range rows {
		style, ok := scoring.ParseStyle(row.Style)
		if !ok {
			return nil, fmt.Errorf("question %s: unknown style %q", row.ID, row.Style)
		}
		out = append(out, catalog.Question{
			ID:            row.ID,
			DisplayNumber: row.DisplayNumber,
			Style:         style,
			Group:         row.GroupLabel,
			Prompt:        row.Prompt,
		})
	}
	return out, nil
}

// CountQuestions returns how many questions are seeded.
func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	return s.client.Question.Query().Count(ctx)
}

// SeedQuestions inserts the catalog if the question table is empty.
// Already-seeded databases are left untouched; use ReplaceQuestions to
// swap in a new catalog.
func (s *Store) SeedQuestions(ctx context.Context, questions []catalog.Question) error {
	n, err := s.CountQuestions(ctx)
	if err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if n > 0 {
		return nil
	}
	return s.ReplaceQuestions(ctx, questions)
}

// ReplaceQuestions swaps the stored catalog for the given one in a
// single transaction.
func (s *Store) ReplaceQuestions(ctx context.Context, questions []catalog.Question) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Question.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear questions: %w", err)
	}

	builders := make([]*ent.QuestionCreate, len(questions))
	for i, q := range questions {
		builders[i] = tx.Question.Create().
			SetID(q.ID).
			SetDisplayNumber(q.DisplayNumber).
			SetStyle(q.Style.String()).
			SetGroupLabel(q.Group).
			SetPrompt(q.Prompt)
	}
	if _, err := tx.Question.CreateBulk(builders...).Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert questions: %w", err)
	}

	return tx.Commit()
}
