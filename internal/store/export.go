package store

import (
	"context"
	"fmt"
	"time"

	"github.com/priyal/worklens/ent"
	entanswer "github.com/priyal/worklens/ent/answer"
	entassessment "github.com/priyal/worklens/ent/assessment"
)

// ParticipantExport is the contact slice of an exported assessment.
type ParticipantExport struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role,omitempty"`
}

// AnswerExport is one answer row of an exported assessment.
type AnswerExport struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
}

// AssessmentExport is one assessment with its participant and answers,
// shaped for JSON output.
type AssessmentExport struct {
	ID            string            `json:"id"`
	Participant   ParticipantExport `json:"participant"`
	Status        string            `json:"status"`
	StartedAt     time.Time         `json:"started_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	DominantStyle string            `json:"dominant_style,omitempty"`
	TotalScore    int               `json:"total_score,omitempty"`
	Subtotals     map[string]int    `json:"subtotals,omitempty"`
	Answers       []AnswerExport    `json:"answers"`
}

// ExportAssessments returns every assessment joined with its participant
// and answer rows, oldest first.
func (s *Store) ExportAssessments(ctx context.Context) ([]AssessmentExport, error) {
	rows, err := s.client.Assessment.Query().
		Order(ent.Asc(entassessment.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	people, err := s.client.Participant.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	byID := make(map[string]*ent.Participant, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	out := make([]AssessmentExport, 0, len(rows))
	for _, row := range rows {
		exp := AssessmentExport{
			ID:            row.ID,
			Status:        row.Status,
			StartedAt:     row.StartedAt,
			CompletedAt:   row.CompletedAt,
			DominantStyle: row.DominantStyle,
			TotalScore:    row.TotalScore,
			Subtotals:     row.Subtotals,
		}
		if p, ok := byID[row.ParticipantID]; ok {
			exp.Participant = ParticipantExport{
				FullName:     p.FullName,
				Email:        p.Email,
				Organization: p.Organization,
				Role:         p.Role,
			}
		}

		answers, err := s.client.Answer.Query().
			Where(entanswer.AssessmentIDEQ(row.ID)).
			Order(ent.Asc(entanswer.FieldQuestionID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list answers for %s: %w", row.ID, err)
		}
		exp.Answers = make([]AnswerExport, 0, len(answers))
		for _, a := range answers {
			exp.Answers = append(exp.Answers, AnswerExport{QuestionID: a.QuestionID, Value: a.Value})
		}

		out = append(out, exp)
	}
	return out, nil
}
