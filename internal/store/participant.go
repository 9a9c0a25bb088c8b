package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/priyal/worklens/ent"
	"github.com/priyal/worklens/ent/participant"
	"github.com/priyal/worklens/internal/assessment"
)

// UpsertParticipant creates a participant or, when the email is already
// known, refreshes the contact fields on the existing row. The returned
// id is stable across repeated submissions of the same email.
func (s *Store) UpsertParticipant(ctx context.Context, draft assessment.ParticipantDraft) (string, error) {
	email := strings.ToLower(strings.TrimSpace(draft.Email))

	existing, err := s.client.Participant.Query().
		Where(participant.EmailEQ(email)).
		Only(ctx)
	switch {
	case err == nil:
		err = existing.Update().
			SetFullName(draft.FullName).
			SetOrganization(draft.Organization).
			SetRole(draft.Role).
			Exec(ctx)
		if err != nil {
			return "", fmt.Errorf("update participant: %w", err)
		}
		return existing.ID, nil

	case ent.IsNotFound(err):
		created, err := s.client.Participant.Create().
			SetFullName(draft.FullName).
			SetEmail(email).
			SetOrganization(draft.Organization).
			SetRole(draft.Role).
			Save(ctx)
		if err != nil {
			return "", fmt.Errorf("create participant: %w", err)
		}
		return created.ID, nil

	default:
		return "", fmt.Errorf("query participant: %w", err)
	}
}
