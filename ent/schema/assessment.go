package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Assessment is one run through the questionnaire by a participant.
// The summary columns are denormalized from the answer rows; the rows
// stay authoritative.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("participant_id").
			NotEmpty().
			Comment("Links to Participant"),
		field.String("status").
			NotEmpty().
			Comment("in_progress or completed"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("dominant_style").
			Optional().
			Comment("Style code with the highest subtotal"),
		field.Int("total_score").
			Optional(),
		field.JSON("subtotals", map[string]int{}).
			Optional().
			Comment("Per-style score subtotals keyed by style code"),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id"),
		index.Fields("status"),
	}
}
