package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Participant is one person taking assessments, keyed by email.
type Participant struct {
	ent.Schema
}

func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable(),
		field.String("full_name").
			NotEmpty().
			Comment("Display name as entered on the contact form"),
		field.String("email").
			NotEmpty().
			Unique().
			Comment("Upsert key; one row per email"),
		field.String("organization").
			Optional(),
		field.String("role").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Bumped when a returning email updates contact fields"),
	}
}
