package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer is one rating given to a question within an assessment.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("Links to Assessment"),
		field.String("question_id").
			NotEmpty().
			Comment("Links to Question"),
		field.Int("value").
			Range(1, 3).
			Comment("Rating on the 1..3 scale"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("assessment_id", "question_id").
			Unique(),
	}
}
