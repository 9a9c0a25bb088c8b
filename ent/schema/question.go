package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one rated statement of the catalog. Rows are seeded from
// the embedded catalog and ids are the catalog's stable ids.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.Int("display_number").
			Unique().
			Comment("Presentation order, 1-based"),
		field.String("style").
			NotEmpty().
			Comment("Style code the statement scores toward"),
		field.String("group_label").
			NotEmpty().
			Comment("Section heading shown above the statement"),
		field.String("prompt").
			NotEmpty(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("display_number"),
	}
}
