// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/priyal/worklens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// DisplayNumber applies equality check predicate on the "display_number" field. It's identical to DisplayNumberEQ.
func DisplayNumber(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDisplayNumber, v))
}

// Style applies equality check predicate on the "style" field. It's identical to StyleEQ.
func Style(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStyle, v))
}

// GroupLabel applies equality check predicate on the "group_label" field. It's identical to GroupLabelEQ.
func GroupLabel(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldGroupLabel, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// DisplayNumberEQ applies the EQ predicate on the "display_number" field.
func DisplayNumberEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDisplayNumber, v))
}

// DisplayNumberNEQ applies the NEQ predicate on the "display_number" field.
func DisplayNumberNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDisplayNumber, v))
}

// DisplayNumberIn applies the In predicate on the "display_number" field.
func DisplayNumberIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDisplayNumber, vs...))
}

// DisplayNumberNotIn applies the NotIn predicate on the "display_number" field.
func DisplayNumberNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDisplayNumber, vs...))
}

// DisplayNumberGT applies the GT predicate on the "display_number" field.
func DisplayNumberGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDisplayNumber, v))
}

// DisplayNumberGTE applies the GTE predicate on the "display_number" field.
func DisplayNumberGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDisplayNumber, v))
}

// DisplayNumberLT applies the LT predicate on the "display_number" field.
func DisplayNumberLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDisplayNumber, v))
}

// DisplayNumberLTE applies the LTE predicate on the "display_number" field.
func DisplayNumberLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDisplayNumber, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStyle, vs...))
}

// StyleGT applies the GT predicate on the "style" field.
func StyleGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStyle, v))
}

// StyleGTE applies the GTE predicate on the "style" field.
func StyleGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStyle, v))
}

// StyleLT applies the LT predicate on the "style" field.
func StyleLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStyle, v))
}

// StyleLTE applies the LTE predicate on the "style" field.
func StyleLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStyle, v))
}

// StyleContains applies the Contains predicate on the "style" field.
func StyleContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStyle, v))
}

// StyleHasPrefix applies the HasPrefix predicate on the "style" field.
func StyleHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStyle, v))
}

// StyleHasSuffix applies the HasSuffix predicate on the "style" field.
func StyleHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStyle, v))
}

// StyleEqualFold applies the EqualFold predicate on the "style" field.
func StyleEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStyle, v))
}

// StyleContainsFold applies the ContainsFold predicate on the "style" field.
func StyleContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStyle, v))
}

// GroupLabelEQ applies the EQ predicate on the "group_label" field.
func GroupLabelEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldGroupLabel, v))
}

// GroupLabelNEQ applies the NEQ predicate on the "group_label" field.
func GroupLabelNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldGroupLabel, v))
}

// GroupLabelIn applies the In predicate on the "group_label" field.
func GroupLabelIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldGroupLabel, vs...))
}

// GroupLabelNotIn applies the NotIn predicate on the "group_label" field.
func GroupLabelNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldGroupLabel, vs...))
}

// GroupLabelGT applies the GT predicate on the "group_label" field.
func GroupLabelGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldGroupLabel, v))
}

// GroupLabelGTE applies the GTE predicate on the "group_label" field.
func GroupLabelGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldGroupLabel, v))
}

// GroupLabelLT applies the LT predicate on the "group_label" field.
func GroupLabelLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldGroupLabel, v))
}

// GroupLabelLTE applies the LTE predicate on the "group_label" field.
func GroupLabelLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldGroupLabel, v))
}

// GroupLabelContains applies the Contains predicate on the "group_label" field.
func GroupLabelContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldGroupLabel, v))
}

// GroupLabelHasPrefix applies the HasPrefix predicate on the "group_label" field.
func GroupLabelHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldGroupLabel, v))
}

// GroupLabelHasSuffix applies the HasSuffix predicate on the "group_label" field.
func GroupLabelHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldGroupLabel, v))
}

// GroupLabelEqualFold applies the EqualFold predicate on the "group_label" field.
func GroupLabelEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldGroupLabel, v))
}

// GroupLabelContainsFold applies the ContainsFold predicate on the "group_label" field.
func GroupLabelContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldGroupLabel, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrompt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
