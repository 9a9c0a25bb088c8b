// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyal/worklens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAssessmentID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldAssessmentID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldQuestionID, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
