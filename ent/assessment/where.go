// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyal/worklens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldID, id))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldParticipantID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCompletedAt, v))
}

// DominantStyle applies equality check predicate on the "dominant_style" field. It's identical to DominantStyleEQ.
func DominantStyle(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldDominantStyle, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTotalScore, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldParticipantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldCompletedAt))
}

// DominantStyleEQ applies the EQ predicate on the "dominant_style" field.
func DominantStyleEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldDominantStyle, v))
}

// DominantStyleNEQ applies the NEQ predicate on the "dominant_style" field.
func DominantStyleNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldDominantStyle, v))
}

// DominantStyleIn applies the In predicate on the "dominant_style" field.
func DominantStyleIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldDominantStyle, vs...))
}

// DominantStyleNotIn applies the NotIn predicate on the "dominant_style" field.
func DominantStyleNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldDominantStyle, vs...))
}

// DominantStyleGT applies the GT predicate on the "dominant_style" field.
func DominantStyleGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldDominantStyle, v))
}

// DominantStyleGTE applies the GTE predicate on the "dominant_style" field.
func DominantStyleGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldDominantStyle, v))
}

// DominantStyleLT applies the LT predicate on the "dominant_style" field.
func DominantStyleLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldDominantStyle, v))
}

// DominantStyleLTE applies the LTE predicate on the "dominant_style" field.
func DominantStyleLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldDominantStyle, v))
}

// DominantStyleContains applies the Contains predicate on the "dominant_style" field.
func DominantStyleContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldDominantStyle, v))
}

// DominantStyleHasPrefix applies the HasPrefix predicate on the "dominant_style" field.
func DominantStyleHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldDominantStyle, v))
}

// DominantStyleHasSuffix applies the HasSuffix predicate on the "dominant_style" field.
func DominantStyleHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldDominantStyle, v))
}

// DominantStyleIsNil applies the IsNil predicate on the "dominant_style" field.
func DominantStyleIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldDominantStyle))
}

// DominantStyleNotNil applies the NotNil predicate on the "dominant_style" field.
func DominantStyleNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldDominantStyle))
}

// DominantStyleEqualFold applies the EqualFold predicate on the "dominant_style" field.
func DominantStyleEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldDominantStyle, v))
}

// DominantStyleContainsFold applies the ContainsFold predicate on the "dominant_style" field.
func DominantStyleContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldDominantStyle, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTotalScore, v))
}

// TotalScoreIsNil applies the IsNil predicate on the "total_score" field.
func TotalScoreIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldTotalScore))
}

// TotalScoreNotNil applies the NotNil predicate on the "total_score" field.
func TotalScoreNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldTotalScore))
}

// SubtotalsIsNil applies the IsNil predicate on the "subtotals" field.
func SubtotalsIsNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldIsNull(FieldSubtotals))
}

// SubtotalsNotNil applies the NotNil predicate on the "subtotals" field.
func SubtotalsNotNil() predicate.Assessment {
	return predicate.Assessment(sql.FieldNotNull(FieldSubtotals))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
