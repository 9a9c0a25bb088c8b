// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyal/worklens/ent/assessment"
	"github.com/priyal/worklens/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantID sets the "participant_id" field.
func (_u *AssessmentUpdate) SetParticipantID(v string) *AssessmentUpdate {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableParticipantID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentUpdate) SetStatus(v string) *AssessmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableStatus(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentUpdate) SetCompletedAt(v time.Time) *AssessmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableCompletedAt(v *time.Time) *AssessmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentUpdate) ClearCompletedAt() *AssessmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDominantStyle sets the "dominant_style" field.
func (_u *AssessmentUpdate) SetDominantStyle(v string) *AssessmentUpdate {
	_u.mutation.SetDominantStyle(v)
	return _u
}

// SetNillableDominantStyle sets the "dominant_style" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableDominantStyle(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetDominantStyle(*v)
	}
	return _u
}

// ClearDominantStyle clears the value of the "dominant_style" field.
func (_u *AssessmentUpdate) ClearDominantStyle() *AssessmentUpdate {
	_u.mutation.ClearDominantStyle()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AssessmentUpdate) SetTotalScore(v int) *AssessmentUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTotalScore(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AssessmentUpdate) AddTotalScore(v int) *AssessmentUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *AssessmentUpdate) ClearTotalScore() *AssessmentUpdate {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetSubtotals sets the "subtotals" field.
func (_u *AssessmentUpdate) SetSubtotals(v map[string]int) *AssessmentUpdate {
	_u.mutation.SetSubtotals(v)
	return _u
}

// ClearSubtotals clears the value of the "subtotals" field.
func (_u *AssessmentUpdate) ClearSubtotals() *AssessmentUpdate {
	_u.mutation.ClearSubtotals()
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.ParticipantID(); ok {
		if err := assessment.ParticipantIDValidator(v); err != nil {
			return &ValidationError{Name: "participant_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.participant_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParticipantID(); ok {
		_spec.SetField(assessment.FieldParticipantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DominantStyle(); ok {
		_spec.SetField(assessment.FieldDominantStyle, field.TypeString, value)
	}
	if _u.mutation.DominantStyleCleared() {
		_spec.ClearField(assessment.FieldDominantStyle, field.TypeString)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(assessment.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(assessment.FieldTotalScore, field.TypeInt, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(assessment.FieldTotalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Subtotals(); ok {
		_spec.SetField(assessment.FieldSubtotals, field.TypeJSON, value)
	}
	if _u.mutation.SubtotalsCleared() {
		_spec.ClearField(assessment.FieldSubtotals, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetParticipantID sets the "participant_id" field.
func (_u *AssessmentUpdateOne) SetParticipantID(v string) *AssessmentUpdateOne {
	_u.mutation.SetParticipantID(v)
	return _u
}

// SetNillableParticipantID sets the "participant_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableParticipantID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetParticipantID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentUpdateOne) SetStatus(v string) *AssessmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableStatus(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentUpdateOne) SetCompletedAt(v time.Time) *AssessmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AssessmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentUpdateOne) ClearCompletedAt() *AssessmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDominantStyle sets the "dominant_style" field.
func (_u *AssessmentUpdateOne) SetDominantStyle(v string) *AssessmentUpdateOne {
	_u.mutation.SetDominantStyle(v)
	return _u
}

// SetNillableDominantStyle sets the "dominant_style" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableDominantStyle(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetDominantStyle(*v)
	}
	return _u
}

// ClearDominantStyle clears the value of the "dominant_style" field.
func (_u *AssessmentUpdateOne) ClearDominantStyle() *AssessmentUpdateOne {
	_u.mutation.ClearDominantStyle()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *AssessmentUpdateOne) SetTotalScore(v int) *AssessmentUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTotalScore(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *AssessmentUpdateOne) AddTotalScore(v int) *AssessmentUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *AssessmentUpdateOne) ClearTotalScore() *AssessmentUpdateOne {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetSubtotals sets the "subtotals" field.
func (_u *AssessmentUpdateOne) SetSubtotals(v map[string]int) *AssessmentUpdateOne {
	_u.mutation.SetSubtotals(v)
	return _u
}

// ClearSubtotals clears the value of the "subtotals" field.
func (_u *AssessmentUpdateOne) ClearSubtotals() *AssessmentUpdateOne {
	_u.mutation.ClearSubtotals()
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.ParticipantID(); ok {
		if err := assessment.ParticipantIDValidator(v); err != nil {
			return &ValidationError{Name: "participant_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.participant_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParticipantID(); ok {
		_spec.SetField(assessment.FieldParticipantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DominantStyle(); ok {
		_spec.SetField(assessment.FieldDominantStyle, field.TypeString, value)
	}
	if _u.mutation.DominantStyleCleared() {
		_spec.ClearField(assessment.FieldDominantStyle, field.TypeString)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(assessment.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(assessment.FieldTotalScore, field.TypeInt, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(assessment.FieldTotalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Subtotals(); ok {
		_spec.SetField(assessment.FieldSubtotals, field.TypeJSON, value)
	}
	if _u.mutation.SubtotalsCleared() {
		_spec.ClearField(assessment.FieldSubtotals, field.TypeJSON)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
