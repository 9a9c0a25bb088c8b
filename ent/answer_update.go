// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyal/worklens/ent/answer"
	"github.com/priyal/worklens/ent/predicate"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AnswerUpdate) SetAssessmentID(v string) *AnswerUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableAssessmentID(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdate) SetQuestionID(v string) *AnswerUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableQuestionID(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AnswerUpdate) SetValue(v int) *AnswerUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableValue(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *AnswerUpdate) AddValue(v int) *AnswerUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := answer.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Answer.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Answer.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := answer.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Answer.value": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(answer.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(answer.FieldValue, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AnswerUpdateOne) SetAssessmentID(v string) *AnswerUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableAssessmentID(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdateOne) SetQuestionID(v string) *AnswerUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableQuestionID(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AnswerUpdateOne) SetValue(v int) *AnswerUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableValue(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *AnswerUpdateOne) AddValue(v int) *AnswerUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := answer.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Answer.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Answer.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := answer.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "Answer.value": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(answer.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(answer.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(answer.FieldValue, field.TypeInt, value)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
