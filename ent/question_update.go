// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyal/worklens/ent/predicate"
	"github.com/priyal/worklens/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayNumber sets the "display_number" field.
func (_u *QuestionUpdate) SetDisplayNumber(v int) *QuestionUpdate {
	_u.mutation.ResetDisplayNumber()
	_u.mutation.SetDisplayNumber(v)
	return _u
}

// SetNillableDisplayNumber sets the "display_number" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDisplayNumber(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetDisplayNumber(*v)
	}
	return _u
}

// AddDisplayNumber adds value to the "display_number" field.
func (_u *QuestionUpdate) AddDisplayNumber(v int) *QuestionUpdate {
	_u.mutation.AddDisplayNumber(v)
	return _u
}

// SetStyle sets the "style" field.
func (_u *QuestionUpdate) SetStyle(v string) *QuestionUpdate {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableStyle(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetGroupLabel sets the "group_label" field.
func (_u *QuestionUpdate) SetGroupLabel(v string) *QuestionUpdate {
	_u.mutation.SetGroupLabel(v)
	return _u
}

// SetNillableGroupLabel sets the "group_label" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableGroupLabel(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetGroupLabel(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdate) SetPrompt(v string) *QuestionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePrompt(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Style(); ok {
		if err := question.StyleValidator(v); err != nil {
			return &ValidationError{Name: "style", err: fmt.Errorf(`ent: validator failed for field "Question.style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupLabel(); ok {
		if err := question.GroupLabelValidator(v); err != nil {
			return &ValidationError{Name: "group_label", err: fmt.Errorf(`ent: validator failed for field "Question.group_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayNumber(); ok {
		_spec.SetField(question.FieldDisplayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayNumber(); ok {
		_spec.AddField(question.FieldDisplayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(question.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupLabel(); ok {
		_spec.SetField(question.FieldGroupLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetDisplayNumber sets the "display_number" field.
func (_u *QuestionUpdateOne) SetDisplayNumber(v int) *QuestionUpdateOne {
	_u.mutation.ResetDisplayNumber()
	_u.mutation.SetDisplayNumber(v)
	return _u
}

// SetNillableDisplayNumber sets the "display_number" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDisplayNumber(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetDisplayNumber(*v)
	}
	return _u
}

// AddDisplayNumber adds value to the "display_number" field.
func (_u *QuestionUpdateOne) AddDisplayNumber(v int) *QuestionUpdateOne {
	_u.mutation.AddDisplayNumber(v)
	return _u
}

// SetStyle sets the "style" field.
func (_u *QuestionUpdateOne) SetStyle(v string) *QuestionUpdateOne {
	_u.mutation.SetStyle(v)
	return _u
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableStyle(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetStyle(*v)
	}
	return _u
}

// SetGroupLabel sets the "group_label" field.
func (_u *QuestionUpdateOne) SetGroupLabel(v string) *QuestionUpdateOne {
	_u.mutation.SetGroupLabel(v)
	return _u
}

// SetNillableGroupLabel sets the "group_label" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableGroupLabel(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetGroupLabel(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdateOne) SetPrompt(v string) *QuestionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePrompt(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Style(); ok {
		if err := question.StyleValidator(v); err != nil {
			return &ValidationError{Name: "style", err: fmt.Errorf(`ent: validator failed for field "Question.style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupLabel(); ok {
		if err := question.GroupLabelValidator(v); err != nil {
			return &ValidationError{Name: "group_label", err: fmt.Errorf(`ent: validator failed for field "Question.group_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.DisplayNumber(); ok {
		_spec.SetField(question.FieldDisplayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayNumber(); ok {
		_spec.AddField(question.FieldDisplayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Style(); ok {
		_spec.SetField(question.FieldStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupLabel(); ok {
		_spec.SetField(question.FieldGroupLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
