// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyal/worklens/ent/assessment"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetParticipantID sets the "participant_id" field.
func (_c *AssessmentCreate) SetParticipantID(v string) *AssessmentCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssessmentCreate) SetStatus(v string) *AssessmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AssessmentCreate) SetStartedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableStartedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AssessmentCreate) SetCompletedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableCompletedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDominantStyle sets the "dominant_style" field.
func (_c *AssessmentCreate) SetDominantStyle(v string) *AssessmentCreate {
	_c.mutation.SetDominantStyle(v)
	return _c
}

// SetNillableDominantStyle sets the "dominant_style" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableDominantStyle(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetDominantStyle(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *AssessmentCreate) SetTotalScore(v int) *AssessmentCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableTotalScore(v *int) *AssessmentCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetSubtotals sets the "subtotals" field.
func (_c *AssessmentCreate) SetSubtotals(v map[string]int) *AssessmentCreate {
	_c.mutation.SetSubtotals(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentCreate) SetID(v string) *AssessmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableID(v *string) *AssessmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := assessment.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assessment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "Assessment.participant_id"`)}
	}
	if v, ok := _c.mutation.ParticipantID(); ok {
		if err := assessment.ParticipantIDValidator(v); err != nil {
			return &ValidationError{Name: "participant_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.participant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Assessment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assessment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assessment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Assessment.started_at"`)}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Assessment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantID(); ok {
		_spec.SetField(assessment.FieldParticipantID, field.TypeString, value)
		_node.ParticipantID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assessment.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(assessment.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(assessment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DominantStyle(); ok {
		_spec.SetField(assessment.FieldDominantStyle, field.TypeString, value)
		_node.DominantStyle = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(assessment.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.Subtotals(); ok {
		_spec.SetField(assessment.FieldSubtotals, field.TypeJSON, value)
		_node.Subtotals = value
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
