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
	"github.com/priyal/worklens/ent/participant"
	"github.com/priyal/worklens/ent/predicate"
)

// ParticipantUpdate is the builder for updating Participant entities.
type ParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantMutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdate) Where(ps ...predicate.Participant) *ParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ParticipantUpdate) SetFullName(v string) *ParticipantUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableFullName(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ParticipantUpdate) SetEmail(v string) *ParticipantUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableEmail(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *ParticipantUpdate) SetOrganization(v string) *ParticipantUpdate {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableOrganization(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *ParticipantUpdate) ClearOrganization() *ParticipantUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// SetRole sets the "role" field.
func (_u *ParticipantUpdate) SetRole(v string) *ParticipantUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableRole(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *ParticipantUpdate) ClearRole() *ParticipantUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantUpdate) SetUpdatedAt(v time.Time) *ParticipantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdate) Mutation() *ParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParticipantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := participant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := participant.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Participant.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := participant.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Participant.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(participant.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(participant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(participant.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(participant.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(participant.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantUpdateOne is the builder for updating a single Participant entity.
type ParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantMutation
}

// SetFullName sets the "full_name" field.
func (_u *ParticipantUpdateOne) SetFullName(v string) *ParticipantUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableFullName(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ParticipantUpdateOne) SetEmail(v string) *ParticipantUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableEmail(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *ParticipantUpdateOne) SetOrganization(v string) *ParticipantUpdateOne {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableOrganization(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *ParticipantUpdateOne) ClearOrganization() *ParticipantUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// SetRole sets the "role" field.
func (_u *ParticipantUpdateOne) SetRole(v string) *ParticipantUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableRole(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *ParticipantUpdateOne) ClearRole() *ParticipantUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParticipantUpdateOne) SetUpdatedAt(v time.Time) *ParticipantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdateOne) Mutation() *ParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdateOne) Where(ps ...predicate.Participant) *ParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantUpdateOne) Select(field string, fields ...string) *ParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Participant entity.
func (_u *ParticipantUpdateOne) Save(ctx context.Context) (*Participant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdateOne) SaveX(ctx context.Context) *Participant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParticipantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := participant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := participant.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Participant.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := participant.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Participant.email": %w`, err)}
		}
	}
	return nil
}

func (_u *ParticipantUpdateOne) sqlSave(ctx context.Context) (_node *Participant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Participant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participant.FieldID)
		for _, f := range fields {
			if !participant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participant.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(participant.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(participant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(participant.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(participant.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(participant.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(participant.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Participant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
