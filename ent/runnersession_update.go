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
	"github.com/louannemur/fleetd/ent/predicate"
	"github.com/louannemur/fleetd/ent/runnersession"
)

// RunnerSessionUpdate is the builder for updating RunnerSession entities.
type RunnerSessionUpdate struct {
	config
	hooks    []Hook
	mutation *RunnerSessionMutation
}

// Where appends a list predicates to the RunnerSessionUpdate builder.
func (_u *RunnerSessionUpdate) Where(ps ...predicate.RunnerSession) *RunnerSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToken sets the "token" field.
func (_u *RunnerSessionUpdate) SetToken(v string) *RunnerSessionUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *RunnerSessionUpdate) SetNillableToken(v *string) *RunnerSessionUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RunnerSessionUpdate) SetName(v string) *RunnerSessionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RunnerSessionUpdate) SetNillableName(v *string) *RunnerSessionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *RunnerSessionUpdate) SetWorkingDir(v string) *RunnerSessionUpdate {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *RunnerSessionUpdate) SetNillableWorkingDir(v *string) *RunnerSessionUpdate {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RunnerSessionUpdate) SetIsActive(v bool) *RunnerSessionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RunnerSessionUpdate) SetNillableIsActive(v *bool) *RunnerSessionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *RunnerSessionUpdate) SetLastSeenAt(v time.Time) *RunnerSessionUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *RunnerSessionUpdate) SetNillableLastSeenAt(v *time.Time) *RunnerSessionUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the RunnerSessionMutation object of the builder.
func (_u *RunnerSessionUpdate) Mutation() *RunnerSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunnerSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunnerSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunnerSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(runnersession.Table, runnersession.Columns, sqlgraph.NewFieldSpec(runnersession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(runnersession.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(runnersession.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(runnersession.FieldWorkingDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(runnersession.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(runnersession.FieldLastSeenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnersession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunnerSessionUpdateOne is the builder for updating a single RunnerSession entity.
type RunnerSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunnerSessionMutation
}

// SetToken sets the "token" field.
func (_u *RunnerSessionUpdateOne) SetToken(v string) *RunnerSessionUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *RunnerSessionUpdateOne) SetNillableToken(v *string) *RunnerSessionUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RunnerSessionUpdateOne) SetName(v string) *RunnerSessionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RunnerSessionUpdateOne) SetNillableName(v *string) *RunnerSessionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *RunnerSessionUpdateOne) SetWorkingDir(v string) *RunnerSessionUpdateOne {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *RunnerSessionUpdateOne) SetNillableWorkingDir(v *string) *RunnerSessionUpdateOne {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RunnerSessionUpdateOne) SetIsActive(v bool) *RunnerSessionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RunnerSessionUpdateOne) SetNillableIsActive(v *bool) *RunnerSessionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *RunnerSessionUpdateOne) SetLastSeenAt(v time.Time) *RunnerSessionUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *RunnerSessionUpdateOne) SetNillableLastSeenAt(v *time.Time) *RunnerSessionUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the RunnerSessionMutation object of the builder.
func (_u *RunnerSessionUpdateOne) Mutation() *RunnerSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunnerSessionUpdate builder.
func (_u *RunnerSessionUpdateOne) Where(ps ...predicate.RunnerSession) *RunnerSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunnerSessionUpdateOne) Select(field string, fields ...string) *RunnerSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunnerSession entity.
func (_u *RunnerSessionUpdateOne) Save(ctx context.Context) (*RunnerSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerSessionUpdateOne) SaveX(ctx context.Context) *RunnerSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunnerSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunnerSessionUpdateOne) sqlSave(ctx context.Context) (_node *RunnerSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(runnersession.Table, runnersession.Columns, sqlgraph.NewFieldSpec(runnersession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunnerSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runnersession.FieldID)
		for _, f := range fields {
			if !runnersession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runnersession.FieldID {
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
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(runnersession.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(runnersession.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(runnersession.FieldWorkingDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(runnersession.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(runnersession.FieldLastSeenAt, field.TypeTime, value)
	}
	_node = &RunnerSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnersession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
