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
	"github.com/louannemur/fleetd/ent/filelock"
	"github.com/louannemur/fleetd/ent/predicate"
)

// FileLockUpdate is the builder for updating FileLock entities.
type FileLockUpdate struct {
	config
	hooks    []Hook
	mutation *FileLockMutation
}

// Where appends a list predicates to the FileLockUpdate builder.
func (_u *FileLockUpdate) Where(ps ...predicate.FileLock) *FileLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *FileLockUpdate) SetFilePath(v string) *FileLockUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableFilePath(v *string) *FileLockUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *FileLockUpdate) SetAgentID(v string) *FileLockUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableAgentID(v *string) *FileLockUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *FileLockUpdate) SetTaskID(v string) *FileLockUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableTaskID(v *string) *FileLockUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *FileLockUpdate) SetExpiresAt(v time.Time) *FileLockUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *FileLockUpdate) SetNillableExpiresAt(v *time.Time) *FileLockUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the FileLockMutation object of the builder.
func (_u *FileLockUpdate) Mutation() *FileLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FileLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(filelock.Table, filelock.Columns, sqlgraph.NewFieldSpec(filelock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(filelock.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(filelock.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(filelock.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(filelock.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileLockUpdateOne is the builder for updating a single FileLock entity.
type FileLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileLockMutation
}

// SetFilePath sets the "file_path" field.
func (_u *FileLockUpdateOne) SetFilePath(v string) *FileLockUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableFilePath(v *string) *FileLockUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *FileLockUpdateOne) SetAgentID(v string) *FileLockUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableAgentID(v *string) *FileLockUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *FileLockUpdateOne) SetTaskID(v string) *FileLockUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableTaskID(v *string) *FileLockUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *FileLockUpdateOne) SetExpiresAt(v time.Time) *FileLockUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *FileLockUpdateOne) SetNillableExpiresAt(v *time.Time) *FileLockUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the FileLockMutation object of the builder.
func (_u *FileLockUpdateOne) Mutation() *FileLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the FileLockUpdate builder.
func (_u *FileLockUpdateOne) Where(ps ...predicate.FileLock) *FileLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileLockUpdateOne) Select(field string, fields ...string) *FileLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileLock entity.
func (_u *FileLockUpdateOne) Save(ctx context.Context) (*FileLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileLockUpdateOne) SaveX(ctx context.Context) *FileLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FileLockUpdateOne) sqlSave(ctx context.Context) (_node *FileLock, err error) {
	_spec := sqlgraph.NewUpdateSpec(filelock.Table, filelock.Columns, sqlgraph.NewFieldSpec(filelock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filelock.FieldID)
		for _, f := range fields {
			if !filelock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != filelock.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(filelock.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(filelock.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(filelock.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(filelock.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &FileLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
