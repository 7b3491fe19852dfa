// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/louannemur/fleetd/ent/agentlog"
	"github.com/louannemur/fleetd/ent/predicate"
)

// AgentLogUpdate is the builder for updating AgentLog entities.
type AgentLogUpdate struct {
	config
	hooks    []Hook
	mutation *AgentLogMutation
}

// Where appends a list predicates to the AgentLogUpdate builder.
func (_u *AgentLogUpdate) Where(ps ...predicate.AgentLog) *AgentLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLogType sets the "log_type" field.
func (_u *AgentLogUpdate) SetLogType(v agentlog.LogType) *AgentLogUpdate {
	_u.mutation.SetLogType(v)
	return _u
}

// SetNillableLogType sets the "log_type" field if the given value is not nil.
func (_u *AgentLogUpdate) SetNillableLogType(v *agentlog.LogType) *AgentLogUpdate {
	if v != nil {
		_u.SetLogType(*v)
	}
	return _u
}

// Mutation returns the AgentLogMutation object of the builder.
func (_u *AgentLogUpdate) Mutation() *AgentLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentLogUpdate) check() error {
	if v, ok := _u.mutation.LogType(); ok {
		if err := agentlog.LogTypeValidator(v); err != nil {
			return &ValidationError{Name: "log_type", err: fmt.Errorf(`ent: validator failed for field "AgentLog.log_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentlog.Table, agentlog.Columns, sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(agentlog.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LogType(); ok {
		_spec.SetField(agentlog.FieldLogType, field.TypeEnum, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentlog.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentLogUpdateOne is the builder for updating a single AgentLog entity.
type AgentLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentLogMutation
}

// SetLogType sets the "log_type" field.
func (_u *AgentLogUpdateOne) SetLogType(v agentlog.LogType) *AgentLogUpdateOne {
	_u.mutation.SetLogType(v)
	return _u
}

// SetNillableLogType sets the "log_type" field if the given value is not nil.
func (_u *AgentLogUpdateOne) SetNillableLogType(v *agentlog.LogType) *AgentLogUpdateOne {
	if v != nil {
		_u.SetLogType(*v)
	}
	return _u
}

// Mutation returns the AgentLogMutation object of the builder.
func (_u *AgentLogUpdateOne) Mutation() *AgentLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentLogUpdate builder.
func (_u *AgentLogUpdateOne) Where(ps ...predicate.AgentLog) *AgentLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentLogUpdateOne) Select(field string, fields ...string) *AgentLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentLog entity.
func (_u *AgentLogUpdateOne) Save(ctx context.Context) (*AgentLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentLogUpdateOne) SaveX(ctx context.Context) *AgentLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentLogUpdateOne) check() error {
	if v, ok := _u.mutation.LogType(); ok {
		if err := agentlog.LogTypeValidator(v); err != nil {
			return &ValidationError{Name: "log_type", err: fmt.Errorf(`ent: validator failed for field "AgentLog.log_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentLogUpdateOne) sqlSave(ctx context.Context) (_node *AgentLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentlog.Table, agentlog.Columns, sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentlog.FieldID)
		for _, f := range fields {
			if !agentlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentlog.FieldID {
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
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(agentlog.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.LogType(); ok {
		_spec.SetField(agentlog.FieldLogType, field.TypeEnum, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentlog.FieldMetadata, field.TypeJSON)
	}
	_node = &AgentLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
