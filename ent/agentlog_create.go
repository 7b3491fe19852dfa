// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/louannemur/fleetd/ent/agentlog"
)

// AgentLogCreate is the builder for creating a AgentLog entity.
type AgentLogCreate struct {
	config
	mutation *AgentLogMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentLogCreate) SetAgentID(v string) *AgentLogCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *AgentLogCreate) SetTaskID(v string) *AgentLogCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableTaskID(v *string) *AgentLogCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetLogType sets the "log_type" field.
func (_c *AgentLogCreate) SetLogType(v agentlog.LogType) *AgentLogCreate {
	_c.mutation.SetLogType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentLogCreate) SetContent(v string) *AgentLogCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentLogCreate) SetMetadata(v map[string]interface{}) *AgentLogCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentLogCreate) SetCreatedAt(v time.Time) *AgentLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableCreatedAt(v *time.Time) *AgentLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentLogCreate) SetID(v string) *AgentLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentLogMutation object of the builder.
func (_c *AgentLogCreate) Mutation() *AgentLogMutation {
	return _c.mutation
}

// Save creates the AgentLog in the database.
func (_c *AgentLogCreate) Save(ctx context.Context) (*AgentLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentLogCreate) SaveX(ctx context.Context) *AgentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentLogCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentLog.agent_id"`)}
	}
	if _, ok := _c.mutation.LogType(); !ok {
		return &ValidationError{Name: "log_type", err: errors.New(`ent: missing required field "AgentLog.log_type"`)}
	}
	if v, ok := _c.mutation.LogType(); ok {
		if err := agentlog.LogTypeValidator(v); err != nil {
			return &ValidationError{Name: "log_type", err: fmt.Errorf(`ent: validator failed for field "AgentLog.log_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "AgentLog.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentLog.created_at"`)}
	}
	return nil
}

func (_c *AgentLogCreate) sqlSave(ctx context.Context) (*AgentLog, error) {
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
			return nil, fmt.Errorf("unexpected AgentLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentLogCreate) createSpec() (*AgentLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentlog.Table, sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentlog.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(agentlog.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.LogType(); ok {
		_spec.SetField(agentlog.FieldLogType, field.TypeEnum, value)
		_node.LogType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agentlog.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agentlog.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AgentLogCreateBulk is the builder for creating many AgentLog entities in bulk.
type AgentLogCreateBulk struct {
	config
	err      error
	builders []*AgentLogCreate
}

// Save creates the AgentLog entities in the database.
func (_c *AgentLogCreateBulk) Save(ctx context.Context) ([]*AgentLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentLogMutation)
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
func (_c *AgentLogCreateBulk) SaveX(ctx context.Context) []*AgentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
