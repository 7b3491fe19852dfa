// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/louannemur/fleetd/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_c *AgentCreate) SetCurrentTaskID(v string) *AgentCreate {
	_c.mutation.SetCurrentTaskID(v)
	return _c
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCurrentTaskID(v *string) *AgentCreate {
	if v != nil {
		_c.SetCurrentTaskID(*v)
	}
	return _c
}

// SetBranchName sets the "branch_name" field.
func (_c *AgentCreate) SetBranchName(v string) *AgentCreate {
	_c.mutation.SetBranchName(v)
	return _c
}

// SetRunnerSessionID sets the "runner_session_id" field.
func (_c *AgentCreate) SetRunnerSessionID(v string) *AgentCreate {
	_c.mutation.SetRunnerSessionID(v)
	return _c
}

// SetWorkingDir sets the "working_dir" field.
func (_c *AgentCreate) SetWorkingDir(v string) *AgentCreate {
	_c.mutation.SetWorkingDir(v)
	return _c
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (_c *AgentCreate) SetTotalTokensUsed(v int) *AgentCreate {
	_c.mutation.SetTotalTokensUsed(v)
	return _c
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTotalTokensUsed(v *int) *AgentCreate {
	if v != nil {
		_c.SetTotalTokensUsed(*v)
	}
	return _c
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_c *AgentCreate) SetTasksCompleted(v int) *AgentCreate {
	_c.mutation.SetTasksCompleted(v)
	return _c
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTasksCompleted(v *int) *AgentCreate {
	if v != nil {
		_c.SetTasksCompleted(*v)
	}
	return _c
}

// SetTasksFailed sets the "tasks_failed" field.
func (_c *AgentCreate) SetTasksFailed(v int) *AgentCreate {
	_c.mutation.SetTasksFailed(v)
	return _c
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTasksFailed(v *int) *AgentCreate {
	if v != nil {
		_c.SetTasksFailed(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentCreate) SetStartedAt(v time.Time) *AgentCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStartedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentCreate) SetCompletedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCompletedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *AgentCreate) SetLastActivityAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastActivityAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalTokensUsed(); !ok {
		v := agent.DefaultTotalTokensUsed
		_c.mutation.SetTotalTokensUsed(v)
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		v := agent.DefaultTasksCompleted
		_c.mutation.SetTasksCompleted(v)
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		v := agent.DefaultTasksFailed
		_c.mutation.SetTasksFailed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agent.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BranchName(); !ok {
		return &ValidationError{Name: "branch_name", err: errors.New(`ent: missing required field "Agent.branch_name"`)}
	}
	if _, ok := _c.mutation.RunnerSessionID(); !ok {
		return &ValidationError{Name: "runner_session_id", err: errors.New(`ent: missing required field "Agent.runner_session_id"`)}
	}
	if _, ok := _c.mutation.WorkingDir(); !ok {
		return &ValidationError{Name: "working_dir", err: errors.New(`ent: missing required field "Agent.working_dir"`)}
	}
	if _, ok := _c.mutation.TotalTokensUsed(); !ok {
		return &ValidationError{Name: "total_tokens_used", err: errors.New(`ent: missing required field "Agent.total_tokens_used"`)}
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		return &ValidationError{Name: "tasks_completed", err: errors.New(`ent: missing required field "Agent.tasks_completed"`)}
	}
	if _, ok := _c.mutation.TasksFailed(); !ok {
		return &ValidationError{Name: "tasks_failed", err: errors.New(`ent: missing required field "Agent.tasks_failed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Agent.started_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeString, value)
		_node.CurrentTaskID = &value
	}
	if value, ok := _c.mutation.BranchName(); ok {
		_spec.SetField(agent.FieldBranchName, field.TypeString, value)
		_node.BranchName = value
	}
	if value, ok := _c.mutation.RunnerSessionID(); ok {
		_spec.SetField(agent.FieldRunnerSessionID, field.TypeString, value)
		_node.RunnerSessionID = value
	}
	if value, ok := _c.mutation.WorkingDir(); ok {
		_spec.SetField(agent.FieldWorkingDir, field.TypeString, value)
		_node.WorkingDir = value
	}
	if value, ok := _c.mutation.TotalTokensUsed(); ok {
		_spec.SetField(agent.FieldTotalTokensUsed, field.TypeInt, value)
		_node.TotalTokensUsed = value
	}
	if value, ok := _c.mutation.TasksCompleted(); ok {
		_spec.SetField(agent.FieldTasksCompleted, field.TypeInt, value)
		_node.TasksCompleted = value
	}
	if value, ok := _c.mutation.TasksFailed(); ok {
		_spec.SetField(agent.FieldTasksFailed, field.TypeInt, value)
		_node.TasksFailed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agent.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agent.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(agent.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
