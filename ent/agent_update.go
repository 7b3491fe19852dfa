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
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_u *AgentUpdate) SetCurrentTaskID(v string) *AgentUpdate {
	_u.mutation.SetCurrentTaskID(v)
	return _u
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCurrentTaskID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCurrentTaskID(*v)
	}
	return _u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (_u *AgentUpdate) ClearCurrentTaskID() *AgentUpdate {
	_u.mutation.ClearCurrentTaskID()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *AgentUpdate) SetBranchName(v string) *AgentUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableBranchName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// SetRunnerSessionID sets the "runner_session_id" field.
func (_u *AgentUpdate) SetRunnerSessionID(v string) *AgentUpdate {
	_u.mutation.SetRunnerSessionID(v)
	return _u
}

// SetNillableRunnerSessionID sets the "runner_session_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRunnerSessionID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRunnerSessionID(*v)
	}
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *AgentUpdate) SetWorkingDir(v string) *AgentUpdate {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableWorkingDir(v *string) *AgentUpdate {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (_u *AgentUpdate) SetTotalTokensUsed(v int) *AgentUpdate {
	_u.mutation.ResetTotalTokensUsed()
	_u.mutation.SetTotalTokensUsed(v)
	return _u
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTotalTokensUsed(v *int) *AgentUpdate {
	if v != nil {
		_u.SetTotalTokensUsed(*v)
	}
	return _u
}

// AddTotalTokensUsed adds value to the "total_tokens_used" field.
func (_u *AgentUpdate) AddTotalTokensUsed(v int) *AgentUpdate {
	_u.mutation.AddTotalTokensUsed(v)
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *AgentUpdate) SetTasksCompleted(v int) *AgentUpdate {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTasksCompleted(v *int) *AgentUpdate {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *AgentUpdate) AddTasksCompleted(v int) *AgentUpdate {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AgentUpdate) SetTasksFailed(v int) *AgentUpdate {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTasksFailed(v *int) *AgentUpdate {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AgentUpdate) AddTasksFailed(v int) *AgentUpdate {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentUpdate) SetCompletedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCompletedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentUpdate) ClearCompletedAt() *AgentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *AgentUpdate) SetLastActivityAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastActivityAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *AgentUpdate) ClearLastActivityAt() *AgentUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskIDCleared() {
		_spec.ClearField(agent.FieldCurrentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(agent.FieldBranchName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunnerSessionID(); ok {
		_spec.SetField(agent.FieldRunnerSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(agent.FieldWorkingDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalTokensUsed(); ok {
		_spec.SetField(agent.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokensUsed(); ok {
		_spec.AddField(agent.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(agent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(agent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(agent.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(agent.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agent.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agent.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(agent.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(agent.FieldLastActivityAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_u *AgentUpdateOne) SetCurrentTaskID(v string) *AgentUpdateOne {
	_u.mutation.SetCurrentTaskID(v)
	return _u
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCurrentTaskID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCurrentTaskID(*v)
	}
	return _u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (_u *AgentUpdateOne) ClearCurrentTaskID() *AgentUpdateOne {
	_u.mutation.ClearCurrentTaskID()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *AgentUpdateOne) SetBranchName(v string) *AgentUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableBranchName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// SetRunnerSessionID sets the "runner_session_id" field.
func (_u *AgentUpdateOne) SetRunnerSessionID(v string) *AgentUpdateOne {
	_u.mutation.SetRunnerSessionID(v)
	return _u
}

// SetNillableRunnerSessionID sets the "runner_session_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRunnerSessionID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRunnerSessionID(*v)
	}
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *AgentUpdateOne) SetWorkingDir(v string) *AgentUpdateOne {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableWorkingDir(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (_u *AgentUpdateOne) SetTotalTokensUsed(v int) *AgentUpdateOne {
	_u.mutation.ResetTotalTokensUsed()
	_u.mutation.SetTotalTokensUsed(v)
	return _u
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTotalTokensUsed(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetTotalTokensUsed(*v)
	}
	return _u
}

// AddTotalTokensUsed adds value to the "total_tokens_used" field.
func (_u *AgentUpdateOne) AddTotalTokensUsed(v int) *AgentUpdateOne {
	_u.mutation.AddTotalTokensUsed(v)
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *AgentUpdateOne) SetTasksCompleted(v int) *AgentUpdateOne {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTasksCompleted(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *AgentUpdateOne) AddTasksCompleted(v int) *AgentUpdateOne {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTasksFailed sets the "tasks_failed" field.
func (_u *AgentUpdateOne) SetTasksFailed(v int) *AgentUpdateOne {
	_u.mutation.ResetTasksFailed()
	_u.mutation.SetTasksFailed(v)
	return _u
}

// SetNillableTasksFailed sets the "tasks_failed" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTasksFailed(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetTasksFailed(*v)
	}
	return _u
}

// AddTasksFailed adds value to the "tasks_failed" field.
func (_u *AgentUpdateOne) AddTasksFailed(v int) *AgentUpdateOne {
	_u.mutation.AddTasksFailed(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentUpdateOne) SetCompletedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentUpdateOne) ClearCompletedAt() *AgentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *AgentUpdateOne) SetLastActivityAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastActivityAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *AgentUpdateOne) ClearLastActivityAt() *AgentUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentTaskIDCleared() {
		_spec.ClearField(agent.FieldCurrentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(agent.FieldBranchName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunnerSessionID(); ok {
		_spec.SetField(agent.FieldRunnerSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(agent.FieldWorkingDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalTokensUsed(); ok {
		_spec.SetField(agent.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokensUsed(); ok {
		_spec.AddField(agent.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(agent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(agent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksFailed(); ok {
		_spec.SetField(agent.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksFailed(); ok {
		_spec.AddField(agent.FieldTasksFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agent.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agent.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(agent.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(agent.FieldLastActivityAt, field.TypeTime)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
