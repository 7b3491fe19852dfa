// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/agentlog"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/filelock"
	"github.com/louannemur/fleetd/ent/predicate"
	"github.com/louannemur/fleetd/ent/runnersession"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/ent/verificationresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent              = "Agent"
	TypeAgentLog           = "AgentLog"
	TypeException          = "Exception"
	TypeFileLock           = "FileLock"
	TypeRunnerSession      = "RunnerSession"
	TypeTask               = "Task"
	TypeVerificationResult = "VerificationResult"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	status               *agent.Status
	current_task_id      *string
	branch_name          *string
	runner_session_id    *string
	working_dir          *string
	total_tokens_used    *int
	addtotal_tokens_used *int
	tasks_completed      *int
	addtasks_completed   *int
	tasks_failed         *int
	addtasks_failed      *int
	started_at           *time.Time
	completed_at         *time.Time
	last_activity_at     *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Agent, error)
	predicates           []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentTaskID sets the "current_task_id" field.
func (m *AgentMutation) SetCurrentTaskID(s string) {
	m.current_task_id = &s
}

// CurrentTaskID returns the value of the "current_task_id" field in the mutation.
func (m *AgentMutation) CurrentTaskID() (r string, exists bool) {
	v := m.current_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTaskID returns the old "current_task_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCurrentTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTaskID: %w", err)
	}
	return oldValue.CurrentTaskID, nil
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (m *AgentMutation) ClearCurrentTaskID() {
	m.current_task_id = nil
	m.clearedFields[agent.FieldCurrentTaskID] = struct{}{}
}

// CurrentTaskIDCleared returns if the "current_task_id" field was cleared in this mutation.
func (m *AgentMutation) CurrentTaskIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldCurrentTaskID]
	return ok
}

// ResetCurrentTaskID resets all changes to the "current_task_id" field.
func (m *AgentMutation) ResetCurrentTaskID() {
	m.current_task_id = nil
	delete(m.clearedFields, agent.FieldCurrentTaskID)
}

// SetBranchName sets the "branch_name" field.
func (m *AgentMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *AgentMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldBranchName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *AgentMutation) ResetBranchName() {
	m.branch_name = nil
}

// SetRunnerSessionID sets the "runner_session_id" field.
func (m *AgentMutation) SetRunnerSessionID(s string) {
	m.runner_session_id = &s
}

// RunnerSessionID returns the value of the "runner_session_id" field in the mutation.
func (m *AgentMutation) RunnerSessionID() (r string, exists bool) {
	v := m.runner_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunnerSessionID returns the old "runner_session_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRunnerSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunnerSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunnerSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunnerSessionID: %w", err)
	}
	return oldValue.RunnerSessionID, nil
}

// ResetRunnerSessionID resets all changes to the "runner_session_id" field.
func (m *AgentMutation) ResetRunnerSessionID() {
	m.runner_session_id = nil
}

// SetWorkingDir sets the "working_dir" field.
func (m *AgentMutation) SetWorkingDir(s string) {
	m.working_dir = &s
}

// WorkingDir returns the value of the "working_dir" field in the mutation.
func (m *AgentMutation) WorkingDir() (r string, exists bool) {
	v := m.working_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingDir returns the old "working_dir" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldWorkingDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingDir: %w", err)
	}
	return oldValue.WorkingDir, nil
}

// ResetWorkingDir resets all changes to the "working_dir" field.
func (m *AgentMutation) ResetWorkingDir() {
	m.working_dir = nil
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (m *AgentMutation) SetTotalTokensUsed(i int) {
	m.total_tokens_used = &i
	m.addtotal_tokens_used = nil
}

// TotalTokensUsed returns the value of the "total_tokens_used" field in the mutation.
func (m *AgentMutation) TotalTokensUsed() (r int, exists bool) {
	v := m.total_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokensUsed returns the old "total_tokens_used" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTotalTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokensUsed: %w", err)
	}
	return oldValue.TotalTokensUsed, nil
}

// AddTotalTokensUsed adds i to the "total_tokens_used" field.
func (m *AgentMutation) AddTotalTokensUsed(i int) {
	if m.addtotal_tokens_used != nil {
		*m.addtotal_tokens_used += i
	} else {
		m.addtotal_tokens_used = &i
	}
}

// AddedTotalTokensUsed returns the value that was added to the "total_tokens_used" field in this mutation.
func (m *AgentMutation) AddedTotalTokensUsed() (r int, exists bool) {
	v := m.addtotal_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokensUsed resets all changes to the "total_tokens_used" field.
func (m *AgentMutation) ResetTotalTokensUsed() {
	m.total_tokens_used = nil
	m.addtotal_tokens_used = nil
}

// SetTasksCompleted sets the "tasks_completed" field.
func (m *AgentMutation) SetTasksCompleted(i int) {
	m.tasks_completed = &i
	m.addtasks_completed = nil
}

// TasksCompleted returns the value of the "tasks_completed" field in the mutation.
func (m *AgentMutation) TasksCompleted() (r int, exists bool) {
	v := m.tasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCompleted returns the old "tasks_completed" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTasksCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCompleted: %w", err)
	}
	return oldValue.TasksCompleted, nil
}

// AddTasksCompleted adds i to the "tasks_completed" field.
func (m *AgentMutation) AddTasksCompleted(i int) {
	if m.addtasks_completed != nil {
		*m.addtasks_completed += i
	} else {
		m.addtasks_completed = &i
	}
}

// AddedTasksCompleted returns the value that was added to the "tasks_completed" field in this mutation.
func (m *AgentMutation) AddedTasksCompleted() (r int, exists bool) {
	v := m.addtasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCompleted resets all changes to the "tasks_completed" field.
func (m *AgentMutation) ResetTasksCompleted() {
	m.tasks_completed = nil
	m.addtasks_completed = nil
}

// SetTasksFailed sets the "tasks_failed" field.
func (m *AgentMutation) SetTasksFailed(i int) {
	m.tasks_failed = &i
	m.addtasks_failed = nil
}

// TasksFailed returns the value of the "tasks_failed" field in the mutation.
func (m *AgentMutation) TasksFailed() (r int, exists bool) {
	v := m.tasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksFailed returns the old "tasks_failed" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTasksFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksFailed: %w", err)
	}
	return oldValue.TasksFailed, nil
}

// AddTasksFailed adds i to the "tasks_failed" field.
func (m *AgentMutation) AddTasksFailed(i int) {
	if m.addtasks_failed != nil {
		*m.addtasks_failed += i
	} else {
		m.addtasks_failed = &i
	}
}

// AddedTasksFailed returns the value that was added to the "tasks_failed" field in this mutation.
func (m *AgentMutation) AddedTasksFailed() (r int, exists bool) {
	v := m.addtasks_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksFailed resets all changes to the "tasks_failed" field.
func (m *AgentMutation) ResetTasksFailed() {
	m.tasks_failed = nil
	m.addtasks_failed = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agent.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agent.FieldCompletedAt)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *AgentMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *AgentMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *AgentMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[agent.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *AgentMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *AgentMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, agent.FieldLastActivityAt)
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.current_task_id != nil {
		fields = append(fields, agent.FieldCurrentTaskID)
	}
	if m.branch_name != nil {
		fields = append(fields, agent.FieldBranchName)
	}
	if m.runner_session_id != nil {
		fields = append(fields, agent.FieldRunnerSessionID)
	}
	if m.working_dir != nil {
		fields = append(fields, agent.FieldWorkingDir)
	}
	if m.total_tokens_used != nil {
		fields = append(fields, agent.FieldTotalTokensUsed)
	}
	if m.tasks_completed != nil {
		fields = append(fields, agent.FieldTasksCompleted)
	}
	if m.tasks_failed != nil {
		fields = append(fields, agent.FieldTasksFailed)
	}
	if m.started_at != nil {
		fields = append(fields, agent.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agent.FieldCompletedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, agent.FieldLastActivityAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldCurrentTaskID:
		return m.CurrentTaskID()
	case agent.FieldBranchName:
		return m.BranchName()
	case agent.FieldRunnerSessionID:
		return m.RunnerSessionID()
	case agent.FieldWorkingDir:
		return m.WorkingDir()
	case agent.FieldTotalTokensUsed:
		return m.TotalTokensUsed()
	case agent.FieldTasksCompleted:
		return m.TasksCompleted()
	case agent.FieldTasksFailed:
		return m.TasksFailed()
	case agent.FieldStartedAt:
		return m.StartedAt()
	case agent.FieldCompletedAt:
		return m.CompletedAt()
	case agent.FieldLastActivityAt:
		return m.LastActivityAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldCurrentTaskID:
		return m.OldCurrentTaskID(ctx)
	case agent.FieldBranchName:
		return m.OldBranchName(ctx)
	case agent.FieldRunnerSessionID:
		return m.OldRunnerSessionID(ctx)
	case agent.FieldWorkingDir:
		return m.OldWorkingDir(ctx)
	case agent.FieldTotalTokensUsed:
		return m.OldTotalTokensUsed(ctx)
	case agent.FieldTasksCompleted:
		return m.OldTasksCompleted(ctx)
	case agent.FieldTasksFailed:
		return m.OldTasksFailed(ctx)
	case agent.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agent.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agent.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldCurrentTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTaskID(v)
		return nil
	case agent.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case agent.FieldRunnerSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunnerSessionID(v)
		return nil
	case agent.FieldWorkingDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingDir(v)
		return nil
	case agent.FieldTotalTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokensUsed(v)
		return nil
	case agent.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCompleted(v)
		return nil
	case agent.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksFailed(v)
		return nil
	case agent.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agent.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agent.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_tokens_used != nil {
		fields = append(fields, agent.FieldTotalTokensUsed)
	}
	if m.addtasks_completed != nil {
		fields = append(fields, agent.FieldTasksCompleted)
	}
	if m.addtasks_failed != nil {
		fields = append(fields, agent.FieldTasksFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTotalTokensUsed:
		return m.AddedTotalTokensUsed()
	case agent.FieldTasksCompleted:
		return m.AddedTasksCompleted()
	case agent.FieldTasksFailed:
		return m.AddedTasksFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTotalTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokensUsed(v)
		return nil
	case agent.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCompleted(v)
		return nil
	case agent.FieldTasksFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksFailed(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldCurrentTaskID) {
		fields = append(fields, agent.FieldCurrentTaskID)
	}
	if m.FieldCleared(agent.FieldCompletedAt) {
		fields = append(fields, agent.FieldCompletedAt)
	}
	if m.FieldCleared(agent.FieldLastActivityAt) {
		fields = append(fields, agent.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldCurrentTaskID:
		m.ClearCurrentTaskID()
		return nil
	case agent.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agent.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldCurrentTaskID:
		m.ResetCurrentTaskID()
		return nil
	case agent.FieldBranchName:
		m.ResetBranchName()
		return nil
	case agent.FieldRunnerSessionID:
		m.ResetRunnerSessionID()
		return nil
	case agent.FieldWorkingDir:
		m.ResetWorkingDir()
		return nil
	case agent.FieldTotalTokensUsed:
		m.ResetTotalTokensUsed()
		return nil
	case agent.FieldTasksCompleted:
		m.ResetTasksCompleted()
		return nil
	case agent.FieldTasksFailed:
		m.ResetTasksFailed()
		return nil
	case agent.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agent.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agent.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentLogMutation represents an operation that mutates the AgentLog nodes in the graph.
type AgentLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	task_id       *string
	log_type      *agentlog.LogType
	content       *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentLog, error)
	predicates    []predicate.AgentLog
}

var _ ent.Mutation = (*AgentLogMutation)(nil)

// agentlogOption allows management of the mutation configuration using functional options.
type agentlogOption func(*AgentLogMutation)

// newAgentLogMutation creates new mutation for the AgentLog entity.
func newAgentLogMutation(c config, op Op, opts ...agentlogOption) *AgentLogMutation {
	m := &AgentLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentLogID sets the ID field of the mutation.
func withAgentLogID(id string) agentlogOption {
	return func(m *AgentLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentLog
		)
		m.oldValue = func(ctx context.Context) (*AgentLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentLog sets the old AgentLog of the mutation.
func withAgentLog(node *AgentLog) agentlogOption {
	return func(m *AgentLogMutation) {
		m.oldValue = func(context.Context) (*AgentLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentLog entities.
func (m *AgentLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentLogMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentLogMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentLogMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *AgentLogMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentLogMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *AgentLogMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[agentlog.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *AgentLogMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[agentlog.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentLogMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, agentlog.FieldTaskID)
}

// SetLogType sets the "log_type" field.
func (m *AgentLogMutation) SetLogType(at agentlog.LogType) {
	m.log_type = &at
}

// LogType returns the value of the "log_type" field in the mutation.
func (m *AgentLogMutation) LogType() (r agentlog.LogType, exists bool) {
	v := m.log_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLogType returns the old "log_type" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldLogType(ctx context.Context) (v agentlog.LogType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogType: %w", err)
	}
	return oldValue.LogType, nil
}

// ResetLogType resets all changes to the "log_type" field.
func (m *AgentLogMutation) ResetLogType() {
	m.log_type = nil
}

// SetContent sets the "content" field.
func (m *AgentLogMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentLogMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *AgentLogMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *AgentLogMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentLogMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentLogMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agentlog.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentLogMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agentlog.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentLogMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agentlog.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentLog entity.
// If the AgentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentLogMutation builder.
func (m *AgentLogMutation) Where(ps ...predicate.AgentLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentLog).
func (m *AgentLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent_id != nil {
		fields = append(fields, agentlog.FieldAgentID)
	}
	if m.task_id != nil {
		fields = append(fields, agentlog.FieldTaskID)
	}
	if m.log_type != nil {
		fields = append(fields, agentlog.FieldLogType)
	}
	if m.content != nil {
		fields = append(fields, agentlog.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, agentlog.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, agentlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentlog.FieldAgentID:
		return m.AgentID()
	case agentlog.FieldTaskID:
		return m.TaskID()
	case agentlog.FieldLogType:
		return m.LogType()
	case agentlog.FieldContent:
		return m.Content()
	case agentlog.FieldMetadata:
		return m.Metadata()
	case agentlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentlog.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentlog.FieldTaskID:
		return m.OldTaskID(ctx)
	case agentlog.FieldLogType:
		return m.OldLogType(ctx)
	case agentlog.FieldContent:
		return m.OldContent(ctx)
	case agentlog.FieldMetadata:
		return m.OldMetadata(ctx)
	case agentlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentlog.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentlog.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agentlog.FieldLogType:
		v, ok := value.(agentlog.LogType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogType(v)
		return nil
	case agentlog.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agentlog.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agentlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentlog.FieldTaskID) {
		fields = append(fields, agentlog.FieldTaskID)
	}
	if m.FieldCleared(agentlog.FieldMetadata) {
		fields = append(fields, agentlog.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentLogMutation) ClearField(name string) error {
	switch name {
	case agentlog.FieldTaskID:
		m.ClearTaskID()
		return nil
	case agentlog.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AgentLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentLogMutation) ResetField(name string) error {
	switch name {
	case agentlog.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentlog.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agentlog.FieldLogType:
		m.ResetLogType()
		return nil
	case agentlog.FieldContent:
		m.ResetContent()
		return nil
	case agentlog.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agentlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentLog edge %s", name)
}

// ExceptionMutation represents an operation that mutates the Exception nodes in the graph.
type ExceptionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	_type            *exception.Type
	severity         *exception.Severity
	status           *exception.Status
	title            *string
	description      *string
	suggested_action *string
	agent_id         *string
	task_id          *string
	resolution_notes *string
	created_at       *time.Time
	updated_at       *time.Time
	resolved_at      *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Exception, error)
	predicates       []predicate.Exception
}

var _ ent.Mutation = (*ExceptionMutation)(nil)

// exceptionOption allows management of the mutation configuration using functional options.
type exceptionOption func(*ExceptionMutation)

// newExceptionMutation creates new mutation for the Exception entity.
func newExceptionMutation(c config, op Op, opts ...exceptionOption) *ExceptionMutation {
	m := &ExceptionMutation{
		config:        c,
		op:            op,
		typ:           TypeException,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExceptionID sets the ID field of the mutation.
func withExceptionID(id string) exceptionOption {
	return func(m *ExceptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Exception
		)
		m.oldValue = func(ctx context.Context) (*Exception, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Exception.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withException sets the old Exception of the mutation.
func withException(node *Exception) exceptionOption {
	return func(m *ExceptionMutation) {
		m.oldValue = func(context.Context) (*Exception, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExceptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExceptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Exception entities.
func (m *ExceptionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExceptionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExceptionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Exception.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *ExceptionMutation) SetType(e exception.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *ExceptionMutation) GetType() (r exception.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldType(ctx context.Context) (v exception.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ExceptionMutation) ResetType() {
	m._type = nil
}

// SetSeverity sets the "severity" field.
func (m *ExceptionMutation) SetSeverity(e exception.Severity) {
	m.severity = &e
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ExceptionMutation) Severity() (r exception.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldSeverity(ctx context.Context) (v exception.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ExceptionMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *ExceptionMutation) SetStatus(e exception.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExceptionMutation) Status() (r exception.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldStatus(ctx context.Context) (v exception.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExceptionMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *ExceptionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ExceptionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ExceptionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ExceptionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExceptionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExceptionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[exception.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExceptionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[exception.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExceptionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, exception.FieldDescription)
}

// SetSuggestedAction sets the "suggested_action" field.
func (m *ExceptionMutation) SetSuggestedAction(s string) {
	m.suggested_action = &s
}

// SuggestedAction returns the value of the "suggested_action" field in the mutation.
func (m *ExceptionMutation) SuggestedAction() (r string, exists bool) {
	v := m.suggested_action
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedAction returns the old "suggested_action" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldSuggestedAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedAction: %w", err)
	}
	return oldValue.SuggestedAction, nil
}

// ClearSuggestedAction clears the value of the "suggested_action" field.
func (m *ExceptionMutation) ClearSuggestedAction() {
	m.suggested_action = nil
	m.clearedFields[exception.FieldSuggestedAction] = struct{}{}
}

// SuggestedActionCleared returns if the "suggested_action" field was cleared in this mutation.
func (m *ExceptionMutation) SuggestedActionCleared() bool {
	_, ok := m.clearedFields[exception.FieldSuggestedAction]
	return ok
}

// ResetSuggestedAction resets all changes to the "suggested_action" field.
func (m *ExceptionMutation) ResetSuggestedAction() {
	m.suggested_action = nil
	delete(m.clearedFields, exception.FieldSuggestedAction)
}

// SetAgentID sets the "agent_id" field.
func (m *ExceptionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ExceptionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *ExceptionMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[exception.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ExceptionMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[exception.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ExceptionMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, exception.FieldAgentID)
}

// SetTaskID sets the "task_id" field.
func (m *ExceptionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ExceptionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ExceptionMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[exception.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ExceptionMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[exception.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ExceptionMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, exception.FieldTaskID)
}

// SetResolutionNotes sets the "resolution_notes" field.
func (m *ExceptionMutation) SetResolutionNotes(s string) {
	m.resolution_notes = &s
}

// ResolutionNotes returns the value of the "resolution_notes" field in the mutation.
func (m *ExceptionMutation) ResolutionNotes() (r string, exists bool) {
	v := m.resolution_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionNotes returns the old "resolution_notes" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldResolutionNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionNotes: %w", err)
	}
	return oldValue.ResolutionNotes, nil
}

// ClearResolutionNotes clears the value of the "resolution_notes" field.
func (m *ExceptionMutation) ClearResolutionNotes() {
	m.resolution_notes = nil
	m.clearedFields[exception.FieldResolutionNotes] = struct{}{}
}

// ResolutionNotesCleared returns if the "resolution_notes" field was cleared in this mutation.
func (m *ExceptionMutation) ResolutionNotesCleared() bool {
	_, ok := m.clearedFields[exception.FieldResolutionNotes]
	return ok
}

// ResetResolutionNotes resets all changes to the "resolution_notes" field.
func (m *ExceptionMutation) ResetResolutionNotes() {
	m.resolution_notes = nil
	delete(m.clearedFields, exception.FieldResolutionNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExceptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExceptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExceptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExceptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExceptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExceptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ExceptionMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ExceptionMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Exception entity.
// If the Exception object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExceptionMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ExceptionMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[exception.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ExceptionMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[exception.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ExceptionMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, exception.FieldResolvedAt)
}

// Where appends a list predicates to the ExceptionMutation builder.
func (m *ExceptionMutation) Where(ps ...predicate.Exception) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExceptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExceptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Exception, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExceptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExceptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Exception).
func (m *ExceptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExceptionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m._type != nil {
		fields = append(fields, exception.FieldType)
	}
	if m.severity != nil {
		fields = append(fields, exception.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, exception.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, exception.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, exception.FieldDescription)
	}
	if m.suggested_action != nil {
		fields = append(fields, exception.FieldSuggestedAction)
	}
	if m.agent_id != nil {
		fields = append(fields, exception.FieldAgentID)
	}
	if m.task_id != nil {
		fields = append(fields, exception.FieldTaskID)
	}
	if m.resolution_notes != nil {
		fields = append(fields, exception.FieldResolutionNotes)
	}
	if m.created_at != nil {
		fields = append(fields, exception.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, exception.FieldUpdatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, exception.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExceptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exception.FieldType:
		return m.GetType()
	case exception.FieldSeverity:
		return m.Severity()
	case exception.FieldStatus:
		return m.Status()
	case exception.FieldTitle:
		return m.Title()
	case exception.FieldDescription:
		return m.Description()
	case exception.FieldSuggestedAction:
		return m.SuggestedAction()
	case exception.FieldAgentID:
		return m.AgentID()
	case exception.FieldTaskID:
		return m.TaskID()
	case exception.FieldResolutionNotes:
		return m.ResolutionNotes()
	case exception.FieldCreatedAt:
		return m.CreatedAt()
	case exception.FieldUpdatedAt:
		return m.UpdatedAt()
	case exception.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExceptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exception.FieldType:
		return m.OldType(ctx)
	case exception.FieldSeverity:
		return m.OldSeverity(ctx)
	case exception.FieldStatus:
		return m.OldStatus(ctx)
	case exception.FieldTitle:
		return m.OldTitle(ctx)
	case exception.FieldDescription:
		return m.OldDescription(ctx)
	case exception.FieldSuggestedAction:
		return m.OldSuggestedAction(ctx)
	case exception.FieldAgentID:
		return m.OldAgentID(ctx)
	case exception.FieldTaskID:
		return m.OldTaskID(ctx)
	case exception.FieldResolutionNotes:
		return m.OldResolutionNotes(ctx)
	case exception.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case exception.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case exception.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Exception field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExceptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exception.FieldType:
		v, ok := value.(exception.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case exception.FieldSeverity:
		v, ok := value.(exception.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case exception.FieldStatus:
		v, ok := value.(exception.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case exception.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case exception.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case exception.FieldSuggestedAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedAction(v)
		return nil
	case exception.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case exception.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case exception.FieldResolutionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionNotes(v)
		return nil
	case exception.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case exception.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case exception.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Exception field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExceptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExceptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExceptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Exception numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExceptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exception.FieldDescription) {
		fields = append(fields, exception.FieldDescription)
	}
	if m.FieldCleared(exception.FieldSuggestedAction) {
		fields = append(fields, exception.FieldSuggestedAction)
	}
	if m.FieldCleared(exception.FieldAgentID) {
		fields = append(fields, exception.FieldAgentID)
	}
	if m.FieldCleared(exception.FieldTaskID) {
		fields = append(fields, exception.FieldTaskID)
	}
	if m.FieldCleared(exception.FieldResolutionNotes) {
		fields = append(fields, exception.FieldResolutionNotes)
	}
	if m.FieldCleared(exception.FieldResolvedAt) {
		fields = append(fields, exception.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExceptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExceptionMutation) ClearField(name string) error {
	switch name {
	case exception.FieldDescription:
		m.ClearDescription()
		return nil
	case exception.FieldSuggestedAction:
		m.ClearSuggestedAction()
		return nil
	case exception.FieldAgentID:
		m.ClearAgentID()
		return nil
	case exception.FieldTaskID:
		m.ClearTaskID()
		return nil
	case exception.FieldResolutionNotes:
		m.ClearResolutionNotes()
		return nil
	case exception.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Exception nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExceptionMutation) ResetField(name string) error {
	switch name {
	case exception.FieldType:
		m.ResetType()
		return nil
	case exception.FieldSeverity:
		m.ResetSeverity()
		return nil
	case exception.FieldStatus:
		m.ResetStatus()
		return nil
	case exception.FieldTitle:
		m.ResetTitle()
		return nil
	case exception.FieldDescription:
		m.ResetDescription()
		return nil
	case exception.FieldSuggestedAction:
		m.ResetSuggestedAction()
		return nil
	case exception.FieldAgentID:
		m.ResetAgentID()
		return nil
	case exception.FieldTaskID:
		m.ResetTaskID()
		return nil
	case exception.FieldResolutionNotes:
		m.ResetResolutionNotes()
		return nil
	case exception.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case exception.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case exception.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Exception field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExceptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExceptionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExceptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExceptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExceptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExceptionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExceptionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Exception unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExceptionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Exception edge %s", name)
}

// FileLockMutation represents an operation that mutates the FileLock nodes in the graph.
type FileLockMutation struct {
	config
	op            Op
	typ           string
	id            *string
	file_path     *string
	agent_id      *string
	task_id       *string
	acquired_at   *time.Time
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FileLock, error)
	predicates    []predicate.FileLock
}

var _ ent.Mutation = (*FileLockMutation)(nil)

// filelockOption allows management of the mutation configuration using functional options.
type filelockOption func(*FileLockMutation)

// newFileLockMutation creates new mutation for the FileLock entity.
func newFileLockMutation(c config, op Op, opts ...filelockOption) *FileLockMutation {
	m := &FileLockMutation{
		config:        c,
		op:            op,
		typ:           TypeFileLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileLockID sets the ID field of the mutation.
func withFileLockID(id string) filelockOption {
	return func(m *FileLockMutation) {
		var (
			err   error
			once  sync.Once
			value *FileLock
		)
		m.oldValue = func(ctx context.Context) (*FileLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileLock sets the old FileLock of the mutation.
func withFileLock(node *FileLock) filelockOption {
	return func(m *FileLockMutation) {
		m.oldValue = func(context.Context) (*FileLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileLock entities.
func (m *FileLockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileLockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileLockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilePath sets the "file_path" field.
func (m *FileLockMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *FileLockMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *FileLockMutation) ResetFilePath() {
	m.file_path = nil
}

// SetAgentID sets the "agent_id" field.
func (m *FileLockMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *FileLockMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *FileLockMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *FileLockMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *FileLockMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *FileLockMutation) ResetTaskID() {
	m.task_id = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *FileLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *FileLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *FileLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *FileLockMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *FileLockMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the FileLock entity.
// If the FileLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileLockMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *FileLockMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the FileLockMutation builder.
func (m *FileLockMutation) Where(ps ...predicate.FileLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileLock).
func (m *FileLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileLockMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.file_path != nil {
		fields = append(fields, filelock.FieldFilePath)
	}
	if m.agent_id != nil {
		fields = append(fields, filelock.FieldAgentID)
	}
	if m.task_id != nil {
		fields = append(fields, filelock.FieldTaskID)
	}
	if m.acquired_at != nil {
		fields = append(fields, filelock.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, filelock.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filelock.FieldFilePath:
		return m.FilePath()
	case filelock.FieldAgentID:
		return m.AgentID()
	case filelock.FieldTaskID:
		return m.TaskID()
	case filelock.FieldAcquiredAt:
		return m.AcquiredAt()
	case filelock.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filelock.FieldFilePath:
		return m.OldFilePath(ctx)
	case filelock.FieldAgentID:
		return m.OldAgentID(ctx)
	case filelock.FieldTaskID:
		return m.OldTaskID(ctx)
	case filelock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case filelock.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown FileLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filelock.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case filelock.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case filelock.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case filelock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case filelock.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown FileLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FileLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileLockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileLockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FileLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileLockMutation) ResetField(name string) error {
	switch name {
	case filelock.FieldFilePath:
		m.ResetFilePath()
		return nil
	case filelock.FieldAgentID:
		m.ResetAgentID()
		return nil
	case filelock.FieldTaskID:
		m.ResetTaskID()
		return nil
	case filelock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case filelock.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown FileLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FileLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FileLock edge %s", name)
}

// RunnerSessionMutation represents an operation that mutates the RunnerSession nodes in the graph.
type RunnerSessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	token         *string
	name          *string
	working_dir   *string
	is_active     *bool
	created_at    *time.Time
	last_seen_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RunnerSession, error)
	predicates    []predicate.RunnerSession
}

var _ ent.Mutation = (*RunnerSessionMutation)(nil)

// runnersessionOption allows management of the mutation configuration using functional options.
type runnersessionOption func(*RunnerSessionMutation)

// newRunnerSessionMutation creates new mutation for the RunnerSession entity.
func newRunnerSessionMutation(c config, op Op, opts ...runnersessionOption) *RunnerSessionMutation {
	m := &RunnerSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeRunnerSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunnerSessionID sets the ID field of the mutation.
func withRunnerSessionID(id string) runnersessionOption {
	return func(m *RunnerSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *RunnerSession
		)
		m.oldValue = func(ctx context.Context) (*RunnerSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunnerSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunnerSession sets the old RunnerSession of the mutation.
func withRunnerSession(node *RunnerSession) runnersessionOption {
	return func(m *RunnerSessionMutation) {
		m.oldValue = func(context.Context) (*RunnerSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunnerSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunnerSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunnerSession entities.
func (m *RunnerSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunnerSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunnerSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunnerSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToken sets the "token" field.
func (m *RunnerSessionMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *RunnerSessionMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the RunnerSession entity.
// If the RunnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerSessionMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *RunnerSessionMutation) ResetToken() {
	m.token = nil
}

// SetName sets the "name" field.
func (m *RunnerSessionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RunnerSessionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RunnerSession entity.
// If the RunnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerSessionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RunnerSessionMutation) ResetName() {
	m.name = nil
}

// SetWorkingDir sets the "working_dir" field.
func (m *RunnerSessionMutation) SetWorkingDir(s string) {
	m.working_dir = &s
}

// WorkingDir returns the value of the "working_dir" field in the mutation.
func (m *RunnerSessionMutation) WorkingDir() (r string, exists bool) {
	v := m.working_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingDir returns the old "working_dir" field's value of the RunnerSession entity.
// If the RunnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerSessionMutation) OldWorkingDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingDir: %w", err)
	}
	return oldValue.WorkingDir, nil
}

// ResetWorkingDir resets all changes to the "working_dir" field.
func (m *RunnerSessionMutation) ResetWorkingDir() {
	m.working_dir = nil
}

// SetIsActive sets the "is_active" field.
func (m *RunnerSessionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *RunnerSessionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the RunnerSession entity.
// If the RunnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerSessionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *RunnerSessionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunnerSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunnerSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunnerSession entity.
// If the RunnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunnerSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *RunnerSessionMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *RunnerSessionMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the RunnerSession entity.
// If the RunnerSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerSessionMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *RunnerSessionMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// Where appends a list predicates to the RunnerSessionMutation builder.
func (m *RunnerSessionMutation) Where(ps ...predicate.RunnerSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunnerSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunnerSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunnerSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunnerSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunnerSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunnerSession).
func (m *RunnerSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunnerSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.token != nil {
		fields = append(fields, runnersession.FieldToken)
	}
	if m.name != nil {
		fields = append(fields, runnersession.FieldName)
	}
	if m.working_dir != nil {
		fields = append(fields, runnersession.FieldWorkingDir)
	}
	if m.is_active != nil {
		fields = append(fields, runnersession.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, runnersession.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, runnersession.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunnerSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runnersession.FieldToken:
		return m.Token()
	case runnersession.FieldName:
		return m.Name()
	case runnersession.FieldWorkingDir:
		return m.WorkingDir()
	case runnersession.FieldIsActive:
		return m.IsActive()
	case runnersession.FieldCreatedAt:
		return m.CreatedAt()
	case runnersession.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunnerSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runnersession.FieldToken:
		return m.OldToken(ctx)
	case runnersession.FieldName:
		return m.OldName(ctx)
	case runnersession.FieldWorkingDir:
		return m.OldWorkingDir(ctx)
	case runnersession.FieldIsActive:
		return m.OldIsActive(ctx)
	case runnersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case runnersession.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunnerSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runnersession.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case runnersession.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case runnersession.FieldWorkingDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingDir(v)
		return nil
	case runnersession.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case runnersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case runnersession.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunnerSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunnerSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunnerSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunnerSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunnerSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunnerSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunnerSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunnerSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunnerSessionMutation) ResetField(name string) error {
	switch name {
	case runnersession.FieldToken:
		m.ResetToken()
		return nil
	case runnersession.FieldName:
		m.ResetName()
		return nil
	case runnersession.FieldWorkingDir:
		m.ResetWorkingDir()
		return nil
	case runnersession.FieldIsActive:
		m.ResetIsActive()
		return nil
	case runnersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case runnersession.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown RunnerSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunnerSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunnerSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunnerSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunnerSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunnerSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunnerSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunnerSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RunnerSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunnerSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RunnerSession edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	title                    *string
	description              *string
	status                   *task.Status
	priority                 *int
	addpriority              *int
	risk_level               *task.RiskLevel
	files_hint               *[]string
	appendfiles_hint         []string
	assigned_agent_id        *string
	branch_name              *string
	verification_status      *task.VerificationStatus
	verification_attempts    *int
	addverification_attempts *int
	retry_count              *int
	addretry_count           *int
	created_at               *time.Time
	updated_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Task, error)
	predicates               []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *TaskMutation) SetRiskLevel(tl task.RiskLevel) {
	m.risk_level = &tl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *TaskMutation) RiskLevel() (r task.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRiskLevel(ctx context.Context) (v task.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *TaskMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetFilesHint sets the "files_hint" field.
func (m *TaskMutation) SetFilesHint(s []string) {
	m.files_hint = &s
	m.appendfiles_hint = nil
}

// FilesHint returns the value of the "files_hint" field in the mutation.
func (m *TaskMutation) FilesHint() (r []string, exists bool) {
	v := m.files_hint
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesHint returns the old "files_hint" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFilesHint(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesHint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesHint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesHint: %w", err)
	}
	return oldValue.FilesHint, nil
}

// AppendFilesHint adds s to the "files_hint" field.
func (m *TaskMutation) AppendFilesHint(s []string) {
	m.appendfiles_hint = append(m.appendfiles_hint, s...)
}

// AppendedFilesHint returns the list of values that were appended to the "files_hint" field in this mutation.
func (m *TaskMutation) AppendedFilesHint() ([]string, bool) {
	if len(m.appendfiles_hint) == 0 {
		return nil, false
	}
	return m.appendfiles_hint, true
}

// ClearFilesHint clears the value of the "files_hint" field.
func (m *TaskMutation) ClearFilesHint() {
	m.files_hint = nil
	m.appendfiles_hint = nil
	m.clearedFields[task.FieldFilesHint] = struct{}{}
}

// FilesHintCleared returns if the "files_hint" field was cleared in this mutation.
func (m *TaskMutation) FilesHintCleared() bool {
	_, ok := m.clearedFields[task.FieldFilesHint]
	return ok
}

// ResetFilesHint resets all changes to the "files_hint" field.
func (m *TaskMutation) ResetFilesHint() {
	m.files_hint = nil
	m.appendfiles_hint = nil
	delete(m.clearedFields, task.FieldFilesHint)
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *TaskMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *TaskMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *TaskMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[task.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *TaskMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *TaskMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, task.FieldAssignedAgentID)
}

// SetBranchName sets the "branch_name" field.
func (m *TaskMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TaskMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TaskMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[task.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TaskMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[task.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TaskMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, task.FieldBranchName)
}

// SetVerificationStatus sets the "verification_status" field.
func (m *TaskMutation) SetVerificationStatus(ts task.VerificationStatus) {
	m.verification_status = &ts
}

// VerificationStatus returns the value of the "verification_status" field in the mutation.
func (m *TaskMutation) VerificationStatus() (r task.VerificationStatus, exists bool) {
	v := m.verification_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationStatus returns the old "verification_status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVerificationStatus(ctx context.Context) (v *task.VerificationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationStatus: %w", err)
	}
	return oldValue.VerificationStatus, nil
}

// ClearVerificationStatus clears the value of the "verification_status" field.
func (m *TaskMutation) ClearVerificationStatus() {
	m.verification_status = nil
	m.clearedFields[task.FieldVerificationStatus] = struct{}{}
}

// VerificationStatusCleared returns if the "verification_status" field was cleared in this mutation.
func (m *TaskMutation) VerificationStatusCleared() bool {
	_, ok := m.clearedFields[task.FieldVerificationStatus]
	return ok
}

// ResetVerificationStatus resets all changes to the "verification_status" field.
func (m *TaskMutation) ResetVerificationStatus() {
	m.verification_status = nil
	delete(m.clearedFields, task.FieldVerificationStatus)
}

// SetVerificationAttempts sets the "verification_attempts" field.
func (m *TaskMutation) SetVerificationAttempts(i int) {
	m.verification_attempts = &i
	m.addverification_attempts = nil
}

// VerificationAttempts returns the value of the "verification_attempts" field in the mutation.
func (m *TaskMutation) VerificationAttempts() (r int, exists bool) {
	v := m.verification_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationAttempts returns the old "verification_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVerificationAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationAttempts: %w", err)
	}
	return oldValue.VerificationAttempts, nil
}

// AddVerificationAttempts adds i to the "verification_attempts" field.
func (m *TaskMutation) AddVerificationAttempts(i int) {
	if m.addverification_attempts != nil {
		*m.addverification_attempts += i
	} else {
		m.addverification_attempts = &i
	}
}

// AddedVerificationAttempts returns the value that was added to the "verification_attempts" field in this mutation.
func (m *TaskMutation) AddedVerificationAttempts() (r int, exists bool) {
	v := m.addverification_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetVerificationAttempts resets all changes to the "verification_attempts" field.
func (m *TaskMutation) ResetVerificationAttempts() {
	m.verification_attempts = nil
	m.addverification_attempts = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.risk_level != nil {
		fields = append(fields, task.FieldRiskLevel)
	}
	if m.files_hint != nil {
		fields = append(fields, task.FieldFilesHint)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.branch_name != nil {
		fields = append(fields, task.FieldBranchName)
	}
	if m.verification_status != nil {
		fields = append(fields, task.FieldVerificationStatus)
	}
	if m.verification_attempts != nil {
		fields = append(fields, task.FieldVerificationAttempts)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldRiskLevel:
		return m.RiskLevel()
	case task.FieldFilesHint:
		return m.FilesHint()
	case task.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case task.FieldBranchName:
		return m.BranchName()
	case task.FieldVerificationStatus:
		return m.VerificationStatus()
	case task.FieldVerificationAttempts:
		return m.VerificationAttempts()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case task.FieldFilesHint:
		return m.OldFilesHint(ctx)
	case task.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case task.FieldBranchName:
		return m.OldBranchName(ctx)
	case task.FieldVerificationStatus:
		return m.OldVerificationStatus(ctx)
	case task.FieldVerificationAttempts:
		return m.OldVerificationAttempts(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldRiskLevel:
		v, ok := value.(task.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case task.FieldFilesHint:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesHint(v)
		return nil
	case task.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case task.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case task.FieldVerificationStatus:
		v, ok := value.(task.VerificationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationStatus(v)
		return nil
	case task.FieldVerificationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationAttempts(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.addverification_attempts != nil {
		fields = append(fields, task.FieldVerificationAttempts)
	}
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPriority:
		return m.AddedPriority()
	case task.FieldVerificationAttempts:
		return m.AddedVerificationAttempts()
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case task.FieldVerificationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVerificationAttempts(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldFilesHint) {
		fields = append(fields, task.FieldFilesHint)
	}
	if m.FieldCleared(task.FieldAssignedAgentID) {
		fields = append(fields, task.FieldAssignedAgentID)
	}
	if m.FieldCleared(task.FieldBranchName) {
		fields = append(fields, task.FieldBranchName)
	}
	if m.FieldCleared(task.FieldVerificationStatus) {
		fields = append(fields, task.FieldVerificationStatus)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldFilesHint:
		m.ClearFilesHint()
		return nil
	case task.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case task.FieldBranchName:
		m.ClearBranchName()
		return nil
	case task.FieldVerificationStatus:
		m.ClearVerificationStatus()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case task.FieldFilesHint:
		m.ResetFilesHint()
		return nil
	case task.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case task.FieldBranchName:
		m.ResetBranchName()
		return nil
	case task.FieldVerificationStatus:
		m.ResetVerificationStatus()
		return nil
	case task.FieldVerificationAttempts:
		m.ResetVerificationAttempts()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// VerificationResultMutation represents an operation that mutates the VerificationResult nodes in the graph.
type VerificationResultMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	task_id               *string
	attempt_number        *int
	addattempt_number     *int
	passed                *bool
	confidence_score      *float64
	addconfidence_score   *float64
	syntax_passed         *bool
	types_passed          *bool
	lint_passed           *bool
	tests_passed          *bool
	tests_total           *int
	addtests_total        *int
	tests_failed          *int
	addtests_failed       *int
	semantic_score        *float64
	addsemantic_score     *float64
	semantic_explanation  *string
	failures              *[]map[string]interface{}
	appendfailures        []map[string]interface{}
	recommendations       *[]string
	appendrecommendations []string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*VerificationResult, error)
	predicates            []predicate.VerificationResult
}

var _ ent.Mutation = (*VerificationResultMutation)(nil)

// verificationresultOption allows management of the mutation configuration using functional options.
type verificationresultOption func(*VerificationResultMutation)

// newVerificationResultMutation creates new mutation for the VerificationResult entity.
func newVerificationResultMutation(c config, op Op, opts ...verificationresultOption) *VerificationResultMutation {
	m := &VerificationResultMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationResultID sets the ID field of the mutation.
func withVerificationResultID(id string) verificationresultOption {
	return func(m *VerificationResultMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationResult
		)
		m.oldValue = func(ctx context.Context) (*VerificationResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationResult sets the old VerificationResult of the mutation.
func withVerificationResult(node *VerificationResult) verificationresultOption {
	return func(m *VerificationResultMutation) {
		m.oldValue = func(context.Context) (*VerificationResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationResult entities.
func (m *VerificationResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *VerificationResultMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *VerificationResultMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *VerificationResultMutation) ResetTaskID() {
	m.task_id = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *VerificationResultMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *VerificationResultMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *VerificationResultMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *VerificationResultMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *VerificationResultMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetPassed sets the "passed" field.
func (m *VerificationResultMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *VerificationResultMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *VerificationResultMutation) ResetPassed() {
	m.passed = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *VerificationResultMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *VerificationResultMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *VerificationResultMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *VerificationResultMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *VerificationResultMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetSyntaxPassed sets the "syntax_passed" field.
func (m *VerificationResultMutation) SetSyntaxPassed(b bool) {
	m.syntax_passed = &b
}

// SyntaxPassed returns the value of the "syntax_passed" field in the mutation.
func (m *VerificationResultMutation) SyntaxPassed() (r bool, exists bool) {
	v := m.syntax_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldSyntaxPassed returns the old "syntax_passed" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldSyntaxPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyntaxPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyntaxPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyntaxPassed: %w", err)
	}
	return oldValue.SyntaxPassed, nil
}

// ResetSyntaxPassed resets all changes to the "syntax_passed" field.
func (m *VerificationResultMutation) ResetSyntaxPassed() {
	m.syntax_passed = nil
}

// SetTypesPassed sets the "types_passed" field.
func (m *VerificationResultMutation) SetTypesPassed(b bool) {
	m.types_passed = &b
}

// TypesPassed returns the value of the "types_passed" field in the mutation.
func (m *VerificationResultMutation) TypesPassed() (r bool, exists bool) {
	v := m.types_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldTypesPassed returns the old "types_passed" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldTypesPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypesPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypesPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypesPassed: %w", err)
	}
	return oldValue.TypesPassed, nil
}

// ResetTypesPassed resets all changes to the "types_passed" field.
func (m *VerificationResultMutation) ResetTypesPassed() {
	m.types_passed = nil
}

// SetLintPassed sets the "lint_passed" field.
func (m *VerificationResultMutation) SetLintPassed(b bool) {
	m.lint_passed = &b
}

// LintPassed returns the value of the "lint_passed" field in the mutation.
func (m *VerificationResultMutation) LintPassed() (r bool, exists bool) {
	v := m.lint_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldLintPassed returns the old "lint_passed" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldLintPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLintPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLintPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLintPassed: %w", err)
	}
	return oldValue.LintPassed, nil
}

// ResetLintPassed resets all changes to the "lint_passed" field.
func (m *VerificationResultMutation) ResetLintPassed() {
	m.lint_passed = nil
}

// SetTestsPassed sets the "tests_passed" field.
func (m *VerificationResultMutation) SetTestsPassed(b bool) {
	m.tests_passed = &b
}

// TestsPassed returns the value of the "tests_passed" field in the mutation.
func (m *VerificationResultMutation) TestsPassed() (r bool, exists bool) {
	v := m.tests_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldTestsPassed returns the old "tests_passed" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldTestsPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestsPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestsPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestsPassed: %w", err)
	}
	return oldValue.TestsPassed, nil
}

// ResetTestsPassed resets all changes to the "tests_passed" field.
func (m *VerificationResultMutation) ResetTestsPassed() {
	m.tests_passed = nil
}

// SetTestsTotal sets the "tests_total" field.
func (m *VerificationResultMutation) SetTestsTotal(i int) {
	m.tests_total = &i
	m.addtests_total = nil
}

// TestsTotal returns the value of the "tests_total" field in the mutation.
func (m *VerificationResultMutation) TestsTotal() (r int, exists bool) {
	v := m.tests_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTestsTotal returns the old "tests_total" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldTestsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestsTotal: %w", err)
	}
	return oldValue.TestsTotal, nil
}

// AddTestsTotal adds i to the "tests_total" field.
func (m *VerificationResultMutation) AddTestsTotal(i int) {
	if m.addtests_total != nil {
		*m.addtests_total += i
	} else {
		m.addtests_total = &i
	}
}

// AddedTestsTotal returns the value that was added to the "tests_total" field in this mutation.
func (m *VerificationResultMutation) AddedTestsTotal() (r int, exists bool) {
	v := m.addtests_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetTestsTotal resets all changes to the "tests_total" field.
func (m *VerificationResultMutation) ResetTestsTotal() {
	m.tests_total = nil
	m.addtests_total = nil
}

// SetTestsFailed sets the "tests_failed" field.
func (m *VerificationResultMutation) SetTestsFailed(i int) {
	m.tests_failed = &i
	m.addtests_failed = nil
}

// TestsFailed returns the value of the "tests_failed" field in the mutation.
func (m *VerificationResultMutation) TestsFailed() (r int, exists bool) {
	v := m.tests_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldTestsFailed returns the old "tests_failed" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldTestsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestsFailed: %w", err)
	}
	return oldValue.TestsFailed, nil
}

// AddTestsFailed adds i to the "tests_failed" field.
func (m *VerificationResultMutation) AddTestsFailed(i int) {
	if m.addtests_failed != nil {
		*m.addtests_failed += i
	} else {
		m.addtests_failed = &i
	}
}

// AddedTestsFailed returns the value that was added to the "tests_failed" field in this mutation.
func (m *VerificationResultMutation) AddedTestsFailed() (r int, exists bool) {
	v := m.addtests_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTestsFailed resets all changes to the "tests_failed" field.
func (m *VerificationResultMutation) ResetTestsFailed() {
	m.tests_failed = nil
	m.addtests_failed = nil
}

// SetSemanticScore sets the "semantic_score" field.
func (m *VerificationResultMutation) SetSemanticScore(f float64) {
	m.semantic_score = &f
	m.addsemantic_score = nil
}

// SemanticScore returns the value of the "semantic_score" field in the mutation.
func (m *VerificationResultMutation) SemanticScore() (r float64, exists bool) {
	v := m.semantic_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticScore returns the old "semantic_score" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldSemanticScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticScore: %w", err)
	}
	return oldValue.SemanticScore, nil
}

// AddSemanticScore adds f to the "semantic_score" field.
func (m *VerificationResultMutation) AddSemanticScore(f float64) {
	if m.addsemantic_score != nil {
		*m.addsemantic_score += f
	} else {
		m.addsemantic_score = &f
	}
}

// AddedSemanticScore returns the value that was added to the "semantic_score" field in this mutation.
func (m *VerificationResultMutation) AddedSemanticScore() (r float64, exists bool) {
	v := m.addsemantic_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSemanticScore clears the value of the "semantic_score" field.
func (m *VerificationResultMutation) ClearSemanticScore() {
	m.semantic_score = nil
	m.addsemantic_score = nil
	m.clearedFields[verificationresult.FieldSemanticScore] = struct{}{}
}

// SemanticScoreCleared returns if the "semantic_score" field was cleared in this mutation.
func (m *VerificationResultMutation) SemanticScoreCleared() bool {
	_, ok := m.clearedFields[verificationresult.FieldSemanticScore]
	return ok
}

// ResetSemanticScore resets all changes to the "semantic_score" field.
func (m *VerificationResultMutation) ResetSemanticScore() {
	m.semantic_score = nil
	m.addsemantic_score = nil
	delete(m.clearedFields, verificationresult.FieldSemanticScore)
}

// SetSemanticExplanation sets the "semantic_explanation" field.
func (m *VerificationResultMutation) SetSemanticExplanation(s string) {
	m.semantic_explanation = &s
}

// SemanticExplanation returns the value of the "semantic_explanation" field in the mutation.
func (m *VerificationResultMutation) SemanticExplanation() (r string, exists bool) {
	v := m.semantic_explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticExplanation returns the old "semantic_explanation" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldSemanticExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticExplanation: %w", err)
	}
	return oldValue.SemanticExplanation, nil
}

// ClearSemanticExplanation clears the value of the "semantic_explanation" field.
func (m *VerificationResultMutation) ClearSemanticExplanation() {
	m.semantic_explanation = nil
	m.clearedFields[verificationresult.FieldSemanticExplanation] = struct{}{}
}

// SemanticExplanationCleared returns if the "semantic_explanation" field was cleared in this mutation.
func (m *VerificationResultMutation) SemanticExplanationCleared() bool {
	_, ok := m.clearedFields[verificationresult.FieldSemanticExplanation]
	return ok
}

// ResetSemanticExplanation resets all changes to the "semantic_explanation" field.
func (m *VerificationResultMutation) ResetSemanticExplanation() {
	m.semantic_explanation = nil
	delete(m.clearedFields, verificationresult.FieldSemanticExplanation)
}

// SetFailures sets the "failures" field.
func (m *VerificationResultMutation) SetFailures(value []map[string]interface{}) {
	m.failures = &value
	m.appendfailures = nil
}

// Failures returns the value of the "failures" field in the mutation.
func (m *VerificationResultMutation) Failures() (r []map[string]interface{}, exists bool) {
	v := m.failures
	if v == nil {
		return
	}
	return *v, true
}

// OldFailures returns the old "failures" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldFailures(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailures: %w", err)
	}
	return oldValue.Failures, nil
}

// AppendFailures adds value to the "failures" field.
func (m *VerificationResultMutation) AppendFailures(value []map[string]interface{}) {
	m.appendfailures = append(m.appendfailures, value...)
}

// AppendedFailures returns the list of values that were appended to the "failures" field in this mutation.
func (m *VerificationResultMutation) AppendedFailures() ([]map[string]interface{}, bool) {
	if len(m.appendfailures) == 0 {
		return nil, false
	}
	return m.appendfailures, true
}

// ClearFailures clears the value of the "failures" field.
func (m *VerificationResultMutation) ClearFailures() {
	m.failures = nil
	m.appendfailures = nil
	m.clearedFields[verificationresult.FieldFailures] = struct{}{}
}

// FailuresCleared returns if the "failures" field was cleared in this mutation.
func (m *VerificationResultMutation) FailuresCleared() bool {
	_, ok := m.clearedFields[verificationresult.FieldFailures]
	return ok
}

// ResetFailures resets all changes to the "failures" field.
func (m *VerificationResultMutation) ResetFailures() {
	m.failures = nil
	m.appendfailures = nil
	delete(m.clearedFields, verificationresult.FieldFailures)
}

// SetRecommendations sets the "recommendations" field.
func (m *VerificationResultMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *VerificationResultMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *VerificationResultMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *VerificationResultMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *VerificationResultMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[verificationresult.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *VerificationResultMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[verificationresult.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *VerificationResultMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, verificationresult.FieldRecommendations)
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationResult entity.
// If the VerificationResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VerificationResultMutation builder.
func (m *VerificationResultMutation) Where(ps ...predicate.VerificationResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationResult).
func (m *VerificationResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationResultMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.task_id != nil {
		fields = append(fields, verificationresult.FieldTaskID)
	}
	if m.attempt_number != nil {
		fields = append(fields, verificationresult.FieldAttemptNumber)
	}
	if m.passed != nil {
		fields = append(fields, verificationresult.FieldPassed)
	}
	if m.confidence_score != nil {
		fields = append(fields, verificationresult.FieldConfidenceScore)
	}
	if m.syntax_passed != nil {
		fields = append(fields, verificationresult.FieldSyntaxPassed)
	}
	if m.types_passed != nil {
		fields = append(fields, verificationresult.FieldTypesPassed)
	}
	if m.lint_passed != nil {
		fields = append(fields, verificationresult.FieldLintPassed)
	}
	if m.tests_passed != nil {
		fields = append(fields, verificationresult.FieldTestsPassed)
	}
	if m.tests_total != nil {
		fields = append(fields, verificationresult.FieldTestsTotal)
	}
	if m.tests_failed != nil {
		fields = append(fields, verificationresult.FieldTestsFailed)
	}
	if m.semantic_score != nil {
		fields = append(fields, verificationresult.FieldSemanticScore)
	}
	if m.semantic_explanation != nil {
		fields = append(fields, verificationresult.FieldSemanticExplanation)
	}
	if m.failures != nil {
		fields = append(fields, verificationresult.FieldFailures)
	}
	if m.recommendations != nil {
		fields = append(fields, verificationresult.FieldRecommendations)
	}
	if m.created_at != nil {
		fields = append(fields, verificationresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationresult.FieldTaskID:
		return m.TaskID()
	case verificationresult.FieldAttemptNumber:
		return m.AttemptNumber()
	case verificationresult.FieldPassed:
		return m.Passed()
	case verificationresult.FieldConfidenceScore:
		return m.ConfidenceScore()
	case verificationresult.FieldSyntaxPassed:
		return m.SyntaxPassed()
	case verificationresult.FieldTypesPassed:
		return m.TypesPassed()
	case verificationresult.FieldLintPassed:
		return m.LintPassed()
	case verificationresult.FieldTestsPassed:
		return m.TestsPassed()
	case verificationresult.FieldTestsTotal:
		return m.TestsTotal()
	case verificationresult.FieldTestsFailed:
		return m.TestsFailed()
	case verificationresult.FieldSemanticScore:
		return m.SemanticScore()
	case verificationresult.FieldSemanticExplanation:
		return m.SemanticExplanation()
	case verificationresult.FieldFailures:
		return m.Failures()
	case verificationresult.FieldRecommendations:
		return m.Recommendations()
	case verificationresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case verificationresult.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case verificationresult.FieldPassed:
		return m.OldPassed(ctx)
	case verificationresult.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case verificationresult.FieldSyntaxPassed:
		return m.OldSyntaxPassed(ctx)
	case verificationresult.FieldTypesPassed:
		return m.OldTypesPassed(ctx)
	case verificationresult.FieldLintPassed:
		return m.OldLintPassed(ctx)
	case verificationresult.FieldTestsPassed:
		return m.OldTestsPassed(ctx)
	case verificationresult.FieldTestsTotal:
		return m.OldTestsTotal(ctx)
	case verificationresult.FieldTestsFailed:
		return m.OldTestsFailed(ctx)
	case verificationresult.FieldSemanticScore:
		return m.OldSemanticScore(ctx)
	case verificationresult.FieldSemanticExplanation:
		return m.OldSemanticExplanation(ctx)
	case verificationresult.FieldFailures:
		return m.OldFailures(ctx)
	case verificationresult.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case verificationresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationresult.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case verificationresult.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case verificationresult.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case verificationresult.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case verificationresult.FieldSyntaxPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyntaxPassed(v)
		return nil
	case verificationresult.FieldTypesPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypesPassed(v)
		return nil
	case verificationresult.FieldLintPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLintPassed(v)
		return nil
	case verificationresult.FieldTestsPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestsPassed(v)
		return nil
	case verificationresult.FieldTestsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestsTotal(v)
		return nil
	case verificationresult.FieldTestsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestsFailed(v)
		return nil
	case verificationresult.FieldSemanticScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticScore(v)
		return nil
	case verificationresult.FieldSemanticExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticExplanation(v)
		return nil
	case verificationresult.FieldFailures:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailures(v)
		return nil
	case verificationresult.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case verificationresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationResultMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, verificationresult.FieldAttemptNumber)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, verificationresult.FieldConfidenceScore)
	}
	if m.addtests_total != nil {
		fields = append(fields, verificationresult.FieldTestsTotal)
	}
	if m.addtests_failed != nil {
		fields = append(fields, verificationresult.FieldTestsFailed)
	}
	if m.addsemantic_score != nil {
		fields = append(fields, verificationresult.FieldSemanticScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationresult.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case verificationresult.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case verificationresult.FieldTestsTotal:
		return m.AddedTestsTotal()
	case verificationresult.FieldTestsFailed:
		return m.AddedTestsFailed()
	case verificationresult.FieldSemanticScore:
		return m.AddedSemanticScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationresult.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case verificationresult.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case verificationresult.FieldTestsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTestsTotal(v)
		return nil
	case verificationresult.FieldTestsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTestsFailed(v)
		return nil
	case verificationresult.FieldSemanticScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSemanticScore(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationresult.FieldSemanticScore) {
		fields = append(fields, verificationresult.FieldSemanticScore)
	}
	if m.FieldCleared(verificationresult.FieldSemanticExplanation) {
		fields = append(fields, verificationresult.FieldSemanticExplanation)
	}
	if m.FieldCleared(verificationresult.FieldFailures) {
		fields = append(fields, verificationresult.FieldFailures)
	}
	if m.FieldCleared(verificationresult.FieldRecommendations) {
		fields = append(fields, verificationresult.FieldRecommendations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationResultMutation) ClearField(name string) error {
	switch name {
	case verificationresult.FieldSemanticScore:
		m.ClearSemanticScore()
		return nil
	case verificationresult.FieldSemanticExplanation:
		m.ClearSemanticExplanation()
		return nil
	case verificationresult.FieldFailures:
		m.ClearFailures()
		return nil
	case verificationresult.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	}
	return fmt.Errorf("unknown VerificationResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationResultMutation) ResetField(name string) error {
	switch name {
	case verificationresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case verificationresult.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case verificationresult.FieldPassed:
		m.ResetPassed()
		return nil
	case verificationresult.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case verificationresult.FieldSyntaxPassed:
		m.ResetSyntaxPassed()
		return nil
	case verificationresult.FieldTypesPassed:
		m.ResetTypesPassed()
		return nil
	case verificationresult.FieldLintPassed:
		m.ResetLintPassed()
		return nil
	case verificationresult.FieldTestsPassed:
		m.ResetTestsPassed()
		return nil
	case verificationresult.FieldTestsTotal:
		m.ResetTestsTotal()
		return nil
	case verificationresult.FieldTestsFailed:
		m.ResetTestsFailed()
		return nil
	case verificationresult.FieldSemanticScore:
		m.ResetSemanticScore()
		return nil
	case verificationresult.FieldSemanticExplanation:
		m.ResetSemanticExplanation()
		return nil
	case verificationresult.FieldFailures:
		m.ResetFailures()
		return nil
	case verificationresult.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case verificationresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VerificationResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VerificationResult edge %s", name)
}
