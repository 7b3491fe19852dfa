// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentTaskID holds the string denoting the current_task_id field in the database.
	FieldCurrentTaskID = "current_task_id"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldRunnerSessionID holds the string denoting the runner_session_id field in the database.
	FieldRunnerSessionID = "runner_session_id"
	// FieldWorkingDir holds the string denoting the working_dir field in the database.
	FieldWorkingDir = "working_dir"
	// FieldTotalTokensUsed holds the string denoting the total_tokens_used field in the database.
	FieldTotalTokensUsed = "total_tokens_used"
	// FieldTasksCompleted holds the string denoting the tasks_completed field in the database.
	FieldTasksCompleted = "tasks_completed"
	// FieldTasksFailed holds the string denoting the tasks_failed field in the database.
	FieldTasksFailed = "tasks_failed"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStatus,
	FieldCurrentTaskID,
	FieldBranchName,
	FieldRunnerSessionID,
	FieldWorkingDir,
	FieldTotalTokensUsed,
	FieldTasksCompleted,
	FieldTasksFailed,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastActivityAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalTokensUsed holds the default value on creation for the "total_tokens_used" field.
	DefaultTotalTokensUsed int
	// DefaultTasksCompleted holds the default value on creation for the "tasks_completed" field.
	DefaultTasksCompleted int
	// DefaultTasksFailed holds the default value on creation for the "tasks_failed" field.
	DefaultTasksFailed int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusWorking is the default value of the Status enum.
const DefaultStatus = StatusWorking

// Status values.
const (
	StatusIdle      Status = "idle"
	StatusWorking   Status = "working"
	StatusPaused    Status = "paused"
	StatusFailed    Status = "failed"
	StatusStuck     Status = "stuck"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusWorking, StatusPaused, StatusFailed, StatusStuck, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentTaskID orders the results by the current_task_id field.
func ByCurrentTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentTaskID, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByRunnerSessionID orders the results by the runner_session_id field.
func ByRunnerSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunnerSessionID, opts...).ToFunc()
}

// ByWorkingDir orders the results by the working_dir field.
func ByWorkingDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkingDir, opts...).ToFunc()
}

// ByTotalTokensUsed orders the results by the total_tokens_used field.
func ByTotalTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokensUsed, opts...).ToFunc()
}

// ByTasksCompleted orders the results by the tasks_completed field.
func ByTasksCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCompleted, opts...).ToFunc()
}

// ByTasksFailed orders the results by the tasks_failed field.
func ByTasksFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksFailed, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}
