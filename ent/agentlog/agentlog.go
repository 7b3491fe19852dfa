// Code generated by ent, DO NOT EDIT.

package agentlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agentlog type in the database.
	Label = "agent_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "log_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldLogType holds the string denoting the log_type field in the database.
	FieldLogType = "log_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the agentlog in the database.
	Table = "agent_logs"
)

// Columns holds all SQL columns for agentlog fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldTaskID,
	FieldLogType,
	FieldContent,
	FieldMetadata,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LogType defines the type for the "log_type" enum field.
type LogType string

// LogType values.
const (
	LogTypeThinking     LogType = "thinking"
	LogTypeToolCall     LogType = "tool_call"
	LogTypeToolResult   LogType = "tool_result"
	LogTypeError        LogType = "error"
	LogTypeInfo         LogType = "info"
	LogTypeStatusChange LogType = "status_change"
)

func (lt LogType) String() string {
	return string(lt)
}

// LogTypeValidator is a validator for the "log_type" field enum values. It is called by the builders before save.
func LogTypeValidator(lt LogType) error {
	switch lt {
	case LogTypeThinking, LogTypeToolCall, LogTypeToolResult, LogTypeError, LogTypeInfo, LogTypeStatusChange:
		return nil
	default:
		return fmt.Errorf("agentlog: invalid enum value for log_type field: %q", lt)
	}
}

// OrderOption defines the ordering options for the AgentLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByLogType orders the results by the log_type field.
func ByLogType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
