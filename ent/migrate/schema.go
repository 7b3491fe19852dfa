// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "working", "paused", "failed", "stuck", "completed"}, Default: "working"},
		{Name: "current_task_id", Type: field.TypeString, Nullable: true},
		{Name: "branch_name", Type: field.TypeString},
		{Name: "runner_session_id", Type: field.TypeString},
		{Name: "working_dir", Type: field.TypeString},
		{Name: "total_tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "tasks_completed", Type: field.TypeInt, Default: 0},
		{Name: "tasks_failed", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_status_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[2], AgentsColumns[12]},
			},
			{
				Name:    "agent_runner_session_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[5]},
			},
			{
				Name:    "agent_current_task_id",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[3]},
			},
		},
	}
	// AgentLogsColumns holds the columns for the "agent_logs" table.
	AgentLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "log_type", Type: field.TypeEnum, Enums: []string{"thinking", "tool_call", "tool_result", "error", "info", "status_change"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentLogsTable holds the schema information for the "agent_logs" table.
	AgentLogsTable = &schema.Table{
		Name:       "agent_logs",
		Columns:    AgentLogsColumns,
		PrimaryKey: []*schema.Column{AgentLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentlog_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentLogsColumns[1], AgentLogsColumns[6]},
			},
			{
				Name:    "agentlog_task_id",
				Unique:  false,
				Columns: []*schema.Column{AgentLogsColumns[2]},
			},
		},
	}
	// ExceptionsColumns holds the columns for the "exceptions" table.
	ExceptionsColumns = []*schema.Column{
		{Name: "exception_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"agent_crash", "agent_stuck", "task_failure", "verification_failed", "file_conflict", "resource_limit", "api_error", "unknown"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "acknowledged", "resolved", "dismissed"}, Default: "open"},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "suggested_action", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "resolution_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// ExceptionsTable holds the schema information for the "exceptions" table.
	ExceptionsTable = &schema.Table{
		Name:       "exceptions",
		Columns:    ExceptionsColumns,
		PrimaryKey: []*schema.Column{ExceptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exception_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExceptionsColumns[3], ExceptionsColumns[10]},
			},
			{
				Name:    "exception_task_id",
				Unique:  false,
				Columns: []*schema.Column{ExceptionsColumns[8]},
			},
			{
				Name:    "exception_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ExceptionsColumns[7]},
			},
		},
	}
	// FileLocksColumns holds the columns for the "file_locks" table.
	FileLocksColumns = []*schema.Column{
		{Name: "lock_id", Type: field.TypeString, Unique: true},
		{Name: "file_path", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "acquired_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// FileLocksTable holds the schema information for the "file_locks" table.
	FileLocksTable = &schema.Table{
		Name:       "file_locks",
		Columns:    FileLocksColumns,
		PrimaryKey: []*schema.Column{FileLocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "filelock_agent_id",
				Unique:  false,
				Columns: []*schema.Column{FileLocksColumns[2]},
			},
			{
				Name:    "filelock_expires_at",
				Unique:  false,
				Columns: []*schema.Column{FileLocksColumns[5]},
			},
		},
	}
	// RunnerSessionsColumns holds the columns for the "runner_sessions" table.
	RunnerSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "working_dir", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
	}
	// RunnerSessionsTable holds the schema information for the "runner_sessions" table.
	RunnerSessionsTable = &schema.Table{
		Name:       "runner_sessions",
		Columns:    RunnerSessionsColumns,
		PrimaryKey: []*schema.Column{RunnerSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runnersession_name",
				Unique:  false,
				Columns: []*schema.Column{RunnerSessionsColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "in_progress", "verifying", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "priority", Type: field.TypeInt, Default: 2},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "files_hint", Type: field.TypeJSON, Nullable: true},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "branch_name", Type: field.TypeString, Nullable: true},
		{Name: "verification_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"pending", "passed", "failed"}},
		{Name: "verification_attempts", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3], TasksColumns[4], TasksColumns[12]},
			},
			{
				Name:    "task_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
		},
	}
	// VerificationResultsColumns holds the columns for the "verification_results" table.
	VerificationResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "confidence_score", Type: field.TypeFloat64},
		{Name: "syntax_passed", Type: field.TypeBool},
		{Name: "types_passed", Type: field.TypeBool},
		{Name: "lint_passed", Type: field.TypeBool},
		{Name: "tests_passed", Type: field.TypeBool},
		{Name: "tests_total", Type: field.TypeInt, Default: 0},
		{Name: "tests_failed", Type: field.TypeInt, Default: 0},
		{Name: "semantic_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "semantic_explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "failures", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VerificationResultsTable holds the schema information for the "verification_results" table.
	VerificationResultsTable = &schema.Table{
		Name:       "verification_results",
		Columns:    VerificationResultsColumns,
		PrimaryKey: []*schema.Column{VerificationResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verificationresult_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationResultsColumns[1], VerificationResultsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentLogsTable,
		ExceptionsTable,
		FileLocksTable,
		RunnerSessionsTable,
		TasksTable,
		VerificationResultsTable,
	}
)

func init() {
}
