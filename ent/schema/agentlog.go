package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentLog holds the schema definition for the AgentLog entity.
// Append-only structured entries in an agent's timeline. Content is
// truncated to 50 KB by the service layer before insert.
type AgentLog struct {
	ent.Schema
}

// Fields of the AgentLog.
func (AgentLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("log_type").
			Values("thinking", "tool_call", "tool_result", "error", "info", "status_change"),
		field.Text("content").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentLog.
func (AgentLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "created_at"),
		index.Fields("task_id"),
	}
}
