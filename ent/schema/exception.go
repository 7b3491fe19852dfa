package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Exception holds the schema definition for the Exception entity.
// Operator-visible incidents with a small acknowledgement workflow.
type Exception struct {
	ent.Schema
}

// Fields of the Exception.
func (Exception) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("exception_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values(
				"agent_crash",
				"agent_stuck",
				"task_failure",
				"verification_failed",
				"file_conflict",
				"resource_limit",
				"api_error",
				"unknown",
			),
		field.Enum("severity").
			Values("info", "warning", "error", "critical"),
		field.Enum("status").
			Values("open", "acknowledged", "resolved", "dismissed").
			Default("open"),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Text("suggested_action").
			Optional().
			Comment("Operator-facing remediation hint"),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.Text("resolution_notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Exception.
func (Exception) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("task_id"),
		index.Fields("agent_id"),
	}
}
