package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A Task is one unit of coding work moving through the lifecycle
// queued → in_progress → verifying → completed/failed (or cancelled).
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("queued", "in_progress", "verifying", "completed", "failed", "cancelled").
			Default("queued"),
		field.Int("priority").
			Default(2).
			Min(0).
			Max(3).
			Comment("0 = highest urgency"),
		field.Enum("risk_level").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.JSON("files_hint", []string{}).
			Optional().
			Comment("Ordered list of paths the task is expected to touch"),
		field.String("assigned_agent_id").
			Optional().
			Nillable().
			Comment("Set iff status is in_progress or verifying"),
		field.String("branch_name").
			Optional().
			Nillable(),
		field.Enum("verification_status").
			Values("pending", "passed", "failed").
			Optional().
			Nillable(),
		field.Int("verification_attempts").
			Default(0).
			Comment("Monotonically non-decreasing"),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set iff status is terminal (completed/failed/cancelled)"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Claim ordering: priority ASC, created_at ASC over queued tasks
		index.Fields("status", "priority", "created_at"),
		index.Fields("assigned_agent_id"),
	}
}
