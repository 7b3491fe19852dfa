package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// An Agent is one execution attempt of one Task on one runner.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("status").
			Values("idle", "working", "paused", "failed", "stuck", "completed").
			Default("working"),
		field.String("current_task_id").
			Optional().
			Nillable().
			Comment("Set iff status is working or paused"),
		field.String("branch_name"),
		field.String("runner_session_id"),
		field.String("working_dir").
			Comment("Always caller-supplied, never inferred from process state"),
		field.Int("total_tokens_used").
			Default(0),
		field.Int("tasks_completed").
			Default(0),
		field.Int("tasks_failed").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_activity_at").
			Optional().
			Nillable().
			Comment("For stuck-agent detection"),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "last_activity_at"),
		index.Fields("runner_session_id"),
		index.Fields("current_task_id"),
	}
}
