package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunnerSession holds the schema definition for the RunnerSession entity.
// It authenticates a remote runner; inactive sessions reject all protocol calls.
type RunnerSession struct {
	ent.Schema
}

// Fields of the RunnerSession.
func (RunnerSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("token").
			Unique().
			Sensitive().
			Comment("Opaque high-entropy bearer token"),
		field.String("name"),
		field.String("working_dir"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
	}
}

// Indexes of the RunnerSession.
func (RunnerSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
