package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileLock holds the schema definition for the FileLock entity.
// An advisory exclusive claim on a normalized file path. The unique
// constraint on file_path is the linearization point for acquisition:
// the insert either succeeds or fails with a constraint error.
type FileLock struct {
	ent.Schema
}

// Fields of the FileLock.
func (FileLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lock_id").
			Unique().
			Immutable(),
		field.String("file_path").
			Unique().
			Comment("Normalized: forward slashes, collapsed runs, no trailing slash"),
		field.String("agent_id"),
		field.String("task_id"),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
	}
}

// Indexes of the FileLock.
func (FileLock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("expires_at"),
	}
}
