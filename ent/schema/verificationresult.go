package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerificationResult holds the schema definition for the VerificationResult
// entity. Append-only: exactly one row is written per verification run and
// rows are never updated.
type VerificationResult struct {
	ent.Schema
}

// Fields of the VerificationResult.
func (VerificationResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("attempt_number").
			Immutable(),
		field.Bool("passed").
			Immutable(),
		field.Float("confidence_score").
			Immutable().
			Comment("Weighted aggregate in [0,1]"),
		field.Bool("syntax_passed").
			Immutable(),
		field.Bool("types_passed").
			Immutable(),
		field.Bool("lint_passed").
			Immutable(),
		field.Bool("tests_passed").
			Immutable(),
		field.Int("tests_total").
			Default(0).
			Immutable(),
		field.Int("tests_failed").
			Default(0).
			Immutable(),
		field.Float("semantic_score").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil when the semantic stage did not run"),
		field.Text("semantic_explanation").
			Optional().
			Immutable(),
		field.JSON("failures", []map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Ordered {check, message, file?, line?} records"),
		field.JSON("recommendations", []string{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the VerificationResult.
func (VerificationResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
