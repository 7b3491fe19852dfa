// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/louannemur/fleetd/ent/verificationresult"
)

// VerificationResult is the model entity for the VerificationResult schema.
type VerificationResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Weighted aggregate in [0,1]
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// SyntaxPassed holds the value of the "syntax_passed" field.
	SyntaxPassed bool `json:"syntax_passed,omitempty"`
	// TypesPassed holds the value of the "types_passed" field.
	TypesPassed bool `json:"types_passed,omitempty"`
	// LintPassed holds the value of the "lint_passed" field.
	LintPassed bool `json:"lint_passed,omitempty"`
	// TestsPassed holds the value of the "tests_passed" field.
	TestsPassed bool `json:"tests_passed,omitempty"`
	// TestsTotal holds the value of the "tests_total" field.
	TestsTotal int `json:"tests_total,omitempty"`
	// TestsFailed holds the value of the "tests_failed" field.
	TestsFailed int `json:"tests_failed,omitempty"`
	// Nil when the semantic stage did not run
	SemanticScore *float64 `json:"semantic_score,omitempty"`
	// SemanticExplanation holds the value of the "semantic_explanation" field.
	SemanticExplanation string `json:"semantic_explanation,omitempty"`
	// Ordered {check, message, file?, line?} records
	Failures []map[string]interface{} `json:"failures,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationresult.FieldFailures, verificationresult.FieldRecommendations:
			values[i] = new([]byte)
		case verificationresult.FieldPassed, verificationresult.FieldSyntaxPassed, verificationresult.FieldTypesPassed, verificationresult.FieldLintPassed, verificationresult.FieldTestsPassed:
			values[i] = new(sql.NullBool)
		case verificationresult.FieldConfidenceScore, verificationresult.FieldSemanticScore:
			values[i] = new(sql.NullFloat64)
		case verificationresult.FieldAttemptNumber, verificationresult.FieldTestsTotal, verificationresult.FieldTestsFailed:
			values[i] = new(sql.NullInt64)
		case verificationresult.FieldID, verificationresult.FieldTaskID, verificationresult.FieldSemanticExplanation:
			values[i] = new(sql.NullString)
		case verificationresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationResult fields.
func (_m *VerificationResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case verificationresult.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case verificationresult.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case verificationresult.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case verificationresult.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case verificationresult.FieldSyntaxPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field syntax_passed", values[i])
			} else if value.Valid {
				_m.SyntaxPassed = value.Bool
			}
		case verificationresult.FieldTypesPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field types_passed", values[i])
			} else if value.Valid {
				_m.TypesPassed = value.Bool
			}
		case verificationresult.FieldLintPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field lint_passed", values[i])
			} else if value.Valid {
				_m.LintPassed = value.Bool
			}
		case verificationresult.FieldTestsPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tests_passed", values[i])
			} else if value.Valid {
				_m.TestsPassed = value.Bool
			}
		case verificationresult.FieldTestsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tests_total", values[i])
			} else if value.Valid {
				_m.TestsTotal = int(value.Int64)
			}
		case verificationresult.FieldTestsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tests_failed", values[i])
			} else if value.Valid {
				_m.TestsFailed = int(value.Int64)
			}
		case verificationresult.FieldSemanticScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_score", values[i])
			} else if value.Valid {
				_m.SemanticScore = new(float64)
				*_m.SemanticScore = value.Float64
			}
		case verificationresult.FieldSemanticExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semantic_explanation", values[i])
			} else if value.Valid {
				_m.SemanticExplanation = value.String
			}
		case verificationresult.FieldFailures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failures", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Failures); err != nil {
					return fmt.Errorf("unmarshal field failures: %w", err)
				}
			}
		case verificationresult.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case verificationresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationResult.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VerificationResult.
// Note that you need to call VerificationResult.Unwrap() before calling this method if this VerificationResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationResult) Update() *VerificationResultUpdateOne {
	return NewVerificationResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationResult) Unwrap() *VerificationResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationResult) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("syntax_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyntaxPassed))
	builder.WriteString(", ")
	builder.WriteString("types_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TypesPassed))
	builder.WriteString(", ")
	builder.WriteString("lint_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LintPassed))
	builder.WriteString(", ")
	builder.WriteString("tests_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestsPassed))
	builder.WriteString(", ")
	builder.WriteString("tests_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestsTotal))
	builder.WriteString(", ")
	builder.WriteString("tests_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestsFailed))
	builder.WriteString(", ")
	if v := _m.SemanticScore; v != nil {
		builder.WriteString("semantic_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("semantic_explanation=")
	builder.WriteString(_m.SemanticExplanation)
	builder.WriteString(", ")
	builder.WriteString("failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failures))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationResults is a parsable slice of VerificationResult.
type VerificationResults []*VerificationResult
