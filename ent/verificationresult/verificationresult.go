// Code generated by ent, DO NOT EDIT.

package verificationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the verificationresult type in the database.
	Label = "verification_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldSyntaxPassed holds the string denoting the syntax_passed field in the database.
	FieldSyntaxPassed = "syntax_passed"
	// FieldTypesPassed holds the string denoting the types_passed field in the database.
	FieldTypesPassed = "types_passed"
	// FieldLintPassed holds the string denoting the lint_passed field in the database.
	FieldLintPassed = "lint_passed"
	// FieldTestsPassed holds the string denoting the tests_passed field in the database.
	FieldTestsPassed = "tests_passed"
	// FieldTestsTotal holds the string denoting the tests_total field in the database.
	FieldTestsTotal = "tests_total"
	// FieldTestsFailed holds the string denoting the tests_failed field in the database.
	FieldTestsFailed = "tests_failed"
	// FieldSemanticScore holds the string denoting the semantic_score field in the database.
	FieldSemanticScore = "semantic_score"
	// FieldSemanticExplanation holds the string denoting the semantic_explanation field in the database.
	FieldSemanticExplanation = "semantic_explanation"
	// FieldFailures holds the string denoting the failures field in the database.
	FieldFailures = "failures"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the verificationresult in the database.
	Table = "verification_results"
)

// Columns holds all SQL columns for verificationresult fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldAttemptNumber,
	FieldPassed,
	FieldConfidenceScore,
	FieldSyntaxPassed,
	FieldTypesPassed,
	FieldLintPassed,
	FieldTestsPassed,
	FieldTestsTotal,
	FieldTestsFailed,
	FieldSemanticScore,
	FieldSemanticExplanation,
	FieldFailures,
	FieldRecommendations,
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
	// DefaultTestsTotal holds the default value on creation for the "tests_total" field.
	DefaultTestsTotal int
	// DefaultTestsFailed holds the default value on creation for the "tests_failed" field.
	DefaultTestsFailed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the VerificationResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// BySyntaxPassed orders the results by the syntax_passed field.
func BySyntaxPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyntaxPassed, opts...).ToFunc()
}

// ByTypesPassed orders the results by the types_passed field.
func ByTypesPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypesPassed, opts...).ToFunc()
}

// ByLintPassed orders the results by the lint_passed field.
func ByLintPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLintPassed, opts...).ToFunc()
}

// ByTestsPassed orders the results by the tests_passed field.
func ByTestsPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestsPassed, opts...).ToFunc()
}

// ByTestsTotal orders the results by the tests_total field.
func ByTestsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestsTotal, opts...).ToFunc()
}

// ByTestsFailed orders the results by the tests_failed field.
func ByTestsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestsFailed, opts...).ToFunc()
}

// BySemanticScore orders the results by the semantic_score field.
func BySemanticScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticScore, opts...).ToFunc()
}

// BySemanticExplanation orders the results by the semantic_explanation field.
func BySemanticExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemanticExplanation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
