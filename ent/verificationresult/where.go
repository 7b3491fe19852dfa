// Code generated by ent, DO NOT EDIT.

package verificationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/louannemur/fleetd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTaskID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldAttemptNumber, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldPassed, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldConfidenceScore, v))
}

// SyntaxPassed applies equality check predicate on the "syntax_passed" field. It's identical to SyntaxPassedEQ.
func SyntaxPassed(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldSyntaxPassed, v))
}

// TypesPassed applies equality check predicate on the "types_passed" field. It's identical to TypesPassedEQ.
func TypesPassed(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTypesPassed, v))
}

// LintPassed applies equality check predicate on the "lint_passed" field. It's identical to LintPassedEQ.
func LintPassed(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldLintPassed, v))
}

// TestsPassed applies equality check predicate on the "tests_passed" field. It's identical to TestsPassedEQ.
func TestsPassed(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTestsPassed, v))
}

// TestsTotal applies equality check predicate on the "tests_total" field. It's identical to TestsTotalEQ.
func TestsTotal(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTestsTotal, v))
}

// TestsFailed applies equality check predicate on the "tests_failed" field. It's identical to TestsFailedEQ.
func TestsFailed(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTestsFailed, v))
}

// SemanticScore applies equality check predicate on the "semantic_score" field. It's identical to SemanticScoreEQ.
func SemanticScore(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldSemanticScore, v))
}

// SemanticExplanation applies equality check predicate on the "semantic_explanation" field. It's identical to SemanticExplanationEQ.
func SemanticExplanation(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldSemanticExplanation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldContainsFold(FieldTaskID, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldAttemptNumber, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldPassed, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldConfidenceScore, v))
}

// SyntaxPassedEQ applies the EQ predicate on the "syntax_passed" field.
func SyntaxPassedEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldSyntaxPassed, v))
}

// SyntaxPassedNEQ applies the NEQ predicate on the "syntax_passed" field.
func SyntaxPassedNEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldSyntaxPassed, v))
}

// TypesPassedEQ applies the EQ predicate on the "types_passed" field.
func TypesPassedEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTypesPassed, v))
}

// TypesPassedNEQ applies the NEQ predicate on the "types_passed" field.
func TypesPassedNEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldTypesPassed, v))
}

// LintPassedEQ applies the EQ predicate on the "lint_passed" field.
func LintPassedEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldLintPassed, v))
}

// LintPassedNEQ applies the NEQ predicate on the "lint_passed" field.
func LintPassedNEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldLintPassed, v))
}

// TestsPassedEQ applies the EQ predicate on the "tests_passed" field.
func TestsPassedEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTestsPassed, v))
}

// TestsPassedNEQ applies the NEQ predicate on the "tests_passed" field.
func TestsPassedNEQ(v bool) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldTestsPassed, v))
}

// TestsTotalEQ applies the EQ predicate on the "tests_total" field.
func TestsTotalEQ(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTestsTotal, v))
}

// TestsTotalNEQ applies the NEQ predicate on the "tests_total" field.
func TestsTotalNEQ(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldTestsTotal, v))
}

// TestsTotalIn applies the In predicate on the "tests_total" field.
func TestsTotalIn(vs ...int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldTestsTotal, vs...))
}

// TestsTotalNotIn applies the NotIn predicate on the "tests_total" field.
func TestsTotalNotIn(vs ...int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldTestsTotal, vs...))
}

// TestsTotalGT applies the GT predicate on the "tests_total" field.
func TestsTotalGT(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldTestsTotal, v))
}

// TestsTotalGTE applies the GTE predicate on the "tests_total" field.
func TestsTotalGTE(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldTestsTotal, v))
}

// TestsTotalLT applies the LT predicate on the "tests_total" field.
func TestsTotalLT(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldTestsTotal, v))
}

// TestsTotalLTE applies the LTE predicate on the "tests_total" field.
func TestsTotalLTE(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldTestsTotal, v))
}

// TestsFailedEQ applies the EQ predicate on the "tests_failed" field.
func TestsFailedEQ(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldTestsFailed, v))
}

// TestsFailedNEQ applies the NEQ predicate on the "tests_failed" field.
func TestsFailedNEQ(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldTestsFailed, v))
}

// TestsFailedIn applies the In predicate on the "tests_failed" field.
func TestsFailedIn(vs ...int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldTestsFailed, vs...))
}

// TestsFailedNotIn applies the NotIn predicate on the "tests_failed" field.
func TestsFailedNotIn(vs ...int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldTestsFailed, vs...))
}

// TestsFailedGT applies the GT predicate on the "tests_failed" field.
func TestsFailedGT(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldTestsFailed, v))
}

// TestsFailedGTE applies the GTE predicate on the "tests_failed" field.
func TestsFailedGTE(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldTestsFailed, v))
}

// TestsFailedLT applies the LT predicate on the "tests_failed" field.
func TestsFailedLT(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldTestsFailed, v))
}

// TestsFailedLTE applies the LTE predicate on the "tests_failed" field.
func TestsFailedLTE(v int) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldTestsFailed, v))
}

// SemanticScoreEQ applies the EQ predicate on the "semantic_score" field.
func SemanticScoreEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldSemanticScore, v))
}

// SemanticScoreNEQ applies the NEQ predicate on the "semantic_score" field.
func SemanticScoreNEQ(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldSemanticScore, v))
}

// SemanticScoreIn applies the In predicate on the "semantic_score" field.
func SemanticScoreIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldSemanticScore, vs...))
}

// SemanticScoreNotIn applies the NotIn predicate on the "semantic_score" field.
func SemanticScoreNotIn(vs ...float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldSemanticScore, vs...))
}

// SemanticScoreGT applies the GT predicate on the "semantic_score" field.
func SemanticScoreGT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldSemanticScore, v))
}

// SemanticScoreGTE applies the GTE predicate on the "semantic_score" field.
func SemanticScoreGTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldSemanticScore, v))
}

// SemanticScoreLT applies the LT predicate on the "semantic_score" field.
func SemanticScoreLT(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldSemanticScore, v))
}

// SemanticScoreLTE applies the LTE predicate on the "semantic_score" field.
func SemanticScoreLTE(v float64) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldSemanticScore, v))
}

// SemanticScoreIsNil applies the IsNil predicate on the "semantic_score" field.
func SemanticScoreIsNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIsNull(FieldSemanticScore))
}

// SemanticScoreNotNil applies the NotNil predicate on the "semantic_score" field.
func SemanticScoreNotNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotNull(FieldSemanticScore))
}

// SemanticExplanationEQ applies the EQ predicate on the "semantic_explanation" field.
func SemanticExplanationEQ(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldSemanticExplanation, v))
}

// SemanticExplanationNEQ applies the NEQ predicate on the "semantic_explanation" field.
func SemanticExplanationNEQ(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldSemanticExplanation, v))
}

// SemanticExplanationIn applies the In predicate on the "semantic_explanation" field.
func SemanticExplanationIn(vs ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldSemanticExplanation, vs...))
}

// SemanticExplanationNotIn applies the NotIn predicate on the "semantic_explanation" field.
func SemanticExplanationNotIn(vs ...string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldSemanticExplanation, vs...))
}

// SemanticExplanationGT applies the GT predicate on the "semantic_explanation" field.
func SemanticExplanationGT(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldSemanticExplanation, v))
}

// SemanticExplanationGTE applies the GTE predicate on the "semantic_explanation" field.
func SemanticExplanationGTE(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldSemanticExplanation, v))
}

// SemanticExplanationLT applies the LT predicate on the "semantic_explanation" field.
func SemanticExplanationLT(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldSemanticExplanation, v))
}

// SemanticExplanationLTE applies the LTE predicate on the "semantic_explanation" field.
func SemanticExplanationLTE(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldSemanticExplanation, v))
}

// SemanticExplanationContains applies the Contains predicate on the "semantic_explanation" field.
func SemanticExplanationContains(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldContains(FieldSemanticExplanation, v))
}

// SemanticExplanationHasPrefix applies the HasPrefix predicate on the "semantic_explanation" field.
func SemanticExplanationHasPrefix(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldHasPrefix(FieldSemanticExplanation, v))
}

// SemanticExplanationHasSuffix applies the HasSuffix predicate on the "semantic_explanation" field.
func SemanticExplanationHasSuffix(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldHasSuffix(FieldSemanticExplanation, v))
}

// SemanticExplanationIsNil applies the IsNil predicate on the "semantic_explanation" field.
func SemanticExplanationIsNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIsNull(FieldSemanticExplanation))
}

// SemanticExplanationNotNil applies the NotNil predicate on the "semantic_explanation" field.
func SemanticExplanationNotNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotNull(FieldSemanticExplanation))
}

// SemanticExplanationEqualFold applies the EqualFold predicate on the "semantic_explanation" field.
func SemanticExplanationEqualFold(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEqualFold(FieldSemanticExplanation, v))
}

// SemanticExplanationContainsFold applies the ContainsFold predicate on the "semantic_explanation" field.
func SemanticExplanationContainsFold(v string) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldContainsFold(FieldSemanticExplanation, v))
}

// FailuresIsNil applies the IsNil predicate on the "failures" field.
func FailuresIsNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIsNull(FieldFailures))
}

// FailuresNotNil applies the NotNil predicate on the "failures" field.
func FailuresNotNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotNull(FieldFailures))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotNull(FieldRecommendations))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationResult {
	return predicate.VerificationResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationResult) predicate.VerificationResult {
	return predicate.VerificationResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationResult) predicate.VerificationResult {
	return predicate.VerificationResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationResult) predicate.VerificationResult {
	return predicate.VerificationResult(sql.NotPredicates(p))
}
