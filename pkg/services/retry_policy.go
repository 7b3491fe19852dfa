package services

import (
	"strings"
	"time"

	"github.com/louannemur/fleetd/ent"
)

// FailureType classifies why a task's most recent verification failed.
type FailureType string

// Failure classifications.
const (
	FailureSyntax   FailureType = "SYNTAX_ERROR"
	FailureTypes    FailureType = "TYPE_ERROR"
	FailureLint     FailureType = "LINT_ERROR"
	FailureTests    FailureType = "TEST_FAILURE"
	FailureSemantic FailureType = "SEMANTIC_ERROR"
	FailureTimeout  FailureType = "TIMEOUT"
	FailureUnknown  FailureType = "UNKNOWN"
)

// RetryPolicy decides whether and when a failed task is requeued.
type RetryPolicy struct {
	ShouldRetry bool
	Delay       time.Duration
	MaxAttempts int
	HumanReview bool
}

// retryPolicies is the fixed policy table keyed by failure type.
var retryPolicies = map[FailureType]RetryPolicy{
	FailureSyntax:   {ShouldRetry: true, Delay: 5 * time.Second, MaxAttempts: 3},
	FailureTypes:    {ShouldRetry: true, Delay: 10 * time.Second, MaxAttempts: 3},
	FailureLint:     {ShouldRetry: true, Delay: 5 * time.Second, MaxAttempts: 2},
	FailureTests:    {ShouldRetry: true, Delay: 30 * time.Second, MaxAttempts: 2, HumanReview: true},
	FailureSemantic: {ShouldRetry: false, MaxAttempts: 1, HumanReview: true},
	FailureTimeout:  {ShouldRetry: true, Delay: 60 * time.Second, MaxAttempts: 2},
	FailureUnknown:  {ShouldRetry: true, Delay: 30 * time.Second, MaxAttempts: 1, HumanReview: true},
}

// PolicyFor returns the retry policy for a failure type, falling back to
// the UNKNOWN row for unrecognized values.
func PolicyFor(ft FailureType) RetryPolicy {
	if p, ok := retryPolicies[ft]; ok {
		return p
	}
	return retryPolicies[FailureUnknown]
}

// ClassifyVerification derives a failure type from the per-check flags of
// a verification result, in pipeline order.
func ClassifyVerification(res *ent.VerificationResult) FailureType {
	switch {
	case res == nil:
		return FailureUnknown
	case !res.SyntaxPassed:
		return FailureSyntax
	case !res.TypesPassed:
		return FailureTypes
	case !res.LintPassed:
		return FailureLint
	case !res.TestsPassed:
		return FailureTests
	case res.SemanticScore != nil && *res.SemanticScore < 0.7:
		return FailureSemantic
	default:
		return FailureUnknown
	}
}

// ClassifyErrorText matches free-form error text against known failure
// signatures. Used when no verification result exists for a failed task.
func ClassifyErrorText(text string) FailureType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "syntax"):
		return FailureSyntax
	case strings.Contains(lower, "type error") || strings.Contains(lower, "typecheck"):
		return FailureTypes
	case strings.Contains(lower, "lint"):
		return FailureLint
	case strings.Contains(lower, "test"):
		return FailureTests
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out") || strings.Contains(lower, "deadline"):
		return FailureTimeout
	default:
		return FailureUnknown
	}
}
