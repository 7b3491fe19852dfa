package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/louannemur/fleetd/ent"
)

func TestPolicyFor_Table(t *testing.T) {
	tests := []struct {
		ft     FailureType
		retry  bool
		delay  time.Duration
		max    int
		review bool
	}{
		{FailureSyntax, true, 5 * time.Second, 3, false},
		{FailureTypes, true, 10 * time.Second, 3, false},
		{FailureLint, true, 5 * time.Second, 2, false},
		{FailureTests, true, 30 * time.Second, 2, true},
		{FailureSemantic, false, 0, 1, true},
		{FailureTimeout, true, 60 * time.Second, 2, false},
		{FailureUnknown, true, 30 * time.Second, 1, true},
	}
	for _, tt := range tests {
		p := PolicyFor(tt.ft)
		assert.Equal(t, tt.retry, p.ShouldRetry, "%s retry", tt.ft)
		assert.Equal(t, tt.delay, p.Delay, "%s delay", tt.ft)
		assert.Equal(t, tt.max, p.MaxAttempts, "%s max", tt.ft)
		assert.Equal(t, tt.review, p.HumanReview, "%s review", tt.ft)
	}
}

func TestPolicyFor_UnrecognizedFallsBack(t *testing.T) {
	assert.Equal(t, PolicyFor(FailureUnknown), PolicyFor(FailureType("COSMIC_RAYS")))
}

func TestClassifyVerification_PipelineOrder(t *testing.T) {
	mk := func(syntax, types, lint, tests bool, semantic *float64) *ent.VerificationResult {
		return &ent.VerificationResult{
			SyntaxPassed:  syntax,
			TypesPassed:   types,
			LintPassed:    lint,
			TestsPassed:   tests,
			SemanticScore: semantic,
		}
	}

	assert.Equal(t, FailureUnknown, ClassifyVerification(nil))
	assert.Equal(t, FailureSyntax, ClassifyVerification(mk(false, false, false, false, nil)))
	assert.Equal(t, FailureTypes, ClassifyVerification(mk(true, false, false, false, nil)))
	assert.Equal(t, FailureLint, ClassifyVerification(mk(true, true, false, false, nil)))
	assert.Equal(t, FailureTests, ClassifyVerification(mk(true, true, true, false, nil)))
	assert.Equal(t, FailureSemantic, ClassifyVerification(mk(true, true, true, true, floatPtr(0.5))))
	assert.Equal(t, FailureUnknown, ClassifyVerification(mk(true, true, true, true, floatPtr(0.9))))
	assert.Equal(t, FailureUnknown, ClassifyVerification(mk(true, true, true, true, nil)))
}

func TestClassifyErrorText(t *testing.T) {
	tests := []struct {
		text string
		want FailureType
	}{
		{"SyntaxError: unexpected token", FailureSyntax},
		{"TS2345 type error in handler.ts", FailureTypes},
		{"typecheck failed", FailureTypes},
		{"eslint reported 4 problems", FailureLint},
		{"2 tests failed", FailureTests},
		{"context deadline exceeded", FailureTimeout},
		{"operation timed out", FailureTimeout},
		{"something else entirely", FailureUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyErrorText(tt.text), "text %q", tt.text)
	}
}
