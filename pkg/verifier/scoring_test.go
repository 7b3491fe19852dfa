package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceScore_AllPassing(t *testing.T) {
	o := Outcome{
		SyntaxPassed: true,
		TypesPassed:  true,
		LintPassed:   true,
		TestsPassed:  true,
		TestsTotal:   10,
		SemanticRan:  true,
		SemanticScore: 1.0,
	}
	assert.InDelta(t, 1.0, ConfidenceScore(o), 1e-9)
}

func TestConfidenceScore_PartialTestRate(t *testing.T) {
	o := Outcome{
		SyntaxPassed: true,
		TypesPassed:  true,
		LintPassed:   true,
		TestsTotal:   10,
		TestsFailed:  5,
	}
	// 0.2 + 0.2 + 0.1 + 0.3*0.5, semantic skipped contributes nothing.
	assert.InDelta(t, 0.65, ConfidenceScore(o), 1e-9)
}

func TestConfidenceScore_EmptySuite(t *testing.T) {
	passing := Outcome{TestsPassed: true}
	failing := Outcome{TestsPassed: false}
	assert.InDelta(t, 0.3, ConfidenceScore(passing), 1e-9)
	assert.InDelta(t, 0.0, ConfidenceScore(failing), 1e-9)
}

func TestConfidenceScore_SemanticWeighted(t *testing.T) {
	o := Outcome{SemanticRan: true, SemanticScore: 0.5}
	assert.InDelta(t, 0.1, ConfidenceScore(o), 1e-9)
}

func TestPassed_RequiresEverything(t *testing.T) {
	good := Outcome{
		SyntaxPassed: true,
		TypesPassed:  true,
		LintPassed:   true,
		TestsPassed:  true,
		SemanticRan:  true,
		SemanticScore: 0.7,
	}
	assert.True(t, Passed(good))

	noSemantic := good
	noSemantic.SemanticRan = false
	assert.False(t, Passed(noSemantic), "a skipped semantic stage cannot pass")

	lowSemantic := good
	lowSemantic.SemanticScore = 0.69
	assert.False(t, Passed(lowSemantic))

	lintFailed := good
	lintFailed.LintPassed = false
	assert.False(t, Passed(lintFailed))
}
