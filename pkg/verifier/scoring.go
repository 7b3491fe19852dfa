package verifier

// Confidence weights. The test-rate component dominates because passing
// tests is the strongest signal a change works.
const (
	weightSyntax   = 0.2
	weightTypes    = 0.2
	weightLint     = 0.1
	weightTests    = 0.3
	weightSemantic = 0.2
)

// ConfidenceScore aggregates the pipeline outcome into [0,1]. The test
// component is the pass rate, not a boolean, so partially passing suites
// still contribute. A skipped semantic stage contributes zero.
func ConfidenceScore(o Outcome) float64 {
	score := 0.0
	if o.SyntaxPassed {
		score += weightSyntax
	}
	if o.TypesPassed {
		score += weightTypes
	}
	if o.LintPassed {
		score += weightLint
	}
	score += weightTests * testPassRate(o)
	if o.SemanticRan {
		score += weightSemantic * o.SemanticScore
	}
	return score
}

// Passed reports the overall verdict: every check passed and the semantic
// judge scored at or above the threshold.
func Passed(o Outcome) bool {
	return o.SyntaxPassed &&
		o.TypesPassed &&
		o.LintPassed &&
		o.TestsPassed &&
		o.SemanticRan &&
		o.SemanticScore >= SemanticPassThreshold
}

// testPassRate treats an empty suite as fully passing.
func testPassRate(o Outcome) float64 {
	if o.TestsTotal == 0 {
		if o.TestsPassed {
			return 1.0
		}
		return 0.0
	}
	return float64(o.TestsTotal-o.TestsFailed) / float64(o.TestsTotal)
}
