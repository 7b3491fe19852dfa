package verifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJudgment_StrictJSON(t *testing.T) {
	score, explanation := parseJudgment(`{"score": 0.85, "explanation": "implements the task"}`)
	assert.InDelta(t, 0.85, score, 1e-9)
	assert.Equal(t, "implements the task", explanation)
}

func TestParseJudgment_CodeFenced(t *testing.T) {
	raw := "Here is my assessment:\n```json\n{\"score\": 0.9, \"explanation\": \"looks right\"}\n```\nDone."
	score, explanation := parseJudgment(raw)
	assert.InDelta(t, 0.9, score, 1e-9)
	assert.Equal(t, "looks right", explanation)
}

func TestParseJudgment_RepairedJSON(t *testing.T) {
	// Trailing comma and single quotes: invalid JSON that jsonrepair fixes.
	score, explanation := parseJudgment(`{'score': 0.6, 'explanation': 'partial work',}`)
	assert.InDelta(t, 0.6, score, 1e-9)
	assert.Equal(t, "partial work", explanation)
}

func TestParseJudgment_RegexFallback(t *testing.T) {
	score, explanation := parseJudgment("I would give this a score: 0.75 overall, good effort.")
	assert.InDelta(t, 0.75, score, 1e-9)
	assert.Contains(t, explanation, "recovered")
}

func TestParseJudgment_NeutralDefault(t *testing.T) {
	score, explanation := parseJudgment("complete gibberish with no rating at all")
	assert.InDelta(t, 0.5, score, 1e-9)
	assert.Contains(t, explanation, "unparseable")
}

func TestParseJudgment_ClampsOutOfRange(t *testing.T) {
	score, _ := parseJudgment(`{"score": 12, "explanation": "over-enthusiastic"}`)
	assert.InDelta(t, 1.0, score, 1e-9)

	score, _ = parseJudgment(`{"score": -3, "explanation": "harsh"}`)
	assert.InDelta(t, 0.0, score, 1e-9)
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONObject(`prefix {"a":1} suffix`))
	assert.Equal(t, "no braces here", extractJSONObject("no braces here"))
	assert.Equal(t, `{"outer":{"inner":2}}`, extractJSONObject(`x{"outer":{"inner":2}}y`))
}

func TestTruncateDiff(t *testing.T) {
	small := "diff --git a/a.go b/a.go"
	assert.Equal(t, small, truncateDiff(small))

	big := strings.Repeat("x", maxDiffBytes+100)
	got := truncateDiff(big)
	assert.Len(t, got, maxDiffBytes+len("\n... [diff truncated]"))
	assert.True(t, strings.HasSuffix(got, "[diff truncated]"))
}
