package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

const semanticSystemPrompt = `You are a strict code reviewer. You receive a task description and a unified diff of the changes made for it. Judge whether the changes actually accomplish the task.

Respond with ONLY a JSON object, no prose, no code fences:
{"score": <number between 0.0 and 1.0>, "explanation": "<one or two sentences>"}

Score 1.0 means the diff fully and correctly implements the task. Score 0.0 means the diff is unrelated or actively wrong. Penalize incomplete work, ignored requirements, and changes unrelated to the task.`

// scoreRe extracts a bare score when the judge's output is not valid JSON
// even after repair.
var scoreRe = regexp.MustCompile(`"?score"?\s*[:=]\s*([01](?:\.\d+)?|\.\d+)`)

// runSemantic asks the LLM judge to score the working tree's diff against
// the task description. It never fails the run: when the diff or the judge
// is unavailable the stage reports a neutral 0.5.
func (s *Service) runSemantic(ctx context.Context, dir, title, description string) (score float64, explanation string) {
	diff := s.collectDiff(ctx, dir)
	if diff == "" {
		return 0.0, "no changes found in the working tree"
	}

	prompt := fmt.Sprintf("Task: %s\n\n%s\n\nDiff:\n```diff\n%s\n```", title, description, diff)
	raw, err := s.llm.CompleteText(ctx, semanticSystemPrompt, prompt)
	if err != nil {
		return 0.5, "semantic judge unavailable: " + err.Error()
	}
	return parseJudgment(raw)
}

// collectDiff produces the unified diff of the task's work, preferring the
// merge base with the default branch and falling back to the previous
// commit, truncated to the judge's budget.
func (s *Service) collectDiff(ctx context.Context, dir string) string {
	for _, ref := range []string{"main...HEAD", "master...HEAD", "HEAD~1..HEAD"} {
		stdout, _, exitCode, err := s.runner.Run(ctx, dir, "git", "diff", ref)
		if err != nil || exitCode != 0 {
			continue
		}
		if diff := strings.TrimSpace(stdout); diff != "" {
			return truncateDiff(diff)
		}
	}

	// Uncommitted work, or a repository with a single commit.
	stdout, _, exitCode, err := s.runner.Run(ctx, dir, "git", "diff", "HEAD")
	if err != nil || exitCode != 0 {
		return ""
	}
	return truncateDiff(strings.TrimSpace(stdout))
}

func truncateDiff(diff string) string {
	if len(diff) <= maxDiffBytes {
		return diff
	}
	return diff[:maxDiffBytes] + "\n... [diff truncated]"
}

// parseJudgment decodes the judge's {score, explanation} object. Models
// drift from strict JSON, so decoding is layered: strict first, then
// jsonrepair, then a bare regex scrape, then a neutral default.
func parseJudgment(raw string) (float64, string) {
	var judgment struct {
		Score       float64 `json:"score"`
		Explanation string  `json:"explanation"`
	}

	candidate := extractJSONObject(raw)
	if json.Unmarshal([]byte(candidate), &judgment) == nil && judgment.Explanation != "" {
		return clampScore(judgment.Score), judgment.Explanation
	}

	if repaired, err := jsonrepair.JSONRepair(candidate); err == nil {
		if json.Unmarshal([]byte(repaired), &judgment) == nil && judgment.Explanation != "" {
			return clampScore(judgment.Score), judgment.Explanation
		}
	}

	if m := scoreRe.FindStringSubmatch(raw); m != nil {
		if score, err := strconv.ParseFloat(m[1], 64); err == nil {
			return clampScore(score), "score recovered from malformed judge output"
		}
	}

	return 0.5, "judge output unparseable; defaulted to neutral score"
}

// extractJSONObject strips code fences and surrounding prose, keeping the
// outermost brace-delimited object.
func extractJSONObject(raw string) string {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return raw
	}
	return raw[start : end+1]
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
