package verifier

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// tsDiagRe matches tsc diagnostics: "src/a.ts(12,5): error TS2345: msg".
var tsDiagRe = regexp.MustCompile(`^(.+?)\((\d+),\d+\): error (TS\d+): (.*)$`)

// goDiagRe matches go compiler diagnostics: "pkg/a.go:12:5: msg".
var goDiagRe = regexp.MustCompile(`^(.+?\.go):(\d+):\d+: (.*)$`)

// runCompile performs the non-emitting compile and splits diagnostics into
// syntax and type classes. Untyped projects pass both checks vacuously.
func (s *Service) runCompile(ctx context.Context, dir string, info projectInfo) (syntaxFailures, typeFailures []CheckFailure) {
	if !info.Typed {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, checkBudget)
	defer cancel()

	switch info.Kind {
	case kindTypeScript:
		stdout, stderr, exitCode, err := s.runner.Run(ctx, dir, "npx", "tsc", "--noEmit", "--pretty", "false")
		if err != nil {
			return nil, []CheckFailure{{Check: "types", Message: "tsc did not run: " + err.Error()}}
		}
		if exitCode == 0 {
			return nil, nil
		}
		for _, line := range strings.Split(stdout+"\n"+stderr, "\n") {
			m := tsDiagRe.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			lineNo, _ := strconv.Atoi(m[2])
			failure := CheckFailure{Message: m[4], File: m[1], Line: lineNo}
			// TS1xxx codes are scanner/parser errors; everything else is a
			// type diagnostic.
			if strings.HasPrefix(m[3], "TS1") {
				failure.Check = "syntax"
				syntaxFailures = append(syntaxFailures, failure)
			} else {
				failure.Check = "types"
				typeFailures = append(typeFailures, failure)
			}
		}
		if exitCode != 0 && len(syntaxFailures)+len(typeFailures) == 0 {
			typeFailures = append(typeFailures, CheckFailure{Check: "types", Message: "tsc exited non-zero with unparsed output"})
		}
		return syntaxFailures, typeFailures

	case kindGo:
		_, stderr, exitCode, err := s.runner.Run(ctx, dir, "go", "build", "./...")
		if err != nil {
			return nil, []CheckFailure{{Check: "types", Message: "go build did not run: " + err.Error()}}
		}
		if exitCode == 0 {
			return nil, nil
		}
		for _, line := range strings.Split(stderr, "\n") {
			m := goDiagRe.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			lineNo, _ := strconv.Atoi(m[2])
			failure := CheckFailure{Message: m[3], File: m[1], Line: lineNo}
			if strings.Contains(m[3], "syntax error") || strings.Contains(m[3], "expected") {
				failure.Check = "syntax"
				syntaxFailures = append(syntaxFailures, failure)
			} else {
				failure.Check = "types"
				typeFailures = append(typeFailures, failure)
			}
		}
		if len(syntaxFailures)+len(typeFailures) == 0 {
			typeFailures = append(typeFailures, CheckFailure{Check: "types", Message: "go build exited non-zero with unparsed output"})
		}
		return syntaxFailures, typeFailures
	}

	return nil, nil
}

// runLint executes the configured linter and keeps only error-severity
// records. Projects without a linter pass vacuously.
func (s *Service) runLint(ctx context.Context, dir string, info projectInfo) []CheckFailure {
	if !info.HasLinter {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, checkBudget)
	defer cancel()

	switch info.Kind {
	case kindTypeScript:
		stdout, _, _, err := s.runner.Run(ctx, dir, "npx", "eslint", ".", "--format", "json")
		if err != nil {
			return nil // linter unavailable is not a lint failure
		}
		var reports []struct {
			FilePath string `json:"filePath"`
			Messages []struct {
				Severity int    `json:"severity"`
				Line     int    `json:"line"`
				Message  string `json:"message"`
			} `json:"messages"`
		}
		if err := json.Unmarshal([]byte(stdout), &reports); err != nil {
			return nil
		}
		var failures []CheckFailure
		for _, report := range reports {
			for _, msg := range report.Messages {
				if msg.Severity != 2 {
					continue
				}
				failures = append(failures, CheckFailure{
					Check:   "lint",
					Message: msg.Message,
					File:    report.FilePath,
					Line:    msg.Line,
				})
			}
		}
		return failures

	case kindGo:
		stdout, _, _, err := s.runner.Run(ctx, dir, "golangci-lint", "run", "--out-format", "json")
		if err != nil {
			return nil
		}
		var report struct {
			Issues []struct {
				Text string `json:"Text"`
				Pos  struct {
					Filename string `json:"Filename"`
					Line     int    `json:"Line"`
				} `json:"Pos"`
			} `json:"Issues"`
		}
		if err := json.Unmarshal([]byte(stdout), &report); err != nil {
			return nil
		}
		var failures []CheckFailure
		for _, issue := range report.Issues {
			failures = append(failures, CheckFailure{
				Check:   "lint",
				Message: issue.Text,
				File:    issue.Pos.Filename,
				Line:    issue.Pos.Line,
			})
		}
		return failures
	}

	return nil
}

// runTests executes the detected test runner in CI-safe mode under the
// 5-minute budget and parses structured output for totals and failures.
// A zero total with a passing exit means the project has no tests.
func (s *Service) runTests(ctx context.Context, dir string, info projectInfo) (total, failed int, failures []CheckFailure) {
	if !info.HasTests {
		return 0, 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, testBudget)
	defer cancel()

	switch info.Kind {
	case kindGo:
		return s.runGoTests(ctx, dir)
	case kindTypeScript:
		return s.runNodeTests(ctx, dir)
	}
	return 0, 0, nil
}

func (s *Service) runGoTests(ctx context.Context, dir string) (total, failed int, failures []CheckFailure) {
	stdout, _, exitCode, err := s.runner.Run(ctx, dir, "go", "test", "./...", "-json")
	if err != nil {
		return 0, 1, []CheckFailure{{Check: "tests", Message: "go test did not run: " + err.Error()}}
	}

	type testEvent struct {
		Action  string `json:"Action"`
		Package string `json:"Package"`
		Test    string `json:"Test"`
		Output  string `json:"Output"`
	}
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var ev testEvent
		if json.Unmarshal([]byte(line), &ev) != nil || ev.Test == "" {
			continue
		}
		switch ev.Action {
		case "pass":
			total++
		case "fail":
			total++
			failed++
			failures = append(failures, CheckFailure{
				Check:   "tests",
				Message: ev.Package + "." + ev.Test + " failed",
			})
		}
	}
	if exitCode != 0 && failed == 0 {
		// Build failure inside the test binary, or panic outside any test.
		failed = 1
		if total == 0 {
			total = 1
		}
		failures = append(failures, CheckFailure{Check: "tests", Message: "go test exited non-zero"})
	}
	return total, failed, failures
}

func (s *Service) runNodeTests(ctx context.Context, dir string) (total, failed int, failures []CheckFailure) {
	// vitest and jest share the summary JSON shape.
	args := []string{"vitest", "run", "--reporter=json"}
	if !fileExists(dir+"/vitest.config.ts") && !fileExists(dir+"/vitest.config.js") && !fileExists(dir+"/vitest.config.mts") {
		args = []string{"jest", "--json", "--ci"}
	}
	stdout, _, exitCode, err := s.runner.Run(ctx, dir, "npx", args...)
	if err != nil {
		return 0, 1, []CheckFailure{{Check: "tests", Message: "test runner did not run: " + err.Error()}}
	}

	var summary struct {
		NumTotalTests  int `json:"numTotalTests"`
		NumFailedTests int `json:"numFailedTests"`
		TestResults    []struct {
			Name             string `json:"name"`
			AssertionResults []struct {
				Status          string   `json:"status"`
				Title           string   `json:"title"`
				FailureMessages []string `json:"failureMessages"`
			} `json:"assertionResults"`
		} `json:"testResults"`
	}

	// Runners sometimes prefix the JSON with log noise; start at the first brace.
	if idx := strings.Index(stdout, "{"); idx >= 0 {
		stdout = stdout[idx:]
	}
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		if exitCode == 0 {
			return 0, 0, nil
		}
		return 1, 1, []CheckFailure{{Check: "tests", Message: "test runner exited non-zero with unparsed output"}}
	}

	for _, result := range summary.TestResults {
		for _, assertion := range result.AssertionResults {
			if assertion.Status != "failed" {
				continue
			}
			msg := assertion.Title
			if len(assertion.FailureMessages) > 0 {
				msg += ": " + firstLine(assertion.FailureMessages[0])
			}
			failures = append(failures, CheckFailure{Check: "tests", Message: msg, File: result.Name})
		}
	}
	return summary.NumTotalTests, summary.NumFailedTests, failures
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
