// Package verifier scores whether a working tree satisfies its task by
// running a fixed pipeline of checks: syntax, types, lint, tests, and an
// LLM-judged semantic review. It observes only; it never edits files.
package verifier

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// CheckFailure is one diagnostic produced by a pipeline stage.
type CheckFailure struct {
	Check   string `json:"check"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// Outcome is the in-memory result of one pipeline run, before persistence.
type Outcome struct {
	SyntaxPassed bool
	TypesPassed  bool
	LintPassed   bool
	TestsPassed  bool
	TestsTotal   int
	TestsFailed  int

	// SemanticRan is false when an earlier stage failed and the semantic
	// stage was skipped.
	SemanticRan         bool
	SemanticScore       float64
	SemanticExplanation string

	Failures        []CheckFailure
	Recommendations []string
}

// CommandRunner abstracts subprocess execution so the pipeline can be
// driven by stubs in tests.
type CommandRunner interface {
	// Run executes name with args in dir, honoring ctx cancellation.
	// A non-zero exit is not an error; it is reported via exitCode.
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// ChatCompleter is the narrow LLM surface the semantic stage needs.
type ChatCompleter interface {
	CompleteText(ctx context.Context, system, prompt string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	exitCode := 0
	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
			runErr = nil
		} else {
			exitCode = -1
		}
	}
	return stdout.String(), stderr.String(), exitCode, runErr
}

const (
	// testBudget is the wall budget for the test stage.
	testBudget = 5 * time.Minute

	// checkBudget bounds the compile and lint stages.
	checkBudget = 2 * time.Minute

	// maxDiffBytes caps the diff handed to the semantic judge.
	maxDiffBytes = 10 * 1024

	// SemanticPassThreshold is the minimum semantic score for an overall pass.
	SemanticPassThreshold = 0.7
)
