package verifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/pkg/services"
)

// humanReviewAttempts is the attempt count at which repeated verification
// failures are escalated to an operator.
const humanReviewAttempts = 3

// Service runs the verification pipeline against a task's working tree and
// persists one VerificationResult per run.
type Service struct {
	client     *ent.Client
	runner     CommandRunner
	llm        ChatCompleter
	exceptions *services.ExceptionService
	logger     *slog.Logger
}

// NewService creates a new verification service.
func NewService(client *ent.Client, runner CommandRunner, llm ChatCompleter, exceptions *services.ExceptionService) *Service {
	return &Service{
		client:     client,
		runner:     runner,
		llm:        llm,
		exceptions: exceptions,
		logger:     slog.Default().With("component", "verifier"),
	}
}

// Verify runs the full pipeline for a task and settles its terminal status.
//
// The attempt counter is bumped atomically together with the move to
// VERIFYING, before any check runs, so a crash mid-pipeline still consumes
// the attempt. Exactly one VerificationResult row is appended per call.
func (s *Service) Verify(ctx context.Context, taskID, workingDir string) (*ent.VerificationResult, error) {
	n, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusIn(task.StatusInProgress, task.StatusVerifying, task.StatusFailed),
		).
		SetStatus(task.StatusVerifying).
		AddVerificationAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start verification: %w", err)
	}
	if n == 0 {
		exists, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query task: %w", err)
		}
		if !exists {
			return nil, services.ErrNotFound
		}
		return nil, services.ErrStateConflict
	}

	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	s.logger.Info("verification started",
		"task_id", taskID,
		"attempt", t.VerificationAttempts,
		"working_dir", workingDir)

	outcome := s.runPipeline(ctx, workingDir, t.Title, t.Description)
	passed := Passed(outcome)
	confidence := ConfidenceScore(outcome)

	result, err := s.persistResult(ctx, t, outcome, passed, confidence)
	if err != nil {
		return nil, err
	}

	if err := s.settleTask(ctx, t, passed); err != nil {
		return nil, err
	}

	if !passed && t.VerificationAttempts >= humanReviewAttempts {
		if err := s.escalate(ctx, t, confidence); err != nil {
			s.logger.Error("failed to raise verification exception", "task_id", taskID, "error", err)
		}
	}

	s.logger.Info("verification finished",
		"task_id", taskID,
		"passed", passed,
		"confidence", confidence,
		"tests_total", outcome.TestsTotal,
		"tests_failed", outcome.TestsFailed)
	return result, nil
}

// runPipeline executes the stages in order. The semantic judge runs only
// when every mechanical check passed; its budget is wasted otherwise.
func (s *Service) runPipeline(ctx context.Context, dir, title, description string) Outcome {
	info := detectProject(dir)

	syntaxFailures, typeFailures := s.runCompile(ctx, dir, info)
	lintFailures := s.runLint(ctx, dir, info)
	testsTotal, testsFailed, testFailures := s.runTests(ctx, dir, info)

	outcome := Outcome{
		SyntaxPassed: len(syntaxFailures) == 0,
		TypesPassed:  len(typeFailures) == 0,
		LintPassed:   len(lintFailures) == 0,
		TestsPassed:  testsFailed == 0,
		TestsTotal:   testsTotal,
		TestsFailed:  testsFailed,
	}
	outcome.Failures = append(outcome.Failures, syntaxFailures...)
	outcome.Failures = append(outcome.Failures, typeFailures...)
	outcome.Failures = append(outcome.Failures, lintFailures...)
	outcome.Failures = append(outcome.Failures, testFailures...)

	if outcome.SyntaxPassed && outcome.TypesPassed && outcome.LintPassed && outcome.TestsPassed {
		outcome.SemanticRan = true
		outcome.SemanticScore, outcome.SemanticExplanation = s.runSemantic(ctx, dir, title, description)
		if outcome.SemanticScore < SemanticPassThreshold {
			outcome.Failures = append(outcome.Failures, CheckFailure{
				Check:   "semantic",
				Message: outcome.SemanticExplanation,
			})
		}
	}

	outcome.Recommendations = recommendations(outcome)
	return outcome
}

func (s *Service) persistResult(ctx context.Context, t *ent.Task, o Outcome, passed bool, confidence float64) (*ent.VerificationResult, error) {
	failures := make([]map[string]interface{}, 0, len(o.Failures))
	for _, f := range o.Failures {
		record := map[string]interface{}{
			"check":   f.Check,
			"message": f.Message,
		}
		if f.File != "" {
			record["file"] = f.File
		}
		if f.Line > 0 {
			record["line"] = f.Line
		}
		failures = append(failures, record)
	}

	builder := s.client.VerificationResult.Create().
		SetID(uuid.New().String()).
		SetTaskID(t.ID).
		SetAttemptNumber(t.VerificationAttempts).
		SetPassed(passed).
		SetConfidenceScore(confidence).
		SetSyntaxPassed(o.SyntaxPassed).
		SetTypesPassed(o.TypesPassed).
		SetLintPassed(o.LintPassed).
		SetTestsPassed(o.TestsPassed).
		SetTestsTotal(o.TestsTotal).
		SetTestsFailed(o.TestsFailed).
		SetFailures(failures).
		SetRecommendations(o.Recommendations)
	if o.SemanticRan {
		builder.SetSemanticScore(o.SemanticScore).
			SetSemanticExplanation(o.SemanticExplanation)
	}

	result, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save verification result: %w", err)
	}
	return result, nil
}

// settleTask moves the task out of VERIFYING. The update is conditional so
// an operator cancel that raced the pipeline wins.
func (s *Service) settleTask(ctx context.Context, t *ent.Task, passed bool) error {
	target := task.StatusFailed
	verification := task.VerificationStatusFailed
	if passed {
		target = task.StatusCompleted
		verification = task.VerificationStatusPassed
	}

	// Both branches are terminal: the assignment is released and the
	// completion timestamp set either way. A retry clears them again.
	update := s.client.Task.Update().
		Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusVerifying)).
		SetStatus(target).
		SetVerificationStatus(verification).
		SetCompletedAt(time.Now()).
		ClearAssignedAgentID()
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to settle task: %w", err)
	}
	return nil
}

func (s *Service) escalate(ctx context.Context, t *ent.Task, confidence float64) error {
	agentID := ""
	if t.AssignedAgentID != nil {
		agentID = *t.AssignedAgentID
	}
	_, err := s.exceptions.EnsureOpen(ctx, services.ExceptionInput{
		Type:            exception.TypeVerificationFailed,
		Severity:        exception.SeverityWarning,
		Title:           fmt.Sprintf("Task failed verification %d times", t.VerificationAttempts),
		Description:     fmt.Sprintf("%q keeps failing verification (latest confidence %.2f). Automatic retries are unlikely to converge.", t.Title, confidence),
		SuggestedAction: "Review the verification failures and either fix the task description or resolve the issue manually",
		AgentID:         agentID,
		TaskID:          t.ID,
	})
	return err
}

// recommendations turns failure classes into operator-facing next steps,
// one per failing check.
func recommendations(o Outcome) []string {
	var recs []string
	if !o.SyntaxPassed {
		recs = append(recs, "Fix the syntax errors before anything else; later checks are unreliable until the code parses")
	}
	if !o.TypesPassed {
		recs = append(recs, "Resolve the type errors reported by the compiler")
	}
	if !o.LintPassed {
		recs = append(recs, "Address the lint violations or adjust the linter configuration if a rule is wrong for this project")
	}
	if !o.TestsPassed {
		recs = append(recs, fmt.Sprintf("Fix the %d failing test(s); run the suite locally to reproduce", o.TestsFailed))
	}
	if o.SemanticRan && o.SemanticScore < SemanticPassThreshold {
		recs = append(recs, "The changes do not appear to accomplish the task; re-read the task description and compare it against the diff")
	}
	return recs
}
