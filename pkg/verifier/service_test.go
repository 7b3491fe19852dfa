package verifier

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/ent/verificationresult"
	"github.com/louannemur/fleetd/pkg/services"
	testutil "github.com/louannemur/fleetd/test/util"
)

// stubJudge returns a fixed completion.
type stubJudge struct {
	out string
	err error
}

func (j stubJudge) CompleteText(context.Context, string, string) (string, error) {
	return j.out, j.err
}

// goProjectRunner scripts a healthy Go working tree: clean build, one
// passing test, and a non-empty diff.
func goProjectRunner() *scriptRunner {
	return &scriptRunner{results: map[string]cmdResult{
		"go build ./...": {exitCode: 0},
		"go test ./... -json": {
			stdout: `{"Action":"pass","Package":"example.com/p","Test":"TestOK"}` + "\n",
		},
		"git diff main...HEAD": {stdout: "diff --git a/a.go b/a.go\n+func fixed() {}\n"},
	}}
}

func newVerifyEnv(t *testing.T, runner CommandRunner, llm ChatCompleter) (*ent.Client, *Service) {
	t.Helper()
	client := testutil.OpenTestClient(t)
	return client, NewService(client, runner, llm, services.NewExceptionService(client))
}

func seedVerifiableTask(t *testing.T, client *ent.Client, status task.Status) *ent.Task {
	t.Helper()
	seeded, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle("add fixed()").
		SetDescription("introduce a fixed helper").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return seeded
}

// goDir returns a temp dir that detects as a Go project.
func goDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/p\n")
	return dir
}

func TestVerify_PassSettlesCompleted(t *testing.T) {
	client, s := newVerifyEnv(t, goProjectRunner(), stubJudge{out: `{"score":0.92,"explanation":"does the task"}`})
	ctx := context.Background()

	seeded := seedVerifiableTask(t, client, task.StatusInProgress)
	result, err := s.Verify(ctx, seeded.ID, goDir(t))
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Equal(t, 1, result.AttemptNumber)
	assert.True(t, result.SyntaxPassed)
	assert.True(t, result.TypesPassed)
	assert.True(t, result.LintPassed)
	assert.True(t, result.TestsPassed)
	assert.Equal(t, 1, result.TestsTotal)
	require.NotNil(t, result.SemanticScore)
	assert.InDelta(t, 0.92, *result.SemanticScore, 1e-9)
	assert.InDelta(t, 0.984, result.ConfidenceScore, 1e-9)

	settled, err := client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, settled.Status)
	require.NotNil(t, settled.VerificationStatus)
	assert.Equal(t, task.VerificationStatusPassed, *settled.VerificationStatus)
	assert.NotNil(t, settled.CompletedAt)
	assert.Equal(t, 1, settled.VerificationAttempts)
}

func TestVerify_MechanicalFailureSkipsSemantic(t *testing.T) {
	runner := goProjectRunner()
	runner.results["go build ./..."] = cmdResult{
		stderr:   "pkg/a.go:3:1: syntax error: unexpected if\n",
		exitCode: 1,
	}
	client, s := newVerifyEnv(t, runner, stubJudge{out: `{"score":1,"explanation":"unused"}`})
	ctx := context.Background()

	seeded := seedVerifiableTask(t, client, task.StatusInProgress)
	result, err := s.Verify(ctx, seeded.ID, goDir(t))
	require.NoError(t, err)

	assert.False(t, result.Passed)
	assert.False(t, result.SyntaxPassed)
	assert.Nil(t, result.SemanticScore, "semantic stage must not run")
	assert.NotEmpty(t, result.Failures)
	assert.NotEmpty(t, result.Recommendations)

	settled, err := client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, settled.Status)
	require.NotNil(t, settled.VerificationStatus)
	assert.Equal(t, task.VerificationStatusFailed, *settled.VerificationStatus)
}

func TestVerify_JudgeUnavailableScoresNeutral(t *testing.T) {
	client, s := newVerifyEnv(t, goProjectRunner(), stubJudge{err: errors.New("no llm configured")})
	ctx := context.Background()

	seeded := seedVerifiableTask(t, client, task.StatusInProgress)
	result, err := s.Verify(ctx, seeded.ID, goDir(t))
	require.NoError(t, err)

	require.NotNil(t, result.SemanticScore)
	assert.InDelta(t, 0.5, *result.SemanticScore, 1e-9)
	assert.False(t, result.Passed, "neutral score is below the pass threshold")
}

func TestVerify_AttemptsAccumulateAndEscalate(t *testing.T) {
	runner := goProjectRunner()
	runner.results["go test ./... -json"] = cmdResult{
		stdout:   `{"Action":"fail","Package":"example.com/p","Test":"TestBroken"}` + "\n",
		exitCode: 1,
	}
	client, s := newVerifyEnv(t, runner, stubJudge{out: `{"score":1,"explanation":"unused"}`})
	ctx := context.Background()

	seeded := seedVerifiableTask(t, client, task.StatusInProgress)
	dir := goDir(t)

	for attempt := 1; attempt <= 3; attempt++ {
		result, err := s.Verify(ctx, seeded.ID, dir)
		require.NoError(t, err)
		assert.Equal(t, attempt, result.AttemptNumber)
		assert.False(t, result.Passed)
	}

	rows, err := client.VerificationResult.Query().
		Where(verificationresult.TaskIDEQ(seeded.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, rows, "one row per run, append-only")

	excs, err := client.Exception.Query().
		Where(exception.TypeEQ(exception.TypeVerificationFailed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, excs, 1, "escalated exactly once at the third attempt")
	assert.Equal(t, exception.SeverityWarning, excs[0].Severity)
	require.NotNil(t, excs[0].TaskID)
	assert.Equal(t, seeded.ID, *excs[0].TaskID)
}

func TestVerify_SettlementReleasesAssignment(t *testing.T) {
	client, s := newVerifyEnv(t, goProjectRunner(), stubJudge{out: `{"score":0.92,"explanation":"does the task"}`})
	ctx := context.Background()

	seeded := seedVerifiableTask(t, client, task.StatusInProgress)
	require.NoError(t, client.Task.UpdateOneID(seeded.ID).SetAssignedAgentID("agent-1").Exec(ctx))

	result, err := s.Verify(ctx, seeded.ID, goDir(t))
	require.NoError(t, err)
	require.True(t, result.Passed)

	settled, err := client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, settled.Status)
	assert.Nil(t, settled.AssignedAgentID, "completed tasks carry no assignment")
	assert.NotNil(t, settled.CompletedAt)
}

func TestVerify_FailureSettlesTerminal(t *testing.T) {
	runner := goProjectRunner()
	runner.results["go build ./..."] = cmdResult{
		stderr:   "pkg/a.go:3:1: syntax error: unexpected if\n",
		exitCode: 1,
	}
	client, s := newVerifyEnv(t, runner, stubJudge{out: "{}"})
	ctx := context.Background()

	seeded := seedVerifiableTask(t, client, task.StatusInProgress)
	require.NoError(t, client.Task.UpdateOneID(seeded.ID).SetAssignedAgentID("agent-1").Exec(ctx))

	result, err := s.Verify(ctx, seeded.ID, goDir(t))
	require.NoError(t, err)
	require.False(t, result.Passed)

	settled, err := client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, settled.Status)
	assert.Nil(t, settled.AssignedAgentID, "failed tasks carry no assignment")
	assert.NotNil(t, settled.CompletedAt, "failed is terminal until a retry clears it")
}

func TestVerify_WrongStateAndMissing(t *testing.T) {
	client, s := newVerifyEnv(t, goProjectRunner(), stubJudge{out: "{}"})
	ctx := context.Background()

	queued := seedVerifiableTask(t, client, task.StatusQueued)
	_, err := s.Verify(ctx, queued.ID, goDir(t))
	assert.ErrorIs(t, err, services.ErrStateConflict)

	_, err = s.Verify(ctx, "missing", goDir(t))
	assert.ErrorIs(t, err, services.ErrNotFound)

	completed := seedVerifiableTask(t, client, task.StatusCompleted)
	_, err = s.Verify(ctx, completed.ID, goDir(t))
	assert.ErrorIs(t, err, services.ErrStateConflict)
}

func TestVerify_RetryFromFailedState(t *testing.T) {
	client, s := newVerifyEnv(t, goProjectRunner(), stubJudge{out: `{"score":0.8,"explanation":"fixed now"}`})
	ctx := context.Background()

	seeded := seedVerifiableTask(t, client, task.StatusFailed)
	result, err := s.Verify(ctx, seeded.ID, goDir(t))
	require.NoError(t, err)
	assert.True(t, result.Passed)

	settled, err := client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, settled.Status)
}
