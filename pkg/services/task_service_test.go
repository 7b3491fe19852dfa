package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/pkg/models"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestCreateTask_Defaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{Title: "fix login"})
	require.NoError(t, err)

	assert.Equal(t, task.StatusQueued, created.Status)
	assert.Equal(t, 2, created.Priority)
	assert.Equal(t, task.RiskLevelMedium, created.RiskLevel)
	assert.Equal(t, 0, created.RetryCount)
	assert.NotEmpty(t, created.ID)
}

func TestCreateTask_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var ve *ValidationError

	_, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)

	_, err = env.tasks.CreateTask(ctx, models.CreateTaskRequest{Title: "x", Priority: intPtr(7)})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "priority", ve.Field)

	_, err = env.tasks.CreateTask(ctx, models.CreateTaskRequest{Title: "x", RiskLevel: "extreme"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "riskLevel", ve.Field)
}

func TestGetTask_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.GetTask(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTasks_StatusFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	seedTask(t, env.client, task.StatusQueued, 2)
	seedTask(t, env.client, task.StatusFailed, 2)

	all, err := env.tasks.ListTasks(ctx, models.ListTasksParams{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	queued, err := env.tasks.ListTasks(ctx, models.ListTasksParams{Status: "queued"})
	require.NoError(t, err)
	assert.Len(t, queued, 2)

	_, err = env.tasks.ListTasks(ctx, models.ListTasksParams{Status: "bogus"})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateTask_OnlyWhileQueued(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	queued := seedTask(t, env.client, task.StatusQueued, 2)
	updated, err := env.tasks.UpdateTask(ctx, queued.ID, models.UpdateTaskRequest{
		Title:    strPtr("renamed"),
		Priority: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, 0, updated.Priority)

	running := seedTask(t, env.client, task.StatusInProgress, 2)
	_, err = env.tasks.UpdateTask(ctx, running.ID, models.UpdateTaskRequest{Title: strPtr("nope")})
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestRetry_RequeuesFailed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	failed := seedTask(t, env.client, task.StatusFailed, 1)
	requeued, err := env.tasks.Retry(ctx, failed.ID)
	require.NoError(t, err)

	assert.Equal(t, task.StatusQueued, requeued.Status)
	assert.Equal(t, 1, requeued.RetryCount)
	assert.Nil(t, requeued.AssignedAgentID)
	assert.Nil(t, requeued.CompletedAt)
	assert.Nil(t, requeued.VerificationStatus)
}

func TestRetry_BudgetExhausted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	failed := seedTask(t, env.client, task.StatusFailed, 2)
	require.NoError(t, env.client.Task.UpdateOneID(failed.ID).SetRetryCount(MaxTaskRetries).Exec(ctx))

	_, err := env.tasks.Retry(ctx, failed.ID)
	assert.ErrorIs(t, err, ErrRetryBudgetExhausted)
}

func TestRetry_WrongState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, status := range []task.Status{task.StatusQueued, task.StatusInProgress, task.StatusCompleted} {
		seeded := seedTask(t, env.client, status, 2)
		_, err := env.tasks.Retry(ctx, seeded.ID)
		assert.ErrorIs(t, err, ErrStateConflict, "status %s", status)
	}

	// Cancelled is retryable.
	cancelled := seedTask(t, env.client, task.StatusCancelled, 2)
	requeued, err := env.tasks.Retry(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, requeued.Status)
}

func TestAutoRetry_RefusesSemanticFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	failed := seedTask(t, env.client, task.StatusFailed, 2)
	seedVerificationResult(t, env.client, failed.ID, resultSpec{
		attempt: 1, syntax: true, types: true, lint: true, tests: true,
		semanticScore: floatPtr(0.3),
	})

	_, err := env.tasks.AutoRetry(ctx, failed.ID)
	assert.ErrorIs(t, err, ErrRetryRefused)
}

func TestAutoRetry_RequeuesSyntaxFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	failed := seedTask(t, env.client, task.StatusFailed, 2)
	seedVerificationResult(t, env.client, failed.ID, resultSpec{
		attempt: 1, syntax: false, types: true, lint: true, tests: true,
	})

	requeued, err := env.tasks.AutoRetry(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, requeued.Status)
	assert.Equal(t, 1, requeued.RetryCount)
}

func TestCancel_ReleasesLocksAndParksAgent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 0)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	require.True(t, env.coord.AcquireLock(ctx, agentID, taskID, "a.go", time.Hour))

	cancelled, err := env.tasks.Cancel(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)
	assert.Nil(t, cancelled.AssignedAgentID)

	assert.False(t, env.coord.IsFileLocked(ctx, "a.go", ""))

	ag, err := env.agents.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, "idle", string(ag.Status))
	assert.Nil(t, ag.CurrentTaskID)
}

func TestCancel_TerminalStatesRefused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, status := range []task.Status{task.StatusCompleted, task.StatusFailed, task.StatusCancelled} {
		seeded := seedTask(t, env.client, status, 2)
		_, err := env.tasks.Cancel(ctx, seeded.ID)
		assert.ErrorIs(t, err, ErrStateConflict, "status %s", status)
	}
}

func TestRun_ClaimsQueuedTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	queued := seedTask(t, env.client, task.StatusQueued, 2)
	registerRunner(t, env, "runner-1")

	started, err := env.tasks.Run(ctx, queued.ID, "")
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, started.Status)
	require.NotNil(t, started.AssignedAgentID)
	assert.NotNil(t, started.StartedAt)
}

func TestRun_FailedTaskIsRetried(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	failed := seedTask(t, env.client, task.StatusFailed, 2)
	requeued, err := env.tasks.Run(ctx, failed.ID, "")
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, requeued.Status)
	assert.Equal(t, 1, requeued.RetryCount)
}

func TestRun_NoRunnerAvailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	queued := seedTask(t, env.client, task.StatusQueued, 2)
	_, err := env.tasks.Run(ctx, queued.ID, "/nowhere")

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "workingDir", ve.Field)
}

func TestCountQueued(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	seedTask(t, env.client, task.StatusQueued, 2)
	seedTask(t, env.client, task.StatusCompleted, 2)

	n, err := env.tasks.CountQueued(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
