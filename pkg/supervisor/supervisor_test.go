package supervisor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/pkg/coordinator"
	"github.com/louannemur/fleetd/pkg/services"
	testutil "github.com/louannemur/fleetd/test/util"
)

type supEnv struct {
	client *ent.Client
	coord  *coordinator.Coordinator
	sup    *Service
}

func newSupEnv(t *testing.T) *supEnv {
	t.Helper()
	client := testutil.OpenTestClient(t)
	coord := coordinator.New(client)
	exceptions := services.NewExceptionService(client)
	tasks := services.NewTaskService(client, coord)
	return &supEnv{
		client: client,
		coord:  coord,
		sup:    NewService(client, coord, tasks, exceptions, 0),
	}
}

func seedAgent(t *testing.T, client *ent.Client, status agent.Status, taskID string, lastActivity time.Time) *ent.Agent {
	t.Helper()
	builder := client.Agent.Create().
		SetID(uuid.New().String()).
		SetName("agent-test").
		SetStatus(status).
		SetBranchName("agent/test").
		SetRunnerSessionID("sess-1").
		SetWorkingDir("/work").
		SetLastActivityAt(lastActivity)
	if taskID != "" {
		builder.SetCurrentTaskID(taskID)
	}
	ag, err := builder.Save(context.Background())
	require.NoError(t, err)
	return ag
}

func seedFailedTask(t *testing.T, client *ent.Client, retryCount int, updatedAt time.Time) *ent.Task {
	t.Helper()
	seeded, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle("failing task").
		SetStatus(task.StatusFailed).
		SetRetryCount(retryCount).
		Save(context.Background())
	require.NoError(t, err)
	// Anchor the retry delay in the past.
	require.NoError(t, client.Task.UpdateOneID(seeded.ID).SetUpdatedAt(updatedAt).Exec(context.Background()))
	return seeded
}

func seedResult(t *testing.T, client *ent.Client, taskID string, syntax, types, lint, tests bool, semantic *float64) {
	t.Helper()
	builder := client.VerificationResult.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetAttemptNumber(1).
		SetPassed(false).
		SetConfidenceScore(0).
		SetSyntaxPassed(syntax).
		SetTypesPassed(types).
		SetLintPassed(lint).
		SetTestsPassed(tests)
	if semantic != nil {
		builder.SetSemanticScore(*semantic)
	}
	require.NoError(t, builder.Exec(context.Background()))
}

func TestDetectStuckAgents(t *testing.T) {
	env := newSupEnv(t)
	ctx := context.Background()

	stuckTask, err := env.client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle("abandoned work").
		SetStatus(task.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	stale := time.Now().Add(-stuckThreshold - time.Minute)
	stuck := seedAgent(t, env.client, agent.StatusWorking, stuckTask.ID, stale)
	healthy := seedAgent(t, env.client, agent.StatusWorking, "", time.Now())

	require.True(t, env.coord.AcquireLock(ctx, stuck.ID, stuckTask.ID, "a.go", time.Hour))

	require.NoError(t, env.sup.detectStuckAgents(ctx))

	failedAgent, err := env.client.Agent.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusFailed, failedAgent.Status)
	assert.Equal(t, 1, failedAgent.TasksFailed)
	assert.NotNil(t, failedAgent.CompletedAt)
	assert.Nil(t, failedAgent.CurrentTaskID, "failed agents carry no task binding")

	untouched, err := env.client.Agent.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, untouched.Status)

	failedTask, err := env.client.Task.Get(ctx, stuckTask.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failedTask.Status)
	assert.Nil(t, failedTask.AssignedAgentID)

	assert.False(t, env.coord.IsFileLocked(ctx, "a.go", ""))

	excs, err := env.client.Exception.Query().
		Where(exception.TypeEQ(exception.TypeAgentStuck)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, excs, 1)
	require.NotNil(t, excs[0].AgentID)
	assert.Equal(t, stuck.ID, *excs[0].AgentID)
}

func TestRunPass_CleansExpiredLocks(t *testing.T) {
	env := newSupEnv(t)
	ctx := context.Background()

	require.True(t, env.coord.AcquireLock(ctx, "agent-1", "task-1", "old.go", time.Millisecond))
	require.True(t, env.coord.AcquireLock(ctx, "agent-1", "task-1", "live.go", time.Hour))
	time.Sleep(5 * time.Millisecond)

	env.sup.RunPass(ctx)

	assert.False(t, env.coord.IsFileLocked(ctx, "old.go", ""))
	assert.True(t, env.coord.IsFileLocked(ctx, "live.go", ""))
}

func TestScheduleRetries_RequeuesWhenDue(t *testing.T) {
	env := newSupEnv(t)
	ctx := context.Background()

	seeded := seedFailedTask(t, env.client, 0, time.Now().Add(-time.Minute))
	seedResult(t, env.client, seeded.ID, false, true, true, true, nil) // syntax: 5s delay

	require.NoError(t, env.sup.scheduleRetries(ctx))

	requeued, err := env.client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, requeued.Status)
	assert.Equal(t, 1, requeued.RetryCount)
}

func TestScheduleRetries_WaitsForDelay(t *testing.T) {
	env := newSupEnv(t)
	ctx := context.Background()

	seeded := seedFailedTask(t, env.client, 0, time.Now())
	seedResult(t, env.client, seeded.ID, false, true, true, true, nil)

	require.NoError(t, env.sup.scheduleRetries(ctx))

	still, err := env.client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, still.Status, "delay has not elapsed")
}

func TestScheduleRetries_SemanticFailureEscalates(t *testing.T) {
	env := newSupEnv(t)
	ctx := context.Background()

	low := 0.2
	seeded := seedFailedTask(t, env.client, 0, time.Now().Add(-time.Hour))
	seedResult(t, env.client, seeded.ID, true, true, true, true, &low)

	require.NoError(t, env.sup.scheduleRetries(ctx))

	still, err := env.client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, still.Status, "semantic failures are never auto-retried")

	excs, err := env.client.Exception.Query().
		Where(exception.TypeEQ(exception.TypeTaskFailure)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, excs, 1)
	assert.Contains(t, excs[0].Title, "SEMANTIC_ERROR")

	// A second pass does not duplicate the escalation.
	require.NoError(t, env.sup.scheduleRetries(ctx))
	n, err := env.client.Exception.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScheduleRetries_BudgetSpentEscalatesForReview(t *testing.T) {
	env := newSupEnv(t)
	ctx := context.Background()

	// TEST_FAILURE allows 2 attempts and wants review afterwards.
	seeded := seedFailedTask(t, env.client, 2, time.Now().Add(-time.Hour))
	seedResult(t, env.client, seeded.ID, true, true, true, false, nil)

	require.NoError(t, env.sup.scheduleRetries(ctx))

	still, err := env.client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, still.Status)

	n, err := env.client.Exception.Query().
		Where(exception.TypeEQ(exception.TypeTaskFailure)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScheduleRetries_NoResultClassifiesUnknown(t *testing.T) {
	env := newSupEnv(t)
	ctx := context.Background()

	// UNKNOWN: one attempt allowed, 30s delay, review when spent.
	seeded := seedFailedTask(t, env.client, 0, time.Now().Add(-time.Minute))

	require.NoError(t, env.sup.scheduleRetries(ctx))

	requeued, err := env.client.Task.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, requeued.Status)
}
