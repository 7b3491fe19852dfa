package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent/agentlog"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/pkg/models"
)

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var ve *ValidationError

	_, err := env.runners.Register(ctx, models.RegisterRunnerRequest{WorkingDir: "/w"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = env.runners.Register(ctx, models.RegisterRunnerRequest{Name: "r"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "workingDir", ve.Field)
}

func TestRegister_ReactivatesInactiveSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sessionID, firstToken := registerRunner(t, env, "runner-1")

	// Deactivate, then register again under the same name.
	require.NoError(t, env.client.RunnerSession.UpdateOneID(sessionID).SetIsActive(false).Exec(ctx))

	resp, err := env.runners.Register(ctx, models.RegisterRunnerRequest{
		Name:       "runner-1",
		WorkingDir: "/srv/work",
	})
	require.NoError(t, err)

	assert.Equal(t, sessionID, resp.Session.ID, "inactive session is reused")
	assert.NotEqual(t, firstToken, resp.Session.Token, "reactivation rotates the token")

	sess, err := env.client.RunnerSession.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, sess.IsActive)
	assert.Equal(t, "/srv/work", sess.WorkingDir)

	// The old token is dead.
	_, err = env.runners.ValidateSession(ctx, firstToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_ActiveSameNameGetsNewSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	firstID, firstToken := registerRunner(t, env, "runner-1")

	resp, err := env.runners.Register(ctx, models.RegisterRunnerRequest{
		Name:       "runner-1",
		WorkingDir: "/other",
	})
	require.NoError(t, err)

	assert.NotEqual(t, firstID, resp.Session.ID, "active session is never hijacked")
	assert.NotEqual(t, firstToken, resp.Session.Token)

	// Both tokens remain valid.
	_, err = env.runners.ValidateSession(ctx, firstToken)
	assert.NoError(t, err)
	_, err = env.runners.ValidateSession(ctx, resp.Session.Token)
	assert.NoError(t, err)
}

func TestValidateSession_Unauthorized(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.runners.ValidateSession(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.runners.ValidateSession(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStatus_ReportsQueueDepth(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, token := registerRunner(t, env, "runner-1")
	seedTask(t, env.client, task.StatusQueued, 2)
	seedTask(t, env.client, task.StatusQueued, 2)
	seedTask(t, env.client, task.StatusInProgress, 2)

	resp, err := env.runners.Status(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.AvailableTasks.Count)
}

func TestClaim_PriorityThenFIFO(t *testing.T) {
	env := newTestEnv(t)

	low := seedTask(t, env.client, task.StatusQueued, 3)
	urgentFirst := seedTask(t, env.client, task.StatusQueued, 0)
	urgentSecond := seedTask(t, env.client, task.StatusQueued, 0)
	_ = low

	_, token := registerRunner(t, env, "runner-1")

	firstID, _ := claimOne(t, env, token)
	assert.Equal(t, urgentFirst.ID, firstID, "lowest priority value first")

	secondID, _ := claimOne(t, env, token)
	assert.Equal(t, urgentSecond.ID, secondID, "FIFO within a priority")
}

func TestClaim_EmptyQueue(t *testing.T) {
	env := newTestEnv(t)
	_, token := registerRunner(t, env, "runner-1")

	resp, err := env.runners.Claim(context.Background(), models.ClaimRequest{RunnerToken: token})
	require.NoError(t, err)
	assert.Nil(t, resp.Task)
	assert.Nil(t, resp.Agent)
}

func TestClaim_BindsAgentAndTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seeded := seedTask(t, env.client, task.StatusQueued, 2)
	sessionID, token := registerRunner(t, env, "runner-1")

	taskID, agentID := claimOne(t, env, token)
	assert.Equal(t, seeded.ID, taskID)

	claimed, err := env.client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.AssignedAgentID)
	assert.Equal(t, agentID, *claimed.AssignedAgentID)
	assert.NotNil(t, claimed.StartedAt)
	require.NotNil(t, claimed.BranchName)
	assert.True(t, strings.HasPrefix(*claimed.BranchName, "agent/"))

	ag, err := env.client.Agent.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, "working", string(ag.Status))
	require.NotNil(t, ag.CurrentTaskID)
	assert.Equal(t, taskID, *ag.CurrentTaskID)
	assert.Equal(t, sessionID, ag.RunnerSessionID)
	assert.Equal(t, *claimed.BranchName, ag.BranchName)
}

func TestClaim_ConcurrentSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")

	const claimers = 4
	var wg sync.WaitGroup
	winners := make(chan string, claimers)
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := env.runners.Claim(ctx, models.ClaimRequest{RunnerToken: token})
			if err == nil && resp.Task != nil {
				winners <- resp.Agent.ID
			}
		}()
	}
	wg.Wait()
	close(winners)

	var won []string
	for id := range winners {
		won = append(won, id)
	}
	require.Len(t, won, 1, "one task must be claimed exactly once")

	// Losing claim transactions must not leave orphan agents behind.
	n, err := env.client.Agent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHeartbeat_StopOnCancelledTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	resp, stop, err := env.runners.Heartbeat(ctx, models.HeartbeatRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
		TokensUsed:  120,
	})
	require.NoError(t, err)
	assert.False(t, stop)
	assert.False(t, resp.Stop)
	assert.False(t, resp.Pause)

	ag, err := env.client.Agent.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, 120, ag.TotalTokensUsed)
	assert.NotNil(t, ag.LastActivityAt)

	_, err = env.tasks.Cancel(ctx, taskID)
	require.NoError(t, err)

	resp, stop, err = env.runners.Heartbeat(ctx, models.HeartbeatRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
	})
	require.NoError(t, err)
	assert.True(t, stop)
	assert.True(t, resp.Stop)
}

func TestHeartbeat_PauseHint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	_, err := env.agents.Pause(ctx, agentID)
	require.NoError(t, err)

	resp, stop, err := env.runners.Heartbeat(ctx, models.HeartbeatRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
	})
	require.NoError(t, err)
	assert.False(t, stop, "paused is not stopped")
	assert.True(t, resp.Pause)
}

func TestHeartbeat_ForeignAgentForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, ownerToken := registerRunner(t, env, "runner-1")
	_, otherToken := registerRunner(t, env, "runner-2")
	taskID, agentID := claimOne(t, env, ownerToken)

	_, _, err := env.runners.Heartbeat(ctx, models.HeartbeatRequest{
		RunnerToken: otherToken,
		AgentID:     agentID,
		TaskID:      taskID,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAppendLogs_TruncatesAndOrders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	huge := strings.Repeat("x", maxLogContentBytes+512)
	err := env.runners.AppendLogs(ctx, models.AppendLogsRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
		Logs: []models.LogEntry{
			{LogType: "thinking", Content: "first"},
			{LogType: "tool_call", Content: huge},
			{LogType: "tool_result", Content: "third"},
		},
	})
	require.NoError(t, err)

	logs, err := env.client.AgentLog.Query().
		Where(agentlog.AgentIDEQ(agentID)).
		Order(agentlog.ByCreatedAt()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 3)

	assert.Equal(t, "first", logs[0].Content)
	assert.Len(t, logs[1].Content, maxLogContentBytes)
	assert.Equal(t, "third", logs[2].Content)
	assert.True(t, logs[0].CreatedAt.Before(logs[1].CreatedAt))
	assert.True(t, logs[1].CreatedAt.Before(logs[2].CreatedAt))
}

func TestAppendLogs_UnknownLogType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	err := env.runners.AppendLogs(ctx, models.AppendLogsRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
		Logs:        []models.LogEntry{{LogType: "telepathy", Content: "?"}},
	})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestComplete_SuccessSettlesEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)
	require.True(t, env.coord.AcquireLock(ctx, agentID, taskID, "src/a.go", time.Hour))

	err := env.runners.Complete(ctx, models.CompleteRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
		Success:     true,
		Summary:     "done",
	})
	require.NoError(t, err)

	settled, err := env.client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, settled.Status)
	assert.NotNil(t, settled.CompletedAt)
	assert.Nil(t, settled.AssignedAgentID)

	ag, err := env.client.Agent.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, "idle", string(ag.Status))
	assert.Equal(t, 1, ag.TasksCompleted)
	assert.Nil(t, ag.CurrentTaskID)
	assert.NotNil(t, ag.CompletedAt)

	assert.False(t, env.coord.IsFileLocked(ctx, "src/a.go", ""))
}

func TestComplete_FailureRaisesException(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	err := env.runners.Complete(ctx, models.CompleteRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
		Success:     false,
		Error:       "agent stalled",
	})
	require.NoError(t, err)

	settled, err := env.client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, settled.Status)

	ag, err := env.client.Agent.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(ag.Status))
	assert.Equal(t, 1, ag.TasksFailed)

	excs, err := env.client.Exception.Query().
		Where(exception.TaskIDEQ(taskID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, excs, 1)
	assert.Equal(t, exception.TypeTaskFailure, excs[0].Type)
	assert.Equal(t, "agent stalled", excs[0].Description)
}

func TestComplete_NoDuplicateExceptionAfterVerification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	// Verification already escalated for this task.
	_, err := env.exceptions.Create(ctx, ExceptionInput{
		Type:     exception.TypeVerificationFailed,
		Severity: exception.SeverityWarning,
		Title:    "Verification failed after 3 attempts",
		TaskID:   taskID,
	})
	require.NoError(t, err)

	err = env.runners.Complete(ctx, models.CompleteRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
		Success:     false,
		Error:       "verification exhausted",
	})
	require.NoError(t, err)

	n, err := env.client.Exception.Query().
		Where(exception.TaskIDEQ(taskID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "no TASK_FAILURE on top of VERIFICATION_FAILED")
}

func TestAcquireLocks_DefaultsToCurrentTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	resp, err := env.runners.AcquireLocks(ctx, models.AcquireLocksRequest{
		RunnerToken: token,
		AgentID:     agentID,
		Paths:       []string{"a.go", "b.go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.go", "b.go"}, resp.Acquired)
	assert.Empty(t, resp.Failed)

	lock, err := env.client.FileLock.Query().First(ctx)
	require.NoError(t, err)
	assert.Equal(t, taskID, lock.TaskID)
}

func TestReleaseLocks_EmptyPathsReleasesAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	_, agentID := claimOne(t, env, token)

	_, err := env.runners.AcquireLocks(ctx, models.AcquireLocksRequest{
		RunnerToken: token,
		AgentID:     agentID,
		Paths:       []string{"a.go", "b.go"},
	})
	require.NoError(t, err)

	err = env.runners.ReleaseLocks(ctx, models.ReleaseLocksRequest{
		RunnerToken: token,
		AgentID:     agentID,
	})
	require.NoError(t, err)

	assert.False(t, env.coord.IsFileLocked(ctx, "a.go", ""))
	assert.False(t, env.coord.IsFileLocked(ctx, "b.go", ""))
}
