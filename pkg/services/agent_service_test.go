package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/pkg/models"
)

func TestAgentPauseResumeStop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	_, agentID := claimOne(t, env, token)

	paused, err := env.agents.Pause(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusPaused, paused.Status)

	// Pausing a paused agent conflicts.
	_, err = env.agents.Pause(ctx, agentID)
	assert.ErrorIs(t, err, ErrStateConflict)

	resumed, err := env.agents.Resume(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, resumed.Status)

	stopped, err := env.agents.Stop(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCompleted, stopped.Status)

	// Completed agents accept no further control.
	_, err = env.agents.Resume(ctx, agentID)
	assert.ErrorIs(t, err, ErrStateConflict)
	_, err = env.agents.Stop(ctx, agentID)
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestAgentStop_FromPaused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	_, agentID := claimOne(t, env, token)

	_, err := env.agents.Pause(ctx, agentID)
	require.NoError(t, err)

	stopped, err := env.agents.Stop(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusCompleted, stopped.Status)
}

func TestAgentControl_NotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.agents.Pause(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = env.agents.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentList_StatusFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	_, first := claimOne(t, env, token)
	claimOne(t, env, token)

	_, err := env.agents.Pause(ctx, first)
	require.NoError(t, err)

	all, err := env.agents.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	working, err := env.agents.List(ctx, "working", 0)
	require.NoError(t, err)
	assert.Len(t, working, 1)

	_, err = env.agents.List(ctx, "bogus", 0)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAgentLogs_Chronological(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedTask(t, env.client, task.StatusQueued, 2)
	_, token := registerRunner(t, env, "runner-1")
	taskID, agentID := claimOne(t, env, token)

	err := env.runners.AppendLogs(ctx, models.AppendLogsRequest{
		RunnerToken: token,
		AgentID:     agentID,
		TaskID:      taskID,
		Logs: []models.LogEntry{
			{LogType: "info", Content: "one"},
			{LogType: "info", Content: "two"},
			{LogType: "info", Content: "three"},
		},
	})
	require.NoError(t, err)

	logs, err := env.agents.Logs(ctx, agentID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "one", logs[0].Content)
	assert.Equal(t, "three", logs[2].Content)

	_, err = env.agents.Logs(ctx, "missing", 0)
	assert.ErrorIs(t, err, ErrNotFound)
}
