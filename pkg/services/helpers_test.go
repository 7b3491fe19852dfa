package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/pkg/coordinator"
	"github.com/louannemur/fleetd/pkg/models"
	testutil "github.com/louannemur/fleetd/test/util"
)

// testEnv bundles the services under test over one in-memory database.
type testEnv struct {
	client     *ent.Client
	coord      *coordinator.Coordinator
	tasks      *TaskService
	runners    *RunnerService
	agents     *AgentService
	exceptions *ExceptionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	client := testutil.OpenTestClient(t)
	coord := coordinator.New(client)
	exceptions := NewExceptionService(client)
	return &testEnv{
		client:     client,
		coord:      coord,
		tasks:      NewTaskService(client, coord),
		runners:    NewRunnerService(client, coord, exceptions),
		agents:     NewAgentService(client),
		exceptions: exceptions,
	}
}

// seedTask inserts a task directly, bypassing the service validation.
func seedTask(t *testing.T, client *ent.Client, status task.Status, priority int) *ent.Task {
	t.Helper()
	created, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle("seed task").
		SetStatus(status).
		SetPriority(priority).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

// registerRunner registers a session and returns its token.
func registerRunner(t *testing.T, env *testEnv, name string) (sessionID, token string) {
	t.Helper()
	resp, err := env.runners.Register(context.Background(), models.RegisterRunnerRequest{
		Name:       name,
		WorkingDir: "/tmp/" + name,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Session.Token)
	return resp.Session.ID, resp.Session.Token
}

func floatPtr(f float64) *float64 { return &f }

// resultSpec describes a seeded verification result row.
type resultSpec struct {
	attempt       int
	passed        bool
	syntax        bool
	types         bool
	lint          bool
	tests         bool
	testsTotal    int
	testsFailed   int
	semanticScore *float64
}

// seedVerificationResult inserts a verification result row directly.
func seedVerificationResult(t *testing.T, client *ent.Client, taskID string, spec resultSpec) *ent.VerificationResult {
	t.Helper()
	builder := client.VerificationResult.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetAttemptNumber(spec.attempt).
		SetPassed(spec.passed).
		SetConfidenceScore(0).
		SetSyntaxPassed(spec.syntax).
		SetTypesPassed(spec.types).
		SetLintPassed(spec.lint).
		SetTestsPassed(spec.tests).
		SetTestsTotal(spec.testsTotal).
		SetTestsFailed(spec.testsFailed)
	if spec.semanticScore != nil {
		builder.SetSemanticScore(*spec.semanticScore)
	}
	res, err := builder.Save(context.Background())
	require.NoError(t, err)
	return res
}

// claimOne claims a task for the session and returns the claimed agent ID.
func claimOne(t *testing.T, env *testEnv, token string) (taskID, agentID string) {
	t.Helper()
	resp, err := env.runners.Claim(context.Background(), models.ClaimRequest{RunnerToken: token})
	require.NoError(t, err)
	require.NotNil(t, resp.Task, "expected a claimable task")
	require.NotNil(t, resp.Agent)
	return resp.Task.ID, resp.Agent.ID
}
