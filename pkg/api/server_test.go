package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/pkg/coordinator"
	"github.com/louannemur/fleetd/pkg/database"
	"github.com/louannemur/fleetd/pkg/services"
	"github.com/louannemur/fleetd/pkg/verifier"
	testutil "github.com/louannemur/fleetd/test/util"
)

// nullRunner satisfies the verifier without touching the host.
type nullRunner struct{}

func (nullRunner) Run(context.Context, string, string, ...string) (string, string, int, error) {
	return "", "", 0, nil
}

// nullJudge always scores neutral.
type nullJudge struct{}

func (nullJudge) CompleteText(context.Context, string, string) (string, error) {
	return `{"score":0.5,"explanation":"stub"}`, nil
}

type apiEnv struct {
	engine *gin.Engine
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	client := testutil.OpenTestClient(t)
	coord := coordinator.New(client)
	exceptions := services.NewExceptionService(client)
	tasks := services.NewTaskService(client, coord)
	agents := services.NewAgentService(client)
	runners := services.NewRunnerService(client, coord, exceptions)
	verif := verifier.NewService(client, nullRunner{}, nullJudge{}, exceptions)

	server := NewServer(database.NewClientFromEnt(client, nil), tasks, agents, runners, exceptions, verif)
	return &apiEnv{engine: server.Engine()}
}

// do performs a request with an optional JSON body and decodes the envelope.
func (e *apiEnv) do(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	}
	return rec.Code, envelope
}

func dataOf(t *testing.T, envelope map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "expected object data, got %v", envelope)
	return data
}

func TestTasksEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	code, resp := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":       "wire up billing",
		"description": "add the invoice endpoint",
		"priority":    1,
	})
	require.Equal(t, http.StatusOK, code)
	created := dataOf(t, resp)
	taskID := created["id"].(string)
	assert.Equal(t, "queued", created["status"])
	assert.Equal(t, float64(1), created["priority"])

	// Validation failures use the error envelope.
	code, resp = env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_error", resp["error"])
	assert.NotEmpty(t, resp["message"])

	code, resp = env.do(t, http.MethodGet, "/api/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "wire up billing", dataOf(t, resp)["title"])

	code, resp = env.do(t, http.MethodGet, "/api/tasks/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", resp["error"])

	code, resp = env.do(t, http.MethodGet, "/api/tasks?status=queued", nil)
	require.Equal(t, http.StatusOK, code)
	list, ok := resp["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 1)

	code, _ = env.do(t, http.MethodPatch, "/api/tasks/"+taskID, map[string]interface{}{"priority": 0})
	assert.Equal(t, http.StatusOK, code)

	code, resp = env.do(t, http.MethodPost, "/api/tasks/"+taskID+"/cancel", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cancelled", dataOf(t, resp)["status"])

	// Cancelling twice conflicts.
	code, resp = env.do(t, http.MethodPost, "/api/tasks/"+taskID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "state_conflict", resp["error"])
}

func TestRunnerProtocolOverHTTP(t *testing.T) {
	env := newAPIEnv(t)

	// The wire contract registers via POST /api/runner/status.
	code, resp := env.do(t, http.MethodPost, "/api/runner/status", map[string]interface{}{
		"name":       "runner-1",
		"workingDir": "/srv/repo",
	})
	require.Equal(t, http.StatusOK, code)
	session := dataOf(t, resp)["session"].(map[string]interface{})
	token := session["token"].(string)
	require.NotEmpty(t, token)

	code, resp = env.do(t, http.MethodGet, "/api/runner/status?runnerToken="+token, nil)
	require.Equal(t, http.StatusOK, code)
	available := dataOf(t, resp)["availableTasks"].(map[string]interface{})
	assert.Equal(t, float64(0), available["count"])

	code, _ = env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{"title": "claimable"})
	require.Equal(t, http.StatusOK, code)

	code, resp = env.do(t, http.MethodPost, "/api/runner/claim", map[string]interface{}{
		"runnerToken": token,
	})
	require.Equal(t, http.StatusOK, code)
	claim := dataOf(t, resp)
	claimedTask := claim["task"].(map[string]interface{})
	claimedAgent := claim["agent"].(map[string]interface{})
	taskID := claimedTask["id"].(string)
	agentID := claimedAgent["id"].(string)
	assert.NotEmpty(t, claimedAgent["branchName"])

	code, resp = env.do(t, http.MethodPost, "/api/runner/heartbeat", map[string]interface{}{
		"runnerToken": token,
		"agentId":     agentID,
		"taskId":      taskID,
		"tokensUsed":  42,
	})
	require.Equal(t, http.StatusOK, code)
	hb := dataOf(t, resp)
	assert.Equal(t, true, hb["success"])

	code, resp = env.do(t, http.MethodPost, "/api/runner/locks/acquire", map[string]interface{}{
		"runnerToken": token,
		"agentId":     agentID,
		"paths":       []string{"src/a.go"},
	})
	require.Equal(t, http.StatusOK, code)
	locks := dataOf(t, resp)
	assert.Len(t, locks["acquired"], 1)

	code, resp = env.do(t, http.MethodPost, "/api/runner/logs", map[string]interface{}{
		"runnerToken": token,
		"agentId":     agentID,
		"taskId":      taskID,
		"logs": []map[string]interface{}{
			{"logType": "info", "content": "starting"},
		},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), dataOf(t, resp)["appended"])

	code, resp = env.do(t, http.MethodPost, "/api/runner/complete", map[string]interface{}{
		"runnerToken": token,
		"agentId":     agentID,
		"taskId":      taskID,
		"success":     true,
		"summary":     "all done",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, dataOf(t, resp)["finalized"])

	code, resp = env.do(t, http.MethodGet, "/api/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "completed", dataOf(t, resp)["status"])
}

func TestRunnerAuth(t *testing.T) {
	env := newAPIEnv(t)

	code, resp := env.do(t, http.MethodPost, "/api/runner/claim", map[string]interface{}{
		"runnerToken": "bogus",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "unauthorized", resp["error"])

	code, _ = env.do(t, http.MethodGet, "/api/runner/status", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestForeignAgentForbiddenOverHTTP(t *testing.T) {
	env := newAPIEnv(t)

	_, resp := env.do(t, http.MethodPost, "/api/runner/register", map[string]interface{}{
		"name": "owner", "workingDir": "/a",
	})
	ownerToken := dataOf(t, resp)["session"].(map[string]interface{})["token"].(string)

	_, resp = env.do(t, http.MethodPost, "/api/runner/register", map[string]interface{}{
		"name": "intruder", "workingDir": "/b",
	})
	otherToken := dataOf(t, resp)["session"].(map[string]interface{})["token"].(string)

	code, _ := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{"title": "t"})
	require.Equal(t, http.StatusOK, code)

	_, resp = env.do(t, http.MethodPost, "/api/runner/claim", map[string]interface{}{"runnerToken": ownerToken})
	agentID := dataOf(t, resp)["agent"].(map[string]interface{})["id"].(string)

	code, resp = env.do(t, http.MethodPost, "/api/runner/heartbeat", map[string]interface{}{
		"runnerToken": otherToken,
		"agentId":     agentID,
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", resp["error"])
}

func TestAgentEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	_, resp := env.do(t, http.MethodPost, "/api/runner/register", map[string]interface{}{
		"name": "runner-1", "workingDir": "/a",
	})
	token := dataOf(t, resp)["session"].(map[string]interface{})["token"].(string)
	env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{"title": "t"})
	_, resp = env.do(t, http.MethodPost, "/api/runner/claim", map[string]interface{}{"runnerToken": token})
	agentID := dataOf(t, resp)["agent"].(map[string]interface{})["id"].(string)

	code, resp := env.do(t, http.MethodGet, "/api/agents", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["data"], 1)

	code, resp = env.do(t, http.MethodPost, fmt.Sprintf("/api/agents/%s/pause", agentID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "paused", dataOf(t, resp)["status"])

	code, resp = env.do(t, http.MethodPost, fmt.Sprintf("/api/agents/%s/resume", agentID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "working", dataOf(t, resp)["status"])

	code, resp = env.do(t, http.MethodPost, fmt.Sprintf("/api/agents/%s/stop", agentID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "completed", dataOf(t, resp)["status"])

	code, resp = env.do(t, http.MethodPost, fmt.Sprintf("/api/agents/%s/stop", agentID), nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "state_conflict", resp["error"])

	code, _ = env.do(t, http.MethodGet, fmt.Sprintf("/api/agents/%s/logs", agentID), nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestExceptionEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	// Drive a failure through the runner protocol to produce an exception.
	_, resp := env.do(t, http.MethodPost, "/api/runner/register", map[string]interface{}{
		"name": "runner-1", "workingDir": "/a",
	})
	token := dataOf(t, resp)["session"].(map[string]interface{})["token"].(string)
	env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{"title": "t"})
	_, resp = env.do(t, http.MethodPost, "/api/runner/claim", map[string]interface{}{"runnerToken": token})
	claim := dataOf(t, resp)
	env.do(t, http.MethodPost, "/api/runner/complete", map[string]interface{}{
		"runnerToken": token,
		"agentId":     claim["agent"].(map[string]interface{})["id"],
		"taskId":      claim["task"].(map[string]interface{})["id"],
		"success":     false,
		"error":       "broke",
	})

	code, resp := env.do(t, http.MethodGet, "/api/exceptions?status=open", nil)
	require.Equal(t, http.StatusOK, code)
	list := resp["data"].([]interface{})
	require.Len(t, list, 1)
	excID := list[0].(map[string]interface{})["id"].(string)

	code, resp = env.do(t, http.MethodPost, "/api/exceptions/"+excID+"/ack", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "acknowledged", dataOf(t, resp)["status"])

	code, resp = env.do(t, http.MethodPost, "/api/exceptions/"+excID+"/resolve", map[string]interface{}{
		"notes": "fixed by hand",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "resolved", dataOf(t, resp)["status"])

	code, resp = env.do(t, http.MethodPost, "/api/exceptions/"+excID+"/dismiss", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "state_conflict", resp["error"])
}

func TestVerifyEndpointValidation(t *testing.T) {
	env := newAPIEnv(t)

	code, resp := env.do(t, http.MethodPost, "/api/verify", map[string]interface{}{
		"taskId": "only-half",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad_request", resp["error"])
}

func TestRetryEndpointConflicts(t *testing.T) {
	env := newAPIEnv(t)

	code, resp := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{"title": "t"})
	require.Equal(t, http.StatusOK, code)
	taskID := dataOf(t, resp)["id"].(string)

	// Queued tasks cannot be retried.
	code, resp = env.do(t, http.MethodPost, "/api/tasks/"+taskID+"/retry", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "state_conflict", resp["error"])
}
