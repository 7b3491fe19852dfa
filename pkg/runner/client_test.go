package runner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/pkg/models"
)

// fakePlane is a minimal control plane that records requests and serves
// canned envelope responses.
type fakePlane struct {
	mux      *http.ServeMux
	requests map[string]json.RawMessage
}

func newFakePlane() *fakePlane {
	return &fakePlane{mux: http.NewServeMux(), requests: map[string]json.RawMessage{}}
}

func (p *fakePlane) handle(path string, status int, body string) {
	p.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		p.requests[path] = raw
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (p *fakePlane) serve(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(p.mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_RegisterStoresToken(t *testing.T) {
	plane := newFakePlane()
	plane.handle("/api/runner/register", http.StatusOK,
		`{"data":{"session":{"id":"sess-1","token":"tok-abc"}}}`)
	srv := plane.serve(t)

	c := NewClient(srv.URL, "runner-1", "/work")
	require.NoError(t, c.Register(context.Background()))
	assert.Equal(t, "tok-abc", c.Token())

	var req models.RegisterRunnerRequest
	require.NoError(t, json.Unmarshal(plane.requests["/api/runner/register"], &req))
	assert.Equal(t, "runner-1", req.Name)
	assert.Equal(t, "/work", req.WorkingDir)
}

func TestClient_QueuedCountSendsTokenInQuery(t *testing.T) {
	plane := newFakePlane()
	var gotToken string
	plane.mux.HandleFunc("/api/runner/status", func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("runnerToken")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"availableTasks":{"count":4}}}`))
	})
	srv := plane.serve(t)

	c := NewClient(srv.URL, "runner-1", "/work")
	c.token = "tok&special"
	count, err := c.QueuedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, "tok&special", gotToken)
}

func TestClient_ClaimCarriesTokenAndWorkingDir(t *testing.T) {
	plane := newFakePlane()
	plane.handle("/api/runner/claim", http.StatusOK,
		`{"data":{"task":{"id":"task-1","title":"fix it"},"agent":{"id":"agent-1","branchName":"agent/fix-it"}}}`)
	srv := plane.serve(t)

	c := NewClient(srv.URL, "runner-1", "/work")
	c.token = "tok-1"
	claim, err := c.Claim(context.Background())
	require.NoError(t, err)
	require.NotNil(t, claim.Task)
	require.NotNil(t, claim.Agent)
	assert.Equal(t, "task-1", claim.Task.ID)
	assert.Equal(t, "agent/fix-it", claim.Agent.BranchName)

	var req models.ClaimRequest
	require.NoError(t, json.Unmarshal(plane.requests["/api/runner/claim"], &req))
	assert.Equal(t, "tok-1", req.RunnerToken)
	assert.Equal(t, "/work", req.WorkingDir)
}

func TestClient_ClaimEmptyQueue(t *testing.T) {
	plane := newFakePlane()
	plane.handle("/api/runner/claim", http.StatusOK, `{"data":{"task":null,"agent":null}}`)
	srv := plane.serve(t)

	c := NewClient(srv.URL, "runner-1", "/work")
	claim, err := c.Claim(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claim.Task)
	assert.Nil(t, claim.Agent)
}

func TestClient_ErrorEnvelopeBecomesAPIError(t *testing.T) {
	plane := newFakePlane()
	plane.handle("/api/runner/heartbeat", http.StatusUnauthorized,
		`{"error":"unauthorized","message":"invalid or expired runner token"}`)
	srv := plane.serve(t)

	c := NewClient(srv.URL, "runner-1", "/work")
	_, err := c.Heartbeat(context.Background(), "agent-1", "task-1", 0)
	require.Error(t, err)

	var apiErr *apiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "unauthorized", apiErr.Kind)
	assert.Contains(t, apiErr.Message, "runner token")
}

func TestClient_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "runner-1", "/work")
	err := c.AppendLogs(context.Background(), "agent-1", "task-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "control plane unreachable")
}

func TestControlPlane_AcquireAllOrNothing(t *testing.T) {
	plane := newFakePlane()
	plane.handle("/api/runner/locks/acquire", http.StatusOK,
		`{"data":{"acquired":[],"failed":["src/main.go"]}}`)
	srv := plane.serve(t)

	c := NewClient(srv.URL, "runner-1", "/work")
	cp := NewControlPlane(c, "agent-1", "task-1")

	ok, err := cp.Acquire(context.Background(), "src/main.go")
	require.NoError(t, err)
	assert.False(t, ok, "any failed path means the batch did not acquire")

	var req models.AcquireLocksRequest
	require.NoError(t, json.Unmarshal(plane.requests["/api/runner/locks/acquire"], &req))
	assert.Equal(t, []string{"src/main.go"}, req.Paths)
	assert.Equal(t, "agent-1", req.AgentID)
	assert.Equal(t, "task-1", req.TaskID)
}

func TestControlPlane_HeartbeatDirectives(t *testing.T) {
	plane := newFakePlane()
	plane.handle("/api/runner/heartbeat", http.StatusOK,
		`{"data":{"success":true,"timestamp":"2026-01-02T03:04:05Z","stop":true}}`)
	srv := plane.serve(t)

	c := NewClient(srv.URL, "runner-1", "/work")
	cp := NewControlPlane(c, "agent-1", "task-1")

	directive, err := cp.Heartbeat(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, directive.Stop)
	assert.False(t, directive.Pause)

	var req models.HeartbeatRequest
	require.NoError(t, json.Unmarshal(plane.requests["/api/runner/heartbeat"], &req))
	assert.Equal(t, 42, req.TokensUsed)
}

func TestFormatFeedback(t *testing.T) {
	view := &VerificationView{
		Passed:          false,
		AttemptNumber:   2,
		ConfidenceScore: 0.65,
		SyntaxPassed:    true,
		TypesPassed:     true,
		Failures: []map[string]interface{}{
			{"check": "tests", "message": "saves: expected 1 to be 2", "file": "store_test.go", "line": float64(12)},
			{"check": "lint", "message": "unused variable x"},
		},
		Recommendations: []string{"Fix failing tests before retrying"},
	}

	out := formatFeedback(view)
	assert.Contains(t, out, "Verification attempt 2 failed (confidence 0.65).")
	assert.Contains(t, out, "- syntax: PASSED\n- types: PASSED\n- lint: FAILED\n- tests: FAILED\n- semantic: SKIPPED")
	assert.Contains(t, out, "- [tests] saves: expected 1 to be 2 (store_test.go:12)")
	assert.Contains(t, out, "- [lint] unused variable x\n")
	assert.Contains(t, out, "Recommendations:\n- Fix failing tests before retrying")
}

func TestFormatFeedback_SemanticStatus(t *testing.T) {
	low := 0.3
	out := formatFeedback(&VerificationView{
		AttemptNumber: 1,
		SyntaxPassed:  true, TypesPassed: true, LintPassed: true, TestsPassed: true,
		SemanticScore: &low,
		Failures: []map[string]interface{}{
			{"check": "semantic", "message": "changes do not match the task"},
		},
	})
	assert.Contains(t, out, "- semantic: FAILED (0.30)")

	high := 0.9
	out = formatFeedback(&VerificationView{
		AttemptNumber: 1,
		SyntaxPassed:  true, TypesPassed: true, LintPassed: true, TestsPassed: true,
		SemanticScore: &high,
	})
	assert.Contains(t, out, "- semantic: PASSED (0.90)")
}

func TestFormatFeedback_NoFailureSections(t *testing.T) {
	out := formatFeedback(&VerificationView{AttemptNumber: 1, ConfidenceScore: 0.4})
	assert.Contains(t, out, "Verification attempt 1 failed (confidence 0.40).")
	assert.Contains(t, out, "- semantic: SKIPPED")
	assert.NotContains(t, out, "Failures:")
	assert.NotContains(t, out, "Recommendations:")
}
