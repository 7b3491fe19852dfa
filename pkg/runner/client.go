// Package runner is the control-plane client side: the HTTP protocol
// client, the agent.ControlPlane adapter, and the polling worker that turns
// claimed tasks into running agent loops.
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/louannemur/fleetd/pkg/models"
)

// Client speaks the runner wire protocol against one control plane.
type Client struct {
	baseURL    string
	httpClient *http.Client

	name       string
	workingDir string

	sessionID string
	token     string
}

// NewClient creates an unregistered protocol client.
func NewClient(baseURL, name, workingDir string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		name:       name,
		workingDir: workingDir,
	}
}

// Token returns the session token after registration.
func (c *Client) Token() string { return c.token }

// Register obtains a session and stores its token for subsequent calls.
func (c *Client) Register(ctx context.Context) error {
	var resp models.RegisterRunnerResponse
	err := c.post(ctx, "/api/runner/register", models.RegisterRunnerRequest{
		Name:       c.name,
		WorkingDir: c.workingDir,
	}, &resp)
	if err != nil {
		return err
	}
	c.sessionID = resp.Session.ID
	c.token = resp.Session.Token
	return nil
}

// QueuedCount polls the queue depth.
func (c *Client) QueuedCount(ctx context.Context) (int, error) {
	var resp models.RunnerStatusResponse
	path := "/api/runner/status?runnerToken=" + url.QueryEscape(c.token)
	if err := c.get(ctx, path, &resp); err != nil {
		return 0, err
	}
	return resp.AvailableTasks.Count, nil
}

// Claim attempts to claim the next queued task. Task and Agent are nil when
// the queue is empty.
func (c *Client) Claim(ctx context.Context) (*models.ClaimResponse, error) {
	var resp models.ClaimResponse
	err := c.post(ctx, "/api/runner/claim", models.ClaimRequest{
		RunnerToken: c.token,
		WorkingDir:  c.workingDir,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Heartbeat reports liveness and token usage for an agent.
func (c *Client) Heartbeat(ctx context.Context, agentID, taskID string, tokensUsed int) (*models.HeartbeatResponse, error) {
	var resp models.HeartbeatResponse
	err := c.post(ctx, "/api/runner/heartbeat", models.HeartbeatRequest{
		RunnerToken: c.token,
		AgentID:     agentID,
		TaskID:      taskID,
		TokensUsed:  tokensUsed,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AppendLogs uploads a batch of structured log entries.
func (c *Client) AppendLogs(ctx context.Context, agentID, taskID string, logs []models.LogEntry) error {
	return c.post(ctx, "/api/runner/logs", models.AppendLogsRequest{
		RunnerToken: c.token,
		AgentID:     agentID,
		TaskID:      taskID,
		Logs:        logs,
	}, nil)
}

// Complete reports the terminal outcome of an agent run.
func (c *Client) Complete(ctx context.Context, agentID, taskID string, success bool, summary, errMsg string) error {
	return c.post(ctx, "/api/runner/complete", models.CompleteRequest{
		RunnerToken: c.token,
		AgentID:     agentID,
		TaskID:      taskID,
		Success:     success,
		Summary:     summary,
		Error:       errMsg,
	}, nil)
}

// AcquireLocks requests an all-or-nothing batch of file locks.
func (c *Client) AcquireLocks(ctx context.Context, agentID, taskID string, paths []string) (*models.AcquireLocksResponse, error) {
	var resp models.AcquireLocksResponse
	err := c.post(ctx, "/api/runner/locks/acquire", models.AcquireLocksRequest{
		RunnerToken: c.token,
		AgentID:     agentID,
		TaskID:      taskID,
		Paths:       paths,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReleaseLocks releases named paths, or everything when paths is empty.
func (c *Client) ReleaseLocks(ctx context.Context, agentID string, paths []string) error {
	return c.post(ctx, "/api/runner/locks/release", models.ReleaseLocksRequest{
		RunnerToken: c.token,
		AgentID:     agentID,
		Paths:       paths,
	}, nil)
}

// VerificationView is the client-side projection of a verification result.
// SemanticScore is nil when the semantic stage was skipped.
type VerificationView struct {
	Passed          bool                     `json:"passed"`
	AttemptNumber   int                      `json:"attempt_number"`
	ConfidenceScore float64                  `json:"confidence_score"`
	SyntaxPassed    bool                     `json:"syntax_passed"`
	TypesPassed     bool                     `json:"types_passed"`
	LintPassed      bool                     `json:"lint_passed"`
	TestsPassed     bool                     `json:"tests_passed"`
	SemanticScore   *float64                 `json:"semantic_score"`
	Failures        []map[string]interface{} `json:"failures"`
	Recommendations []string                 `json:"recommendations"`
}

// Verify runs the verification pipeline for a task.
func (c *Client) Verify(ctx context.Context, taskID string) (*VerificationView, error) {
	var resp VerificationView
	err := c.post(ctx, "/api/verify", models.VerifyRequest{
		TaskID:     taskID,
		WorkingDir: c.workingDir,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// apiError is a non-2xx control-plane response.
type apiError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("control plane returned %d (%s): %s", e.StatusCode, e.Kind, e.Message)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("control plane unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var envelope struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &envelope)
		return &apiError{StatusCode: resp.StatusCode, Kind: envelope.Error, Message: envelope.Message}
	}

	if out == nil {
		return nil
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
