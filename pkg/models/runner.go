// Package models defines the request/response DTOs shared between the
// service layer, the HTTP boundary, and the runner protocol client.
package models

import "time"

// RegisterRunnerRequest is the body of POST /api/runner/register.
type RegisterRunnerRequest struct {
	Name       string `json:"name"`
	WorkingDir string `json:"workingDir"`
}

// RunnerSessionInfo is returned on registration. The token is only ever
// returned to the registering caller.
type RunnerSessionInfo struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// RegisterRunnerResponse wraps the session info.
type RegisterRunnerResponse struct {
	Session RunnerSessionInfo `json:"session"`
}

// RunnerStatusResponse reports queue depth to a polling runner.
type RunnerStatusResponse struct {
	AvailableTasks AvailableTasks `json:"availableTasks"`
}

// AvailableTasks carries the queued-task count.
type AvailableTasks struct {
	Count int `json:"count"`
}

// ClaimRequest is the body of POST /api/runner/claim.
type ClaimRequest struct {
	RunnerToken string `json:"runnerToken"`
	WorkingDir  string `json:"workingDir"`
}

// ClaimedTask is the task view handed to a runner on a successful claim.
type ClaimedTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	RiskLevel   string   `json:"riskLevel"`
	FilesHint   []string `json:"filesHint"`
}

// ClaimedAgent identifies the agent created for a claim.
type ClaimedAgent struct {
	ID         string `json:"id"`
	BranchName string `json:"branchName"`
}

// ClaimResponse is the result of a claim attempt. Task and Agent are nil
// when no queued task could be claimed.
type ClaimResponse struct {
	Task  *ClaimedTask  `json:"task"`
	Agent *ClaimedAgent `json:"agent"`
}

// HeartbeatRequest is the body of POST /api/runner/heartbeat.
type HeartbeatRequest struct {
	RunnerToken string `json:"runnerToken"`
	AgentID     string `json:"agentId"`
	TaskID      string `json:"taskId,omitempty"`
	TokensUsed  int    `json:"tokensUsed,omitempty"`
}

// HeartbeatResponse acknowledges a heartbeat. Stop and Pause are
/// cooperative hints: the loop acts on them at its next iteration boundary.
type HeartbeatResponse struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
	Stop      bool      `json:"stop,omitempty"`
	Pause     bool      `json:"pause,omitempty"`
}

// LogEntry is one structured log line in a batch upload.
type LogEntry struct {
	LogType  string                 `json:"logType"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// AppendLogsRequest is the body of POST /api/runner/logs.
type AppendLogsRequest struct {
	RunnerToken string     `json:"runnerToken"`
	AgentID     string     `json:"agentId"`
	TaskID      string     `json:"taskId"`
	Logs        []LogEntry `json:"logs"`
}

// CompleteRequest is the body of POST /api/runner/complete.
type CompleteRequest struct {
	RunnerToken string `json:"runnerToken"`
	AgentID     string `json:"agentId"`
	TaskID      string `json:"taskId"`
	Success     bool   `json:"success"`
	Summary     string `json:"summary,omitempty"`
	Error       string `json:"error,omitempty"`
}

// AcquireLocksRequest is the body of POST /api/runner/locks/acquire.
// All-or-nothing: on any conflict every lock acquired in the call is
// released again and returned in Failed.
type AcquireLocksRequest struct {
	RunnerToken string   `json:"runnerToken"`
	AgentID     string   `json:"agentId"`
	TaskID      string   `json:"taskId"`
	Paths       []string `json:"paths"`
}

// AcquireLocksResponse reports the per-path outcome of a batch acquire.
type AcquireLocksResponse struct {
	Acquired []string `json:"acquired"`
	Failed   []string `json:"failed"`
}

// ReleaseLocksRequest is the body of POST /api/runner/locks/release.
// Empty Paths releases every lock held by the agent.
type ReleaseLocksRequest struct {
	RunnerToken string   `json:"runnerToken"`
	AgentID     string   `json:"agentId"`
	Paths       []string `json:"paths,omitempty"`
}
