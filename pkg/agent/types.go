// Package agent implements the autonomous execution loop that drives one
// task from claim to finalization: conversation state, LLM calls, tool
// dispatch, verification, and cooperative pause/stop.
package agent

import (
	"context"
	"encoding/json"
	"errors"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Content block types.
const (
	BlockText       = "text"
	BlockToolUse    = "tool_use"
	BlockToolResult = "tool_result"
)

// ContentBlock is one part of a conversation message.
type ContentBlock struct {
	Type string

	// Text is set for text blocks.
	Text string

	// ToolUseID, ToolName, Input are set for tool_use blocks.
	ToolUseID string
	ToolName  string
	Input     json.RawMessage

	// Content and IsError are set for tool_result blocks; ToolUseID links
	// the result back to the call.
	Content string
	IsError bool
}

// Message is one turn of the conversation.
type Message struct {
	Role   string
	Blocks []ContentBlock
}

// TextMessage builds a single-block text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Blocks: []ContentBlock{{Type: BlockText, Text: text}}}
}

// ToolDefinition advertises one tool to the model.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}

// Request is one completion call.
type Request struct {
	System    string
	Messages  []Message
	Tools     []ToolDefinition
	MaxTokens int
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID    string
	Name  string
	Input json.RawMessage
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is the model's reply to a Request.
type Response struct {
	// Text is the concatenation of the reply's text blocks.
	Text       string
	ToolCalls  []ToolCall
	Usage      Usage
	StopReason string
}

// ErrRateLimited marks an LLM failure caused by provider rate limiting;
// the loop backs off longer for these.
var ErrRateLimited = errors.New("llm rate limited")

// LLMClient is the model surface the loop depends on. CompleteText is the
// single-shot convenience used by the verifier's semantic judge.
type LLMClient interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	CompleteText(ctx context.Context, system, prompt string) (string, error)
}

// ToolResult is the outcome of executing one tool call.
type ToolResult struct {
	Content string
	IsError bool
}

// ToolExecutor dispatches tool calls against a working tree.
type ToolExecutor interface {
	Definitions() []ToolDefinition
	Execute(ctx context.Context, call ToolCall) ToolResult

	// HasUncommittedChanges and CommitAll expose the working-tree git
	// primitives the loop needs at completion time.
	HasUncommittedChanges(ctx context.Context) (bool, error)
	CommitAll(ctx context.Context, message string) error
}

// Directive is the control plane's answer to a heartbeat.
type Directive struct {
	Stop  bool
	Pause bool
}

// LogKind values mirror the agent_logs log_type enum.
const (
	LogThinking     = "thinking"
	LogToolCall     = "tool_call"
	LogToolResult   = "tool_result"
	LogError        = "error"
	LogInfo         = "info"
	LogStatusChange = "status_change"
)

// LogEntry is one structured log record emitted by the loop.
type LogEntry struct {
	Kind     string
	Content  string
	Metadata map[string]interface{}
}

// VerifyOutcome is the loop-facing view of one verification run.
type VerifyOutcome struct {
	Passed   bool
	Attempt  int
	Feedback string
}

// FinalizeInput reports the loop's terminal outcome to the control plane.
type FinalizeInput struct {
	Success bool
	Summary string
	Error   string
}

// ControlPlane is the narrow server surface the loop talks to. The runner
// package provides an HTTP implementation; tests use an in-process one.
type ControlPlane interface {
	Heartbeat(ctx context.Context, tokensUsed int) (Directive, error)
	AppendLogs(ctx context.Context, entries []LogEntry) error
	Verify(ctx context.Context) (VerifyOutcome, error)
	Finalize(ctx context.Context, in FinalizeInput) error
}
