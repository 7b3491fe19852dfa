package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM replays a fixed sequence of responses and records every
// request it receives.
type scriptedLLM struct {
	responses []*Response
	err       error
	requests  []*Request
}

func (m *scriptedLLM) Complete(_ context.Context, req *Request) (*Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return nil, errors.New("script exhausted")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

func (m *scriptedLLM) CompleteText(context.Context, string, string) (string, error) {
	return "", errors.New("not scripted")
}

// fakeCP is an in-process control plane double.
type fakeCP struct {
	directives []Directive
	heartbeats int
	tokens     []int

	logs      []LogEntry
	verifies  []VerifyOutcome
	verifyErr error
	finalized []FinalizeInput
}

func (c *fakeCP) Heartbeat(_ context.Context, tokensUsed int) (Directive, error) {
	d := Directive{}
	if c.heartbeats < len(c.directives) {
		d = c.directives[c.heartbeats]
	}
	c.heartbeats++
	c.tokens = append(c.tokens, tokensUsed)
	return d, nil
}

func (c *fakeCP) AppendLogs(_ context.Context, entries []LogEntry) error {
	c.logs = append(c.logs, entries...)
	return nil
}

func (c *fakeCP) Verify(context.Context) (VerifyOutcome, error) {
	if c.verifyErr != nil {
		return VerifyOutcome{}, c.verifyErr
	}
	if len(c.verifies) == 0 {
		return VerifyOutcome{}, errors.New("verify script exhausted")
	}
	out := c.verifies[0]
	c.verifies = c.verifies[1:]
	return out, nil
}

func (c *fakeCP) Finalize(_ context.Context, in FinalizeInput) error {
	c.finalized = append(c.finalized, in)
	return nil
}

// fakeTools answers every tool by name from a fixed table.
type fakeTools struct {
	results  map[string]ToolResult
	executed []ToolCall
	dirty    bool
	commits  []string
}

func (tl *fakeTools) Definitions() []ToolDefinition { return nil }

func (tl *fakeTools) Execute(_ context.Context, call ToolCall) ToolResult {
	tl.executed = append(tl.executed, call)
	if res, ok := tl.results[call.Name]; ok {
		return res
	}
	return ToolResult{Content: "ok"}
}

func (tl *fakeTools) HasUncommittedChanges(context.Context) (bool, error) { return tl.dirty, nil }

func (tl *fakeTools) CommitAll(_ context.Context, message string) error {
	tl.commits = append(tl.commits, message)
	return nil
}

func toolResp(id, name, input string) *Response {
	return &Response{ToolCalls: []ToolCall{{ID: id, Name: name, Input: json.RawMessage(input)}}}
}

func newTestLoop(llm LLMClient, tools ToolExecutor, cp ControlPlane, cfg Config) *Loop {
	return NewLoop(llm, tools, cp, Task{ID: "t1", Title: "fix the widget"}, cfg)
}

func TestRun_ToolCallThenComplete(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "read_file", `{"path":"main.go"}`),
		toolResp("c2", "task_complete", `{"summary":"widget fixed"}`),
	}}
	llm.responses[0].Usage = Usage{InputTokens: 100, OutputTokens: 20}
	tools := &fakeTools{results: map[string]ToolResult{"read_file": {Content: "package main"}}}
	cp := &fakeCP{verifies: []VerifyOutcome{{Passed: true, Attempt: 1}}}

	require.NoError(t, newTestLoop(llm, tools, cp, Config{}).Run(context.Background()))

	require.Len(t, tools.executed, 1)
	assert.Equal(t, "read_file", tools.executed[0].Name)

	require.Len(t, cp.finalized, 1)
	assert.True(t, cp.finalized[0].Success)
	assert.Equal(t, "widget fixed", cp.finalized[0].Summary)

	// Token usage travels on the next heartbeat.
	assert.Equal(t, 2, cp.heartbeats)
	assert.Equal(t, 0, cp.tokens[0])
	assert.Equal(t, 120, cp.tokens[1])
}

func TestRun_CommitsDirtyTreeBeforeVerify(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "task_complete", `{"summary":"replaced the \"widget\" shim"}`),
	}}
	tools := &fakeTools{dirty: true}
	cp := &fakeCP{verifies: []VerifyOutcome{{Passed: true, Attempt: 1}}}

	require.NoError(t, newTestLoop(llm, tools, cp, Config{}).Run(context.Background()))

	require.Len(t, tools.commits, 1)
	assert.Equal(t, `replaced the \"widget\" shim`, tools.commits[0], "message comes from the summary, quotes escaped")
}

func TestCommitMessage(t *testing.T) {
	long := strings.Repeat("y", 150)

	assert.Equal(t, "tidy up", commitMessage("tidy up", "fix the widget"))
	assert.Equal(t, "fix the widget", commitMessage("", "fix the widget"))
	assert.Equal(t, "agent work", commitMessage("", ""))
	assert.Equal(t, strings.Repeat("y", 100), commitMessage(long, ""))
	assert.Equal(t, `say \"hi\"`, commitMessage(`say "hi"`, ""))
}

func TestRun_VerificationFeedbackLoop(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "task_complete", `{"summary":"first try"}`),
		toolResp("c2", "task_complete", `{"summary":"second try"}`),
	}}
	tools := &fakeTools{}
	cp := &fakeCP{verifies: []VerifyOutcome{
		{Passed: false, Attempt: 1, Feedback: "TestWidget is failing"},
		{Passed: true, Attempt: 2},
	}}

	require.NoError(t, newTestLoop(llm, tools, cp, Config{}).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.True(t, cp.finalized[0].Success)
	assert.Equal(t, "second try", cp.finalized[0].Summary)

	// The second request carries the failure result plus the feedback text.
	require.Len(t, llm.requests, 2)
	turn := llm.requests[1].Messages
	require.Len(t, turn, 3, "prompt, assistant, results")
	blocks := turn[2].Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, BlockToolResult, blocks[0].Type)
	assert.True(t, blocks[0].IsError)
	assert.Equal(t, BlockText, blocks[1].Type)
	assert.Contains(t, blocks[1].Text, "TestWidget is failing")
}

func TestRun_VerificationExhaustedFinalizesFailure(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "task_complete", `{"summary":"hopeful"}`),
	}}
	cp := &fakeCP{verifies: []VerifyOutcome{
		{Passed: false, Attempt: 3, Feedback: "still broken"},
	}}

	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, Config{}).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.False(t, cp.finalized[0].Success)
	assert.Contains(t, cp.finalized[0].Error, "verification failed 3 times")
	assert.Contains(t, cp.finalized[0].Error, "still broken")
}

func TestRun_MidTurnFeedbackSupersedesRemainingCalls(t *testing.T) {
	first := &Response{ToolCalls: []ToolCall{
		{ID: "c1", Name: "task_complete", Input: json.RawMessage(`{"summary":"early"}`)},
		{ID: "c2", Name: "read_file", Input: json.RawMessage(`{"path":"a.go"}`)},
	}}
	llm := &scriptedLLM{responses: []*Response{
		first,
		toolResp("c3", "task_failed", `{"reason":"cannot fix"}`),
	}}
	tools := &fakeTools{}
	cp := &fakeCP{verifies: []VerifyOutcome{
		{Passed: false, Attempt: 1, Feedback: "missing tests"},
	}}

	require.NoError(t, newTestLoop(llm, tools, cp, Config{}).Run(context.Background()))

	assert.Empty(t, tools.executed, "calls after a failed task_complete must not run")

	require.Len(t, llm.requests, 2)
	blocks := llm.requests[1].Messages[2].Blocks
	require.Len(t, blocks, 3, "two paired results plus the feedback text")
	assert.Equal(t, "c1", blocks[0].ToolUseID)
	assert.Equal(t, "c2", blocks[1].ToolUseID)
	assert.Contains(t, blocks[1].Content, "not executed")
	assert.Contains(t, blocks[2].Text, "missing tests")
}

func TestRun_TaskFailed(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "task_failed", `{"reason":"dependency is missing upstream"}`),
	}}
	cp := &fakeCP{}

	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, Config{}).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.False(t, cp.finalized[0].Success)
	assert.Equal(t, "dependency is missing upstream", cp.finalized[0].Error)
}

func TestRun_StallAfterRepeatedTextTurns(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		{Text: "thinking about it"},
		{Text: "still thinking"},
		{Text: "hmm"},
	}}
	cp := &fakeCP{}

	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, Config{}).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.Contains(t, cp.finalized[0].Error, "stalled")
	assert.Len(t, llm.requests, 3, "two nudges, then the run is declared stalled")
}

func TestRun_StopDirective(t *testing.T) {
	llm := &scriptedLLM{}
	cp := &fakeCP{directives: []Directive{{Stop: true}}}

	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, Config{}).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.Contains(t, cp.finalized[0].Error, "stopped by the control plane")
	assert.Empty(t, llm.requests, "no completion after a stop")
}

func TestRun_PauseDoesNotConsumeIterations(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "task_failed", `{"reason":"done testing"}`),
	}}
	cp := &fakeCP{directives: []Directive{{Pause: true}, {Pause: true}, {}}}

	cfg := Config{MaxIterations: 1, PausePoll: time.Millisecond}
	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, cfg).Run(context.Background()))

	assert.Equal(t, 3, cp.heartbeats, "two paused polls, then one working turn")
	require.Len(t, cp.finalized, 1)
	assert.Equal(t, "done testing", cp.finalized[0].Error)
}

func TestRun_ToolEchoTruncated(t *testing.T) {
	huge := strings.Repeat("x", maxToolEchoBytes+500)
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "read_file", `{"path":"big.log"}`),
		toolResp("c2", "task_failed", `{"reason":"enough"}`),
	}}
	tools := &fakeTools{results: map[string]ToolResult{"read_file": {Content: huge}}}
	cp := &fakeCP{}

	require.NoError(t, newTestLoop(llm, tools, cp, Config{}).Run(context.Background()))

	require.Len(t, llm.requests, 2)
	echoed := llm.requests[1].Messages[2].Blocks[0].Content
	assert.True(t, strings.HasSuffix(echoed, "[output truncated]"))
	assert.Less(t, len(echoed), len(huge))

	// The full output still reached the log stream.
	var full bool
	for _, entry := range cp.logs {
		if entry.Kind == LogToolResult && len(entry.Content) == len(huge) {
			full = true
		}
	}
	assert.True(t, full, "log stream keeps the untruncated result")
}

func TestRun_LLMFailureFinalizes(t *testing.T) {
	llm := &scriptedLLM{err: errors.New("boom")}
	cp := &fakeCP{}

	cfg := Config{LLMRetries: 1}
	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, cfg).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.Contains(t, cp.finalized[0].Error, "llm call failed")
}

// rateLimitedLLM rejects the first n calls with a rate-limit error, then
// delegates to the script.
type rateLimitedLLM struct {
	scriptedLLM
	remaining int
	calls     int
}

func (m *rateLimitedLLM) Complete(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	if m.remaining > 0 {
		m.remaining--
		return nil, fmt.Errorf("429 too many requests: %w", ErrRateLimited)
	}
	return m.scriptedLLM.Complete(ctx, req)
}

func TestRun_RateLimitsDoNotConsumeRetryBudget(t *testing.T) {
	llm := &rateLimitedLLM{remaining: 3}
	llm.responses = []*Response{
		toolResp("c1", "task_failed", `{"reason":"done testing"}`),
	}
	cp := &fakeCP{}

	// One non-rate-limit retry allowed, yet three throttled calls survive.
	cfg := Config{LLMRetries: 1, RateLimitDelay: time.Millisecond}
	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, cfg).Run(context.Background()))

	assert.Equal(t, 4, llm.calls, "three throttled attempts, then the scripted turn")
	require.Len(t, cp.finalized, 1)
	assert.Equal(t, "done testing", cp.finalized[0].Error)
}

func TestRun_RateLimitBoundedByWallDeadline(t *testing.T) {
	llm := &rateLimitedLLM{remaining: 1 << 30}
	cp := &fakeCP{}

	cfg := Config{WallBudget: 100 * time.Millisecond, RateLimitDelay: time.Hour}
	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, cfg).Run(context.Background()))

	assert.Equal(t, 1, llm.calls, "waiting an hour would overrun the deadline")
	require.Len(t, cp.finalized, 1)
	assert.Contains(t, cp.finalized[0].Error, "llm call failed")
}

func TestRun_WallBudgetExhausted(t *testing.T) {
	llm := &scriptedLLM{}
	cp := &fakeCP{}

	cfg := Config{WallBudget: time.Nanosecond}
	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, cfg).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.Contains(t, cp.finalized[0].Error, "wall clock budget")
}

func TestRun_IterationBudgetExhausted(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{{Text: "pondering"}}}
	cp := &fakeCP{}

	cfg := Config{MaxIterations: 1}
	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, cfg).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.Contains(t, cp.finalized[0].Error, "iteration budget")
}

func TestRun_VerifyErrorFinalizes(t *testing.T) {
	llm := &scriptedLLM{responses: []*Response{
		toolResp("c1", "task_complete", `{"summary":"done"}`),
	}}
	cp := &fakeCP{verifyErr: errors.New("control plane unreachable")}

	require.NoError(t, newTestLoop(llm, &fakeTools{}, cp, Config{}).Run(context.Background()))

	require.Len(t, cp.finalized, 1)
	assert.False(t, cp.finalized[0].Success)
	assert.Contains(t, cp.finalized[0].Error, "verification could not run")
}
