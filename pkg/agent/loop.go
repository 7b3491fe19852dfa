package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config bounds one loop run. Zero values fall back to the defaults.
type Config struct {
	MaxIterations    int
	WallBudget       time.Duration
	LLMRetries       int
	RateLimitDelay   time.Duration
	PausePoll        time.Duration
	MaxVerifyRetries int
}

const (
	defaultMaxIterations    = 50
	defaultWallBudget       = 30 * time.Minute
	defaultLLMRetries       = 3
	defaultRateLimitDelay   = 60 * time.Second
	defaultPausePoll        = 5 * time.Second
	defaultMaxVerifyRetries = 3

	// maxToolEchoBytes caps how much of a tool result is echoed back into
	// the conversation. Full output still reaches the log stream.
	maxToolEchoBytes = 10 * 1024

	// maxNudges bounds consecutive assistant turns with no tool call
	// before the run is declared stalled.
	maxNudges = 2
)

func (c Config) withDefaults() Config {
	if c.MaxIterations <= 0 {
		c.MaxIterations = defaultMaxIterations
	}
	if c.WallBudget <= 0 {
		c.WallBudget = defaultWallBudget
	}
	if c.LLMRetries <= 0 {
		c.LLMRetries = defaultLLMRetries
	}
	if c.RateLimitDelay <= 0 {
		c.RateLimitDelay = defaultRateLimitDelay
	}
	if c.PausePoll <= 0 {
		c.PausePoll = defaultPausePoll
	}
	if c.MaxVerifyRetries <= 0 {
		c.MaxVerifyRetries = defaultMaxVerifyRetries
	}
	return c
}

// Loop drives one task from prompt to finalization.
type Loop struct {
	llm    LLMClient
	tools  ToolExecutor
	cp     ControlPlane
	task   Task
	cfg    Config
	logger *slog.Logger

	// pendingTokens accumulates usage between heartbeats.
	pendingTokens int
}

// NewLoop assembles a loop for one claimed task.
func NewLoop(llm LLMClient, tools ToolExecutor, cp ControlPlane, task Task, cfg Config) *Loop {
	return &Loop{
		llm:    llm,
		tools:  tools,
		cp:     cp,
		task:   task,
		cfg:    cfg.withDefaults(),
		logger: slog.Default().With("component", "agent", "task_id", task.ID),
	}
}

// Run executes the conversation until completion, failure, or a budget
// runs out. Every exit path reports through ControlPlane.Finalize.
func (l *Loop) Run(ctx context.Context) error {
	messages := []Message{TextMessage(RoleUser, buildTaskPrompt(l.task))}
	deadline := time.Now().Add(l.cfg.WallBudget)
	nudges := 0

	l.log(ctx, LogStatusChange, "agent started", nil)

	for iteration := 1; iteration <= l.cfg.MaxIterations; iteration++ {
		if time.Now().After(deadline) {
			return l.fail(ctx, "wall clock budget exhausted before the task finished")
		}

		directive, err := l.cp.Heartbeat(ctx, l.takePendingTokens())
		if err != nil {
			l.logger.Warn("heartbeat failed", "error", err)
		} else {
			if directive.Stop {
				return l.fail(ctx, "stopped by the control plane")
			}
			if directive.Pause {
				iteration-- // paused turns do not consume the budget
				if err := sleepCtx(ctx, l.cfg.PausePoll); err != nil {
					return l.fail(ctx, "context cancelled while paused")
				}
				continue
			}
		}

		resp, err := l.complete(ctx, &Request{
			System:   buildSystemPrompt(),
			Messages: messages,
			Tools:    l.tools.Definitions(),
		}, deadline)
		if err != nil {
			l.log(ctx, LogError, "llm call failed: "+err.Error(), nil)
			return l.fail(ctx, "llm call failed after retries: "+err.Error())
		}
		l.pendingTokens += resp.Usage.InputTokens + resp.Usage.OutputTokens

		if resp.Text != "" {
			l.log(ctx, LogThinking, resp.Text, nil)
		}

		assistant := assistantMessage(resp)

		if len(resp.ToolCalls) == 0 {
			nudges++
			if nudges > maxNudges {
				return l.fail(ctx, "agent stalled: repeated turns without tool use")
			}
			messages = append(messages, assistant,
				TextMessage(RoleUser, "You ended your turn without using a tool. Continue working with the available tools, or call task_complete / task_failed if you are done."))
			continue
		}
		nudges = 0

		var results []ContentBlock
		var feedback string
		for _, call := range resp.ToolCalls {
			l.log(ctx, LogToolCall, fmt.Sprintf("%s %s", call.Name, call.Input), map[string]interface{}{"tool": call.Name})

			if feedback != "" {
				// A failed task_complete supersedes the rest of the turn,
				// but every tool_use still needs a paired result.
				results = append(results, ContentBlock{
					Type:      BlockToolResult,
					ToolUseID: call.ID,
					Content:   "not executed: address the verification feedback first",
					IsError:   true,
				})
				continue
			}

			switch call.Name {
			case "task_complete":
				done, fb := l.handleComplete(ctx, call)
				if done {
					return nil
				}
				feedback = fb
				results = append(results, ContentBlock{
					Type:      BlockToolResult,
					ToolUseID: call.ID,
					Content:   "Verification failed. Fix the issues below and call task_complete again.",
					IsError:   true,
				})

			case "task_failed":
				reason := stringArg(call.Input, "reason")
				if reason == "" {
					reason = "agent gave up without a stated reason"
				}
				return l.fail(ctx, reason)

			default:
				result := l.tools.Execute(ctx, call)
				l.log(ctx, LogToolResult, result.Content, map[string]interface{}{"tool": call.Name, "is_error": result.IsError})
				results = append(results, ContentBlock{
					Type:      BlockToolResult,
					ToolUseID: call.ID,
					Content:   truncateEcho(result.Content),
					IsError:   result.IsError,
				})
			}
		}

		next := Message{Role: RoleUser, Blocks: results}
		if feedback != "" {
			next.Blocks = append(next.Blocks, ContentBlock{Type: BlockText, Text: feedback})
		}
		messages = append(messages, assistant, next)
	}

	return l.fail(ctx, "iteration budget exhausted before the task finished")
}

// handleComplete runs the completion path: commit outstanding work, verify,
// and either finalize or hand the failures back as feedback. The bool is
// true when the run is over (either way finalized).
func (l *Loop) handleComplete(ctx context.Context, call ToolCall) (done bool, feedback string) {
	summary := stringArg(call.Input, "summary")

	if dirty, err := l.tools.HasUncommittedChanges(ctx); err == nil && dirty {
		if err := l.tools.CommitAll(ctx, commitMessage(summary, l.task.Title)); err != nil {
			l.log(ctx, LogError, "failed to commit outstanding changes: "+err.Error(), nil)
		}
	}

	outcome, err := l.cp.Verify(ctx)
	if err != nil {
		l.log(ctx, LogError, "verification call failed: "+err.Error(), nil)
		_ = l.cp.Finalize(ctx, FinalizeInput{Summary: summary, Error: "verification could not run: " + err.Error()})
		return true, ""
	}

	if outcome.Passed {
		l.log(ctx, LogStatusChange, "verification passed", nil)
		_ = l.cp.Finalize(ctx, FinalizeInput{Success: true, Summary: summary})
		return true, ""
	}

	if outcome.Attempt < l.cfg.MaxVerifyRetries {
		l.log(ctx, LogInfo, fmt.Sprintf("verification failed on attempt %d, feeding results back", outcome.Attempt), nil)
		return false, "Verification results:\n" + outcome.Feedback
	}

	_ = l.cp.Finalize(ctx, FinalizeInput{
		Summary: summary,
		Error:   fmt.Sprintf("verification failed %d times; last results:\n%s", outcome.Attempt, outcome.Feedback),
	})
	return true, ""
}

// complete calls the LLM with bounded retries. Other errors back off
// exponentially and consume the retry budget; rate limits wait the long
// delay and retry as often as the wall deadline allows.
func (l *Loop) complete(ctx context.Context, req *Request, deadline time.Time) (*Response, error) {
	failures := 0
	for {
		resp, err := l.llm.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}

		if errors.Is(err, ErrRateLimited) {
			if time.Now().Add(l.cfg.RateLimitDelay).After(deadline) {
				return nil, err
			}
			l.logger.Warn("llm rate limited, waiting", "delay", l.cfg.RateLimitDelay)
			if serr := sleepCtx(ctx, l.cfg.RateLimitDelay); serr != nil {
				return nil, serr
			}
			continue
		}

		failures++
		l.logger.Warn("llm call failed", "attempt", failures, "error", err)
		if failures >= l.cfg.LLMRetries {
			return nil, err
		}
		if serr := sleepCtx(ctx, time.Duration(1<<uint(failures))*time.Second); serr != nil {
			return nil, serr
		}
	}
}

func (l *Loop) fail(ctx context.Context, reason string) error {
	l.log(ctx, LogStatusChange, "agent failed: "+reason, nil)
	return l.cp.Finalize(ctx, FinalizeInput{Error: reason})
}

func (l *Loop) log(ctx context.Context, kind, content string, metadata map[string]interface{}) {
	err := l.cp.AppendLogs(ctx, []LogEntry{{Kind: kind, Content: content, Metadata: metadata}})
	if err != nil {
		l.logger.Warn("failed to append log", "kind", kind, "error", err)
	}
}

func (l *Loop) takePendingTokens() int {
	n := l.pendingTokens
	l.pendingTokens = 0
	return n
}

func assistantMessage(resp *Response) Message {
	var blocks []ContentBlock
	if resp.Text != "" {
		blocks = append(blocks, ContentBlock{Type: BlockText, Text: resp.Text})
	}
	for _, call := range resp.ToolCalls {
		blocks = append(blocks, ContentBlock{
			Type:      BlockToolUse,
			ToolUseID: call.ID,
			ToolName:  call.Name,
			Input:     call.Input,
		})
	}
	return Message{Role: RoleAssistant, Blocks: blocks}
}

// commitMessage derives the auto-commit message from the completion
// summary (first 100 chars, quotes escaped), falling back to the title.
func commitMessage(summary, title string) string {
	msg := summary
	if msg == "" {
		msg = title
	}
	if msg == "" {
		msg = "agent work"
	}
	if len(msg) > 100 {
		msg = msg[:100]
	}
	return strings.ReplaceAll(msg, `"`, `\"`)
}

func truncateEcho(s string) string {
	if len(s) <= maxToolEchoBytes {
		return s
	}
	return s[:maxToolEchoBytes] + "\n... [output truncated]"
}

// stringArg pulls a single string field out of a tool call's input.
func stringArg(input []byte, key string) string {
	var args map[string]interface{}
	if json.Unmarshal(input, &args) != nil {
		return ""
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
