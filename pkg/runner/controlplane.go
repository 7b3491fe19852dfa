package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/louannemur/fleetd/pkg/agent"
	"github.com/louannemur/fleetd/pkg/models"
)

// ControlPlane adapts the protocol client to the loop's agent.ControlPlane
// interface for one claimed agent/task pair. It also satisfies the tool
// executor's Locker.
type ControlPlane struct {
	client  *Client
	agentID string
	taskID  string
}

// NewControlPlane binds a protocol client to one agent run.
func NewControlPlane(client *Client, agentID, taskID string) *ControlPlane {
	return &ControlPlane{client: client, agentID: agentID, taskID: taskID}
}

// Heartbeat implements agent.ControlPlane.
func (p *ControlPlane) Heartbeat(ctx context.Context, tokensUsed int) (agent.Directive, error) {
	resp, err := p.client.Heartbeat(ctx, p.agentID, p.taskID, tokensUsed)
	if err != nil {
		return agent.Directive{}, err
	}
	return agent.Directive{Stop: resp.Stop, Pause: resp.Pause}, nil
}

// AppendLogs implements agent.ControlPlane.
func (p *ControlPlane) AppendLogs(ctx context.Context, entries []agent.LogEntry) error {
	logs := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, models.LogEntry{
			LogType:  e.Kind,
			Content:  e.Content,
			Metadata: e.Metadata,
		})
	}
	return p.client.AppendLogs(ctx, p.agentID, p.taskID, logs)
}

// Verify implements agent.ControlPlane, flattening the server's result into
// feedback the model can act on.
func (p *ControlPlane) Verify(ctx context.Context) (agent.VerifyOutcome, error) {
	view, err := p.client.Verify(ctx, p.taskID)
	if err != nil {
		return agent.VerifyOutcome{}, err
	}
	return agent.VerifyOutcome{
		Passed:   view.Passed,
		Attempt:  view.AttemptNumber,
		Feedback: formatFeedback(view),
	}, nil
}

// Finalize implements agent.ControlPlane.
func (p *ControlPlane) Finalize(ctx context.Context, in agent.FinalizeInput) error {
	return p.client.Complete(ctx, p.agentID, p.taskID, in.Success, in.Summary, in.Error)
}

// Acquire implements tools.Locker for single-path acquisition.
func (p *ControlPlane) Acquire(ctx context.Context, path string) (bool, error) {
	resp, err := p.client.AcquireLocks(ctx, p.agentID, p.taskID, []string{path})
	if err != nil {
		return false, err
	}
	return len(resp.Failed) == 0, nil
}

func formatFeedback(view *VerificationView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Verification attempt %d failed (confidence %.2f).\n", view.AttemptNumber, view.ConfidenceScore)

	b.WriteString("\nChecks:\n")
	fmt.Fprintf(&b, "- syntax: %s\n", checkStatus(view.SyntaxPassed))
	fmt.Fprintf(&b, "- types: %s\n", checkStatus(view.TypesPassed))
	fmt.Fprintf(&b, "- lint: %s\n", checkStatus(view.LintPassed))
	fmt.Fprintf(&b, "- tests: %s\n", checkStatus(view.TestsPassed))
	switch {
	case view.SemanticScore == nil:
		b.WriteString("- semantic: SKIPPED\n")
	case hasCheckFailure(view.Failures, "semantic"):
		fmt.Fprintf(&b, "- semantic: FAILED (%.2f)\n", *view.SemanticScore)
	default:
		fmt.Fprintf(&b, "- semantic: PASSED (%.2f)\n", *view.SemanticScore)
	}

	if len(view.Failures) > 0 {
		b.WriteString("\nFailures:\n")
		for _, f := range view.Failures {
			check, _ := f["check"].(string)
			message, _ := f["message"].(string)
			line := fmt.Sprintf("- [%s] %s", check, message)
			if file, ok := f["file"].(string); ok && file != "" {
				line += " (" + file
				if n, ok := f["line"].(float64); ok && n > 0 {
					line += fmt.Sprintf(":%d", int(n))
				}
				line += ")"
			}
			b.WriteString(line + "\n")
		}
	}
	if len(view.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, r := range view.Recommendations {
			b.WriteString("- " + r + "\n")
		}
	}
	return b.String()
}

func checkStatus(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func hasCheckFailure(failures []map[string]interface{}, check string) bool {
	for _, f := range failures {
		if name, _ := f["check"].(string); name == check {
			return true
		}
	}
	return false
}
