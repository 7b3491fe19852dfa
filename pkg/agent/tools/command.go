package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/louannemur/fleetd/pkg/agent"
)

const (
	defaultCommandTimeout = 30 * time.Second
	maxCommandTimeout     = 5 * time.Minute

	// maxCommandOutput caps captured stdout+stderr.
	maxCommandOutput = 5 * 1024 * 1024
)

// dangerousPatterns block commands that can destroy the host or escape the
// sandbox. Matched against the whole command string.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`rm\s+(-[a-zA-Z]*\s+)*(/|~)(\s|$)`),
	regexp.MustCompile(`rm\s+-[a-zA-Z]*r[a-zA-Z]*f|rm\s+-[a-zA-Z]*f[a-zA-Z]*r`),
	regexp.MustCompile(`>\s*/dev/(sd|nvme|hd)`),
	regexp.MustCompile(`\bmkfs\b`),
	regexp.MustCompile(`\bdd\s+if=`),
	regexp.MustCompile(`:\(\)\s*\{.*\};\s*:`),
	regexp.MustCompile(`\bshutdown\b|\breboot\b`),
	regexp.MustCompile(`\bchmod\s+(-[a-zA-Z]*\s+)*777\s+/`),
}

func (e *Executor) runCommand(ctx context.Context, command string, timeoutSeconds int) agent.ToolResult {
	if strings.TrimSpace(command) == "" {
		return errResult("command must not be empty")
	}
	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(command) {
			return errResult("command rejected: it matches a destructive pattern and will not be run")
		}
	}

	timeout := defaultCommandTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
		if timeout > maxCommandTimeout {
			timeout = maxCommandTimeout
		}
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = e.workingDir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := out.String()
	if len(output) > maxCommandOutput {
		output = output[:maxCommandOutput] + "\n... [output truncated]"
	}

	if ctx.Err() == context.DeadlineExceeded {
		return errResult(fmt.Sprintf("command timed out after %s\n%s", timeout, output))
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return agent.ToolResult{
				Content: fmt.Sprintf("exit status %d\n%s", exitErr.ExitCode(), output),
				IsError: true,
			}
		}
		return errResult("command failed to start: " + err.Error())
	}
	if output == "" {
		output = "(no output)"
	}
	return agent.ToolResult{Content: output}
}

// HasUncommittedChanges reports whether the working tree differs from HEAD.
func (e *Executor) HasUncommittedChanges(ctx context.Context) (bool, error) {
	out, err := e.git(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CommitAll stages everything and commits.
func (e *Executor) CommitAll(ctx context.Context, message string) error {
	if _, err := e.git(ctx, "add", "-A"); err != nil {
		return err
	}
	_, err := e.git(ctx, "commit", "-m", message)
	return err
}

func (e *Executor) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workingDir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}
