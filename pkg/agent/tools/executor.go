// Package tools implements the tool surface an agent works the repository
// with: file access, code search, command execution, and the completion
// markers. File mutations go through the lock coordinator first.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louannemur/fleetd/pkg/agent"
)

// Locker gates file mutations. Acquire returns false when another agent
// holds the path.
type Locker interface {
	Acquire(ctx context.Context, path string) (bool, error)
}

// Executor implements agent.ToolExecutor against one working tree.
type Executor struct {
	workingDir string
	locker     Locker
}

// NewExecutor creates an executor rooted at workingDir. locker may be nil
// for single-agent use; mutations then skip lock acquisition.
func NewExecutor(workingDir string, locker Locker) *Executor {
	return &Executor{workingDir: filepath.Clean(workingDir), locker: locker}
}

// Definitions advertises the tool set to the model.
func (e *Executor) Definitions() []agent.ToolDefinition {
	return []agent.ToolDefinition{
		{
			Name:        "read_file",
			Description: "Read a file from the repository. Returns the full contents.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": stringProp("Path relative to the repository root"),
			}, "path"),
		},
		{
			Name:        "write_file",
			Description: "Create or overwrite a file. Acquires the file lock first; fails if another agent holds it.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":    stringProp("Path relative to the repository root"),
				"content": stringProp("Complete new file contents"),
			}, "path", "content"),
		},
		{
			Name:        "edit_file",
			Description: "Replace one exact occurrence of a string in a file. Fails if the string is missing or ambiguous. Acquires the file lock first.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":        stringProp("Path relative to the repository root"),
				"old_content": stringProp("Exact text to replace; must occur exactly once"),
				"new_content": stringProp("Replacement text"),
			}, "path", "old_content", "new_content"),
		},
		{
			Name:        "list_files",
			Description: "List the entries of a directory. With recursive set, walks the whole subtree.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": stringProp("Directory path relative to the repository root; omit for the root"),
				"recursive": map[string]interface{}{
					"type":        "boolean",
					"description": "Walk subdirectories and return repository-relative paths",
				},
			}),
		},
		{
			Name:        "search_code",
			Description: "Search file contents for a substring. Returns up to 100 matching lines with file and line number.",
			InputSchema: objectSchema(map[string]interface{}{
				"pattern":      stringProp("Substring to search for"),
				"path":         stringProp("Directory to search under; omit for the whole repository"),
				"file_pattern": stringProp("Optional glob matched against file names, e.g. *.go"),
			}, "pattern"),
		},
		{
			Name:        "run_command",
			Description: "Run a shell command in the repository root. Output is captured; long commands time out after 30 seconds unless timeout_seconds is set.",
			InputSchema: objectSchema(map[string]interface{}{
				"command": stringProp("Shell command to run"),
				"timeout_seconds": map[string]interface{}{
					"type":        "integer",
					"description": "Optional timeout override, max 300",
				},
			}, "command"),
		},
		{
			Name:        "task_complete",
			Description: "Declare the task finished. Verification runs after this call.",
			InputSchema: objectSchema(map[string]interface{}{
				"summary": stringProp("Short summary of what was changed and why"),
			}, "summary"),
		},
		{
			Name:        "task_failed",
			Description: "Declare the task impossible to finish and give up.",
			InputSchema: objectSchema(map[string]interface{}{
				"reason": stringProp("Why the task cannot be completed"),
			}, "reason"),
		},
	}
}

// Execute dispatches one tool call. Tool problems are reported as error
// results, never as Go errors; the model is expected to react to them.
func (e *Executor) Execute(ctx context.Context, call agent.ToolCall) agent.ToolResult {
	var args map[string]interface{}
	if len(call.Input) > 0 {
		if err := json.Unmarshal(call.Input, &args); err != nil {
			return errResult("invalid tool input: " + err.Error())
		}
	}

	switch call.Name {
	case "read_file":
		return e.readFile(str(args, "path"))
	case "write_file":
		return e.writeFile(ctx, str(args, "path"), str(args, "content"))
	case "edit_file":
		return e.editFile(ctx, str(args, "path"), str(args, "old_content"), str(args, "new_content"))
	case "list_files":
		return e.listFiles(str(args, "path"), boolArg(args, "recursive"))
	case "search_code":
		return e.searchCode(str(args, "pattern"), str(args, "path"), str(args, "file_pattern"))
	case "run_command":
		return e.runCommand(ctx, str(args, "command"), intArg(args, "timeout_seconds"))
	case "task_complete", "task_failed":
		// Markers; the loop intercepts these before execution.
		return agent.ToolResult{Content: "acknowledged"}
	default:
		return errResult(fmt.Sprintf("unknown tool %q", call.Name))
	}
}

// resolve maps a repository-relative path to an absolute one and rejects
// escapes above the working tree.
func (e *Executor) resolve(rel string) (string, error) {
	if rel == "" {
		return e.workingDir, nil
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path %q must be relative to the repository root", rel)
	}
	abs := filepath.Clean(filepath.Join(e.workingDir, rel))
	if abs != e.workingDir && !strings.HasPrefix(abs, e.workingDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the repository", rel)
	}
	return abs, nil
}

// acquireLock is a no-op without a locker. Lock keys are repository-relative.
func (e *Executor) acquireLock(ctx context.Context, rel string) error {
	if e.locker == nil {
		return nil
	}
	ok, err := e.locker.Acquire(ctx, rel)
	if err != nil {
		return fmt.Errorf("lock service error: %w", err)
	}
	if !ok {
		return fmt.Errorf("file %q is locked by another agent; work on something else and retry later", rel)
	}
	return nil
}

func errResult(msg string) agent.ToolResult {
	return agent.ToolResult{Content: msg, IsError: true}
}

func str(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]interface{}, key string) bool {
	v, _ := args[key].(bool)
	return v
}

func intArg(args map[string]interface{}, key string) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return 0
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc}
}
