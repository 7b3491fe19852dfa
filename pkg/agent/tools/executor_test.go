package tools

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/pkg/agent"
)

// recordingLocker grants or denies every acquisition and records the paths.
type recordingLocker struct {
	deny  bool
	err   error
	paths []string
}

func (l *recordingLocker) Acquire(_ context.Context, path string) (bool, error) {
	l.paths = append(l.paths, path)
	if l.err != nil {
		return false, l.err
	}
	return !l.deny, nil
}

func call(name, input string) agent.ToolCall {
	return agent.ToolCall{ID: "t1", Name: name, Input: json.RawMessage(input)}
}

func execute(t *testing.T, e *Executor, name, input string) agent.ToolResult {
	t.Helper()
	return e.Execute(context.Background(), call(name, input))
}

func TestExecute_WriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	e := NewExecutor(dir, nil)

	res := execute(t, e, "write_file", `{"path":"src/main.go","content":"package main\n"}`)
	require.False(t, res.IsError, res.Content)

	res = execute(t, e, "read_file", `{"path":"src/main.go"}`)
	require.False(t, res.IsError, res.Content)
	assert.Equal(t, "package main\n", res.Content)
}

func TestExecute_PathEscapeRejected(t *testing.T) {
	e := NewExecutor(t.TempDir(), nil)

	for _, input := range []string{
		`{"path":"../outside.txt"}`,
		`{"path":"a/../../outside.txt"}`,
		`{"path":"/etc/passwd"}`,
	} {
		res := execute(t, e, "read_file", input)
		assert.True(t, res.IsError, "input %s must be rejected", input)
	}
}

func TestExecute_EditFileOccurrences(t *testing.T) {
	dir := t.TempDir()
	e := NewExecutor(dir, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one two two"), 0o644))

	res := execute(t, e, "edit_file", `{"path":"a.txt","old_content":"missing","new_content":"x"}`)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "not found")

	res = execute(t, e, "edit_file", `{"path":"a.txt","old_content":"two","new_content":"x"}`)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "occurs 2 times")

	res = execute(t, e, "edit_file", `{"path":"a.txt","old_content":"one","new_content":"zero"}`)
	require.False(t, res.IsError, res.Content)

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "zero two two", string(data))
}

func TestExecute_MutationsRequireLock(t *testing.T) {
	dir := t.TempDir()
	locker := &recordingLocker{}
	e := NewExecutor(dir, locker)

	res := execute(t, e, "write_file", `{"path":"b.go","content":"x"}`)
	require.False(t, res.IsError, res.Content)
	assert.Equal(t, []string{"b.go"}, locker.paths)

	locker.deny = true
	res = execute(t, e, "write_file", `{"path":"c.go","content":"x"}`)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "locked by another agent")
	assert.NoFileExists(t, filepath.Join(dir, "c.go"))

	locker.deny = false
	locker.err = errors.New("coordinator down")
	res = execute(t, e, "edit_file", `{"path":"b.go","old_content":"x","new_content":"y"}`)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "lock service error")
}

func TestExecute_ReadsDoNotLock(t *testing.T) {
	dir := t.TempDir()
	locker := &recordingLocker{deny: true}
	e := NewExecutor(dir, locker)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644))

	res := execute(t, e, "read_file", `{"path":"a.txt"}`)
	require.False(t, res.IsError)
	assert.Empty(t, locker.paths)
}

func TestExecute_ListFilesSkipsNoise(t *testing.T) {
	dir := t.TempDir()
	e := NewExecutor(dir, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x"), 0o644))

	res := execute(t, e, "list_files", `{}`)
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "src/")
	assert.Contains(t, res.Content, "go.mod")
	assert.NotContains(t, res.Content, "node_modules")
}

func TestExecute_SearchCode(t *testing.T) {
	dir := t.TempDir()
	e := NewExecutor(dir, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg", "a.go"), []byte("package pkg\nfunc Needle() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("package main\n"), 0o644))

	res := execute(t, e, "search_code", `{"pattern":"Needle"}`)
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "pkg/a.go:2")
	assert.Contains(t, res.Content, "func Needle()")

	res = execute(t, e, "search_code", `{"pattern":"NoSuchSymbol"}`)
	require.False(t, res.IsError)
	assert.Equal(t, "no matches", res.Content)
}

func TestExecute_SearchCodeFilePattern(t *testing.T) {
	dir := t.TempDir()
	e := NewExecutor(dir, nil)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("needle in go\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("needle in md\n"), 0o644))

	res := execute(t, e, "search_code", `{"pattern":"needle","file_pattern":"*.go"}`)
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "a.go:1")
	assert.NotContains(t, res.Content, "a.md")
}

func TestExecute_ListFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	e := NewExecutor(dir, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "pkg"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "x"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "pkg", "a.go"), []byte("package pkg\n"), 0o644))

	res := execute(t, e, "list_files", `{"recursive":true}`)
	require.False(t, res.IsError)
	assert.Contains(t, res.Content, "src/")
	assert.Contains(t, res.Content, "src/pkg/")
	assert.Contains(t, res.Content, "src/pkg/a.go")
	assert.NotContains(t, res.Content, "node_modules")
}

func TestExecute_RunCommand(t *testing.T) {
	e := NewExecutor(t.TempDir(), nil)

	res := execute(t, e, "run_command", `{"command":"echo hello"}`)
	require.False(t, res.IsError, res.Content)
	assert.Equal(t, "hello\n", res.Content)

	res = execute(t, e, "run_command", `{"command":"exit 3"}`)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "exit status 3")
}

func TestExecute_DangerousCommandsBlocked(t *testing.T) {
	e := NewExecutor(t.TempDir(), nil)

	for _, cmd := range []string{
		"rm -rf /",
		"rm -fr ~/",
		"sudo rm -rf /var",
		"dd if=/dev/zero of=/dev/sda",
		"mkfs.ext4 /dev/sda1",
		"echo pwned > /dev/sda",
		":(){ :|:& };:",
		"shutdown -h now",
		"chmod -R 777 /",
	} {
		res := execute(t, e, "run_command", `{"command":`+mustJSON(cmd)+`}`)
		assert.True(t, res.IsError, "command %q must be blocked", cmd)
		assert.Contains(t, res.Content, "rejected")
	}
}

func TestExecute_CompletionMarkersAcknowledged(t *testing.T) {
	e := NewExecutor(t.TempDir(), nil)

	res := execute(t, e, "task_complete", `{"summary":"done"}`)
	assert.False(t, res.IsError)
	assert.Equal(t, "acknowledged", res.Content)
}

func TestExecute_UnknownTool(t *testing.T) {
	e := NewExecutor(t.TempDir(), nil)

	res := execute(t, e, "fly_to_moon", `{}`)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content, "unknown tool")
}

func TestReadFile_Truncated(t *testing.T) {
	dir := t.TempDir()
	e := NewExecutor(dir, nil)
	big := strings.Repeat("a", maxReadBytes+1024)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.txt"), []byte(big), 0o644))

	res := execute(t, e, "read_file", `{"path":"big.txt"}`)
	require.False(t, res.IsError)
	assert.True(t, strings.HasSuffix(res.Content, "[file truncated]"))
	assert.Less(t, len(res.Content), len(big))
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
