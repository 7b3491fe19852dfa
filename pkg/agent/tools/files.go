package tools

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/louannemur/fleetd/pkg/agent"
)

const (
	// maxReadBytes caps read_file so one huge artifact cannot blow up the
	// conversation.
	maxReadBytes = 256 * 1024

	// maxSearchMatches caps search_code output.
	maxSearchMatches = 100
)

// skipDirs are never descended into by list_files or search_code.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"vendor":       true,
	".next":        true,
	"__pycache__":  true,
}

func (e *Executor) readFile(rel string) agent.ToolResult {
	abs, err := e.resolve(rel)
	if err != nil {
		return errResult(err.Error())
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return errResult("read failed: " + err.Error())
	}
	if len(data) > maxReadBytes {
		return agent.ToolResult{Content: string(data[:maxReadBytes]) + "\n... [file truncated]"}
	}
	return agent.ToolResult{Content: string(data)}
}

func (e *Executor) writeFile(ctx context.Context, rel, content string) agent.ToolResult {
	abs, err := e.resolve(rel)
	if err != nil {
		return errResult(err.Error())
	}
	if err := e.acquireLock(ctx, rel); err != nil {
		return errResult(err.Error())
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return errResult("mkdir failed: " + err.Error())
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return errResult("write failed: " + err.Error())
	}
	return agent.ToolResult{Content: fmt.Sprintf("wrote %d bytes to %s", len(content), rel)}
}

func (e *Executor) editFile(ctx context.Context, rel, oldStr, newStr string) agent.ToolResult {
	if oldStr == "" {
		return errResult("old_content must not be empty")
	}
	abs, err := e.resolve(rel)
	if err != nil {
		return errResult(err.Error())
	}
	if err := e.acquireLock(ctx, rel); err != nil {
		return errResult(err.Error())
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return errResult("read failed: " + err.Error())
	}
	content := string(data)

	switch n := strings.Count(content, oldStr); n {
	case 0:
		return errResult("old_content not found in " + rel)
	case 1:
	default:
		return errResult(fmt.Sprintf("old_content occurs %d times in %s; provide more surrounding context to make it unique", n, rel))
	}

	updated := strings.Replace(content, oldStr, newStr, 1)
	if err := os.WriteFile(abs, []byte(updated), 0o644); err != nil {
		return errResult("write failed: " + err.Error())
	}
	return agent.ToolResult{Content: "edited " + rel}
}

func (e *Executor) listFiles(rel string, recursive bool) agent.ToolResult {
	abs, err := e.resolve(rel)
	if err != nil {
		return errResult(err.Error())
	}
	if recursive {
		return e.listTree(abs)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return errResult("list failed: " + err.Error())
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if skipDirs[name] {
				continue
			}
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return agent.ToolResult{Content: "(empty directory)"}
	}
	return agent.ToolResult{Content: strings.Join(names, "\n")}
}

// listTree walks a subtree and returns repository-relative paths,
// directories suffixed with a slash.
func (e *Executor) listTree(root string) agent.ToolResult {
	var names []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			if path == root {
				return nil
			}
		}
		rel, _ := filepath.Rel(e.workingDir, path)
		if d.IsDir() {
			rel += "/"
		}
		names = append(names, rel)
		return nil
	})
	if err != nil {
		return errResult("list failed: " + err.Error())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return agent.ToolResult{Content: "(empty directory)"}
	}
	return agent.ToolResult{Content: strings.Join(names, "\n")}
}

func (e *Executor) searchCode(pattern, rel, filePattern string) agent.ToolResult {
	if pattern == "" {
		return errResult("pattern must not be empty")
	}
	root, err := e.resolve(rel)
	if err != nil {
		return errResult(err.Error())
	}

	var matches []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if len(matches) >= maxSearchMatches {
			return filepath.SkipAll
		}
		if filePattern != "" {
			if ok, _ := filepath.Match(filePattern, d.Name()); !ok {
				return nil
			}
		}

		data, err := os.ReadFile(path)
		if err != nil || !strings.Contains(string(data), pattern) {
			return nil
		}
		relPath, _ := filepath.Rel(e.workingDir, path)
		for i, line := range strings.Split(string(data), "\n") {
			if strings.Contains(line, pattern) {
				matches = append(matches, fmt.Sprintf("%s:%d: %s", relPath, i+1, strings.TrimSpace(line)))
				if len(matches) >= maxSearchMatches {
					break
				}
			}
		}
		return nil
	})
	if walkErr != nil {
		return errResult("search failed: " + walkErr.Error())
	}
	if len(matches) == 0 {
		return agent.ToolResult{Content: "no matches"}
	}
	out := strings.Join(matches, "\n")
	if len(matches) >= maxSearchMatches {
		out += fmt.Sprintf("\n... [capped at %d matches]", maxSearchMatches)
	}
	return agent.ToolResult{Content: out}
}
