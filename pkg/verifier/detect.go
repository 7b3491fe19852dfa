package verifier

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// projectKind identifies the toolchain a working tree is built with.
type projectKind int

const (
	kindUnknown projectKind = iota
	kindTypeScript
	kindGo
)

// projectInfo captures what the pipeline can run against a working tree.
type projectInfo struct {
	Kind      projectKind
	Typed     bool
	HasLinter bool
	HasTests  bool
}

// detectProject inspects configuration files and the package manifest to
// decide which checks apply. Unknown projects pass syntax/types vacuously
// and skip lint and tests.
func detectProject(dir string) projectInfo {
	if fileExists(filepath.Join(dir, "go.mod")) {
		return projectInfo{
			Kind:      kindGo,
			Typed:     true,
			HasLinter: fileExists(filepath.Join(dir, ".golangci.yml")) || fileExists(filepath.Join(dir, ".golangci.yaml")),
			HasTests:  true, // `go test ./...` is a no-op without test files
		}
	}

	if fileExists(filepath.Join(dir, "package.json")) {
		info := projectInfo{
			Kind:  kindTypeScript,
			Typed: fileExists(filepath.Join(dir, "tsconfig.json")),
		}
		for _, name := range []string{".eslintrc", ".eslintrc.json", ".eslintrc.js", ".eslintrc.cjs", "eslint.config.js", "eslint.config.mjs"} {
			if fileExists(filepath.Join(dir, name)) {
				info.HasLinter = true
				break
			}
		}
		info.HasTests = hasNodeTestRunner(dir)
		return info
	}

	return projectInfo{Kind: kindUnknown}
}

// hasNodeTestRunner reports whether a vitest/jest config or a package.json
// test script exists.
func hasNodeTestRunner(dir string) bool {
	for _, name := range []string{"vitest.config.ts", "vitest.config.js", "vitest.config.mts", "jest.config.js", "jest.config.ts", "jest.config.json"} {
		if fileExists(filepath.Join(dir, name)) {
			return true
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return false
	}
	var manifest struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return false
	}
	return manifest.Scripts["test"] != ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
