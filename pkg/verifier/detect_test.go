package verifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDetectProject_Go(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/x\n")

	info := detectProject(dir)
	assert.Equal(t, kindGo, info.Kind)
	assert.True(t, info.Typed)
	assert.False(t, info.HasLinter)
	assert.True(t, info.HasTests)

	writeFile(t, dir, ".golangci.yml", "linters: {}\n")
	assert.True(t, detectProject(dir).HasLinter)
}

func TestDetectProject_TypeScript(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"x","scripts":{"test":"vitest"}}`)

	info := detectProject(dir)
	assert.Equal(t, kindTypeScript, info.Kind)
	assert.False(t, info.Typed, "no tsconfig means untyped")
	assert.True(t, info.HasTests, "test script counts")

	writeFile(t, dir, "tsconfig.json", "{}")
	writeFile(t, dir, "eslint.config.js", "export default []")
	info = detectProject(dir)
	assert.True(t, info.Typed)
	assert.True(t, info.HasLinter)
}

func TestDetectProject_NodeWithoutTests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"x"}`)

	info := detectProject(dir)
	assert.Equal(t, kindTypeScript, info.Kind)
	assert.False(t, info.HasTests)

	writeFile(t, dir, "jest.config.js", "module.exports = {}")
	assert.True(t, detectProject(dir).HasTests)
}

func TestDetectProject_Unknown(t *testing.T) {
	info := detectProject(t.TempDir())
	assert.Equal(t, kindUnknown, info.Kind)
	assert.False(t, info.Typed)
	assert.False(t, info.HasLinter)
	assert.False(t, info.HasTests)
}
