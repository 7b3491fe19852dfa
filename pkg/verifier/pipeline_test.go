package verifier

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cmdResult scripts one subprocess outcome.
type cmdResult struct {
	stdout   string
	stderr   string
	exitCode int
	err      error
}

// scriptRunner maps "name arg1 arg2 ..." to a scripted result. Unscripted
// commands succeed with empty output.
type scriptRunner struct {
	results map[string]cmdResult
	calls   []string
}

func (r *scriptRunner) Run(_ context.Context, _, name string, args ...string) (string, string, int, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, key)
	res := r.results[key]
	return res.stdout, res.stderr, res.exitCode, res.err
}

func newStageService(runner CommandRunner, llm ChatCompleter) *Service {
	return &Service{runner: runner, llm: llm, logger: slog.Default()}
}

func TestRunCompile_TypeScriptDiagnostics(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"npx tsc --noEmit --pretty false": {
			stdout: "src/app.ts(3,1): error TS1005: ';' expected.\n" +
				"src/util.ts(12,5): error TS2345: Argument of type 'string' is not assignable.\n",
			exitCode: 2,
		},
	}}
	s := newStageService(runner, nil)

	syntax, types := s.runCompile(context.Background(), "/work", projectInfo{Kind: kindTypeScript, Typed: true})

	require.Len(t, syntax, 1)
	assert.Equal(t, "syntax", syntax[0].Check)
	assert.Equal(t, "src/app.ts", syntax[0].File)
	assert.Equal(t, 3, syntax[0].Line)

	require.Len(t, types, 1)
	assert.Equal(t, "types", types[0].Check)
	assert.Equal(t, "src/util.ts", types[0].File)
	assert.Equal(t, 12, types[0].Line)
}

func TestRunCompile_GoDiagnostics(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"go build ./...": {
			stderr: "pkg/a.go:7:2: syntax error: unexpected var\n" +
				"pkg/b.go:20:10: cannot use x (variable of type int) as string value\n",
			exitCode: 1,
		},
	}}
	s := newStageService(runner, nil)

	syntax, types := s.runCompile(context.Background(), "/work", projectInfo{Kind: kindGo, Typed: true})

	require.Len(t, syntax, 1)
	assert.Equal(t, "pkg/a.go", syntax[0].File)
	assert.Equal(t, 7, syntax[0].Line)

	require.Len(t, types, 1)
	assert.Equal(t, "pkg/b.go", types[0].File)
}

func TestRunCompile_UntypedSkips(t *testing.T) {
	runner := &scriptRunner{}
	s := newStageService(runner, nil)

	syntax, types := s.runCompile(context.Background(), "/work", projectInfo{Kind: kindTypeScript})
	assert.Nil(t, syntax)
	assert.Nil(t, types)
	assert.Empty(t, runner.calls, "nothing runs for untyped projects")
}

func TestRunCompile_UnparsedOutputStillFails(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"go build ./...": {stderr: "linker blew up\n", exitCode: 1},
	}}
	s := newStageService(runner, nil)

	syntax, types := s.runCompile(context.Background(), "/work", projectInfo{Kind: kindGo, Typed: true})
	assert.Empty(t, syntax)
	require.Len(t, types, 1)
	assert.Contains(t, types[0].Message, "unparsed")
}

func TestRunLint_ESLintErrorSeverityOnly(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"npx eslint . --format json": {
			stdout: `[{"filePath":"src/a.ts","messages":[
				{"severity":1,"line":2,"message":"prefer const"},
				{"severity":2,"line":9,"message":"no-undef"}]}]`,
			exitCode: 1,
		},
	}}
	s := newStageService(runner, nil)

	failures := s.runLint(context.Background(), "/work", projectInfo{Kind: kindTypeScript, HasLinter: true})
	require.Len(t, failures, 1, "warnings are not failures")
	assert.Equal(t, "no-undef", failures[0].Message)
	assert.Equal(t, 9, failures[0].Line)
}

func TestRunLint_Golangci(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"golangci-lint run --out-format json": {
			stdout:   `{"Issues":[{"Text":"ineffectual assignment","Pos":{"Filename":"pkg/a.go","Line":14}}]}`,
			exitCode: 1,
		},
	}}
	s := newStageService(runner, nil)

	failures := s.runLint(context.Background(), "/work", projectInfo{Kind: kindGo, HasLinter: true})
	require.Len(t, failures, 1)
	assert.Equal(t, "ineffectual assignment", failures[0].Message)
	assert.Equal(t, "pkg/a.go", failures[0].File)
}

func TestRunLint_NoLinterSkips(t *testing.T) {
	runner := &scriptRunner{}
	s := newStageService(runner, nil)

	assert.Nil(t, s.runLint(context.Background(), "/work", projectInfo{Kind: kindGo}))
	assert.Empty(t, runner.calls)
}

func TestRunGoTests_EventParsing(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"go test ./... -json": {
			stdout: `{"Action":"run","Package":"example.com/p","Test":"TestA"}
{"Action":"pass","Package":"example.com/p","Test":"TestA"}
{"Action":"fail","Package":"example.com/p","Test":"TestB"}
{"Action":"pass","Package":"example.com/p"}
`,
			exitCode: 1,
		},
	}}
	s := newStageService(runner, nil)

	total, failed, failures := s.runTests(context.Background(), "/work", projectInfo{Kind: kindGo, HasTests: true})
	assert.Equal(t, 2, total, "package-level events are not tests")
	assert.Equal(t, 1, failed)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Message, "TestB")
}

func TestRunGoTests_NonZeroExitWithoutFailures(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"go test ./... -json": {stdout: "", exitCode: 2},
	}}
	s := newStageService(runner, nil)

	total, failed, failures := s.runTests(context.Background(), "/work", projectInfo{Kind: kindGo, HasTests: true})
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, failed)
	require.Len(t, failures, 1)
}

func TestRunNodeTests_JestSummary(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"npx jest --json --ci": {
			stdout: "Determining test suites to run...\n" +
				`{"numTotalTests":5,"numFailedTests":2,"testResults":[
					{"name":"app.test.ts","assertionResults":[
						{"status":"passed","title":"renders"},
						{"status":"failed","title":"saves","failureMessages":["expected 1 to be 2\nstack..."]}]}]}`,
			exitCode: 1,
		},
	}}
	s := newStageService(runner, nil)

	total, failed, failures := s.runTests(context.Background(), t.TempDir(), projectInfo{Kind: kindTypeScript, HasTests: true})
	assert.Equal(t, 5, total)
	assert.Equal(t, 2, failed)
	require.Len(t, failures, 1)
	assert.Equal(t, "saves: expected 1 to be 2", failures[0].Message)
	assert.Equal(t, "app.test.ts", failures[0].File)
}

func TestCollectDiff_FallsBackThroughRefs(t *testing.T) {
	runner := &scriptRunner{results: map[string]cmdResult{
		"git diff main...HEAD":   {exitCode: 128, stderr: "unknown revision"},
		"git diff master...HEAD": {exitCode: 128, stderr: "unknown revision"},
		"git diff HEAD~1..HEAD":  {stdout: "diff --git a/x b/x\n+added\n"},
	}}
	s := newStageService(runner, nil)

	diff := s.collectDiff(context.Background(), "/work")
	assert.Contains(t, diff, "+added")
}

func TestRunSemantic_EmptyDiffScoresZero(t *testing.T) {
	runner := &scriptRunner{} // every git diff returns empty
	s := newStageService(runner, nil)

	score, explanation := s.runSemantic(context.Background(), "/work", "title", "desc")
	assert.Equal(t, 0.0, score)
	assert.Contains(t, explanation, "no changes")
}
