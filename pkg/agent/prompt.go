package agent

import (
	"fmt"
	"strings"
)

// Task is the loop-facing view of the claimed task.
type Task struct {
	ID          string
	Title       string
	Description string
	RiskLevel   string
	FilesHint   []string
	BranchName  string
}

const systemPromptTemplate = `You are an autonomous software engineering agent working on one task in a shared repository. Other agents may be working in the same repository at the same time; a lock service arbitrates file access, and write_file/edit_file fail when another agent holds the file.

Rules:
- Work only inside the repository; paths are relative to its root.
- Read before you write. Understand the surrounding code and match its style.
- Make the smallest change that accomplishes the task. Do not refactor unrelated code.
- Run the project's tests with run_command when they exist and make them pass.
- When the task is done, call task_complete with a short summary of what you changed.
- If the task cannot be done (contradictory requirements, missing access, repeated tool failures), call task_failed with the reason instead of guessing.

Your work is verified after task_complete: the code must compile, pass lint and tests, and actually accomplish the task. If verification fails you will receive the failures as feedback and can fix them.`

// buildSystemPrompt renders the fixed agent instructions.
func buildSystemPrompt() string {
	return systemPromptTemplate
}

// buildTaskPrompt renders the opening user message describing the task.
func buildTaskPrompt(t Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n\n%s\n", t.Title, t.Description)
	if t.RiskLevel != "" {
		fmt.Fprintf(&b, "\nRisk level: %s\n", t.RiskLevel)
	}
	if len(t.FilesHint) > 0 {
		fmt.Fprintf(&b, "\nFiles likely involved:\n")
		for _, f := range t.FilesHint {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}
	if t.BranchName != "" {
		fmt.Fprintf(&b, "\nYou are on branch %s. Commit your work there.\n", t.BranchName)
	}
	return b.String()
}
