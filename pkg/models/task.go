package models

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	RiskLevel   string   `json:"riskLevel,omitempty"`
	FilesHint   []string `json:"filesHint,omitempty"`
}

// UpdateTaskRequest is the body of PATCH /api/tasks/:id. Only queued tasks
// accept updates; nil fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *int      `json:"priority,omitempty"`
	RiskLevel   *string   `json:"riskLevel,omitempty"`
	FilesHint   *[]string `json:"filesHint,omitempty"`
}

// ListTasksParams filters GET /api/tasks.
type ListTasksParams struct {
	Status string
	Limit  int
}

// RunTaskRequest is the body of POST /api/tasks/:id/run (and retry/auto-retry).
type RunTaskRequest struct {
	WorkingDir string `json:"workingDir"`
}

// VerifyRequest is the body of POST /api/verify.
type VerifyRequest struct {
	TaskID     string `json:"taskId"`
	WorkingDir string `json:"workingDir"`
}
