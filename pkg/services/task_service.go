package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/ent/verificationresult"
	"github.com/louannemur/fleetd/pkg/coordinator"
	"github.com/louannemur/fleetd/pkg/models"
)

// MaxTaskRetries caps operator-driven retries per task.
const MaxTaskRetries = 3

// TaskService manages task lifecycle: creation, guarded state transitions,
// retry, and cancellation. All transitions go through conditional updates so
// concurrent callers lose cleanly with ErrStateConflict.
type TaskService struct {
	client *ent.Client
	coord  *coordinator.Coordinator
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client, coord *coordinator.Coordinator) *TaskService {
	return &TaskService{client: client, coord: coord}
}

// CreateTask inserts a new queued task.
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	priority := 2
	if req.Priority != nil {
		if *req.Priority < 0 || *req.Priority > 3 {
			return nil, NewValidationError("priority", "must be in 0..3")
		}
		priority = *req.Priority
	}

	risk := task.RiskLevelMedium
	if req.RiskLevel != "" {
		risk = task.RiskLevel(req.RiskLevel)
		if err := task.RiskLevelValidator(risk); err != nil {
			return nil, NewValidationError("riskLevel", "unknown value "+req.RiskLevel)
		}
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetStatus(task.StatusQueued).
		SetPriority(priority).
		SetRiskLevel(risk)
	if len(req.FilesHint) > 0 {
		builder.SetFilesHint(req.FilesHint)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// GetTask loads a task by ID.
func (s *TaskService) GetTask(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return t, nil
}

// ListTasks returns tasks, optionally filtered by status, newest first.
func (s *TaskService) ListTasks(ctx context.Context, params models.ListTasksParams) ([]*ent.Task, error) {
	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.client.Task.Query().
		Order(ent.Desc(task.FieldCreatedAt)).
		Limit(limit)
	if params.Status != "" {
		if err := task.StatusValidator(task.Status(params.Status)); err != nil {
			return nil, NewValidationError("status", "unknown value "+params.Status)
		}
		q = q.Where(task.StatusEQ(task.Status(params.Status)))
	}
	return q.All(ctx)
}

// UpdateTask patches mutable fields of a still-queued task.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusQueued {
		return nil, ErrStateConflict
	}

	update := s.client.Task.Update().
		Where(task.IDEQ(id), task.StatusEQ(task.StatusQueued))
	if req.Title != nil {
		if *req.Title == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Priority != nil {
		if *req.Priority < 0 || *req.Priority > 3 {
			return nil, NewValidationError("priority", "must be in 0..3")
		}
		update.SetPriority(*req.Priority)
	}
	if req.RiskLevel != nil {
		risk := task.RiskLevel(*req.RiskLevel)
		if err := task.RiskLevelValidator(risk); err != nil {
			return nil, NewValidationError("riskLevel", "unknown value "+*req.RiskLevel)
		}
		update.SetRiskLevel(risk)
	}
	if req.FilesHint != nil {
		update.SetFilesHint(*req.FilesHint)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if n == 0 {
		return nil, ErrStateConflict
	}
	return s.GetTask(ctx, id)
}

// Retry requeues a failed (or cancelled) task, incrementing its retry
// counter. The files hint is preserved; the retry budget is capped at
// MaxTaskRetries.
func (s *TaskService) Retry(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusFailed && t.Status != task.StatusCancelled {
		return nil, ErrStateConflict
	}
	if t.RetryCount >= MaxTaskRetries {
		return nil, ErrRetryBudgetExhausted
	}

	n, err := s.client.Task.Update().
		Where(task.IDEQ(id), task.StatusEQ(t.Status)).
		SetStatus(task.StatusQueued).
		AddRetryCount(1).
		ClearAssignedAgentID().
		ClearCompletedAt().
		ClearVerificationStatus().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to requeue task: %w", err)
	}
	if n == 0 {
		return nil, ErrStateConflict
	}
	return s.GetTask(ctx, id)
}

// AutoRetry is the supervisor-driven variant of Retry. It refuses when the
// most recent verification failure classifies into a no-retry type.
func (s *TaskService) AutoRetry(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != task.StatusFailed {
		return nil, ErrStateConflict
	}

	ft, err := s.classifyLastFailure(ctx, id)
	if err != nil {
		return nil, err
	}
	if !PolicyFor(ft).ShouldRetry {
		return nil, fmt.Errorf("%w: %s", ErrRetryRefused, ft)
	}
	return s.Retry(ctx, id)
}

// classifyLastFailure classifies the newest verification result for the
// task, or UNKNOWN when none exists.
func (s *TaskService) classifyLastFailure(ctx context.Context, taskID string) (FailureType, error) {
	res, err := s.client.VerificationResult.Query().
		Where(verificationresult.TaskIDEQ(taskID)).
		Order(ent.Desc(verificationresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return FailureUnknown, nil
		}
		return FailureUnknown, fmt.Errorf("failed to load verification result: %w", err)
	}
	return ClassifyVerification(res), nil
}

// Cancel transitions a queued, in-progress, or verifying task to cancelled.
// A bound agent has its locks released and is parked idle; its loop observes
// the stop at the next heartbeat.
func (s *TaskService) Cancel(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	switch t.Status {
	case task.StatusQueued, task.StatusInProgress, task.StatusVerifying:
	default:
		return nil, ErrStateConflict
	}

	n, err := s.client.Task.Update().
		Where(task.IDEQ(id), task.StatusEQ(t.Status)).
		SetStatus(task.StatusCancelled).
		SetCompletedAt(time.Now()).
		ClearAssignedAgentID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}
	if n == 0 {
		return nil, ErrStateConflict
	}

	if t.AssignedAgentID != nil {
		s.coord.ReleaseAllLocks(ctx, *t.AssignedAgentID)
		err := s.client.Agent.Update().
			Where(agent.IDEQ(*t.AssignedAgentID)).
			SetStatus(agent.StatusIdle).
			ClearCurrentTaskID().
			SetCompletedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to park agent after cancel: %w", err)
		}
	}

	return s.GetTask(ctx, id)
}

// CountQueued returns the number of queued tasks.
func (s *TaskService) CountQueued(ctx context.Context) (int, error) {
	return s.client.Task.Query().
		Where(task.StatusEQ(task.StatusQueued)).
		Count(ctx)
}

// VerificationResults returns the newest verification results for a task.
func (s *TaskService) VerificationResults(ctx context.Context, taskID string, limit int) ([]*ent.VerificationResult, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.client.VerificationResult.Query().
		Where(verificationresult.TaskIDEQ(taskID)).
		Order(ent.Desc(verificationresult.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
