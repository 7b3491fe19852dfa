// Package supervisor runs the periodic health checks that keep the fleet
// converging: stuck-agent detection, expired-lock cleanup, and retry
// scheduling for failed tasks. All checks are idempotent; a crashed pass
// is retried wholesale on the next tick.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/ent/verificationresult"
	"github.com/louannemur/fleetd/pkg/coordinator"
	"github.com/louannemur/fleetd/pkg/services"
)

const (
	// DefaultInterval is the pass cadence.
	DefaultInterval = 30 * time.Second

	// stuckThreshold is how long an agent may go without activity before
	// it is declared stuck.
	stuckThreshold = 10 * time.Minute
)

// Service is the supervisor loop.
type Service struct {
	client     *ent.Client
	coord      *coordinator.Coordinator
	tasks      *services.TaskService
	exceptions *services.ExceptionService
	interval   time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a supervisor. A non-positive interval uses the default.
func NewService(client *ent.Client, coord *coordinator.Coordinator, tasks *services.TaskService, exceptions *services.ExceptionService, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		client:     client,
		coord:      coord,
		tasks:      tasks,
		exceptions: exceptions,
		interval:   interval,
	}
}

// Start launches the background loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Supervisor started", "interval", s.interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Supervisor stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunPass(ctx)
		}
	}
}

// RunPass executes one supervision pass. The checks are independent and run
// concurrently; a failing check is recorded as an exception and never takes
// the supervisor down.
func (s *Service) RunPass(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.detectStuckAgents(ctx) })
	g.Go(func() error { return s.cleanupExpiredLocks(ctx) })
	g.Go(func() error { return s.scheduleRetries(ctx) })
	if err := g.Wait(); err != nil {
		slog.Error("Supervision pass failed", "error", err)
		_, excErr := s.exceptions.Create(ctx, services.ExceptionInput{
			Type:        exception.TypeUnknown,
			Severity:    exception.SeverityError,
			Title:       "Supervision pass failed",
			Description: err.Error(),
		})
		if excErr != nil {
			slog.Error("Failed to record supervision exception", "error", excErr)
		}
	}
}

// detectStuckAgents fails agents that have been silent past the threshold,
// releases their locks, and fails their tasks.
func (s *Service) detectStuckAgents(ctx context.Context) error {
	cutoff := time.Now().Add(-stuckThreshold)

	agents, err := s.client.Agent.Query().
		Where(
			agent.StatusEQ(agent.StatusWorking),
			agent.Or(
				agent.LastActivityAtLT(cutoff),
				agent.And(agent.LastActivityAtIsNil(), agent.StartedAtLT(cutoff)),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query stuck agents: %w", err)
	}

	for _, ag := range agents {
		taskID := ""
		if ag.CurrentTaskID != nil {
			taskID = *ag.CurrentTaskID
		}
		slog.Warn("Stuck agent detected", "agent_id", ag.ID, "task_id", taskID)
		_, err := s.exceptions.Create(ctx, services.ExceptionInput{
			Type:            exception.TypeAgentStuck,
			Severity:        exception.SeverityError,
			Title:           "Agent stopped reporting activity",
			Description:     fmt.Sprintf("Agent %s has had no activity for over %s. Its locks were released and its task was failed.", ag.ID, stuckThreshold),
			SuggestedAction: "Check the runner process and retry the task",
			AgentID:         ag.ID,
			TaskID:          taskID,
		})
		if err != nil {
			return err
		}

		s.coord.ReleaseAllLocks(ctx, ag.ID)

		err = s.client.Agent.Update().
			Where(agent.IDEQ(ag.ID), agent.StatusEQ(agent.StatusWorking)).
			SetStatus(agent.StatusFailed).
			SetCompletedAt(time.Now()).
			ClearCurrentTaskID().
			AddTasksFailed(1).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to fail stuck agent: %w", err)
		}

		if taskID != "" {
			_, err := s.client.Task.Update().
				Where(
					task.IDEQ(taskID),
					task.StatusIn(task.StatusInProgress, task.StatusVerifying),
				).
				SetStatus(task.StatusFailed).
				ClearAssignedAgentID().
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to fail stuck agent's task: %w", err)
			}
		}
	}
	return nil
}

func (s *Service) cleanupExpiredLocks(ctx context.Context) error {
	count, err := s.coord.CleanupExpiredLocks(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Released expired locks", "count", count)
	}
	return nil
}

// scheduleRetries requeues failed tasks according to the retry policy of
// their latest failure. Tasks the policy refuses, or whose budget is spent,
// are escalated once for human review.
func (s *Service) scheduleRetries(ctx context.Context) error {
	failed, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusFailed)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query failed tasks: %w", err)
	}

	for _, t := range failed {
		ft, err := s.classifyFailure(ctx, t.ID)
		if err != nil {
			return err
		}
		policy := services.PolicyFor(ft)

		if !policy.ShouldRetry || t.RetryCount >= policy.MaxAttempts {
			if policy.HumanReview {
				if err := s.escalateForReview(ctx, t, ft); err != nil {
					return err
				}
			}
			continue
		}

		if !retryDue(t, policy.Delay) {
			continue
		}

		_, err = s.tasks.Retry(ctx, t.ID)
		switch {
		case err == nil:
			slog.Info("Requeued failed task", "task_id", t.ID, "failure_type", ft, "retry", t.RetryCount+1)
		case errors.Is(err, services.ErrRetryBudgetExhausted):
			if err := s.escalateForReview(ctx, t, ft); err != nil {
				return err
			}
		case errors.Is(err, services.ErrStateConflict):
			// Someone else settled the task between query and retry.
		default:
			return err
		}
	}
	return nil
}

func (s *Service) classifyFailure(ctx context.Context, taskID string) (services.FailureType, error) {
	res, err := s.client.VerificationResult.Query().
		Where(verificationresult.TaskIDEQ(taskID)).
		Order(ent.Desc(verificationresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.FailureUnknown, nil
		}
		return services.FailureUnknown, fmt.Errorf("failed to query verification results: %w", err)
	}
	return services.ClassifyVerification(res), nil
}

func (s *Service) escalateForReview(ctx context.Context, t *ent.Task, ft services.FailureType) error {
	_, err := s.exceptions.EnsureOpen(ctx, services.ExceptionInput{
		Type:            exception.TypeTaskFailure,
		Severity:        exception.SeverityWarning,
		Title:           fmt.Sprintf("Task needs human review (%s)", ft),
		Description:     fmt.Sprintf("%q failed with %s and will not be retried automatically.", t.Title, ft),
		SuggestedAction: "Inspect the failure, fix the underlying cause, and retry the task manually",
		TaskID:          t.ID,
	})
	return err
}

// retryDue reports whether the policy delay has elapsed since the task last
// moved. updated_at is bumped on every transition, so it anchors the delay.
func retryDue(t *ent.Task, delay time.Duration) bool {
	return time.Since(t.UpdatedAt) >= delay
}
