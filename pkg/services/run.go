package services

import (
	"context"
	"fmt"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/runnersession"
	"github.com/louannemur/fleetd/ent/task"
)

// Run starts a task on an operator's behalf. A queued task is claimed
// exactly as a runner claim would, targeted at the runner registered for
// workingDir; a failed task is requeued (a retry).
func (s *TaskService) Run(ctx context.Context, id, workingDir string) (*ent.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	switch t.Status {
	case task.StatusFailed:
		return s.Retry(ctx, id)
	case task.StatusQueued:
	default:
		return nil, ErrStateConflict
	}

	sess, err := s.sessionForWorkingDir(ctx, workingDir)
	if err != nil {
		return nil, err
	}

	ag, err := claimTask(ctx, s.client, t, sess, sess.WorkingDir)
	if err != nil {
		return nil, err
	}
	if ag == nil {
		return nil, ErrStateConflict // claimed concurrently
	}
	return s.GetTask(ctx, id)
}

// sessionForWorkingDir picks the most recently seen active runner session,
// preferring an exact workingDir match.
func (s *TaskService) sessionForWorkingDir(ctx context.Context, workingDir string) (*ent.RunnerSession, error) {
	if workingDir != "" {
		sess, err := s.client.RunnerSession.Query().
			Where(
				runnersession.IsActive(true),
				runnersession.WorkingDirEQ(workingDir),
			).
			Order(ent.Desc(runnersession.FieldLastSeenAt)).
			First(ctx)
		if err == nil {
			return sess, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query sessions: %w", err)
		}
	}

	sess, err := s.client.RunnerSession.Query().
		Where(runnersession.IsActive(true)).
		Order(ent.Desc(runnersession.FieldLastSeenAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("workingDir", "no active runner session available")
		}
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	return sess, nil
}
