package services

import (
	"context"
	"fmt"
	"time"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/task"
)

// FinalizeInput describes a terminal agent outcome.
type FinalizeInput struct {
	AgentID string
	TaskID  string
	Success bool
	Summary string
	Error   string
}

// Finalize settles the terminal state of one agent run:
//
//  1. Every coordinator lock held by the agent is released.
//  2. The task is re-read; a terminal status already written by the
//     verifier is respected, otherwise the loop outcome decides.
//  3. The agent is parked (idle on success, failed otherwise) and its
//     completion counters are bumped.
//  4. A failure without a prior verification exception raises a
//     TASK_FAILURE incident.
func (s *RunnerService) Finalize(ctx context.Context, in FinalizeInput) error {
	s.coord.ReleaseAllLocks(ctx, in.AgentID)

	now := time.Now()

	if in.TaskID != "" {
		t, err := s.client.Task.Get(ctx, in.TaskID)
		if err != nil {
			if !ent.IsNotFound(err) {
				return fmt.Errorf("failed to load task: %w", err)
			}
		} else {
			switch t.Status {
			case task.StatusCompleted, task.StatusFailed, task.StatusCancelled:
				// Verifier or operator already settled it.
			default:
				target := task.StatusFailed
				if in.Success {
					target = task.StatusCompleted
				}
				_, err := s.client.Task.Update().
					Where(task.IDEQ(in.TaskID), task.StatusEQ(t.Status)).
					SetStatus(target).
					SetCompletedAt(now).
					ClearAssignedAgentID().
					Save(ctx)
				if err != nil {
					return fmt.Errorf("failed to settle task: %w", err)
				}
			}
		}
	}

	agentStatus := agent.StatusFailed
	update := s.client.Agent.Update().
		Where(agent.IDEQ(in.AgentID)).
		SetCompletedAt(now).
		ClearCurrentTaskID()
	if in.Success {
		agentStatus = agent.StatusIdle
		update.AddTasksCompleted(1)
	} else {
		update.AddTasksFailed(1)
	}
	update.SetStatus(agentStatus)
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to settle agent: %w", err)
	}

	if !in.Success {
		if err := s.raiseFailureException(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

// raiseFailureException records a TASK_FAILURE incident unless verification
// already raised one for this task.
func (s *RunnerService) raiseFailureException(ctx context.Context, in FinalizeInput) error {
	if in.TaskID != "" {
		exists, err := s.client.Exception.Query().
			Where(
				exception.TaskIDEQ(in.TaskID),
				exception.TypeEQ(exception.TypeVerificationFailed),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to query exceptions: %w", err)
		}
		if exists {
			return nil
		}
	}

	desc := in.Error
	if desc == "" {
		desc = in.Summary
	}
	_, err := s.exceptions.Create(ctx, ExceptionInput{
		Type:            exception.TypeTaskFailure,
		Severity:        exception.SeverityError,
		Title:           "Agent run failed",
		Description:     desc,
		SuggestedAction: "Inspect the agent logs and retry the task once the cause is addressed",
		AgentID:         in.AgentID,
		TaskID:          in.TaskID,
	})
	return err
}
