package services

import (
	"context"
	"fmt"

	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/agentlog"
)

// AgentService exposes the operator view of agents: listing, log access,
// and the cooperative pause/resume/stop controls. The loop observes control
// changes at its next heartbeat; nothing here preempts a running process.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// List returns agents, optionally filtered by status, newest first.
func (s *AgentService) List(ctx context.Context, status string, limit int) ([]*ent.Agent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.client.Agent.Query().
		Order(ent.Desc(agent.FieldStartedAt)).
		Limit(limit)
	if status != "" {
		if err := agent.StatusValidator(agent.Status(status)); err != nil {
			return nil, NewValidationError("status", "unknown value "+status)
		}
		q = q.Where(agent.StatusEQ(agent.Status(status)))
	}
	return q.All(ctx)
}

// Get loads one agent.
func (s *AgentService) Get(ctx context.Context, id string) (*ent.Agent, error) {
	ag, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	return ag, nil
}

// Logs returns an agent's log stream in chronological order.
func (s *AgentService) Logs(ctx context.Context, id string, limit int) ([]*ent.AgentLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	return s.client.AgentLog.Query().
		Where(agentlog.AgentIDEQ(id)).
		Order(ent.Asc(agentlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// Pause asks a working agent to pause. Locks are kept while paused.
func (s *AgentService) Pause(ctx context.Context, id string) (*ent.Agent, error) {
	return s.transition(ctx, id, []agent.Status{agent.StatusWorking}, agent.StatusPaused)
}

// Resume returns a paused agent to work.
func (s *AgentService) Resume(ctx context.Context, id string) (*ent.Agent, error) {
	return s.transition(ctx, id, []agent.Status{agent.StatusPaused}, agent.StatusWorking)
}

// Stop asks a working or paused agent to wind down. The loop observes the
// status change at its next heartbeat and finalizes.
func (s *AgentService) Stop(ctx context.Context, id string) (*ent.Agent, error) {
	return s.transition(ctx, id, []agent.Status{agent.StatusWorking, agent.StatusPaused}, agent.StatusCompleted)
}

func (s *AgentService) transition(ctx context.Context, id string, from []agent.Status, to agent.Status) (*ent.Agent, error) {
	n, err := s.client.Agent.Update().
		Where(agent.IDEQ(id), agent.StatusIn(from...)).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	if n == 0 {
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrStateConflict
	}
	return s.Get(ctx, id)
}
