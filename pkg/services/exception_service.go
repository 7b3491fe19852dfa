package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/exception"
)

// ExceptionService manages operator-visible incident records.
type ExceptionService struct {
	client *ent.Client
}

// NewExceptionService creates a new ExceptionService
func NewExceptionService(client *ent.Client) *ExceptionService {
	return &ExceptionService{client: client}
}

// ExceptionInput describes a new incident.
type ExceptionInput struct {
	Type            exception.Type
	Severity        exception.Severity
	Title           string
	Description     string
	SuggestedAction string
	AgentID         string
	TaskID          string
}

// Create inserts a new open exception.
func (s *ExceptionService) Create(ctx context.Context, in ExceptionInput) (*ent.Exception, error) {
	if in.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	builder := s.client.Exception.Create().
		SetID(uuid.New().String()).
		SetType(in.Type).
		SetSeverity(in.Severity).
		SetStatus(exception.StatusOpen).
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetSuggestedAction(in.SuggestedAction)

	if in.AgentID != "" {
		builder.SetAgentID(in.AgentID)
	}
	if in.TaskID != "" {
		builder.SetTaskID(in.TaskID)
	}

	exc, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create exception: %w", err)
	}
	return exc, nil
}

// EnsureOpen creates an exception unless an open one of the same type
// already exists for the task. Used by the supervisor so repeated passes
// do not pile up duplicate incidents.
func (s *ExceptionService) EnsureOpen(ctx context.Context, in ExceptionInput) (*ent.Exception, error) {
	if in.TaskID != "" {
		existing, err := s.client.Exception.Query().
			Where(
				exception.TypeEQ(in.Type),
				exception.TaskIDEQ(in.TaskID),
				exception.StatusEQ(exception.StatusOpen),
			).
			First(ctx)
		if err == nil {
			return existing, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query open exceptions: %w", err)
		}
	}
	return s.Create(ctx, in)
}

// List returns exceptions, optionally filtered by workflow status,
// newest first.
func (s *ExceptionService) List(ctx context.Context, status string, limit int) ([]*ent.Exception, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.client.Exception.Query().
		Order(ent.Desc(exception.FieldCreatedAt)).
		Limit(limit)
	if status != "" {
		if err := exception.StatusValidator(exception.Status(status)); err != nil {
			return nil, NewValidationError("status", "unknown value "+status)
		}
		q = q.Where(exception.StatusEQ(exception.Status(status)))
	}
	return q.All(ctx)
}

// Acknowledge moves an open exception to acknowledged.
func (s *ExceptionService) Acknowledge(ctx context.Context, id string) (*ent.Exception, error) {
	return s.transition(ctx, id, exception.StatusOpen, exception.StatusAcknowledged, "")
}

// Resolve closes an exception with optional notes.
func (s *ExceptionService) Resolve(ctx context.Context, id, notes string) (*ent.Exception, error) {
	return s.transition(ctx, id, "", exception.StatusResolved, notes)
}

// Dismiss closes an exception without resolution.
func (s *ExceptionService) Dismiss(ctx context.Context, id string) (*ent.Exception, error) {
	return s.transition(ctx, id, "", exception.StatusDismissed, "")
}

// transition applies a guarded workflow move. An empty from accepts any
// non-terminal state.
func (s *ExceptionService) transition(ctx context.Context, id string, from, to exception.Status, notes string) (*ent.Exception, error) {
	exc, err := s.client.Exception.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load exception: %w", err)
	}

	if exc.Status == exception.StatusResolved || exc.Status == exception.StatusDismissed {
		return nil, ErrStateConflict
	}
	if from != "" && exc.Status != from {
		return nil, ErrStateConflict
	}

	update := exc.Update().SetStatus(to)
	if notes != "" {
		update.SetResolutionNotes(notes)
	}
	if to == exception.StatusResolved || to == exception.StatusDismissed {
		update.SetResolvedAt(time.Now())
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update exception: %w", err)
	}
	return updated, nil
}
