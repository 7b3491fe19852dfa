package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/agent"
	"github.com/louannemur/fleetd/ent/agentlog"
	"github.com/louannemur/fleetd/ent/runnersession"
	"github.com/louannemur/fleetd/ent/task"
	"github.com/louannemur/fleetd/pkg/coordinator"
	"github.com/louannemur/fleetd/pkg/models"
)

const (
	// maxLogContentBytes caps a single AgentLog content field.
	maxLogContentBytes = 50 * 1024

	// claimRetries bounds how many queued candidates a single claim call
	// will race for before giving up.
	claimRetries = 5
)

// RunnerService implements the pull-based runner protocol: register, status,
// claim, heartbeat, log ingest, and completion. Every operation except
// Register authenticates via the session token.
type RunnerService struct {
	client     *ent.Client
	coord      *coordinator.Coordinator
	exceptions *ExceptionService
}

// NewRunnerService creates a new RunnerService
func NewRunnerService(client *ent.Client, coord *coordinator.Coordinator, exceptions *ExceptionService) *RunnerService {
	return &RunnerService{client: client, coord: coord, exceptions: exceptions}
}

// newToken returns an opaque high-entropy bearer token.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Register creates (or reactivates) a runner session and returns its token.
// An inactive session with the same name is reactivated with a fresh token;
// an active one is left untouched and a new session is created, so an
// existing active token is never disclosed to the requester.
func (s *RunnerService) Register(ctx context.Context, req models.RegisterRunnerRequest) (*models.RegisterRunnerResponse, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.WorkingDir == "" {
		return nil, NewValidationError("workingDir", "required")
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	existing, err := s.client.RunnerSession.Query().
		Where(
			runnersession.NameEQ(req.Name),
			runnersession.IsActive(false),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetToken(token).
			SetWorkingDir(req.WorkingDir).
			SetIsActive(true).
			SetLastSeenAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reactivate session: %w", err)
		}
		return &models.RegisterRunnerResponse{
			Session: models.RunnerSessionInfo{ID: updated.ID, Token: token},
		}, nil
	}

	created, err := s.client.RunnerSession.Create().
		SetID(uuid.New().String()).
		SetToken(token).
		SetName(req.Name).
		SetWorkingDir(req.WorkingDir).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &models.RegisterRunnerResponse{
		Session: models.RunnerSessionInfo{ID: created.ID, Token: token},
	}, nil
}

// ValidateSession resolves a token to an active session and bumps its
// last-seen timestamp. Unknown or inactive tokens yield ErrUnauthorized.
func (s *RunnerService) ValidateSession(ctx context.Context, token string) (*ent.RunnerSession, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	sess, err := s.client.RunnerSession.Query().
		Where(runnersession.TokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if !sess.IsActive {
		return nil, ErrUnauthorized
	}
	// Best effort; stale last_seen_at only affects observability.
	_ = sess.Update().SetLastSeenAt(time.Now()).Exec(ctx)
	return sess, nil
}

// Status returns the number of tasks available for claiming.
func (s *RunnerService) Status(ctx context.Context, token string) (*models.RunnerStatusResponse, error) {
	if _, err := s.ValidateSession(ctx, token); err != nil {
		return nil, err
	}
	count, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusQueued)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count queued tasks: %w", err)
	}
	return &models.RunnerStatusResponse{
		AvailableTasks: models.AvailableTasks{Count: count},
	}, nil
}

// Claim atomically assigns the highest-urgency queued task to a fresh agent
// bound to the calling session. Candidates are ordered priority ascending,
// then FIFO. Losing the conditional update moves on to the next candidate,
// up to claimRetries times. A nil Task in the response means nothing was
// claimable.
func (s *RunnerService) Claim(ctx context.Context, req models.ClaimRequest) (*models.ClaimResponse, error) {
	sess, err := s.ValidateSession(ctx, req.RunnerToken)
	if err != nil {
		return nil, err
	}
	workingDir := req.WorkingDir
	if workingDir == "" {
		workingDir = sess.WorkingDir
	}

	for attempt := 0; attempt < claimRetries; attempt++ {
		candidate, err := s.client.Task.Query().
			Where(task.StatusEQ(task.StatusQueued)).
			Order(ent.Asc(task.FieldPriority), ent.Asc(task.FieldCreatedAt)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return &models.ClaimResponse{}, nil
			}
			return nil, fmt.Errorf("failed to query queued tasks: %w", err)
		}

		ag, err := claimTask(ctx, s.client, candidate, sess, workingDir)
		if err != nil {
			return nil, err
		}
		if ag == nil {
			continue // lost the race, next candidate
		}

		return &models.ClaimResponse{
			Task: &models.ClaimedTask{
				ID:          candidate.ID,
				Title:       candidate.Title,
				Description: candidate.Description,
				Priority:    candidate.Priority,
				RiskLevel:   string(candidate.RiskLevel),
				FilesHint:   candidate.FilesHint,
			},
			Agent: &models.ClaimedAgent{ID: ag.ID, BranchName: ag.BranchName},
		}, nil
	}

	return &models.ClaimResponse{}, nil
}

// claimTask performs the exactly-once claim: create an agent, then attempt
// the conditional QUEUED → IN_PROGRESS update. Zero affected rows means a
// concurrent claimer won; the transaction rolls back and nil is returned.
func claimTask(ctx context.Context, client *ent.Client, t *ent.Task, sess *ent.RunnerSession, workingDir string) (*ent.Agent, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	branch := "agent/" + shortID(t.ID)
	now := time.Now()

	ag, err := tx.Agent.Create().
		SetID(uuid.New().String()).
		SetName("agent-" + shortID(t.ID)).
		SetStatus(agent.StatusWorking).
		SetCurrentTaskID(t.ID).
		SetBranchName(branch).
		SetRunnerSessionID(sess.ID).
		SetWorkingDir(workingDir).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	n, err := tx.Task.Update().
		Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusQueued)).
		SetStatus(task.StatusInProgress).
		SetAssignedAgentID(ag.ID).
		SetBranchName(branch).
		SetStartedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}
	if n == 0 {
		return nil, nil // raced; rollback discards the agent
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return ag, nil
}

// shortID returns the first 8 characters of an ID for branch/agent naming.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Heartbeat records agent liveness and optional token usage. The response
// carries a stop hint when the agent is no longer bound to a live task, so
// remote loops observe cancellation cooperatively.
func (s *RunnerService) Heartbeat(ctx context.Context, req models.HeartbeatRequest) (*models.HeartbeatResponse, bool, error) {
	sess, err := s.ValidateSession(ctx, req.RunnerToken)
	if err != nil {
		return nil, false, err
	}

	ag, err := s.ownedAgent(ctx, sess, req.AgentID)
	if err != nil {
		return nil, false, err
	}

	update := ag.Update().SetLastActivityAt(time.Now())
	if req.TokensUsed > 0 {
		update.AddTotalTokensUsed(req.TokensUsed)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to record heartbeat: %w", err)
	}

	stop := ag.Status != agent.StatusWorking && ag.Status != agent.StatusPaused
	if !stop && req.TaskID != "" {
		t, err := s.client.Task.Get(ctx, req.TaskID)
		if err == nil && t.Status == task.StatusCancelled {
			stop = true
		}
	}

	resp := &models.HeartbeatResponse{
		Success:   true,
		Timestamp: time.Now(),
		Stop:      stop,
		Pause:     ag.Status == agent.StatusPaused,
	}
	return resp, stop, nil
}

// AppendLogs writes a batch of structured log entries for an agent,
// preserving client order via strictly increasing timestamps. Content is
// truncated to 50 KB per entry.
func (s *RunnerService) AppendLogs(ctx context.Context, req models.AppendLogsRequest) error {
	sess, err := s.ValidateSession(ctx, req.RunnerToken)
	if err != nil {
		return err
	}
	if _, err := s.ownedAgent(ctx, sess, req.AgentID); err != nil {
		return err
	}
	if len(req.Logs) == 0 {
		return nil
	}

	base := time.Now()
	builders := make([]*ent.AgentLogCreate, 0, len(req.Logs))
	for i, entry := range req.Logs {
		logType := agentlog.LogType(entry.LogType)
		if err := agentlog.LogTypeValidator(logType); err != nil {
			return NewValidationError("logType", "unknown value "+entry.LogType)
		}
		b := s.client.AgentLog.Create().
			SetID(uuid.New().String()).
			SetAgentID(req.AgentID).
			SetLogType(logType).
			SetContent(truncate(entry.Content, maxLogContentBytes)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Microsecond))
		if req.TaskID != "" {
			b.SetTaskID(req.TaskID)
		}
		if entry.Metadata != nil {
			b.SetMetadata(entry.Metadata)
		}
		builders = append(builders, b)
	}

	if err := s.client.AgentLog.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to append logs: %w", err)
	}
	return nil
}

// Complete finalizes an agent's run without re-running verification (the
// runner already did, or declared failure).
func (s *RunnerService) Complete(ctx context.Context, req models.CompleteRequest) error {
	sess, err := s.ValidateSession(ctx, req.RunnerToken)
	if err != nil {
		return err
	}
	if _, err := s.ownedAgent(ctx, sess, req.AgentID); err != nil {
		return err
	}
	return s.Finalize(ctx, FinalizeInput{
		AgentID: req.AgentID,
		TaskID:  req.TaskID,
		Success: req.Success,
		Summary: req.Summary,
		Error:   req.Error,
	})
}

// AcquireLocks validates the session and delegates an all-or-nothing batch
// acquire to the coordinator.
func (s *RunnerService) AcquireLocks(ctx context.Context, req models.AcquireLocksRequest) (*models.AcquireLocksResponse, error) {
	sess, err := s.ValidateSession(ctx, req.RunnerToken)
	if err != nil {
		return nil, err
	}
	ag, err := s.ownedAgent(ctx, sess, req.AgentID)
	if err != nil {
		return nil, err
	}
	if len(req.Paths) == 0 {
		return nil, NewValidationError("paths", "required")
	}

	taskID := req.TaskID
	if taskID == "" && ag.CurrentTaskID != nil {
		taskID = *ag.CurrentTaskID
	}

	acquired, failed := s.coord.AcquireLocks(ctx, req.AgentID, taskID, req.Paths)
	return &models.AcquireLocksResponse{Acquired: acquired, Failed: failed}, nil
}

// ReleaseLocks releases the named paths, or everything the agent holds when
// no paths are given.
func (s *RunnerService) ReleaseLocks(ctx context.Context, req models.ReleaseLocksRequest) error {
	sess, err := s.ValidateSession(ctx, req.RunnerToken)
	if err != nil {
		return err
	}
	if _, err := s.ownedAgent(ctx, sess, req.AgentID); err != nil {
		return err
	}

	if len(req.Paths) == 0 {
		s.coord.ReleaseAllLocks(ctx, req.AgentID)
		return nil
	}
	for _, path := range req.Paths {
		s.coord.ReleaseLock(ctx, req.AgentID, path)
	}
	return nil
}

// ownedAgent loads an agent and enforces session ownership.
func (s *RunnerService) ownedAgent(ctx context.Context, sess *ent.RunnerSession, agentID string) (*ent.Agent, error) {
	if agentID == "" {
		return nil, NewValidationError("agentId", "required")
	}
	ag, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if ag.RunnerSessionID != sess.ID {
		return nil, ErrForbidden
	}
	return ag, nil
}

// truncate limits s to max bytes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
