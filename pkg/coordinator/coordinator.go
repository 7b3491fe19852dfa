// Package coordinator mediates write access to files between concurrent
// agents. One file, one owner, time-bounded: locks are advisory rows keyed
// by a globally unique normalized path, and acquisition is linearized by the
// store's uniqueness constraint.
package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/louannemur/fleetd/ent"
	"github.com/louannemur/fleetd/ent/filelock"
)

// DefaultLockDuration is the TTL applied when the caller does not specify one.
const DefaultLockDuration = time.Hour

// Coordinator grants and releases expiring exclusive file locks.
type Coordinator struct {
	client *ent.Client
}

// New creates a Coordinator backed by the given Ent client.
func New(client *ent.Client) *Coordinator {
	return &Coordinator{client: client}
}

// NormalizePath canonicalizes a lock path: forward slashes, collapsed
// slash runs, no trailing slash.
func NormalizePath(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// AcquireLock attempts to take an exclusive lock on filePath for agentID.
// Returns true on success, including the idempotent case where the agent
// already holds the lock. A false return means another agent holds an
// unexpired lock, or the insert lost a race. Transient store errors are
// treated as non-acquisition.
func (c *Coordinator) AcquireLock(ctx context.Context, agentID, taskID, filePath string, duration time.Duration) bool {
	if duration <= 0 {
		duration = DefaultLockDuration
	}
	path := NormalizePath(filePath)

	acquired, err := c.tryAcquire(ctx, agentID, taskID, path, duration)
	if err != nil {
		slog.Warn("Lock acquisition failed", "path", path, "agent_id", agentID, "error", err)
		return false
	}
	return acquired
}

func (c *Coordinator) tryAcquire(ctx context.Context, agentID, taskID, path string, duration time.Duration) (bool, error) {
	tx, err := c.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.FileLock.Query().
		Where(filelock.FilePathEQ(path)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to query lock: %w", err)
	}

	now := time.Now()
	if existing != nil {
		// Re-entrant acquire by the current owner is a no-op success.
		if existing.AgentID == agentID {
			return true, tx.Commit()
		}
		if existing.ExpiresAt.After(now) {
			return false, nil // live lock held by someone else
		}
		// Expired: remove and fall through to insert.
		if err := tx.FileLock.DeleteOne(existing).Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to remove expired lock: %w", err)
		}
	}

	_, err = tx.FileLock.Create().
		SetID(uuid.New().String()).
		SetFilePath(path).
		SetAgentID(agentID).
		SetTaskID(taskID).
		SetAcquiredAt(now).
		SetExpiresAt(now.Add(duration)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another acquirer won the insert race.
			return false, nil
		}
		return false, fmt.Errorf("failed to insert lock: %w", err)
	}

	return true, tx.Commit()
}

// AcquireLocks takes locks on all paths or none. On any failure every lock
// acquired within this call is released and all requested paths are
// reported as failed.
func (c *Coordinator) AcquireLocks(ctx context.Context, agentID, taskID string, paths []string) (acquired []string, failed []string) {
	var taken []string
	for _, p := range paths {
		path := NormalizePath(p)
		if c.AcquireLock(ctx, agentID, taskID, path, DefaultLockDuration) {
			taken = append(taken, path)
			continue
		}
		// Roll back this call's acquisitions.
		for _, t := range taken {
			c.ReleaseLock(ctx, agentID, t)
		}
		for _, q := range paths {
			failed = append(failed, NormalizePath(q))
		}
		return nil, failed
	}
	return taken, nil
}

// ReleaseLock removes the lock on filePath if agentID owns it. Missing
// locks are a no-op.
func (c *Coordinator) ReleaseLock(ctx context.Context, agentID, filePath string) {
	path := NormalizePath(filePath)
	_, err := c.client.FileLock.Delete().
		Where(
			filelock.FilePathEQ(path),
			filelock.AgentIDEQ(agentID),
		).
		Exec(ctx)
	if err != nil {
		slog.Warn("Lock release failed", "path", path, "agent_id", agentID, "error", err)
	}
}

// ReleaseAllLocks removes every lock held by agentID.
func (c *Coordinator) ReleaseAllLocks(ctx context.Context, agentID string) {
	n, err := c.client.FileLock.Delete().
		Where(filelock.AgentIDEQ(agentID)).
		Exec(ctx)
	if err != nil {
		slog.Warn("Bulk lock release failed", "agent_id", agentID, "error", err)
		return
	}
	if n > 0 {
		slog.Debug("Released agent locks", "agent_id", agentID, "count", n)
	}
}

// CleanupExpiredLocks removes every lock whose TTL has elapsed and returns
// the number removed.
func (c *Coordinator) CleanupExpiredLocks(ctx context.Context) (int, error) {
	n, err := c.client.FileLock.Delete().
		Where(filelock.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired locks: %w", err)
	}
	return n, nil
}

// IsFileLocked reports whether an unexpired lock exists on filePath owned
// by an agent other than excludeAgentID (pass "" to consider all owners).
func (c *Coordinator) IsFileLocked(ctx context.Context, filePath, excludeAgentID string) bool {
	q := c.client.FileLock.Query().
		Where(
			filelock.FilePathEQ(NormalizePath(filePath)),
			filelock.ExpiresAtGT(time.Now()),
		)
	if excludeAgentID != "" {
		q = q.Where(filelock.AgentIDNEQ(excludeAgentID))
	}
	locked, err := q.Exist(ctx)
	if err != nil {
		slog.Warn("Lock existence check failed", "path", filePath, "error", err)
		return false
	}
	return locked
}
