package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent/filelock"
	testutil "github.com/louannemur/fleetd/test/util"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"src/main.go", "src/main.go"},
		{"src\\win\\main.go", "src/win/main.go"},
		{"src//double//slash.go", "src/double/slash.go"},
		{"src/trailing/", "src/trailing"},
		{"/", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePath(tt.in), "input %q", tt.in)
	}
}

func TestAcquireLock_Basic(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "src/main.go", time.Hour))

	// Same owner, same path: idempotent.
	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "src/main.go", time.Hour))

	// Different owner: refused while unexpired.
	require.False(t, coord.AcquireLock(ctx, "agent-2", "task-2", "src/main.go", time.Hour))

	// Normalization means these are the same lock.
	require.False(t, coord.AcquireLock(ctx, "agent-2", "task-2", "src//main.go", time.Hour))
}

func TestAcquireLock_ExpiredTakeover(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "a.go", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	require.True(t, coord.AcquireLock(ctx, "agent-2", "task-2", "a.go", time.Hour))

	// The expired row was replaced, not duplicated.
	n, err := client.FileLock.Query().Where(filelock.FilePathEQ("a.go")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lock, err := client.FileLock.Query().Where(filelock.FilePathEQ("a.go")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "agent-2", lock.AgentID)
}

func TestAcquireLocks_AllOrNothing(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	require.True(t, coord.AcquireLock(ctx, "other", "task-0", "b.go", time.Hour))

	acquired, failed := coord.AcquireLocks(ctx, "agent-1", "task-1", []string{"a.go", "b.go", "c.go"})
	assert.Empty(t, acquired)
	assert.Equal(t, []string{"a.go", "b.go", "c.go"}, failed)

	// a.go must have been rolled back and be acquirable by anyone.
	require.True(t, coord.AcquireLock(ctx, "agent-2", "task-2", "a.go", time.Hour))
}

func TestAcquireLocks_Success(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	acquired, failed := coord.AcquireLocks(ctx, "agent-1", "task-1", []string{"a.go", "b.go"})
	assert.Equal(t, []string{"a.go", "b.go"}, acquired)
	assert.Empty(t, failed)
}

func TestReleaseLock_OnlyOwner(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "a.go", time.Hour))

	// Non-owner release is a no-op.
	coord.ReleaseLock(ctx, "agent-2", "a.go")
	assert.True(t, coord.IsFileLocked(ctx, "a.go", ""))

	coord.ReleaseLock(ctx, "agent-1", "a.go")
	assert.False(t, coord.IsFileLocked(ctx, "a.go", ""))
}

func TestReleaseAllLocks(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "a.go", time.Hour))
	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "b.go", time.Hour))
	require.True(t, coord.AcquireLock(ctx, "agent-2", "task-2", "c.go", time.Hour))

	coord.ReleaseAllLocks(ctx, "agent-1")

	assert.False(t, coord.IsFileLocked(ctx, "a.go", ""))
	assert.False(t, coord.IsFileLocked(ctx, "b.go", ""))
	assert.True(t, coord.IsFileLocked(ctx, "c.go", ""))
}

func TestCleanupExpiredLocks(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "old.go", time.Millisecond))
	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "new.go", time.Hour))
	time.Sleep(5 * time.Millisecond)

	n, err := coord.CleanupExpiredLocks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, coord.IsFileLocked(ctx, "new.go", ""))
}

func TestIsFileLocked_ExcludeOwner(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	require.True(t, coord.AcquireLock(ctx, "agent-1", "task-1", "a.go", time.Hour))

	assert.True(t, coord.IsFileLocked(ctx, "a.go", ""))
	assert.False(t, coord.IsFileLocked(ctx, "a.go", "agent-1"))
	assert.True(t, coord.IsFileLocked(ctx, "a.go", "agent-2"))
}

func TestAcquireLock_ConcurrentSingleWinner(t *testing.T) {
	client := testutil.OpenTestClient(t)
	coord := New(client)
	ctx := context.Background()

	const contenders = 8
	var wg sync.WaitGroup
	wins := make(chan string, contenders)

	for i := 0; i < contenders; i++ {
		agentID := string(rune('a' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			if coord.AcquireLock(ctx, agentID, "task", "hot.go", time.Hour) {
				wins <- agentID
			}
		}()
	}
	wg.Wait()
	close(wins)

	var winners []string
	for w := range wins {
		winners = append(winners, w)
	}
	require.Len(t, winners, 1, "exactly one agent must win the lock")

	lock, err := client.FileLock.Query().Where(filelock.FilePathEQ("hot.go")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, winners[0], lock.AgentID)
}
