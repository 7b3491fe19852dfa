package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louannemur/fleetd/ent/exception"
	"github.com/louannemur/fleetd/ent/task"
)

func TestExceptionCreate_RequiresTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.exceptions.Create(context.Background(), ExceptionInput{
		Type:     exception.TypeTaskFailure,
		Severity: exception.SeverityError,
	})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestExceptionEnsureOpen_Dedupes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seeded := seedTask(t, env.client, task.StatusFailed, 2)
	in := ExceptionInput{
		Type:     exception.TypeVerificationFailed,
		Severity: exception.SeverityWarning,
		Title:    "Verification failed",
		TaskID:   seeded.ID,
	}

	first, err := env.exceptions.EnsureOpen(ctx, in)
	require.NoError(t, err)
	second, err := env.exceptions.EnsureOpen(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "open exception is reused")

	// Resolving reopens the dedupe window.
	_, err = env.exceptions.Resolve(ctx, first.ID, "handled")
	require.NoError(t, err)
	third, err := env.exceptions.EnsureOpen(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestExceptionWorkflow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	exc, err := env.exceptions.Create(ctx, ExceptionInput{
		Type:     exception.TypeAgentStuck,
		Severity: exception.SeverityCritical,
		Title:    "Agent stuck",
	})
	require.NoError(t, err)
	assert.Equal(t, exception.StatusOpen, exc.Status)

	acked, err := env.exceptions.Acknowledge(ctx, exc.ID)
	require.NoError(t, err)
	assert.Equal(t, exception.StatusAcknowledged, acked.Status)

	// Acknowledge is open-only.
	_, err = env.exceptions.Acknowledge(ctx, exc.ID)
	assert.ErrorIs(t, err, ErrStateConflict)

	resolved, err := env.exceptions.Resolve(ctx, exc.ID, "restarted the runner")
	require.NoError(t, err)
	assert.Equal(t, exception.StatusResolved, resolved.Status)
	assert.Equal(t, "restarted the runner", resolved.ResolutionNotes)
	assert.NotNil(t, resolved.ResolvedAt)

	// Terminal states refuse further transitions.
	_, err = env.exceptions.Dismiss(ctx, exc.ID)
	assert.ErrorIs(t, err, ErrStateConflict)
	_, err = env.exceptions.Resolve(ctx, exc.ID, "again")
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestExceptionDismiss_FromOpen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	exc, err := env.exceptions.Create(ctx, ExceptionInput{
		Type:     exception.TypeTaskFailure,
		Severity: exception.SeverityError,
		Title:    "noise",
	})
	require.NoError(t, err)

	dismissed, err := env.exceptions.Dismiss(ctx, exc.ID)
	require.NoError(t, err)
	assert.Equal(t, exception.StatusDismissed, dismissed.Status)
	assert.NotNil(t, dismissed.ResolvedAt)
}

func TestExceptionList_StatusFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.exceptions.Create(ctx, ExceptionInput{
		Type: exception.TypeTaskFailure, Severity: exception.SeverityError, Title: "a",
	})
	require.NoError(t, err)
	_, err = env.exceptions.Create(ctx, ExceptionInput{
		Type: exception.TypeTaskFailure, Severity: exception.SeverityError, Title: "b",
	})
	require.NoError(t, err)
	_, err = env.exceptions.Resolve(ctx, a.ID, "")
	require.NoError(t, err)

	open, err := env.exceptions.List(ctx, "open", 0)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "b", open[0].Title)

	all, err := env.exceptions.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = env.exceptions.List(ctx, "bogus", 0)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestExceptionTransition_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.exceptions.Acknowledge(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
