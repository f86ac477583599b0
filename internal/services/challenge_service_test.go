package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/challengehub/challengehub-backend/internal/repository"
	"github.com/challengehub/challengehub-backend/internal/worker"
)

func TestChallengeCreate(t *testing.T) {
	challenges := newFakeChallenges()
	logs := &fakeAuditLogs{}
	wp := worker.NewPool(1)
	svc := NewChallengeService(challenges, logs, wp)

	c, err := svc.Create("Build a parser", "parse things", 500, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)
	require.Equal(t, "user-1", c.CreatedBy)
	require.Equal(t, int64(500), c.Prize)

	got, err := svc.GetByID(c.ID)
	require.NoError(t, err)
	require.Equal(t, c, got)

	wp.Stop()
	require.Contains(t, logs.actions(), "created")
}

func TestChallengeCreate_Invalid(t *testing.T) {
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := NewChallengeService(newFakeChallenges(), &fakeAuditLogs{}, wp)

	_, err := svc.Create("", "desc", 100, "user-1")
	require.Error(t, err)
	_, err = svc.Create("title", "", 100, "user-1")
	require.Error(t, err)
	_, err = svc.Create("title", "desc", 100, "")
	require.Error(t, err)
}

func TestChallengeCreate_StoreFailure(t *testing.T) {
	challenges := newFakeChallenges()
	challenges.createErr = errors.New("disk on fire")
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := NewChallengeService(challenges, &fakeAuditLogs{}, wp)

	_, err := svc.Create("title", "desc", 100, "user-1")
	require.Error(t, err)
}

func TestChallengeList(t *testing.T) {
	challenges := newFakeChallenges()
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := NewChallengeService(challenges, &fakeAuditLogs{}, wp)

	for i := 0; i < 5; i++ {
		_, err := svc.Create("challenge", "desc", int64(i), "user-1")
		require.NoError(t, err)
	}

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestChallengeGet_NotFound(t *testing.T) {
	wp := worker.NewPool(1)
	defer wp.Stop()
	svc := NewChallengeService(newFakeChallenges(), &fakeAuditLogs{}, wp)

	_, err := svc.GetByID("missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
