package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

func TestLeaderboardRepositoryPeriodMatchTolerates(t *testing.T) {
	repo := NewLeaderboardRepository(store.New(nil))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.LeaderboardSnapshot{
		ID: "lb1", Month: "October", Year: "2024", CreatedAt: time.Now().UTC(),
	}))

	exists, err := repo.ExistsPeriod(ctx, "october", " 2024 ")
	require.NoError(t, err)
	assert.True(t, exists)

	snapshot, err := repo.FindByPeriod(ctx, "OCTOBER", "2024")
	require.NoError(t, err)
	assert.Equal(t, "lb1", snapshot.ID)

	_, err = repo.FindByPeriod(ctx, "October", "2023")
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestLeaderboardRepositoryListAllOrdersByPeriodDescending(t *testing.T) {
	repo := NewLeaderboardRepository(store.New(nil))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, models.LeaderboardSnapshot{ID: "a", Month: "March", Year: "2024"}))
	require.NoError(t, repo.Create(ctx, models.LeaderboardSnapshot{ID: "b", Month: "11", Year: "2024"}))
	require.NoError(t, repo.Create(ctx, models.LeaderboardSnapshot{ID: "c", Month: "December", Year: "2023"}))

	snapshots, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, "b", snapshots[0].ID) // November 2024
	assert.Equal(t, "a", snapshots[1].ID) // March 2024
	assert.Equal(t, "c", snapshots[2].ID) // December 2023
}
