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

func TestAttendanceRepositoryUpsertOverwritesSameKey(t *testing.T) {
	repo := NewAttendanceRepository(store.New(nil))
	ctx := context.Background()
	now := time.Now().UTC()

	updated, err := repo.Upsert(ctx, "prof@campus.edu", "s@campus.edu", "Algorithms", "2024-10-05", models.AttendanceAbsent, now)
	require.NoError(t, err)
	assert.False(t, updated)

	updated, err = repo.Upsert(ctx, "prof@campus.edu", "s@campus.edu", "Algorithms", "2024-10-05", models.AttendancePresent, now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, updated)

	records, err := repo.ListByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendancePresent, records[0].Status)
	require.NotNil(t, records[0].UpdatedAt)
}

func TestAttendanceRepositoryDistinctDatesStaySeparate(t *testing.T) {
	repo := NewAttendanceRepository(store.New(nil))
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Upsert(ctx, "prof@campus.edu", "s@campus.edu", "Algorithms", "2024-10-05", models.AttendancePresent, now)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "prof@campus.edu", "s@campus.edu", "Algorithms", "2024-10-06", models.AttendancePresent, now)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "prof@campus.edu", "s@campus.edu", "Databases", "2024-10-05", models.AttendanceAbsent, now)
	require.NoError(t, err)

	records, err := repo.ListByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
