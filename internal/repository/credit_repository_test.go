package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-api/internal/store"
)

func TestCreditRepositoryApplyBucketsByCalendarMonth(t *testing.T) {
	repo := NewCreditRepository(store.New(nil))
	ctx := context.Background()

	october := time.Date(2024, time.October, 5, 12, 0, 0, 0, time.UTC)
	november := time.Date(2024, time.November, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Apply(ctx, "s@campus.edu", 40, "Mock Test Performance", october))
	require.NoError(t, repo.Apply(ctx, "s@campus.edu", 100, "Leaderboard 1 Place - October/2024", october))
	require.NoError(t, repo.Apply(ctx, "s@campus.edu", 10, "Mock Test Performance", november))

	ledger, err := repo.FindByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, 150, ledger.TotalCredits)
	require.Len(t, ledger.Months, 2)

	assert.Equal(t, "2024-10", ledger.Months[0].Month)
	assert.Equal(t, 140, ledger.Months[0].Credits)
	assert.Len(t, ledger.Months[0].Activities, 2)

	assert.Equal(t, "2024-11", ledger.Months[1].Month)
	assert.Equal(t, 10, ledger.Months[1].Credits)
}

func TestCreditRepositoryTotalsMatchBucketsAndActivities(t *testing.T) {
	repo := NewCreditRepository(store.New(nil))
	ctx := context.Background()
	now := time.Now().UTC()

	amounts := []int{10, 20, 50, 75, 100}
	for i, amount := range amounts {
		require.NoError(t, repo.Apply(ctx, "s@campus.edu", amount, "award", now.AddDate(0, i%3, 0)))
	}

	ledger, err := repo.FindByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)

	bucketSum, activitySum := 0, 0
	for _, month := range ledger.Months {
		bucketSum += month.Credits
		for _, activity := range month.Activities {
			activitySum += activity.Amount
		}
	}
	assert.Equal(t, ledger.TotalCredits, bucketSum)
	assert.Equal(t, ledger.TotalCredits, activitySum)
}

func TestCreditRepositoryConcurrentApplyLosesNothing(t *testing.T) {
	repo := NewCreditRepository(store.New(nil))
	ctx := context.Background()
	now := time.Now().UTC()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = repo.Apply(ctx, "s@campus.edu", 1, "award", now)
		}()
	}
	wg.Wait()

	ledger, err := repo.FindByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, workers, ledger.TotalCredits)
	require.Len(t, ledger.Months, 1)
	assert.Len(t, ledger.Months[0].Activities, workers)
}

func TestCreditRepositoryInitThenFind(t *testing.T) {
	repo := NewCreditRepository(store.New(nil))
	ctx := context.Background()

	require.NoError(t, repo.Init(ctx, "fresh@campus.edu", time.Now().UTC()))

	ledger, err := repo.FindByStudent(ctx, "fresh@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.TotalCredits)
	assert.Empty(t, ledger.Months)

	// Init on an existing ledger must not reset it.
	require.NoError(t, repo.Apply(ctx, "fresh@campus.edu", 5, "award", time.Now().UTC()))
	require.NoError(t, repo.Init(ctx, "fresh@campus.edu", time.Now().UTC()))
	ledger, err = repo.FindByStudent(ctx, "fresh@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, 5, ledger.TotalCredits)
}

func TestCreditRepositoryTopOrdersDescending(t *testing.T) {
	repo := NewCreditRepository(store.New(nil))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Apply(ctx, "low@campus.edu", 10, "award", now))
	require.NoError(t, repo.Apply(ctx, "high@campus.edu", 100, "award", now))
	require.NoError(t, repo.Apply(ctx, "mid@campus.edu", 50, "award", now))
	require.NoError(t, repo.Apply(ctx, "tied@campus.edu", 50, "award", now))

	top, err := repo.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "high@campus.edu", top[0].StudentEmail)
	// Ties keep store order: mid was inserted before tied.
	assert.Equal(t, "mid@campus.edu", top[1].StudentEmail)
	assert.Equal(t, "tied@campus.edu", top[2].StudentEmail)
}

func TestCreditRepositoryReadsAreIsolatedFromLaterAwards(t *testing.T) {
	repo := NewCreditRepository(store.New(nil))
	ctx := context.Background()
	october := time.Date(2024, time.October, 5, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Apply(ctx, "s@campus.edu", 10, "award", october))

	snapshot, err := repo.FindByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)

	require.NoError(t, repo.Apply(ctx, "s@campus.edu", 20, "award", october.AddDate(0, 0, 1)))

	require.Len(t, snapshot.Months, 1)
	assert.Equal(t, 10, snapshot.Months[0].Credits)
	assert.Len(t, snapshot.Months[0].Activities, 1)

	// Writes through the snapshot must not reach the store either.
	snapshot.Months[0].Activities[0].Amount = 999
	ledger, err := repo.FindByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, 10, ledger.Months[0].Activities[0].Amount)

	top, err := repo.Top(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	top[0].Months[0].Credits = -1
	ledger, err = repo.FindByStudent(ctx, "s@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, 30, ledger.Months[0].Credits)
}

func TestCreditRepositoryConcurrentReadersAndWriters(t *testing.T) {
	repo := NewCreditRepository(store.New(nil))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Apply(ctx, "s@campus.edu", 1, "award", now))

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = repo.Apply(ctx, "s@campus.edu", 1, "award", now)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			ledger, err := repo.FindByStudent(ctx, "s@campus.edu")
			if err != nil {
				continue
			}
			sum := 0
			for _, month := range ledger.Months {
				for _, activity := range month.Activities {
					sum += activity.Amount
				}
			}
			// Each snapshot is internally consistent while writes continue.
			assert.Equal(t, ledger.TotalCredits, sum)
		}
	}()
	wg.Wait()
}
