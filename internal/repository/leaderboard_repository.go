package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// LeaderboardRepository reads and writes leaderboard snapshots.
type LeaderboardRepository struct {
	snapshots *store.Collection[models.LeaderboardSnapshot]
}

// NewLeaderboardRepository constructs LeaderboardRepository.
func NewLeaderboardRepository(s *store.Store) *LeaderboardRepository {
	return &LeaderboardRepository{snapshots: s.Leaderboards}
}

// Create appends a snapshot.
func (r *LeaderboardRepository) Create(ctx context.Context, snapshot models.LeaderboardSnapshot) error {
	r.snapshots.Append(snapshot)
	return nil
}

// ExistsPeriod reports whether a snapshot already covers (month, year).
func (r *LeaderboardRepository) ExistsPeriod(ctx context.Context, month, year string) (bool, error) {
	_, ok := r.snapshots.Find(matchPeriod(month, year))
	return ok, nil
}

// FindByPeriod returns the first snapshot for (month, year). Year is
// compared as a trimmed string so numeric and string storage both match.
func (r *LeaderboardRepository) FindByPeriod(ctx context.Context, month, year string) (*models.LeaderboardSnapshot, error) {
	snapshot, ok := r.snapshots.Find(matchPeriod(month, year))
	if !ok {
		return nil, ErrNoRecord
	}
	return &snapshot, nil
}

// ListAll returns snapshots ordered descending by (year, month) as a
// calendar date.
func (r *LeaderboardRepository) ListAll(ctx context.Context) ([]models.LeaderboardSnapshot, error) {
	snapshots := r.snapshots.All()
	sort.SliceStable(snapshots, func(i, j int) bool {
		yi, mi := periodSortKey(snapshots[i].Year, snapshots[i].Month)
		yj, mj := periodSortKey(snapshots[j].Year, snapshots[j].Month)
		if yi != yj {
			return yi > yj
		}
		return mi > mj
	})
	return snapshots, nil
}

func matchPeriod(month, year string) func(models.LeaderboardSnapshot) bool {
	return func(s models.LeaderboardSnapshot) bool {
		return strings.EqualFold(s.Month, month) && strings.TrimSpace(s.Year) == strings.TrimSpace(year)
	}
}

// periodSortKey tolerates both numeric ("10") and named ("October") months.
func periodSortKey(year, month string) (int, int) {
	y, _ := strconv.Atoi(strings.TrimSpace(year))
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		if t, perr := time.Parse("January", strings.TrimSpace(month)); perr == nil {
			m = int(t.Month())
		}
	}
	return y, m
}
