package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type mockLeaderboardRepo struct {
	snapshots []models.LeaderboardSnapshot
}

func (m *mockLeaderboardRepo) Create(ctx context.Context, snapshot models.LeaderboardSnapshot) error {
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

func (m *mockLeaderboardRepo) ExistsPeriod(ctx context.Context, month, year string) (bool, error) {
	for _, s := range m.snapshots {
		if s.Month == month && s.Year == year {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockLeaderboardRepo) FindByPeriod(ctx context.Context, month, year string) (*models.LeaderboardSnapshot, error) {
	for _, s := range m.snapshots {
		if s.Month == month && s.Year == year {
			return &s, nil
		}
	}
	return nil, repository.ErrNoRecord
}

func (m *mockLeaderboardRepo) ListAll(ctx context.Context) ([]models.LeaderboardSnapshot, error) {
	return m.snapshots, nil
}

type mockUserDirectory struct {
	users map[string]*models.User
}

func (m *mockUserDirectory) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNoRecord
}

func newLeaderboardFixture() (*mockLeaderboardRepo, *mockCreditRepo, *capturingNotifier, *mockUserDirectory, *LeaderboardService) {
	repo := &mockLeaderboardRepo{}
	creditRepo := &mockCreditRepo{}
	credits := NewCreditService(creditRepo, zap.NewNop())
	notifier := &capturingNotifier{}
	users := &mockUserDirectory{users: map[string]*models.User{
		"first@campus.edu":  {Role: models.RoleStudent, Email: "first@campus.edu", Name: "First"},
		"second@campus.edu": {Role: models.RoleStudent, Email: "second@campus.edu", Name: "Second"},
		"third@campus.edu":  {Role: models.RoleStudent, Email: "third@campus.edu", Name: "Third"},
		"other@campus.edu":  {Role: models.RoleStudent, Email: "other@campus.edu", Name: "Other"},
		"prof@campus.edu":   {Role: models.RoleTeacher, Email: "prof@campus.edu", Name: "Prof"},
	}}
	svc := NewLeaderboardService(repo, credits, notifier, users, nil, validator.New(), zap.NewNop())
	return repo, creditRepo, notifier, users, svc
}

func publishOctober(t *testing.T, svc *LeaderboardService) *models.LeaderboardSnapshot {
	t.Helper()
	snapshot, err := svc.Publish(context.Background(), PublishLeaderboardRequest{
		TeacherEmail: "prof@campus.edu",
		Month:        "October",
		Year:         "2024",
		TopStudents: []models.RankedStudent{
			{Name: "First", Email: "first@campus.edu", Credits: 500},
			{Name: "Second", Email: "second@campus.edu", Credits: 400},
			{Name: "Third", Email: "third@campus.edu", Credits: 300},
		},
	})
	require.NoError(t, err)
	return snapshot
}

func TestLeaderboardServicePublishAwardsRankBonuses(t *testing.T) {
	_, creditRepo, _, _, svc := newLeaderboardFixture()

	publishOctober(t, svc)

	assert.Equal(t, 100, creditRepo.ledgers["first@campus.edu"].TotalCredits)
	assert.Equal(t, 75, creditRepo.ledgers["second@campus.edu"].TotalCredits)
	assert.Equal(t, 50, creditRepo.ledgers["third@campus.edu"].TotalCredits)
	assert.Contains(t, creditRepo.awards, "Leaderboard 1 Place - October/2024")
}

func TestLeaderboardServicePublishNotifiesEveryStudent(t *testing.T) {
	_, _, notifier, _, svc := newLeaderboardFixture()

	publishOctober(t, svc)

	assert.Contains(t, notifier.recipients, "first@campus.edu")
	assert.Contains(t, notifier.recipients, "other@campus.edu")
	assert.NotContains(t, notifier.recipients, "prof@campus.edu")

	for i, recipient := range notifier.recipients {
		switch recipient {
		case "other@campus.edu":
			assert.Equal(t, "New Leaderboard Published", notifier.titles[i])
			assert.Equal(t, models.SeverityInfo, notifier.severities[i])
		case "first@campus.edu":
			assert.Equal(t, "Leaderboard Achievement", notifier.titles[i])
			assert.Equal(t, models.SeveritySuccess, notifier.severities[i])
			assert.Contains(t, notifier.messages[i], "ranked 1")
			assert.Contains(t, notifier.messages[i], "100 credits")
		}
	}
}

func TestLeaderboardServicePublishRejectsDuplicatePeriod(t *testing.T) {
	_, _, _, _, svc := newLeaderboardFixture()

	publishOctober(t, svc)

	_, err := svc.Publish(context.Background(), PublishLeaderboardRequest{
		TeacherEmail: "prof@campus.edu",
		Month:        "October",
		Year:         "2024",
		TopStudents:  []models.RankedStudent{{Name: "First", Email: "first@campus.edu", Credits: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestLeaderboardServiceRanksBeyondBonusTableEarnNothing(t *testing.T) {
	_, creditRepo, notifier, users, svc := newLeaderboardFixture()
	users.users["fourth@campus.edu"] = &models.User{Role: models.RoleStudent, Email: "fourth@campus.edu", Name: "Fourth"}

	_, err := svc.Publish(context.Background(), PublishLeaderboardRequest{
		TeacherEmail: "prof@campus.edu",
		Month:        "November",
		Year:         "2024",
		TopStudents: []models.RankedStudent{
			{Name: "First", Email: "first@campus.edu", Credits: 4},
			{Name: "Second", Email: "second@campus.edu", Credits: 3},
			{Name: "Third", Email: "third@campus.edu", Credits: 2},
			{Name: "Fourth", Email: "fourth@campus.edu", Credits: 1},
		},
	})
	require.NoError(t, err)

	_, awarded := creditRepo.ledgers["fourth@campus.edu"]
	assert.False(t, awarded)

	found := false
	for i, recipient := range notifier.recipients {
		if recipient == "fourth@campus.edu" && notifier.titles[i] == "Leaderboard Achievement" {
			found = true
			assert.Contains(t, notifier.messages[i], "0 credits")
		}
	}
	assert.True(t, found, "rank four should still be congratulated")
}

func TestLeaderboardServiceGetNotFound(t *testing.T) {
	_, _, _, _, svc := newLeaderboardFixture()

	_, err := svc.Get(context.Background(), "June", "1999")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestLeaderboardServiceTopStudentsJoinsProfiles(t *testing.T) {
	_, creditRepo, _, _, svc := newLeaderboardFixture()
	require.NoError(t, creditRepo.Apply(context.Background(), "first@campus.edu", 90, "seed", time.Now().UTC()))

	top, err := svc.TopStudents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "First", top[0].Name)
	assert.Equal(t, 90, top[0].TotalCredits)
}
