package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
)

type mockCreditRepo struct {
	ledgers map[string]*models.CreditLedger
	awards  []string
	amounts []int
}

func (m *mockCreditRepo) Init(ctx context.Context, studentEmail string, now time.Time) error {
	if m.ledgers == nil {
		m.ledgers = make(map[string]*models.CreditLedger)
	}
	m.ledgers[studentEmail] = &models.CreditLedger{StudentEmail: studentEmail, Months: []models.MonthlyCredits{}, UpdatedAt: now}
	return nil
}

func (m *mockCreditRepo) Apply(ctx context.Context, studentEmail string, amount int, reason string, now time.Time) error {
	if m.ledgers == nil {
		m.ledgers = make(map[string]*models.CreditLedger)
	}
	ledger, ok := m.ledgers[studentEmail]
	if !ok {
		ledger = &models.CreditLedger{StudentEmail: studentEmail}
		m.ledgers[studentEmail] = ledger
	}
	ledger.TotalCredits += amount
	m.awards = append(m.awards, reason)
	m.amounts = append(m.amounts, amount)
	return nil
}

func (m *mockCreditRepo) FindByStudent(ctx context.Context, studentEmail string) (*models.CreditLedger, error) {
	if ledger, ok := m.ledgers[studentEmail]; ok {
		return ledger, nil
	}
	return nil, repository.ErrNoRecord
}

func (m *mockCreditRepo) Top(ctx context.Context, n int) ([]models.CreditLedger, error) {
	var out []models.CreditLedger
	for _, ledger := range m.ledgers {
		out = append(out, *ledger)
	}
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func TestCreditServiceAwardCreatesLedger(t *testing.T) {
	repo := &mockCreditRepo{}
	svc := NewCreditService(repo, zap.NewNop())

	require.NoError(t, svc.Award(context.Background(), "s1@campus.edu", 40, "Mock Test Performance"))
	require.NoError(t, svc.Award(context.Background(), "s1@campus.edu", 100, "Leaderboard 1 Place - October/2024"))

	ledger, err := svc.Get(context.Background(), "s1@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, 140, ledger.TotalCredits)
	assert.Equal(t, []int{40, 100}, repo.amounts)
}

func TestCreditServiceGetUnknownStudentIsZeroValued(t *testing.T) {
	repo := &mockCreditRepo{}
	svc := NewCreditService(repo, zap.NewNop())

	ledger, err := svc.Get(context.Background(), "nobody@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.TotalCredits)
	assert.Empty(t, ledger.Months)

	// Reading must not create a record.
	_, found := repo.ledgers["nobody@campus.edu"]
	assert.False(t, found)
}
