package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type creditRepository interface {
	Init(ctx context.Context, studentEmail string, now time.Time) error
	Apply(ctx context.Context, studentEmail string, amount int, reason string, now time.Time) error
	FindByStudent(ctx context.Context, studentEmail string) (*models.CreditLedger, error)
	Top(ctx context.Context, n int) ([]models.CreditLedger, error)
}

// CreditService is the credit ledger: per-student running totals bucketed by
// calendar month with an append-only audit trail.
type CreditService struct {
	repo   creditRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewCreditService constructs CreditService.
func NewCreditService(repo creditRepository, logger *zap.Logger) *CreditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreditService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// InitLedger seeds a zero-valued ledger for a new student account.
func (s *CreditService) InitLedger(ctx context.Context, studentEmail string) error {
	return s.repo.Init(ctx, studentEmail, s.now())
}

// Award adds amount to the student's running total and current-month
// bucket, with an audit event recording the reason. Creating the ledger on
// first award is part of the contract; Award never fails on unknown
// students.
func (s *CreditService) Award(ctx context.Context, studentEmail string, amount int, reason string) error {
	if err := s.repo.Apply(ctx, studentEmail, amount, reason, s.now()); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to award credits")
	}
	s.logger.Debug("credits awarded",
		zap.String("student", studentEmail),
		zap.Int("amount", amount),
		zap.String("reason", reason),
	)
	return nil
}

// Get returns the student's ledger, or a zero-valued ledger when none
// exists. Reading never creates a record.
func (s *CreditService) Get(ctx context.Context, studentEmail string) (*models.CreditLedger, error) {
	ledger, err := s.repo.FindByStudent(ctx, studentEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return &models.CreditLedger{
				StudentEmail: studentEmail,
				TotalCredits: 0,
				Months:       []models.MonthlyCredits{},
				UpdatedAt:    s.now(),
			}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load credit ledger")
	}
	return ledger, nil
}

// TopN returns the n highest-earning ledgers, descending, ties in stable
// store order.
func (s *CreditService) TopN(ctx context.Context, n int) ([]models.CreditLedger, error) {
	ledgers, err := s.repo.Top(ctx, n)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to rank credit ledgers")
	}
	return ledgers, nil
}
