package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type mockTestRepository interface {
	Create(ctx context.Context, test models.MockTest) error
	ListByStudent(ctx context.Context, studentEmail string) ([]models.MockTest, error)
}

type mockTestCreditAwarder interface {
	Award(ctx context.Context, studentEmail string, amount int, reason string) error
}

// SubmitMockTestRequest records one self-assessment attempt.
type SubmitMockTestRequest struct {
	StudentEmail string `json:"student_email" validate:"required,email"`
	Subject      string `json:"subject" validate:"required"`
	Questions    int    `json:"questions" validate:"required,gt=0"`
	Score        int    `json:"score" validate:"gte=0"`
	TotalMarks   int    `json:"total_marks" validate:"required,gt=0"`
}

// MockTestService records mock-test attempts and converts scores into
// credit awards.
type MockTestService struct {
	repo      mockTestRepository
	credits   mockTestCreditAwarder
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMockTestService constructs MockTestService.
func NewMockTestService(repo mockTestRepository, credits mockTestCreditAwarder, validate *validator.Validate, logger *zap.Logger) *MockTestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockTestService{
		repo:      repo,
		credits:   credits,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores the attempt and awards credits tiered on the score
// percentage. Every attempt earns something; 10 credits is the floor.
func (s *MockTestService) Submit(ctx context.Context, req SubmitMockTestRequest) (*models.MockTest, int, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mock test payload")
	}
	test := models.MockTest{
		ID:           uuid.NewString(),
		StudentEmail: req.StudentEmail,
		Subject:      req.Subject,
		Questions:    req.Questions,
		Score:        req.Score,
		TotalMarks:   req.TotalMarks,
		SubmittedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, test); err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store mock test")
	}

	earned := creditsForScore(req.Score, req.TotalMarks)
	if err := s.credits.Award(ctx, req.StudentEmail, earned, "Mock Test Performance"); err != nil {
		s.logger.Error("mock test credit award failed", zap.String("student", req.StudentEmail), zap.Error(err))
	}
	return &test, earned, nil
}

// ListForStudent returns the student's attempts.
func (s *MockTestService) ListForStudent(ctx context.Context, studentEmail string) ([]models.MockTest, error) {
	tests, err := s.repo.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list mock tests")
	}
	return tests, nil
}

func creditsForScore(score, totalMarks int) int {
	percentage := float64(score) / float64(totalMarks) * 100
	switch {
	case percentage >= 90:
		return 50
	case percentage >= 80:
		return 40
	case percentage >= 70:
		return 30
	case percentage >= 60:
		return 20
	default:
		return 10
	}
}
