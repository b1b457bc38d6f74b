package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type leaderboardRepository interface {
	Create(ctx context.Context, snapshot models.LeaderboardSnapshot) error
	ExistsPeriod(ctx context.Context, month, year string) (bool, error)
	FindByPeriod(ctx context.Context, month, year string) (*models.LeaderboardSnapshot, error)
	ListAll(ctx context.Context) ([]models.LeaderboardSnapshot, error)
}

type creditAwarder interface {
	Award(ctx context.Context, studentEmail string, amount int, reason string) error
	TopN(ctx context.Context, n int) ([]models.CreditLedger, error)
}

type studentLister interface {
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// PublishLeaderboardRequest carries one period's ranking, best first.
type PublishLeaderboardRequest struct {
	TeacherEmail string                 `json:"teacher_email" validate:"required,email"`
	Month        string                 `json:"month" validate:"required"`
	Year         string                 `json:"year" validate:"required"`
	TopStudents  []models.RankedStudent `json:"top_students" validate:"required,min=1,dive"`
}

// LeaderboardService publishes monthly rankings. Publication awards rank
// bonuses through the credit ledger and fans out notifications to the whole
// student body.
type LeaderboardService struct {
	repo        leaderboardRepository
	credits     creditAwarder
	notifier    notifier
	users       studentLister
	rankBonuses []int
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewLeaderboardService constructs LeaderboardService. rankBonuses holds the
// credit award per rank, best rank first; nil selects the default 100/75/50.
func NewLeaderboardService(repo leaderboardRepository, credits creditAwarder, notifier notifier, users studentLister, rankBonuses []int, validate *validator.Validate, logger *zap.Logger) *LeaderboardService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(rankBonuses) == 0 {
		rankBonuses = []int{100, 75, 50}
	}
	return &LeaderboardService{
		repo:        repo,
		credits:     credits,
		notifier:    notifier,
		users:       users,
		rankBonuses: rankBonuses,
		validator:   validate,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Publish stores an immutable snapshot for (month, year). A second
// publication for the same period is rejected with a conflict instead of
// shadow-storing it. Ranked students inside the bonus table earn credits;
// every ranked student is congratulated, everyone else is told a new board
// is out.
func (s *LeaderboardService) Publish(ctx context.Context, req PublishLeaderboardRequest) (*models.LeaderboardSnapshot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid leaderboard payload")
	}

	exists, err := s.repo.ExistsPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check leaderboard period")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("leaderboard for %s %s already published", req.Month, req.Year))
	}

	snapshot := models.LeaderboardSnapshot{
		ID:           uuid.NewString(),
		TeacherEmail: req.TeacherEmail,
		Month:        req.Month,
		Year:         req.Year,
		TopStudents:  req.TopStudents,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, snapshot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store leaderboard")
	}

	for i, ranked := range req.TopStudents {
		bonus := 0
		if i < len(s.rankBonuses) {
			bonus = s.rankBonuses[i]
		}
		if bonus > 0 {
			reason := fmt.Sprintf("Leaderboard %d Place - %s/%s", i+1, req.Month, req.Year)
			if err := s.credits.Award(ctx, ranked.Email, bonus, reason); err != nil {
				s.logger.Error("leaderboard credit award failed",
					zap.String("student", ranked.Email),
					zap.Error(err),
				)
			}
		}
		s.notifyQuietly(ctx, ranked.Email, "Leaderboard Achievement",
			fmt.Sprintf("Congratulations! You ranked %d in the %s %s leaderboard and earned %d credits!", i+1, req.Month, req.Year, bonus),
			models.SeveritySuccess,
		)
	}

	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		s.logger.Error("leaderboard fan-out listing failed", zap.Error(err))
		return &snapshot, nil
	}
	ranked := make(map[string]struct{}, len(req.TopStudents))
	for _, r := range req.TopStudents {
		ranked[strings.ToLower(r.Email)] = struct{}{}
	}
	for _, student := range students {
		if _, ok := ranked[strings.ToLower(student.Email)]; ok {
			continue
		}
		s.notifyQuietly(ctx, student.Email, "New Leaderboard Published",
			fmt.Sprintf("The %s %s leaderboard has been published. Check it out!", req.Month, req.Year),
			models.SeverityInfo,
		)
	}

	return &snapshot, nil
}

// Get returns the snapshot for (month, year).
func (s *LeaderboardService) Get(ctx context.Context, month, year string) (*models.LeaderboardSnapshot, error) {
	snapshot, err := s.repo.FindByPeriod(ctx, month, year)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "leaderboard not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load leaderboard")
	}
	return snapshot, nil
}

// ListAll returns every snapshot, most recent period first.
func (s *LeaderboardService) ListAll(ctx context.Context) ([]models.LeaderboardSnapshot, error) {
	snapshots, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list leaderboards")
	}
	return snapshots, nil
}

// TopStudents ranks students by total credits and joins profile data.
func (s *LeaderboardService) TopStudents(ctx context.Context, n int) ([]models.TopStudent, error) {
	ledgers, err := s.credits.TopN(ctx, n)
	if err != nil {
		return nil, err
	}
	top := make([]models.TopStudent, 0, len(ledgers))
	for _, ledger := range ledgers {
		entry := models.TopStudent{
			Email:        ledger.StudentEmail,
			TotalCredits: ledger.TotalCredits,
		}
		if user, err := s.users.FindByEmail(ctx, ledger.StudentEmail); err == nil {
			entry.Name = user.Name
			entry.RollNumber = user.RollNumber
			entry.Department = user.Department
		}
		top = append(top, entry)
	}
	return top, nil
}

func (s *LeaderboardService) notifyQuietly(ctx context.Context, recipient, title, message string, severity models.NotificationSeverity) {
	if s.notifier == nil {
		return
	}
	if _, err := s.notifier.Notify(ctx, recipient, title, message, severity); err != nil {
		s.logger.Warn("leaderboard notification failed",
			zap.String("recipient", recipient),
			zap.Error(err),
		)
	}
}
