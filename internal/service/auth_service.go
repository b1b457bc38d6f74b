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
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type userRepository interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	CountStudentsInDepartment(ctx context.Context, department string) (int, error)
}

type ledgerInitializer interface {
	InitLedger(ctx context.Context, studentEmail string) error
}

// RegisterRequest carries a new account. Parent fields only apply to
// student registrations and create a linked parent account alongside.
type RegisterRequest struct {
	Role           models.UserRole `json:"role" validate:"required,oneof=student teacher parent"`
	Email          string          `json:"email" validate:"required,email"`
	Password       string          `json:"password" validate:"required,min=6"`
	Name           string          `json:"name" validate:"required"`
	Department     string          `json:"department" validate:"required_unless=Role parent"`
	Subject        string          `json:"subject,omitempty"`
	FatherName     string          `json:"father_name,omitempty"`
	RollNumber     string          `json:"roll_number,omitempty"`
	ParentEmail    string          `json:"parent_email,omitempty" validate:"omitempty,email"`
	ParentPassword string          `json:"parent_password,omitempty"`
}

// LoginRequest carries credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService handles registration and password login.
type AuthService struct {
	users     userRepository
	credits   ledgerInitializer
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService constructs AuthService.
func NewAuthService(users userRepository, credits ledgerInitializer, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:     users,
		credits:   credits,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the account. Students without a roll number get one
// generated from their department and registration order, have a credit
// ledger seeded, and can bring a parent account along in the same request.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	exists, err := s.users.ExistsEmail(ctx, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Role:         req.Role,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Department:   req.Department,
		RegisteredAt: s.now(),
	}

	switch req.Role {
	case models.RoleStudent:
		user.FatherName = req.FatherName
		user.RollNumber = req.RollNumber
		if user.RollNumber == "" {
			user.RollNumber, err = s.generateRollNumber(ctx, req.Department)
			if err != nil {
				return nil, err
			}
		}
	case models.RoleTeacher:
		user.Subject = req.Subject
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	if req.Role == models.RoleStudent {
		if err := s.credits.InitLedger(ctx, req.Email); err != nil {
			s.logger.Error("ledger init failed", zap.String("student", req.Email), zap.Error(err))
		}
		if req.ParentEmail != "" && req.ParentPassword != "" {
			s.registerParent(ctx, req)
		}
	}

	return &user, nil
}

// Login verifies the password and returns the account.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
	}
	return user, nil
}

// generateRollNumber builds "CSE001" style identifiers from the department
// prefix and the department's current student count.
func (s *AuthService) generateRollNumber(ctx context.Context, department string) (string, error) {
	count, err := s.users.CountStudentsInDepartment(ctx, department)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	prefix := strings.ToUpper(department)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// registerParent creates the linked parent account. A taken parent email is
// logged and skipped so the student registration itself still succeeds.
func (s *AuthService) registerParent(ctx context.Context, req RegisterRequest) {
	exists, err := s.users.ExistsEmail(ctx, req.ParentEmail)
	if err != nil || exists {
		s.logger.Warn("parent account not created",
			zap.String("parent", req.ParentEmail),
			zap.Bool("exists", exists),
			zap.Error(err),
		)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.ParentPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("parent password hash failed", zap.Error(err))
		return
	}
	parent := models.User{
		ID:           uuid.NewString(),
		Role:         models.RoleParent,
		Email:        req.ParentEmail,
		PasswordHash: string(hash),
		Name:         fmt.Sprintf("%s (Parent)", req.FatherName),
		StudentEmail: req.Email,
		RegisteredAt: s.now(),
	}
	if err := s.users.Create(ctx, parent); err != nil {
		s.logger.Error("parent account creation failed", zap.Error(err))
	}
}
