package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type userReader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error)
	ListByRoleAndDepartment(ctx context.Context, role models.UserRole, department string) ([]models.User, error)
}

// UserService serves profile and directory lookups.
type UserService struct {
	users  userReader
	logger *zap.Logger
}

// NewUserService constructs UserService.
func NewUserService(users userReader, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, logger: logger}
}

// Profile returns the account registered under email.
func (s *UserService) Profile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return user, nil
}

// StudentsByDepartment lists a department's students.
func (s *UserService) StudentsByDepartment(ctx context.Context, department string) ([]models.User, error) {
	students, err := s.users.ListByRoleAndDepartment(ctx, models.RoleStudent, department)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// TeachersByDepartment lists a department's teachers.
func (s *UserService) TeachersByDepartment(ctx context.Context, department string) ([]models.User, error) {
	teachers, err := s.users.ListByRoleAndDepartment(ctx, models.RoleTeacher, department)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// LinkedStudent resolves the student account a parent is linked to.
func (s *UserService) LinkedStudent(ctx context.Context, parentEmail string) (*models.User, error) {
	parent, err := s.users.FindByEmailAndRole(ctx, parentEmail, models.RoleParent)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "parent not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load parent")
	}
	student, err := s.users.FindByEmailAndRole(ctx, parent.StudentEmail, models.RoleStudent)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "linked student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load linked student")
	}
	return student, nil
}
