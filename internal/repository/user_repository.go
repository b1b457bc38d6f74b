package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/store"
)

// UserRepository reads and writes user accounts.
type UserRepository struct {
	users *store.Collection[models.User]
}

// NewUserRepository constructs UserRepository.
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{users: s.Users}
}

// Create appends a new account.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	r.users.Append(user)
	return nil
}

// FindByEmail returns the account registered under email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.users.Find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return nil, ErrNoRecord
	}
	return &user, nil
}

// FindByEmailAndRole returns the account only when it carries the role.
func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error) {
	user, ok := r.users.Find(func(u models.User) bool {
		return u.Role == role && strings.EqualFold(u.Email, email)
	})
	if !ok {
		return nil, ErrNoRecord
	}
	return &user, nil
}

// ExistsEmail reports whether any account uses email.
func (r *UserRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.users.Find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
	return ok, nil
}

// ListByRoleAndDepartment returns accounts with role inside department.
func (r *UserRepository) ListByRoleAndDepartment(ctx context.Context, role models.UserRole, department string) ([]models.User, error) {
	return r.users.Filter(func(u models.User) bool {
		return u.Role == role && u.Department == department
	}), nil
}

// ListByRole returns every account carrying role.
func (r *UserRepository) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	return r.users.Filter(func(u models.User) bool { return u.Role == role }), nil
}

// CountStudentsInDepartment supports roll-number generation.
func (r *UserRepository) CountStudentsInDepartment(ctx context.Context, department string) (int, error) {
	return r.users.Count(func(u models.User) bool {
		return u.Role == models.RoleStudent && u.Department == department
	}), nil
}
