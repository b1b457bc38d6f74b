package service

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type mockUserRepo struct {
	users []models.User
}

func (m *mockUserRepo) Create(ctx context.Context, user models.User) error {
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repository.ErrNoRecord
}

func (m *mockUserRepo) ExistsEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	return err == nil, nil
}

func (m *mockUserRepo) CountStudentsInDepartment(ctx context.Context, department string) (int, error) {
	count := 0
	for _, u := range m.users {
		if u.Role == models.RoleStudent && u.Department == department {
			count++
		}
	}
	return count, nil
}

type mockLedgerInit struct {
	initialized []string
}

func (m *mockLedgerInit) InitLedger(ctx context.Context, studentEmail string) error {
	m.initialized = append(m.initialized, studentEmail)
	return nil
}

func TestAuthServiceRegisterStudent(t *testing.T) {
	repo := &mockUserRepo{}
	ledgers := &mockLedgerInit{}
	svc := NewAuthService(repo, ledgers, validator.New(), zap.NewNop())

	user, err := svc.Register(context.Background(), RegisterRequest{
		Role:       models.RoleStudent,
		Email:      "new@campus.edu",
		Password:   "secret123",
		Name:       "New Student",
		Department: "CSE",
		FatherName: "Parent Name",
	})
	require.NoError(t, err)
	assert.Equal(t, "CSE001", user.RollNumber)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Equal(t, []string{"new@campus.edu"}, ledgers.initialized)
}

func TestAuthServiceRegisterRollNumberIncrements(t *testing.T) {
	repo := &mockUserRepo{users: []models.User{
		{Role: models.RoleStudent, Email: "a@campus.edu", Department: "MECH", RollNumber: "MEC001"},
	}}
	svc := NewAuthService(repo, &mockLedgerInit{}, validator.New(), zap.NewNop())

	user, err := svc.Register(context.Background(), RegisterRequest{
		Role:       models.RoleStudent,
		Email:      "b@campus.edu",
		Password:   "secret123",
		Name:       "Second",
		Department: "MECH",
	})
	require.NoError(t, err)
	assert.Equal(t, "MEC002", user.RollNumber)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{users: []models.User{{Email: "taken@campus.edu"}}}
	svc := NewAuthService(repo, &mockLedgerInit{}, validator.New(), zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Role:       models.RoleTeacher,
		Email:      "taken@campus.edu",
		Password:   "secret123",
		Name:       "Dup",
		Department: "CSE",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRegisterCreatesLinkedParent(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, &mockLedgerInit{}, validator.New(), zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Role:           models.RoleStudent,
		Email:          "kid@campus.edu",
		Password:       "secret123",
		Name:           "Kid",
		Department:     "CSE",
		FatherName:     "Father",
		ParentEmail:    "father@home.net",
		ParentPassword: "parentpw1",
	})
	require.NoError(t, err)

	parent, err := repo.FindByEmail(context.Background(), "father@home.net")
	require.NoError(t, err)
	assert.Equal(t, models.RoleParent, parent.Role)
	assert.Equal(t, "kid@campus.edu", parent.StudentEmail)
	assert.Equal(t, "Father (Parent)", parent.Name)
}

func TestAuthServiceLogin(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, &mockLedgerInit{}, validator.New(), zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterRequest{
		Role:       models.RoleTeacher,
		Email:      "prof@campus.edu",
		Password:   "secret123",
		Name:       "Prof",
		Department: "CSE",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), LoginRequest{Email: "prof@campus.edu", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Prof", user.Name)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "prof@campus.edu", Password: "wrong-pass"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "ghost@campus.edu", Password: "whatever1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}
