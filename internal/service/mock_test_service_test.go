package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
)

type mockMockTestRepo struct {
	tests []models.MockTest
}

func (m *mockMockTestRepo) Create(ctx context.Context, test models.MockTest) error {
	m.tests = append(m.tests, test)
	return nil
}

func (m *mockMockTestRepo) ListByStudent(ctx context.Context, studentEmail string) ([]models.MockTest, error) {
	var out []models.MockTest
	for _, test := range m.tests {
		if test.StudentEmail == studentEmail {
			out = append(out, test)
		}
	}
	return out, nil
}

func TestMockTestServiceCreditTiers(t *testing.T) {
	cases := []struct {
		score  int
		total  int
		earned int
	}{
		{95, 100, 50},
		{90, 100, 50},
		{85, 100, 40},
		{72, 100, 30},
		{60, 100, 20},
		{59, 100, 10},
		{0, 100, 10},
		{27, 30, 50},
	}

	for _, tc := range cases {
		repo := &mockMockTestRepo{}
		credits := &mockCreditRepo{}
		svc := NewMockTestService(repo, NewCreditService(credits, zap.NewNop()), validator.New(), zap.NewNop())

		_, earned, err := svc.Submit(context.Background(), SubmitMockTestRequest{
			StudentEmail: "s@campus.edu",
			Subject:      "Algorithms",
			Questions:    10,
			Score:        tc.score,
			TotalMarks:   tc.total,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.earned, earned, "score %d/%d", tc.score, tc.total)
		assert.Equal(t, tc.earned, credits.ledgers["s@campus.edu"].TotalCredits)
		assert.Contains(t, credits.awards, "Mock Test Performance")
	}
}

func TestMockTestServiceListForStudent(t *testing.T) {
	repo := &mockMockTestRepo{}
	svc := NewMockTestService(repo, NewCreditService(&mockCreditRepo{}, zap.NewNop()), validator.New(), zap.NewNop())

	_, _, err := svc.Submit(context.Background(), SubmitMockTestRequest{
		StudentEmail: "s@campus.edu", Subject: "OS", Questions: 5, Score: 4, TotalMarks: 5,
	})
	require.NoError(t, err)

	tests, err := svc.ListForStudent(context.Background(), "s@campus.edu")
	require.NoError(t, err)
	require.Len(t, tests, 1)
	assert.Equal(t, "OS", tests[0].Subject)
}
