package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
)

type mockAttendanceReader struct {
	records []models.AttendanceRecord
}

func (m *mockAttendanceReader) ListByStudent(ctx context.Context, studentEmail string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, r := range m.records {
		if strings.EqualFold(r.StudentEmail, studentEmail) {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestPerformanceServiceReport(t *testing.T) {
	attendance := &mockAttendanceReader{records: []models.AttendanceRecord{
		{StudentEmail: "s@campus.edu", Course: "Algorithms", Status: models.AttendancePresent},
		{StudentEmail: "s@campus.edu", Course: "Algorithms", Status: models.AttendancePresent},
		{StudentEmail: "s@campus.edu", Course: "Algorithms", Status: models.AttendanceAbsent},
		{StudentEmail: "s@campus.edu", Course: "Databases", Status: models.AttendanceAbsent},
	}}
	grades := &mockGradeRepo{grades: []models.Grade{
		{StudentEmail: "s@campus.edu", Course: "Algorithms", Letter: "A"},
	}}
	svc := NewPerformanceService(attendance, grades, zap.NewNop())

	report, err := svc.Report(context.Background(), "s@campus.edu")
	require.NoError(t, err)

	algo := report.Attendance["Algorithms"]
	assert.Equal(t, 2, algo.Present)
	assert.Equal(t, 3, algo.Total)
	assert.InDelta(t, 66.67, algo.Percentage, 0.01)

	db := report.Attendance["Databases"]
	assert.Equal(t, 0, db.Present)
	assert.InDelta(t, 0.0, db.Percentage, 0.001)

	require.Len(t, report.Grades, 1)
}

func TestPerformanceServiceOverallGrades(t *testing.T) {
	grades := &mockGradeRepo{grades: []models.Grade{
		{StudentEmail: "s@campus.edu", Course: "Algorithms", Letter: "A"},
		{StudentEmail: "s@campus.edu", Course: "Algorithms", Letter: "B+"},
		{StudentEmail: "s@campus.edu", Course: "Databases", Letter: "F"},
		{StudentEmail: "s@campus.edu", Course: "Databases", Letter: "ZZ"}, // unknown letter scores zero
	}}
	svc := NewPerformanceService(&mockAttendanceReader{}, grades, zap.NewNop())

	overall, err := svc.OverallGrades(context.Background(), "s@campus.edu")
	require.NoError(t, err)

	algo := overall["Algorithms"]
	assert.Equal(t, []string{"A", "B+"}, algo.Letters)
	assert.InDelta(t, 3.65, algo.Average, 0.001)

	db := overall["Databases"]
	assert.InDelta(t, 0.0, db.Average, 0.001)
}
