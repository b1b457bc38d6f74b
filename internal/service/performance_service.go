package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type performanceAttendanceReader interface {
	ListByStudent(ctx context.Context, studentEmail string) ([]models.AttendanceRecord, error)
}

// PerformanceService aggregates attendance and grade analytics per student.
type PerformanceService struct {
	attendance performanceAttendanceReader
	grades     gradeRepository
	logger     *zap.Logger
}

// NewPerformanceService constructs PerformanceService.
func NewPerformanceService(attendance performanceAttendanceReader, grades gradeRepository, logger *zap.Logger) *PerformanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PerformanceService{attendance: attendance, grades: grades, logger: logger}
}

// Report combines per-course attendance percentages with the raw grade
// list.
func (s *PerformanceService) Report(ctx context.Context, studentEmail string) (*models.PerformanceReport, error) {
	records, err := s.attendance.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	grades, err := s.grades.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list grades")
	}

	attendance := make(map[string]models.CourseAttendanceSummary)
	for _, record := range records {
		summary := attendance[record.Course]
		summary.Total++
		if record.Status == models.AttendancePresent {
			summary.Present++
		}
		attendance[record.Course] = summary
	}
	for course, summary := range attendance {
		summary.Percentage = float64(summary.Present) / float64(summary.Total) * 100
		attendance[course] = summary
	}

	return &models.PerformanceReport{Attendance: attendance, Grades: grades}, nil
}

// OverallGrades aggregates letters per course with a mean on the 4.0
// scale, rounded to two decimals.
func (s *PerformanceService) OverallGrades(ctx context.Context, studentEmail string) (map[string]models.CourseGradeSummary, error) {
	grades, err := s.grades.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list grades")
	}
	overall := make(map[string]models.CourseGradeSummary)
	for _, grade := range grades {
		summary := overall[grade.Course]
		summary.Letters = append(summary.Letters, grade.Letter)
		overall[grade.Course] = summary
	}
	for course, summary := range overall {
		total := 0.0
		for _, letter := range summary.Letters {
			total += gradePoints[letter]
		}
		summary.Average = math.Round(total/float64(len(summary.Letters))*100) / 100
		overall[course] = summary
	}
	return overall, nil
}
