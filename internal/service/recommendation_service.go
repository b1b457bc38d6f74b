package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
)

// gradePoints maps letter grades onto a 4.0 scale. Unknown letters score
// zero rather than failing the calculation.
var gradePoints = map[string]float64{
	"A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0,
	"F": 0.0,
}

const (
	strongSubjectThreshold = 3.5
	maxRecommendations     = 5
	maxAdvanced            = 2
	maxComplementary       = 3
)

type recommendationUserReader interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type recommendationGradeReader interface {
	ListByStudent(ctx context.Context, studentEmail string) ([]models.Grade, error)
}

type recommendationEnrollmentReader interface {
	ListByStudent(ctx context.Context, studentEmail string) ([]models.Enrollment, error)
}

type recommendationCourseReader interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
	ListByDepartment(ctx context.Context, department string) ([]models.Course, error)
}

// RecommendationService derives a student's candidate next courses from
// their grade history and enrollments.
type RecommendationService struct {
	users       recommendationUserReader
	grades      recommendationGradeReader
	enrollments recommendationEnrollmentReader
	courses     recommendationCourseReader
	logger      *zap.Logger
}

// NewRecommendationService constructs RecommendationService.
func NewRecommendationService(users recommendationUserReader, grades recommendationGradeReader, enrollments recommendationEnrollmentReader, courses recommendationCourseReader, logger *zap.Logger) *RecommendationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{
		users:       users,
		grades:      grades,
		enrollments: enrollments,
		courses:     courses,
		logger:      logger,
	}
}

// Recommend returns up to five course candidates for the student. Any
// strong subject (mean grade points of at least 3.5) pulls in up to two
// department courses carrying an "advanced" marker first; remaining slots
// fill with other department courses the student has not completed. An
// unknown student yields an empty list.
func (s *RecommendationService) Recommend(ctx context.Context, studentEmail string) ([]models.Course, error) {
	student, err := s.users.FindByEmail(ctx, studentEmail)
	if err != nil {
		return []models.Course{}, nil
	}

	completed, err := s.completedCourseNames(ctx, studentEmail)
	if err != nil {
		return nil, err
	}

	grades, err := s.grades.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, err
	}
	strongSubjects := strongSubjects(grades)

	departmentCourses, err := s.courses.ListByDepartment(ctx, student.Department)
	if err != nil {
		return nil, err
	}

	recommendations := make([]models.Course, 0, maxRecommendations)
	seen := make(map[string]struct{})

	// The advanced pick is the same for every strong subject, so the cap is
	// two courses total no matter how many subjects clear the threshold.
	if len(strongSubjects) > 0 {
		added := 0
		for _, course := range departmentCourses {
			if added >= maxAdvanced {
				break
			}
			if !strings.Contains(strings.ToLower(course.Name), "advanced") {
				continue
			}
			if _, done := completed[course.Name]; done {
				continue
			}
			seen[course.ID] = struct{}{}
			recommendations = append(recommendations, course)
			added++
		}
	}

	added := 0
	for _, course := range departmentCourses {
		if added >= maxComplementary {
			break
		}
		if _, done := completed[course.Name]; done {
			continue
		}
		if _, dup := seen[course.ID]; dup {
			continue
		}
		seen[course.ID] = struct{}{}
		recommendations = append(recommendations, course)
		added++
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations, nil
}

// completedCourseNames resolves the student's enrollments to course names.
func (s *RecommendationService) completedCourseNames(ctx context.Context, studentEmail string) (map[string]struct{}, error) {
	enrollments, err := s.enrollments.ListByStudent(ctx, studentEmail)
	if err != nil {
		return nil, err
	}
	completed := make(map[string]struct{}, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := s.courses.FindByID(ctx, enrollment.CourseID)
		if err != nil {
			continue
		}
		completed[course.Name] = struct{}{}
	}
	return completed, nil
}

// strongSubjects returns the course names whose mean grade points clear the
// strong-subject threshold.
func strongSubjects(grades []models.Grade) []string {
	type tally struct {
		total float64
		count int
	}
	perCourse := make(map[string]*tally)
	order := make([]string, 0)
	for _, grade := range grades {
		t, ok := perCourse[grade.Course]
		if !ok {
			t = &tally{}
			perCourse[grade.Course] = t
			order = append(order, grade.Course)
		}
		t.total += gradePoints[grade.Letter]
		t.count++
	}
	strong := make([]string, 0, len(order))
	for _, course := range order {
		t := perCourse[course]
		if t.total/float64(t.count) >= strongSubjectThreshold {
			strong = append(strong, course)
		}
	}
	return strong
}
