package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
)

// Repositories collects everything the sample data loader writes to.
type Repositories struct {
	Users         *repository.UserRepository
	Courses       *repository.CourseRepository
	Enrollments   *repository.EnrollmentRepository
	Assignments   *repository.AssignmentRepository
	Attendance    *repository.AttendanceRepository
	Grades        *repository.GradeRepository
	Credits       *repository.CreditRepository
	Timetables    *repository.TimetableRepository
	Events        *repository.EventRepository
	LiveSessions  *repository.LiveSessionRepository
	QuestionPaper *repository.QuestionPaperRepository
	Leaderboards  *repository.LeaderboardRepository
}

const samplePassword = "password123"

// Load populates the store with a small demo campus: two students with
// linked parents, one teacher, three courses and a handful of records in
// every feature area. Safe to skip entirely; nothing else depends on it.
func Load(ctx context.Context, repos Repositories, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if exists, err := repos.Users.ExistsEmail(ctx, "student1@example.com"); err != nil {
		return err
	} else if exists {
		logger.Info("sample data already present, skipping seed")
		return nil
	}

	now := time.Now().UTC()
	hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash sample password: %w", err)
	}

	users := []models.User{
		{ID: uuid.NewString(), Role: models.RoleStudent, Email: "student1@example.com", PasswordHash: string(hash), Name: "John Doe", Department: "computer_science", RollNumber: "CS001", FatherName: "Robert Doe", RegisteredAt: now},
		{ID: uuid.NewString(), Role: models.RoleStudent, Email: "student2@example.com", PasswordHash: string(hash), Name: "Jane Smith", Department: "computer_science", RollNumber: "CS002", FatherName: "Michael Smith", RegisteredAt: now},
		{ID: uuid.NewString(), Role: models.RoleTeacher, Email: "teacher@example.com", PasswordHash: string(hash), Name: "Dr. Sarah Johnson", Department: "computer_science", Subject: "Programming", RegisteredAt: now},
		{ID: uuid.NewString(), Role: models.RoleParent, Email: "parent1@example.com", PasswordHash: string(hash), Name: "Robert Doe (Parent)", StudentEmail: "student1@example.com", RegisteredAt: now},
		{ID: uuid.NewString(), Role: models.RoleParent, Email: "parent2@example.com", PasswordHash: string(hash), Name: "Michael Smith (Parent)", StudentEmail: "student2@example.com", RegisteredAt: now},
	}
	for _, u := range users {
		if err := repos.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	october := time.Date(now.Year(), time.October, 15, 12, 0, 0, 0, time.UTC)
	if err := repos.Credits.Apply(ctx, "student1@example.com", 50, "Assignment Excellence", october); err != nil {
		return err
	}
	if err := repos.Credits.Apply(ctx, "student1@example.com", 100, "Leaderboard 1st Place", october.AddDate(0, 0, 5)); err != nil {
		return err
	}
	if err := repos.Credits.Apply(ctx, "student2@example.com", 75, "Leaderboard 2nd Place", october.AddDate(0, 0, 3)); err != nil {
		return err
	}

	courses := []models.Course{
		{ID: uuid.NewString(), TeacherEmail: "teacher@example.com", Name: "Introduction to Programming", Description: "Learn the fundamentals of programming with Python", Department: "computer_science", Duration: "1 semester", CreatedAt: now},
		{ID: uuid.NewString(), TeacherEmail: "teacher@example.com", Name: "Data Structures", Description: "Learn about arrays, linked lists, trees, and algorithms", Department: "computer_science", Duration: "1 semester", CreatedAt: now},
		{ID: uuid.NewString(), TeacherEmail: "teacher@example.com", Name: "Advanced Python Programming", Description: "Deep dive into advanced Python concepts and frameworks", Department: "computer_science", Duration: "1 semester", CreatedAt: now},
	}
	for _, course := range courses {
		if err := repos.Courses.Create(ctx, course); err != nil {
			return fmt.Errorf("seed course %s: %w", course.Name, err)
		}
	}

	enrollments := []models.Enrollment{
		{ID: uuid.NewString(), StudentEmail: "student1@example.com", CourseID: courses[0].ID, EnrolledAt: now},
		{ID: uuid.NewString(), StudentEmail: "student2@example.com", CourseID: courses[0].ID, EnrolledAt: now},
		{ID: uuid.NewString(), StudentEmail: "student1@example.com", CourseID: courses[1].ID, EnrolledAt: now},
	}
	for _, enrollment := range enrollments {
		if err := repos.Enrollments.Create(ctx, enrollment); err != nil {
			return err
		}
	}

	assignment := models.Assignment{
		ID:           uuid.NewString(),
		TeacherEmail: "teacher@example.com",
		Title:        "Python Basics Assignment",
		Description:  "Complete the exercises on variables, loops, and functions",
		DueDate:      "2024-12-15",
		Course:       "Introduction to Programming",
		Department:   "computer_science",
		CreatedAt:    now,
	}
	if err := repos.Assignments.Create(ctx, assignment); err != nil {
		return err
	}

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	attendance := []struct {
		student string
		date    string
		status  models.AttendanceStatus
	}{
		{"student1@example.com", today, models.AttendancePresent},
		{"student2@example.com", today, models.AttendancePresent},
		{"student1@example.com", yesterday, models.AttendancePresent},
		{"student2@example.com", yesterday, models.AttendanceAbsent},
	}
	for _, record := range attendance {
		if _, err := repos.Attendance.Upsert(ctx, "teacher@example.com", record.student, "Introduction to Programming", record.date, record.status, now); err != nil {
			return err
		}
	}

	if _, err := repos.Grades.Upsert(ctx, "teacher@example.com", "student1@example.com", "Introduction to Programming", "A", "2024-1", assignment.ID, now); err != nil {
		return err
	}
	if _, err := repos.Grades.Upsert(ctx, "teacher@example.com", "student2@example.com", "Introduction to Programming", "B+", "2024-1", assignment.ID, now); err != nil {
		return err
	}

	if err := repos.Timetables.Create(ctx, models.Timetable{
		ID:           uuid.NewString(),
		TeacherEmail: "teacher@example.com",
		Department:   "computer_science",
		Description:  "Fall 2024 Timetable",
		UploadedAt:   now,
	}); err != nil {
		return err
	}

	events := []models.Event{
		{ID: uuid.NewString(), TeacherEmail: "teacher@example.com", Title: "Annual Tech Fest 2024", Description: "Join us for the biggest technical festival of the year with coding competitions, workshops, and guest lectures.", Date: "2024-11-15", Kind: "fest", RegistrationLink: "https://example.com/techfest-registration", CreatedAt: now},
		{ID: uuid.NewString(), TeacherEmail: "teacher@example.com", Title: "Machine Learning Workshop", Description: "Hands-on workshop on machine learning fundamentals and practical applications.", Date: "2024-10-20", Kind: "workshop", RegistrationLink: "https://example.com/ml-workshop", CreatedAt: now},
	}
	for _, event := range events {
		if err := repos.Events.Create(ctx, event); err != nil {
			return err
		}
	}

	if err := repos.LiveSessions.Create(ctx, models.LiveSession{
		ID:              uuid.NewString(),
		TeacherEmail:    "teacher@example.com",
		Title:           "Python Programming Basics",
		Description:     "Introduction to Python programming with hands-on examples",
		StartsAt:        now.Add(24 * time.Hour),
		DurationMinutes: 60,
		Course:          "Introduction to Programming",
		Link:            "https://meet.google.com/abc-def-ghi",
		CreatedAt:       now,
	}); err != nil {
		return err
	}

	if err := repos.QuestionPaper.Create(ctx, models.QuestionPaper{
		ID:           uuid.NewString(),
		TeacherEmail: "teacher@example.com",
		Title:        "Final Examination 2023",
		Description:  "Computer Science Final Examination Question Paper",
		Course:       "Introduction to Programming",
		Year:         "2023",
		Attachments:  []models.Attachment{{Name: "CS_Final_2023.pdf", URL: "/uploads/sample.pdf", UploadedAt: now.Format(time.RFC3339)}},
		CreatedAt:    now,
	}); err != nil {
		return err
	}

	if err := repos.Leaderboards.Create(ctx, models.LeaderboardSnapshot{
		ID:           uuid.NewString(),
		TeacherEmail: "teacher@example.com",
		Month:        now.Month().String(),
		Year:         fmt.Sprintf("%d", now.Year()),
		TopStudents: []models.RankedStudent{
			{Name: "John Doe", Email: "student1@example.com", RollNumber: "CS001", Credits: 150},
			{Name: "Jane Smith", Email: "student2@example.com", RollNumber: "CS002", Credits: 75},
			{Name: "Alex Johnson", Email: "student3@example.com", RollNumber: "CS003", Credits: 50},
		},
		CreatedAt: now,
	}); err != nil {
		return err
	}

	logger.Info("sample data initialized",
		zap.Strings("accounts", []string{
			"student1@example.com", "student2@example.com", "teacher@example.com",
			"parent1@example.com", "parent2@example.com",
		}),
	)
	return nil
}
