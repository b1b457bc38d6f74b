package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/noah-isme/campus-api/api/swagger"
	"github.com/noah-isme/campus-api/internal/handler"
	"github.com/noah-isme/campus-api/internal/repository"
	"github.com/noah-isme/campus-api/internal/router"
	"github.com/noah-isme/campus-api/internal/seed"
	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/internal/store"
	"github.com/noah-isme/campus-api/pkg/config"
	"github.com/noah-isme/campus-api/pkg/logger"
	"github.com/noah-isme/campus-api/pkg/realtime"
)

// @title Campus API
// @version 1.0.0
// @description Campus management backend with in-memory storage and realtime notifications
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	db := store.New(metricsSvc.ObserveStoreOperation)

	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	attendance := repository.NewAttendanceRepository(db)
	grades := repository.NewGradeRepository(db)
	assignments := repository.NewAssignmentRepository(db)
	forum := repository.NewForumRepository(db)
	leaves := repository.NewLeaveRepository(db)
	complaints := repository.NewComplaintRepository(db)
	notifications := repository.NewNotificationRepository(db)
	timetables := repository.NewTimetableRepository(db)
	events := repository.NewEventRepository(db)
	liveSessions := repository.NewLiveSessionRepository(db)
	questionPapers := repository.NewQuestionPaperRepository(db)
	chats := repository.NewChatRepository(db)
	mockTests := repository.NewMockTestRepository(db)
	credits := repository.NewCreditRepository(db)
	leaderboards := repository.NewLeaderboardRepository(db)
	conceptMaps := repository.NewConceptMapRepository(db)

	hub := realtime.NewHub(logr)
	hub.SetObserver(metricsSvc)
	go hub.Run()

	validate := validator.New()

	notificationSvc := service.NewNotificationService(notifications, hub, logr)
	creditSvc := service.NewCreditService(credits, logr)
	authSvc := service.NewAuthService(users, creditSvc, validate, logr)
	userSvc := service.NewUserService(users, logr)
	courseSvc := service.NewCourseService(courses, users, enrollments, notificationSvc, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollments, courses, notificationSvc, validate, logr)
	attendanceSvc := service.NewAttendanceService(attendance, validate, logr)
	gradeSvc := service.NewGradeService(grades, notificationSvc, validate, logr)
	performanceSvc := service.NewPerformanceService(attendance, grades, logr)
	assignmentSvc := service.NewAssignmentService(assignments, courses, enrollments, notificationSvc, validate, logr)
	forumSvc := service.NewForumService(forum, enrollments, notificationSvc, validate, logr)
	leaveSvc := service.NewLeaveService(leaves, users, notificationSvc, validate, logr)
	complaintSvc := service.NewComplaintService(complaints, users, notificationSvc, validate, logr)
	timetableSvc := service.NewTimetableService(timetables, users, notificationSvc, validate, logr)
	eventSvc := service.NewEventService(events, users, notificationSvc, validate, logr)
	liveSessionSvc := service.NewLiveSessionService(liveSessions, courses, enrollments, notificationSvc, validate, logr)
	questionPaperSvc := service.NewQuestionPaperService(questionPapers, users, notificationSvc, validate, logr)
	chatbotSvc := service.NewChatbotService(logr)
	mockTestSvc := service.NewMockTestService(mockTests, creditSvc, validate, logr)
	chatSvc := service.NewChatService(chats, hub, validate, logr)
	leaderboardSvc := service.NewLeaderboardService(leaderboards, creditSvc, notificationSvc, users, cfg.Credits.RankBonuses, validate, logr)
	holidaySvc := service.NewHolidayService(logr)
	recommendationSvc := service.NewRecommendationService(users, grades, enrollments, courses, logr)
	conceptMapSvc := service.NewConceptMapService(conceptMaps, courses, logr)

	realtimeHandler := realtime.NewHandler(hub, cfg.Realtime, chatSvc.HandleInbound, logr)

	if cfg.Seed.Enabled {
		err := seed.Load(context.Background(), seed.Repositories{
			Users:         users,
			Courses:       courses,
			Enrollments:   enrollments,
			Assignments:   assignments,
			Attendance:    attendance,
			Grades:        grades,
			Credits:       credits,
			Timetables:    timetables,
			Events:        events,
			LiveSessions:  liveSessions,
			QuestionPaper: questionPapers,
			Leaderboards:  leaderboards,
		}, logr)
		if err != nil {
			logr.Sugar().Fatalw("failed to seed sample data", "error", err)
		}
	}

	engine := router.New(cfg, logr, metricsSvc, router.Handlers{
		Auth:           handler.NewAuthHandler(authSvc),
		User:           handler.NewUserHandler(userSvc),
		Course:         handler.NewCourseHandler(courseSvc),
		Enrollment:     handler.NewEnrollmentHandler(enrollmentSvc),
		Attendance:     handler.NewAttendanceHandler(attendanceSvc),
		Grade:          handler.NewGradeHandler(gradeSvc, performanceSvc),
		Assignment:     handler.NewAssignmentHandler(assignmentSvc),
		Forum:          handler.NewForumHandler(forumSvc),
		Leave:          handler.NewLeaveHandler(leaveSvc),
		Complaint:      handler.NewComplaintHandler(complaintSvc),
		Notification:   handler.NewNotificationHandler(notificationSvc),
		Timetable:      handler.NewTimetableHandler(timetableSvc),
		Event:          handler.NewEventHandler(eventSvc),
		LiveSession:    handler.NewLiveSessionHandler(liveSessionSvc),
		QuestionPaper:  handler.NewQuestionPaperHandler(questionPaperSvc),
		Chatbot:        handler.NewChatbotHandler(chatbotSvc),
		MockTest:       handler.NewMockTestHandler(mockTestSvc),
		Chat:           handler.NewChatHandler(chatSvc),
		Leaderboard:    handler.NewLeaderboardHandler(leaderboardSvc, creditSvc),
		Holiday:        handler.NewHolidayHandler(holidaySvc),
		Recommendation: handler.NewRecommendationHandler(recommendationSvc),
		ConceptMap:     handler.NewConceptMapHandler(conceptMapSvc),
		Metrics:        handler.NewMetricsHandler(metricsSvc),
		Realtime:       realtimeHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := server.ListenAndServe(); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
