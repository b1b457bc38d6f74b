package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/handler"
	"github.com/noah-isme/campus-api/internal/middleware"
	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/pkg/config"
	"github.com/noah-isme/campus-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-api/pkg/middleware/requestid"
	"github.com/noah-isme/campus-api/pkg/realtime"
)

// Handlers bundles every HTTP handler mounted by the router.
type Handlers struct {
	Auth           *handler.AuthHandler
	User           *handler.UserHandler
	Course         *handler.CourseHandler
	Enrollment     *handler.EnrollmentHandler
	Attendance     *handler.AttendanceHandler
	Grade          *handler.GradeHandler
	Assignment     *handler.AssignmentHandler
	Forum          *handler.ForumHandler
	Leave          *handler.LeaveHandler
	Complaint      *handler.ComplaintHandler
	Notification   *handler.NotificationHandler
	Timetable      *handler.TimetableHandler
	Event          *handler.EventHandler
	LiveSession    *handler.LiveSessionHandler
	QuestionPaper  *handler.QuestionPaperHandler
	Chatbot        *handler.ChatbotHandler
	MockTest       *handler.MockTestHandler
	Chat           *handler.ChatHandler
	Leaderboard    *handler.LeaderboardHandler
	Holiday        *handler.HolidayHandler
	Recommendation *handler.RecommendationHandler
	ConceptMap     *handler.ConceptMapHandler
	Metrics        *handler.MetricsHandler
	Realtime       *realtime.Handler
}

// New assembles the gin engine with middleware and every route.
func New(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)
	r.GET("/ws", h.Realtime.Connect)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	api.GET("/profile/:email", h.User.Profile)
	api.GET("/students/:department", h.User.Students)
	api.GET("/teachers/:department", h.User.Teachers)
	api.GET("/parent-student/:parentEmail", h.User.LinkedStudent)

	api.POST("/courses", h.Course.Create)
	api.GET("/courses/:department", h.Course.ListByDepartment)
	api.GET("/all-courses", h.Course.ListAll)
	api.GET("/course-students/:courseId", h.Course.Students)

	api.POST("/enroll", h.Enrollment.Enroll)
	api.GET("/enrolled-courses/:studentEmail", h.Enrollment.EnrolledCourses)

	api.POST("/attendance", h.Attendance.Record)
	api.GET("/attendance/:studentEmail", h.Attendance.ListForStudent)

	api.POST("/grades", h.Grade.Upload)
	api.GET("/grades/:studentEmail", h.Grade.ListForStudent)
	api.GET("/performance/:studentEmail", h.Grade.Performance)
	api.GET("/overall-grades/:studentEmail", h.Grade.OverallGrades)

	api.POST("/assignments", h.Assignment.Create)
	api.GET("/assignments/:department", h.Assignment.ListByDepartment)
	api.POST("/submit-assignment", h.Assignment.Submit)
	api.GET("/assignment-submissions/:assignmentId", h.Assignment.Submissions)

	api.POST("/forum-posts", h.Forum.CreatePost)
	api.POST("/forum-replies", h.Forum.Reply)
	api.GET("/forum-posts/:courseId", h.Forum.ListByCourse)

	api.POST("/leave", h.Leave.Submit)
	api.GET("/leave-requests/:department", h.Leave.Pending)
	api.POST("/leave-status", h.Leave.UpdateStatus)

	api.POST("/complaint", h.Complaint.Submit)
	api.GET("/complaints/:department", h.Complaint.ListByDepartment)
	api.POST("/complaint-status", h.Complaint.UpdateStatus)

	api.GET("/notifications/:userEmail", h.Notification.ListFor)
	api.POST("/notifications/mark-read", h.Notification.MarkRead)

	api.POST("/timetable", h.Timetable.Upload)
	api.GET("/timetable/:department", h.Timetable.Latest)

	api.POST("/events", h.Event.Create)
	api.GET("/events", h.Event.List)
	api.DELETE("/events/:eventId", h.Event.Delete)

	api.POST("/live-sessions", h.LiveSession.Create)
	api.GET("/live-sessions", h.LiveSession.List)
	api.DELETE("/live-sessions/:sessionId", h.LiveSession.Delete)

	api.POST("/question-papers", h.QuestionPaper.Upload)
	api.GET("/question-papers", h.QuestionPaper.List)
	api.DELETE("/question-papers/:paperId", h.QuestionPaper.Delete)

	api.POST("/chatbot", h.Chatbot.Ask)

	api.POST("/mock-tests", h.MockTest.Submit)
	api.GET("/mock-tests/:studentEmail", h.MockTest.ListForStudent)

	api.POST("/chat-messages", h.Chat.Send)
	api.GET("/chat-messages/:parentEmail/:teacherEmail", h.Chat.Conversation)

	api.POST("/leaderboard", h.Leaderboard.Publish)
	api.GET("/leaderboard/:month/:year", h.Leaderboard.Get)
	api.GET("/leaderboards", h.Leaderboard.ListAll)
	api.GET("/top-students", h.Leaderboard.TopStudents)
	api.GET("/student-credits/:studentEmail", h.Leaderboard.StudentCredits)

	api.GET("/holidays", h.Holiday.List)
	api.GET("/holidays/:year", h.Holiday.List)

	api.GET("/course-recommendations/:studentEmail", h.Recommendation.Recommend)
	api.GET("/concept-map/:courseId", h.ConceptMap.Get)

	api.GET("/system-metrics", h.Metrics.Snapshot)

	return r
}
