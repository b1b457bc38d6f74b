package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
)

type forumRepository interface {
	CreatePost(ctx context.Context, post models.ForumPost) error
	AddReply(ctx context.Context, postID string, reply models.ForumReply) (*models.ForumPost, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.ForumPost, error)
}

// CreateForumPostRequest starts a discussion thread.
type CreateForumPostRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	CourseID  string `json:"course_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

// CreateForumReplyRequest appends to an existing thread.
type CreateForumReplyRequest struct {
	PostID    string `json:"post_id" validate:"required"`
	UserEmail string `json:"user_email" validate:"required,email"`
	Content   string `json:"content" validate:"required"`
}

// ForumService manages per-course discussion threads.
type ForumService struct {
	repo        forumRepository
	enrollments courseEnrollmentReader
	notifier    notifier
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
}

// NewForumService constructs ForumService.
func NewForumService(repo forumRepository, enrollments courseEnrollmentReader, notifier notifier, validate *validator.Validate, logger *zap.Logger) *ForumService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForumService{
		repo:        repo,
		enrollments: enrollments,
		notifier:    notifier,
		validator:   validate,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreatePost starts a thread and tells the other students enrolled in the
// course.
func (s *ForumService) CreatePost(ctx context.Context, req CreateForumPostRequest) (*models.ForumPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid forum post payload")
	}
	post := models.ForumPost{
		ID:        uuid.NewString(),
		UserEmail: req.UserEmail,
		CourseID:  req.CourseID,
		Title:     req.Title,
		Content:   req.Content,
		Replies:   []models.ForumReply{},
		CreatedAt: s.now(),
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create forum post")
	}

	enrollments, err := s.enrollments.ListByCourse(ctx, req.CourseID)
	if err != nil {
		s.logger.Error("forum fan-out listing failed", zap.Error(err))
		return &post, nil
	}
	for _, enrollment := range enrollments {
		if strings.EqualFold(enrollment.StudentEmail, req.UserEmail) {
			continue
		}
		if _, err := s.notifier.Notify(ctx, enrollment.StudentEmail, "New Forum Post",
			fmt.Sprintf("A new discussion has been started in your course forum: %q", req.Title),
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("forum notification failed", zap.String("recipient", enrollment.StudentEmail), zap.Error(err))
		}
	}
	return &post, nil
}

// Reply appends to a thread and tells the thread author, unless they are
// replying to themselves.
func (s *ForumService) Reply(ctx context.Context, req CreateForumReplyRequest) (*models.ForumPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid forum reply payload")
	}
	reply := models.ForumReply{
		ID:        uuid.NewString(),
		UserEmail: req.UserEmail,
		Content:   req.Content,
		CreatedAt: s.now(),
	}
	post, err := s.repo.AddReply(ctx, req.PostID, reply)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "forum post not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add reply")
	}

	if !strings.EqualFold(post.UserEmail, req.UserEmail) {
		if _, err := s.notifier.Notify(ctx, post.UserEmail, "New Forum Reply",
			fmt.Sprintf("Someone replied to your post: %q", post.Title),
			models.SeverityInfo,
		); err != nil {
			s.logger.Warn("forum reply notification failed", zap.String("recipient", post.UserEmail), zap.Error(err))
		}
	}
	return post, nil
}

// ListByCourse returns a course's threads.
func (s *ForumService) ListByCourse(ctx context.Context, courseID string) ([]models.ForumPost, error) {
	posts, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list forum posts")
	}
	return posts, nil
}
