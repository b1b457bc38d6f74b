package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// ForumHandler wires HTTP endpoints to the forum service.
type ForumHandler struct {
	service *service.ForumService
}

// NewForumHandler creates a new handler.
func NewForumHandler(svc *service.ForumService) *ForumHandler {
	return &ForumHandler{service: svc}
}

// CreatePost godoc
// @Summary Create a forum post
// @Description Create a post in a course forum and notify the other enrolled students
// @Tags Forum
// @Accept json
// @Produce json
// @Param payload body service.CreateForumPostRequest true "Post payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /forum-posts [post]
func (h *ForumHandler) CreatePost(c *gin.Context) {
	var req service.CreateForumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid forum post payload"))
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, post)
}

// Reply godoc
// @Summary Reply to a forum post
// @Description Append a reply and notify the post author
// @Tags Forum
// @Accept json
// @Produce json
// @Param payload body service.CreateForumReplyRequest true "Reply payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /forum-replies [post]
func (h *ForumHandler) Reply(c *gin.Context) {
	var req service.CreateForumReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid forum reply payload"))
		return
	}

	post, err := h.service.Reply(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, post)
}

// ListByCourse godoc
// @Summary List forum posts of a course
// @Tags Forum
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /forum-posts/{courseId} [get]
func (h *ForumHandler) ListByCourse(c *gin.Context) {
	posts, err := h.service.ListByCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, posts, nil)
}
