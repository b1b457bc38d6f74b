package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// LiveSessionHandler wires HTTP endpoints to the live session service.
type LiveSessionHandler struct {
	service *service.LiveSessionService
}

// NewLiveSessionHandler creates a new handler.
func NewLiveSessionHandler(svc *service.LiveSessionService) *LiveSessionHandler {
	return &LiveSessionHandler{service: svc}
}

// Create godoc
// @Summary Schedule a live session
// @Description Schedule a session for a course and notify its enrolled students
// @Tags Live sessions
// @Accept json
// @Produce json
// @Param payload body service.CreateLiveSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /live-sessions [post]
func (h *LiveSessionHandler) Create(c *gin.Context) {
	var req service.CreateLiveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid live session payload"))
		return
	}

	session, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, session)
}

// List godoc
// @Summary List live sessions
// @Tags Live sessions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /live-sessions [get]
func (h *LiveSessionHandler) List(c *gin.Context) {
	sessions, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, sessions, nil)
}

// Delete godoc
// @Summary Delete a live session
// @Tags Live sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /live-sessions/{sessionId} [delete]
func (h *LiveSessionHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("sessionId")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
