package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// MarkReadRequest identifies the notification to mark as read.
type MarkReadRequest struct {
	NotificationID string `json:"notificationId" binding:"required"`
}

// NotificationHandler wires HTTP endpoints to the notification service.
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new handler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// ListFor godoc
// @Summary List notifications for a user
// @Tags Notifications
// @Produce json
// @Param userEmail path string true "User email"
// @Success 200 {object} response.Envelope
// @Router /notifications/{userEmail} [get]
func (h *NotificationHandler) ListFor(c *gin.Context) {
	notifications, err := h.service.ListFor(c.Request.Context(), c.Param("userEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, notifications, nil)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Accept json
// @Produce json
// @Param payload body MarkReadRequest true "Notification reference"
// @Success 204 "No Content"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /notifications/mark-read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mark-read payload"))
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), req.NotificationID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
