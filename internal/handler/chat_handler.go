package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// ChatHandler wires HTTP endpoints to the parent-teacher chat service.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new handler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// Send godoc
// @Summary Send a chat message
// @Description Persist a parent-teacher message and broadcast it to the conversation room
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body service.SendChatMessageRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /chat-messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var req service.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat message payload"))
		return
	}

	message, err := h.service.Send(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, message)
}

// Conversation godoc
// @Summary Fetch the conversation between a parent and a teacher
// @Tags Chat
// @Produce json
// @Param parentEmail path string true "Parent email"
// @Param teacherEmail path string true "Teacher email"
// @Success 200 {object} response.Envelope
// @Router /chat-messages/{parentEmail}/{teacherEmail} [get]
func (h *ChatHandler) Conversation(c *gin.Context) {
	messages, err := h.service.Conversation(c.Request.Context(), c.Param("parentEmail"), c.Param("teacherEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, messages, nil)
}
