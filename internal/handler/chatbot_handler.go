package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// ChatbotRequest carries the student's question.
type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatbotHandler wires the study assistant endpoint to the chatbot service.
type ChatbotHandler struct {
	service *service.ChatbotService
}

// NewChatbotHandler creates a new handler.
func NewChatbotHandler(svc *service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{service: svc}
}

// Ask godoc
// @Summary Ask the study assistant
// @Description Returns a canned study-assistant reply matched on keywords
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param payload body ChatbotRequest true "Question payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /chatbot [post]
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chatbot payload"))
		return
	}

	reply := h.service.Reply(c.Request.Context(), req.Message)
	response.JSON(c, http.StatusOK, gin.H{"reply": reply}, nil)
}
