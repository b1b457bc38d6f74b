package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// QuestionPaperHandler wires HTTP endpoints to the question paper service.
type QuestionPaperHandler struct {
	service *service.QuestionPaperService
}

// NewQuestionPaperHandler creates a new handler.
func NewQuestionPaperHandler(svc *service.QuestionPaperService) *QuestionPaperHandler {
	return &QuestionPaperHandler{service: svc}
}

// Upload godoc
// @Summary Upload a question paper
// @Description Publish a question paper and notify the teacher's department students
// @Tags Question papers
// @Accept json
// @Produce json
// @Param payload body service.UploadQuestionPaperRequest true "Question paper payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /question-papers [post]
func (h *QuestionPaperHandler) Upload(c *gin.Context) {
	var req service.UploadQuestionPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid question paper payload"))
		return
	}

	paper, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, paper)
}

// List godoc
// @Summary List question papers
// @Tags Question papers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /question-papers [get]
func (h *QuestionPaperHandler) List(c *gin.Context) {
	papers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, papers, nil)
}

// Delete godoc
// @Summary Delete a question paper
// @Tags Question papers
// @Produce json
// @Param paperId path string true "Question paper ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /question-papers/{paperId} [delete]
func (h *QuestionPaperHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("paperId")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
