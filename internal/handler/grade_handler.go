package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// GradeHandler wires HTTP endpoints to the grade and performance services.
type GradeHandler struct {
	grades      *service.GradeService
	performance *service.PerformanceService
}

// NewGradeHandler creates a new handler.
func NewGradeHandler(grades *service.GradeService, performance *service.PerformanceService) *GradeHandler {
	return &GradeHandler{grades: grades, performance: performance}
}

// Upload godoc
// @Summary Upload a grade
// @Description Upload or overwrite a grade for a student and notify them
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.UploadGradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) Upload(c *gin.Context) {
	var req service.UploadGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid grade payload"))
		return
	}

	updated, err := h.grades.Upload(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"updated": updated}, nil)
}

// ListForStudent godoc
// @Summary List grades of a student
// @Tags Grades
// @Produce json
// @Param studentEmail path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /grades/{studentEmail} [get]
func (h *GradeHandler) ListForStudent(c *gin.Context) {
	grades, err := h.grades.ListForStudent(c.Request.Context(), c.Param("studentEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, grades, nil)
}

// Performance godoc
// @Summary Per-course performance report for a student
// @Description Attendance percentages and raw grades grouped by course
// @Tags Grades
// @Produce json
// @Param studentEmail path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /performance/{studentEmail} [get]
func (h *GradeHandler) Performance(c *gin.Context) {
	report, err := h.performance.Report(c.Request.Context(), c.Param("studentEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, report, nil)
}

// OverallGrades godoc
// @Summary Per-course grade letters with averaged grade points
// @Tags Grades
// @Produce json
// @Param studentEmail path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /overall-grades/{studentEmail} [get]
func (h *GradeHandler) OverallGrades(c *gin.Context) {
	summary, err := h.performance.OverallGrades(c.Request.Context(), c.Param("studentEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summary, nil)
}
