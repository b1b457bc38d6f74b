package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// AssignmentHandler wires HTTP endpoints to the assignment service.
type AssignmentHandler struct {
	service *service.AssignmentService
}

// NewAssignmentHandler creates a new handler.
func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// Create godoc
// @Summary Create an assignment
// @Description Create an assignment for a course and notify its enrolled students
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body service.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	assignment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, assignment)
}

// ListByDepartment godoc
// @Summary List assignments of a department
// @Tags Assignments
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /assignments/{department} [get]
func (h *AssignmentHandler) ListByDepartment(c *gin.Context) {
	assignments, err := h.service.ListByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, assignments, nil)
}

// Submit godoc
// @Summary Submit an assignment
// @Description Record a student submission and notify the assignment teacher
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body service.SubmitAssignmentRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /submit-assignment [post]
func (h *AssignmentHandler) Submit(c *gin.Context) {
	var req service.SubmitAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid submission payload"))
		return
	}

	submission, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, submission)
}

// Submissions godoc
// @Summary List submissions for an assignment
// @Tags Assignments
// @Produce json
// @Param assignmentId path string true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Router /assignment-submissions/{assignmentId} [get]
func (h *AssignmentHandler) Submissions(c *gin.Context) {
	submissions, err := h.service.Submissions(c.Request.Context(), c.Param("assignmentId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, submissions, nil)
}
