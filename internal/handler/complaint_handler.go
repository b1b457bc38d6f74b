package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// ComplaintHandler wires HTTP endpoints to the complaint service.
type ComplaintHandler struct {
	service *service.ComplaintService
}

// NewComplaintHandler creates a new handler.
func NewComplaintHandler(svc *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: svc}
}

// Submit godoc
// @Summary File a complaint
// @Description File an open complaint and alert the department teachers
// @Tags Complaints
// @Accept json
// @Produce json
// @Param payload body service.SubmitComplaintRequest true "Complaint payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /complaint [post]
func (h *ComplaintHandler) Submit(c *gin.Context) {
	var req service.SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid complaint payload"))
		return
	}

	complaint, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, complaint)
}

// ListByDepartment godoc
// @Summary List complaints of a department
// @Tags Complaints
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /complaints/{department} [get]
func (h *ComplaintHandler) ListByDepartment(c *gin.Context) {
	complaints, err := h.service.ListByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, complaints, nil)
}

// UpdateStatus godoc
// @Summary Update a complaint status
// @Description Update the status and notify the student who filed it
// @Tags Complaints
// @Accept json
// @Produce json
// @Param payload body service.UpdateComplaintStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /complaint-status [post]
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid complaint status payload"))
		return
	}

	complaint, err := h.service.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, complaint, nil)
}
