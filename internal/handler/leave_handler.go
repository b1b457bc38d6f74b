package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// LeaveHandler wires HTTP endpoints to the leave service.
type LeaveHandler struct {
	service *service.LeaveService
}

// NewLeaveHandler creates a new handler.
func NewLeaveHandler(svc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: svc}
}

// Submit godoc
// @Summary Submit a leave request
// @Description File a pending leave request. Student requests alert the department teachers.
// @Tags Leave
// @Accept json
// @Produce json
// @Param payload body service.SubmitLeaveRequest true "Leave payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /leave [post]
func (h *LeaveHandler) Submit(c *gin.Context) {
	var req service.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave payload"))
		return
	}

	leave, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, leave)
}

// Pending godoc
// @Summary List pending leave requests of a department
// @Tags Leave
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /leave-requests/{department} [get]
func (h *LeaveHandler) Pending(c *gin.Context) {
	requests, err := h.service.PendingByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, requests, nil)
}

// UpdateStatus godoc
// @Summary Approve or reject a leave request
// @Description Update the status and notify the requester
// @Tags Leave
// @Accept json
// @Produce json
// @Param payload body service.UpdateLeaveStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /leave-status [post]
func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leave status payload"))
		return
	}

	leave, err := h.service.UpdateStatus(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, leave, nil)
}
