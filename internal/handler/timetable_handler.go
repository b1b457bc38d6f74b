package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// TimetableHandler wires HTTP endpoints to the timetable service.
type TimetableHandler struct {
	service *service.TimetableService
}

// NewTimetableHandler creates a new handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Upload godoc
// @Summary Upload a department timetable
// @Description Publish a timetable and notify the department students
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body service.UploadTimetableRequest true "Timetable payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /timetable [post]
func (h *TimetableHandler) Upload(c *gin.Context) {
	var req service.UploadTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timetable payload"))
		return
	}

	timetable, err := h.service.Upload(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, timetable)
}

// Latest godoc
// @Summary Fetch the latest timetable of a department
// @Tags Timetable
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /timetable/{department} [get]
func (h *TimetableHandler) Latest(c *gin.Context) {
	timetable, err := h.service.Latest(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, timetable, nil)
}
