package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/pkg/response"
)

// HolidayHandler serves the static holiday calendar.
type HolidayHandler struct {
	service *service.HolidayService
}

// NewHolidayHandler creates a new handler.
func NewHolidayHandler(svc *service.HolidayService) *HolidayHandler {
	return &HolidayHandler{service: svc}
}

// List godoc
// @Summary List holidays for a year
// @Description Returns the holiday calendar, defaulting to the current year when none is given
// @Tags Holidays
// @Produce json
// @Param year path string false "Year"
// @Success 200 {object} response.Envelope
// @Router /holidays/{year} [get]
func (h *HolidayHandler) List(c *gin.Context) {
	holidays := h.service.List(c.Request.Context(), c.Param("year"))
	response.JSON(c, http.StatusOK, holidays, nil)
}
