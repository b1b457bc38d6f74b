package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/pkg/response"
)

// ConceptMapHandler wires HTTP endpoints to the concept map service.
type ConceptMapHandler struct {
	service *service.ConceptMapService
}

// NewConceptMapHandler creates a new handler.
func NewConceptMapHandler(svc *service.ConceptMapService) *ConceptMapHandler {
	return &ConceptMapHandler{service: svc}
}

// Get godoc
// @Summary Fetch the concept map of a course
// @Description Returns the cached concept map, generating one on first access
// @Tags Concept maps
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /concept-map/{courseId} [get]
func (h *ConceptMapHandler) Get(c *gin.Context) {
	conceptMap, err := h.service.Get(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, conceptMap, nil)
}
