package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/pkg/response"
)

// RecommendationHandler wires HTTP endpoints to the recommendation service.
type RecommendationHandler struct {
	service *service.RecommendationService
}

// NewRecommendationHandler creates a new handler.
func NewRecommendationHandler(svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: svc}
}

// Recommend godoc
// @Summary Recommend courses for a student
// @Description Suggest courses based on grade history, strong subjects and remaining catalog
// @Tags Recommendations
// @Produce json
// @Param studentEmail path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /course-recommendations/{studentEmail} [get]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	courses, err := h.service.Recommend(c.Request.Context(), c.Param("studentEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses, nil)
}
