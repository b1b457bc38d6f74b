package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// MockTestHandler wires HTTP endpoints to the mock test service.
type MockTestHandler struct {
	service *service.MockTestService
}

// NewMockTestHandler creates a new handler.
func NewMockTestHandler(svc *service.MockTestService) *MockTestHandler {
	return &MockTestHandler{service: svc}
}

// Submit godoc
// @Summary Submit a mock test result
// @Description Record a mock test attempt and award score-tiered credits
// @Tags Mock tests
// @Accept json
// @Produce json
// @Param payload body service.SubmitMockTestRequest true "Mock test payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /mock-tests [post]
func (h *MockTestHandler) Submit(c *gin.Context) {
	var req service.SubmitMockTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mock test payload"))
		return
	}

	test, earned, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, test, nil, map[string]interface{}{"earnedCredits": earned})
}

// ListForStudent godoc
// @Summary List mock test attempts of a student
// @Tags Mock tests
// @Produce json
// @Param studentEmail path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /mock-tests/{studentEmail} [get]
func (h *MockTestHandler) ListForStudent(c *gin.Context) {
	tests, err := h.service.ListForStudent(c.Request.Context(), c.Param("studentEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, tests, nil)
}
