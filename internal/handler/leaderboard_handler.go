package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	appErrors "github.com/noah-isme/campus-api/pkg/errors"
	"github.com/noah-isme/campus-api/pkg/response"
)

// topStudentsLimit matches the live top view size.
const topStudentsLimit = 10

// LeaderboardHandler wires HTTP endpoints to the leaderboard and credit services.
type LeaderboardHandler struct {
	leaderboards *service.LeaderboardService
	credits      *service.CreditService
}

// NewLeaderboardHandler creates a new handler.
func NewLeaderboardHandler(leaderboards *service.LeaderboardService, credits *service.CreditService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboards: leaderboards, credits: credits}
}

// Publish godoc
// @Summary Publish a monthly leaderboard
// @Description Snapshot the ranking for a period, award rank bonuses and notify every student
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param payload body service.PublishLeaderboardRequest true "Leaderboard payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /leaderboard [post]
func (h *LeaderboardHandler) Publish(c *gin.Context) {
	var req service.PublishLeaderboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid leaderboard payload"))
		return
	}

	snapshot, err := h.leaderboards.Publish(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, snapshot)
}

// Get godoc
// @Summary Fetch the leaderboard of a period
// @Tags Leaderboard
// @Produce json
// @Param month path string true "Month"
// @Param year path string true "Year"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /leaderboard/{month}/{year} [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	snapshot, err := h.leaderboards.Get(c.Request.Context(), c.Param("month"), c.Param("year"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, snapshot, nil)
}

// ListAll godoc
// @Summary List published leaderboards, newest period first
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /leaderboards [get]
func (h *LeaderboardHandler) ListAll(c *gin.Context) {
	snapshots, err := h.leaderboards.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, snapshots, nil)
}

// TopStudents godoc
// @Summary Live top students by total credits
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /top-students [get]
func (h *LeaderboardHandler) TopStudents(c *gin.Context) {
	top, err := h.leaderboards.TopStudents(c.Request.Context(), topStudentsLimit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, top, nil)
}

// StudentCredits godoc
// @Summary Fetch the credit ledger of a student
// @Tags Leaderboard
// @Produce json
// @Param studentEmail path string true "Student email"
// @Success 200 {object} response.Envelope
// @Router /student-credits/{studentEmail} [get]
func (h *LeaderboardHandler) StudentCredits(c *gin.Context) {
	ledger, err := h.credits.Get(c.Request.Context(), c.Param("studentEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, ledger, nil)
}
