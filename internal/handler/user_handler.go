package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/pkg/response"
)

// UserHandler exposes profile and directory endpoints.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// Profile godoc
// @Summary Fetch a user profile
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /profile/{email} [get]
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.service.Profile(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user, nil)
}

// Students godoc
// @Summary List students of a department
// @Tags Users
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /students/{department} [get]
func (h *UserHandler) Students(c *gin.Context) {
	students, err := h.service.StudentsByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, students, nil)
}

// Teachers godoc
// @Summary List teachers of a department
// @Tags Users
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} response.Envelope
// @Router /teachers/{department} [get]
func (h *UserHandler) Teachers(c *gin.Context) {
	teachers, err := h.service.TeachersByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, teachers, nil)
}

// LinkedStudent godoc
// @Summary Resolve the student linked to a parent account
// @Tags Users
// @Produce json
// @Param parentEmail path string true "Parent email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /parent-student/{parentEmail} [get]
func (h *UserHandler) LinkedStudent(c *gin.Context) {
	student, err := h.service.LinkedStudent(c.Request.Context(), c.Param("parentEmail"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, student, nil)
}
