package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-api/internal/models"
	"github.com/noah-isme/campus-api/internal/repository"
	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/internal/store"
)

func TestNotificationRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := store.New(nil)
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, nil, nil)
	notificationHandler := NewNotificationHandler(svc)

	r := gin.New()
	r.GET("/api/notifications/:userEmail", notificationHandler.ListFor)
	r.POST("/api/notifications/mark-read", notificationHandler.MarkRead)

	created, err := svc.Notify(context.Background(), "s@campus.edu", "New Grade Available", "Your grade is in.", models.SeverityInfo)
	require.NoError(t, err)

	resp := performRequest(r, http.MethodGet, "/api/notifications/s@campus.edu", "")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "New Grade Available")

	resp = performRequest(r, http.MethodPost, "/api/notifications/mark-read", `{"notificationId":"`+created.ID+`"}`)
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(r, http.MethodPost, "/api/notifications/mark-read", `{"notificationId":"missing"}`)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = performRequest(r, http.MethodPost, "/api/notifications/mark-read", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
