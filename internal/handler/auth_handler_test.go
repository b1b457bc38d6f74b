package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-api/internal/repository"
	"github.com/noah-isme/campus-api/internal/service"
	"github.com/noah-isme/campus-api/internal/store"
)

func buildAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := store.New(nil)
	users := repository.NewUserRepository(db)
	credits := service.NewCreditService(repository.NewCreditRepository(db), nil)
	authHandler := NewAuthHandler(service.NewAuthService(users, credits, nil, nil))

	r := gin.New()
	r.POST("/api/register", authHandler.Register)
	r.POST("/api/login", authHandler.Login)
	return r
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRoutesRegisterAndLogin(t *testing.T) {
	router := buildAuthRouter()

	payload := `{"role":"student","email":"s@campus.edu","password":"secret123","name":"Student One","department":"CSE"}`
	resp := performRequest(router, http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusCreated, resp.Code)
	require.Contains(t, resp.Body.String(), `"roll_number":"CSE001"`)

	resp = performRequest(router, http.MethodPost, "/api/register", payload)
	require.Equal(t, http.StatusConflict, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/login", `{"email":"s@campus.edu","password":"secret123"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"email":"s@campus.edu"`)

	resp = performRequest(router, http.MethodPost, "/api/login", `{"email":"s@campus.edu","password":"wrong-pass"}`)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthRoutesRejectMalformedPayload(t *testing.T) {
	router := buildAuthRouter()

	resp := performRequest(router, http.MethodPost, "/api/register", `{"role":`)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// Valid JSON, missing required fields.
	resp = performRequest(router, http.MethodPost, "/api/register", `{"role":"student"}`)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
