package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_register(t *testing.T) {
	authSvc := &MockAuthUseCase{}
	handler := NewAuthHandler(authSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"new@example.com","password":"secret1","name":"New"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	authSvc.On("Register", c.Request.Context(), "new@example.com", "secret1", "New").
		Return(&domain.User{ID: "u1", Email: "new@example.com"}, "jwt-token", nil)

	handler.register(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jwt-token")
}

func TestAuthHandler_register_missingFields(t *testing.T) {
	handler := NewAuthHandler(&MockAuthUseCase{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"email":"new@example.com"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_login_badCredentials(t *testing.T) {
	authSvc := &MockAuthUseCase{}
	handler := NewAuthHandler(authSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"user@example.com","password":"wrong"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	authSvc.On("Login", c.Request.Context(), "user@example.com", "wrong").
		Return(nil, "", domain.ErrUnauthorized)

	handler.login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
