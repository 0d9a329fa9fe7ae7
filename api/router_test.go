package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skyfare/flightbooking/config"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Health(t *testing.T) {
	router := NewRouter(config.HTTPConfig{FrontendOrigin: "http://localhost:3000"},
		&MockAuthUseCase{}, &MockFlightUseCase{}, &MockBookingUseCase{}, &MockChatUseCase{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_BookingsRequireAuth(t *testing.T) {
	router := NewRouter(config.HTTPConfig{FrontendOrigin: "http://localhost:3000"},
		&MockAuthUseCase{}, &MockFlightUseCase{}, &MockBookingUseCase{}, &MockChatUseCase{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/bookings/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
