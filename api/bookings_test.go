package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, userID, flightID string) (*domain.Booking, error) {
	args := m.Called(ctx, userID, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) PayForBooking(ctx context.Context, bookingID string, input booking.PaymentInput) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelAndRefund(ctx context.Context, bookingID string) (*booking.CancelResult, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CancelResult), args.Error(1)
}

func (m *MockBookingUseCase) GetUserBookings(ctx context.Context, userID string) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

func testContext(method, path, body string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(userIDKey, "u1")
	return w, c
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w, c := testContext("POST", "/bookings", `{"flight_id":"f1"}`)

	mockService.On("CreateBooking", c.Request.Context(), "u1", "f1").
		Return(&domain.Booking{ID: "b1", UserID: "u1", FlightID: "f1", Status: domain.BookingStatusPending}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.BookingStatusPending, resp.Status)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_flightMissing(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w, c := testContext("POST", "/bookings", `{"flight_id":"missing"}`)

	mockService.On("CreateBooking", c.Request.Context(), "u1", "missing").
		Return(nil, domain.ErrNotFound)

	handler.create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_pay(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w, c := testContext("POST", "/bookings/b1/pay", `{"method":"upi","upi_id":"user@bank"}`)
	c.Params = gin.Params{{Key: "id", Value: "b1"}}

	mockService.On("PayForBooking", c.Request.Context(), "b1", booking.PaymentInput{
		Method: domain.PaymentMethodUPI,
		UPIID:  "user@bank",
	}).Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)

	handler.pay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_pay_validationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w, c := testContext("POST", "/bookings/b1/pay", `{"method":"UPI","upi_id":"not-an-email"}`)
	c.Params = gin.Params{{Key: "id", Value: "b1"}}

	mockService.On("PayForBooking", c.Request.Context(), "b1", mock.Anything).
		Return(nil, domain.ErrValidation)

	handler.pay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w, c := testContext("DELETE", "/bookings/b1", "")
	c.Params = gin.Params{{Key: "id", Value: "b1"}}

	mockService.On("CancelAndRefund", c.Request.Context(), "b1").
		Return(&booking.CancelResult{OK: true}, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp booking.CancelResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
}

func TestBookingHandler_listMine(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w, c := testContext("GET", "/bookings/me", "")

	mockService.On("GetUserBookings", c.Request.Context(), "u1").
		Return([]domain.BookingDetails{}, nil)

	handler.listMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
