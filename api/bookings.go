package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID string `json:"flight_id" binding:"required"`
}

type payBookingRequest struct {
	Method     string `json:"method" binding:"required"`
	UPIID      string `json:"upi_id"`
	CardNumber string `json:"card_number"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/me", h.listMine)
	router.POST("/:id/confirm", h.confirm)
	router.POST("/:id/pay", h.pay)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), UserID(c), req.FlightID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) confirm(c *gin.Context) {
	result, err := h.service.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) listMine(c *gin.Context) {
	result, err := h.service.GetUserBookings(c.Request.Context(), UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) pay(c *gin.Context) {
	var req payBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.PayForBooking(c.Request.Context(), c.Param("id"), booking.PaymentInput{
		Method:     domainMethod(req.Method),
		UPIID:      req.UPIID,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func domainMethod(method string) domain.PaymentMethod {
	return domain.PaymentMethod(strings.ToUpper(method))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	result, err := h.service.CancelAndRefund(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
