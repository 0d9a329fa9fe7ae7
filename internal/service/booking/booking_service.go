package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/kafka"
	"github.com/skyfare/flightbooking/internal/repository"
	"github.com/skyfare/flightbooking/internal/validate"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, userID, flightID string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	PayForBooking(ctx context.Context, bookingID string, input PaymentInput) (*domain.Booking, error)
	CancelAndRefund(ctx context.Context, bookingID string) (*CancelResult, error)
	GetUserBookings(ctx context.Context, userID string) ([]domain.BookingDetails, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type PaymentInput struct {
	Method     domain.PaymentMethod `json:"method"`
	UPIID      string               `json:"upi_id,omitempty"`
	CardNumber string               `json:"card_number,omitempty"`
}

type CancelResult struct {
	OK       bool                `json:"ok"`
	Refunded *domain.RefundEntry `json:"refunded,omitempty"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	payments           repository.PaymentRepository
	refunds            repository.RefundLedger
	users              repository.UserRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	payments repository.PaymentRepository,
	refunds repository.RefundLedger,
	users repository.UserRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		payments:     payments,
		refunds:      refunds,
		users:        users,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking inserts a PENDING booking with the price captured from
// the flight at this moment. Later flight price changes do not touch it.
func (s *BookingService) CreateBooking(ctx context.Context, userID, flightID string) (*domain.Booking, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: flight", domain.ErrNotFound)
		}
		return nil, err
	}

	booking := &domain.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		FlightID:   flightID,
		Status:     domain.BookingStatusPending,
		PriceCents: flight.BasePriceCents,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

// ConfirmBooking flips a booking straight to CONFIRMED without recording
// a payment.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", updated)
	return updated, nil
}

// PayForBooking validates the payment input, records a SUCCESS payment
// row and confirms the booking in one transaction. Paying an already
// CONFIRMED booking is a no-op returning the booking unchanged.
func (s *BookingService) PayForBooking(ctx context.Context, bookingID string, input PaymentInput) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusConfirmed {
		return booking, nil
	}

	payment := &domain.Payment{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Method:      input.Method,
		AmountCents: booking.PriceCents,
		Status:      domain.PaymentStatusSuccess,
	}

	switch input.Method {
	case domain.PaymentMethodUPI:
		upiID := validate.NormalizeUPI(input.UPIID)
		if !validate.IsValidUPI(upiID) {
			return nil, fmt.Errorf("%w: invalid UPI id", domain.ErrValidation)
		}
		payment.UPIID = upiID
	case domain.PaymentMethodCard:
		number := validate.NormalizeCardNumber(input.CardNumber)
		if !validate.LuhnCheck(number) {
			return nil, fmt.Errorf("%w: invalid card number", domain.ErrValidation)
		}
		payment.CardLast4 = number[len(number)-4:]
		payment.CardBrand = validate.CardBrand(number)
	default:
		return nil, fmt.Errorf("%w: unsupported payment method", domain.ErrValidation)
	}

	// No gateway is contacted; well-formed input always succeeds.
	updated, err := s.bookings.ConfirmWithPayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", updated)
	return updated, nil
}

// CancelAndRefund writes a refund ledger entry for a successful UPI
// payment, then removes the booking and its payment rows. Card payments
// are not refunded. The ledger entry survives the deletion.
func (s *BookingService) CancelAndRefund(ctx context.Context, bookingID string) (*CancelResult, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	result := &CancelResult{OK: true}
	for _, p := range payments {
		if p.Status == domain.PaymentStatusSuccess && p.Method == domain.PaymentMethodUPI && p.UPIID != "" {
			entry := &domain.RefundEntry{
				ID:          uuid.NewString(),
				BookingID:   bookingID,
				Method:      domain.PaymentMethodUPI,
				AmountCents: booking.PriceCents,
				UPIID:       p.UPIID,
			}
			if err := s.refunds.Append(ctx, entry); err != nil {
				return nil, err
			}
			result.Refunded = entry
			break
		}
	}

	if err := s.bookings.DeleteWithPayments(ctx, bookingID); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusCancelled
	s.publish(ctx, "booking_cancelled", booking)
	return result, nil
}

func (s *BookingService) GetUserBookings(ctx context.Context, userID string) ([]domain.BookingDetails, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		FlightID:   booking.FlightID,
		PriceCents: booking.PriceCents,
		Status:     string(booking.Status),
		OccurredAt: time.Now(),
	}
	if s.users != nil {
		if user, err := s.users.GetByID(ctx, booking.UserID); err == nil {
			event.Email = user.Email
		}
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		log.Printf("publish %s event for booking %s: %v", eventType, booking.ID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			log.Printf("publish %s notification for booking %s: %v", eventType, booking.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
