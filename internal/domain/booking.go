package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	FlightID   string        `json:"flight_id"`
	Status     BookingStatus `json:"status"`
	PriceCents int64         `json:"price_cents"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BookingDetails is the read model for the bookings-of-a-user listing:
// the booking joined with its flight and full payment history.
type BookingDetails struct {
	Booking
	Flight   *Flight   `json:"flight,omitempty"`
	Payments []Payment `json:"payments"`
}
