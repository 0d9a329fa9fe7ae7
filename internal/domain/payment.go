package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCard PaymentMethod = "CARD"
)

type PaymentStatus string

const (
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"booking_id"`
	Method      PaymentMethod `json:"method"`
	AmountCents int64         `json:"amount_cents"`
	Status      PaymentStatus `json:"status"`
	UPIID       string        `json:"upi_id,omitempty"`
	CardLast4   string        `json:"card_last4,omitempty"`
	CardBrand   string        `json:"card_brand,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// RefundEntry is an audit ledger row. It keeps the booking id as a plain
// value, not a foreign key, so the entry survives deletion of the booking
// it refunds.
type RefundEntry struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"booking_id"`
	Method      PaymentMethod `json:"method"`
	AmountCents int64         `json:"amount_cents"`
	UPIID       string        `json:"upi_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
