package email

import (
	"context"
	"fmt"

	"github.com/skyfare/flightbooking/internal/kafka"
)

// Sender delivers booking notifications. No real mail transport is wired;
// messages go to stdout.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for booking %s (flight %s)\n", event.Email, event.Type, event.BookingID, event.FlightID)
	return nil
}
