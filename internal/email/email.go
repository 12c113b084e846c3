package email

import (
	"context"
	"fmt"

	"github.com/rmoulin/skyflight/internal/kafka"
)

// Sender delivers booking notifications. Delivery is a log line for now; the
// worker owns the transport so swapping in SMTP stays local to this package.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_confirmed":
		fmt.Printf("send confirmation email to %s: booking %s, flight %s, seat %s, %s class\n",
			event.Email, event.BID, event.FlNo, event.Seat, event.Class)
	case "booking_cancelled":
		fmt.Printf("send cancellation email to %s: booking %s on flight %s cancelled\n",
			event.Email, event.BID, event.FlNo)
	default:
		fmt.Printf("send email to %s about %s for booking %s\n", event.Email, event.Type, event.BID)
	}
	return nil
}
