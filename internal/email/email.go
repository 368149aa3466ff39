package email

import (
	"context"
	"fmt"

	"github.com/arjunm592/airtravel/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("send confirmation to %s: reservation %s on flight %d seat %s\n", event.Email, event.Reference, event.FlightID, event.SeatNumber)
	return nil
}
