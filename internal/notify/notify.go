package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/journal"
)

// Sender turns booking events into short operator-facing notices. There is
// no mail gateway here; notices go to the writer the CLI hands in.
type Sender struct {
	out io.Writer
}

func NewSender(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event journal.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var err error
	switch event.Type {
	case journal.EventBookingCreated:
		_, err = fmt.Fprintf(s.out, "Booking %d confirmed on flight %d, seat %s, Rs. %.2f paid.\n",
			event.BookingID, event.FlightID, event.Seat, event.Amount)
	case journal.EventBookingCancelled:
		_, err = fmt.Fprintf(s.out, "Booking %d cancelled. Refund of Rs. %.2f will be processed.\n",
			event.BookingID, event.Amount)
	case journal.EventFlightCancelled:
		_, err = fmt.Fprintf(s.out, "Flight %d cancelled; dependent bookings were cancelled with it.\n",
			event.FlightID)
	default:
		_, err = fmt.Fprintf(s.out, "%s (booking %d, flight %d)\n", event.Type, event.BookingID, event.FlightID)
	}
	return err
}
