package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/journal"
)

func TestSend(t *testing.T) {
	tests := []struct {
		name  string
		event journal.Event
		want  string
	}{
		{
			name:  "booking created",
			event: journal.Event{Type: journal.EventBookingCreated, BookingID: 9001, FlightID: 1001, Seat: "1B", Amount: 4500},
			want:  "Booking 9001 confirmed on flight 1001, seat 1B, Rs. 4500.00 paid.\n",
		},
		{
			name:  "booking cancelled",
			event: journal.Event{Type: journal.EventBookingCancelled, BookingID: 9001, Amount: 3600},
			want:  "Booking 9001 cancelled. Refund of Rs. 3600.00 will be processed.\n",
		},
		{
			name:  "flight cancelled",
			event: journal.Event{Type: journal.EventFlightCancelled, FlightID: 1001},
			want:  "Flight 1001 cancelled; dependent bookings were cancelled with it.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewSender(&buf).Send(context.Background(), tt.event))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSend_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewSender(&buf).Send(ctx, journal.Event{Type: journal.EventBookingCreated})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
