package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Event records one booking-subsystem state change. The shape mirrors the
// records the operator reconciles against at end of day.
type Event struct {
	Type        string    `json:"type"`
	BookingID   int64     `json:"booking_id,omitempty"`
	FlightID    int64     `json:"flight_id,omitempty"`
	PassengerID int64     `json:"passenger_id,omitempty"`
	Seat        string    `json:"seat,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	At          time.Time `json:"at"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
	EventFlightCancelled  = "flight_cancelled"
)

// Journal appends events as JSON lines to a local file. The file is
// created on first publish.
type Journal struct {
	path string
}

func New(path string) *Journal {
	return &Journal{path: path}
}

func (j *Journal) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode journal event: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append journal event: %w", err)
	}
	return nil
}
