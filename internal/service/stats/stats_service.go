package stats

import (
	"context"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
)

// Report is the statistics dashboard snapshot. Revenue counts active
// bookings only; fees retained from cancelled bookings are not included.
type Report struct {
	TotalFlights      int
	ActiveFlights     int
	CancelledFlights  int
	TotalPassengers   int
	TotalBookings     int
	ActiveBookings    int
	CancelledBookings int
	TotalSeats        int
	BookedSeats       int
	OccupancyPercent  float64
	Revenue           float64
}

// Service is a pure read-only view over the three stores.
type Service struct {
	flights    *store.Store[*domain.Flight]
	passengers *store.Store[*domain.Passenger]
	bookings   *store.Store[*domain.Booking]
}

func NewService(flights *store.Store[*domain.Flight], passengers *store.Store[*domain.Passenger], bookings *store.Store[*domain.Booking]) *Service {
	return &Service{
		flights:    flights,
		passengers: passengers,
		bookings:   bookings,
	}
}

func (s *Service) Collect(ctx context.Context) Report {
	r := Report{
		TotalFlights:    s.flights.Len(),
		TotalPassengers: s.passengers.Len(),
		TotalBookings:   s.bookings.Len(),
	}
	for f := range s.flights.All() {
		if f.IsActive() {
			r.ActiveFlights++
			r.TotalSeats += f.TotalSeats
			r.BookedSeats += f.BookedSeats()
		} else {
			r.CancelledFlights++
		}
	}
	for b := range s.bookings.All() {
		if b.IsActive() {
			r.ActiveBookings++
			r.Revenue += b.AmountPaid
		} else {
			r.CancelledBookings++
		}
	}
	if r.TotalSeats > 0 {
		r.OccupancyPercent = float64(r.BookedSeats) * 100 / float64(r.TotalSeats)
	}
	return r
}
