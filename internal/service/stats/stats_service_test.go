package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
)

func newStores() (*store.Store[*domain.Flight], *store.Store[*domain.Passenger], *store.Store[*domain.Booking]) {
	return store.New[*domain.Flight]("flight", 1001, 0, nil),
		store.New[*domain.Passenger]("passenger", 5001, 0, nil),
		store.New[*domain.Booking]("booking", 9001, 0, nil)
}

func addFlight(t *testing.T, st *store.Store[*domain.Flight], total, available int, active bool) {
	t.Helper()
	f := &domain.Flight{TotalSeats: total, AvailableSeats: available}
	f.SetActive(active)
	_, err := st.Append(f)
	require.NoError(t, err)
}

func addBooking(t *testing.T, st *store.Store[*domain.Booking], amount float64, active bool) {
	t.Helper()
	b := &domain.Booking{AmountPaid: amount}
	b.SetActive(active)
	_, err := st.Append(b)
	require.NoError(t, err)
}

func TestCollect(t *testing.T) {
	flights, passengers, bookings := newStores()
	svc := NewService(flights, passengers, bookings)

	addFlight(t, flights, 100, 75, true)
	addFlight(t, flights, 100, 100, true)
	addFlight(t, flights, 200, 0, false)

	_, err := passengers.Append(&domain.Passenger{Name: "Rahul Sharma"})
	require.NoError(t, err)

	addBooking(t, bookings, 4500, true)
	addBooking(t, bookings, 12000, true)
	addBooking(t, bookings, 5200, false)

	r := svc.Collect(context.Background())

	assert.Equal(t, 3, r.TotalFlights)
	assert.Equal(t, 2, r.ActiveFlights)
	assert.Equal(t, 1, r.CancelledFlights)
	assert.Equal(t, 1, r.TotalPassengers)
	assert.Equal(t, 3, r.TotalBookings)
	assert.Equal(t, 2, r.ActiveBookings)
	assert.Equal(t, 1, r.CancelledBookings)

	// Seat totals span active flights only.
	assert.Equal(t, 200, r.TotalSeats)
	assert.Equal(t, 25, r.BookedSeats)
	assert.Equal(t, 12.5, r.OccupancyPercent)

	// Revenue counts active bookings only.
	assert.Equal(t, 16500.0, r.Revenue)
}

func TestCollect_EmptyStores(t *testing.T) {
	flights, passengers, bookings := newStores()
	svc := NewService(flights, passengers, bookings)

	r := svc.Collect(context.Background())

	assert.Zero(t, r.TotalFlights)
	assert.Zero(t, r.Revenue)
	// No seats at all must not divide by zero.
	assert.Zero(t, r.OccupancyPercent)
}
