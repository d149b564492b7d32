package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/auth"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/flights"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/passengers"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
)

func newServices(t *testing.T) (*flights.FlightService, *passengers.PassengerService, auth.Token) {
	t.Helper()
	authSvc := auth.NewService("admin", "airport123")
	token, err := authSvc.Login("admin", "airport123")
	require.NoError(t, err)

	flightSvc := flights.NewFlightService(store.New[*domain.Flight]("flight", 1001, 100, nil), authSvc)
	passengerSvc := passengers.NewPassengerService(store.New[*domain.Passenger]("passenger", 5001, 500, nil))
	return flightSvc, passengerSvc, token
}

func TestLoad(t *testing.T) {
	flightSvc, passengerSvc, token := newServices(t)
	ctx := context.Background()

	nf, np, err := Load(ctx, token, flightSvc, passengerSvc)
	require.NoError(t, err)
	assert.Equal(t, 6, nf)
	assert.Equal(t, 3, np)

	all := flightSvc.List(ctx)
	require.Len(t, all, 6)
	assert.Equal(t, int64(1001), all[0].RecordID())
	assert.Equal(t, "AI-101", all[0].Number)
	assert.Equal(t, int64(1006), all[5].RecordID())
	assert.Equal(t, "6E-117", all[5].Number)

	// Sample flights start fully available.
	for _, f := range all {
		assert.Equal(t, f.TotalSeats, f.AvailableSeats)
		assert.True(t, f.IsActive())
	}

	people := passengerSvc.List(ctx)
	require.Len(t, people, 3)
	assert.Equal(t, int64(5001), people[0].RecordID())
	assert.Equal(t, "Rahul Sharma", people[0].Name)
}

func TestLoad_RefusesWhenDataExists(t *testing.T) {
	flightSvc, passengerSvc, token := newServices(t)
	ctx := context.Background()

	_, _, err := Load(ctx, token, flightSvc, passengerSvc)
	require.NoError(t, err)

	_, _, err = Load(ctx, token, flightSvc, passengerSvc)
	assert.ErrorIs(t, err, ErrDataExists)
	assert.Len(t, flightSvc.List(ctx), 6)
}

func TestLoad_RequiresAdminToken(t *testing.T) {
	flightSvc, passengerSvc, _ := newServices(t)

	_, _, err := Load(context.Background(), auth.Token("bogus"), flightSvc, passengerSvc)
	assert.Error(t, err)
	assert.Empty(t, flightSvc.List(context.Background()))
}
