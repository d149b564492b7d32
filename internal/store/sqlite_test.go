package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
)

func TestSQLitePersister_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "airport.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	persister, err := NewSQLitePersister[domain.Booking](db, "bookings")
	require.NoError(t, err)

	// A fresh database restores to an empty collection.
	records, err := persister.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	b1 := &domain.Booking{FlightID: 1001, PassengerID: 5001, SeatNumber: "1B", Class: domain.SeatClassEconomy, AmountPaid: 4500, BookedOn: "28/01/2025"}
	b1.SetRecordID(9001)
	b1.SetActive(true)
	b2 := &domain.Booking{FlightID: 1001, PassengerID: 5002, SeatNumber: "2C", Class: domain.SeatClassBusiness, AmountPaid: 12000, BookedOn: "28/01/2025"}
	b2.SetRecordID(9002)
	b2.SetActive(false)

	require.NoError(t, persister.Save(ctx, []*domain.Booking{b1, b2}))

	loaded, err := persister.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, b1, loaded[0])
	assert.Equal(t, b2, loaded[1])
}

func TestSQLitePersister_SaveReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "airport.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	persister, err := NewSQLitePersister[domain.Flight](db, "flights")
	require.NoError(t, err)

	f := &domain.Flight{Number: "AI-101", TotalSeats: 180, AvailableSeats: 180}
	f.SetRecordID(1001)
	f.SetActive(true)
	require.NoError(t, persister.Save(ctx, []*domain.Flight{f}))

	// Mutate and save again: the stored state must match the latest save,
	// not accumulate rows.
	f.AvailableSeats = 179
	require.NoError(t, persister.Save(ctx, []*domain.Flight{f}))

	loaded, err := persister.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 179, loaded[0].AvailableSeats)
}

func TestStoreRestartRoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "airport.db")

	db, err := Open(path)
	require.NoError(t, err)

	persister, err := NewSQLitePersister[domain.Passenger](db, "passengers")
	require.NoError(t, err)

	s := New[*domain.Passenger]("passenger", 5001, 0, persister)
	p := &domain.Passenger{Name: "Rahul Sharma", Age: 22, Gender: "M", Passport: "A1234567", Nationality: "Indian"}
	p.SetActive(true)
	_, err = s.Append(p)
	require.NoError(t, err)
	require.NoError(t, s.Persist(ctx))
	require.NoError(t, db.Close())

	// Simulated process restart: reopen the file and restore.
	db2, err := Open(path)
	require.NoError(t, err)
	defer db2.Close()

	persister2, err := NewSQLitePersister[domain.Passenger](db2, "passengers")
	require.NoError(t, err)
	s2 := New[*domain.Passenger]("passenger", 5001, 0, persister2)
	require.NoError(t, s2.Restore(ctx))

	got, err := s2.Get(5001)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
