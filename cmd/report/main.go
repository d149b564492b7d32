// Command report prints the statistics dashboard for the stored data and
// exits. It never writes, so it is safe to run against a live data file.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/config"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/stats"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/logger"
)

func main() {
	cfgPath := "config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.L.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		logger.L.Fatal("open storage", zap.Error(err))
	}
	defer db.Close()

	flightPersister, err := store.NewSQLitePersister[domain.Flight](db, "flights")
	if err != nil {
		logger.L.Fatal("init flight storage", zap.Error(err))
	}
	passengerPersister, err := store.NewSQLitePersister[domain.Passenger](db, "passengers")
	if err != nil {
		logger.L.Fatal("init passenger storage", zap.Error(err))
	}
	bookingPersister, err := store.NewSQLitePersister[domain.Booking](db, "bookings")
	if err != nil {
		logger.L.Fatal("init booking storage", zap.Error(err))
	}

	flightStore := store.New[*domain.Flight]("flight", 1001, 0, flightPersister)
	passengerStore := store.New[*domain.Passenger]("passenger", 5001, 0, passengerPersister)
	bookingStore := store.New[*domain.Booking]("booking", 9001, 0, bookingPersister)

	if err := flightStore.Restore(ctx); err != nil {
		logger.L.Fatal("restore flights", zap.Error(err))
	}
	if err := passengerStore.Restore(ctx); err != nil {
		logger.L.Fatal("restore passengers", zap.Error(err))
	}
	if err := bookingStore.Restore(ctx); err != nil {
		logger.L.Fatal("restore bookings", zap.Error(err))
	}

	r := stats.NewService(flightStore, passengerStore, bookingStore).Collect(ctx)

	fmt.Println("AIRPORT STATISTICS")
	fmt.Printf("  Flights    : %d total, %d active, %d cancelled\n", r.TotalFlights, r.ActiveFlights, r.CancelledFlights)
	fmt.Printf("  Passengers : %d\n", r.TotalPassengers)
	fmt.Printf("  Bookings   : %d total, %d active, %d cancelled\n", r.TotalBookings, r.ActiveBookings, r.CancelledBookings)
	fmt.Printf("  Seats      : %d booked of %d (%.1f%% occupancy)\n", r.BookedSeats, r.TotalSeats, r.OccupancyPercent)
	fmt.Printf("  Revenue    : Rs. %.2f\n", r.Revenue)
}
