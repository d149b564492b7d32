package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/config"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/auth"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/cli"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/journal"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/booking"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/flights"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/service/passengers"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	flightStore := store.New[*domain.Flight]("flight", 1001, cfg.Limits.MaxFlights, flightPersister)
	passengerStore := store.New[*domain.Passenger]("passenger", 5001, cfg.Limits.MaxPassengers, passengerPersister)
	bookingStore := store.New[*domain.Booking]("booking", 9001, cfg.Limits.MaxBookings, bookingPersister)

	if err := flightStore.Restore(ctx); err != nil {
		logger.L.Fatal("restore flights", zap.Error(err))
	}
	if err := passengerStore.Restore(ctx); err != nil {
		logger.L.Fatal("restore passengers", zap.Error(err))
	}
	if err := bookingStore.Restore(ctx); err != nil {
		logger.L.Fatal("restore bookings", zap.Error(err))
	}

	authSvc := auth.NewService(cfg.Admin.Username, cfg.Admin.Password)
	eventJournal := journal.New(cfg.Storage.JournalPath)

	flightSvc := flights.NewFlightService(flightStore, authSvc, flights.WithPublisher(eventJournal))
	passengerSvc := passengers.NewPassengerService(passengerStore)
	bookingSvc := booking.NewBookingService(
		bookingStore,
		flightSvc,
		passengerSvc,
		booking.WithPublisher(eventJournal),
		booking.WithRefundRate(cfg.Booking.RefundRate),
	)
	flightSvc.SetBookingCanceller(bookingSvc)
	statsSvc := stats.NewService(flightStore, passengerStore, bookingStore)

	persistAll := func(ctx context.Context) error {
		return errors.Join(
			flightStore.Persist(ctx),
			passengerStore.Persist(ctx),
			bookingStore.Persist(ctx),
		)
	}

	app := cli.New(os.Stdin, os.Stdout, authSvc, flightSvc, passengerSvc, bookingSvc, statsSvc, persistAll)
	if err := app.Run(ctx); err != nil {
		logger.L.Fatal("app error", zap.Error(err))
	}
}
