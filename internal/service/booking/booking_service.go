package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/journal"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
	apperrors "github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/apperrors"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/logger"
)

const dateLayout = "02/01/2006"

// seatRows is the round-robin row letter set used for seat labels.
const seatRows = "ABCDEF"

// SeatInventory is the slice of the flight catalog the booking engine
// depends on. Seat counters are mutated only behind this interface.
type SeatInventory interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	ReserveSeat(ctx context.Context, flightID int64) error
	ReleaseSeat(ctx context.Context, flightID int64) error
}

type PassengerLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
}

type Publisher interface {
	Publish(ctx context.Context, event journal.Event) error
}

// BookingService is the booking engine: it creates bookings against the
// flight catalog and passenger directory, derives seat labels, snapshots
// prices and computes refunds.
type BookingService struct {
	store      *store.Store[*domain.Booking]
	flights    SeatInventory
	passengers PassengerLookup
	publisher  Publisher
	refundRate float64
	now        func() time.Time
	log        *zap.Logger
}

type Option func(*BookingService)

func WithPublisher(p Publisher) Option {
	return func(s *BookingService) {
		s.publisher = p
	}
}

// WithRefundRate overrides the flat refund fraction. The default keeps 20%
// as a cancellation fee.
func WithRefundRate(rate float64) Option {
	return func(s *BookingService) {
		s.refundRate = rate
	}
}

// WithClock fixes the booking-date source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(st *store.Store[*domain.Booking], flights SeatInventory, passengers PassengerLookup, opts ...Option) *BookingService {
	s := &BookingService{
		store:      st,
		flights:    flights,
		passengers: passengers,
		refundRate: 0.80,
		now:        time.Now,
		log:        logger.WithComponent("booking"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// seatLabel derives the label for the next seat sold on f. The ordinal
// counts every seat ever sold on the flight, cancelled ones included, so
// labels are never reissued within one flight's uninterrupted sales run.
// This is a label generator, not a seat map; it does not track occupancy.
func seatLabel(f *domain.Flight) string {
	ordinal := f.TotalSeats - f.AvailableSeats + 1
	row := seatRows[ordinal%len(seatRows)]
	return fmt.Sprintf("%d%c", ordinal, row)
}

// CreateBooking books one seat. Preconditions are checked in a fixed
// order: active flight, free seat, known passenger. On any failure no
// store is mutated.
func (s *BookingService) CreateBooking(ctx context.Context, flightID, passengerID int64, class domain.SeatClass) (*domain.Booking, error) {
	f, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if !f.IsActive() {
		return nil, fmt.Errorf("flight %d is cancelled: %w", flightID, apperrors.ErrFlightNotFound)
	}
	if f.AvailableSeats <= 0 {
		return nil, fmt.Errorf("flight %d: %w", flightID, apperrors.ErrNoSeatsAvailable)
	}
	p, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	price := f.EconomyPrice
	if class == domain.SeatClassBusiness {
		price = f.BusinessPrice
	} else {
		class = domain.SeatClassEconomy
	}
	seat := seatLabel(f)

	if err := s.flights.ReserveSeat(ctx, flightID); err != nil {
		return nil, err
	}
	b := &domain.Booking{
		FlightID:    flightID,
		PassengerID: p.RecordID(),
		SeatNumber:  seat,
		Class:       class,
		AmountPaid:  price,
		BookedOn:    s.now().Format(dateLayout),
	}
	b.SetActive(true)
	if _, err := s.store.Append(b); err != nil {
		// Undo the reservation so the failed call leaves no trace.
		_ = s.flights.ReleaseSeat(ctx, flightID)
		return nil, err
	}
	if err := s.store.Persist(ctx); err != nil {
		// In-memory state is ahead of disk until the next successful
		// persist; report, do not roll back.
		return b, err
	}
	s.publish(ctx, journal.Event{
		Type:        journal.EventBookingCreated,
		BookingID:   b.RecordID(),
		FlightID:    flightID,
		PassengerID: passengerID,
		Seat:        seat,
		Amount:      price,
	})
	s.log.Info("booking created",
		zap.Int64("id", b.RecordID()),
		zap.Int64("flight_id", flightID),
		zap.String("seat", seat))
	return b, nil
}

// CancelBooking cancels a confirmed booking and reports the refund after
// the flat cancellation fee. The seat goes back to the flight only when
// the flight itself is still active; bookings on a cancelled flight were
// already cancelled by the cascade and never reach this path.
func (s *BookingService) CancelBooking(ctx context.Context, id int64) (*domain.Booking, float64, error) {
	b, err := s.store.Get(id)
	if err != nil {
		return nil, 0, fmt.Errorf("booking %d: %w", id, apperrors.ErrBookingNotFound)
	}
	if !b.IsActive() {
		return nil, 0, fmt.Errorf("booking %d: %w", id, apperrors.ErrAlreadyCancelled)
	}

	refund := b.AmountPaid * s.refundRate
	b.SetActive(false)
	if f, ferr := s.flights.GetByID(ctx, b.FlightID); ferr == nil && f.IsActive() {
		if rerr := s.flights.ReleaseSeat(ctx, b.FlightID); rerr != nil {
			s.log.Warn("seat release failed", zap.Int64("flight_id", b.FlightID), zap.Error(rerr))
		}
	}
	if err := s.store.Persist(ctx); err != nil {
		return b, refund, err
	}
	s.publish(ctx, journal.Event{
		Type:        journal.EventBookingCancelled,
		BookingID:   b.RecordID(),
		FlightID:    b.FlightID,
		PassengerID: b.PassengerID,
		Seat:        b.SeatNumber,
		Amount:      refund,
	})
	s.log.Info("booking cancelled", zap.Int64("id", id), zap.Float64("refund", refund))
	return b, refund, nil
}

// CascadeCancel deactivates every active booking on a flight that is being
// cancelled wholesale. Seat counters are left alone. Called by the flight
// catalog only.
func (s *BookingService) CascadeCancel(ctx context.Context, flightID int64) (int, error) {
	cancelled := 0
	for b := range s.store.All() {
		if b.FlightID == flightID && b.IsActive() {
			b.SetActive(false)
			cancelled++
		}
	}
	if cancelled == 0 {
		return 0, nil
	}
	if err := s.store.Persist(ctx); err != nil {
		return cancelled, err
	}
	return cancelled, nil
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", id, apperrors.ErrBookingNotFound)
	}
	return b, nil
}

func (s *BookingService) ListAll(ctx context.Context) []*domain.Booking {
	var out []*domain.Booking
	for b := range s.store.All() {
		out = append(out, b)
	}
	return out
}

// ListByPassenger returns all bookings, active and cancelled, made by one
// passenger.
func (s *BookingService) ListByPassenger(ctx context.Context, passengerID int64) []*domain.Booking {
	var out []*domain.Booking
	for b := range s.store.All() {
		if b.PassengerID == passengerID {
			out = append(out, b)
		}
	}
	return out
}

func (s *BookingService) publish(ctx context.Context, event journal.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish event failed", zap.String("type", event.Type), zap.Error(err))
	}
}
