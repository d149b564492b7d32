package flights

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/auth"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/journal"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
	apperrors "github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/apperrors"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/logger"
)

// BookingCanceller cancels every active booking on a flight. Implemented
// by the booking service; injected after construction because the booking
// service in turn depends on this package's seat inventory.
type BookingCanceller interface {
	CascadeCancel(ctx context.Context, flightID int64) (int, error)
}

type Publisher interface {
	Publish(ctx context.Context, event journal.Event) error
}

type FlightInput struct {
	Number        string
	Airline       string
	Source        string
	Destination   string
	Date          string
	DepartureTime string
	ArrivalTime   string
	TotalSeats    int
	EconomyPrice  float64
	BusinessPrice float64
}

// FlightUpdate patches mutable flight fields. Empty strings and nil prices
// leave the current value in place. Seat capacity changes go through
// ModifySeatCapacity, which owns the availability arithmetic.
type FlightUpdate struct {
	Date          string
	DepartureTime string
	ArrivalTime   string
	EconomyPrice  *float64
	BusinessPrice *float64
}

// SearchCriteria selects one search mode; the first populated criterion in
// the order Number, Source+Destination, Date, ID wins.
type SearchCriteria struct {
	Number      string
	Source      string
	Destination string
	Date        string
	ID          int64
}

// FlightService owns the flight catalog. It is the only component that
// mutates flight records; seat counters move only through ReserveSeat,
// ReleaseSeat and ModifySeatCapacity.
type FlightService struct {
	store     *store.Store[*domain.Flight]
	verifier  auth.Verifier
	canceller BookingCanceller
	publisher Publisher
	log       *zap.Logger
}

type Option func(*FlightService)

func WithPublisher(p Publisher) Option {
	return func(s *FlightService) {
		s.publisher = p
	}
}

func NewFlightService(st *store.Store[*domain.Flight], verifier auth.Verifier, opts ...Option) *FlightService {
	s := &FlightService{
		store:    st,
		verifier: verifier,
		log:      logger.WithComponent("flights"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetBookingCanceller wires the cascade collaborator once the booking
// service exists.
func (s *FlightService) SetBookingCanceller(c BookingCanceller) {
	s.canceller = c
}

// AddFlight registers a new flight with every seat available. No business
// validation beyond struct shape; admin token required.
func (s *FlightService) AddFlight(ctx context.Context, token auth.Token, input FlightInput) (*domain.Flight, error) {
	if err := s.verifier.Verify(token); err != nil {
		return nil, err
	}
	f := &domain.Flight{
		Number:         input.Number,
		Airline:        input.Airline,
		Source:         input.Source,
		Destination:    input.Destination,
		Date:           input.Date,
		DepartureTime:  input.DepartureTime,
		ArrivalTime:    input.ArrivalTime,
		TotalSeats:     input.TotalSeats,
		AvailableSeats: input.TotalSeats,
		EconomyPrice:   input.EconomyPrice,
		BusinessPrice:  input.BusinessPrice,
	}
	f.SetActive(true)
	if _, err := s.store.Append(f); err != nil {
		return nil, err
	}
	if err := s.store.Persist(ctx); err != nil {
		return f, err
	}
	s.log.Info("flight added", zap.Int64("id", f.RecordID()), zap.String("number", f.Number))
	return f, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("flight %d: %w", id, apperrors.ErrFlightNotFound)
	}
	return f, nil
}

func (s *FlightService) List(ctx context.Context) []*domain.Flight {
	var out []*domain.Flight
	for f := range s.store.All() {
		out = append(out, f)
	}
	return out
}

// CancelFlight deactivates a flight and cascades cancellation to its
// active bookings. Cascaded bookings keep their seats booked; the flight
// is gone wholesale, so nothing is restored.
func (s *FlightService) CancelFlight(ctx context.Context, token auth.Token, id int64) (*domain.Flight, int, error) {
	if err := s.verifier.Verify(token); err != nil {
		return nil, 0, err
	}
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if !f.IsActive() {
		return nil, 0, fmt.Errorf("flight %d: %w", id, apperrors.ErrAlreadyCancelled)
	}

	f.SetActive(false)
	cancelled := 0
	if s.canceller != nil {
		cancelled, err = s.canceller.CascadeCancel(ctx, id)
		if err != nil {
			return f, cancelled, err
		}
	}
	if err := s.store.Persist(ctx); err != nil {
		return f, cancelled, err
	}
	if s.publisher != nil {
		if perr := s.publisher.Publish(ctx, journal.Event{Type: journal.EventFlightCancelled, FlightID: id}); perr != nil {
			s.log.Warn("publish flight_cancelled failed", zap.Int64("flight_id", id), zap.Error(perr))
		}
	}
	s.log.Info("flight cancelled", zap.Int64("id", id), zap.Int("cascaded_bookings", cancelled))
	return f, cancelled, nil
}

// ModifySeatCapacity changes the total seat count, keeping already-booked
// seats intact. Available seats shift by the same delta as the total.
func (s *FlightService) ModifySeatCapacity(ctx context.Context, token auth.Token, id int64, newTotal int) (*domain.Flight, error) {
	if err := s.verifier.Verify(token); err != nil {
		return nil, err
	}
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	booked := f.BookedSeats()
	if newTotal < booked {
		return nil, fmt.Errorf("flight %d has %d booked seats: %w", id, booked, apperrors.ErrInvalidCapacity)
	}
	f.TotalSeats = newTotal
	f.AvailableSeats = newTotal - booked
	if err := s.store.Persist(ctx); err != nil {
		return f, err
	}
	return f, nil
}

// UpdateFlight patches schedule and pricing fields.
func (s *FlightService) UpdateFlight(ctx context.Context, token auth.Token, id int64, upd FlightUpdate) (*domain.Flight, error) {
	if err := s.verifier.Verify(token); err != nil {
		return nil, err
	}
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Date != "" {
		f.Date = upd.Date
	}
	if upd.DepartureTime != "" {
		f.DepartureTime = upd.DepartureTime
	}
	if upd.ArrivalTime != "" {
		f.ArrivalTime = upd.ArrivalTime
	}
	if upd.EconomyPrice != nil {
		f.EconomyPrice = *upd.EconomyPrice
	}
	if upd.BusinessPrice != nil {
		f.BusinessPrice = *upd.BusinessPrice
	}
	if err := s.store.Persist(ctx); err != nil {
		return f, err
	}
	return f, nil
}

// Search returns flights matching the criteria in store-iteration order.
// Flight-number and id searches cover cancelled flights; route and date
// searches only surface flights a passenger could still book.
func (s *FlightService) Search(ctx context.Context, c SearchCriteria) []*domain.Flight {
	var out []*domain.Flight
	switch {
	case c.Number != "":
		for f := range s.store.All() {
			if strings.EqualFold(f.Number, c.Number) {
				out = append(out, f)
			}
		}
	case c.Source != "" && c.Destination != "":
		for f := range s.store.All() {
			if f.IsActive() && strings.EqualFold(f.Source, c.Source) && strings.EqualFold(f.Destination, c.Destination) {
				out = append(out, f)
			}
		}
	case c.Date != "":
		for f := range s.store.All() {
			if f.IsActive() && f.Date == c.Date {
				out = append(out, f)
			}
		}
	case c.ID != 0:
		for f := range s.store.All() {
			if f.RecordID() == c.ID {
				out = append(out, f)
			}
		}
	}
	return out
}

// ReserveSeat takes one seat on an active flight and persists the catalog.
func (s *FlightService) ReserveSeat(ctx context.Context, flightID int64) error {
	f, err := s.GetByID(ctx, flightID)
	if err != nil {
		return err
	}
	if !f.IsActive() {
		return fmt.Errorf("flight %d is cancelled: %w", flightID, apperrors.ErrFlightNotFound)
	}
	if f.AvailableSeats <= 0 {
		return fmt.Errorf("flight %d: %w", flightID, apperrors.ErrNoSeatsAvailable)
	}
	f.AvailableSeats--
	return s.store.Persist(ctx)
}

// ReleaseSeat returns one seat to a flight after a direct booking
// cancellation. Cascaded cancellations never call this.
func (s *FlightService) ReleaseSeat(ctx context.Context, flightID int64) error {
	f, err := s.GetByID(ctx, flightID)
	if err != nil {
		return err
	}
	if f.AvailableSeats >= f.TotalSeats {
		s.log.Warn("release with no booked seats", zap.Int64("flight_id", flightID))
		return nil
	}
	f.AvailableSeats++
	return s.store.Persist(ctx)
}
