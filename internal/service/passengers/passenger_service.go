package passengers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
	apperrors "github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/apperrors"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/logger"
)

type PassengerInput struct {
	Name        string
	Age         int
	Gender      string
	Phone       string
	Email       string
	Passport    string
	Nationality string
}

// PassengerService owns the passenger directory. Records are immutable
// once registered; there is deliberately no dedup check, a passport or
// email may repeat across registrations.
type PassengerService struct {
	store *store.Store[*domain.Passenger]
	log   *zap.Logger
}

func NewPassengerService(st *store.Store[*domain.Passenger]) *PassengerService {
	return &PassengerService{
		store: st,
		log:   logger.WithComponent("passengers"),
	}
}

func (s *PassengerService) Register(ctx context.Context, input PassengerInput) (*domain.Passenger, error) {
	p := &domain.Passenger{
		Name:        input.Name,
		Age:         input.Age,
		Gender:      input.Gender,
		Phone:       input.Phone,
		Email:       input.Email,
		Passport:    input.Passport,
		Nationality: input.Nationality,
	}
	p.SetActive(true)
	if _, err := s.store.Append(p); err != nil {
		return nil, err
	}
	if err := s.store.Persist(ctx); err != nil {
		return p, err
	}
	s.log.Info("passenger registered", zap.Int64("id", p.RecordID()), zap.String("name", p.Name))
	return p, nil
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	p, err := s.store.Get(id)
	if err != nil {
		return nil, fmt.Errorf("passenger %d: %w", id, apperrors.ErrPassengerNotFound)
	}
	return p, nil
}

func (s *PassengerService) List(ctx context.Context) []*domain.Passenger {
	var out []*domain.Passenger
	for p := range s.store.All() {
		out = append(out, p)
	}
	return out
}
