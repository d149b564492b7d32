package passengers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/domain"
	"github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/internal/store"
	apperrors "github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/apperrors"
)

func newService(limit int) *PassengerService {
	return NewPassengerService(store.New[*domain.Passenger]("passenger", 5001, limit, nil))
}

func sampleInput() PassengerInput {
	return PassengerInput{
		Name:        "Rahul Sharma",
		Age:         22,
		Gender:      "M",
		Phone:       "9876543210",
		Email:       "rahul@email.com",
		Passport:    "A1234567",
		Nationality: "Indian",
	}
}

func TestRegister(t *testing.T) {
	svc := newService(0)
	ctx := context.Background()

	p, err := svc.Register(ctx, sampleInput())
	require.NoError(t, err)

	assert.Equal(t, int64(5001), p.RecordID())
	assert.True(t, p.IsActive())
	assert.Equal(t, "Rahul Sharma", p.Name)
	assert.Equal(t, "A1234567", p.Passport)
}

func TestRegister_DuplicatePassportIsAllowed(t *testing.T) {
	svc := newService(0)
	ctx := context.Background()

	first, err := svc.Register(ctx, sampleInput())
	require.NoError(t, err)
	second, err := svc.Register(ctx, sampleInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.RecordID(), second.RecordID())
	assert.Len(t, svc.List(ctx), 2)
}

func TestRegister_DirectoryFull(t *testing.T) {
	svc := newService(1)
	ctx := context.Background()

	_, err := svc.Register(ctx, sampleInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, sampleInput())
	assert.ErrorIs(t, err, apperrors.ErrStoreFull)
}

func TestGetByID(t *testing.T) {
	svc := newService(0)
	ctx := context.Background()

	p, err := svc.Register(ctx, sampleInput())
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, p.RecordID())
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = svc.GetByID(ctx, 4242)
	assert.ErrorIs(t, err, apperrors.ErrPassengerNotFound)
}
