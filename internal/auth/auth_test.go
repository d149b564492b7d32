package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/apperrors"
)

func TestLogin(t *testing.T) {
	svc := NewService("admin", "airport123")

	token, err := svc.Login("admin", "airport123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, svc.Verify(token))
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc := NewService("admin", "airport123")

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login("root", "airport123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestVerify_UnknownToken(t *testing.T) {
	svc := NewService("admin", "airport123")

	err := svc.Verify(Token("bogus"))
	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestRevoke(t *testing.T) {
	svc := NewService("admin", "airport123")

	token, err := svc.Login("admin", "airport123")
	require.NoError(t, err)
	require.NoError(t, svc.Verify(token))

	svc.Revoke(token)
	assert.ErrorIs(t, svc.Verify(token), apperrors.ErrNotAuthorized)

	// Revoking again is a no-op.
	svc.Revoke(token)
}

func TestLogin_TokensAreUniquePerSession(t *testing.T) {
	svc := NewService("admin", "airport123")

	t1, err := svc.Login("admin", "airport123")
	require.NoError(t, err)
	t2, err := svc.Login("admin", "airport123")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
	// Revoking one session leaves the other valid.
	svc.Revoke(t1)
	assert.NoError(t, svc.Verify(t2))
}
