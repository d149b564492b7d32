package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/dhruvagarwal24w21/Airport-management-system-by-DA-demo/pkg/apperrors"
)

// Token is an opaque admin capability handed out by Login and required by
// admin-only operations. Passing it explicitly keeps the privilege scoped
// to the caller instead of a process-wide logged-in flag.
type Token string

// Verifier is the slice of Service the catalog services depend on.
type Verifier interface {
	Verify(token Token) error
}

// Service checks the static admin credential pair and tracks issued
// session tokens. This is an operator convenience, not a security system.
type Service struct {
	username string
	password string
	sessions map[Token]struct{}
}

func NewService(username, password string) *Service {
	return &Service{
		username: username,
		password: password,
		sessions: make(map[Token]struct{}),
	}
}

func (s *Service) Login(username, password string) (Token, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", apperrors.ErrInvalidCredentials
	}
	token := Token(uuid.NewString())
	s.sessions[token] = struct{}{}
	return token, nil
}

func (s *Service) Verify(token Token) error {
	if _, ok := s.sessions[token]; !ok {
		return fmt.Errorf("unknown session token: %w", apperrors.ErrNotAuthorized)
	}
	return nil
}

// Revoke invalidates a session token on logout. Revoking an unknown token
// is a no-op.
func (s *Service) Revoke(token Token) {
	delete(s.sessions, token)
}

var _ Verifier = (*Service)(nil)
