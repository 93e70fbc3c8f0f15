package auth

import (
	"context"
	"errors"

	"portfolio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Service verifies credentials against the credential store and issues
// signed bearer tokens. No lockout, no attempt counters, no rate
// limiting — a known gap carried over from the original design.
type Service struct {
	admins AdminRepositoryInterface
	jwt    tokenIssuer
}

func NewService(admins AdminRepositoryInterface, jwt tokenIssuer) *Service {
	return &Service{
		admins: admins,
		jwt:    jwt,
	}
}

// Login looks the principal up by exact username and compares the
// password against the stored bcrypt hash. Unknown user and wrong
// password fail identically.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	admin, err := s.admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(admin.ID, admin.Username)
}
