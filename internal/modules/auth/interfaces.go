package auth

import (
	"context"

	"portfolio/internal/domain"
)

// AdminRepositoryInterface — only the lookup the auth service needs.
type AdminRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminPrincipal, error)
}

type tokenIssuer interface {
	GenerateToken(adminID int64, username string) (string, error)
}
