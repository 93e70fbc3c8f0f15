package contact

import (
	"context"

	"portfolio/internal/domain"
)

// MessageWriter — the only store access the public submit path needs.
type MessageWriter interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}
