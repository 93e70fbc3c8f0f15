package admin

import (
	"context"
	"time"

	"portfolio/internal/domain"
)

// MessageRepositoryInterface is the full message-store surface the
// admin API needs. Implemented by the SQL repository and by the local
// bbolt mirror.
type MessageRepositoryInterface interface {
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountDistinctSenders(ctx context.Context) (int64, error)
}
