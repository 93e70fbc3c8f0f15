package admin

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/repository"
)

// Service implements the inbox operations. Everything goes straight to
// the message store — no caching, no batching.
type Service struct {
	messages MessageRepositoryInterface
}

func NewService(messages MessageRepositoryInterface) *Service {
	return &Service{messages: messages}
}

func (s *Service) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx)
}

// MarkRead is idempotent: marking an already-read message succeeds and
// reports the same state.
func (s *Service) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	msg, err := s.messages.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return msg, nil
}

func (s *Service) DeleteMessage(ctx context.Context, id int64) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}

// GetStats computes the dashboard counters at call time. The "today"
// window is the current calendar day in server-local time.
func (s *Service) GetStats(ctx context.Context) (*domain.MessageStats, error) {
	total, err := s.messages.Count(ctx)
	if err != nil {
		return nil, err
	}

	unread, err := s.messages.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.messages.CountCreatedBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	unique, err := s.messages.CountDistinctSenders(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.MessageStats{
		TotalMessages:  total,
		UnreadMessages: unread,
		TodayMessages:  today,
		UniqueContacts: unique,
	}, nil
}
