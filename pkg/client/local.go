package client

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/localstore"
	"portfolio/internal/repository"
)

// LocalBackend mirrors the inbox operations against an on-device bbolt
// file. It exists for deployments without a reachable server: a
// degraded-availability mode behind the same Backend interface, never
// mixed with server state.
type LocalBackend struct {
	store *localstore.Store
	auth  *localstore.Auth
}

func NewLocalBackend(store *localstore.Store) *LocalBackend {
	return &LocalBackend{
		store: store,
		auth:  localstore.NewAuth(store),
	}
}

func (b *LocalBackend) Login(_ context.Context, username, password string) (string, error) {
	token, err := b.auth.Login(username, password)
	if err != nil {
		return "", ErrUnauthorized
	}
	return token, nil
}

func (b *LocalBackend) verify(token string) error {
	if _, err := b.auth.ValidateToken(token); err != nil {
		return ErrUnauthorized
	}
	return nil
}

func (b *LocalBackend) ListMessages(ctx context.Context, token string) ([]domain.ContactMessage, error) {
	if err := b.verify(token); err != nil {
		return nil, err
	}
	return b.store.List(ctx)
}

func (b *LocalBackend) MarkRead(ctx context.Context, token string, id int64) (*domain.ContactMessage, error) {
	if err := b.verify(token); err != nil {
		return nil, err
	}
	msg, err := b.store.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}

func (b *LocalBackend) DeleteMessage(ctx context.Context, token string, id int64) error {
	if err := b.verify(token); err != nil {
		return err
	}
	if err := b.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (b *LocalBackend) Stats(ctx context.Context, token string) (*domain.MessageStats, error) {
	if err := b.verify(token); err != nil {
		return nil, err
	}

	total, err := b.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := b.store.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := b.store.CountCreatedBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	unique, err := b.store.CountDistinctSenders(ctx)
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
