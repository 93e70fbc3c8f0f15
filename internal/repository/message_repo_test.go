package repository

import (
	"context"
	"testing"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *MessageRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&messageModel{}))

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return NewMessageRepository(db)
}

func seedMessage(t *testing.T, repo *MessageRepository, email string, createdAt time.Time) *domain.ContactMessage {
	t.Helper()

	msg := &domain.ContactMessage{
		Name:      "Sender",
		Email:     email,
		Body:      "Hello there",
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), msg))
	return msg
}

func TestMessageRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-3 * time.Hour)
	oldest := seedMessage(t, repo, "a@example.com", base)
	middle := seedMessage(t, repo, "b@example.com", base.Add(time.Hour))
	newest := seedMessage(t, repo, "c@example.com", base.Add(2*time.Hour))

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, newest.ID, messages[0].ID)
	assert.Equal(t, middle.ID, messages[1].ID)
	assert.Equal(t, oldest.ID, messages[2].ID)
	assert.False(t, messages[0].Read)
}

func TestMessageRepository_MarkReadIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	msg := seedMessage(t, repo, "a@example.com", time.Now())

	first, err := repo.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, first.Read)

	second, err := repo.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, second.Read)
}

func TestMessageRepository_MarkRead_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.MarkRead(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	msg := seedMessage(t, repo, "a@example.com", time.Now())

	require.NoError(t, repo.Delete(ctx, msg.ID))

	// second delete on the same id reports not found
	assert.ErrorIs(t, repo.Delete(ctx, msg.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999), ErrNotFound)
}

func TestMessageRepository_Counts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	// yesterday just before midnight, today at midnight, today later on
	seedMessage(t, repo, "a@example.com", dayStart.Add(-time.Second))
	atMidnight := seedMessage(t, repo, "b@example.com", dayStart)
	seedMessage(t, repo, "b@example.com", dayStart.Add(10*time.Hour))

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	today, err := repo.CountCreatedBetween(ctx, dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(2), today)

	senders, err := repo.CountDistinctSenders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), senders)

	_, err = repo.MarkRead(ctx, atMidnight.ID)
	require.NoError(t, err)

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)
}
