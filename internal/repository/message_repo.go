package repository

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

// MessageRepository is the message store. Single-document reads and
// writes only — no locking, no transactions; concurrent mark-read and
// delete on the same id race freely.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

type messageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	Body      string    `gorm:"column:body;not null"`
	Read      bool      `gorm:"column:read;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (messageModel) TableName() string { return "messages" }

func toDomainMessage(m messageModel) *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

func toMessageModel(msg *domain.ContactMessage) messageModel {
	return messageModel{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Body:      msg.Body,
		Read:      msg.Read,
		CreatedAt: msg.CreatedAt,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	m := toMessageModel(msg)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*msg = *toDomainMessage(m)
	return nil
}

// List returns every message, newest first. No pagination by design.
func (r *MessageRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var models []messageModel
	tx := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	messages := make([]domain.ContactMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, *toDomainMessage(m))
	}
	return messages, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var m messageModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainMessage(m), nil
}

// MarkRead flips read to true and returns the updated record.
// Marking an already-read message succeeds and reports the same state.
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	tx := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("id = ?", id).
		Update("read", true)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the record permanently. No soft delete, no recovery.
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&messageModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&messageModel{}).Count(&n)
	return n, tx.Error
}

func (r *MessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&messageModel{}).Where("read = ?", false).Count(&n)
	return n, tx.Error
}

// CountCreatedBetween counts messages with from <= created_at < to.
func (r *MessageRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n)
	return n, tx.Error
}

func (r *MessageRepository) CountDistinctSenders(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).
		Model(&messageModel{}).
		Distinct("email").
		Count(&n)
	return n, tx.Error
}
