package repository

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

// AdminRepository is the credential store: exactly one principal is
// expected, uniqueness enforced on username.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

type adminModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (adminModel) TableName() string { return "admins" }

func toDomainAdmin(m adminModel) *domain.AdminPrincipal {
	return &domain.AdminPrincipal{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.AdminPrincipal) error {
	m := adminModel{
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAdmin(m)
	return nil
}

// GetByUsername does a case-sensitive exact match.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminPrincipal, error) {
	var m adminModel
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainAdmin(m), nil
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&adminModel{}).Count(&n)
	return n, tx.Error
}
