package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables backing the SQL
// repositories. Called on startup and by the admin setup tool.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&adminModel{}, &messageModel{})
}
