package domain

import "time"

// AdminPrincipal is the single administrative identity authorized to
// manage contact messages. It is provisioned out of band by
// cmd/setup-admin and is never created, updated or deleted through the
// HTTP surface.
type AdminPrincipal struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
