package domain

import "time"

// ContactMessage is a public contact-form submission. Read flips
// false→true through the admin API; CreatedAt is set once and never
// changes. There are no other mutations.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageStats are the inbox counters shown on the admin dashboard.
// They are computed at call time, never cached.
type MessageStats struct {
	TotalMessages  int64 `json:"totalMessages"`
	UnreadMessages int64 `json:"unreadMessages"`
	TodayMessages  int64 `json:"todayMessages"`
	UniqueContacts int64 `json:"uniqueContacts"`
}
