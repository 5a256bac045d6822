package domain

import "time"

// Notification is an in-app message delivered to a user.
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
