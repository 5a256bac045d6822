package domain

import "time"

// Material is an educational resource shown to patients.
type Material struct {
	ID         int64
	Title      string
	Category   string
	ContentURL string
	Summary    string
	CreatedAt  time.Time
}
