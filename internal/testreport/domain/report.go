package domain

import "time"

// Report summarises a vascular screening test taken by a user.
type Report struct {
	ID        int64
	UserID    int64
	TakenAt   time.Time
	Summary   string
	RiskLevel string
	CreatedAt time.Time
}
