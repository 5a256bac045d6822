package domain

import "time"

// Parameter is a single health parameter reading for a user (e.g. blood
// pressure, resting heart rate).
type Parameter struct {
	ID         int64
	UserID     int64
	Name       string
	Value      string
	Unit       string
	RecordedAt time.Time
	CreatedAt  time.Time
}
