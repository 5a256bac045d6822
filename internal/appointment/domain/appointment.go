package domain

import (
	"errors"
	"time"
)

// Appointment links a user to a doctor at a point in time.
type Appointment struct {
	ID          int64
	UserID      int64
	DoctorID    int64
	ScheduledAt time.Time
	Status      Status
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Validate validates the appointment for persistence.
func (a *Appointment) Validate() error {
	if a.UserID == 0 {
		return errors.New("user id is required")
	}
	if a.DoctorID == 0 {
		return errors.New("doctor id is required")
	}
	if a.ScheduledAt.IsZero() {
		return errors.New("scheduled time is required")
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
