package domain

import "time"

// Doctor is a consultable doctor profile.
type Doctor struct {
	ID              int64
	FullName        string
	Specialization  string
	Hospital        string
	Email           string
	Phone           string
	ConsultationFee float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
