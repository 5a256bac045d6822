package domain

import "time"

// Challenge is an outstanding OTP challenge (stored in otp_challenges table).
// At most one challenge exists per email; issuing a new one replaces it.
type Challenge struct {
	Email     string
	Code      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
