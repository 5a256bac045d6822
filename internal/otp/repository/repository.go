package repository

import (
	"context"
	"time"

	"jendo/backend/internal/otp/domain"
)

// Repository defines persistence for OTP challenges. Both operations are
// atomic per email under the store's transactional guarantee; this is what
// keeps the at-most-one-challenge invariant across processes.
type Repository interface {
	// Replace stores the challenge, displacing any prior challenge for the
	// same email in a single upsert.
	Replace(ctx context.Context, c *domain.Challenge) error
	// Consume deletes the challenge matching email and code if it has not
	// expired at now, returning whether a row was consumed. An expired or
	// mismatched challenge is left in place.
	Consume(ctx context.Context, email, code string, now time.Time) (bool, error)
}

// DefaultChallengeTTL is the default OTP challenge expiry.
const DefaultChallengeTTL = 10 * time.Minute
