package otp

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/otp/domain"
	"jendo/backend/internal/otp/repository"
)

// ErrInvalidOrExpired is the uniform verification failure. Missing,
// mismatched, and expired challenges are deliberately indistinguishable to
// the caller.
var ErrInvalidOrExpired = errors.New("invalid or expired passcode")

// Deliverer sends a passcode to a destination address out-of-band.
type Deliverer interface {
	SendPasscode(ctx context.Context, email, code string) error
}

// Service issues and verifies OTP challenges.
type Service struct {
	repo      repository.Repository
	deliverer Deliverer
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewService returns an OTP service. ttl <= 0 falls back to the default
// challenge TTL.
func NewService(repo repository.Repository, deliverer Deliverer, ttl time.Duration, log zerolog.Logger) *Service {
	if ttl <= 0 {
		ttl = repository.DefaultChallengeTTL
	}
	return &Service{
		repo:      repo,
		deliverer: deliverer,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
	}
}

// Request generates a fresh passcode for email, replaces any outstanding
// challenge in one atomic store operation, and hands the code to the
// delivery channel. Delivery is best-effort: a channel failure is logged and
// the request still succeeds.
func (s *Service) Request(ctx context.Context, email string) error {
	code, err := GeneratePasscode()
	if err != nil {
		return err
	}
	now := s.now().UTC()
	c := &domain.Challenge{
		Email:     email,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Replace(ctx, c); err != nil {
		return err
	}
	if err := s.deliverer.SendPasscode(ctx, email, code); err != nil {
		// Do not log the code itself.
		s.log.Warn().Err(err).Str("email", email).Msg("otp delivery failed")
	}
	return nil
}

// Verify consumes the challenge for email if code matches exactly and the
// challenge has not expired. Consumption is single-use: a second Verify with
// the same code fails. All failure modes return ErrInvalidOrExpired.
func (s *Service) Verify(ctx context.Context, email, code string) error {
	ok, err := s.repo.Consume(ctx, email, code, s.now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOrExpired
	}
	return nil
}
