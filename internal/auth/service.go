// Package auth composes the OTP flow, credential verification, and session
// issuance behind the /api/auth surface.
package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"jendo/backend/internal/security"
	userdomain "jendo/backend/internal/user/domain"
	userrepo "jendo/backend/internal/user/repository"
)

// Sentinel errors for the auth service; the handler maps them to HTTP
// status/message pairs. Unknown email and wrong password share
// ErrInvalidCredentials so callers cannot enumerate identities.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
)

// PasscodeFlow is the OTP subsystem consumed by the orchestrator.
type PasscodeFlow interface {
	Request(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
}

// Result holds the outcome of a successful Login or Signup.
type Result struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

// Signup holds the attributes for creating an identity.
type Signup struct {
	Email       string
	Password    string
	FullName    string
	Phone       string
	DateOfBirth *time.Time
	Gender      string
}

// Service implements send-otp, verify-otp, password login, and signup.
type Service struct {
	users     userrepo.Repository
	passcodes PasscodeFlow
	hasher    *security.Hasher
	tokens    *security.TokenProvider
}

// NewService returns an auth service with the given dependencies.
func NewService(users userrepo.Repository, passcodes PasscodeFlow, hasher *security.Hasher, tokens *security.TokenProvider) *Service {
	return &Service{
		users:     users,
		passcodes: passcodes,
		hasher:    hasher,
		tokens:    tokens,
	}
}

// SendOTP issues a fresh passcode challenge for email and hands it to the
// delivery channel. Succeeds regardless of delivery outcome.
func (s *Service) SendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return ErrInvalidInput
	}
	return s.passcodes.Request(ctx, email)
}

// VerifyOTP consumes the outstanding challenge for email if code matches.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) error {
	return s.passcodes.Verify(ctx, normalizeEmail(email), code)
}

// Login verifies the password against the stored credential and issues a
// session token. Unknown email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user.Email, user.ID)
}

// Register creates the identity and immediately issues a session token.
// Returns ErrEmailAlreadyRegistered when the email is taken.
func (s *Service) Register(ctx context.Context, req Signup) (*Result, error) {
	email := normalizeEmail(req.Email)
	if err := validateEmail(email); err != nil {
		return nil, ErrInvalidInput
	}
	if req.Password == "" {
		return nil, ErrInvalidInput
	}
	hashed, err := s.hasher.Hash([]byte(req.Password))
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &userdomain.User{
		Email:        email,
		PasswordHash: hashed,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		Role:         userdomain.RolePatient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, ErrInvalidInput
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}
	return s.issue(email, id)
}

func (s *Service) issue(email string, userID int64) (*Result, error) {
	token, expiresAt, err := s.tokens.IssueSession(email, userID)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, UserID: userID, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if email == "" || !emailRe.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}
