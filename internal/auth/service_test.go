package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jendo/backend/internal/otp"
	"jendo/backend/internal/security"
	userdomain "jendo/backend/internal/user/domain"
	userrepo "jendo/backend/internal/user/repository"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*userdomain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, byID: make(map[int64]*userdomain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *userdomain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return 0, userrepo.ErrDuplicateEmail
		}
	}
	id := r.nextID
	r.nextID++
	u2 := *u
	u2.ID = id
	r.byID[id] = &u2
	return id, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(ctx context.Context, u *userdomain.User) error { return nil }

func (r *memUserRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

type fakePasscodeFlow struct {
	requested []string
	verifyErr error
}

func (f *fakePasscodeFlow) Request(ctx context.Context, email string) error {
	f.requested = append(f.requested, email)
	return nil
}

func (f *fakePasscodeFlow) Verify(ctx context.Context, email, code string) error {
	return f.verifyErr
}

func newTestService(users userrepo.Repository, flow PasscodeFlow) *Service {
	hasher := security.NewHasher(bcrypt.MinCost)
	tokens := security.NewTokenProvider([]byte("test-secret-test-secret-test-secret"), "jendo-auth", "jendo-api", time.Hour)
	return NewService(users, flow, hasher, tokens)
}

func TestService_SignupIssuesSession(t *testing.T) {
	users := newMemUserRepo()
	s := newTestService(users, &fakePasscodeFlow{})

	res, err := s.Register(context.Background(), Signup{Email: "B@X.com", Password: "pw", FullName: "B"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Token == "" || res.UserID == 0 {
		t.Fatalf("Register result = %+v, want token and user id", res)
	}
	u, _ := users.GetByEmail(context.Background(), "b@x.com")
	if u == nil {
		t.Fatal("user should be created with normalized email")
	}
	if u.PasswordHash == "pw" {
		t.Error("password must be stored hashed")
	}
}

func TestService_SignupDuplicateEmailConflicts(t *testing.T) {
	users := newMemUserRepo()
	s := newTestService(users, &fakePasscodeFlow{})
	ctx := context.Background()

	if _, err := s.Register(ctx, Signup{Email: "b@x.com", Password: "pw"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := s.Register(ctx, Signup{Email: "b@x.com", Password: "pw2"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("second Register = %v, want ErrEmailAlreadyRegistered", err)
	}
	if len(users.byID) != 1 {
		t.Errorf("users = %d, want 1", len(users.byID))
	}
}

func TestService_LoginSuccess(t *testing.T) {
	users := newMemUserRepo()
	s := newTestService(users, &fakePasscodeFlow{})
	ctx := context.Background()

	reg, err := s.Register(ctx, Signup{Email: "a@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	res, err := s.Login(ctx, "a@x.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.UserID != reg.UserID {
		t.Errorf("UserID = %d, want %d", res.UserID, reg.UserID)
	}
}

func TestService_LoginFailuresAreUniform(t *testing.T) {
	users := newMemUserRepo()
	s := newTestService(users, &fakePasscodeFlow{})
	ctx := context.Background()

	if _, err := s.Register(ctx, Signup{Email: "a@x.com", Password: "secret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := s.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Login(ctx, "unknown@x.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email = %v, want ErrInvalidCredentials", err)
	}
	if len(users.byID) != 1 {
		t.Errorf("failed logins must not touch the user store; users = %d", len(users.byID))
	}
}

func TestService_SendOTPValidatesEmail(t *testing.T) {
	flow := &fakePasscodeFlow{}
	s := newTestService(newMemUserRepo(), flow)
	ctx := context.Background()

	if err := s.SendOTP(ctx, "not-an-email"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SendOTP invalid email = %v, want ErrInvalidInput", err)
	}
	if err := s.SendOTP(ctx, " A@X.com "); err != nil {
		t.Fatalf("SendOTP: %v", err)
	}
	if len(flow.requested) != 1 || flow.requested[0] != "a@x.com" {
		t.Errorf("requested = %v, want one normalized email", flow.requested)
	}
}

func TestService_VerifyOTPPassesThroughUniformError(t *testing.T) {
	flow := &fakePasscodeFlow{verifyErr: otp.ErrInvalidOrExpired}
	s := newTestService(newMemUserRepo(), flow)

	if err := s.VerifyOTP(context.Background(), "a@x.com", "123456"); !errors.Is(err, otp.ErrInvalidOrExpired) {
		t.Errorf("VerifyOTP = %v, want ErrInvalidOrExpired", err)
	}
}
