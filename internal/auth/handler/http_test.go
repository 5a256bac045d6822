package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jendo/backend/internal/auth"
	"jendo/backend/internal/otp"
	otpdomain "jendo/backend/internal/otp/domain"
	otprepo "jendo/backend/internal/otp/repository"
	"jendo/backend/internal/security"
	userdomain "jendo/backend/internal/user/domain"
	userrepo "jendo/backend/internal/user/repository"
)

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	m      map[int64]*userdomain.User
}

func (r *memUserRepo) Create(ctx context.Context, u *userdomain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.m {
		if e.Email == u.Email {
			return 0, userrepo.ErrDuplicateEmail
		}
	}
	r.nextID++
	u2 := *u
	u2.ID = r.nextID
	r.m[r.nextID] = &u2
	return r.nextID, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.m[id], nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.m {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(ctx context.Context, u *userdomain.User) error { return nil }
func (r *memUserRepo) Delete(ctx context.Context, id int64) error           { return nil }

type memChallengeRepo struct {
	mu sync.Mutex
	m  map[string]*otpdomain.Challenge
}

func (r *memChallengeRepo) Replace(ctx context.Context, c *otpdomain.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c2 := *c
	r.m[c.Email] = &c2
	return nil
}

func (r *memChallengeRepo) Consume(ctx context.Context, email, code string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.m[email]
	if !ok || c.Code != code || !c.ExpiresAt.After(now) {
		return false, nil
	}
	delete(r.m, email)
	return true, nil
}

var _ otprepo.Repository = (*memChallengeRepo)(nil)

type recordingDeliverer struct {
	mu   sync.Mutex
	last string
}

func (d *recordingDeliverer) SendPasscode(ctx context.Context, email, code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = code
	return nil
}

func newTestMux(t *testing.T) (*http.ServeMux, *recordingDeliverer) {
	t.Helper()
	users := &memUserRepo{m: make(map[int64]*userdomain.User)}
	challenges := &memChallengeRepo{m: make(map[string]*otpdomain.Challenge)}
	del := &recordingDeliverer{}
	passcodes := otp.NewService(challenges, del, 10*time.Minute, zerolog.Nop())
	hasher := security.NewHasher(bcrypt.MinCost)
	tokens := security.NewTokenProvider([]byte("test-secret-test-secret-test-secret"), "jendo-auth", "jendo-api", time.Hour)
	svc := auth.NewService(users, passcodes, hasher, tokens)

	mux := http.NewServeMux()
	New(svc, zerolog.Nop()).Register(mux)
	return mux, del
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var out map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestSendAndVerifyOTP(t *testing.T) {
	mux, del := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/auth/send-otp", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "OTP sent", body["message"])
	require.Len(t, del.last, 6)

	rec, body = doJSON(t, mux, http.MethodPost, "/api/auth/verify-otp",
		`{"email":"a@x.com","otp":"`+del.last+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	// Replay with the consumed code fails.
	rec, body = doJSON(t, mux, http.MethodPost, "/api/auth/verify-otp",
		`{"email":"a@x.com","otp":"`+del.last+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid or expired OTP", body["message"])
}

func TestVerifyOTP_WithoutChallenge(t *testing.T) {
	mux, _ := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/auth/verify-otp", `{"email":"a@x.com","otp":"123456"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired OTP", body["message"])
}

func TestSignupThenLogin(t *testing.T) {
	mux, _ := newTestMux(t)

	rec, body := doJSON(t, mux, http.MethodPost, "/api/auth/signup",
		`{"email":"b@x.com","password":"pw","fullName":"B","dateOfBirth":"1990-04-01"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["token"])
	assert.EqualValues(t, 1, body["userId"])

	// Duplicate signup conflicts.
	rec, _ = doJSON(t, mux, http.MethodPost, "/api/auth/signup", `{"email":"b@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, body = doJSON(t, mux, http.MethodPost, "/api/auth/login", `{"email":"b@x.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["token"])

	rec, body = doJSON(t, mux, http.MethodPost, "/api/auth/login", `{"email":"b@x.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestSignup_BadDateOfBirth(t *testing.T) {
	mux, _ := newTestMux(t)

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/auth/signup",
		`{"email":"c@x.com","password":"pw","dateOfBirth":"01/04/1990"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
