package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/security"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	var seen string
	h := RequestLogger(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))

	if seen == "" {
		t.Fatal("expected request id in context")
	}
	if got := rr.Header().Get("X-Request-Id"); got != seen {
		t.Fatalf("header request id %q != context request id %q", got, seen)
	}
}

func TestAuthenticateAllowsPublicPaths(t *testing.T) {
	tokens := security.NewTokenProvider([]byte("0123456789abcdef0123456789abcdef"), "jendo-auth", "jendo-api", time.Hour)
	h := Authenticate(tokens)(okHandler())

	for _, path := range []string{"/healthz", "/api/auth/login", "/api/auth/send-otp"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: got %d, want 200", path, rr.Code)
		}
	}
}

func TestAuthenticateRejectsMissingAndBadTokens(t *testing.T) {
	tokens := security.NewTokenProvider([]byte("0123456789abcdef0123456789abcdef"), "jendo-auth", "jendo-api", time.Hour)
	h := Authenticate(tokens)(okHandler())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d, want 401", rr.Code)
	}
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	tokens := security.NewTokenProvider([]byte("0123456789abcdef0123456789abcdef"), "jendo-auth", "jendo-api", time.Hour)
	token, _, err := tokens.IssueSession("pat@example.com", 7)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	var email string
	var userID int64
	h := Authenticate(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, userID, _ = SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rr.Code)
	}
	if email != "pat@example.com" || userID != 7 {
		t.Fatalf("session = (%q, %d), want (pat@example.com, 7)", email, userID)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(okHandler())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/doctors", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got %d, want 204", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS origin header")
	}
}
