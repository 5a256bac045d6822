// Package server wires the HTTP handlers, middleware, and lifecycle of the
// API server.
package server

import (
	"database/sql"
	"net/http"

	"github.com/rs/zerolog"

	appointmenthandler "jendo/backend/internal/appointment/handler"
	appointmentrepo "jendo/backend/internal/appointment/repository"
	"jendo/backend/internal/auth"
	authhandler "jendo/backend/internal/auth/handler"
	doctorhandler "jendo/backend/internal/doctor/handler"
	doctorrepo "jendo/backend/internal/doctor/repository"
	healthparamhandler "jendo/backend/internal/healthparam/handler"
	healthparamrepo "jendo/backend/internal/healthparam/repository"
	"jendo/backend/internal/httpx"
	learninghandler "jendo/backend/internal/learning/handler"
	learningrepo "jendo/backend/internal/learning/repository"
	notificationhandler "jendo/backend/internal/notification/handler"
	"jendo/backend/internal/notification/producer"
	notificationrepo "jendo/backend/internal/notification/repository"
	"jendo/backend/internal/otp"
	"jendo/backend/internal/security"
	testreporthandler "jendo/backend/internal/testreport/handler"
	testreportrepo "jendo/backend/internal/testreport/repository"
	userhandler "jendo/backend/internal/user/handler"
	userrepo "jendo/backend/internal/user/repository"
)

// Deps carries everything the router needs.
type Deps struct {
	DB       *sql.DB
	Log      zerolog.Logger
	Hasher   *security.Hasher
	Tokens   *security.TokenProvider
	Passcode *otp.Service
	Producer producer.Producer
}

// NewRouter builds the full route table and middleware stack.
func NewRouter(d Deps) http.Handler {
	users := userrepo.NewPostgresRepository(d.DB)
	authSvc := auth.NewService(users, d.Passcode, d.Hasher, d.Tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := d.DB.PingContext(r.Context()); err != nil {
			httpx.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	authhandler.New(authSvc, d.Log).Register(mux)
	userhandler.New(users, d.Log).Register(mux)
	doctorhandler.New(doctorrepo.NewPostgresRepository(d.DB), d.Log).Register(mux)
	appointmenthandler.New(appointmentrepo.NewPostgresRepository(d.DB), d.Log).Register(mux)
	healthparamhandler.New(healthparamrepo.NewPostgresRepository(d.DB), d.Log).Register(mux)
	testreporthandler.New(testreportrepo.NewPostgresRepository(d.DB), d.Log).Register(mux)
	notificationhandler.New(notificationrepo.NewPostgresRepository(d.DB), d.Producer, d.Log).Register(mux)
	learninghandler.New(learningrepo.NewPostgresRepository(d.DB), d.Log).Register(mux)

	return Chain(mux,
		Trace,
		RequestLogger(d.Log),
		CORS,
		Authenticate(d.Tokens),
	)
}
