// Package handler exposes the auth service over REST.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/auth"
	"jendo/backend/internal/httpx"
	"jendo/backend/internal/otp"
)

type Handler struct {
	svc *auth.Service
	log zerolog.Logger
}

// New returns the auth HTTP handler.
func New(svc *auth.Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the auth routes on mux. These routes are unauthenticated.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/send-otp", h.sendOTP)
	mux.HandleFunc("POST /api/auth/verify-otp", h.verifyOTP)
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.HandleFunc("POST /api/auth/signup", h.signup)
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

func (h *Handler) sendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "invalid request body"})
		return
	}
	if err := h.svc.SendOTP(r.Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrInvalidInput) {
			httpx.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "invalid email"})
			return
		}
		h.log.Error().Err(err).Msg("send-otp failed")
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "internal error"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "OTP sent"})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "invalid request body"})
		return
	}
	if err := h.svc.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		if errors.Is(err, otp.ErrInvalidOrExpired) {
			// One message for missing, mismatched, and expired alike.
			httpx.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid or expired OTP"})
			return
		}
		h.log.Error().Err(err).Msg("verify-otp failed")
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "internal error"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"token": res.Token, "userId": res.UserID})
}

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	signup := auth.Signup{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Gender:   req.Gender,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
			return
		}
		signup.DateOfBirth = &dob
	}
	res, err := h.svc.Register(r.Context(), signup)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailAlreadyRegistered):
			httpx.Error(w, http.StatusConflict, "email already registered")
		case errors.Is(err, auth.ErrInvalidInput):
			httpx.Error(w, http.StatusBadRequest, "invalid signup attributes")
		default:
			h.log.Error().Err(err).Msg("signup failed")
			httpx.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"token": res.Token, "userId": res.UserID})
}
