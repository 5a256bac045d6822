// Package handler exposes user profile CRUD over REST.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/httpx"
	"jendo/backend/internal/user/domain"
	"jendo/backend/internal/user/repository"
)

type Handler struct {
	repo repository.Repository
	log  zerolog.Logger
}

// New returns the user HTTP handler.
func New(repo repository.Repository, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the user routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users/{id}", h.get)
	mux.HandleFunc("PUT /api/users/{id}", h.update)
	mux.HandleFunc("DELETE /api/users/{id}", h.delete)
}

type userResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender"`
	Role        string `json:"role"`
}

func toResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Gender:   u.Gender,
		Role:     string(u.Role),
	}
	if u.DateOfBirth != nil {
		resp.DateOfBirth = u.DateOfBirth.Format("2006-01-02")
	}
	return resp
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	u, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", id).Msg("get user failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if u == nil {
		httpx.Error(w, http.StatusNotFound, "user not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(u))
}

type updateUserRequest struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req updateUserRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", id).Msg("get user failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if u == nil {
		httpx.Error(w, http.StatusNotFound, "user not found")
		return
	}
	u.FullName = req.FullName
	u.Phone = req.Phone
	u.Gender = req.Gender
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
			return
		}
		u.DateOfBirth = &dob
	}
	u.UpdatedAt = time.Now().UTC()
	if err := h.repo.Update(r.Context(), u); err != nil {
		h.log.Error().Err(err).Int64("user_id", id).Msg("update user failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(u))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("user_id", id).Msg("delete user failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
