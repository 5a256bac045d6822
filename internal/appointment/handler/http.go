// Package handler exposes appointment CRUD over REST.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/appointment/domain"
	"jendo/backend/internal/appointment/repository"
	"jendo/backend/internal/httpx"
)

type Handler struct {
	repo repository.Repository
	log  zerolog.Logger
}

// New returns the appointment HTTP handler.
func New(repo repository.Repository, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the appointment routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/appointments", h.create)
	mux.HandleFunc("GET /api/appointments/{id}", h.get)
	mux.HandleFunc("GET /api/users/{userId}/appointments", h.listByUser)
	mux.HandleFunc("PUT /api/appointments/{id}", h.update)
	mux.HandleFunc("DELETE /api/appointments/{id}", h.delete)
}

type appointmentRequest struct {
	UserID      int64  `json:"userId"`
	DoctorID    int64  `json:"doctorId"`
	ScheduledAt string `json:"scheduledAt"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type appointmentResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	DoctorID    int64  `json:"doctorId"`
	ScheduledAt string `json:"scheduledAt"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func toResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		DoctorID:    a.DoctorID,
		ScheduledAt: a.ScheduledAt.UTC().Format(time.RFC3339),
		Status:      string(a.Status),
		Notes:       a.Notes,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "scheduledAt must be RFC 3339")
		return
	}
	now := time.Now().UTC()
	a := &domain.Appointment{
		UserID:      req.UserID,
		DoctorID:    req.DoctorID,
		ScheduledAt: scheduledAt,
		Status:      domain.Status(req.Status),
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.Validate(); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.repo.Create(r.Context(), a)
	if err != nil {
		h.log.Error().Err(err).Msg("create appointment failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	a.ID = id
	httpx.WriteJSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid appointment id")
		return
	}
	a, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("appointment_id", id).Msg("get appointment failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if a == nil {
		httpx.Error(w, http.StatusNotFound, "appointment not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	appointments, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("list appointments failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]appointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, toResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid appointment id")
		return
	}
	var req appointmentRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("appointment_id", id).Msg("get appointment failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if a == nil {
		httpx.Error(w, http.StatusNotFound, "appointment not found")
		return
	}
	if req.ScheduledAt != "" {
		scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "scheduledAt must be RFC 3339")
			return
		}
		a.ScheduledAt = scheduledAt
	}
	if req.DoctorID != 0 {
		a.DoctorID = req.DoctorID
	}
	if req.Status != "" {
		a.Status = domain.Status(req.Status)
	}
	a.Notes = req.Notes
	a.UpdatedAt = time.Now().UTC()
	if err := h.repo.Update(r.Context(), a); err != nil {
		h.log.Error().Err(err).Int64("appointment_id", id).Msg("update appointment failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid appointment id")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("appointment_id", id).Msg("delete appointment failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
