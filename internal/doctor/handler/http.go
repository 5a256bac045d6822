// Package handler exposes doctor CRUD over REST.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/doctor/domain"
	"jendo/backend/internal/doctor/repository"
	"jendo/backend/internal/httpx"
)

type Handler struct {
	repo repository.Repository
	log  zerolog.Logger
}

// New returns the doctor HTTP handler.
func New(repo repository.Repository, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the doctor routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/doctors", h.create)
	mux.HandleFunc("GET /api/doctors", h.list)
	mux.HandleFunc("GET /api/doctors/{id}", h.get)
	mux.HandleFunc("PUT /api/doctors/{id}", h.update)
	mux.HandleFunc("DELETE /api/doctors/{id}", h.delete)
}

type doctorRequest struct {
	FullName        string  `json:"fullName"`
	Specialization  string  `json:"specialization"`
	Hospital        string  `json:"hospital"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ConsultationFee float64 `json:"consultationFee"`
}

type doctorResponse struct {
	ID              int64   `json:"id"`
	FullName        string  `json:"fullName"`
	Specialization  string  `json:"specialization"`
	Hospital        string  `json:"hospital"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ConsultationFee float64 `json:"consultationFee"`
}

func toResponse(d *domain.Doctor) doctorResponse {
	return doctorResponse{
		ID:              d.ID,
		FullName:        d.FullName,
		Specialization:  d.Specialization,
		Hospital:        d.Hospital,
		Email:           d.Email,
		Phone:           d.Phone,
		ConsultationFee: d.ConsultationFee,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req doctorRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FullName == "" {
		httpx.Error(w, http.StatusBadRequest, "fullName is required")
		return
	}
	now := time.Now().UTC()
	d := &domain.Doctor{
		FullName:        req.FullName,
		Specialization:  req.Specialization,
		Hospital:        req.Hospital,
		Email:           req.Email,
		Phone:           req.Phone,
		ConsultationFee: req.ConsultationFee,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	id, err := h.repo.Create(r.Context(), d)
	if err != nil {
		h.log.Error().Err(err).Msg("create doctor failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	d.ID = id
	httpx.WriteJSON(w, http.StatusCreated, toResponse(d))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list doctors failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]doctorResponse, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, toResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid doctor id")
		return
	}
	d, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("doctor_id", id).Msg("get doctor failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if d == nil {
		httpx.Error(w, http.StatusNotFound, "doctor not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(d))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid doctor id")
		return
	}
	var req doctorRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("doctor_id", id).Msg("get doctor failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if d == nil {
		httpx.Error(w, http.StatusNotFound, "doctor not found")
		return
	}
	d.FullName = req.FullName
	d.Specialization = req.Specialization
	d.Hospital = req.Hospital
	d.Email = req.Email
	d.Phone = req.Phone
	d.ConsultationFee = req.ConsultationFee
	d.UpdatedAt = time.Now().UTC()
	if err := h.repo.Update(r.Context(), d); err != nil {
		h.log.Error().Err(err).Int64("doctor_id", id).Msg("update doctor failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(d))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid doctor id")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("doctor_id", id).Msg("delete doctor failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
