// Package handler exposes health parameter readings over REST.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/healthparam/domain"
	"jendo/backend/internal/healthparam/repository"
	"jendo/backend/internal/httpx"
)

type Handler struct {
	repo repository.Repository
	log  zerolog.Logger
}

// New returns the health parameter HTTP handler.
func New(repo repository.Repository, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the health parameter routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/health-parameters", h.create)
	mux.HandleFunc("GET /api/health-parameters/{id}", h.get)
	mux.HandleFunc("GET /api/users/{userId}/health-parameters", h.listByUser)
	mux.HandleFunc("DELETE /api/health-parameters/{id}", h.delete)
}

type parameterRequest struct {
	UserID     int64  `json:"userId"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	Unit       string `json:"unit"`
	RecordedAt string `json:"recordedAt"`
}

type parameterResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	Unit       string `json:"unit"`
	RecordedAt string `json:"recordedAt"`
}

func toResponse(p *domain.Parameter) parameterResponse {
	return parameterResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Name:       p.Name,
		Value:      p.Value,
		Unit:       p.Unit,
		RecordedAt: p.RecordedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req parameterRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.Name == "" || req.Value == "" {
		httpx.Error(w, http.StatusBadRequest, "userId, name, and value are required")
		return
	}
	recordedAt := time.Now().UTC()
	if req.RecordedAt != "" {
		var err error
		recordedAt, err = time.Parse(time.RFC3339, req.RecordedAt)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "recordedAt must be RFC 3339")
			return
		}
	}
	p := &domain.Parameter{
		UserID:     req.UserID,
		Name:       req.Name,
		Value:      req.Value,
		Unit:       req.Unit,
		RecordedAt: recordedAt,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := h.repo.Create(r.Context(), p)
	if err != nil {
		h.log.Error().Err(err).Msg("create health parameter failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	p.ID = id
	httpx.WriteJSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid parameter id")
		return
	}
	p, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("parameter_id", id).Msg("get health parameter failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if p == nil {
		httpx.Error(w, http.StatusNotFound, "health parameter not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	params, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("list health parameters failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]parameterResponse, 0, len(params))
	for _, p := range params {
		out = append(out, toResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid parameter id")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("parameter_id", id).Msg("delete health parameter failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
