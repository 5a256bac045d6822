// Package handler exposes learning materials over REST.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/httpx"
	"jendo/backend/internal/learning/domain"
	"jendo/backend/internal/learning/repository"
)

type Handler struct {
	repo repository.Repository
	log  zerolog.Logger
}

// New returns the learning material HTTP handler.
func New(repo repository.Repository, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the learning material routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/learning-materials", h.create)
	mux.HandleFunc("GET /api/learning-materials", h.list)
	mux.HandleFunc("GET /api/learning-materials/{id}", h.get)
	mux.HandleFunc("PUT /api/learning-materials/{id}", h.update)
	mux.HandleFunc("DELETE /api/learning-materials/{id}", h.delete)
}

type materialRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	ContentURL string `json:"contentUrl"`
	Summary    string `json:"summary"`
}

type materialResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	ContentURL string `json:"contentUrl"`
	Summary    string `json:"summary"`
}

func toResponse(m *domain.Material) materialResponse {
	return materialResponse{
		ID:         m.ID,
		Title:      m.Title,
		Category:   m.Category,
		ContentURL: m.ContentURL,
		Summary:    m.Summary,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req materialRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		httpx.Error(w, http.StatusBadRequest, "title is required")
		return
	}
	m := &domain.Material{
		Title:      req.Title,
		Category:   req.Category,
		ContentURL: req.ContentURL,
		Summary:    req.Summary,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := h.repo.Create(r.Context(), m)
	if err != nil {
		h.log.Error().Err(err).Msg("create learning material failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	m.ID = id
	httpx.WriteJSON(w, http.StatusCreated, toResponse(m))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	materials, err := h.repo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list learning materials failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]materialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid material id")
		return
	}
	m, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("material_id", id).Msg("get learning material failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if m == nil {
		httpx.Error(w, http.StatusNotFound, "learning material not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(m))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid material id")
		return
	}
	var req materialRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("material_id", id).Msg("get learning material failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if m == nil {
		httpx.Error(w, http.StatusNotFound, "learning material not found")
		return
	}
	if req.Title != "" {
		m.Title = req.Title
	}
	m.Category = req.Category
	m.ContentURL = req.ContentURL
	m.Summary = req.Summary
	if err := h.repo.Update(r.Context(), m); err != nil {
		h.log.Error().Err(err).Int64("material_id", id).Msg("update learning material failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(m))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid material id")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("material_id", id).Msg("delete learning material failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
