// Package handler exposes test reports over REST.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"jendo/backend/internal/httpx"
	"jendo/backend/internal/testreport/domain"
	"jendo/backend/internal/testreport/repository"
)

type Handler struct {
	repo repository.Repository
	log  zerolog.Logger
}

// New returns the test report HTTP handler.
func New(repo repository.Repository, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the test report routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/test-reports", h.create)
	mux.HandleFunc("GET /api/test-reports/{id}", h.get)
	mux.HandleFunc("GET /api/users/{userId}/test-reports", h.listByUser)
	mux.HandleFunc("DELETE /api/test-reports/{id}", h.delete)
}

type reportRequest struct {
	UserID    int64  `json:"userId"`
	TakenAt   string `json:"takenAt"`
	Summary   string `json:"summary"`
	RiskLevel string `json:"riskLevel"`
}

type reportResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	TakenAt   string `json:"takenAt"`
	Summary   string `json:"summary"`
	RiskLevel string `json:"riskLevel"`
}

func toResponse(rep *domain.Report) reportResponse {
	return reportResponse{
		ID:        rep.ID,
		UserID:    rep.UserID,
		TakenAt:   rep.TakenAt.UTC().Format(time.RFC3339),
		Summary:   rep.Summary,
		RiskLevel: rep.RiskLevel,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		httpx.Error(w, http.StatusBadRequest, "userId is required")
		return
	}
	takenAt := time.Now().UTC()
	if req.TakenAt != "" {
		var err error
		takenAt, err = time.Parse(time.RFC3339, req.TakenAt)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "takenAt must be RFC 3339")
			return
		}
	}
	rep := &domain.Report{
		UserID:    req.UserID,
		TakenAt:   takenAt,
		Summary:   req.Summary,
		RiskLevel: req.RiskLevel,
		CreatedAt: time.Now().UTC(),
	}
	id, err := h.repo.Create(r.Context(), rep)
	if err != nil {
		h.log.Error().Err(err).Msg("create test report failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	rep.ID = id
	httpx.WriteJSON(w, http.StatusCreated, toResponse(rep))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid report id")
		return
	}
	rep, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("report_id", id).Msg("get test report failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rep == nil {
		httpx.Error(w, http.StatusNotFound, "test report not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(rep))
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	reports, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("list test reports failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]reportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, toResponse(rep))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid report id")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("report_id", id).Msg("delete test report failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
