// Package handler exposes notifications over REST. Creating a notification
// stores it and publishes an event for downstream delivery channels.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jendo/backend/internal/httpx"
	"jendo/backend/internal/notification/domain"
	"jendo/backend/internal/notification/producer"
	"jendo/backend/internal/notification/repository"
)

type Handler struct {
	repo repository.Repository
	prod producer.Producer
	log  zerolog.Logger
}

// New returns the notification HTTP handler. prod may be nil when no broker
// is configured.
func New(repo repository.Repository, prod producer.Producer, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, prod: prod, log: log}
}

// Register mounts the notification routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/notifications", h.create)
	mux.HandleFunc("GET /api/notifications/{id}", h.get)
	mux.HandleFunc("GET /api/users/{userId}/notifications", h.listByUser)
	mux.HandleFunc("PUT /api/notifications/{id}/read", h.markRead)
	mux.HandleFunc("DELETE /api/notifications/{id}", h.delete)
}

type notificationRequest struct {
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type notificationResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

func toResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.Title == "" {
		httpx.Error(w, http.StatusBadRequest, "userId and title are required")
		return
	}
	n := &domain.Notification{
		UserID:    req.UserID,
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	id, err := h.repo.Create(r.Context(), n)
	if err != nil {
		h.log.Error().Err(err).Msg("create notification failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	n.ID = id

	// Publishing is best-effort: the stored row is the source of truth.
	if h.prod != nil {
		event := &producer.Event{
			EventID:   uuid.NewString(),
			UserID:    n.UserID,
			Title:     n.Title,
			Body:      n.Body,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
		if err := h.prod.Publish(r.Context(), event); err != nil {
			h.log.Warn().Err(err).Int64("notification_id", n.ID).Msg("publish notification event failed")
		}
	}
	httpx.WriteJSON(w, http.StatusCreated, toResponse(n))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	n, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("notification_id", id).Msg("get notification failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if n == nil {
		httpx.Error(w, http.StatusNotFound, "notification not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(n))
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}
	notifications, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("list notifications failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toResponse(n))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	n, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("notification_id", id).Msg("get notification failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if n == nil {
		httpx.Error(w, http.StatusNotFound, "notification not found")
		return
	}
	if err := h.repo.MarkRead(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("notification_id", id).Msg("mark notification read failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	n.Read = true
	httpx.WriteJSON(w, http.StatusOK, toResponse(n))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("notification_id", id).Msg("delete notification failed")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
