package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"policyhub/internal/middleware"
)

type InteractionCounter interface {
	Count(ctx context.Context) (int, error)
	CountSessions(ctx context.Context) (int, error)
}

type Handler struct {
	interactions InteractionCounter
	bucket       string
}

func NewHandler(interactions InteractionCounter, bucket string) *Handler {
	return &Handler{interactions: interactions, bucket: bucket}
}

type StatusResponse struct {
	Service      string    `json:"service"`
	Status       string    `json:"status"`
	Bucket       string    `json:"bucket"`
	Interactions int       `json:"interactions"`
	Sessions     int       `json:"sessions"`
	Timestamp    time.Time `json:"timestamp"`
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	correlationID := middleware.GetCorrelationID(ctx)

	slog.InfoContext(ctx, "getting service status", "correlationId", correlationID)

	iCount, err := h.interactions.Count(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count interactions", "error", err, "correlationId", correlationID)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count interactions", http.StatusInternalServerError)
		return
	}

	sCount, err := h.interactions.CountSessions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count sessions", "error", err, "correlationId", correlationID)
		h.writeError(ctx, w, "INTERNAL_ERROR", "failed to count sessions", http.StatusInternalServerError)
		return
	}

	resp := StatusResponse{
		Service:      "policyhub",
		Status:       "operational",
		Bucket:       h.bucket,
		Interactions: iCount,
		Sessions:     sCount,
		Timestamp:    time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"data": resp}); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, code, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
		"correlationId": middleware.GetCorrelationID(ctx),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
