// Package ingest exposes the PDF processing pipeline over HTTP.
package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"policyhub/internal/middleware"
	"policyhub/internal/pipeline"
)

// Processor runs one pipeline pass over a seed URL. Failures surface
// inside the Result, never as a panic or a dropped request.
type Processor interface {
	Process(ctx context.Context, seedURL string) *pipeline.Result
}

type Handler struct {
	processor Processor
}

func NewHandler(processor Processor) *Handler {
	return &Handler{processor: processor}
}

func (h *Handler) ProcessPDFs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	if req.URL == "" {
		h.writeError(r.Context(), w, "VALIDATION_ERROR", "URL is required", http.StatusBadRequest)
		return
	}

	result := h.processor.Process(r.Context(), req.URL)
	if !result.Success {
		slog.WarnContext(r.Context(), "processing run failed", "url", req.URL, "error", result.Error)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
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
