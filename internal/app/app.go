// Package app wires the features into a single HTTP handler so main and
// the tests assemble the service the same way.
package app

import (
	"database/sql"
	"net/http"
	"time"

	"policyhub/features/assistant"
	"policyhub/features/ingest"
	"policyhub/features/stats"
	"policyhub/internal/config"
	"policyhub/internal/middleware"
	"policyhub/internal/pipeline"
)

type App struct {
	Handler http.Handler
}

func New(cfg *config.Config, db *sql.DB, store pipeline.ObjectStore) *App {
	client := &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second}
	processor := pipeline.New(client, store, cfg.StorageBucket)
	ingestHandler := ingest.NewHandler(processor)

	repo := assistant.NewPostgresRepo(db)
	assistantService := assistant.NewService(repo, assistant.NewTemplateResponder())
	assistantHandler := assistant.NewHandler(assistantService)

	statsHandler := stats.NewHandler(repo, cfg.StorageBucket)

	enableCORS := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/process-pdfs", middleware.CorrelationID(enableCORS(ingestHandler.ProcessPDFs)))
	mux.Handle("POST /api/rag-query", middleware.CorrelationID(enableCORS(assistantHandler.Query)))
	mux.Handle("POST /api/feedback", middleware.CorrelationID(enableCORS(assistantHandler.Feedback)))
	mux.Handle("POST /api/refine-response", middleware.CorrelationID(enableCORS(assistantHandler.Refine)))
	mux.Handle("GET /api/status", middleware.CorrelationID(enableCORS(statsHandler.GetStatus)))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return &App{Handler: mux}
}
