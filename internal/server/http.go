package server

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-catalog/internal/catalog"
	"github.com/gokatarajesh/trivia-catalog/internal/config"
	httperrors "github.com/gokatarajesh/trivia-catalog/pkg/http/errors"
)

// NewHTTPServer wires the catalog routes plus health and metrics.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, db *sql.DB, handlers *catalog.HTTPHandlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(cfg, logger, db, handlers),
	}
}

// NewRouter builds the full handler chain. Separated from NewHTTPServer
// so endpoint tests can exercise routing without binding a socket.
func NewRouter(cfg *config.App, logger zerolog.Logger, db *sql.DB, handlers *catalog.HTTPHandlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.Error().Err(err).Msg("database ping failed")
				http.Error(w, "upstream error", http.StatusBadGateway)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", handlers.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.ListQuestions)
	mux.HandleFunc("POST /questions", handlers.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /questions/search", handlers.SearchQuestions)
	mux.HandleFunc("POST /quizzes", handlers.PlayQuiz)

	// Unregistered paths get the same envelope as missing resources.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	var handler http.Handler = mux
	handler = withCORS(handler, cfg.CORS)
	handler = withMetrics(handler)
	handler = withRequestLog(handler, logger)
	return handler
}
