package rest

import (
	"log/slog"
	"net/http"

	"github.com/kako-jun/noun-gender-backend/internal/config"
	"github.com/kako-jun/noun-gender-backend/internal/transport/middleware"
)

// NewRouter assembles the HTTP surface: API routes, health probes, and
// the shared middleware chain.
func NewRouter(
	search *SearchHandler,
	words *WordsHandler,
	health *HealthHandler,
	logger *slog.Logger,
	cors config.CORSConfig,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/search", search.Search)

	mux.HandleFunc("GET /api/words", words.List)
	mux.HandleFunc("GET /api/words/letters", words.Letters)
	mux.HandleFunc("GET /api/words/letters/{prefix}", words.LettersAtPrefix)
	mux.HandleFunc("GET /api/words/at", words.At)
	mux.HandleFunc("GET /api/words/range", words.Range)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cors),
	)

	return chain(mux)
}
