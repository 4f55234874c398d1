package web

import (
	"net/http"

	"github.com/clubstats/statsboard/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.RootRedirect)
	mux.HandleFunc("GET /matches", handler.MatchesTab)
	mux.HandleFunc("GET /tournament", handler.TournamentTab)
	mux.HandleFunc("GET /teams", handler.TeamsTab)
	mux.HandleFunc("POST /refresh", handler.Refresh)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /charts/possession.svg", handler.PossessionChart)
	mux.HandleFunc("GET /charts/goals.svg", handler.GoalsChart)

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, mux)))
}
