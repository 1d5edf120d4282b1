package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mjessup/hotcold/internal/api/apierr"
	"github.com/mjessup/hotcold/internal/api/handler"
	"github.com/mjessup/hotcold/internal/middleware"
	"github.com/mjessup/hotcold/internal/services/leaderboard"
	"github.com/mjessup/hotcold/internal/services/ledger"
	"github.com/mjessup/hotcold/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Ledger             *ledger.Controller
	Session            *session.Controller
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Ledger, cfg.Session)
	gameHandler := handler.NewGameHandler(cfg.Ledger, cfg.Session)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.Ledger, cfg.LeaderboardService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/current", playerHandler.GetCurrent).Methods(http.MethodGet)
	api.HandleFunc("/players/current", playerHandler.Select).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}/games", playerHandler.Games).Methods(http.MethodGet)

	// Game session routes
	api.HandleFunc("/game", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game", gameHandler.Reset).Methods(http.MethodDelete)
	api.HandleFunc("/game/guesses", gameHandler.Guess).Methods(http.MethodPost)

	// Leaderboard
	api.HandleFunc("/leaderboard", leaderboardHandler.Top).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
