package handler

import (
	"net/http"

	"github.com/mjessup/hotcold/internal/api/response"
	"github.com/mjessup/hotcold/internal/services/leaderboard"
	"github.com/mjessup/hotcold/internal/services/ledger"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	ledger      *ledger.Controller
	leaderboard *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(ledger *ledger.Controller, leaderboard *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		ledger:      ledger,
		leaderboard: leaderboard,
	}
}

// Top handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	players, err := h.ledger.Roster(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	entries := h.leaderboard.Top(players)
	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}
