package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mjessup/hotcold/internal/api/request"
	"github.com/mjessup/hotcold/internal/api/response"
	"github.com/mjessup/hotcold/internal/model"
	"github.com/mjessup/hotcold/internal/services/feedback"
	"github.com/mjessup/hotcold/internal/services/ledger"
	"github.com/mjessup/hotcold/internal/services/session"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	ledger  *ledger.Controller
	session *session.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(ledger *ledger.Controller, session *session.Controller) *GameHandler {
	return &GameHandler{
		ledger:  ledger,
		session: session,
	}
}

// Start handles POST /api/v1/game. The player defaults to the current
// selection when not named in the request.
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
	}

	playerID := model.PlayerID(req.PlayerID)
	if playerID == "" {
		current, err := h.ledger.CurrentPlayer(r.Context())
		if err != nil {
			WriteError(w, err)
			return
		}
		if current == nil {
			WriteError(w, NewInvalidRequestError("no player selected"))
			return
		}
		playerID = current.ID
	}

	game, err := h.session.StartGame(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	state := response.SessionStateFromModel(
		h.session.Status(),
		h.session.CurrentGame(),
		h.session.Results(),
	)
	response.JSON(w, http.StatusOK, state)
}

// Guess handles POST /api/v1/game/guesses. Range validation lives here;
// the session re-checks duplicates itself.
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Value < feedback.MinTarget || req.Value > feedback.MaxTarget {
		WriteError(w, NewInvalidRequestError("value must be between 1 and 100"))
		return
	}

	result, err := h.session.MakeGuess(r.Context(), req.Value)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResultFromModel(*result))
}

// Reset handles DELETE /api/v1/game
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.session.ResetGame()
	response.NoContent(w)
}
