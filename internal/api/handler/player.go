package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mjessup/hotcold/internal/api/request"
	"github.com/mjessup/hotcold/internal/api/response"
	"github.com/mjessup/hotcold/internal/model"
	"github.com/mjessup/hotcold/internal/services/ledger"
	"github.com/mjessup/hotcold/internal/services/session"
)

// Name length bounds enforced at this boundary; the ledger itself does
// not validate names
const (
	minNameLength = 2
	maxNameLength = 20
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	ledger  *ledger.Controller
	session *session.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledger *ledger.Controller, session *session.Controller) *PlayerHandler {
	return &PlayerHandler{
		ledger:  ledger,
		session: session,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < minNameLength || len(name) > maxNameLength {
		WriteError(w, NewInvalidRequestError("name must be 2-20 characters"))
		return
	}

	player, err := h.ledger.CreatePlayer(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.ledger.Roster(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Player, len(players))
	for i, p := range players {
		resp[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, resp)
}

// GetCurrent handles GET /api/v1/players/current
func (h *PlayerHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	player, err := h.ledger.CurrentPlayer(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	var resp response.CurrentPlayer
	if player != nil {
		p := response.PlayerFromModel(player)
		resp.Player = &p
	}
	response.JSON(w, http.StatusOK, resp)
}

// Select handles PUT /api/v1/players/current. An empty player_id clears
// the selection; an unknown id leaves it unchanged.
func (h *PlayerHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req request.SelectPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.ledger.SelectPlayer(r.Context(), model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Games handles GET /api/v1/players/{id}/games
func (h *PlayerHandler) Games(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if _, err := h.ledger.GetPlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	games, err := h.session.GamesForPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Game, len(games))
	for i, g := range games {
		resp[i] = response.GameFromModel(g)
	}
	response.JSON(w, http.StatusOK, resp)
}
