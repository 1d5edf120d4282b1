package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjessup/hotcold/internal/api"
	"github.com/mjessup/hotcold/internal/api/response"
	"github.com/mjessup/hotcold/internal/factory"
)

// testServer wraps the router with its mocked dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		Ledger:             app.Ledger,
		Session:            app.Session,
		LeaderboardService: app.LeaderboardService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createPlayer registers a player through the API and returns the response
func (ts *testServer) createPlayer(t *testing.T, name string) response.Player {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// startGame begins a game with the given target for the current player
func (ts *testServer) startGame(t *testing.T, target int) response.Game {
	t.Helper()

	ts.app.MockRandom.QueueRange(target)
	ts.app.MockRandom.QueueString("GAMETEST0001")

	rr := ts.request(http.MethodPost, "/api/v1/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreatePlayer(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.createPlayer(t, "Alice")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, 0, resp.GamesPlayed)
	assert.Equal(t, 0.0, resp.AverageGuesses)
}

func TestCreatePlayerValidatesName(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"too short", map[string]string{"name": "A"}},
		{"too long", map[string]string{"name": "ThisNameIsFarTooLongToAccept"}},
		{"whitespace only", map[string]string{"name": "   "}},
		{"missing", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/players", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
		})
	}
}

func TestCreatePlayerBecomesCurrent(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/players/current", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.CurrentPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Player)
	assert.Equal(t, created.ID, resp.Player.ID)
}

func TestCurrentPlayerNullWhenNoneSelected(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/current", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.CurrentPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Nil(t, resp.Player)
}

func TestListPlayersInCreationOrder(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.createPlayer(t, "Bob")
	ts.createPlayer(t, "Carol")

	rr := ts.request(http.MethodGet, "/api/v1/players", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "Alice", resp[0].Name)
	assert.Equal(t, "Bob", resp[1].Name)
	assert.Equal(t, "Carol", resp[2].Name)
}

func TestSelectPlayer(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.createPlayer(t, "Alice")
	ts.createPlayer(t, "Bob") // Bob is now current

	rr := ts.request(http.MethodPut, "/api/v1/players/current", map[string]string{"player_id": alice.ID})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/current", nil)
	var resp response.CurrentPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Player)
	assert.Equal(t, alice.ID, resp.Player.ID)
}

func TestSelectUnknownPlayerKeepsSelection(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodPut, "/api/v1/players/current", map[string]string{"player_id": "no-such-player"})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/current", nil)
	var resp response.CurrentPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Player)
	assert.Equal(t, alice.ID, resp.Player.ID)
}

func TestSelectEmptyClearsSelection(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodPut, "/api/v1/players/current", map[string]string{"player_id": ""})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/current", nil)
	var resp response.CurrentPlayer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Nil(t, resp.Player)
}

func TestStartGame(t *testing.T) {
	ts := newTestServer(t)

	player := ts.createPlayer(t, "Alice")
	game := ts.startGame(t, 50)

	assert.Equal(t, "GAMETEST0001", game.ID)
	assert.Equal(t, player.ID, game.PlayerID)
	assert.Empty(t, game.Guesses)
	assert.False(t, game.IsComplete)
	// Target stays hidden while the game is in progress
	assert.Equal(t, 0, game.TargetNumber)
}

func TestStartGameWithoutPlayerFails(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/game", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "no player selected")
}

func TestStartGameForNamedPlayer(t *testing.T) {
	ts := newTestServer(t)

	alice := ts.createPlayer(t, "Alice")
	ts.createPlayer(t, "Bob") // Bob is current

	ts.app.MockRandom.QueueRange(50)
	ts.app.MockRandom.QueueString("GAMETEST0002")

	rr := ts.request(http.MethodPost, "/api/v1/game", map[string]string{"player_id": alice.ID})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, alice.ID, game.PlayerID)
}

func TestGuessFlow(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	// Too low, cold
	rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 25})
	assert.Equal(t, http.StatusOK, rr.Code)

	var result response.GuessResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "too-low", result.Feedback)
	assert.Equal(t, "cold", result.Tier)
	assert.Equal(t, 25, result.Difference)
	assert.Equal(t, "Try higher. You're cold.", result.Message)

	// Too high, warm
	rr = ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 60})
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "too-high", result.Feedback)
	assert.Equal(t, "warm", result.Tier)

	// Correct
	rr = ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 50})
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "correct", result.Feedback)
	assert.Equal(t, "hot", result.Tier)
	assert.Equal(t, "You got it! Congratulations!", result.Message)
}

func TestGuessValidation(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	for _, value := range []int{0, -5, 101, 1000} {
		rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": value})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}
}

func TestGuessWithoutGameFails(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 50})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_ACTIVE_GAME")
}

func TestDuplicateGuessConflicts(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 25})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 25})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "DUPLICATE_GUESS")
}

func TestGuessAfterWinConflicts(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 50})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 51})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_COMPLETE")
}

func TestSessionStateRevealsTargetAfterWin(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	rr := ts.request(http.MethodGet, "/api/v1/game", nil)
	var state response.SessionState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "playing", state.Status)
	require.NotNil(t, state.Game)
	assert.Equal(t, 0, state.Game.TargetNumber)

	rr = ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 50})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/game", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "won", state.Status)
	require.NotNil(t, state.Game)
	assert.Equal(t, 50, state.Game.TargetNumber)
	assert.NotNil(t, state.Game.CompletedAt)
	require.Len(t, state.Results, 1)
}

func TestResetGame(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	rr := ts.request(http.MethodDelete, "/api/v1/game", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/game", nil)
	var state response.SessionState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, "idle", state.Status)
	assert.Nil(t, state.Game)
}

func TestPlayerGamesHistory(t *testing.T) {
	ts := newTestServer(t)

	player := ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 50})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/"+player.ID+"/games", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var games []response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.True(t, games[0].IsComplete)
	assert.Equal(t, []int{50}, games[0].Guesses)
}

func TestPlayerGamesUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/no-such-player/games", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_NOT_FOUND")
}

func TestWinUpdatesStats(t *testing.T) {
	ts := newTestServer(t)

	player := ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)

	for _, value := range []int{25, 75, 50} {
		rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": value})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := ts.request(http.MethodGet, "/api/v1/players", nil)
	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, player.ID, players[0].ID)
	assert.Equal(t, 1, players[0].GamesPlayed)
	assert.Equal(t, 1, players[0].GamesWon)
	assert.Equal(t, 3, players[0].TotalGuesses)
	assert.Equal(t, 3.0, players[0].AverageGuesses)
	assert.Equal(t, 3, players[0].BestGame)
}

func TestLeaderboard(t *testing.T) {
	ts := newTestServer(t)

	// Alice wins in 3, Bob wins in 1
	ts.createPlayer(t, "Alice")
	ts.startGame(t, 50)
	for _, value := range []int{25, 75, 50} {
		rr := ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": value})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	ts.createPlayer(t, "Bob")
	ts.app.MockRandom.QueueRange(30)
	ts.app.MockRandom.QueueString("GAMETEST0002")
	rr := ts.request(http.MethodPost, "/api/v1/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/game/guesses", map[string]int{"value": 30})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/leaderboard", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var entries []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Bob", entries[0].PlayerName)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1.0, entries[0].AverageGuesses)
	assert.Equal(t, "Alice", entries[1].PlayerName)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestLeaderboardExcludesIdlePlayers(t *testing.T) {
	ts := newTestServer(t)

	ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodGet, "/api/v1/leaderboard", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var entries []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestUnknownRouteReturns404(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
