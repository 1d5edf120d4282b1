package response

import (
	"time"

	"github.com/mjessup/hotcold/internal/model"
	"github.com/mjessup/hotcold/internal/services/feedback"
)

// Player represents a player in API responses
type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	GamesPlayed    int       `json:"games_played"`
	GamesWon       int       `json:"games_won"`
	TotalGuesses   int       `json:"total_guesses"`
	BestGame       int       `json:"best_game"`
	AverageGuesses float64   `json:"average_guesses"`
	CurrentStreak  int       `json:"current_streak"`
	BestStreak     int       `json:"best_streak"`
	LastPlayed     time.Time `json:"last_played"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:             string(p.ID),
		Name:           p.Name,
		GamesPlayed:    p.GamesPlayed,
		GamesWon:       p.GamesWon,
		TotalGuesses:   p.TotalGuesses,
		BestGame:       p.BestGame,
		AverageGuesses: p.AverageGuesses,
		CurrentStreak:  p.CurrentStreak,
		BestStreak:     p.BestStreak,
		LastPlayed:     p.LastPlayed,
	}
}

// CurrentPlayer wraps the current selection; Player is null when no
// player is selected
type CurrentPlayer struct {
	Player *Player `json:"player"`
}

// GuessResult represents a classified guess
type GuessResult struct {
	Guess      int    `json:"guess"`
	Feedback   string `json:"feedback"`
	Tier       string `json:"tier"`
	Difference int    `json:"difference"`
	Message    string `json:"message"`
}

// GuessResultFromModel converts a model.GuessResult, composing the
// user-facing message
func GuessResultFromModel(r model.GuessResult) GuessResult {
	return GuessResult{
		Guess:      r.Guess,
		Feedback:   string(r.Feedback),
		Tier:       string(r.Tier),
		Difference: r.Difference,
		Message:    feedback.Describe(r.Feedback, r.Tier),
	}
}

// Game represents a game record. The target number is revealed only once
// the game is complete.
type Game struct {
	ID           string     `json:"id"`
	PlayerID     string     `json:"player_id"`
	TargetNumber int        `json:"target_number,omitempty"`
	Guesses      []int      `json:"guesses"`
	IsComplete   bool       `json:"is_complete"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	resp := Game{
		ID:         string(g.ID),
		PlayerID:   string(g.PlayerID),
		Guesses:    append([]int{}, g.Guesses...),
		IsComplete: g.IsComplete,
		StartedAt:  g.StartedAt,
	}
	if g.IsComplete {
		resp.TargetNumber = g.TargetNumber
		completed := g.CompletedAt
		resp.CompletedAt = &completed
	}
	return resp
}

// SessionState represents the active session
type SessionState struct {
	Status  string        `json:"status"`
	Game    *Game         `json:"game,omitempty"`
	Results []GuessResult `json:"results,omitempty"`
}

// SessionStateFromModel builds a SessionState from the session accessors
func SessionStateFromModel(status model.SessionStatus, game *model.Game, results []model.GuessResult) SessionState {
	state := SessionState{Status: string(status)}

	if game != nil {
		g := GameFromModel(game)
		state.Game = &g
	}

	if len(results) > 0 {
		state.Results = make([]GuessResult, len(results))
		for i, r := range results {
			state.Results[i] = GuessResultFromModel(r)
		}
	}

	return state
}

// LeaderboardEntry represents a leaderboard row
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	PlayerID       string  `json:"player_id"`
	PlayerName     string  `json:"player_name"`
	AverageGuesses float64 `json:"average_guesses"`
	GamesPlayed    int     `json:"games_played"`
}

// LeaderboardFromModel converts a list of entries
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	resp := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		resp[i] = LeaderboardEntry{
			Rank:           e.Rank,
			PlayerID:       string(e.PlayerID),
			PlayerName:     e.PlayerName,
			AverageGuesses: e.AverageGuesses,
			GamesPlayed:    e.GamesPlayed,
		}
	}
	return resp
}
