package model

import "time"

// GameID uniquely identifies a game
type GameID string

// SessionStatus represents the current phase of the active session
type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"    // No session in progress
	SessionPlaying SessionStatus = "playing" // Session active, accepting guesses
	SessionWon     SessionStatus = "won"     // Target guessed correctly
)

// Game represents a single guessing round for one player.
// Abandoned rounds remain in storage as incomplete records; they count
// toward the player's GamesPlayed but never toward GamesWon.
type Game struct {
	ID       GameID
	PlayerID PlayerID

	// TargetNumber is the secret integer, fixed for the game's lifetime
	TargetNumber int

	// Guesses is the ordered, append-only guess log. Duplicate values are
	// rejected before append.
	Guesses []int

	// IsComplete is true exactly when the most recent guess equals TargetNumber
	IsComplete bool

	// WinRecorded marks that the win has been settled into the player's
	// statistics, so the ledger update happens at most once per game
	WinRecorded bool

	StartedAt   time.Time
	CompletedAt time.Time // zero until completion
}

// HasGuessed returns true if value already appears in the guess log
func (g *Game) HasGuessed(value int) bool {
	for _, v := range g.Guesses {
		if v == value {
			return true
		}
	}
	return false
}

// GuessCount returns the number of guesses submitted so far
func (g *Game) GuessCount() int {
	return len(g.Guesses)
}
