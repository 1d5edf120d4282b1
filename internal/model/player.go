package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a registered participant and their cumulative statistics
type Player struct {
	ID   PlayerID
	Name string

	// GamesPlayed counts sessions started, regardless of outcome
	GamesPlayed int
	// GamesWon counts sessions that reached the correct guess
	GamesWon int
	// TotalGuesses sums guess counts across won sessions only
	TotalGuesses int
	// BestGame is the lowest guess count among won sessions; 0 means no wins yet
	BestGame int
	// AverageGuesses is TotalGuesses / GamesWon, or 0 with no wins.
	// Never computed over started-but-unwon sessions.
	AverageGuesses float64

	// CurrentStreak counts consecutive wins; abandoning a game breaks it
	CurrentStreak int
	// BestStreak is the highest CurrentStreak ever reached
	BestStreak int

	LastPlayed time.Time
}

// HasWon returns true if the player has won at least one game
func (p *Player) HasWon() bool {
	return p.GamesWon > 0
}
