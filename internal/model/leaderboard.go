package model

// LeaderboardEntry is a derived ranking row; it is never stored
type LeaderboardEntry struct {
	PlayerID       PlayerID
	PlayerName     string
	AverageGuesses float64
	GamesPlayed    int
	Rank           int // 1-based, assigned by sorted position
}
