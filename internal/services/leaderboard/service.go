package leaderboard

import (
	"sort"

	"github.com/mjessup/hotcold/internal/model"
)

// DefaultLimit caps the leaderboard at the top 10 players
const DefaultLimit = 10

// Service derives a ranked leaderboard from the player roster. The
// projection is pure and recomputed on demand, never cached.
type Service struct {
	limit int
}

// New creates a leaderboard service with the default entry cap
func New() *Service {
	return &Service{limit: DefaultLimit}
}

// NewWithLimit creates a leaderboard service with a custom entry cap
func NewWithLimit(limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{limit: limit}
}

// Top projects the roster to a ranked, capped list: players with at least
// one started game, sorted ascending by average guesses (lower is better),
// with dense 1-based ranks by sorted position.
//
// The filter is on GamesPlayed, not GamesWon: a player who has started
// games but never won carries a 0.0 average and sorts ahead of all
// winners.
func (s *Service) Top(players []*model.Player) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		if p.GamesPlayed == 0 {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			PlayerID:       p.ID,
			PlayerName:     p.Name,
			AverageGuesses: p.AverageGuesses,
			GamesPlayed:    p.GamesPlayed,
		})
	}

	// Stable sort keeps roster order for ties
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AverageGuesses < entries[j].AverageGuesses
	})

	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
