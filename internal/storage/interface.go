package storage

import (
	"context"

	"github.com/mjessup/hotcold/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations. ListPlayers preserves roster insertion order,
	// which the leaderboard relies on for stable tie-breaking.
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Game operations. SaveGame is an upsert keyed by game ID.
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGamesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Game, error)

	// Current-selection pointer. An empty PlayerID clears the selection;
	// GetCurrentPlayer returns "" when no player is selected.
	SetCurrentPlayer(ctx context.Context, id model.PlayerID) error
	GetCurrentPlayer(ctx context.Context) (model.PlayerID, error)
}
