package redis

import (
	"fmt"

	"github.com/mjessup/hotcold/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "hotcold"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// rosterKey returns the Redis key for the LIST of player IDs in creation order
func rosterKey() string {
	return fmt.Sprintf("%s:idx:roster", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesForPlayerIndexKey returns the Redis key for the SET of games for a player
func gamesForPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:games_for_player:%s", keyPrefix, playerID)
}

// currentPlayerKey returns the Redis key for the current-selection pointer
func currentPlayerKey() string {
	return fmt.Sprintf("%s:current_player", keyPrefix)
}
