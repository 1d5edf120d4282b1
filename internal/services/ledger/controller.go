package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mjessup/hotcold/internal/dependencies/clock"
	"github.com/mjessup/hotcold/internal/model"
	"github.com/mjessup/hotcold/internal/storage"
)

// Controller owns the roster of players and their cumulative statistics.
//
// RecordSessionStart and RecordWin are deliberately disjoint code paths:
// the former never recalculates AverageGuesses, the latter never touches
// GamesPlayed. The average is always TotalGuesses over GamesWon, never
// over GamesPlayed.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new ledger controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreatePlayer registers a new player with zeroed statistics, persists it,
// and makes it the current selection
func (c *Controller) CreatePlayer(ctx context.Context, name string) (*model.Player, error) {
	player := &model.Player{
		ID:         model.PlayerID(uuid.NewString()),
		Name:       name,
		LastPlayed: c.clock.Now(),
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		c.logger.Error("failed to save player",
			slog.String("player_id", string(player.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := c.storage.SetCurrentPlayer(ctx, player.ID); err != nil {
		return nil, err
	}

	c.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// SelectPlayer makes the given player current. An empty id clears the
// selection. An unknown id leaves the selection unchanged; this is a
// silent no-op by design, not an error.
func (c *Controller) SelectPlayer(ctx context.Context, id model.PlayerID) error {
	if id == "" {
		return c.storage.SetCurrentPlayer(ctx, "")
	}

	if _, err := c.storage.GetPlayer(ctx, id); err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			c.logger.Debug("select ignored for unknown player",
				slog.String("player_id", string(id)),
			)
			return nil
		}
		return err
	}

	return c.storage.SetCurrentPlayer(ctx, id)
}

// CurrentPlayer returns the currently selected player, or nil if no player
// is selected or the selection pointer is stale
func (c *Controller) CurrentPlayer(ctx context.Context) (*model.Player, error) {
	id, err := c.storage.GetCurrentPlayer(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}

	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, nil // Stale pointer degrades to no selection
		}
		return nil, err
	}
	return player, nil
}

// GetPlayer retrieves a player by ID
func (c *Controller) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}

// Roster returns all players in creation order
func (c *Controller) Roster(ctx context.Context) ([]*model.Player, error) {
	return c.storage.ListPlayers(ctx)
}

// RecordSessionStart increments the player's GamesPlayed. It never touches
// the win statistics. An unknown id is a silent no-op.
func (c *Controller) RecordSessionStart(ctx context.Context, id model.PlayerID) error {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			c.logger.Debug("session start ignored for unknown player",
				slog.String("player_id", string(id)),
			)
			return nil
		}
		return err
	}

	player.GamesPlayed++
	player.LastPlayed = c.clock.Now()

	return c.storage.SavePlayer(ctx, player)
}

// RecordWin settles a won game of guessCount guesses into the player's
// statistics. It never touches GamesPlayed. Callers must invoke this at
// most once per completed game; calling it twice double-counts.
// An unknown id is a silent no-op.
func (c *Controller) RecordWin(ctx context.Context, id model.PlayerID, guessCount int) error {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			c.logger.Debug("win ignored for unknown player",
				slog.String("player_id", string(id)),
			)
			return nil
		}
		return err
	}

	player.GamesWon++
	player.TotalGuesses += guessCount
	if player.BestGame == 0 || guessCount < player.BestGame {
		player.BestGame = guessCount
	}
	player.AverageGuesses = float64(player.TotalGuesses) / float64(player.GamesWon)
	player.CurrentStreak++
	if player.CurrentStreak > player.BestStreak {
		player.BestStreak = player.CurrentStreak
	}
	player.LastPlayed = c.clock.Now()

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	c.logger.Info("win recorded",
		slog.String("player_id", string(id)),
		slog.Int("guess_count", guessCount),
		slog.Int("games_won", player.GamesWon),
	)

	return nil
}

// BreakStreak resets the player's current win streak, leaving BestStreak
// and every other statistic alone. Called when a game is abandoned.
// An unknown id is a silent no-op.
func (c *Controller) BreakStreak(ctx context.Context, id model.PlayerID) error {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	if player.CurrentStreak == 0 {
		return nil
	}

	player.CurrentStreak = 0
	return c.storage.SavePlayer(ctx, player)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreatePlayer(ctx context.Context, name string) (*model.Player, error)
	SelectPlayer(ctx context.Context, id model.PlayerID) error
	CurrentPlayer(ctx context.Context) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	Roster(ctx context.Context) ([]*model.Player, error)
	RecordSessionStart(ctx context.Context, id model.PlayerID) error
	RecordWin(ctx context.Context, id model.PlayerID, guessCount int) error
	BreakStreak(ctx context.Context, id model.PlayerID) error
}

var _ ControllerInterface = (*Controller)(nil)
