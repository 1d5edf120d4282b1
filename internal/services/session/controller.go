package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mjessup/hotcold/internal/dependencies/clock"
	"github.com/mjessup/hotcold/internal/dependencies/random"
	"github.com/mjessup/hotcold/internal/model"
	"github.com/mjessup/hotcold/internal/services/feedback"
	"github.com/mjessup/hotcold/internal/services/ledger"
	"github.com/mjessup/hotcold/internal/storage"
)

const (
	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller manages the lifecycle of the active guessing round:
// idle -> playing -> won, with "abandoned" reachable only by starting a
// new game over an incomplete one. The win-settlement side effect is
// owned here and applied exactly once per winning game, gated by the
// game's WinRecorded marker.
type Controller struct {
	storage  storage.Storage
	ledger   *ledger.Controller
	feedback *feedback.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger

	mu      sync.Mutex
	status  model.SessionStatus
	game    *model.Game
	results []model.GuessResult
}

// NewController creates a new session controller in the idle state
func NewController(
	storage storage.Storage,
	ledger *ledger.Controller,
	feedback *feedback.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		ledger:   ledger,
		feedback: feedback,
		clock:    clock,
		random:   random,
		logger:   logger,
		status:   model.SessionIdle,
	}
}

// StartGame begins a new round for the given player: draws a target,
// creates and persists the Game record, and notifies the ledger of the
// session start. Reachable from idle and from won; an incomplete previous
// round is simply left behind as an abandoned record.
func (c *Controller) StartGame(ctx context.Context, playerID model.PlayerID) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Starting over an unfinished game abandons it and breaks the
	// previous player's win streak
	if c.game != nil && !c.game.IsComplete {
		if err := c.ledger.BreakStreak(ctx, c.game.PlayerID); err != nil {
			return nil, err
		}
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:           model.GameID(c.random.String(gameIDLength, gameIDAlphabet)),
		PlayerID:     playerID,
		TargetNumber: c.feedback.NewTarget(),
		Guesses:      []int{},
		StartedAt:    now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := c.ledger.RecordSessionStart(ctx, playerID); err != nil {
		return nil, err
	}

	c.game = game
	c.results = nil
	c.status = model.SessionPlaying

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(playerID)),
	)

	return game, nil
}

// MakeGuess classifies a guess against the active game's target and
// records it. Rejections (no active game, game complete, duplicate value)
// leave all state untouched and perform no classification. The updated
// Game record is upserted on every accepted guess, not only on completion.
//
// Callers are expected to validate range before calling; the duplicate
// check here is the authoritative one regardless of UI-level validation.
func (c *Controller) MakeGuess(ctx context.Context, value int) (*model.GuessResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.game == nil || c.status == model.SessionIdle {
		return nil, model.ErrNoActiveGame
	}
	if c.game.IsComplete || c.status == model.SessionWon {
		return nil, model.ErrGameComplete
	}
	if c.game.HasGuessed(value) {
		return nil, model.ErrDuplicateGuess
	}

	result := feedback.Classify(value, c.game.TargetNumber)

	c.game.Guesses = append(c.game.Guesses, value)
	c.results = append(c.results, result)

	if result.Feedback == model.FeedbackCorrect {
		c.game.IsComplete = true
		c.game.CompletedAt = c.clock.Now()
		c.status = model.SessionWon

		// Settle the win into the ledger exactly once, then persist the
		// marker so re-observation of the won state cannot double-count
		if !c.game.WinRecorded {
			if err := c.ledger.RecordWin(ctx, c.game.PlayerID, c.game.GuessCount()); err != nil {
				return nil, err
			}
			c.game.WinRecorded = true
		}

		c.logger.Info("game won",
			slog.String("game_id", string(c.game.ID)),
			slog.String("player_id", string(c.game.PlayerID)),
			slog.Int("guess_count", c.game.GuessCount()),
		)
	}

	if err := c.storage.SaveGame(ctx, c.game); err != nil {
		return nil, err
	}

	return &result, nil
}

// ResetGame clears the in-memory session state back to idle. Persisted
// Game records are untouched. Available from any state.
func (c *Controller) ResetGame() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.game = nil
	c.results = nil
	c.status = model.SessionIdle
}

// Status returns the current session status
func (c *Controller) Status() model.SessionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// CurrentGame returns a copy of the active game, or nil when idle
func (c *Controller) CurrentGame() *model.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.game == nil {
		return nil
	}
	game := *c.game
	game.Guesses = append([]int(nil), c.game.Guesses...)
	return &game
}

// Results returns a copy of the classification log for the active game
func (c *Controller) Results() []model.GuessResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.GuessResult(nil), c.results...)
}

// GamesForPlayer returns a player's persisted games in session-start order
func (c *Controller) GamesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Game, error) {
	return c.storage.ListGamesForPlayer(ctx, playerID)
}
