package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrNoActiveGame   = errors.New("no game in progress")
	ErrGameComplete   = errors.New("game is already complete")
	ErrDuplicateGuess = errors.New("value has already been guessed")
)
