package request

// CreatePlayerRequest is the body for POST /api/v1/players
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// SelectPlayerRequest is the body for PUT /api/v1/players/current.
// An empty player_id clears the current selection.
type SelectPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// StartGameRequest is the body for POST /api/v1/game.
// If player_id is empty, the currently selected player is used.
type StartGameRequest struct {
	PlayerID string `json:"player_id"`
}

// GuessRequest is the body for POST /api/v1/game/guesses
type GuessRequest struct {
	Value int `json:"value"`
}
