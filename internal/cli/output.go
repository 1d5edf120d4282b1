package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case CurrentPlayer:
		o.printCurrentPlayer(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case SessionState:
		o.printSessionState(v)
	case GuessResult:
		o.printGuessResult(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	GamesPlayed    int       `json:"games_played"`
	GamesWon       int       `json:"games_won"`
	TotalGuesses   int       `json:"total_guesses"`
	BestGame       int       `json:"best_game"`
	AverageGuesses float64   `json:"average_guesses"`
	CurrentStreak  int       `json:"current_streak"`
	BestStreak     int       `json:"best_streak"`
	LastPlayed     time.Time `json:"last_played"`
}

// CurrentPlayer response type
type CurrentPlayer struct {
	Player *Player `json:"player"`
}

// Game response type
type Game struct {
	ID           string     `json:"id"`
	PlayerID     string     `json:"player_id"`
	TargetNumber int        `json:"target_number,omitempty"`
	Guesses      []int      `json:"guesses"`
	IsComplete   bool       `json:"is_complete"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// GuessResult response type
type GuessResult struct {
	Guess      int    `json:"guess"`
	Feedback   string `json:"feedback"`
	Tier       string `json:"tier"`
	Difference int    `json:"difference"`
	Message    string `json:"message"`
}

// SessionState response type
type SessionState struct {
	Status  string        `json:"status"`
	Game    *Game         `json:"game,omitempty"`
	Results []GuessResult `json:"results,omitempty"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	PlayerID       string  `json:"player_id"`
	PlayerName     string  `json:"player_name"`
	AverageGuesses float64 `json:"average_guesses"`
	GamesPlayed    int     `json:"games_played"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Games Played: %d\n", p.GamesPlayed)
	fmt.Printf("Games Won: %d\n", p.GamesWon)
	if p.GamesWon > 0 {
		fmt.Printf("Average Guesses: %.1f\n", p.AverageGuesses)
		fmt.Printf("Best Game: %d guesses\n", p.BestGame)
		fmt.Printf("Streak: %d (best %d)\n", p.CurrentStreak, p.BestStreak)
	}
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players yet")
		return
	}
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s (%s): %d played, %d won\n", p.Name, p.ID, p.GamesPlayed, p.GamesWon)
	}
}

func (o *Output) printCurrentPlayer(c CurrentPlayer) {
	if c.Player == nil {
		fmt.Println("No player selected")
		return
	}
	o.printPlayer(*c.Player)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Player: %s\n", g.PlayerID)
	fmt.Printf("Guesses: %d\n", len(g.Guesses))
	if g.IsComplete {
		fmt.Printf("Complete: target was %d\n", g.TargetNumber)
	} else {
		fmt.Println("In progress")
	}
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Println("No games yet")
		return
	}
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		status := "incomplete"
		if g.IsComplete {
			status = fmt.Sprintf("won in %d", len(g.Guesses))
		}
		fmt.Printf("  - %s: %s\n", g.ID, status)
	}
}

func (o *Output) printSessionState(s SessionState) {
	fmt.Printf("Status: %s\n", s.Status)
	if s.Game != nil {
		guesses := make([]string, len(s.Game.Guesses))
		for i, g := range s.Game.Guesses {
			guesses[i] = fmt.Sprintf("%d", g)
		}
		fmt.Printf("Guesses: [%s]\n", strings.Join(guesses, ", "))
	}
	if len(s.Results) > 0 {
		last := s.Results[len(s.Results)-1]
		fmt.Printf("Last: %s\n", last.Message)
	}
}

func (o *Output) printGuessResult(r GuessResult) {
	fmt.Printf("Guess: %d\n", r.Guess)
	fmt.Printf("Feedback: %s (%s)\n", r.Feedback, r.Tier)
	fmt.Println(r.Message)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}
	fmt.Println("Leaderboard:")
	for _, e := range entries {
		fmt.Printf("  %d. %s - %.1f avg guesses (%d played)\n",
			e.Rank, e.PlayerName, e.AverageGuesses, e.GamesPlayed)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
