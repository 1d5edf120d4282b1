package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game session commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameGuessCmd())
	cmd.AddCommand(newGameResetCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new game for the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req map[string]string
			if playerID != "" {
				req = map[string]string{"player_id": playerID}
			}

			var result Game

			if err := client.Post("/api/v1/game", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Play as this player instead of the current selection")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionState

			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <number>",
		Short: "Submit a guess for the active game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid guess: %w", err)
			}

			req := map[string]int{"value": value}
			var result GuessResult

			if err := client.Post("/api/v1/game/guesses", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Abandon the current game and return to idle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/game"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game reset.")
			return nil
		},
	}
}
