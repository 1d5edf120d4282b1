package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerSelectCmd())
	cmd.AddCommand(newPlayerCurrentCmd())
	cmd.AddCommand(newPlayerGamesCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerSelectCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "select [player-id]",
		Short: "Select the current player",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID := ""
			if len(args) > 0 {
				playerID = args[0]
			}
			if playerID == "" && !clear {
				return fmt.Errorf("player-id argument or --clear is required")
			}

			req := map[string]string{"player_id": playerID}

			if err := client.Put("/api/v1/players/current", req, nil); err != nil {
				return err
			}

			// Echo back what the server actually selected; unknown IDs
			// leave the previous selection in place
			var result CurrentPlayer
			if err := client.Get("/api/v1/players/current", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the current selection")

	return cmd
}

func newPlayerCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the currently selected player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CurrentPlayer

			if err := client.Get("/api/v1/players/current", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games <player-id>",
		Short: "List a player's completed games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/players/"+args[0]+"/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
