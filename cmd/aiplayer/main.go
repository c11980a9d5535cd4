// Command aiplayer is an autonomous slobsterble player. It polls the game
// service, generates candidate plays for each game where it is this player's
// turn, and submits the highest-scoring legal one.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/slobsterble/aiplayer/bot"
	"github.com/slobsterble/aiplayer/config"
	"github.com/slobsterble/aiplayer/lexicon"
	"github.com/slobsterble/aiplayer/move"
	"github.com/slobsterble/aiplayer/movegen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:           "aiplayer",
		Short:         "Autonomous slobsterble player",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
	}
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(newRunCmd(&cfg))
	cmd.AddCommand(newPlayCmd(&cfg))
	cmd.AddCommand(newBestMovesCmd(&cfg))
	return cmd
}

// newBot wires a bot from the resolved configuration.
func newBot(cfg *config.Config) (*bot.Bot, error) {
	dict, err := lexicon.Load(cfg.DictionaryPath)
	if err != nil {
		return nil, err
	}
	client := bot.NewClient(cfg.RootURL, cfg.Username, cfg.Password)
	return bot.New(cfg, client, dict), nil
}

func newRunCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Poll continuously and play every turn that comes up",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBot(*cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := b.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func newPlayCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Run a single poll cycle and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBot(*cfg)
			if err != nil {
				return err
			}
			return b.PollOnce(cmd.Context())
		},
	}
}

func newBestMovesCmd(cfg **config.Config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "bestmoves game-id",
		Short: "Print the ranked candidate plays for a game without submitting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			dict, err := lexicon.Load(c.DictionaryPath)
			if err != nil {
				return err
			}
			client := bot.NewClient(c.RootURL, c.Username, c.Password)
			state, err := client.GetGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			gameBoard, err := state.GameBoard()
			if err != nil {
				return err
			}
			rack := state.PlayerRack()
			if len(rack) == 0 {
				return errors.New("rack is empty")
			}

			gen := movegen.NewGenerator(gameBoard, dict)
			plays, err := gen.GenAll(rack)
			if err != nil {
				return err
			}
			move.Sort(plays)
			if limit > 0 && len(plays) > limit {
				plays = plays[:limit]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rack: %s\n", rack.String())
			for i, play := range plays {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d %s\n", i+1, play.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum candidates to print (0 for all)")
	return cmd
}
