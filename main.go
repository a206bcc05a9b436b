// 2048 is an expectimax agent for the 2048 sliding tile game.
//
// Usage:
//
//	2048 play                 - Play games with the expectimax agent
//	2048 play --board <cells> - Print the best move for a board
//	2048 experiment [config]  - Run a batch experiment and store its records
//	2048 selftest             - Check the move tables and time the move engine
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagLogLevel string
	flagSeed     uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "2048",
	Short:         "Expectimax agent for the 2048 game",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(experimentCmd)
	rootCmd.AddCommand(selftestCmd)
}
