package main

import (
	"fmt"
	"math"
	"time"

	"game2048/game"
	"game2048/meta"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the move tables and time the move engine",
	RunE:  runSelftest,
}

func runSelftest(cmd *cobra.Command, args []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	tables := game.NewTables()
	log.Info().Dur("duration", time.Since(start)).Msg("built move tables")

	if err := tables.SelfCheck(rng, meta.SELFTEST_SAMPLES); err != nil {
		return fmt.Errorf("self check failed with seed %d: %w", seed, err)
	}
	log.Info().Uint64("seed", seed).Int("samples", meta.SELFTEST_SAMPLES).Msg("move tables are consistent")

	board := game.Board(rng.Uint64())
	start = time.Now()
	for i := 0; i < meta.TIMING_ITERATIONS; i++ {
		board = tables.ApplyMove(tables.ApplyMove(board, game.Left), game.Right)
	}
	elapsed := time.Since(start)
	log.Info().
		Int("moves", 2*meta.TIMING_ITERATIONS).
		Dur("duration", elapsed).
		Float64("moves_per_sec", 2*meta.TIMING_ITERATIONS/elapsed.Seconds()).
		Str("board", fmt.Sprintf("%#016x", uint64(board))).
		Msg("timed left/right moves")
	return nil
}
