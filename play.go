package main

import (
	"fmt"
	"strconv"
	"strings"

	"game2048/engine"
	"game2048/game"
	"game2048/meta"
	"game2048/searcher"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDepth      int
	flagCutoff     float64
	flagSequential bool
	flagGames      int
	flagMaxMoves   int
	flagBoard      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play games with the expectimax agent",
	Long: `Play games from an empty board until no move is left, or print the best move for the
board given with --board as 16 comma separated tile values, top-left first.

Examples:
  2048 play --games 5 --depth 3
  2048 play --board 2,0,0,0,0,4,0,0,0,0,8,0,0,0,0,16`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagDepth, "depth", searcher.MaxDepth, "Search depth in plies")
	playCmd.Flags().Float64Var(&flagCutoff, "cutoff", searcher.ProbabilityCutoff, "Probability below which a node is evaluated")
	playCmd.Flags().BoolVar(&flagSequential, "sequential", false, "Search root moves one after another")
	playCmd.Flags().IntVar(&flagGames, "games", meta.NUM_GAMES, "Number of games to play")
	playCmd.Flags().IntVar(&flagMaxMoves, "max-moves", meta.MAX_MOVES, "Move cap per game")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Board to search instead of playing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	tables := game.NewTables()
	options := []searcher.Option{
		searcher.WithTables(tables),
		searcher.WithDepth(flagDepth),
		searcher.WithCutoff(flagCutoff),
		searcher.WithMetrics(),
	}
	if flagSequential {
		options = append(options, searcher.WithSequential())
	}
	expectimax := searcher.NewExpectimax(options...)

	if flagBoard != "" {
		board, err := parseBoard(flagBoard)
		if err != nil {
			return err
		}
		result, metric := expectimax.Search(board)
		fmt.Print(board)
		fmt.Printf("best move: %s (value %.2f, %d evaluations in %s)\n",
			result.Move, result.Value, metric.Evaluations, metric.Duration)
		return nil
	}

	agent := &engine.ExpectimaxAdapter{Searcher: expectimax}
	for i := 0; i < flagGames; i++ {
		seed := flagSeed
		if seed != 0 {
			seed += uint64(i)
		}
		e := engine.LocalEngine(tables, agent, seed)
		e.MaxMoves = flagMaxMoves

		gameMetric, _ := e.Run()
		fmt.Print(e.Board)
		log.Info().Msgf("game %d of %d: %d moves, max tile %d, score %d",
			i+1, flagGames, gameMetric.TotalMoves, gameMetric.MaxTile, gameMetric.Score)
	}
	return nil
}

func parseBoard(s string) (game.Board, error) {
	fields := strings.Split(s, ",")
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, fmt.Errorf("invalid board cell %d: %w", i, err)
		}
		values[i] = v
	}
	board, err := game.ParseValues(values)
	if err != nil {
		return 0, fmt.Errorf("invalid board: %w", err)
	}
	return board, nil
}
