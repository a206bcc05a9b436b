package engine

import (
	"math"
	"time"

	"game2048/experiments/metrics"
	"game2048/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Local struct {
	Board    game.Board
	Seed     uint64
	MaxMoves int
	tables   *game.Tables
	agent    Agent
	rng      *rand.Rand
}

// LocalEngine sets up a game on an empty board. A zero seed draws a random one so that every game
// can still be replayed from its recorded seed.
func LocalEngine(tables *game.Tables, agent Agent, seed uint64) *Local {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return &Local{
		Seed:     seed,
		MaxMoves: MaxMoves,
		tables:   tables,
		agent:    agent,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Start places the two opening tiles.
func (e *Local) Start() {
	e.Board = game.PlaceRandom(game.PlaceRandom(0, e.rng), e.rng)
}

// Step asks the agent for a move, plays it and spawns a tile. It reports false when the game is
// over, in which case the board is left untouched.
func (e *Local) Step() (metrics.MoveMetric, bool) {
	result, searchMetric := e.agent.FindMove(e.Board)
	if result.Move == game.NullMove {
		return metrics.MoveMetric{}, false
	}

	next := e.tables.ApplyMove(e.Board, result.Move)
	if next == e.Board {
		// The agent returned a move that changes nothing, which would loop forever
		log.Warn().Msgf("agent chose illegal move %s", result.Move)
		return metrics.MoveMetric{}, false
	}
	e.Board = game.PlaceRandom(next, e.rng)

	return metrics.MoveMetric{
		Move:         result.Move.String(),
		Value:        result.Value,
		MaxTile:      e.Board.MaxValue(),
		SearchMetric: searchMetric,
	}, true
}

// Run executes the entire game loop from an empty board.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Seed:      e.Seed,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	e.Start()
	log.Info().Msgf("game %d starting", e.Seed)

	for step := 1; step <= e.MaxMoves; step++ {
		moveMetric, ok := e.Step()
		if !ok {
			break
		}
		moveMetric.Step = step
		moveMetrics = append(moveMetrics, moveMetric)
		log.Debug().
			Int("step", step).
			Str("move", moveMetric.Move).
			Float64("value", moveMetric.Value).
			Int("max_tile", moveMetric.MaxTile).
			Dur("duration", moveMetric.Duration).
			Msg("move played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.MaxTile = e.Board.MaxValue()
	gameMetric.Score = e.Board.Score()
	gameMetric.FinalBoard = uint64(e.Board)

	log.Info().
		Uint64("seed", e.Seed).
		Int("moves", gameMetric.TotalMoves).
		Int("max_tile", gameMetric.MaxTile).
		Int("score", gameMetric.Score).
		Dur("duration", gameMetric.Duration).
		Msg("game over")

	return gameMetric, moveMetrics
}
