package engine

import (
	"game2048/experiments/metrics"
	"game2048/game"
	"game2048/searcher"
)

const MaxMoves = 100000

type Engine interface {
	// Run plays a game till no legal move is left or the move cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Agent picks a move for the board it is given. It returns game.NullMove when no move is legal.
type Agent interface {
	FindMove(board game.Board) (searcher.Result, metrics.SearchMetric)
}

// ExpectimaxAdapter plugs an expectimax searcher into the play loop.
type ExpectimaxAdapter struct {
	Searcher *searcher.Expectimax
}

func (ea *ExpectimaxAdapter) FindMove(board game.Board) (searcher.Result, metrics.SearchMetric) {
	return ea.Searcher.Search(board)
}
