package searcher

import (
	"game2048/game"

	"golang.org/x/sync/errgroup"
)

// expectimaxParallel searches each legal root move in its own goroutine. Every task writes only
// its own slot of values; the reduction runs here once all tasks are done.
func (s *search) expectimaxParallel(board game.Board) Result {
	moves := s.tables.LegalMoves(board)
	if len(moves) == 0 {
		return Result{Move: game.NullMove, Value: 0}
	}

	values := make([]float64, len(moves))
	var g errgroup.Group
	for i, pm := range moves {
		i, pm := i, pm // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			values[i] = s.chance(NewState(pm.Board))
			return nil
		})
	}
	_ = g.Wait() // tasks never fail

	return reduce(moves, values)
}
