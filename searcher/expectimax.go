package searcher

import (
	"game2048/experiments/metrics"
	"game2048/game"
	"math"
)

type Option func(e *Expectimax)

// Expectimax searches the game tree alternating player moves (maximized) and tile spawns
// (averaged). It owns the move tables and the evaluator, both built when it is constructed and
// never written afterwards, so one Expectimax can serve concurrent searches.
type Expectimax struct {
	tables      *game.Tables
	evaluate    game.Evaluate
	depth       int
	cutoff      float64
	sequential  bool
	withMetrics bool
}

// WithTables shares already built move tables instead of building new ones.
func WithTables(tables *game.Tables) Option {
	return func(e *Expectimax) {
		if tables != nil {
			e.tables = tables
		}
	}
}

func WithDepth(depth int) Option {
	return func(e *Expectimax) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

func WithCutoff(prob float64) Option {
	return func(e *Expectimax) {
		if prob > 0 {
			e.cutoff = prob
		}
	}
}

// WithSequential searches the root moves one after another instead of in parallel.
func WithSequential() Option {
	return func(e *Expectimax) {
		e.sequential = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Expectimax) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(e *Expectimax) {
		e.withMetrics = true
	}
}

func NewExpectimax(options ...Option) *Expectimax {
	e := &Expectimax{ // Default values
		depth:  MaxDepth,
		cutoff: ProbabilityCutoff,
	}
	for _, option := range options {
		option(e)
	}
	if e.tables == nil {
		e.tables = game.NewTables()
	}
	if e.evaluate == nil {
		e.evaluate = game.NewGradientEvaluator().Evaluate
	}
	return e
}

func (e *Expectimax) Tables() *game.Tables {
	return e.tables
}

func (e *Expectimax) LegalMoves(board game.Board) []game.PossibleMove {
	return e.tables.LegalMoves(board)
}

func (e *Expectimax) ApplyMove(board game.Board, move game.Move) game.Board {
	return e.tables.ApplyMove(board, move)
}

func (e *Expectimax) Evaluate(board game.Board) float64 {
	return e.evaluate(board)
}

// BestMove returns the root move with the greatest expected value, ties going to the earliest
// move in game.Moves order.
func (e *Expectimax) BestMove(board game.Board) Result {
	result, _ := e.Search(board)
	return result
}

// Search is BestMove plus the statistics of the search (zero unless WithMetrics was given).
func (e *Expectimax) Search(board game.Board) (Result, metrics.SearchMetric) {
	s := e.newSearch()
	s.metrics.Start(e.depth, e.cutoff, e.sequential)

	var result Result
	if e.sequential {
		result = s.expectimax(board)
	} else {
		result = s.expectimaxParallel(board)
	}
	return result, s.metrics.Complete()
}

// search carries the state of a single BestMove call.
type search struct {
	*Expectimax
	metrics metrics.Collector
}

func (e *Expectimax) newSearch() *search {
	collector := metrics.NewDummyCollector()
	if e.withMetrics {
		collector = metrics.NewCollector()
	}
	return &search{Expectimax: e, metrics: collector}
}

func (s *search) expectimax(board game.Board) Result {
	moves := s.tables.LegalMoves(board)
	if len(moves) == 0 {
		return Result{Move: game.NullMove, Value: 0}
	}

	values := make([]float64, len(moves))
	for i, pm := range moves {
		values[i] = s.chance(NewState(pm.Board))
	}
	return reduce(moves, values)
}

// reduce picks the strictly greatest value; moves come in enumeration order so the first of
// equal values wins.
func reduce(moves []game.PossibleMove, values []float64) Result {
	best := Result{Move: game.NullMove, Value: math.Inf(-1)}
	for i, pm := range moves {
		if values[i] > best.Value {
			best = Result{Move: pm.Move, Value: values[i]}
		}
	}
	return best
}
