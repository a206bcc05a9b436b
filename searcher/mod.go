package searcher

import "game2048/game"

// Search bounds
const MaxDepth = 4
const ProbabilityCutoff = 0.0001

// State is a search node: a board, the player moves already explored above it and the
// probability of reaching it from the root.
type State struct {
	Board game.Board
	Depth int
	Prob  float64
}

func NewState(board game.Board) State {
	return State{Board: board, Depth: 0, Prob: 1}
}

// Result is the chosen root move and its expected value. Move is game.NullMove when the board
// has no legal move.
type Result struct {
	Move  game.Move
	Value float64
}

// Expansion is one tile insertion of a chance node with its unnormalized probability.
type Expansion struct {
	Board game.Board
	Prob  float64
}

type Searcher interface {
	BestMove(board game.Board) Result
}
