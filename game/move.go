package game

import "fmt"

// Move is a slide direction. The order of the constants is the tie-break order of the search.
type Move int

const (
	Left Move = iota
	Up
	Down
	Right

	NullMove
)

const MoveN = 4

// Moves lists the directions in enumeration order.
var Moves = [MoveN]Move{Left, Up, Down, Right}

func (m Move) String() string {
	switch m {
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return "Invalid Move"
	}
}

// ApplyMove slides the whole board in direction m.
func (t *Tables) ApplyMove(b Board, m Move) Board {
	switch m {
	case Left:
		return t.left[0][b.Row(0)] | t.left[1][b.Row(1)] | t.left[2][b.Row(2)] | t.left[3][b.Row(3)]
	case Right:
		return t.right[0][b.Row(0)] | t.right[1][b.Row(1)] | t.right[2][b.Row(2)] | t.right[3][b.Row(3)]
	case Up:
		return t.up[0][b.Col(0)] | t.up[1][b.Col(1)] | t.up[2][b.Col(2)] | t.up[3][b.Col(3)]
	case Down:
		return t.down[0][b.Col(0)] | t.down[1][b.Col(1)] | t.down[2][b.Col(2)] | t.down[3][b.Col(3)]
	default:
		panic(fmt.Sprintf("cannot apply move %d", int(m)))
	}
}

// LegalMoves returns the moves that change the board, in enumeration order.
// An empty result means the game is over.
func (t *Tables) LegalMoves(b Board) []PossibleMove {
	moves := make([]PossibleMove, 0, MoveN)
	for _, m := range Moves {
		if next := t.ApplyMove(b, m); next != b {
			moves = append(moves, PossibleMove{Move: m, Board: next})
		}
	}
	return moves
}
