package game

/*
Board layout:

	Col3 Col2 Col1 Col0
	 X    X    X    X   Row3
	 X    X    X    X   Row2
	 X    X    X    X   Row1
	 X    X    X    X   Row0

X is a 4 bit exponent (0-15), a row is 16 bits, and Row0 Col0 sits in the lowest nibble.
Read as a hex literal, a board lists its cells top-left first.
*/
type Board uint64

type Row int
type Col int
type Square int

const (
	RowN    = 4
	ColN    = 4
	SquareN = RowN * ColN

	UniqueRows = 1 << 16

	MaxExponent = 15
)

// RowOffset is the bit position of each row inside a Board.
var RowOffset = [RowN]uint{0, 16, 32, 48}

// SquareOffset is the bit position of each square inside a Board.
var SquareOffset = [SquareN]uint{
	0, 4, 8, 12,
	16, 20, 24, 28,
	32, 36, 40, 44,
	48, 52, 56, 60,
}

const (
	rowMask    Board = 0xFFFF
	squareMask Board = 0xF
	colMask    Board = 0x000F000F000F000F
)

func MakeSquare(r Row, c Col) Square {
	return Square(int(r)*ColN + int(c))
}

// PossibleMove pairs a move with the board it leads to.
type PossibleMove struct {
	Move  Move
	Board Board
}

// Evaluate scores a board; higher is better for the player.
type Evaluate func(Board) float64
