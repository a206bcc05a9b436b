package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// Grid holds the 16 exponents of a board in row-major order, top-left first.
type Grid [SquareN]uint8

// gridSquare maps a grid index onto the square that stores it.
func gridSquare(i int) Square {
	return Square(SquareN - 1 - i)
}

// Encode packs an exponent grid into a Board. Entries must be in [0, 15].
func Encode(g Grid) Board {
	var b Board
	for i, e := range g {
		b |= Board(e&0xF) << SquareOffset[gridSquare(i)]
	}
	return b
}

// Decode unpacks a Board into its exponent grid.
func Decode(b Board) Grid {
	var g Grid
	for i := range g {
		g[i] = b.Exponent(gridSquare(i))
	}
	return g
}

// ExponentToValue converts a stored exponent to a tile value; 0 stays 0 (empty).
func ExponentToValue(e uint8) int {
	if e == 0 {
		return 0
	}
	return 1 << e
}

// ValueToExponent converts a tile value to its exponent. Values must be 0 or a power of two
// between 2 and 32768.
func ValueToExponent(v int) (uint8, error) {
	if v == 0 {
		return 0, nil
	}
	if v < 2 || v&(v-1) != 0 {
		return 0, fmt.Errorf("tile value %d is not a power of two", v)
	}
	e := bits.TrailingZeros(uint(v))
	if e > MaxExponent {
		return 0, fmt.Errorf("tile value %d exceeds %d", v, 1<<MaxExponent)
	}
	return uint8(e), nil
}

// ParseValues builds a Board from 16 tile values listed top-left first.
func ParseValues(values []int) (Board, error) {
	if len(values) != SquareN {
		return 0, fmt.Errorf("expected %d tile values, got %d", SquareN, len(values))
	}
	var g Grid
	for i, v := range values {
		e, err := ValueToExponent(v)
		if err != nil {
			return 0, fmt.Errorf("cell %d: %w", i, err)
		}
		g[i] = e
	}
	return Encode(g), nil
}

// Values returns the tile values of the board, top-left first.
func (b Board) Values() []int {
	g := Decode(b)
	values := make([]int, SquareN)
	for i, e := range g {
		values[i] = ExponentToValue(e)
	}
	return values
}

func (b Board) Row(r Row) uint16 {
	return uint16((b >> RowOffset[r]) & rowMask)
}

// Col gathers a column into row layout: the square in row r lands in nibble r.
func (b Board) Col(c Col) uint16 {
	x := (b >> (4 * uint(c))) & colMask
	return uint16((x | x>>12 | x>>24 | x>>36) & rowMask)
}

func (b Board) Exponent(s Square) uint8 {
	return uint8((b >> SquareOffset[s]) & squareMask)
}

func (b Board) Value(s Square) int {
	return ExponentToValue(b.Exponent(s))
}

func (b Board) EmptySquares() int {
	count := 0
	for s := Square(0); s < SquareN; s++ {
		if b.Exponent(s) == 0 {
			count++
		}
	}
	return count
}

// MaxValue returns the largest tile value on the board.
func (b Board) MaxValue() int {
	var maxExp uint8
	for s := Square(0); s < SquareN; s++ {
		maxExp = max(maxExp, b.Exponent(s))
	}
	return ExponentToValue(maxExp)
}

// Score estimates the game score from the tiles on the board, assuming every tile grew out of 2s.
func (b Board) Score() int {
	score := 0
	for s := Square(0); s < SquareN; s++ {
		if e := int(b.Exponent(s)); e >= 2 {
			score += (e - 1) * (1 << e)
		}
	}
	return score
}

func (b Board) String() string {
	const rowDelim = "|-------+-------+-------+-------|\n"

	var sb strings.Builder
	sb.WriteString(rowDelim)
	for r := Row(RowN - 1); r >= 0; r-- {
		sb.WriteString("| ")
		for c := Col(ColN - 1); c >= 0; c-- {
			fmt.Fprintf(&sb, "%5d | ", b.Value(MakeSquare(r, c)))
		}
		sb.WriteString("\n")
		sb.WriteString(rowDelim)
	}
	return sb.String()
}
