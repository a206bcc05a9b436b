package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Mirror flips the board horizontally.
func Mirror(b Board) Board {
	var out Board
	for r := Row(0); r < RowN; r++ {
		out |= Board(reverseRow(b.Row(r))) << RowOffset[r]
	}
	return out
}

// SelfCheck cross-checks the codec and the move tables on samples random boards drawn from rng.
// It returns the first inconsistency found.
func (t *Tables) SelfCheck(rng *rand.Rand, samples int) error {
	for i := 0; i < samples; i++ {
		row := uint16(rng.Intn(UniqueRows))
		for c := Col(0); c < ColN; c++ {
			if got := t.RowToCol(row, c).Col(c); got != row {
				return fmt.Errorf("row %#04x placed in column %d reads back as %#04x", row, c, got)
			}
		}

		b := Board(rng.Uint64())
		if got := Encode(Decode(b)); got != b {
			return fmt.Errorf("board %#016x decodes and encodes to %#016x", uint64(b), uint64(got))
		}
		if left, right := t.ApplyMove(b, Left), t.ApplyMove(Mirror(b), Right); left != Mirror(right) {
			return fmt.Errorf("board %#016x: left %#016x is not the mirror of right %#016x",
				uint64(b), uint64(left), uint64(right))
		}
	}
	return nil
}
