package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var evaluator = NewGradientEvaluator()

// slowEvaluate scores the board square by square.
func slowEvaluate(b Board) float64 {
	sum := 0.0
	for r := Row(0); r < RowN; r++ {
		openness := 1.0 + float64(emptyCells(b.Row(r)))/100
		for c := Col(0); c < ColN; c++ {
			s := MakeSquare(r, c)
			sum += DiagLinGrad[s] * DiagLinGrad[s] * float64(b.Value(s)) * openness
		}
	}
	return sum
}

func TestGradientEvaluator(t *testing.T) {
	t.Run("scoring an empty board", func(t *testing.T) {
		require.Equal(t, 0.0, evaluator.Evaluate(0))
	})

	t.Run("scoring a tile in the heavy corner", func(t *testing.T) {
		// Grid cell 15 is square 0, weight 1.00, with 3 empty squares in its row
		got := evaluator.Evaluate(Encode(Grid{15: 1}))
		require.InDelta(t, 2*1.03, got, 1e-9)
	})

	t.Run("ignoring a tile in the light corner", func(t *testing.T) {
		require.Equal(t, 0.0, evaluator.Evaluate(Encode(Grid{0: 11})))
	})

	t.Run("rewarding empty squares", func(t *testing.T) {
		crowded := Encode(Grid{12: 1, 13: 1, 14: 1, 15: 3})
		sparse := Encode(Grid{15: 3})
		require.InDelta(t, 8*1.03, evaluator.Evaluate(sparse), 1e-9)
		require.InDelta(t, (8 + 2*0.83*0.83 + 2*0.66*0.66 + 2*0.5*0.5), evaluator.Evaluate(crowded), 1e-9)
	})

	t.Run("matching a square-by-square evaluation", func(t *testing.T) {
		rng := rand.New(rand.NewSource(6))
		for i := 0; i < 5000; i++ {
			b := Board(rng.Uint64())
			require.InDelta(t, slowEvaluate(b), evaluator.Evaluate(b), 1e-6)
		}
	})

	t.Run("being pure", func(t *testing.T) {
		b := Board(0x0123456789ABCDEF)
		require.Equal(t, evaluator.Evaluate(b), evaluator.Evaluate(b))
	})
}
