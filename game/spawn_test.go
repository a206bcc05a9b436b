package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPlaceRandom(t *testing.T) {
	t.Run("leaving a full board unchanged", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		b := Board(0x1212212112122121)
		require.Equal(t, b, PlaceRandom(b, rng))
	})

	t.Run("adding one small tile to an empty square", func(t *testing.T) {
		rng := rand.New(rand.NewSource(8))
		for i := 0; i < 1000; i++ {
			b := randomSparseBoard(rng)
			if b.EmptySquares() == 0 {
				continue
			}
			next := PlaceRandom(b, rng)
			require.Equal(t, b.EmptySquares()-1, next.EmptySquares(), "Exactly one square should fill")
			require.Equal(t, b, next&b, "Existing tiles should stay put")

			added := next ^ b
			for s := Square(0); s < SquareN; s++ {
				if e := added.Exponent(s); e != 0 {
					require.Zero(t, b.Exponent(s), "Tile should land on an empty square")
					require.Contains(t, []uint8{1, 2}, e, "Tile should be a 2 or a 4")
				}
			}
		}
	})

	t.Run("spawning 4s about a tenth of the time", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		fours := 0
		const draws = 20000
		for i := 0; i < draws; i++ {
			if PlaceRandom(0, rng).MaxValue() == 4 {
				fours++
			}
		}
		require.InDelta(t, FourProb, float64(fours)/draws, 0.02)
	})
}
