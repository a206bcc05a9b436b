package game

import "golang.org/x/exp/rand"

// Spawn probabilities of a new tile.
const (
	TwoProb  = 0.9
	FourProb = 0.1
)

// PlaceRandom drops a 2 (or a 4, with probability FourProb) on a uniformly chosen empty square.
// A full board is returned unchanged.
func PlaceRandom(b Board, rng *rand.Rand) Board {
	empty := make([]Square, 0, SquareN)
	for s := Square(0); s < SquareN; s++ {
		if b.Exponent(s) == 0 {
			empty = append(empty, s)
		}
	}
	if len(empty) == 0 {
		return b
	}

	s := empty[rng.Intn(len(empty))]
	tile := Board(1)
	if rng.Float64() < FourProb {
		tile = 2
	}
	return b | tile<<SquareOffset[s]
}
