package searcher

import "game2048/game"

const maxExpansions = 2 * game.SquareN

// Expand lists every tile insertion into b: a 2 and a 4 for each empty square, in square order.
func Expand(b game.Board) []Expansion {
	var buf [maxExpansions]Expansion
	n := expandInto(b, &buf)
	expanded := make([]Expansion, n)
	copy(expanded, buf[:n])
	return expanded
}

func expandInto(b game.Board, buf *[maxExpansions]Expansion) int {
	n := 0
	for s := game.Square(0); s < game.SquareN; s++ {
		if b.Exponent(s) != 0 {
			continue
		}
		buf[n] = Expansion{Board: b | 1<<game.SquareOffset[s], Prob: game.TwoProb}
		buf[n+1] = Expansion{Board: b | 2<<game.SquareOffset[s], Prob: game.FourProb}
		n += 2
	}
	return n
}

// chance values the board left by a player move: the probability weighted average over every
// tile insertion. The weights are divided by the number of empty squares so they sum to 1, and
// each child sits one ply deeper than the decision node above.
func (s *search) chance(st State) float64 {
	s.metrics.AddChanceNode()

	var buf [maxExpansions]Expansion
	n := expandInto(st.Board, &buf)
	if n == 0 {
		return s.leaf(st.Board)
	}

	empty := float64(n / 2)
	value := 0.0
	for i := 0; i < n; i += 2 {
		two, four := buf[i], buf[i+1]
		prob2 := two.Prob / empty
		prob4 := four.Prob / empty
		value += prob2*s.decision(State{Board: two.Board, Depth: st.Depth + 1, Prob: st.Prob * prob2}) +
			prob4*s.decision(State{Board: four.Board, Depth: st.Depth + 1, Prob: st.Prob * prob4})
	}
	return value
}
