package searcher

import "game2048/game"

// decision values a position where the player moves: the best chance value over the legal moves.
// Hitting the depth bound or falling under the probability cutoff returns the heuristic instead.
func (s *search) decision(st State) float64 {
	if st.Depth >= s.depth {
		s.metrics.AddDepthCutoff()
		return s.leaf(st.Board)
	}
	if st.Prob < s.cutoff {
		s.metrics.AddProbabilityCutoff()
		return s.leaf(st.Board)
	}

	best := 0.0
	moved := false
	for _, m := range game.Moves {
		next := s.tables.ApplyMove(st.Board, m)
		if next == st.Board {
			continue
		}
		value := s.chance(State{Board: next, Depth: st.Depth, Prob: st.Prob})
		if !moved || value > best {
			best = value
			moved = true
		}
	}

	if !moved { // Game over
		s.metrics.AddTerminal()
		return 0
	}
	return best
}

func (s *search) leaf(board game.Board) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(board)
}
