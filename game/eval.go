package game

// DiagLinGrad weights each square by its distance from the Row0 Col0 corner (bottom-right as
// displayed), falling linearly along the diagonals.
var DiagLinGrad = [SquareN]float64{
	1.00, 0.83, 0.66, 0.50,
	0.84, 0.67, 0.51, 0.33,
	0.68, 0.52, 0.34, 0.17,
	0.53, 0.35, 0.18, 0.00,
}

// GradientEvaluator scores a board as the sum of its tiles weighted by the squared gradient,
// with a small bonus for empty squares. Each row's contribution is precomputed.
type GradientEvaluator struct {
	rows [RowN][UniqueRows]float64
}

func NewGradientEvaluator() *GradientEvaluator {
	e := new(GradientEvaluator)
	for i := 0; i < UniqueRows; i++ {
		row := uint16(i)
		openness := 1.0 + float64(emptyCells(row))/100

		for r := Row(0); r < RowN; r++ {
			value := 0.0
			for c := Col(0); c < ColN; c++ {
				w := DiagLinGrad[MakeSquare(r, c)]
				tile := ExponentToValue(uint8(row>>(4*uint(c))) & 0xF)
				value += w * w * float64(tile) * openness
			}
			e.rows[r][row] = value
		}
	}
	return e
}

// Evaluate implements Evaluate.
func (e *GradientEvaluator) Evaluate(b Board) float64 {
	return e.rows[0][b.Row(0)] + e.rows[1][b.Row(1)] + e.rows[2][b.Row(2)] + e.rows[3][b.Row(3)]
}

func emptyCells(row uint16) int {
	count := 0
	for c := 0; c < ColN; c++ {
		if (row>>(4*c))&0xF == 0 {
			count++
		}
	}
	return count
}
