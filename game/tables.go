package game

// Tables holds every slide outcome for every row pattern, pre-shifted into place so that a move is
// four lookups OR-ed together. Built once by NewTables and read-only afterwards, so a single
// *Tables can be shared by any number of goroutines.
type Tables struct {
	left     [RowN][UniqueRows]Board
	right    [RowN][UniqueRows]Board
	up       [ColN][UniqueRows]Board
	down     [ColN][UniqueRows]Board
	rowToCol [ColN][UniqueRows]Board
}

// NewTables precomputes all move tables. It allocates roughly 10MB.
func NewTables() *Tables {
	t := new(Tables)
	for i := 0; i < UniqueRows; i++ {
		row := uint16(i)
		left := slideLeft(row)
		right := slideRight(row)

		for r := Row(0); r < RowN; r++ {
			t.left[r][row] = Board(left) << RowOffset[r]
			t.right[r][row] = Board(right) << RowOffset[r]
		}

		// Up and down reuse the row slides on the transposed pattern
		for c := Col(0); c < ColN; c++ {
			t.rowToCol[c][row] = rowToCol(row, c)
			t.up[c][row] = rowToCol(left, c)
			t.down[c][row] = rowToCol(right, c)
		}
	}
	return t
}

// RowToCol places a row pattern into column c, nibble r going to row r.
func (t *Tables) RowToCol(row uint16, c Col) Board {
	return t.rowToCol[c][row]
}

func rowToCol(row uint16, c Col) Board {
	x := Board(row)
	x = (x | x<<12 | x<<24 | x<<36) & colMask
	return x << (4 * uint(c))
}

// lineOf splits a row pattern into its cells, leading edge (nibble 3) first.
func lineOf(row uint16) [ColN]uint8 {
	return [ColN]uint8{
		uint8(row>>12) & 0xF,
		uint8(row>>8) & 0xF,
		uint8(row>>4) & 0xF,
		uint8(row) & 0xF,
	}
}

func packLine(line [ColN]uint8) uint16 {
	return uint16(line[0])<<12 | uint16(line[1])<<8 | uint16(line[2])<<4 | uint16(line[3])
}

// slideLine compacts the tiles toward line[0], merging each resulting cell at most once.
// Tiles already at MaxExponent never merge.
func slideLine(line [ColN]uint8) [ColN]uint8 {
	var out [ColN]uint8
	n := 0
	merged := false
	for _, e := range line {
		if e == 0 {
			continue
		}
		if n > 0 && out[n-1] == e && !merged && e < MaxExponent {
			out[n-1]++
			merged = true
			continue
		}
		out[n] = e
		n++
		merged = false
	}
	return out
}

func slideLeft(row uint16) uint16 {
	return packLine(slideLine(lineOf(row)))
}

func slideRight(row uint16) uint16 {
	return reverseRow(slideLeft(reverseRow(row)))
}

func reverseRow(row uint16) uint16 {
	return (row >> 12) | ((row >> 4) & 0x00F0) | ((row << 4) & 0x0F00) | (row << 12)
}
