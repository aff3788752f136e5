package game

// Evaluate scores a non-terminal position from the first player's point of
// view: every run through every occupied cell counts its length times its
// open ends, added for the first player and subtracted for the second.
func (gs *GameState) Evaluate() int {
	score := 0
	for col := 0; col < Width; col++ {
		for row := 0; row < gs.heights[col]; row++ {
			p, _ := gs.cells[col][row].Owner()
			anchor := Coord{Col: col, Row: row}
			sum := 0
			for _, axis := range Axes {
				length, open := gs.measure(anchor, axis, p)
				sum += length * open
			}
			score += p.Sign() * sum
		}
	}
	return score
}

// Mirror returns the position with every piece's owner swapped. The history is
// kept so the side to move is unchanged.
func (gs *GameState) Mirror() *GameState {
	m := gs.Copy()
	for col := 0; col < Width; col++ {
		for row := 0; row < m.heights[col]; row++ {
			m.cells[col][row] = -m.cells[col][row]
		}
	}
	return m
}
