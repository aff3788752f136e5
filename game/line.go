package game

// LineSegment is a run of same-owner cells through an anchor, with the number
// of empty in-bounds cells directly beyond either end.
type LineSegment struct {
	Cells    []Coord
	OpenEnds int
}

func (l LineSegment) Len() int {
	return len(l.Cells)
}

// Scan walks from one step past anchor in direction (dc, dr), collecting the
// cells owned by p. open is 1 when the cell ending the run is on the board and empty.
func (gs *GameState) Scan(anchor Coord, dc, dr int, p Player) (cells []Coord, open int) {
	_, open = gs.walk(anchor, dc, dr, p, func(c Coord) {
		cells = append(cells, c)
	})
	return cells, open
}

// BuildLine extends a run through anchor in both directions of axis. Cells are
// ordered from the far backward end to the far forward end.
func (gs *GameState) BuildLine(anchor Coord, axis Axis, p Player) LineSegment {
	dc, dr := axis.Step()
	forward, openF := gs.Scan(anchor, dc, dr, p)
	backward, openB := gs.Scan(anchor, -dc, -dr, p)

	cells := make([]Coord, 0, len(backward)+1+len(forward))
	for i := len(backward) - 1; i >= 0; i-- {
		cells = append(cells, backward[i])
	}
	cells = append(cells, anchor)
	cells = append(cells, forward...)

	return LineSegment{Cells: cells, OpenEnds: openF + openB}
}

// measure is BuildLine without the allocation: run length and open ends only.
func (gs *GameState) measure(anchor Coord, axis Axis, p Player) (length, open int) {
	dc, dr := axis.Step()
	nF, openF := gs.walk(anchor, dc, dr, p, nil)
	nB, openB := gs.walk(anchor, -dc, -dr, p, nil)
	return 1 + nF + nB, openF + openB
}

func (gs *GameState) walk(anchor Coord, dc, dr int, p Player, visit func(Coord)) (n, open int) {
	c := anchor.step(dc, dr)
	for c.inBounds() && gs.cells[c.Col][c.Row] == Cell(p) {
		if visit != nil {
			visit(c)
		}
		n++
		c = c.step(dc, dr)
	}
	if c.inBounds() && gs.cells[c.Col][c.Row] == Empty {
		open = 1
	}
	return n, open
}
