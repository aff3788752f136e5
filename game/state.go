package game

import (
	"fmt"
	"strings"
)

// PositionKey is a value snapshot of the board used for memoization. Equal
// boards give equal keys however they were reached.
type PositionKey [Width][Height]Cell

// GameState is the board plus the columns played so far. It is mutated in
// place by MakeMove and UndoMove.
type GameState struct {
	cells   [Width][Height]Cell // cells[col][row], row 0 at the bottom
	heights [Width]int
	history []int
}

func NewGameState() *GameState {
	return &GameState{history: make([]int, 0, Width*Height)}
}

// Replay builds a position by playing columns alternately, first player first.
func Replay(columns ...int) (*GameState, error) {
	gs := NewGameState()
	for i, col := range columns {
		if err := gs.MakeMove(col, gs.ToMove()); err != nil {
			return nil, fmt.Errorf("replaying move %d: %w", i+1, err)
		}
	}
	return gs, nil
}

func (gs *GameState) Copy() *GameState {
	history := make([]int, len(gs.history), Width*Height)
	copy(history, gs.history)
	return &GameState{
		cells:   gs.cells,
		heights: gs.heights,
		history: history,
	}
}

// LegalMoves returns the columns that are not full, in ascending order.
func (gs *GameState) LegalMoves() []int {
	moves := make([]int, 0, Width)
	for col, h := range gs.heights {
		if h < Height {
			moves = append(moves, col)
		}
	}
	return moves
}

func (gs *GameState) MakeMove(col int, p Player) error {
	if col < 0 || col >= Width {
		return fmt.Errorf("%w: column %d out of range", ErrInvalidMove, col)
	}
	if gs.heights[col] >= Height {
		return fmt.Errorf("%w: column %d is full", ErrInvalidMove, col)
	}
	gs.cells[col][gs.heights[col]] = Cell(p)
	gs.heights[col]++
	gs.history = append(gs.history, col)
	return nil
}

func (gs *GameState) UndoMove() error {
	n := len(gs.history)
	if n == 0 {
		return ErrEmptyHistory
	}
	col := gs.history[n-1]
	gs.history = gs.history[:n-1]
	gs.heights[col]--
	gs.cells[col][gs.heights[col]] = Empty
	return nil
}

func (gs *GameState) ToMove() Player {
	if len(gs.history)%2 == 0 {
		return FirstPlayer
	}
	return SecondPlayer
}

func (gs *GameState) LastMoved() Player {
	return gs.ToMove().Opponent()
}

func (gs *GameState) MoveCount() int {
	return len(gs.history)
}

// History returns a copy of the columns played so far.
func (gs *GameState) History() []int {
	history := make([]int, len(gs.history))
	copy(history, gs.history)
	return history
}

func (gs *GameState) Height(col int) int {
	return gs.heights[col]
}

func (gs *GameState) At(c Coord) Cell {
	if !c.inBounds() {
		return Empty
	}
	return gs.cells[c.Col][c.Row]
}

// LastPlaced is the cell filled by the most recent move.
func (gs *GameState) LastPlaced() (Coord, bool) {
	n := len(gs.history)
	if n == 0 {
		return Coord{}, false
	}
	col := gs.history[n-1]
	return Coord{Col: col, Row: gs.heights[col] - 1}, true
}

// IsWon reports the axis of a line of exactly four through the last placed
// piece, owned by whoever placed it. Only that piece is checked: no other
// move can have completed a line.
func (gs *GameState) IsWon() (Axis, bool) {
	if len(gs.history) < MinMovesToWin {
		return 0, false
	}
	anchor, _ := gs.LastPlaced()
	p, _ := gs.At(anchor).Owner()
	for _, axis := range Axes {
		if length, _ := gs.measure(anchor, axis, p); length == 4 {
			return axis, true
		}
	}
	return 0, false
}

func (gs *GameState) IsDrawn() bool {
	return len(gs.history) == Width*Height
}

// Outcome returns the result once the game is over.
func (gs *GameState) Outcome() (Outcome, bool) {
	if axis, won := gs.IsWon(); won {
		anchor, _ := gs.LastPlaced()
		winner, _ := gs.At(anchor).Owner()
		return Outcome{Winner: winner, Axis: axis}, true
	}
	if gs.IsDrawn() {
		return Outcome{Drawn: true}, true
	}
	return Outcome{}, false
}

func (gs *GameState) PositionKey() PositionKey {
	return gs.cells
}

// Render draws the board top row first, one glyph per cell.
func (gs *GameState) Render() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			sb.WriteString(gs.cells[col][row].glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
