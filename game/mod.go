package game

import "errors"

const (
	Width  = 7
	Height = 6

	// No line of four exists before the first player's fourth piece.
	MinMovesToWin = 7
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrEmptyHistory = errors.New("empty move history")
)

// Player is the side owning a piece or having the move.
type Player int8

const (
	FirstPlayer  Player = 1
	SecondPlayer Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

// Sign is +1 for the first player and -1 for the second, the polarity of every score.
func (p Player) Sign() int {
	return int(p)
}

// Glyph is the character used for the player's pieces when rendering.
func (p Player) Glyph() string {
	if p == FirstPlayer {
		return "x"
	}
	return "O"
}

func (p Player) String() string {
	if p == FirstPlayer {
		return "first"
	}
	return "second"
}

// Cell is the content of a board square.
type Cell int8

const Empty Cell = 0

func (c Cell) Owner() (Player, bool) {
	if c == Empty {
		return 0, false
	}
	return Player(c), true
}

func (c Cell) glyph() string {
	if p, ok := c.Owner(); ok {
		return p.Glyph()
	}
	return "*"
}

type Coord struct {
	Col int
	Row int
}

func (c Coord) step(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Coord) inBounds() bool {
	return 0 <= c.Col && c.Col < Width && 0 <= c.Row && c.Row < Height
}

// Axis is one of the four line directions along which four in a row counts.
type Axis int

const (
	Horizontal Axis = iota
	DiagonalA
	DiagonalB
	Vertical
)

// Axes lists the axes in the order they are checked.
var Axes = [...]Axis{Horizontal, DiagonalA, DiagonalB, Vertical}

var axisSteps = [...][2]int{
	Horizontal: {1, 0},
	DiagonalA:  {1, 1},
	DiagonalB:  {1, -1},
	Vertical:   {0, 1},
}

// Step returns the forward column and row deltas of the axis.
func (a Axis) Step() (dc, dr int) {
	return axisSteps[a][0], axisSteps[a][1]
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case DiagonalA:
		return "diagonal-a"
	case DiagonalB:
		return "diagonal-b"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// Outcome summarises a finished game.
type Outcome struct {
	Winner Player
	Axis   Axis
	Drawn  bool
}
