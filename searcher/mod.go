package searcher

import (
	"errors"
	"fmt"

	"connect4/experiments/metrics"
	"connect4/game"
)

// Bound is the score of a won position. It exceeds any value Evaluate can
// produce, so a forced win always outranks a heuristic advantage.
const Bound = 10000

// Strategy chooses the column to play for the side to move. The state is
// borrowed: it may be mutated during the search but is restored on return.
type Strategy interface {
	Name() string
	Pick(state *game.GameState) int
	// FindMove is Pick plus the metrics collected during the search.
	FindMove(state *game.GameState) (int, metrics.SearchMetric)
}

type Kind string

const (
	RandomKind    Kind = "random"
	MinMaxKind    Kind = "minmax"
	AlphaBetaKind Kind = "alphabeta"
)

var ErrUnknownKind = errors.New("unknown strategy")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case RandomKind, MinMaxKind, AlphaBetaKind:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New builds a strategy of the given kind.
func New(kind Kind, options ...Option) (Strategy, error) {
	switch kind {
	case RandomKind:
		return NewRandom(options...), nil
	case MinMaxKind:
		return NewMinMax(options...), nil
	case AlphaBetaKind:
		return NewAlphaBeta(options...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// terminalScore scores finished games: Bound signed by the winner, 0 for a draw.
func terminalScore(state *game.GameState) (int, bool) {
	outcome, over := state.Outcome()
	switch {
	case !over:
		return 0, false
	case outcome.Drawn:
		return 0, true
	}
	return outcome.Winner.Sign() * Bound, true
}

// descend plays col for the side to move, scores the resulting position with
// child and takes the move back on every exit path, panics included.
func descend(state *game.GameState, col int, child func() int) int {
	if err := state.MakeMove(col, state.ToMove()); err != nil {
		panic(fmt.Sprintf("searching column %d: %v", col, err))
	}
	defer undo(state)
	return child()
}

func undo(state *game.GameState) {
	if err := state.UndoMove(); err != nil {
		panic(fmt.Sprintf("unmatched undo: %v", err))
	}
}
