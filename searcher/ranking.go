package searcher

import (
	"cmp"

	"connect4/game"

	"golang.org/x/exp/slices"
)

type scoredMove struct {
	score  int
	column int
}

// rank orders moves best first for the side to move: ascending scores,
// reversed when the first player (the maximizer) is to move.
func rank(moves []scoredMove, toMove game.Player) {
	slices.SortStableFunc(moves, func(a, b scoredMove) int {
		return cmp.Compare(a.score, b.score)
	})
	if toMove == game.FirstPlayer {
		slices.Reverse(moves)
	}
}

func best(moves []scoredMove) int {
	if len(moves) == 0 {
		panic("no legal moves to pick from")
	}
	return moves[0].column
}
