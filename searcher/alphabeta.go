package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type boundType uint8

const (
	exact boundType = iota
	lower           // the true score is at least value
	upper           // the true score is at most value
)

type windowEntry struct {
	value int
	bound boundType
}

// AlphaBeta is minimax with alpha-beta pruning over a memo of scalar scores.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

func (a *AlphaBeta) Name() string {
	return string(AlphaBetaKind)
}

func (a *AlphaBeta) Pick(state *game.GameState) int {
	col, _ := a.FindMove(state)
	return col
}

func (a *AlphaBeta) FindMove(state *game.GameState) (int, metrics.SearchMetric) {
	a.metrics.Start(a.Name(), a.depth, a.policy.String())
	moves := a.scoreMoves(state)
	return best(moves), a.metrics.Complete()
}

// scoreMoves searches every root move with the full window, sharing one memo.
func (a *AlphaBeta) scoreMoves(state *game.GameState) []scoredMove {
	memo := newMemo[windowEntry](a.policy)
	legal := state.LegalMoves()
	moves := make([]scoredMove, 0, len(legal))
	for _, col := range legal {
		score := descend(state, col, func() int {
			return a.search(state, a.depth-1, -Bound, Bound, memo)
		})
		moves = append(moves, scoredMove{score: score, column: col})
	}
	rank(moves, state.ToMove())
	a.metrics.SetCacheEntries(memo.len())
	return moves
}

func (a *AlphaBeta) search(state *game.GameState, depth, alpha, beta int, memo *memo[windowEntry]) int {
	a.metrics.AddNode()

	if score, over := terminalScore(state); over {
		return score
	}
	if e, ok := memo.lookup(state, depth); ok {
		if v, hit := a.reuse(e, &alpha, &beta); hit {
			a.metrics.AddCacheHit()
			return v
		}
	}
	if depth == 0 {
		v := state.Evaluate()
		memo.store(state, depth, windowEntry{value: v, bound: exact})
		return v
	}

	lo, hi := alpha, beta
	var v int
	if state.ToMove() == game.FirstPlayer {
		v = -Bound
		for _, col := range state.LegalMoves() {
			v = max(v, descend(state, col, func() int {
				return a.search(state, depth-1, alpha, beta, memo)
			}))
			alpha = max(alpha, v)
			if beta <= alpha {
				a.metrics.AddCutoff()
				break
			}
		}
	} else {
		v = Bound
		for _, col := range state.LegalMoves() {
			v = min(v, descend(state, col, func() int {
				return a.search(state, depth-1, alpha, beta, memo)
			}))
			beta = min(beta, v)
			if beta <= alpha {
				a.metrics.AddCutoff()
				break
			}
		}
	}

	memo.store(state, depth, windowEntry{value: v, bound: classify(v, lo, hi)})
	return v
}

// reuse decides whether a memo entry answers the current search. Under
// CacheBoard every entry is taken as exact whatever window produced it.
// Otherwise bounds narrow the window and only answer when it closes.
func (a *AlphaBeta) reuse(e windowEntry, alpha, beta *int) (int, bool) {
	if a.policy == CacheBoard {
		return e.value, true
	}
	switch e.bound {
	case exact:
		return e.value, true
	case lower:
		*alpha = max(*alpha, e.value)
	case upper:
		*beta = min(*beta, e.value)
	}
	if *alpha >= *beta {
		return e.value, true
	}
	return 0, false
}

// classify records how a score found with window (lo, hi) relates to the
// true score of the position.
func classify(v, lo, hi int) boundType {
	switch {
	case v <= lo:
		return upper
	case v >= hi:
		return lower
	}
	return exact
}
