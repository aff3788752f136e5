package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

type entryKind uint8

const (
	scalarEntry entryKind = iota
	rankingEntry
)

// entry is a memoized minimax result: either a single score (terminal or
// depth-exhausted positions) or the ranked children of an expanded position.
type entry struct {
	kind    entryKind
	value   int
	ranking []scoredMove
}

func scalar(v int) entry {
	return entry{kind: scalarEntry, value: v}
}

func ranked(moves []scoredMove) entry {
	return entry{kind: rankingEntry, ranking: moves}
}

// score is the value of the position: the scalar, or the score of the best
// ranked child.
func (e entry) score() int {
	if e.kind == rankingEntry {
		return e.ranking[0].score
	}
	return e.value
}

// MinMax searches every line to a fixed depth and memoizes each position.
type MinMax struct {
	config
}

func NewMinMax(options ...Option) *MinMax {
	return &MinMax{config: newConfig(options)}
}

func (m *MinMax) Name() string {
	return string(MinMaxKind)
}

func (m *MinMax) Pick(state *game.GameState) int {
	col, _ := m.FindMove(state)
	return col
}

func (m *MinMax) FindMove(state *game.GameState) (int, metrics.SearchMetric) {
	m.metrics.Start(m.Name(), m.depth, m.policy.String())
	moves := m.scoreMoves(state)
	return best(moves), m.metrics.Complete()
}

// scoreMoves scores each root move one ply down, so the root itself is
// never memoized, and ranks them for the side to move.
func (m *MinMax) scoreMoves(state *game.GameState) []scoredMove {
	memo := newMemo[entry](m.policy)
	legal := state.LegalMoves()
	moves := make([]scoredMove, 0, len(legal))
	for _, col := range legal {
		score := descend(state, col, func() int {
			return m.search(state, m.depth-1, memo).score()
		})
		moves = append(moves, scoredMove{score: score, column: col})
	}
	rank(moves, state.ToMove())
	m.metrics.SetCacheEntries(memo.len())
	return moves
}

func (m *MinMax) search(state *game.GameState, depth int, memo *memo[entry]) entry {
	m.metrics.AddNode()

	if score, over := terminalScore(state); over {
		e := scalar(score)
		memo.store(state, depth, e)
		return e
	}
	if e, ok := memo.lookup(state, depth); ok {
		m.metrics.AddCacheHit()
		return e
	}
	if depth == 0 {
		e := scalar(state.Evaluate())
		memo.store(state, depth, e)
		return e
	}

	legal := state.LegalMoves()
	moves := make([]scoredMove, 0, len(legal))
	for _, col := range legal {
		score := descend(state, col, func() int {
			return m.search(state, depth-1, memo).score()
		})
		moves = append(moves, scoredMove{score: score, column: col})
	}
	rank(moves, state.ToMove())

	e := ranked(moves)
	memo.store(state, depth, e)
	return e
}
