package searcher

import (
	"errors"
	"fmt"

	"connect4/game"
)

// CachePolicy decides what a memo entry is keyed on and when it may be reused.
type CachePolicy int

const (
	// CacheBoard keys entries on the board alone. A position first reached
	// with little depth left keeps its shallow score when reached again with
	// more depth, and alpha-beta reuses values computed under another window.
	CacheBoard CachePolicy = iota
	// CacheDepth keys entries on the board and the remaining depth. Alpha-beta
	// entries carry a bound type and are only reused when valid for the window.
	CacheDepth
	// CacheNone disables memoization.
	CacheNone
)

var ErrUnknownCachePolicy = errors.New("unknown cache policy")

func (p CachePolicy) String() string {
	switch p {
	case CacheBoard:
		return "board"
	case CacheDepth:
		return "depth"
	case CacheNone:
		return "none"
	}
	return "unknown"
}

func ParseCachePolicy(s string) (CachePolicy, error) {
	for _, p := range []CachePolicy{CacheBoard, CacheDepth, CacheNone} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCachePolicy, s)
}

type memoKey struct {
	position game.PositionKey
	depth    int
}

// memo is the transposition table of a single search. It is never shared
// between searches and is not bounded in size.
type memo[V any] struct {
	policy  CachePolicy
	entries map[memoKey]V
}

func newMemo[V any](policy CachePolicy) *memo[V] {
	return &memo[V]{policy: policy, entries: make(map[memoKey]V)}
}

func (m *memo[V]) key(state *game.GameState, depth int) memoKey {
	k := memoKey{position: state.PositionKey()}
	if m.policy == CacheDepth {
		k.depth = depth
	}
	return k
}

func (m *memo[V]) lookup(state *game.GameState, depth int) (V, bool) {
	if m.policy == CacheNone {
		var zero V
		return zero, false
	}
	v, ok := m.entries[m.key(state, depth)]
	return v, ok
}

func (m *memo[V]) store(state *game.GameState, depth int, v V) {
	if m.policy == CacheNone {
		return
	}
	m.entries[m.key(state, depth)] = v
}

func (m *memo[V]) len() int {
	return len(m.entries)
}
