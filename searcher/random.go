package searcher

import (
	"time"

	"connect4/experiments/metrics"
	"connect4/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly chosen legal column.
type Random struct {
	config
	rng *rand.Rand
}

func NewRandom(options ...Option) *Random {
	c := newConfig(options)
	seed := c.seed
	if !c.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{config: c, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string {
	return string(RandomKind)
}

func (r *Random) Pick(state *game.GameState) int {
	col, _ := r.FindMove(state)
	return col
}

func (r *Random) FindMove(state *game.GameState) (int, metrics.SearchMetric) {
	r.metrics.Start(r.Name(), 0, CacheNone.String())
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves to pick from")
	}
	return moves[r.rng.Intn(len(moves))], r.metrics.Complete()
}
