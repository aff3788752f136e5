package searcher

import (
	"connect4/experiments/metrics"
	"connect4/meta"
)

type Option func(c *config)

type config struct {
	depth   int
	policy  CachePolicy
	metrics metrics.Collector
	seed    uint64
	seeded  bool
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:   meta.DefaultDepth,
		policy:  CacheBoard,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithDepth sets the number of plies searched, the root move included.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithCachePolicy(policy CachePolicy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

// WithSeed fixes the random source of the random strategy.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}
