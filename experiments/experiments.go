package experiments

import (
	"fmt"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

// StrategyConfig describes one contestant of a match-up.
type StrategyConfig struct {
	ID     int
	Kind   searcher.Kind
	Depth  int
	Policy searcher.CachePolicy
	Seed   uint64 // Random strategies only, 0 for time-based
}

func (c StrategyConfig) String() string {
	if c.Kind == searcher.RandomKind {
		return fmt.Sprintf("#%d %s", c.ID, c.Kind)
	}
	return fmt.Sprintf("#%d %s depth=%d cache=%s", c.ID, c.Kind, c.Depth, c.Policy)
}

func (c StrategyConfig) build(round int) (searcher.Strategy, error) {
	options := []searcher.Option{
		searcher.WithDepth(c.Depth),
		searcher.WithCachePolicy(c.Policy),
		searcher.WithMetrics(),
	}
	if c.Seed != 0 {
		// Distinct but reproducible choices in every game
		options = append(options, searcher.WithSeed(c.Seed+uint64(round)))
	}
	return searcher.New(c.Kind, options...)
}

// MatchResult tallies a match-up from the point of view of its two configs,
// whichever side they played.
type MatchResult struct {
	Configs [2]StrategyConfig
	Wins    [2]int
	Draws   int
	Games   []metrics.GameMetric
	Moves   []metrics.MoveMetric
}

// RunMatchUp plays games between a and b, alternating who moves first.
func RunMatchUp(a, b StrategyConfig, games int, options ...engine.Option) (MatchResult, error) {
	result := MatchResult{Configs: [2]StrategyConfig{a, b}}

	log.Info().Msgf("starting match-up %s vs %s over %d games...", a, b, games)

	for i := 0; i < games; i++ {
		first, second := 0, 1
		if i%2 == 1 {
			first, second = 1, 0
		}

		s1, err := result.Configs[first].build(i)
		if err != nil {
			return result, err
		}
		s2, err := result.Configs[second].build(i)
		if err != nil {
			return result, err
		}

		gameMetric, moveMetrics, err := engine.NewLocalEngine(s1, s2, options...).Run()
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}
		result.Games = append(result.Games, gameMetric)
		result.Moves = append(result.Moves, moveMetrics...)

		switch {
		case gameMetric.Drawn:
			result.Draws++
			log.Info().Msgf("game %d of %d drawn", i+1, games)
		case gameMetric.Winner == game.FirstPlayer:
			result.Wins[first]++
			log.Info().Msgf("game %d of %d won by %s", i+1, games, result.Configs[first])
		default:
			result.Wins[second]++
			log.Info().Msgf("game %d of %d won by %s", i+1, games, result.Configs[second])
		}
	}

	log.Info().Msgf("completed match-up %s vs %s: %d-%d with %d draws", a, b, result.Wins[0], result.Wins[1], result.Draws)
	return result, nil
}
