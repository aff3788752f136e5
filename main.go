package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"connect4/engine"
	"connect4/experiments"
	"connect4/meta"
	"connect4/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := meta.LoadEnv(".env"); err != nil {
		log.Warn().Err(err).Msg("ignoring environment file")
	}
	cfg, err := meta.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(parseExitCode(err))
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// parseExitCode maps a command line error to the process exit code. Asking
// for help is not a failure.
func parseExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

func run(cfg meta.Config) error {
	policy, err := searcher.ParseCachePolicy(cfg.CachePolicy)
	if err != nil {
		return err
	}
	first, err := contestant(1, cfg.First, cfg, policy)
	if err != nil {
		return err
	}
	second, err := contestant(2, cfg.Second, cfg, policy)
	if err != nil {
		return err
	}

	// Only a single game is drawn on the terminal
	var options []engine.Option
	if cfg.Games == 1 {
		options = append(options, engine.WithOutput(os.Stdout))
	}

	result, err := experiments.RunMatchUp(first, second, cfg.Games, options...)
	if err != nil {
		return err
	}
	if cfg.Games > 1 {
		fmt.Printf("%s: %d wins\n%s: %d wins\ndraws: %d\n",
			result.Configs[0], result.Wins[0], result.Configs[1], result.Wins[1], result.Draws)
	}
	return nil
}

func contestant(id int, name string, cfg meta.Config, policy searcher.CachePolicy) (experiments.StrategyConfig, error) {
	kind, err := searcher.ParseKind(name)
	if err != nil {
		return experiments.StrategyConfig{}, err
	}
	return experiments.StrategyConfig{
		ID:     id,
		Kind:   kind,
		Depth:  cfg.Depth,
		Policy: policy,
		Seed:   cfg.Seed,
	}, nil
}
