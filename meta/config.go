package meta

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything the command line can set.
type Config struct {
	Depth       int
	First       string
	Second      string
	CachePolicy string
	Games       int
	Seed        uint64
	LogLevel    string
}

// LoadEnv reads environment defaults from path. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Parse reads flags and the optional positional depth. Flag defaults come
// from C4_* environment variables. A missing or unusable depth falls back to
// DefaultDepth.
func Parse(args []string, output io.Writer) (Config, error) {
	flags := flag.NewFlagSet("connect4", flag.ContinueOnError)
	flags.SetOutput(output)

	cfg := Config{}
	flags.StringVar(&cfg.First, "first", GetEnv("C4_FIRST", DefaultStrategy), "strategy of the first player: random, minmax or alphabeta")
	flags.StringVar(&cfg.Second, "second", GetEnv("C4_SECOND", DefaultStrategy), "strategy of the second player: random, minmax or alphabeta")
	flags.StringVar(&cfg.CachePolicy, "policy", GetEnv("C4_POLICY", DefaultCachePolicy), "memo key policy: board, depth or none")
	flags.IntVar(&cfg.Games, "games", GetEnvAsInt("C4_GAMES", DefaultGames), "games to play, alternating who starts")
	flags.Uint64Var(&cfg.Seed, "seed", uint64(GetEnvAsInt("C4_SEED", 0)), "seed for random strategies, 0 for time-based")
	flags.StringVar(&cfg.LogLevel, "log-level", GetEnv("C4_LOG_LEVEL", "info"), "zerolog level")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Depth = ParseDepth(flags.Arg(0), GetEnvAsInt("C4_DEPTH", DefaultDepth))
	if cfg.Games < 1 {
		cfg.Games = DefaultGames
	}
	return cfg, nil
}

// ParseDepth returns arg as a depth, or fallback when arg is empty, not a
// number or not positive. A non-positive fallback becomes DefaultDepth.
func ParseDepth(arg string, fallback int) int {
	if fallback < 1 {
		fallback = DefaultDepth
	}
	if arg == "" {
		return fallback
	}
	depth, err := strconv.Atoi(arg)
	if err != nil || depth < 1 {
		return fallback
	}
	return depth
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
