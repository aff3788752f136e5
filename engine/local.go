package engine

import (
	"fmt"
	"io"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *LocalEngine)

// LocalEngine alternates two strategies over one board.
type LocalEngine struct {
	ID         string
	State      *game.GameState
	Strategies [2]searcher.Strategy // First player's strategy, then second's
	out        io.Writer
}

// WithOutput sets where the board is drawn after every move.
func WithOutput(w io.Writer) Option {
	return func(e *LocalEngine) {
		if w != nil {
			e.out = w
		}
	}
}

// WithState starts the game from an existing position.
func WithState(state *game.GameState) Option {
	return func(e *LocalEngine) {
		if state != nil {
			e.State = state
		}
	}
}

func WithGameID(id string) Option {
	return func(e *LocalEngine) {
		if id != "" {
			e.ID = id
		}
	}
}

func NewLocalEngine(first, second searcher.Strategy, options ...Option) *LocalEngine {
	if first == nil || second == nil {
		panic("need a strategy for each player")
	}
	e := &LocalEngine{ // Default values
		ID:         uuid.NewString(),
		State:      game.NewGameState(),
		Strategies: [2]searcher.Strategy{first, second},
		out:        io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) strategy(p game.Player) searcher.Strategy {
	if p == game.FirstPlayer {
		return e.Strategies[0]
	}
	return e.Strategies[1]
}

// Run executes the game loop until a win or a draw.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.State.ToMove(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", e.ID).
		Str("first", e.Strategies[0].Name()).
		Str("second", e.Strategies[1].Name()).
		Msg("game started")

	outcome, over := e.State.Outcome()
	for !over {
		p := e.State.ToMove()
		s := e.strategy(p)

		col, searchMetric := s.FindMove(e.State)
		if !slices.Contains(e.State.LegalMoves(), col) {
			return gameMetric, moveMetrics, fmt.Errorf("%w: %s played %d", ErrIllegalPick, s.Name(), col)
		}
		if err := e.State.MakeMove(col, p); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("failed to apply column %d: %w", col, err)
		}

		step := e.State.MoveCount()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       p,
			Column:       col,
			SearchMetric: searchMetric,
		})
		log.Debug().Str("game", e.ID).
			Int("step", step).
			Stringer("player", p).
			Int("column", col).
			Int("nodes", searchMetric.Nodes).
			Int("cache_hits", searchMetric.CacheHits).
			Int("cutoffs", searchMetric.Cutoffs).
			Dur("duration", searchMetric.Duration).
			Msg("move played")

		fmt.Fprintf(e.out, "\n\n%s%s played column %d", e.State.Render(), p.Glyph(), col)
		outcome, over = e.State.Outcome()
	}

	if len(moveMetrics) > 0 {
		if outcome.Drawn {
			fmt.Fprintf(e.out, " and drew\n")
		} else {
			fmt.Fprintf(e.out, " and won in direction %s!\n", outcome.Axis)
		}
	}

	gameMetric.Winner = outcome.Winner
	gameMetric.Drawn = outcome.Drawn
	gameMetric.Axis = outcome.Axis
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.MoveCount()

	event := log.Info().Str("game", e.ID).Int("moves", gameMetric.TotalMoves).Dur("duration", gameMetric.Duration)
	if outcome.Drawn {
		event.Msg("game drawn")
	} else {
		event.Stringer("winner", outcome.Winner).Stringer("axis", outcome.Axis).Msg("game won")
	}

	return gameMetric, moveMetrics, nil
}
