package engine

import (
	"bytes"
	"strings"
	"testing"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of columns.
type scripted struct {
	columns []int
}

func (s *scripted) Name() string { return "scripted" }

func (s *scripted) Pick(state *game.GameState) int {
	col, _ := s.FindMove(state)
	return col
}

func (s *scripted) FindMove(state *game.GameState) (int, metrics.SearchMetric) {
	col := s.columns[0]
	s.columns = s.columns[1:]
	return col, metrics.SearchMetric{Strategy: s.Name()}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("first player wins vertically", func(t *testing.T) {
		var out bytes.Buffer
		e := NewLocalEngine(
			&scripted{columns: []int{3, 3, 3, 3}},
			&scripted{columns: []int{0, 0, 0}},
			WithOutput(&out), WithGameID("game-1"))

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, "game-1", gameMetric.ID)
		require.Equal(t, game.FirstPlayer, gameMetric.StartingPlayer)
		require.Equal(t, game.FirstPlayer, gameMetric.Winner)
		require.Equal(t, game.Vertical, gameMetric.Axis)
		require.False(t, gameMetric.Drawn)
		require.Equal(t, 7, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 7)
		require.Equal(t, metrics.MoveMetric{
			Step:         7,
			Player:       game.FirstPlayer,
			Column:       3,
			SearchMetric: metrics.SearchMetric{Strategy: "scripted"},
		}, moveMetrics[6])
		require.True(t, strings.HasSuffix(out.String(), "x played column 3 and won in direction vertical!\n"),
			"Output should announce the win, got %q", out.String())
		require.Equal(t, 7, strings.Count(out.String(), "played column"), "Board should be drawn after every move")
	})

	t.Run("full board is drawn", func(t *testing.T) {
		moves := []int{
			5, 3, 2, 3, 1, 5, 3, 1, 0, 1, 4, 1, 2, 5, 0, 5, 6, 6, 2, 0, 6,
			0, 4, 2, 3, 0, 3, 4, 2, 3, 2, 6, 0, 4, 1, 1, 5, 4, 4, 5, 6, 6,
		}
		var first, second []int
		for i, col := range moves {
			if i%2 == 0 {
				first = append(first, col)
			} else {
				second = append(second, col)
			}
		}
		var out bytes.Buffer
		e := NewLocalEngine(&scripted{columns: first}, &scripted{columns: second}, WithOutput(&out))

		gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.True(t, gameMetric.Drawn)
		require.Equal(t, game.Width*game.Height, gameMetric.TotalMoves)
		require.True(t, strings.HasSuffix(out.String(), "O played column 6 and drew\n"))
	})

	t.Run("illegal pick stops the game", func(t *testing.T) {
		e := NewLocalEngine(&scripted{columns: []int{9}}, &scripted{})

		_, _, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalPick)
		require.Zero(t, e.State.MoveCount(), "Illegal column should not be applied")
	})

	t.Run("continues from a given position", func(t *testing.T) {
		state, err := game.Replay(3, 0, 3, 0, 3)
		require.NoError(t, err)
		e := NewLocalEngine(&scripted{columns: []int{3}}, &scripted{columns: []int{6}}, WithState(state))

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.SecondPlayer, gameMetric.StartingPlayer)
		require.Equal(t, game.FirstPlayer, gameMetric.Winner)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("search strategies finish a game", func(t *testing.T) {
		e := NewLocalEngine(
			searcher.NewAlphaBeta(searcher.WithDepth(2)),
			searcher.NewRandom(searcher.WithSeed(3)))

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, e.ID, "Game should get a generated id")
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		_, over := e.State.Outcome()
		require.True(t, over)
	})

	t.Run("needs two strategies", func(t *testing.T) {
		require.Panics(t, func() { NewLocalEngine(nil, &scripted{}) })
	})
}
