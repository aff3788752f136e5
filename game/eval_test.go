package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		want  int
	}{
		{name: "empty board", moves: nil, want: 0},
		{name: "single centre piece", moves: []int{3}, want: 5},
		{name: "stacked pieces", moves: []int{3, 3}, want: -3},
		{name: "first player column of three", moves: []int{3, 0, 3, 0, 3, 0}, want: 8},
		{name: "second player row of three on top", moves: []int{0, 0, 1, 1, 2, 2}, want: -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := mustReplay(t, tt.moves...)

			require.Equal(t, tt.want, gs.Evaluate())
		})
	}
}

func TestEvaluateSymmetry(t *testing.T) {
	for n := 0; n <= len(drawnGame); n += 5 {
		gs := mustReplay(t, drawnGame[:n]...)

		require.Equal(t, -gs.Evaluate(), gs.Mirror().Evaluate(),
			"Swapping owners should negate the score after %d moves", n)
	}
}

func TestPlayer(t *testing.T) {
	require.Equal(t, SecondPlayer, FirstPlayer.Opponent())
	require.Equal(t, FirstPlayer, SecondPlayer.Opponent())
	require.Equal(t, 1, FirstPlayer.Sign())
	require.Equal(t, -1, SecondPlayer.Sign())
}
