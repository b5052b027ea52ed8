package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

func mustParse(t *testing.T, s string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  entity.Score
	}{
		{name: "empty board", board: ".../.../...", want: entity.DrawScore},
		{name: "X wins row 0", board: "XXX/OO./...", want: entity.MaxScore},
		{name: "O wins row 2", board: "XX./X../OOO", want: entity.MinScore},
		{name: "X wins column 1", board: "OX./.X./OX.", want: entity.MaxScore},
		{name: "O wins column 2", board: "X.O/X.O/.XO", want: entity.MinScore},
		{name: "X wins main diagonal", board: "XO./OX./..X", want: entity.MaxScore},
		{name: "O wins anti diagonal", board: "XXO/XO./O..", want: entity.MinScore},
		{name: "game in progress", board: "XO./.X./..O", want: entity.DrawScore},
		{name: "full board draw", board: "XOX/XOO/OXX", want: entity.DrawScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board
			board := mustParse(t, tt.board)

			// When: evaluating it twice
			first := Evaluate(board)
			second := Evaluate(board)

			// Then: both results match the expected score
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestEvaluate_LineOrder(t *testing.T) {
	// only parallel lines can be completed by different players at once
	tests := []struct {
		name  string
		board string
		want  entity.Score
	}{
		{name: "O row 0 is found before X row 2", board: "OOO/.../XXX", want: entity.MinScore},
		{name: "X row 0 is found before O row 2", board: "XXX/.../OOO", want: entity.MaxScore},
		{name: "O column 0 is found before X column 2", board: "O.X/O.X/O.X", want: entity.MinScore},
		{name: "X row 1 is found before O row 2", board: ".../XXX/OOO", want: entity.MaxScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board where both players own a line
			board := mustParse(t, tt.board)

			// When: evaluating it
			score := Evaluate(board)

			// Then: the first line in evaluation order decides
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Run("Empty board is not terminal", func(t *testing.T) {
		assert.False(t, IsTerminal(entity.Board{}))
	})

	t.Run("Board with a completed line is terminal", func(t *testing.T) {
		// Given: X has completed the main diagonal with empty cells left
		board := mustParse(t, "XO./OX./..X")

		// Then: the board is terminal
		assert.True(t, IsTerminal(board))
		assert.NotEmpty(t, AvailableMoves(board))
	})

	t.Run("Full board without a line is terminal and a draw", func(t *testing.T) {
		// Given: a full board with no three in a row
		board := mustParse(t, "XOX/XOO/OXX")

		// Then: it is terminal and evaluates to a draw
		assert.True(t, IsTerminal(board))
		assert.Equal(t, entity.DrawScore, Evaluate(board))
		assert.Empty(t, AvailableMoves(board))
	})

	t.Run("Unfinished board is not terminal", func(t *testing.T) {
		assert.False(t, IsTerminal(mustParse(t, "XO./.X./..O")))
	})
}

func TestWinner(t *testing.T) {
	t.Run("Returns the player owning a line", func(t *testing.T) {
		winner, ok := Winner(mustParse(t, "X.O/X.O/.XO"))

		require.True(t, ok)
		assert.Equal(t, entity.PlayerO, winner)
	})

	t.Run("Returns false without a line", func(t *testing.T) {
		_, ok := Winner(mustParse(t, "XOX/XOO/OXX"))

		assert.False(t, ok)
	})
}
