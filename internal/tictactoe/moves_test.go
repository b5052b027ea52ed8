package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

func TestAvailableMoves(t *testing.T) {
	t.Run("Empty board yields every cell in row-major order", func(t *testing.T) {
		// When: listing moves on an empty board
		moves := AvailableMoves(entity.Board{})

		// Then: all nine cells are returned row by row
		expected := []entity.Move{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}
		assert.Equal(t, expected, moves)
	})

	t.Run("Only empty cells are returned", func(t *testing.T) {
		// Given: a board with four marks
		board := mustParse(t, "X.O/.X./O..")

		// When: listing moves
		moves := AvailableMoves(board)

		// Then: the five empty cells are returned in order
		expected := []entity.Move{
			{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}
		assert.Equal(t, expected, moves)
		assert.Len(t, moves, entity.BoardSize*entity.BoardSize-4)
		for _, move := range moves {
			assert.True(t, board.Cell(move.Row, move.Col).IsEmpty())
		}
	})

	t.Run("Full board yields no moves", func(t *testing.T) {
		assert.Empty(t, AvailableMoves(mustParse(t, "XOX/XOO/OXX")))
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Occupies the target cell and leaves the rest untouched", func(t *testing.T) {
		// Given: a board with a few marks
		board := mustParse(t, "X../.O./...")
		original := board

		// When: O plays the bottom-right corner
		next, err := ApplyMove(board, entity.Move{Row: 2, Col: 2}, entity.PlayerO)
		require.NoError(t, err)

		// Then: the cell is occupied by O
		assert.Equal(t, entity.Occupied(entity.PlayerO), next.Cell(2, 2))

		// And: every other cell matches the input
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				if row == 2 && col == 2 {
					continue
				}
				assert.Equal(t, board.Cell(row, col), next.Cell(row, col))
			}
		}

		// And: the input board was not modified
		assert.True(t, board.Equal(original))
		assert.False(t, board.Equal(next))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with X in the center
		board := mustParse(t, ".../.X./...")

		// When: O tries to play the center
		next, err := ApplyMove(board, entity.Move{Row: 1, Col: 1}, entity.PlayerO)

		// Then: an invalid move error wrapping ErrCellOccupied is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: the board is returned unchanged
		assert.Equal(t, board, next)
	})

	t.Run("Error on out of range coordinates", func(t *testing.T) {
		for _, move := range []entity.Move{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
			_, err := ApplyMove(entity.Board{}, move, entity.PlayerX)

			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
	})

	t.Run("Error on unknown player", func(t *testing.T) {
		_, err := ApplyMove(entity.Board{}, entity.Move{}, entity.Player(0))

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestOtherPlayer(t *testing.T) {
	assert.Equal(t, entity.PlayerO, OtherPlayer(entity.PlayerX))
	assert.Equal(t, entity.PlayerX, OtherPlayer(entity.PlayerO))
}
