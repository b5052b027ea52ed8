package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// AvailableMoves lists the empty cells in row-major order.
func AvailableMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board.Cell(row, col).IsEmpty() {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// ApplyMove returns a copy of board with move occupied by player. The input board is left untouched.
func ApplyMove(board entity.Board, move entity.Move, player entity.Player) (entity.Board, error) {
	if err := validateMove(board, move, player); err != nil {
		return board, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	return place(board, move, player), nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, move entity.Move, player entity.Player) error {
	if !player.IsValid() {
		return apperror.ErrInvalidPlayer
	}

	if !move.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if !board.Cell(move.Row, move.Col).IsEmpty() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

// place skips validation, callers pass moves produced by AvailableMoves.
func place(board entity.Board, move entity.Move, player entity.Player) entity.Board {
	board[move.Row][move.Col] = entity.Occupied(player)
	return board
}

func OtherPlayer(player entity.Player) entity.Player {
	if player == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
