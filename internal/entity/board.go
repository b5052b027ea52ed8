package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const BoardSize = 3

const (
	MaxScore  Score = 10
	MinScore  Score = -10
	DrawScore Score = 0
)

type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Score is the value of a position: positive favors X, negative favors O.
type Score int8

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Cell is either empty (the zero value) or occupied by a player.
type Cell struct {
	player Player
}

var EmptyCell = Cell{}

func Occupied(player Player) Cell {
	return Cell{player: player}
}

func (that Cell) IsEmpty() bool {
	return that.player == 0
}

// Player reports the occupant of the cell, ok is false for an empty cell.
func (that Cell) Player() (Player, bool) {
	return that.player, that.player != 0
}

// Board is a 3x3 grid addressed by (row, col). The zero value is an empty board.
type Board [BoardSize][BoardSize]Cell

func NewBoard(rows [BoardSize][BoardSize]Cell) Board {
	return Board(rows)
}

func (that Board) Cell(row, col int) Cell {
	return that[row][col]
}

func (that Board) Equal(other Board) bool {
	return that == other
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// Validate checks that the board could arise from alternating play with X moving first.
func (that Board) Validate() error {
	xCount, oCount := that.Count(Occupied(PlayerX)), that.Count(Occupied(PlayerO))
	if xCount != oCount && xCount != oCount+1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidBoard, xCount, oCount)
	}

	if that.hasLine(PlayerX) && that.hasLine(PlayerO) {
		return fmt.Errorf("%w: both players have a winning line", apperror.ErrInvalidBoard)
	}

	return nil
}

func (that Board) hasLine(player Player) bool {
	cell := Occupied(player)
	for i := 0; i < BoardSize; i++ {
		if that[i][0] == cell && that[i][1] == cell && that[i][2] == cell {
			return true
		}
		if that[0][i] == cell && that[1][i] == cell && that[2][i] == cell {
			return true
		}
	}

	return (that[0][0] == cell && that[1][1] == cell && that[2][2] == cell) ||
		(that[0][2] == cell && that[1][1] == cell && that[2][0] == cell)
}

// String renders the board as three rows separated by '/', using '.' for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, c := range row {
			sb.WriteByte(c.symbol())
		}
	}

	return sb.String()
}

// ParseBoard reads nine cell symbols in row-major order. 'X' and 'O' (any case) are marks,
// '.', '-' and '_' are empty cells; '/' and whitespace are ignored.
func ParseBoard(s string) (Board, error) {
	var board Board

	idx := 0
	for _, r := range s {
		var cell Cell
		switch r {
		case '/', ' ', '\t', '\n', '\r':
			continue
		case 'X', 'x':
			cell = Occupied(PlayerX)
		case 'O', 'o':
			cell = Occupied(PlayerO)
		case '.', '-', '_':
			cell = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", apperror.ErrInvalidBoard, r)
		}

		if idx >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidBoard, BoardSize*BoardSize)
		}

		board[idx/BoardSize][idx%BoardSize] = cell
		idx++
	}

	if idx != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize*BoardSize, idx)
	}

	return board, nil
}

// BoardFromMarks converts a flat row-major list of marks ("X", "O" or "") into a board.
func BoardFromMarks(marks [BoardSize * BoardSize]string) (Board, error) {
	var board Board
	for i, mark := range marks {
		var cell Cell
		if err := cell.UnmarshalText([]byte(mark)); err != nil {
			return Board{}, fmt.Errorf("%w: cell %d", err, i)
		}
		board[i/BoardSize][i%BoardSize] = cell
	}

	return board, nil
}

// Marks is the inverse of BoardFromMarks.
func (that Board) Marks() [BoardSize * BoardSize]string {
	var marks [BoardSize * BoardSize]string
	for i := range marks {
		marks[i] = that[i/BoardSize][i%BoardSize].String()
	}

	return marks
}

func (that Cell) symbol() byte {
	switch that.player {
	case PlayerX:
		return 'X'
	case PlayerO:
		return 'O'
	default:
		return '.'
	}
}
