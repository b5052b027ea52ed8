package tictactoe

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

type line [3]entity.Move

// winLines lists every line in evaluation order: row i then column i for each i,
// followed by the main and the anti diagonal.
var winLines = func() []line {
	lines := make([]line, 0, 2*entity.BoardSize+2)
	for i := 0; i < entity.BoardSize; i++ {
		lines = append(lines,
			line{{Row: i, Col: 0}, {Row: i, Col: 1}, {Row: i, Col: 2}},
			line{{Row: 0, Col: i}, {Row: 1, Col: i}, {Row: 2, Col: i}},
		)
	}

	return append(lines,
		line{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		line{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
	)
}()

// Winner returns the owner of the first completed line.
func Winner(board entity.Board) (entity.Player, bool) {
	for _, l := range winLines {
		a := board.Cell(l[0].Row, l[0].Col)
		if a.IsEmpty() {
			continue
		}

		if a == board.Cell(l[1].Row, l[1].Col) && a == board.Cell(l[2].Row, l[2].Col) {
			return a.Player()
		}
	}

	return 0, false
}

// Evaluate scores a board: MaxScore if X has a line, MinScore if O has one, otherwise DrawScore.
// DrawScore is also returned for unfinished boards, so it is only meaningful on terminal ones.
func Evaluate(board entity.Board) entity.Score {
	winner, ok := Winner(board)
	if !ok {
		return entity.DrawScore
	}

	if winner == entity.PlayerX {
		return entity.MaxScore
	}

	return entity.MinScore
}

func IsTerminal(board entity.Board) bool {
	return board.IsFull() || Evaluate(board) != entity.DrawScore
}
