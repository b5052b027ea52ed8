package tictactoe

import (
	"math"
	"sort"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	lowestScore  entity.Score = math.MinInt8
	highestScore entity.Score = math.MaxInt8
)

// Minimax scores board by exhaustive search. The maximizing ply places current, the
// minimizing ply places OtherPlayer(current), and current advances on every ply.
// depth is carried along but does not discount scores.
func Minimax(board entity.Board, depth int, isMaximizing bool, current entity.Player) entity.Score {
	if IsTerminal(board) {
		return Evaluate(board)
	}

	next := OtherPlayer(current)

	if isMaximizing {
		best := lowestScore
		for _, move := range AvailableMoves(board) {
			score := Minimax(place(board, move, current), depth+1, false, next)
			if score > best {
				best = score
			}
		}

		return best
	}

	best := highestScore
	for _, move := range AvailableMoves(board) {
		score := Minimax(place(board, move, next), depth+1, true, next)
		if score < best {
			best = score
		}
	}

	return best
}

// BestMoves returns every move of player tied for the best Minimax score, keyed by move.
// Each candidate is scored with Minimax(child, 0, player == X, player). A full board yields an empty map.
func BestMoves(board entity.Board, player entity.Player) map[entity.Move]entity.Score {
	return selectMoves(board, player, func(child entity.Board) entity.Score {
		return Minimax(child, 0, player == entity.PlayerX, player)
	})
}

// PerfectPlay scores board when toMove plays next and both sides alternate optimally.
func PerfectPlay(board entity.Board, toMove entity.Player) entity.Score {
	if IsTerminal(board) {
		return Evaluate(board)
	}

	next := OtherPlayer(toMove)

	best := highestScore
	if toMove == entity.PlayerX {
		best = lowestScore
	}

	for _, move := range AvailableMoves(board) {
		score := PerfectPlay(place(board, move, toMove), next)
		if isBetter(toMove, score, best) {
			best = score
		}
	}

	return best
}

// OptimalMoves is BestMoves under PerfectPlay: the opponent replies after player's move.
func OptimalMoves(board entity.Board, player entity.Player) map[entity.Move]entity.Score {
	opponent := OtherPlayer(player)

	return selectMoves(board, player, func(child entity.Board) entity.Score {
		return PerfectPlay(child, opponent)
	})
}

// selectMoves folds over the available moves, keeping every move tied for the best score.
func selectMoves(board entity.Board, player entity.Player, score func(entity.Board) entity.Score) map[entity.Move]entity.Score {
	best := lowestScore
	if player == entity.PlayerO {
		best = highestScore
	}

	moves := make(map[entity.Move]entity.Score)

	for _, move := range AvailableMoves(board) {
		s := score(place(board, move, player))

		switch {
		case isBetter(player, s, best):
			best = s
			moves = map[entity.Move]entity.Score{move: s}
		case s == best:
			moves[move] = s
		}
	}

	return moves
}

func isBetter(player entity.Player, score, best entity.Score) bool {
	if player == entity.PlayerX {
		return score > best
	}
	return score < best
}

// RankedMoves flattens a move map into row-major order.
func RankedMoves(moves map[entity.Move]entity.Score) []entity.ScoredMove {
	ranked := make([]entity.ScoredMove, 0, len(moves))
	for move, score := range moves {
		ranked = append(ranked, entity.ScoredMove{Move: move, Score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Row != ranked[j].Row {
			return ranked[i].Row < ranked[j].Row
		}
		return ranked[i].Col < ranked[j].Col
	})

	return ranked
}
