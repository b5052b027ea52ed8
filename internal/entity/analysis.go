package entity

import "time"

const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
)

type ScoredMove struct {
	Move
	Score Score `json:"score"`
}

// Analysis is the stored answer to "what should Player play on Board".
type Analysis struct {
	ID        string                        `json:"id"`
	Board     [BoardSize * BoardSize]string `json:"board"`
	Player    Player                        `json:"player"`
	Moves     []ScoredMove                  `json:"moves"`
	Score     Score                         `json:"score"`
	Outcome   string                        `json:"outcome"`
	CreatedAt time.Time                     `json:"created_at"`
}

// OutcomeFor labels a best score from the point of view of player.
func OutcomeFor(player Player, score Score) string {
	switch {
	case score == DrawScore:
		return OutcomeDraw
	case (score > 0) == (player == PlayerX):
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}
