package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrGameFinished     = errors.New("game is already finished")
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrReportsDisabled  = errors.New("analysis reports are disabled")
)
