package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	markX     = "X"
	markO     = "O"
	markEmpty = ""
)

func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case markX:
		return PlayerX, nil
	case markO:
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, s)
	}
}

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return markX
	case PlayerO:
		return markO
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}

func (that Player) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, uint8(that))
	}

	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

func (that Cell) String() string {
	if player, ok := that.Player(); ok {
		return player.String()
	}

	return markEmpty
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == markEmpty {
		*that = EmptyCell
		return nil
	}

	player, err := ParsePlayer(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	*that = Occupied(player)

	return nil
}
