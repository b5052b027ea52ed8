package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
)

func Analyze(opts *options) *cobra.Command {
	var (
		boardFlag  string
		playerFlag string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze --board <cells> [--player X|O]",
		Short: "Print the optimal moves for a position",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`analyze searches the full game tree of the given position and
			prints every move that reaches the best score for the player.

			The board is nine cells in row-major order: X and O for marks and
			'.', '-' or '_' for empty cells. Rows may be split with '/'.
			Scores are +10 when X wins, -10 when O wins and 0 for a draw.`),
		Example: heredoc.Doc(`
			$ tictactoe-solver analyze --board .../XO./X.. --player O
			$ tictactoe-solver analyze --board ......... --json`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := entity.ParseBoard(boardFlag)
			if err != nil {
				return fmt.Errorf("failed to parse board: %w", err)
			}

			player, err := entity.ParsePlayer(playerFlag)
			if err != nil {
				return fmt.Errorf("failed to parse player: %w", err)
			}

			logger := newLogger(cmd.ErrOrStderr(), opts.conf.LogLevel)
			analysis, err := service.NewAnalysisService(logger, nil).Analyze(cmd.Context(), board, player)
			if err != nil {
				return fmt.Errorf("failed to analyze board: %w", err)
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(analysis)
			}

			return printAnalysis(cmd.OutOrStdout(), board, analysis)
		},
	}

	cmd.Flags().StringVarP(&boardFlag, "board", "b", "", "Board cells in row-major order")
	cmd.Flags().StringVarP(&playerFlag, "player", "p", "X", "Player to move")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the analysis as JSON")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func printAnalysis(w io.Writer, board entity.Board, analysis *entity.Analysis) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			mark := board.Cell(row, col).String()
			if mark == "" {
				mark = "."
			}
			printf(" %s", mark)
		}
		printf("\n")
	}

	printf("\n%s to move: %s (score %d)\n", analysis.Player, analysis.Outcome, analysis.Score)
	for _, move := range analysis.Moves {
		printf("  row %d, col %d\n", move.Row, move.Col)
	}

	return err
}
