package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type AnalysisService interface {
	Analyze(ctx context.Context, board entity.Board, player entity.Player) (*entity.Analysis, error)
	GetAnalysis(ctx context.Context, id string) (*entity.Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error
}

type analysisRepo interface {
	Create(ctx context.Context, analysis *entity.Analysis) error
	GetByID(ctx context.Context, id string) (*entity.Analysis, error)
	DeleteByID(ctx context.Context, id string) error
}

type analysisService struct {
	logger *slog.Logger

	analysisRepo analysisRepo
	now          func() time.Time
}

// NewAnalysisService - a nil repo disables storing reports.
func NewAnalysisService(logger *slog.Logger, analysisRepo analysisRepo) AnalysisService {
	return &analysisService{
		logger:       logger.With("component", "analysis"),
		analysisRepo: analysisRepo,
		now:          time.Now,
	}
}

func (that *analysisService) Analyze(ctx context.Context, board entity.Board, player entity.Player) (*entity.Analysis, error) {
	log := that.logger.With("method", "Analyze", "board", board.String(), "player", player.String())

	if !player.IsValid() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, player)
	}

	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate board: %w", err)
	}

	if tictactoe.IsTerminal(board) {
		return nil, apperror.ErrGameFinished
	}

	started := that.now()
	moves := tictactoe.RankedMoves(tictactoe.OptimalMoves(board, player))

	// a non-terminal board always has at least one move
	score := moves[0].Score

	analysis := &entity.Analysis{
		Board:     board.Marks(),
		Player:    player,
		Moves:     moves,
		Score:     score,
		Outcome:   entity.OutcomeFor(player, score),
		CreatedAt: started.UTC(),
	}

	log.Debug("search finished", "moves", len(moves), "score", score, "elapsed", that.now().Sub(started))

	if that.analysisRepo == nil {
		return analysis, nil
	}

	id, err := pkg.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis id: %w", err)
	}
	analysis.ID = id

	if err = that.analysisRepo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	log.Info("analysis stored", "id", id)

	return analysis, nil
}

func (that *analysisService) GetAnalysis(ctx context.Context, id string) (*entity.Analysis, error) {
	if that.analysisRepo == nil {
		return nil, apperror.ErrReportsDisabled
	}

	analysis, err := that.analysisRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis by id: %w", err)
	}

	return analysis, nil
}

func (that *analysisService) DeleteAnalysis(ctx context.Context, id string) error {
	if that.analysisRepo == nil {
		return apperror.ErrReportsDisabled
	}

	if err := that.analysisRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete analysis by id: %w", err)
	}

	that.logger.Info("analysis deleted", "method", "DeleteAnalysis", "id", id)

	return nil
}
