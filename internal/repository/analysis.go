package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const analysisKeyPrefix = "analysis:"

type AnalysisRepository interface {
	Create(ctx context.Context, analysis *entity.Analysis) error
	GetByID(ctx context.Context, id string) (*entity.Analysis, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbAnalysis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisRepository - stores reports under "analysis:<id>"; a zero ttl keeps them forever.
func NewAnalysisRepository(client *redis.Client, ttl time.Duration) AnalysisRepository {
	return &dbAnalysis{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbAnalysis) Create(ctx context.Context, analysis *entity.Analysis) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("could not marshal analysis: %w", err)
	}

	if err = that.client.Set(ctx, analysisKeyPrefix+analysis.ID, analysisJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set analysis: %w", err)
	}

	return nil
}

func (that *dbAnalysis) GetByID(ctx context.Context, id string) (*entity.Analysis, error) {
	response, err := that.client.Get(ctx, analysisKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrAnalysisNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get analysis by id: %w", err)
	}

	var existing entity.Analysis
	if err = json.Unmarshal([]byte(response), &existing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &existing, nil
}

func (that *dbAnalysis) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, analysisKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete analysis by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrAnalysisNotFound
	}

	return nil
}
