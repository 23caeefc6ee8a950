package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/logger"
	"github.com/coatdesk/core/internal/ports"
)

// DatasetService handles loading and saving the persisted entity
// collections.
type DatasetService struct {
	repo   ports.DatasetRepository
	logger *logger.Logger
}

// NewDatasetService creates a new dataset service
func NewDatasetService(repo ports.DatasetRepository, logger *logger.Logger) *DatasetService {
	return &DatasetService{
		repo:   repo,
		logger: logger,
	}
}

// Load returns the persisted collection for the kind, seeding the backing
// file first when it does not exist.
func (s *DatasetService) Load(ctx context.Context, kind entities.Kind) (json.RawMessage, error) {
	data, err := s.repo.Load(ctx, kind)
	s.logger.LogDatasetOp("load", string(kind), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save overwrites the kind's persisted collection with the given payload.
// The payload must be a JSON array; element schemas are not checked.
func (s *DatasetService) Save(ctx context.Context, kind entities.Kind, data json.RawMessage) error {
	if !isJSONArray(data) {
		return entities.ErrInvalidDataset
	}

	err := s.repo.Save(ctx, kind, data)
	s.logger.LogDatasetOp("save", string(kind), err)
	if err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

// Initialize creates any missing backing files with seed content. Calling
// it repeatedly is safe: existing files are never touched.
func (s *DatasetService) Initialize(ctx context.Context) ([]entities.Kind, error) {
	created, err := s.repo.Initialize(ctx)
	s.logger.LogDatasetOp("initialize", "all", err)
	if err != nil {
		return created, fmt.Errorf("initialize data files: %w", err)
	}

	s.logger.Infow("Data files initialized", "created", len(created))
	return created, nil
}

// HealthCheck reports whether the backing storage is usable.
func (s *DatasetService) HealthCheck() error {
	return s.repo.HealthCheck()
}

func isJSONArray(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return false
	}
	return json.Valid(trimmed)
}
