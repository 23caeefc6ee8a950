package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/domain/seed"
	"github.com/coatdesk/core/internal/infrastructure/storage"
	"github.com/coatdesk/core/internal/ports"
)

// DatasetRepositoryImpl implements ports.DatasetRepository over the
// flat-file document store.
type DatasetRepositoryImpl struct {
	store *storage.Store
}

// NewDatasetRepository creates a new dataset repository.
func NewDatasetRepository(store *storage.Store) ports.DatasetRepository {
	return &DatasetRepositoryImpl{store: store}
}

func (r *DatasetRepositoryImpl) Load(_ context.Context, kind entities.Kind) (json.RawMessage, error) {
	if !kind.IsValid() {
		return nil, entities.ErrUnknownKind
	}

	exists, err := r.store.Exists(kind.FileName())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}

	if !exists {
		collection, ok := seed.Collection(kind)
		if !ok {
			return nil, entities.ErrUnknownKind
		}
		if err := r.store.WriteValue(kind.FileName(), collection); err != nil {
			return nil, fmt.Errorf("seed %s: %w", kind, err)
		}
	}

	raw, err := r.store.ReadRaw(kind.FileName())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	return raw, nil
}

func (r *DatasetRepositoryImpl) Save(_ context.Context, kind entities.Kind, data json.RawMessage) error {
	if !kind.IsValid() {
		return entities.ErrUnknownKind
	}
	if err := r.store.WriteRaw(kind.FileName(), data); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

func (r *DatasetRepositoryImpl) Initialize(_ context.Context) ([]entities.Kind, error) {
	var created []entities.Kind
	for _, kind := range entities.Kinds() {
		exists, err := r.store.Exists(kind.FileName())
		if err != nil {
			return created, fmt.Errorf("initialize %s: %w", kind, err)
		}
		if exists {
			continue
		}

		collection, ok := seed.Collection(kind)
		if !ok {
			return created, entities.ErrUnknownKind
		}
		if err := r.store.WriteValue(kind.FileName(), collection); err != nil {
			return created, fmt.Errorf("initialize %s: %w", kind, err)
		}
		created = append(created, kind)
	}
	return created, nil
}

func (r *DatasetRepositoryImpl) HealthCheck() error {
	return r.store.HealthCheck()
}
