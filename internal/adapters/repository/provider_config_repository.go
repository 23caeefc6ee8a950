package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/storage"
	"github.com/coatdesk/core/internal/ports"
)

const configFileName = "twilio-config.json"

// ProviderConfigRepositoryImpl stores the Twilio credentials in a single
// JSON document next to the dataset files.
type ProviderConfigRepositoryImpl struct {
	store *storage.Store
}

// NewProviderConfigRepository creates a new provider config repository.
func NewProviderConfigRepository(store *storage.Store) ports.ProviderConfigRepository {
	return &ProviderConfigRepositoryImpl{store: store}
}

func (r *ProviderConfigRepositoryImpl) LoadConfig(_ context.Context) (*entities.TwilioConfig, error) {
	exists, err := r.store.Exists(configFileName)
	if err != nil {
		return nil, fmt.Errorf("load twilio config: %w", err)
	}
	if !exists {
		return nil, entities.ErrConfigNotFound
	}

	raw, err := r.store.ReadRaw(configFileName)
	if err != nil {
		return nil, fmt.Errorf("load twilio config: %w", err)
	}

	var cfg entities.TwilioConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse twilio config: %w", err)
	}
	return &cfg, nil
}

func (r *ProviderConfigRepositoryImpl) SaveConfig(_ context.Context, cfg entities.TwilioConfig) error {
	if err := r.store.WriteValue(configFileName, cfg); err != nil {
		return fmt.Errorf("save twilio config: %w", err)
	}
	return nil
}

func (r *ProviderConfigRepositoryImpl) ClearConfig(_ context.Context) error {
	if err := r.store.Remove(configFileName); err != nil {
		return fmt.Errorf("clear twilio config: %w", err)
	}
	return nil
}
