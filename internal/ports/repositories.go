package ports

import (
	"context"
	"encoding/json"

	"github.com/coatdesk/core/internal/domain/entities"
)

// DatasetRepository bridges the entity endpoints and the durable flat-file
// storage. Documents are raw JSON arrays; schema checks stay at the HTTP
// boundary.
type DatasetRepository interface {
	// Load returns the persisted collection for the kind, creating the
	// backing file from seed data when it does not exist yet.
	Load(ctx context.Context, kind entities.Kind) (json.RawMessage, error)

	// Save fully overwrites the kind's backing file with the given array.
	Save(ctx context.Context, kind entities.Kind, data json.RawMessage) error

	// Initialize creates any missing backing files with seed content and
	// returns the kinds it created. Existing files are left untouched.
	Initialize(ctx context.Context) ([]entities.Kind, error)

	// HealthCheck verifies the storage location is usable.
	HealthCheck() error
}

// ProviderConfigRepository persists the SMS provider credentials.
type ProviderConfigRepository interface {
	// LoadConfig returns entities.ErrConfigNotFound when no configuration
	// has been saved yet.
	LoadConfig(ctx context.Context) (*entities.TwilioConfig, error)
	SaveConfig(ctx context.Context, cfg entities.TwilioConfig) error
	// ClearConfig removes the stored credentials. Clearing an absent
	// configuration is not an error.
	ClearConfig(ctx context.Context) error
}

// SMSSender delivers a message through the external SMS provider and
// returns the provider-assigned message ID.
type SMSSender interface {
	Send(ctx context.Context, cfg entities.TwilioConfig, to, body string) (messageID string, err error)
}
