package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coatdesk/core/internal/domain/entities"
	"github.com/coatdesk/core/internal/infrastructure/logger"
)

type stubDatasetRepo struct {
	data    map[entities.Kind]json.RawMessage
	loadErr error
	saveErr error
}

func newStubDatasetRepo() *stubDatasetRepo {
	return &stubDatasetRepo{data: make(map[entities.Kind]json.RawMessage)}
}

func (r *stubDatasetRepo) Load(_ context.Context, kind entities.Kind) (json.RawMessage, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.data[kind], nil
}

func (r *stubDatasetRepo) Save(_ context.Context, kind entities.Kind, data json.RawMessage) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.data[kind] = data
	return nil
}

func (r *stubDatasetRepo) Initialize(context.Context) ([]entities.Kind, error) {
	return entities.Kinds(), nil
}

func (r *stubDatasetRepo) HealthCheck() error { return nil }

func TestDatasetServiceSaveRejectsNonArrayPayloads(t *testing.T) {
	repo := newStubDatasetRepo()
	svc := NewDatasetService(repo, logger.Nop())
	ctx := context.Background()

	for _, payload := range []json.RawMessage{
		nil,
		json.RawMessage(``),
		json.RawMessage(`{}`),
		json.RawMessage(`"text"`),
		json.RawMessage(`[1,2`),
	} {
		err := svc.Save(ctx, entities.KindCustomers, payload)
		assert.ErrorIs(t, err, entities.ErrInvalidDataset, string(payload))
	}

	assert.Empty(t, repo.data)
}

func TestDatasetServiceSaveAcceptsArrays(t *testing.T) {
	repo := newStubDatasetRepo()
	svc := NewDatasetService(repo, logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, entities.KindCustomers, json.RawMessage(`[]`)))
	require.NoError(t, svc.Save(ctx, entities.KindCustomers, json.RawMessage(`  [{"id":1}]`)))

	assert.JSONEq(t, `[{"id":1}]`, string(repo.data[entities.KindCustomers]))
}

func TestDatasetServiceSaveWrapsRepositoryError(t *testing.T) {
	repo := newStubDatasetRepo()
	repo.saveErr = errors.New("disk full")
	svc := NewDatasetService(repo, logger.Nop())

	err := svc.Save(context.Background(), entities.KindSales, json.RawMessage(`[]`))

	assert.ErrorIs(t, err, repo.saveErr)
}

func TestDatasetServiceLoad(t *testing.T) {
	repo := newStubDatasetRepo()
	repo.data[entities.KindProducts] = json.RawMessage(`[{"id":1}]`)
	svc := NewDatasetService(repo, logger.Nop())

	data, err := svc.Load(context.Background(), entities.KindProducts)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(data))
}

func TestDatasetServiceInitialize(t *testing.T) {
	svc := NewDatasetService(newStubDatasetRepo(), logger.Nop())

	created, err := svc.Initialize(context.Background())

	require.NoError(t, err)
	assert.Len(t, created, len(entities.Kinds()))
}
