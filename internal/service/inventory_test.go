package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetridj/event-ops/internal/model"
)

// inventoryRepoMock implements repository.InventoryRepository.
type inventoryRepoMock struct {
	createFn  func(ctx context.Context, a *model.Asset) error
	listAllFn func(ctx context.Context) ([]model.Asset, error)
}

func (m *inventoryRepoMock) Create(ctx context.Context, a *model.Asset) error {
	return m.createFn(ctx, a)
}
func (m *inventoryRepoMock) ListAll(ctx context.Context) ([]model.Asset, error) {
	return m.listAllFn(ctx)
}

func TestAddAssetAvailableEqualsQuantity(t *testing.T) {
	var stored *model.Asset
	repo := &inventoryRepoMock{
		createFn: func(_ context.Context, a *model.Asset) error {
			stored = a
			return nil
		},
	}
	svc := NewInventoryService(repo)

	a, err := svc.AddAsset(context.Background(), AssetInput{
		Name: "QSC K12.2", Category: "speakers", Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, a.Quantity)
	assert.Equal(t, 4, a.Available)
	assert.Equal(t, model.AssetAvailable, a.Status)
	assert.Same(t, stored, a)
}

func TestAddAssetDefaults(t *testing.T) {
	repo := &inventoryRepoMock{
		createFn: func(_ context.Context, _ *model.Asset) error { return nil },
	}
	svc := NewInventoryService(repo)

	// Quantity omitted defaults to 1.
	a, err := svc.AddAsset(context.Background(), AssetInput{Name: "DMX Cable", Category: "cables"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.Quantity)
	assert.Equal(t, 1, a.Available)

	// Explicit status survives.
	a, err = svc.AddAsset(context.Background(), AssetInput{
		Name: "Old Mixer", Category: "mixers", Status: "maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AssetMaintenance, a.Status)
}

func TestAddAssetValidation(t *testing.T) {
	repo := &inventoryRepoMock{
		createFn: func(_ context.Context, _ *model.Asset) error {
			t.Fatal("create must not be called on invalid input")
			return nil
		},
	}
	svc := NewInventoryService(repo)

	_, err := svc.AddAsset(context.Background(), AssetInput{Category: "speakers"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.AddAsset(context.Background(), AssetInput{Name: "Par Can"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestListAssetsNeedsServiceFlag(t *testing.T) {
	repo := &inventoryRepoMock{
		listAllFn: func(_ context.Context) ([]model.Asset, error) {
			return []model.Asset{
				{ID: "a-1", Name: "Moving Head", NextServiceDate: "2026-01-10"}, // overdue
				{ID: "a-2", Name: "Sub", NextServiceDate: "2026-06-15"},         // due today
				{ID: "a-3", Name: "LED Wall", NextServiceDate: "2027-01-01"},    // future
				{ID: "a-4", Name: "Mixer"},                                      // no date
				{ID: "a-5", Name: "Cable Case", NextServiceDate: "soon"},        // unparseable
			}, nil
		},
	}
	svc := NewInventoryService(repo).(*inventoryService)
	svc.now = func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	views, err := svc.ListAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 5)
	assert.True(t, views[0].NeedsService)
	assert.True(t, views[1].NeedsService, "a date of today counts as due")
	assert.False(t, views[2].NeedsService)
	assert.False(t, views[3].NeedsService)
	assert.False(t, views[4].NeedsService)
}
