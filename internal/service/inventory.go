package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
)

// AssetInput is the admin "add equipment" form.
type AssetInput struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Quantity        int     `json:"quantity"`
	Status          string  `json:"status"`
	PurchasePrice   float64 `json:"purchase_price"`
	PurchaseDate    string  `json:"purchase_date"`
	NextServiceDate string  `json:"next_service_date"`
}

// AssetView is an asset plus the derived maintenance flag.
type AssetView struct {
	model.Asset
	NeedsService bool `json:"needs_service"`
}

// InventoryService manages the equipment register.
type InventoryService interface {
	AddAsset(ctx context.Context, in AssetInput) (*model.Asset, error)
	ListAssets(ctx context.Context) ([]AssetView, error)
}

type inventoryService struct {
	assets repository.InventoryRepository
	now    func() time.Time
}

func NewInventoryService(assets repository.InventoryRepository) InventoryService {
	return &inventoryService{assets: assets, now: time.Now}
}

// AddAsset validates and stores a new equipment line. Quantity defaults
// to 1 and available starts equal to quantity: a brand-new asset is
// fully available; there is no partial-availability intake path.
func (s *inventoryService) AddAsset(ctx context.Context, in AssetInput) (*model.Asset, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}
	status := model.AssetStatus(in.Status)
	if status == "" {
		status = model.AssetAvailable
	}

	a := &model.Asset{
		Name:            strings.TrimSpace(in.Name),
		Category:        model.AssetCategory(in.Category),
		Brand:           in.Brand,
		Model:           in.Model,
		Quantity:        qty,
		Available:       qty,
		Status:          status,
		PurchasePrice:   in.PurchasePrice,
		PurchaseDate:    in.PurchaseDate,
		NextServiceDate: in.NextServiceDate,
	}
	if err := s.assets.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("add asset: %w", err)
	}
	return a, nil
}

// ListAssets returns all equipment ordered by name, each annotated with
// the view-level "needs service" flag.
func (s *inventoryService) ListAssets(ctx context.Context) ([]AssetView, error) {
	assets, err := s.assets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	now := s.now()
	out := make([]AssetView, 0, len(assets))
	for _, a := range assets {
		out = append(out, AssetView{Asset: a, NeedsService: a.NeedsService(now)})
	}
	return out, nil
}
