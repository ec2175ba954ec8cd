package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vetridj/event-ops/internal/middleware"
	"github.com/vetridj/event-ops/internal/service"
)

// AdminInventoryHandler manages the equipment catalog.
type AdminInventoryHandler struct {
	Inventory service.InventoryService
	Cache     *middleware.CacheInvalidator
}

func NewAdminInventoryHandler(is service.InventoryService, cache *middleware.CacheInvalidator) *AdminInventoryHandler {
	return &AdminInventoryHandler{Inventory: is, Cache: cache}
}

// List returns every asset with its maintenance flag.
func (h *AdminInventoryHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	assets, err := h.Inventory.ListAssets(ctx)
	if err != nil {
		c.Logger().Errorf("list assets failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list assets failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"assets": assets, "count": len(assets)})
}

// Create registers a new asset.
func (h *AdminInventoryHandler) Create(c echo.Context) error {
	var in service.AssetInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	asset, err := h.Inventory.AddAsset(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		c.Logger().Errorf("add asset failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add asset failed"})
	}

	h.Cache.Flush(ctx)
	return c.JSON(http.StatusCreated, asset)
}
