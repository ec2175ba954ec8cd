package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vetridj/event-ops/internal/middleware"
	"github.com/vetridj/event-ops/internal/repository"
	"github.com/vetridj/event-ops/internal/service"
)

// AdminSeedHandler loads the demo dataset.
type AdminSeedHandler struct {
	Bookings repository.BookingRepository
	Cache    *middleware.CacheInvalidator
}

func NewAdminSeedHandler(br repository.BookingRepository, cache *middleware.CacheInvalidator) *AdminSeedHandler {
	return &AdminSeedHandler{Bookings: br, Cache: cache}
}

// Seed inserts the sample bookings and reports how many were written.
func (h *AdminSeedHandler) Seed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	n, err := h.Bookings.Seed(ctx, service.SampleBookings())
	if err != nil {
		c.Logger().Errorf("seed failed after %d rows: %v", n, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seed failed", "inserted": n})
	}

	h.Cache.Flush(ctx)
	return c.JSON(http.StatusOK, echo.Map{"inserted": n})
}
