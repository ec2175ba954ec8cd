package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vetridj/event-ops/internal/middleware"
	"github.com/vetridj/event-ops/internal/model"
	"github.com/vetridj/event-ops/internal/repository"
	"github.com/vetridj/event-ops/internal/service"
)

// AdminBookingHandler serves the admin portal's booking views and the
// status transition endpoint.
type AdminBookingHandler struct {
	Lifecycle service.LifecycleService
	Cache     *middleware.CacheInvalidator
}

func NewAdminBookingHandler(ls service.LifecycleService, cache *middleware.CacheInvalidator) *AdminBookingHandler {
	return &AdminBookingHandler{Lifecycle: ls, Cache: cache}
}

// joinsFromQuery reads the opt-in join flags from query params, e.g.
// ?include_expenses=1&include_payouts=1.
func joinsFromQuery(c echo.Context) repository.BookingJoins {
	return repository.BookingJoins{
		Expenses: c.QueryParam("include_expenses") == "1" || c.QueryParam("include_expenses") == "true",
		Payouts:  c.QueryParam("include_payouts") == "1" || c.QueryParam("include_payouts") == "true",
	}
}

// List returns all bookings ordered by event date.
func (h *AdminBookingHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Lifecycle.ListBookings(ctx, joinsFromQuery(c))
	if err != nil {
		c.Logger().Errorf("list bookings failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings, "count": len(bookings)})
}

// Get returns one booking by id.
func (h *AdminBookingHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Lifecycle.GetBooking(ctx, c.Param("id"), joinsFromQuery(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		c.Logger().Errorf("get booking failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get booking failed"})
	}
	return c.JSON(http.StatusOK, b)
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateStatus moves a booking to a new lifecycle status and triggers
// the associated notifications.
func (h *AdminBookingHandler) UpdateStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Lifecycle.UpdateStatus(ctx, c.Param("id"), model.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		default:
			c.Logger().Errorf("update status failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
		}
	}

	h.Cache.Flush(ctx)
	return c.JSON(http.StatusOK, b)
}
