package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vetridj/event-ops/internal/service"
)

// PublicBookingHandler accepts event requests from the public site.
type PublicBookingHandler struct {
	Lifecycle service.LifecycleService
}

func NewPublicBookingHandler(ls service.LifecycleService) *PublicBookingHandler {
	return &PublicBookingHandler{Lifecycle: ls}
}

// Create receives the public intake form. Validation problems come back
// as 400 with a field hint; anything else is a generic 500 so internal
// detail never leaks to an anonymous caller.
func (h *PublicBookingHandler) Create(c echo.Context) error {
	var intake service.BookingIntake
	if err := c.Bind(&intake); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Lifecycle.CreateBooking(ctx, intake)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		c.Logger().Errorf("public booking intake failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking request failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":      id,
		"message": "booking request received",
	})
}
