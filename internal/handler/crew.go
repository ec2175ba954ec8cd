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

// CrewHandler serves the crew portal: dashboard, schedule, expenses.
type CrewHandler struct {
	Crew  service.CrewService
	Cache *middleware.CacheInvalidator
}

func NewCrewHandler(cs service.CrewService, cache *middleware.CacheInvalidator) *CrewHandler {
	return &CrewHandler{Crew: cs, Cache: cache}
}

// Dashboard returns stats plus the next few upcoming events for the
// authenticated crew member.
func (h *CrewHandler) Dashboard(c echo.Context) error {
	crewID := middleware.UserID(c)
	if crewID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dash, err := h.Crew.Dashboard(ctx, crewID)
	if err != nil {
		c.Logger().Errorf("crew dashboard failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "dashboard failed"})
	}
	return c.JSON(http.StatusOK, dash)
}

// Schedule returns the full assignment schedule for the member.
func (h *CrewHandler) Schedule(c echo.Context) error {
	crewID := middleware.UserID(c)
	if crewID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	events, err := h.Crew.Schedule(ctx, crewID)
	if err != nil {
		c.Logger().Errorf("crew schedule failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "schedule failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events, "count": len(events)})
}

// ListExpenses returns the member's submitted expenses, newest first.
func (h *CrewHandler) ListExpenses(c echo.Context) error {
	crewID := middleware.UserID(c)
	if crewID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	expenses, err := h.Crew.ListExpenses(ctx, crewID)
	if err != nil {
		c.Logger().Errorf("crew expenses failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list expenses failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"expenses": expenses, "count": len(expenses)})
}

// SubmitExpense records a field expense against a booking.
func (h *CrewHandler) SubmitExpense(c echo.Context) error {
	crewID := middleware.UserID(c)
	if crewID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var in service.ExpenseInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exp, err := h.Crew.SubmitExpense(ctx, crewID, in)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		c.Logger().Errorf("submit expense failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit expense failed"})
	}

	h.Cache.Flush(ctx)
	return c.JSON(http.StatusCreated, exp)
}
