package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vetridj/event-ops/internal/middleware"
	"github.com/vetridj/event-ops/internal/repository"
	"github.com/vetridj/event-ops/internal/service"
)

// AdminTeamHandler provisions and lists team members.
type AdminTeamHandler struct {
	Team  service.TeamService
	Cache *middleware.CacheInvalidator
}

func NewAdminTeamHandler(ts service.TeamService, cache *middleware.CacheInvalidator) *AdminTeamHandler {
	return &AdminTeamHandler{Team: ts, Cache: cache}
}

// List returns all member profiles.
func (h *AdminTeamHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	members, err := h.Team.ListMembers(ctx)
	if err != nil {
		c.Logger().Errorf("list members failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list members failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"members": members, "count": len(members)})
}

// Create provisions a login plus profile for a new member.
func (h *AdminTeamHandler) Create(c echo.Context) error {
	var in service.MemberInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profile, err := h.Team.AddMember(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		default:
			c.Logger().Errorf("add member failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add member failed"})
		}
	}

	h.Cache.Flush(ctx)
	return c.JSON(http.StatusCreated, profile)
}

// Update applies a partial edit to an existing member's profile.
func (h *AdminTeamHandler) Update(c echo.Context) error {
	var in service.MemberUpdate
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profile, err := h.Team.UpdateMember(ctx, c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		default:
			c.Logger().Errorf("update member failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update member failed"})
		}
	}

	h.Cache.Flush(ctx)
	return c.JSON(http.StatusOK, profile)
}
