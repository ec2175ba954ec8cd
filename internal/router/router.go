// Package router wires the HTTP surface: public intake, the admin
// portal, and the crew portal, with auth and caching middleware applied
// per group.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/vetridj/event-ops/internal/config"
	"github.com/vetridj/event-ops/internal/handler"
	"github.com/vetridj/event-ops/internal/middleware"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Public    *handler.PublicBookingHandler
	Bookings  *handler.AdminBookingHandler
	Finance   *handler.AdminFinanceHandler
	Inventory *handler.AdminInventoryHandler
	Team      *handler.AdminTeamHandler
	Seed      *handler.AdminSeedHandler
	Crew      *handler.CrewHandler
}

// Register mounts all routes. The public intake is rate limited; admin
// and crew groups sit behind JWT auth with role checks; GET-heavy
// groups get the response cache.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Anonymous surface.
	e.POST("/v1/bookings", h.Public.Create, rl)
	e.POST("/v1/auth/login", h.Auth.Login, rl)

	// Admin portal. ADMIN only.
	admin := e.Group("/v1/admin",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole("ADMIN"))
	admin.GET("/bookings", h.Bookings.List, cache)
	admin.GET("/bookings/:id", h.Bookings.Get)
	admin.PATCH("/bookings/:id/status", h.Bookings.UpdateStatus)
	admin.GET("/finance", h.Finance.Overview, cache)
	admin.GET("/inventory", h.Inventory.List, cache)
	admin.POST("/inventory", h.Inventory.Create)
	admin.GET("/team", h.Team.List, cache)
	admin.POST("/team", h.Team.Create)
	admin.PATCH("/team/:id", h.Team.Update)
	admin.POST("/seed", h.Seed.Seed)

	// Crew portal. Admins may view it too.
	crew := e.Group("/v1/crew",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole("CREW", "ADMIN"))
	crew.GET("/dashboard", h.Crew.Dashboard)
	crew.GET("/schedule", h.Crew.Schedule)
	crew.GET("/expenses", h.Crew.ListExpenses)
	crew.POST("/expenses", h.Crew.SubmitExpense)

	// Token introspection for either portal.
	me := e.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	me.GET("/me", h.Auth.Me)
}
