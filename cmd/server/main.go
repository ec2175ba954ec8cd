package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/vetridj/event-ops/internal/config"
	"github.com/vetridj/event-ops/internal/database"
	"github.com/vetridj/event-ops/internal/handler"
	"github.com/vetridj/event-ops/internal/middleware"
	"github.com/vetridj/event-ops/internal/queue"
	"github.com/vetridj/event-ops/internal/repository"
	"github.com/vetridj/event-ops/internal/router"
	"github.com/vetridj/event-ops/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when Redis is unreachable; features degrade

	// Repositories.
	expenses := repository.NewExpenseRepository(db)
	bookings := repository.NewBookingRepository(db, expenses)
	inventory := repository.NewInventoryRepository(db)
	profiles := repository.NewProfileRepository(db)
	users := repository.NewUserRepository(db)
	assignments := repository.NewAssignmentRepository(db)

	// Services.
	lifecycle := service.NewLifecycleService(bookings, service.QueueNotifier{}, cfg.AdminEmail)
	finance := service.NewFinanceService(bookings, expenses, profiles)
	inv := service.NewInventoryService(inventory)
	team := service.NewTeamService(users, profiles, cfg.BcryptCost)
	crew := service.NewCrewService(assignments, expenses)

	// Notification worker drains the broker queue in the background.
	go func() {
		if err := queue.StartEmailConsumer(queue.LogDeliverer{}); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	cache := middleware.NewCacheInvalidator(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users),
		Public:    handler.NewPublicBookingHandler(lifecycle),
		Bookings:  handler.NewAdminBookingHandler(lifecycle, cache),
		Finance:   handler.NewAdminFinanceHandler(finance),
		Inventory: handler.NewAdminInventoryHandler(inv, cache),
		Team:      handler.NewAdminTeamHandler(team, cache),
		Seed:      handler.NewAdminSeedHandler(bookings, cache),
		Crew:      handler.NewCrewHandler(crew, cache),
	}, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
