package server

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"roulette/internal/cache"
	"roulette/internal/database"
	"roulette/internal/game"
)

type FiberServer struct {
	*fiber.App

	db          database.Service
	cache       cache.Service
	gameHub     *game.Hub
	gameFactory *game.GameFactory
	roulette    *game.RouletteEngine
}

func New() *FiberServer {
	// Initialize database
	db := database.New()

	// Initialize Redis cache; the table runs without it
	redisService := cache.New()
	var redisClient *redis.Client
	if redisService != nil {
		redisClient = redisService.GetClient()
	}

	// Initialize game components
	hub := game.NewHub()
	roulette := game.NewRouletteEngine(redisClient, hub)
	roulette.SetStore(db)
	roulette.SetLimits(
		getEnvAsInt64("MIN_BET", 1),
		getEnvAsInt64("MAX_BET", 0),
	)

	factory := game.NewGameFactory()
	factory.RegisterEngine(roulette)

	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader:  "roulette",
			AppName:       "roulette",
			ReadTimeout:   10 * time.Second,
			WriteTimeout:  10 * time.Second,
			IdleTimeout:   120 * time.Second,
			StrictRouting: false,
		}),

		db:          db,
		cache:       redisService,
		gameHub:     hub,
		gameFactory: factory,
		roulette:    roulette,
	}

	// Apply global middleware
	server.App.Use(recover.New())
	server.App.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Start game components
	go hub.Run()

	if err := factory.StartAll(context.Background()); err != nil {
		log.Printf("[SERVER] Failed to start game engines: %v", err)
	}

	return server
}

// Shutdown gracefully shuts down the server and game components
func (s *FiberServer) Shutdown() error {
	log.Println("[SERVER] Shutting down...")

	if s.gameFactory != nil {
		if err := s.gameFactory.StopAll(); err != nil {
			log.Printf("[SERVER] Error stopping game engines: %v", err)
		}
	}

	// Close connections
	if s.cache != nil {
		s.cache.Close()
	}
	if s.db != nil {
		s.db.Close()
	}

	return nil
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.ParseInt(val, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}
