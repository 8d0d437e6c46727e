package server

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func (s *FiberServer) RegisterFiberRoutes() {
	// Apply CORS middleware
	s.App.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Accept,Authorization,Content-Type",
		AllowCredentials: false, // credentials require explicit origins
		MaxAge:           300,
	}))

	// Basic routes
	s.App.Get("/health", s.healthHandler)

	// Roulette routes
	api := s.App.Group("/api/v1")

	api.Post("/roulette/spin", s.spinHandler)
	api.Get("/roulette/state", s.getTableStateHandler)
	api.Get("/roulette/table", s.getTableInfoHandler)
	api.Get("/roulette/history", s.getHistoryHandler)
	api.Post("/roulette/verify", s.verifyHandler)

	// WebSocket route
	s.App.Get("/ws", websocket.New(s.gameWebSocketHandler))
}
