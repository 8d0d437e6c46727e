package server

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"roulette/internal/game"
)

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	cacheHealth := map[string]string{"status": "disabled"}
	if s.cache != nil {
		cacheHealth = s.cache.Health()
	}

	health := fiber.Map{
		"database": s.db.Health(),
		"cache":    cacheHealth,
		"game": fiber.Map{
			"status":            "running",
			"connected_clients": s.gameHub.GetClientCount(),
		},
	}
	return c.JSON(health)
}

// spinHandler runs one complete round for the submitted batch of bets.
func (s *FiberServer) spinHandler(c *fiber.Ctx) error {
	var req game.SpinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if len(req.Bets) == 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "At least one bet is required",
		})
	}

	resp := s.roulette.Spin(c.Context(), req)
	if !resp.Success {
		return c.Status(400).JSON(resp)
	}

	return c.JSON(resp)
}

// getTableStateHandler returns table limits and round counters.
func (s *FiberServer) getTableStateHandler(c *fiber.Ctx) error {
	return c.JSON(s.roulette.GetState())
}

// getTableInfoHandler lists every bet kind with its multiplier and minimum.
func (s *FiberServer) getTableInfoHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"kinds": s.roulette.TableInfo(),
	})
}

// getHistoryHandler returns recent winning pockets and, when the database
// has them, full settled rounds.
func (s *FiberServer) getHistoryHandler(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	pockets := s.roulette.RecentPockets(c.Context(), limit)

	rounds, err := s.db.RecentRounds(c.Context(), limit)
	if err != nil {
		log.Printf("[SERVER] Failed to load round history: %v", err)
		rounds = nil
	}

	return c.JSON(fiber.Map{
		"pockets": pockets,
		"rounds":  rounds,
	})
}

// verifyHandler recomputes a revealed round's pocket from its seeds.
func (s *FiberServer) verifyHandler(c *fiber.Ctx) error {
	var req game.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ServerSeed == "" || req.ClientSeed == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Server seed and client seed are required",
		})
	}

	resp, err := s.roulette.ProcessAction(c.Context(), "verify", req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// gameWebSocketHandler handles WebSocket connections for real-time round updates
func (s *FiberServer) gameWebSocketHandler(conn *websocket.Conn) {
	playerID := conn.Query("player_id", "anonymous")

	log.Printf("[WS] New connection from player: %s", playerID)

	s.gameHub.RegisterClient(conn, playerID)

	// Send the latest settled round so new clients are not blank
	if last := s.roulette.LastRound(); last != nil {
		stateJSON, _ := json.Marshal(game.WSMessage{
			Type: "last_round",
			Data: last,
		})
		conn.WriteMessage(websocket.TextMessage, stateJSON)
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[WS] Read error for player %s: %v", playerID, err)
			s.gameHub.UnregisterClient(conn)
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}

		var clientMsg struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			continue
		}

		switch clientMsg.Type {
		case "spin":
			var req game.SpinRequest
			if err := json.Unmarshal(clientMsg.Data, &req); err != nil {
				continue
			}

			resp := s.roulette.Spin(context.Background(), req)
			respJSON, _ := json.Marshal(game.WSMessage{Type: "spin_result", Data: resp})
			conn.WriteMessage(websocket.TextMessage, respJSON)

		case "verify":
			var req game.VerifyRequest
			if err := json.Unmarshal(clientMsg.Data, &req); err != nil {
				continue
			}

			resp, err := s.roulette.ProcessAction(context.Background(), "verify", req)
			if err != nil {
				continue
			}
			respJSON, _ := json.Marshal(game.WSMessage{Type: "verify_result", Data: resp})
			conn.WriteMessage(websocket.TextMessage, respJSON)

		case "ping":
			pongJSON, _ := json.Marshal(game.WSMessage{Type: "pong"})
			conn.WriteMessage(websocket.TextMessage, pongJSON)
		}
	}
}
