package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"roulette/internal/game"
)

// newTestServer wires the roulette engine without database or Redis so
// handlers can be exercised with app.Test.
func newTestServer() *FiberServer {
	hub := game.NewHub()
	roulette := game.NewRouletteEngine(nil, hub)

	factory := game.NewGameFactory()
	factory.RegisterEngine(roulette)

	s := &FiberServer{
		App:         fiber.New(),
		gameHub:     hub,
		gameFactory: factory,
		roulette:    roulette,
	}

	s.App.Post("/api/v1/roulette/spin", s.spinHandler)
	s.App.Get("/api/v1/roulette/state", s.getTableStateHandler)
	s.App.Get("/api/v1/roulette/table", s.getTableInfoHandler)
	s.App.Post("/api/v1/roulette/verify", s.verifyHandler)

	return s
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("could not marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("could not create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("could not perform request: %v", err)
	}
	return resp
}

func TestSpinHandler(t *testing.T) {
	s := newTestServer()

	resp := postJSON(t, s.App, "/api/v1/roulette/spin", game.SpinRequest{
		ClientSeed: "test-seed",
		Bets: []game.BetInput{
			{Kind: "straight", Picks: []int{17}, Wager: 10},
			{Kind: "redblack", Picks: []int{0}, Wager: 5},
		},
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.Status)
	}

	var result game.SpinResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("could not unmarshal response: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success; got message %q", result.Message)
	}
	if result.Pocket < 0 || result.Pocket > 36 {
		t.Errorf("pocket %d out of range", result.Pocket)
	}
	if result.RoundID == "" {
		t.Error("expected a round ID")
	}
	if len(result.Results) != 2 {
		t.Errorf("expected 2 results; got %d", len(result.Results))
	}
}

func TestSpinHandlerRejectsInvalidBet(t *testing.T) {
	s := newTestServer()

	resp := postJSON(t, s.App, "/api/v1/roulette/spin", game.SpinRequest{
		Bets: []game.BetInput{
			{Kind: "split", Picks: []int{33, 36}, Wager: 10},
		},
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400; got %v", resp.Status)
	}

	var result game.SpinResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("could not unmarshal response: %v", err)
	}

	if result.Success {
		t.Fatal("expected failure")
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejected bet; got %d", len(result.Rejected))
	}
	if result.Rejected[0].Reason != "invalid_placement" {
		t.Errorf("reason = %q; want invalid_placement", result.Rejected[0].Reason)
	}
}

func TestSpinHandlerRequiresBets(t *testing.T) {
	s := newTestServer()

	resp := postJSON(t, s.App, "/api/v1/roulette/spin", game.SpinRequest{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400; got %v", resp.Status)
	}
}

func TestVerifyHandlerRoundTrip(t *testing.T) {
	s := newTestServer()

	// Settle a round to get revealed seeds
	resp := postJSON(t, s.App, "/api/v1/roulette/spin", game.SpinRequest{
		Bets: []game.BetInput{{Kind: "straight", Picks: []int{0}, Wager: 1}},
	})
	var spin game.SpinResponse
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &spin); err != nil {
		t.Fatalf("could not unmarshal spin response: %v", err)
	}
	if !spin.Success {
		t.Fatalf("spin failed: %s", spin.Message)
	}

	resp = postJSON(t, s.App, "/api/v1/roulette/verify", game.VerifyRequest{
		ServerSeed: spin.ServerSeed,
		ClientSeed: spin.ClientSeed,
		Nonce:      spin.Nonce,
		Pocket:     spin.Pocket,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.Status)
	}

	var verify game.VerifyResponse
	body, _ = io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &verify); err != nil {
		t.Fatalf("could not unmarshal verify response: %v", err)
	}

	if !verify.Valid {
		t.Errorf("expected round to verify; expected pocket %d, claimed %d", verify.Expected, verify.Pocket)
	}
}

func TestTableInfoHandler(t *testing.T) {
	s := newTestServer()

	req, err := http.NewRequest("GET", "/api/v1/roulette/table", nil)
	if err != nil {
		t.Fatalf("could not create request: %v", err)
	}

	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("could not perform request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.Status)
	}

	var result struct {
		Kinds []map[string]interface{} `json:"kinds"`
	}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("could not unmarshal response: %v", err)
	}

	if len(result.Kinds) != 12 {
		t.Errorf("expected 12 bet kinds; got %d", len(result.Kinds))
	}
}

func TestTableStateHandler(t *testing.T) {
	s := newTestServer()

	req, err := http.NewRequest("GET", "/api/v1/roulette/state", nil)
	if err != nil {
		t.Fatalf("could not create request: %v", err)
	}

	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("could not perform request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.Status)
	}

	var result map[string]interface{}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("could not unmarshal response: %v", err)
	}

	if result["min_bet"] == nil {
		t.Error("expected min_bet in state")
	}
}
