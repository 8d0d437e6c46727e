package game

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	REDIS_KEY_ROUND_PREFIX = "roulette:round:"
	REDIS_KEY_RECENT       = "roulette:recent"

	RECENT_POCKETS_LIMIT = 100
	ROUND_TTL            = 1 * time.Hour
)

// RoundStore persists settled rounds. Persistence is an audit trail, not
// engine state: the engine keeps spinning when a save fails.
type RoundStore interface {
	SaveRound(ctx context.Context, state RoundState, results []BetResult) error
}

// RouletteEngine runs one European table behind the GameEngine surface.
// Each spin request is a complete round: validate the batch, draw a
// provably fair pocket, settle, cache, record, broadcast.
type RouletteEngine struct {
	redisClient *redis.Client
	hub         *Hub
	store       RoundStore

	mu         sync.Mutex
	table      *Table
	nonce      int
	curNonce   int
	serverSeed string
	clientSeed string
	lastRound  *RoundState
}

// NewRouletteEngine creates the engine with default table limits. The
// table's draw is bound to the engine's per-round seeds.
func NewRouletteEngine(redisClient *redis.Client, hub *Hub) *RouletteEngine {
	e := &RouletteEngine{
		redisClient: redisClient,
		hub:         hub,
	}
	e.table = NewTable(func() int {
		return DrawPocket(e.serverSeed, e.clientSeed, e.curNonce)
	})
	return e
}

// SetStore attaches round persistence. Optional.
func (e *RouletteEngine) SetStore(store RoundStore) {
	e.store = store
}

// SetLimits configures the minimum floor and the per-bet ceiling (0 = none).
func (e *RouletteEngine) SetLimits(min, max int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table.SetMinBet(min)
	e.table.SetMaxBet(max)
}

// GetType returns the game type
func (e *RouletteEngine) GetType() GameType {
	return GameTypeRoulette
}

// Start initializes the roulette engine
func (e *RouletteEngine) Start(ctx context.Context) error {
	log.Printf("[ROULETTE] Engine started (min bet %d)", e.table.MinBet())
	return nil
}

// Stop gracefully stops the roulette engine
func (e *RouletteEngine) Stop() error {
	log.Println("[ROULETTE] Engine stopped")
	return nil
}

// GetState returns table limits and round counters.
func (e *RouletteEngine) GetState() interface{} {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := map[string]interface{}{
		"min_bet":       e.table.MinBet(),
		"max_bet":       e.table.MaxBet(),
		"rounds_played": len(e.table.History()),
	}
	if e.lastRound != nil {
		state["last_pocket"] = e.lastRound.Pocket
	}
	return state
}

// PlaceBet handles one spin request (a whole round of bets).
func (e *RouletteEngine) PlaceBet(ctx context.Context, req interface{}) (interface{}, error) {
	spinReq, ok := req.(SpinRequest)
	if !ok {
		return nil, errors.New("invalid request type")
	}
	return e.Spin(ctx, spinReq), nil
}

// ProcessAction exposes fairness verification.
func (e *RouletteEngine) ProcessAction(ctx context.Context, action string, req interface{}) (interface{}, error) {
	switch action {
	case "verify":
		verifyReq, ok := req.(VerifyRequest)
		if !ok {
			return nil, errors.New("invalid request type")
		}
		expected := DrawPocket(verifyReq.ServerSeed, verifyReq.ClientSeed, verifyReq.Nonce)
		return VerifyResponse{
			Valid:    expected == verifyReq.Pocket,
			Pocket:   verifyReq.Pocket,
			Expected: expected,
		}, nil
	default:
		return nil, errors.New("no such action for roulette")
	}
}

// Spin runs one round. On any rejected bet the whole batch is refused, the
// nonce is not consumed and table history is untouched.
func (e *RouletteEngine) Spin(ctx context.Context, req SpinRequest) SpinResponse {
	if len(req.Bets) == 0 {
		return SpinResponse{Success: false, Message: "No bets placed"}
	}

	bets := decodeBets(req.Bets)

	e.mu.Lock()
	e.curNonce = e.nonce + 1
	e.serverSeed = GenerateSeed()
	e.clientSeed = req.ClientSeed
	if e.clientSeed == "" {
		e.clientSeed = GenerateSeed()
	}

	outcome, betErrs := e.table.Spin(bets)
	if betErrs != nil {
		e.mu.Unlock()
		return SpinResponse{
			Success:  false,
			Message:  "Bet validation failed",
			Rejected: rejectedBets(betErrs),
		}
	}
	e.nonce = e.curNonce

	var totalWagered, totalPayout int64
	for _, res := range outcome.Results {
		totalWagered += res.Bet.Wager
		totalPayout += res.Payout
	}

	state := RoundState{
		RoundID:      uuid.New().String(),
		Nonce:        e.curNonce,
		ServerSeed:   e.serverSeed,
		ClientSeed:   e.clientSeed,
		Commitment:   HashCommitment(e.serverSeed),
		Pocket:       outcome.Pocket,
		Color:        outcome.Color.String(),
		TotalWagered: totalWagered,
		TotalPayout:  totalPayout,
		SettledAt:    time.Now(),
	}
	e.lastRound = &state
	e.mu.Unlock()

	e.cacheRound(ctx, state)

	if e.store != nil {
		if err := e.store.SaveRound(ctx, state, outcome.Results); err != nil {
			log.Printf("[ROULETTE] Failed to record round %s: %v", state.RoundID, err)
		}
	}

	if e.hub != nil {
		e.hub.BroadcastRound(state)
	}

	log.Printf("[ROULETTE] Round %s: pocket %d (%s), wagered %d, paid %d",
		state.RoundID, state.Pocket, state.Color, totalWagered, totalPayout)

	return SpinResponse{
		Success:      true,
		RoundID:      state.RoundID,
		Nonce:        state.Nonce,
		Commitment:   state.Commitment,
		ServerSeed:   state.ServerSeed,
		ClientSeed:   state.ClientSeed,
		Pocket:       state.Pocket,
		Color:        state.Color,
		TotalWagered: totalWagered,
		TotalPayout:  totalPayout,
		Results:      betOutcomes(outcome.Results),
	}
}

// LastRound returns a copy of the most recently settled round, or nil.
func (e *RouletteEngine) LastRound() *RoundState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastRound == nil {
		return nil
	}
	roundCopy := *e.lastRound
	return &roundCopy
}

// RecentPockets returns the latest winning pockets, newest first. Redis is
// tried first; the in-memory table history is the fallback.
func (e *RouletteEngine) RecentPockets(ctx context.Context, limit int) []int {
	if limit <= 0 || limit > RECENT_POCKETS_LIMIT {
		limit = RECENT_POCKETS_LIMIT
	}

	if e.redisClient != nil {
		vals, err := e.redisClient.LRange(ctx, REDIS_KEY_RECENT, 0, int64(limit-1)).Result()
		if err == nil && len(vals) > 0 {
			pockets := make([]int, 0, len(vals))
			for _, v := range vals {
				if n, err := strconv.Atoi(v); err == nil {
					pockets = append(pockets, n)
				}
			}
			return pockets
		}
	}

	e.mu.Lock()
	history := e.table.History()
	e.mu.Unlock()

	pockets := make([]int, 0, limit)
	for i := len(history) - 1; i >= 0 && len(pockets) < limit; i-- {
		pockets = append(pockets, history[i])
	}
	return pockets
}

// TableInfo describes every kind's multiplier and effective minimum, for
// client display.
func (e *RouletteEngine) TableInfo() []map[string]interface{} {
	e.mu.Lock()
	defer e.mu.Unlock()

	info := make([]map[string]interface{}, 0, len(kindNames))
	for k := range kindNames {
		kind := BetKind(k)
		info = append(info, map[string]interface{}{
			"kind":       kind.String(),
			"multiplier": kind.PayoutMultiplier(),
			"min_bet":    e.table.MinForKind(kind),
		})
	}
	return info
}

// cacheRound stores round state and the recent-winners list in Redis, best
// effort.
func (e *RouletteEngine) cacheRound(ctx context.Context, state RoundState) {
	if e.redisClient == nil {
		return
	}

	data, _ := json.Marshal(state)
	if err := e.redisClient.Set(ctx, REDIS_KEY_ROUND_PREFIX+state.RoundID, data, ROUND_TTL).Err(); err != nil {
		log.Printf("[ROULETTE] Failed to cache round %s: %v", state.RoundID, err)
		return
	}

	pipe := e.redisClient.Pipeline()
	pipe.LPush(ctx, REDIS_KEY_RECENT, state.Pocket)
	pipe.LTrim(ctx, REDIS_KEY_RECENT, 0, RECENT_POCKETS_LIMIT-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[ROULETTE] Failed to update recent pockets: %v", err)
	}
}

// decodeBets maps wire bets onto model bets. An unknown kind name becomes a
// bet with an out-of-range kind, which the validator rejects like any other
// illegal placement.
func decodeBets(inputs []BetInput) []Bet {
	bets := make([]Bet, 0, len(inputs))
	for _, in := range inputs {
		kind, ok := ParseBetKind(in.Kind)
		if !ok {
			kind = BetKind(-1)
		}
		bets = append(bets, NewBet(kind, in.Wager, in.Picks...))
	}
	return bets
}

func rejectedBets(errs []BetError) []RejectedBet {
	rejected := make([]RejectedBet, 0, len(errs))
	for _, be := range errs {
		rejected = append(rejected, RejectedBet{
			Kind:   be.Bet.Kind.String(),
			Picks:  be.Bet.Picks,
			Wager:  be.Bet.Wager,
			Reason: be.Reason.String(),
			Limit:  be.Limit,
		})
	}
	return rejected
}

func betOutcomes(results []BetResult) []BetOutcome {
	outcomes := make([]BetOutcome, 0, len(results))
	for _, res := range results {
		outcomes = append(outcomes, BetOutcome{
			Kind:   res.Bet.Kind.String(),
			Picks:  res.Bet.Picks,
			Wager:  res.Bet.Wager,
			Win:    res.Won(),
			Payout: res.Payout,
		})
	}
	return outcomes
}
