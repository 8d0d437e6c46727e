package game

import (
	"time"
)

// BetInput is one bet as submitted over HTTP or websocket.
type BetInput struct {
	Kind  string `json:"kind"`
	Picks []int  `json:"picks"`
	Wager int64  `json:"wager"`
}

// SpinRequest is one round: a batch of bets placed together. The client
// seed is optional; a random one is generated when absent.
type SpinRequest struct {
	ClientSeed string     `json:"client_seed,omitempty"`
	Bets       []BetInput `json:"bets"`
}

// BetOutcome is the settled form of one submitted bet.
type BetOutcome struct {
	Kind   string `json:"kind"`
	Picks  []int  `json:"picks"`
	Wager  int64  `json:"wager"`
	Win    bool   `json:"win"`
	Payout int64  `json:"payout"`
}

// RejectedBet names one refused bet and the violated constraint. Limit is
// the floor or ceiling for the wager-policy reasons, 0 otherwise.
type RejectedBet struct {
	Kind   string `json:"kind"`
	Picks  []int  `json:"picks"`
	Wager  int64  `json:"wager"`
	Reason string `json:"reason"`
	Limit  int64  `json:"limit,omitempty"`
}

// SpinResponse is the full answer to a spin request. On rejection only
// Success, Message and Rejected are populated and no draw has happened.
type SpinResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	RoundID      string        `json:"round_id,omitempty"`
	Nonce        int           `json:"nonce,omitempty"`
	Commitment   string        `json:"commitment,omitempty"`
	ServerSeed   string        `json:"server_seed,omitempty"` // revealed: the round is already settled
	ClientSeed   string        `json:"client_seed,omitempty"`
	Pocket       int           `json:"pocket"`
	Color        string        `json:"color,omitempty"`
	TotalWagered int64         `json:"total_wagered,omitempty"`
	TotalPayout  int64         `json:"total_payout"`
	Results      []BetOutcome  `json:"results,omitempty"`
	Rejected     []RejectedBet `json:"rejected,omitempty"`
}

// VerifyRequest asks whether a revealed round really produced its pocket.
type VerifyRequest struct {
	ServerSeed string `json:"server_seed"`
	ClientSeed string `json:"client_seed"`
	Nonce      int    `json:"nonce"`
	Pocket     int    `json:"pocket"`
}

// VerifyResponse carries the recomputed pocket next to the claimed one.
type VerifyResponse struct {
	Valid    bool `json:"valid"`
	Pocket   int  `json:"pocket"`
	Expected int  `json:"expected"`
}

// RoundState is a settled round as cached and broadcast.
type RoundState struct {
	RoundID      string    `json:"round_id"`
	Nonce        int       `json:"nonce"`
	ServerSeed   string    `json:"server_seed"`
	ClientSeed   string    `json:"client_seed"`
	Commitment   string    `json:"commitment"`
	Pocket       int       `json:"pocket"`
	Color        string    `json:"color"`
	TotalWagered int64     `json:"total_wagered"`
	TotalPayout  int64     `json:"total_payout"`
	SettledAt    time.Time `json:"settled_at"`
}

// WSMessage is the envelope for every websocket frame.
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}
