package game

import "fmt"

// RejectReason classifies why a bet was refused before the draw.
type RejectReason int

const (
	// ReasonInvalidPlacement: the picks do not form a legal position on the
	// layout.
	ReasonInvalidPlacement RejectReason = iota
	// ReasonBelowMinimum: the wager is under the kind's effective floor.
	ReasonBelowMinimum
	// ReasonAboveMaximum: the wager is over the table ceiling.
	ReasonAboveMaximum
)

func (r RejectReason) String() string {
	switch r {
	case ReasonBelowMinimum:
		return "below_minimum"
	case ReasonAboveMaximum:
		return "above_maximum"
	default:
		return "invalid_placement"
	}
}

// BetError is one rejected bet with enough context to render a message
// without further lookups. Limit carries the violated floor or ceiling when
// the reason is a wager policy.
type BetError struct {
	Bet    Bet
	Reason RejectReason
	Limit  int64
}

func (e BetError) Error() string {
	switch e.Reason {
	case ReasonBelowMinimum:
		return fmt.Sprintf("minimum (%d) not met for bet %s", e.Limit, e.Bet)
	case ReasonAboveMaximum:
		return fmt.Sprintf("maximum (%d) exceeded for bet %s", e.Limit, e.Bet)
	default:
		return fmt.Sprintf("invalid bet placement: %s", e.Bet)
	}
}
