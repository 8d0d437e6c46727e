package game

import (
	"fmt"
	"strings"
)

// BetKind enumerates every placeable bet on a European table.
type BetKind int

const (
	// Straight covers a single pocket, 0-36.
	Straight BetKind = iota
	// Split covers two adjacent pockets.
	Split
	// Street covers one row of three consecutive pockets.
	Street
	// Basket covers 0,1,2 or 0,2,3.
	Basket
	// Topline covers 0,1,2,3.
	Topline
	// Corner covers a 2x2 block of four pockets.
	Corner
	// DoubleLine covers two adjacent streets, six pockets.
	DoubleLine
	// Dozens covers 1-12, 13-24 or 25-36 (selector 1-3).
	Dozens
	// Columns covers every third pocket starting at the selector (1-3).
	Columns
	// EvenOdd: selector 0 = even, 1 = odd. Zero loses either way.
	EvenOdd
	// HighLow: selector 0 = 1-18, 1 = 19-36.
	HighLow
	// RedBlack: selector 0 = red, 1 = black.
	RedBlack
)

var kindNames = [...]string{
	Straight:   "straight",
	Split:      "split",
	Street:     "street",
	Basket:     "basket",
	Topline:    "topline",
	Corner:     "corner",
	DoubleLine: "doubleline",
	Dozens:     "dozens",
	Columns:    "columns",
	EvenOdd:    "evenodd",
	HighLow:    "highlow",
	RedBlack:   "redblack",
}

// payoutByKind is the fixed multiplier applied to a winning wager. It
// depends on the kind only, never on the picks.
var payoutByKind = [...]int64{
	Straight:   36,
	Split:      18,
	Street:     12,
	Basket:     12,
	Topline:    9,
	Corner:     9,
	DoubleLine: 6,
	Dozens:     3,
	Columns:    3,
	EvenOdd:    2,
	HighLow:    2,
	RedBlack:   2,
}

// minUnitByKind scales the table's minimum-bet floor per kind. Uniformly 1
// today, but kept as a table so kinds can be differentiated without touching
// the validation flow.
var minUnitByKind = [...]int64{
	Straight:   1,
	Split:      1,
	Street:     1,
	Basket:     1,
	Topline:    1,
	Corner:     1,
	DoubleLine: 1,
	Dozens:     1,
	Columns:    1,
	EvenOdd:    1,
	HighLow:    1,
	RedBlack:   1,
}

func (k BetKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// PayoutMultiplier returns the fixed win multiplier for the kind. Unknown
// kinds pay nothing.
func (k BetKind) PayoutMultiplier() int64 {
	if k < 0 || int(k) >= len(payoutByKind) {
		return 0
	}
	return payoutByKind[k]
}

// ParseBetKind maps a wire name to its kind.
func ParseBetKind(name string) (BetKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return BetKind(k), true
		}
	}
	return BetKind(-1), false
}

// Bet is one attempted placement. It is a plain value: construction never
// validates, so a malformed bet can be carried through to a structured
// rejection.
type Bet struct {
	Kind  BetKind
	Picks []int
	Wager int64
}

// NewBet builds a bet from a kind, a wager in the smallest currency unit,
// and the kind's picks (covered pockets, or a single selector for the
// grouped kinds).
func NewBet(kind BetKind, wager int64, picks ...int) Bet {
	return Bet{Kind: kind, Picks: picks, Wager: wager}
}

// WinValue is the amount returned if this bet wins.
func (b Bet) WinValue() int64 {
	return b.Wager * b.Kind.PayoutMultiplier()
}

func (b Bet) String() string {
	picks := make([]string, len(b.Picks))
	for i, p := range b.Picks {
		picks[i] = fmt.Sprintf("%d", p)
	}
	return fmt.Sprintf("%s(%s) wager=%d", b.Kind, strings.Join(picks, ","), b.Wager)
}

// BetResult pairs a settled bet with its payout: wager times the kind
// multiplier on a win, zero on a loss.
type BetResult struct {
	Bet    Bet
	Payout int64
}

// Won reports whether the bet paid out.
func (r BetResult) Won() bool {
	return r.Payout > 0
}
