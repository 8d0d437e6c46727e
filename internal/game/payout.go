package game

// Settle evaluates every bet against the winning pocket and its color,
// returning one result per bet in the same order. It is a pure function of
// its inputs. Bets are expected to have passed ValidPlacement; settlement of
// an unvalidated bet with too few picks will panic rather than guess.
func Settle(winning int, color Color, bets []Bet) []BetResult {
	results := make([]BetResult, 0, len(bets))
	for _, bet := range bets {
		var payout int64
		if wins(winning, color, bet) {
			payout = bet.WinValue()
		}
		results = append(results, BetResult{Bet: bet, Payout: payout})
	}
	return results
}

// wins decides the per-kind win condition. The inside kinds win by pocket
// membership; the grouped kinds win by range or residue arithmetic. Zero is
// a house pocket: it has no color, is neither high nor low, and counts as
// neither even nor odd, so every outside bet loses on it.
func wins(winning int, color Color, b Bet) bool {
	switch b.Kind {
	case Straight, Split, Street, Basket, Topline, Corner, DoubleLine:
		for _, p := range b.Picks {
			if p == winning {
				return true
			}
		}
		return false
	case Dozens:
		g := b.Picks[0]
		return winning >= (g-1)*12+1 && winning <= g*12
	case Columns:
		c := b.Picks[0]
		return winning >= c && winning <= 36 && (winning-c)%3 == 0
	case EvenOdd:
		return winning != 0 && winning%2 == b.Picks[0]
	case HighLow:
		v := b.Picks[0]
		return (v == 0 && winning >= 1 && winning <= 18) ||
			(v == 1 && winning >= 19 && winning <= 36)
	case RedBlack:
		v := b.Picks[0]
		return (v == 0 && color == ColorRed) || (v == 1 && color == ColorBlack)
	}
	return false
}
