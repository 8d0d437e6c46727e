package game

// DrawFunc produces a uniformly distributed pocket in [0, 36]. The table
// never draws on its own: randomness is injected so validation and
// settlement stay deterministic under test.
type DrawFunc func() int

// Table runs rounds for one physical table. It owns the wager policy and an
// append-only history of winning pockets. A Table is not safe for concurrent
// spins; callers running parallel tables use one Table each.
type Table struct {
	draw    DrawFunc
	minBet  int64
	maxBet  int64 // 0 = no ceiling
	history []int
}

// SpinOutcome is one settled round: the drawn pocket, its color, and one
// result per submitted bet in submission order.
type SpinOutcome struct {
	Pocket  int
	Color   Color
	Results []BetResult
}

// NewTable creates a table with the default minimum of 1 and no maximum.
func NewTable(draw DrawFunc) *Table {
	return &Table{
		draw:   draw,
		minBet: 1,
	}
}

// SetMinBet sets the table-wide minimum floor. Values below 1 reset to 1.
func (t *Table) SetMinBet(min int64) {
	if min < 1 {
		min = 1
	}
	t.minBet = min
}

// SetMaxBet sets the per-bet ceiling; 0 removes it.
func (t *Table) SetMaxBet(max int64) {
	if max < 0 {
		max = 0
	}
	t.maxBet = max
}

func (t *Table) MinBet() int64 { return t.minBet }
func (t *Table) MaxBet() int64 { return t.maxBet }

// History returns a copy of every winning pocket so far, oldest first.
func (t *Table) History() []int {
	out := make([]int, len(t.history))
	copy(out, t.history)
	return out
}

// MinForKind is the effective floor for one kind: the table minimum scaled
// by the kind's policy multiplier.
func (t *Table) MinForKind(kind BetKind) int64 {
	if kind < 0 || int(kind) >= len(minUnitByKind) {
		return t.minBet
	}
	return t.minBet * minUnitByKind[kind]
}

// Spin runs one round. Every bet is validated first and all rejections are
// collected; if any bet is refused, no draw happens, history is untouched,
// and the full rejection list is returned. Otherwise the pocket is drawn,
// appended to history, and every bet settled in order.
func (t *Table) Spin(bets []Bet) (*SpinOutcome, []BetError) {
	if errs := t.validate(bets); len(errs) > 0 {
		return nil, errs
	}

	pocket := t.draw()
	t.history = append(t.history, pocket)

	color := PocketColor(pocket)
	return &SpinOutcome{
		Pocket:  pocket,
		Color:   color,
		Results: Settle(pocket, color, bets),
	}, nil
}

// validate checks geometry first, then the wager policy. A bet with illegal
// picks is reported once; its wager is not inspected further.
func (t *Table) validate(bets []Bet) []BetError {
	var errs []BetError
	for _, bet := range bets {
		if !ValidPlacement(bet.Kind, bet.Picks) {
			errs = append(errs, BetError{Bet: bet, Reason: ReasonInvalidPlacement})
			continue
		}
		if floor := t.MinForKind(bet.Kind); bet.Wager < floor {
			errs = append(errs, BetError{Bet: bet, Reason: ReasonBelowMinimum, Limit: floor})
			continue
		}
		if t.maxBet > 0 && bet.Wager > t.maxBet {
			errs = append(errs, BetError{Bet: bet, Reason: ReasonAboveMaximum, Limit: t.maxBet})
		}
	}
	return errs
}
