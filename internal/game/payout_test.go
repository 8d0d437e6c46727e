package game

import (
	"testing"
)

func TestSettleStraight(t *testing.T) {
	bets := []Bet{
		NewBet(Straight, 10, 17),
		NewBet(Straight, 10, 18),
	}

	results := Settle(17, PocketColor(17), bets)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Won() || results[0].Payout != 360 {
		t.Errorf("straight on 17 should pay 360, got %d", results[0].Payout)
	}
	if results[1].Won() || results[1].Payout != 0 {
		t.Errorf("straight on 18 should pay 0, got %d", results[1].Payout)
	}
}

// One settled round covering most kinds at once: the pocket is 2 (black).
func TestSettleMixedRound(t *testing.T) {
	bets := []Bet{
		NewBet(Straight, 10, 2),          // wins, 360
		NewBet(Split, 10, 1, 2),          // wins, 180
		NewBet(Street, 10, 1, 2, 3),      // wins, 120
		NewBet(Basket, 10, 0, 1, 2),      // wins, 120
		NewBet(Topline, 10, 0, 1, 2, 3),  // wins, 90
		NewBet(Corner, 10, 1, 2, 4, 5),   // wins, 90
		NewBet(DoubleLine, 10, 1, 2, 3, 4, 5, 6), // wins, 60
		NewBet(Dozens, 10, 1),            // wins, 30
		NewBet(Columns, 10, 2),           // wins, 30
		NewBet(EvenOdd, 10, 0),           // wins, 20
		NewBet(HighLow, 10, 0),           // wins, 20
		NewBet(RedBlack, 10, 1),          // wins, 20
		NewBet(RedBlack, 10, 0),          // red, loses
		NewBet(Straight, 10, 0),          // loses
	}

	results := Settle(2, PocketColor(2), bets)

	wantPayouts := []int64{360, 180, 120, 120, 90, 90, 60, 30, 30, 20, 20, 20, 0, 0}
	var total int64
	for i, want := range wantPayouts {
		if results[i].Payout != want {
			t.Errorf("bet %d (%s): payout = %d, want %d", i, results[i].Bet.Kind, results[i].Payout, want)
		}
		total += results[i].Payout
	}
	if total != 1140 {
		t.Errorf("total payout = %d, want 1140", total)
	}
}

func TestSettleZeroLosesOutsideBets(t *testing.T) {
	bets := []Bet{
		NewBet(EvenOdd, 10, 0),  // even
		NewBet(EvenOdd, 10, 1),  // odd
		NewBet(HighLow, 10, 0),  // low
		NewBet(HighLow, 10, 1),  // high
		NewBet(RedBlack, 10, 0), // red
		NewBet(RedBlack, 10, 1), // black
		NewBet(Dozens, 10, 1),
		NewBet(Columns, 10, 1),
	}

	results := Settle(0, ColorGreen, bets)

	for _, res := range results {
		if res.Won() {
			t.Errorf("%s should lose on zero", res.Bet)
		}
	}
}

func TestSettleZeroWinsCoveringInsideBets(t *testing.T) {
	bets := []Bet{
		NewBet(Straight, 10, 0),
		NewBet(Split, 10, 0, 2),
		NewBet(Basket, 10, 0, 1, 2),
		NewBet(Topline, 10, 0, 1, 2, 3),
	}

	results := Settle(0, ColorGreen, bets)

	for _, res := range results {
		if !res.Won() {
			t.Errorf("%s covers zero and should win", res.Bet)
		}
	}
}

func TestSettleDozensBoundaries(t *testing.T) {
	tests := []struct {
		group   int
		winning int
		want    bool
	}{
		{1, 1, true},
		{1, 12, true},
		{1, 13, false},
		{2, 12, false},
		{2, 13, true},
		{2, 24, true},
		{3, 24, false},
		{3, 25, true},
		{3, 36, true},
		{1, 0, false},
	}

	for _, tt := range tests {
		bet := NewBet(Dozens, 10, tt.group)
		results := Settle(tt.winning, PocketColor(tt.winning), []Bet{bet})
		if results[0].Won() != tt.want {
			t.Errorf("dozens(%d) on %d: won = %v, want %v", tt.group, tt.winning, results[0].Won(), tt.want)
		}
	}
}

func TestSettleColumns(t *testing.T) {
	// Column c holds c, c+3, ..., c+33.
	for c := 1; c <= 3; c++ {
		bet := NewBet(Columns, 10, c)
		for winning := 0; winning <= 36; winning++ {
			want := winning >= 1 && winning%3 == c%3
			results := Settle(winning, PocketColor(winning), []Bet{bet})
			if results[0].Won() != want {
				t.Errorf("columns(%d) on %d: won = %v, want %v", c, winning, results[0].Won(), want)
			}
		}
	}
}

func TestSettleRedBlack(t *testing.T) {
	redBet := NewBet(RedBlack, 10, 0)
	blackBet := NewBet(RedBlack, 10, 1)

	results := Settle(32, PocketColor(32), []Bet{redBet, blackBet}) // 32 is red
	if !results[0].Won() {
		t.Error("red bet should win on 32")
	}
	if results[1].Won() {
		t.Error("black bet should lose on 32")
	}

	results = Settle(26, PocketColor(26), []Bet{redBet, blackBet}) // 26 is black
	if results[0].Won() {
		t.Error("red bet should lose on 26")
	}
	if !results[1].Won() {
		t.Error("black bet should win on 26")
	}
}

func TestSettleKeepsSubmissionOrder(t *testing.T) {
	bets := []Bet{
		NewBet(Straight, 1, 5),
		NewBet(Straight, 2, 6),
		NewBet(Straight, 3, 7),
	}

	results := Settle(6, PocketColor(6), bets)

	for i := range bets {
		if results[i].Bet.Wager != bets[i].Wager {
			t.Fatalf("result %d out of order", i)
		}
	}
}
