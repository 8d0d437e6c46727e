package game

import (
	"testing"
)

func TestPayoutMultiplier(t *testing.T) {
	tests := []struct {
		kind BetKind
		want int64
	}{
		{Straight, 36},
		{Split, 18},
		{Street, 12},
		{Basket, 12},
		{Topline, 9},
		{Corner, 9},
		{DoubleLine, 6},
		{Dozens, 3},
		{Columns, 3},
		{EvenOdd, 2},
		{HighLow, 2},
		{RedBlack, 2},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.PayoutMultiplier(); got != tt.want {
				t.Errorf("PayoutMultiplier() = %d, want %d", got, tt.want)
			}
		})
	}

	if BetKind(-1).PayoutMultiplier() != 0 {
		t.Error("unknown kind should pay nothing")
	}
}

func TestParseBetKind(t *testing.T) {
	for k, name := range kindNames {
		kind, ok := ParseBetKind(name)
		if !ok {
			t.Errorf("ParseBetKind(%q) not found", name)
		}
		if kind != BetKind(k) {
			t.Errorf("ParseBetKind(%q) = %v, want %v", name, kind, BetKind(k))
		}
	}

	if _, ok := ParseBetKind("martingale"); ok {
		t.Error("unknown name should not parse")
	}
	if _, ok := ParseBetKind(""); ok {
		t.Error("empty name should not parse")
	}
}

func TestWinValue(t *testing.T) {
	if got := NewBet(Straight, 10, 17).WinValue(); got != 360 {
		t.Errorf("straight WinValue() = %d, want 360", got)
	}
	if got := NewBet(RedBlack, 25, 0).WinValue(); got != 50 {
		t.Errorf("redblack WinValue() = %d, want 50", got)
	}
}

func TestBetString(t *testing.T) {
	b := NewBet(Split, 5, 1, 2)
	if got := b.String(); got != "split(1,2) wager=5" {
		t.Errorf("String() = %q", got)
	}

	unknown := NewBet(BetKind(-1), 5, 1)
	if got := unknown.String(); got != "unknown(1) wager=5" {
		t.Errorf("String() = %q", got)
	}
}
