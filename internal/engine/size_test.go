package engine

import (
	"testing"

	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

func TestRound10Up(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 10}, {9, 10}, {10, 10}, {11, 20}, {55, 60}, {99, 100}, {100, 100},
	}
	for _, tc := range cases {
		if got := Round10Up(tc.in); got != tc.want {
			t.Fatalf("Round10Up(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRound10UpIdempotentAndMonotonic(t *testing.T) {
	prev := 0
	for r := 1; r <= 100; r++ {
		rounded := Round10Up(r)
		if rounded%10 != 0 || rounded < 10 || rounded > 100 {
			t.Fatalf("Round10Up(%d) = %d outside {10,...,100}", r, rounded)
		}
		if Round10Up(rounded) != rounded {
			t.Fatalf("Round10Up not idempotent at %d", r)
		}
		if rounded < prev {
			t.Fatalf("Round10Up not monotonic at %d", r)
		}
		prev = rounded
	}
}

func TestCalculateCargoSize(t *testing.T) {
	s := &settlement.Settlement{Name: "Oakdale", Size: 4, Wealth: 4}

	res := CalculateCargoSize(s, &entropy.Scripted{Rolls: []int{55}})
	if res.BaseMultiplier != 8 {
		t.Fatalf("base multiplier = %d, want 8", res.BaseMultiplier)
	}
	if res.SizeMultiplier != 60 {
		t.Fatalf("size multiplier = %d, want 60", res.SizeMultiplier)
	}
	if res.TotalSize != 480 {
		t.Fatalf("total size = %d, want 480", res.TotalSize)
	}
	if res.TradeBonus || res.Roll2 != 0 {
		t.Fatalf("non-trade settlement rolled twice: %+v", res)
	}
}

func TestCalculateCargoSizeTradeCenter(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Crossport", Size: 4, Wealth: 4,
		Production: []string{settlement.TradeTag},
	}

	res := CalculateCargoSize(s, &entropy.Scripted{Rolls: []int{35, 75}})
	if !res.TradeBonus {
		t.Fatal("trade bonus not applied")
	}
	if res.Roll1Rounded != 40 || res.Roll2Rounded != 80 {
		t.Fatalf("rounded rolls = %d/%d, want 40/80", res.Roll1Rounded, res.Roll2Rounded)
	}
	if res.SizeMultiplier != 80 {
		t.Fatalf("size multiplier = %d, want max of the two (80)", res.SizeMultiplier)
	}
	if res.TotalSize != 640 {
		t.Fatalf("total size = %d, want 640", res.TotalSize)
	}
}
