package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/economy"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

func TestAttemptTradeAvailablePath(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Grainport", Region: "The Reaches", Size: 4, Wealth: 4,
		Production: []string{"Grain"},
	}
	// personality, availability (50 vs 80: pass), size roll 55,
	// percentile draw, skill variance.
	src := &entropy.Scripted{Rolls: []int{50, 50, 55, 1, 51}}
	orch := NewOrchestrator(cargo.DefaultCatalog(), src)

	attempt, err := orch.AttemptTrade(s, cargo.SeasonSpring, TradeOptions{})
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}

	m := attempt.Merchant
	if m.Availability != AvailabilityAvailable {
		t.Fatalf("availability = %s, want available", m.Availability)
	}
	if m.ID == "" || m.Personality == "" {
		t.Fatalf("merchant identity incomplete: %+v", m)
	}
	if m.Cargo != "Grain" {
		t.Fatalf("cargo = %q, want Grain", m.Cargo)
	}
	if m.QuantityEP != 480 { // (4+4) x 60
		t.Fatalf("quantity = %d, want 480", m.QuantityEP)
	}
	if m.Skill != 92 { // 25 + 32 base, +35 percentile, zero variance
		t.Fatalf("skill = %d, want 92", m.Skill)
	}
	if m.Role != RoleProducer {
		t.Fatalf("role = %s, want producer for an oversupplied market", m.Role)
	}
	if m.Price == nil {
		t.Fatal("expected a price breakdown")
	}
	if !m.Price.Total.Equal(decimal.NewFromInt(96)) { // 2 per 10 EP x 480 EP
		t.Fatalf("total = %s, want 96", m.Price.Total)
	}
	if attempt.Candidates == nil || attempt.Candidates.TotalWeight <= 0 {
		t.Fatalf("candidate table = %+v, want a populated table", attempt.Candidates)
	}
	if share := attempt.Candidates.Probability("Grain"); share <= 0 || share > 1 {
		t.Fatalf("Grain table share = %v, want within (0,1]", share)
	}
}

func TestAttemptTradeDesperationPenaltiesOnce(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Thornwell", Size: 1, Wealth: 1,
		Production: []string{"Grain"},
	}
	// personality, availability (90 vs 20: fail), desperation (10 vs 16:
	// pass), size roll 55, percentile draw, skill variance.
	src := &entropy.Scripted{Rolls: []int{50, 90, 10, 55, 1, 51}}
	orch := NewOrchestrator(cargo.DefaultCatalog(), src)

	attempt, err := orch.AttemptTrade(s, cargo.SeasonSpring, TradeOptions{AllowDesperation: true})
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}

	m := attempt.Merchant
	if m.Availability != AvailabilityDesperateAvailable {
		t.Fatalf("availability = %s, want desperate_available", m.Availability)
	}
	if attempt.Desperation == nil || attempt.Desperation.Chance != 16 {
		t.Fatalf("desperation record = %+v, want chance 16", attempt.Desperation)
	}
	if m.QuantityEP != 90 { // (1+1) x 60 = 120, x 0.75 once
		t.Fatalf("quantity = %d, want 90", m.QuantityEP)
	}
	if m.Skill != 54 { // 33 + 35, x 0.8 once, rounded
		t.Fatalf("skill = %d, want 54", m.Skill)
	}
	if m.Price == nil {
		t.Fatal("expected a price breakdown")
	}
	// Exactly one +15% desperation surcharge: 2 -> 2.3 per block.
	if !m.Price.FinalPerBlock.Equal(decimal.NewFromFloat(2.3)) {
		t.Fatalf("final per block = %s, want 2.3", m.Price.FinalPerBlock)
	}
	despMods := 0
	for _, mod := range m.Price.Modifiers {
		if mod.Type == economy.ModifierDesperation {
			despMods++
		}
	}
	if despMods != 1 {
		t.Fatalf("desperation modifiers = %d, want exactly 1", despMods)
	}
}

func TestAttemptTradeUnavailableStops(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Farwatch", Size: 1, Wealth: 1,
		Production: []string{"Grain"},
	}

	// No desperation allowed: a failed gate ends the attempt.
	src := &entropy.Scripted{Rolls: []int{50, 90}}
	orch := NewOrchestrator(cargo.DefaultCatalog(), src)
	attempt, err := orch.AttemptTrade(s, cargo.SeasonSpring, TradeOptions{})
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if attempt.Merchant.Availability != AvailabilityUnavailable {
		t.Fatalf("availability = %s, want unavailable", attempt.Merchant.Availability)
	}
	if attempt.Merchant.Cargo != "" || attempt.Size != nil || attempt.Merchant.Price != nil || attempt.Candidates != nil {
		t.Fatalf("unavailable attempt computed downstream results: %+v", attempt)
	}

	// Desperation allowed but failed.
	src = &entropy.Scripted{Rolls: []int{50, 90, 99}}
	orch = NewOrchestrator(cargo.DefaultCatalog(), src)
	attempt, err = orch.AttemptTrade(s, cargo.SeasonSpring, TradeOptions{AllowDesperation: true})
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if attempt.Merchant.Availability != AvailabilityDesperateUnavailable {
		t.Fatalf("availability = %s, want desperate_unavailable", attempt.Merchant.Availability)
	}
}

func TestAttemptTradeUnrecognizedCargoHasNoPrice(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Mistvale", Size: 4, Wealth: 4,
		Production: []string{"Dreamsilk"},
	}
	src := &entropy.Scripted{Rolls: []int{50, 10, 55, 1, 51}}
	orch := NewOrchestrator(cargo.DefaultCatalog(), src)

	attempt, err := orch.AttemptTrade(s, cargo.SeasonSummer, TradeOptions{})
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if attempt.Merchant.Cargo != "Dreamsilk" {
		t.Fatalf("cargo = %q, want the raw tag", attempt.Merchant.Cargo)
	}
	if attempt.Selection.Recognized {
		t.Fatal("selection should be unrecognized")
	}
	if attempt.Merchant.Price != nil {
		t.Fatal("unrecognized cargo must not be priced")
	}
}

func TestAttemptTradeDeterministicForSeed(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Crossbury", Size: 4, Wealth: 3,
		Production: []string{settlement.TradeTag, "Agriculture"},
		Flags:      []settlement.Flag{settlement.FlagTrade},
	}

	run := func() []TradeAttempt {
		orch := NewOrchestrator(cargo.DefaultCatalog(), entropy.NewSeeded(99))
		attempts, err := orch.GenerateMerchants(s, cargo.SeasonAutumn, TradeOptions{AllowDesperation: true})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		return attempts
	}

	a, b := run(), run()
	if len(a) != len(b) || len(a) != MerchantSlots(s) {
		t.Fatalf("slate sizes %d/%d, want %d", len(a), len(b), MerchantSlots(s))
	}
	for i := range a {
		ma, mb := a[i].Merchant, b[i].Merchant
		if ma.Cargo != mb.Cargo || ma.Skill != mb.Skill ||
			ma.QuantityEP != mb.QuantityEP || ma.Availability != mb.Availability ||
			ma.Personality != mb.Personality {
			t.Fatalf("attempt %d diverged:\n%+v\n%+v", i, ma, mb)
		}
		pa, pb := ma.Price, mb.Price
		if (pa == nil) != (pb == nil) {
			t.Fatalf("attempt %d price presence diverged", i)
		}
		if pa != nil && !pa.Total.Equal(pb.Total) {
			t.Fatalf("attempt %d totals diverged: %s vs %s", i, pa.Total, pb.Total)
		}
	}
}

func TestAttemptTradeInvalidInputs(t *testing.T) {
	orch := NewOrchestrator(cargo.DefaultCatalog(), entropy.NewSeeded(1))

	bad := &settlement.Settlement{Name: "", Size: 3, Wealth: 3}
	if _, err := orch.AttemptTrade(bad, cargo.SeasonSpring, TradeOptions{}); err == nil {
		t.Fatal("expected error for invalid settlement")
	}

	ok := &settlement.Settlement{Name: "X", Size: 3, Wealth: 3, Production: []string{"Grain"}}
	if _, err := orch.AttemptTrade(ok, cargo.Season(9), TradeOptions{}); err == nil {
		t.Fatal("expected error for invalid season")
	}
}
