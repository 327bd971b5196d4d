package engine

import (
	"errors"
	"testing"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

func selector() CargoTypeSelector {
	return CargoTypeSelector{Catalog: cargo.DefaultCatalog()}
}

func TestSelectSpecificGoodsOnly(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Greenstead", Size: 2, Wealth: 2,
		Production: []string{"Agriculture"},
	}

	// The outcome must not depend on season or rng.
	for _, season := range cargo.Seasons {
		for seed := int64(1); seed <= 5; seed++ {
			sel, err := selector().Select(s, season, entropy.NewSeeded(seed))
			if err != nil {
				t.Fatalf("%s seed %d: %v", season, seed, err)
			}
			if sel.Method != MethodSpecificGoodsOnly {
				t.Fatalf("method = %s, want specific_goods_only", sel.Method)
			}
			if sel.Cargo != "Agriculture" {
				t.Fatalf("cargo = %q, want Agriculture", sel.Cargo)
			}
			if sel.Recognized {
				t.Fatal("category tag should be flagged unrecognized")
			}
		}
	}
}

func TestSelectSpecificGoodRecognizedCargoName(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Grainport", Size: 2, Wealth: 2,
		Production: []string{"Grain"},
	}
	sel, err := selector().Select(s, cargo.SeasonSpring, entropy.NewSeeded(1))
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Cargo != "Grain" || !sel.Recognized {
		t.Fatalf("selection = %+v, want recognized Grain", sel)
	}
}

func TestSelectPureTradeCenter(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Crosswick", Size: 4, Wealth: 4,
		Production: []string{settlement.TradeTag},
	}

	sel, err := selector().Select(s, cargo.SeasonSpring, &entropy.Scripted{Rolls: []int{1}})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Method != MethodPureTradeCenter {
		t.Fatalf("method = %s, want pure_trade_center", sel.Method)
	}
	if sel.Cargo != "Grain" {
		t.Fatalf("cargo = %q, want Grain for spring roll 1", sel.Cargo)
	}
}

func TestSelectTradeCenterWithGoods(t *testing.T) {
	s := &settlement.Settlement{
		Name: "Silverport", Size: 4, Wealth: 4,
		Production: []string{settlement.TradeTag, "Agriculture"},
	}

	// Float 0 picks the first specific tag.
	sel, err := selector().Select(s, cargo.SeasonSpring, &entropy.Scripted{Rolls: []int{1}})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Method != MethodTradeCenterWithGoods {
		t.Fatalf("method = %s, want trade_center_with_goods", sel.Method)
	}
	if sel.Cargo != "Agriculture" {
		t.Fatalf("cargo = %q, want Agriculture", sel.Cargo)
	}
	if len(sel.Options) != 2 || sel.Options[1] != RandomTradeGoodOption {
		t.Fatalf("options = %v, want tags plus %q", sel.Options, RandomTradeGoodOption)
	}

	// A high draw picks the synthetic option, which rolls the seasonal
	// table with the next d100.
	sel, err = selector().Select(s, cargo.SeasonSpring, &entropy.Scripted{Rolls: []int{99, 7}})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Cargo != "Grain" {
		t.Fatalf("cargo = %q, want Grain for spring roll 7", sel.Cargo)
	}
}

func TestSelectRequiresSeason(t *testing.T) {
	s := &settlement.Settlement{Name: "X", Size: 2, Wealth: 2, Production: []string{"Agriculture"}}
	if _, err := selector().Select(s, cargo.Season(9), entropy.NewSeeded(1)); !errors.Is(err, cargo.ErrInvalidArgument) {
		t.Fatalf("out-of-range season error = %v, want ErrInvalidArgument", err)
	}

	// A zero-value Season is a forgotten season, not spring.
	var forgotten cargo.Season
	trade := &settlement.Settlement{Name: "X", Size: 2, Wealth: 2, Production: []string{settlement.TradeTag}}
	if _, err := selector().Select(trade, forgotten, entropy.NewSeeded(1)); !errors.Is(err, cargo.ErrInvalidArgument) {
		t.Fatalf("zero season error = %v, want ErrInvalidArgument", err)
	}
}

func TestSelectNoProductionTags(t *testing.T) {
	s := &settlement.Settlement{Name: "X", Size: 2, Wealth: 2}
	if _, err := selector().Select(s, cargo.SeasonSpring, entropy.NewSeeded(1)); !errors.Is(err, cargo.ErrConfigurationMissing) {
		t.Fatalf("no tags error = %v, want ErrConfigurationMissing", err)
	}
}
