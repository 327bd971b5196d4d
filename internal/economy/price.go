// Price pipeline: seasonal base price, quality tier, then sequential
// multiplicative modifiers, each recorded for audit.
package economy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/talgya/tradewinds/internal/cargo"
)

// UnitBlockEP is the EP size of one price unit block. All per-unit prices
// are quoted per this many EP.
const UnitBlockEP = 10

// ModifierType tags one step of the price pipeline.
type ModifierType string

const (
	ModifierPartialPurchase ModifierType = "partial_purchase"
	ModifierDesperation     ModifierType = "desperation"
	ModifierHaggle          ModifierType = "haggle"
)

// Modifier is one recorded pipeline step. Percent is signed and applies to
// the running price, not the original base; Amount is the resulting signed
// change per unit block.
type Modifier struct {
	Type        ModifierType    `json:"type"`
	Description string          `json:"description"`
	Percent     decimal.Decimal `json:"percent"`
	Amount      decimal.Decimal `json:"amount"`
}

// Breakdown is the full audit record of one price computation. Replaying
// the modifier list sequentially against the base reproduces FinalPerBlock
// exactly.
type Breakdown struct {
	Cargo        string            `json:"cargo"`
	Season       cargo.Season      `json:"season"`
	Quality      cargo.QualityTier `json:"quality"`
	BasePerBlock decimal.Decimal   `json:"base_per_block"`
	Modifiers    []Modifier        `json:"modifiers"`
	FinalPerBlock decimal.Decimal  `json:"final_per_block"`
	QuantityEP   int               `json:"quantity_ep"`
	Total        decimal.Decimal   `json:"total"`
}

// PriceOptions control the optional pipeline stages.
type PriceOptions struct {
	// Quality defaults to average when empty.
	Quality cargo.QualityTier
	// PartialPurchase adds the +10% partial-purchase penalty.
	PartialPurchase bool
	// Desperation adds the +15% desperate-availability surcharge.
	Desperation bool
}

// PriceCalculator computes per-block and total prices for a cargo.
type PriceCalculator struct {
	Catalog cargo.Catalog
}

// Calculate runs the pipeline up to but not including haggling. Haggle
// outcomes are applied afterwards with ApplyHaggle.
func (c PriceCalculator) Calculate(cargoName string, season cargo.Season, quantityEP int, opts PriceOptions) (Breakdown, error) {
	if !season.Valid() {
		return Breakdown{}, fmt.Errorf("season %d: %w", season, cargo.ErrInvalidArgument)
	}
	if quantityEP <= 0 {
		return Breakdown{}, fmt.Errorf("quantity %d EP: %w", quantityEP, cargo.ErrInvalidArgument)
	}

	ct, err := c.Catalog.Get(cargoName)
	if err != nil {
		return Breakdown{}, err
	}

	quality := opts.Quality
	if quality == "" {
		quality = cargo.QualityAverage
	}
	tierMult, err := ct.TierMultiplier(quality)
	if err != nil {
		return Breakdown{}, err
	}

	base := decimal.NewFromFloat(ct.Prices.For(season)).
		Mul(decimal.NewFromFloat(tierMult))

	b := Breakdown{
		Cargo:         cargoName,
		Season:        season,
		Quality:       quality,
		BasePerBlock:  base,
		FinalPerBlock: base,
		QuantityEP:    quantityEP,
	}

	if opts.PartialPurchase {
		b = b.withModifier(ModifierPartialPurchase, "partial purchase penalty", decimal.NewFromInt(10))
	}
	if opts.Desperation {
		b = b.withModifier(ModifierDesperation, "desperate availability surcharge", decimal.NewFromInt(15))
	}

	b.Total = totalFor(b.FinalPerBlock, quantityEP)
	return b, nil
}

// withModifier applies a signed percentage to the running price and records
// the step. Composition is multiplicative: each step sees the price left by
// the previous one.
func (b Breakdown) withModifier(mtype ModifierType, desc string, percent decimal.Decimal) Breakdown {
	amount := b.FinalPerBlock.Mul(percent).Div(decimal.NewFromInt(100))
	out := b
	out.Modifiers = append(append([]Modifier(nil), b.Modifiers...), Modifier{
		Type:        mtype,
		Description: desc,
		Percent:     percent,
		Amount:      amount,
	})
	out.FinalPerBlock = b.FinalPerBlock.Add(amount)
	out.Total = totalFor(out.FinalPerBlock, out.QuantityEP)
	return out
}

func totalFor(perBlock decimal.Decimal, quantityEP int) decimal.Decimal {
	return perBlock.Mul(decimal.NewFromInt(int64(quantityEP))).
		Div(decimal.NewFromInt(UnitBlockEP))
}

// Replay re-applies the modifier list to the base price and returns the
// reproduced final per-block price. Used to verify audit integrity.
func (b Breakdown) Replay() decimal.Decimal {
	price := b.BasePerBlock
	for _, m := range b.Modifiers {
		price = price.Add(price.Mul(m.Percent).Div(decimal.NewFromInt(100)))
	}
	return price
}
