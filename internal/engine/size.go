package engine

import (
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

// SizeResult records the cargo-size derivation for one merchant.
type SizeResult struct {
	BaseMultiplier int  `json:"base_multiplier"`
	Roll1          int  `json:"roll1"`
	Roll1Rounded   int  `json:"roll1_rounded"`
	Roll2          int  `json:"roll2,omitempty"`
	Roll2Rounded   int  `json:"roll2_rounded,omitempty"`
	SizeMultiplier int  `json:"size_multiplier"`
	TotalSize      int  `json:"total_size"` // EP
	TradeBonus     bool `json:"trade_bonus"`
}

// Round10Up rounds a roll up to the next multiple of ten. Idempotent and
// monotonic over [1,100].
func Round10Up(r int) int {
	return ((r + 9) / 10) * 10
}

// CalculateCargoSize determines the quantity offered, in EP. Trade centers
// roll twice and keep the higher rounded roll.
func CalculateCargoSize(s *settlement.Settlement, src entropy.Source) SizeResult {
	res := SizeResult{
		BaseMultiplier: s.Size + s.Wealth,
		TradeBonus:     s.IsTradeCenter(),
	}

	res.Roll1 = src.D100()
	res.Roll1Rounded = Round10Up(res.Roll1)
	res.SizeMultiplier = res.Roll1Rounded

	if res.TradeBonus {
		res.Roll2 = src.D100()
		res.Roll2Rounded = Round10Up(res.Roll2)
		if res.Roll2Rounded > res.SizeMultiplier {
			res.SizeMultiplier = res.Roll2Rounded
		}
	}

	res.TotalSize = res.BaseMultiplier * res.SizeMultiplier
	return res
}
