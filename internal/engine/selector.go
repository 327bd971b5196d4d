package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

// SelectionMethod says which branch of the cargo-type state machine ran.
type SelectionMethod string

const (
	MethodSpecificGoodsOnly    SelectionMethod = "specific_goods_only"
	MethodPureTradeCenter      SelectionMethod = "pure_trade_center"
	MethodTradeCenterWithGoods SelectionMethod = "trade_center_with_goods"
)

// RandomTradeGoodOption is the synthetic option offered by trade centers
// that also produce specific goods. Resolving it rolls the seasonal table.
const RandomTradeGoodOption = "Random Trade Good"

// Selection is the result of cargo-type selection for one merchant.
type Selection struct {
	Cargo   string          `json:"cargo"`
	Method  SelectionMethod `json:"method"`
	Options []string        `json:"options,omitempty"`

	// Recognized is false when the cargo is a raw production tag that the
	// catalog does not know; pricing for it needs GM adjudication.
	Recognized bool `json:"recognized"`
}

// CargoTypeSelector chooses which cargo a trade opportunity concerns.
type CargoTypeSelector struct {
	Catalog cargo.Catalog

	// RandomGoodWeight is the weight of the synthetic random option against
	// weight-1 specific tags in the TradeCenterWithGoods branch. Zero means
	// equal weight with a single tag.
	RandomGoodWeight int
}

// Select runs the selection state machine. Season is required; its absence
// is a caller error.
func (sel CargoTypeSelector) Select(s *settlement.Settlement, season cargo.Season, src entropy.Source) (Selection, error) {
	if !season.Valid() {
		return Selection{}, fmt.Errorf("season %d: %w", season, cargo.ErrInvalidArgument)
	}

	goods := s.SpecificGoods()

	switch {
	case !s.IsTradeCenter():
		if len(goods) == 0 {
			return Selection{}, fmt.Errorf("settlement %s has no production tags: %w", s.Name, cargo.ErrConfigurationMissing)
		}
		// The first production tag is the primary good. Unknown tags
		// degrade to the raw tag string rather than erroring; source data
		// sometimes carries free-text categories.
		tag := goods[0]
		out := Selection{Cargo: tag, Method: MethodSpecificGoodsOnly, Recognized: true}
		if _, err := sel.Catalog.Get(tag); err != nil {
			out.Recognized = false
			slog.Debug("production tag not in catalog, using raw tag", "settlement", s.Name, "tag", tag)
		}
		return out, nil

	case len(goods) == 0:
		// Production tags are exactly {"Trade"}.
		name, err := cargo.RollSeasonalTable(season, src.D100())
		if err != nil {
			return Selection{}, err
		}
		return Selection{Cargo: name, Method: MethodPureTradeCenter, Recognized: true}, nil

	default:
		options := append(append([]string(nil), goods...), RandomTradeGoodOption)
		randomWeight := sel.RandomGoodWeight
		if randomWeight <= 0 {
			randomWeight = 1
		}
		total := len(goods) + randomWeight
		pick := int(src.Float() * float64(total))

		out := Selection{Method: MethodTradeCenterWithGoods, Options: options, Recognized: true}
		if pick < len(goods) {
			out.Cargo = goods[pick]
			if _, err := sel.Catalog.Get(out.Cargo); err != nil {
				out.Recognized = false
			}
			return out, nil
		}
		name, err := cargo.RollSeasonalTable(season, src.D100())
		if err != nil {
			return Selection{}, err
		}
		out.Cargo = name
		return out, nil
	}
}
