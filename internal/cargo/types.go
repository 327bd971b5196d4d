package cargo

import "fmt"

// QualityTier names a multiplier bracket for cargo that takes quality grading.
type QualityTier string

const (
	QualityPoor      QualityTier = "poor"
	QualityAverage   QualityTier = "average"
	QualityGood      QualityTier = "good"
	QualityExcellent QualityTier = "excellent"
)

// DefaultQualityTiers returns the standard tier multiplier table.
// Cargo types may override it with their own table.
func DefaultQualityTiers() map[QualityTier]float64 {
	return map[QualityTier]float64{
		QualityPoor:      0.5,
		QualityAverage:   1.0,
		QualityGood:      1.5,
		QualityExcellent: 2.0,
	}
}

// Type is one tradeable cargo type. Prices are per ten-EP unit block, in the
// canonical currency unit. Reference data; never mutated after load.
type Type struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`

	// Base price per ten EP, one value per season.
	Prices SeasonalPrices `json:"prices" yaml:"prices"`

	// Optional per-type quality multipliers. Empty means DefaultQualityTiers.
	QualityTiers map[QualityTier]float64 `json:"quality_tiers,omitempty" yaml:"quality_tiers,omitempty"`

	// EP weight of a single unit of this cargo.
	EncumbrancePerUnit int `json:"encumbrance_per_unit" yaml:"encumbrance_per_unit"`
}

// SeasonalPrices holds one base price per season.
type SeasonalPrices struct {
	Spring float64 `json:"spring" yaml:"spring"`
	Summer float64 `json:"summer" yaml:"summer"`
	Autumn float64 `json:"autumn" yaml:"autumn"`
	Winter float64 `json:"winter" yaml:"winter"`
}

// For returns the base price for the given season.
func (p SeasonalPrices) For(s Season) float64 {
	switch s {
	case SeasonSpring:
		return p.Spring
	case SeasonSummer:
		return p.Summer
	case SeasonAutumn:
		return p.Autumn
	case SeasonWinter:
		return p.Winter
	default:
		return 0
	}
}

// TierMultiplier resolves the quality multiplier for this cargo type,
// falling back to the default table when the type carries none.
func (t Type) TierMultiplier(tier QualityTier) (float64, error) {
	table := t.QualityTiers
	if len(table) == 0 {
		table = DefaultQualityTiers()
	}
	mult, ok := table[tier]
	if !ok {
		return 0, fmt.Errorf("quality tier %q for %s: %w", tier, t.Name, ErrNotFound)
	}
	return mult, nil
}
