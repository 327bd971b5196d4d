package engine

import (
	"math"

	"github.com/talgya/tradewinds/internal/settlement"
)

// Slot calculation constants.
const (
	// MaxMerchantSlots caps how many opportunities one settlement offers.
	MaxMerchantSlots = 15

	// populationSlotMultiplier adds one slot per 5,000 residents.
	populationSlotMultiplier = 0.0002

	// sizeSlotMultiplier adds half a slot per size ordinal.
	sizeSlotMultiplier = 0.5
)

// baseSlotsBySize maps the size ordinal to base slots. Index 0 unused.
var baseSlotsBySize = [6]int{0, 1, 2, 3, 4, 6}

// slotFlagMultipliers scale the running slot total, applied in flag-name
// order via SortedFlags.
var slotFlagMultipliers = map[settlement.Flag]float64{
	settlement.FlagTrade:       1.5,
	settlement.FlagGovernment:  1.2,
	settlement.FlagSubsistence: 0.5,
	settlement.FlagSmuggling:   1.3,
}

// MerchantSlots derives how many trading opportunities a settlement offers.
// Always at least 1, never more than MaxMerchantSlots.
func MerchantSlots(s *settlement.Settlement) int {
	size := s.Size
	if size < 1 {
		size = 1
	}
	if size > 5 {
		size = 5
	}

	slots := float64(baseSlotsBySize[size])
	slots += math.Floor(float64(s.Population) * populationSlotMultiplier)
	slots += math.Floor(float64(size) * sizeSlotMultiplier)

	for _, f := range s.SortedFlags() {
		if mult, ok := slotFlagMultipliers[f]; ok {
			slots *= mult
		}
	}

	n := int(math.Floor(slots))
	if n < 1 {
		n = 1
	}
	if n > MaxMerchantSlots {
		n = MaxMerchantSlots
	}
	return n
}
