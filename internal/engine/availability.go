package engine

import (
	"math"

	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

// desperationChanceFactor scales the availability chance for the reroll.
const desperationChanceFactor = 0.8

// AvailabilityResult records one dice gate: the chance, the actual roll,
// and whether the roll succeeded.
type AvailabilityResult struct {
	Chance    int  `json:"chance"`
	Roll      int  `json:"roll"`
	Available bool `json:"available"`
}

// DesperationPenalties are the mandatory downstream penalties for a
// desperate-available merchant. Applied exactly once, never compounded.
type DesperationPenalties struct {
	PricePercent   int     // surcharge on the running price
	QuantityFactor float64 // scales the offered quantity
	SkillFactor    float64 // scales the merchant's skill
}

// StandardDesperationPenalties is the fixed penalty set for desperation
// rerolls.
var StandardDesperationPenalties = DesperationPenalties{
	PricePercent:   15,
	QuantityFactor: 0.75,
	SkillFactor:    0.8,
}

// AvailabilityChance returns the base availability chance for a settlement:
// (size + wealth) x 10, capped at 100.
func AvailabilityChance(s *settlement.Settlement) int {
	chance := (s.Size + s.Wealth) * 10
	if chance > 100 {
		chance = 100
	}
	return chance
}

// CheckAvailability rolls the availability gate. Success means a merchant
// is trading; failure may be followed by CheckDesperation.
func CheckAvailability(s *settlement.Settlement, src entropy.Source) AvailabilityResult {
	chance := AvailabilityChance(s)
	roll := src.D100()
	return AvailabilityResult{Chance: chance, Roll: roll, Available: roll <= chance}
}

// CheckDesperation runs the penalized second roll after a failed
// availability check. A success here yields a desperate-available merchant;
// the caller must apply StandardDesperationPenalties downstream.
func CheckDesperation(s *settlement.Settlement, src entropy.Source) AvailabilityResult {
	chance := int(math.Floor(float64(AvailabilityChance(s)) * desperationChanceFactor))
	roll := src.D100()
	return AvailabilityResult{Chance: chance, Roll: roll, Available: roll <= chance}
}
