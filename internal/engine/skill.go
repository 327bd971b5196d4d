package engine

import (
	"fmt"
	"math"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

// Canonical skill bounds.
const (
	SkillMin = 5
	SkillMax = 95

	skillWealthFactor = 8
	skillBase         = 25
	skillVariance     = 10.0 // uniform, plus or minus
)

// percentileModifiers is the step table from percentile draw to skill
// offset. The smallest breakpoint at or above the requested percentile
// applies; percentiles above the last breakpoint take its modifier.
var percentileModifiers = []struct {
	breakpoint float64
	modifier   int
}{
	{10, -15},
	{25, -8},
	{50, 0},
	{75, 8},
	{90, 15},
	{95, 25},
	{99, 35},
}

// GenerateSkill derives a merchant's negotiation skill from settlement
// wealth and a percentile draw in (0,100]. The variance term comes from the
// injected source, so a fixed source reproduces exact sequences.
func GenerateSkill(s *settlement.Settlement, percentile float64, src entropy.Source) (int, error) {
	if percentile <= 0 || percentile > 100 {
		return 0, fmt.Errorf("percentile %v outside (0,100]: %w", percentile, cargo.ErrInvalidArgument)
	}

	base := skillBase + s.Wealth*skillWealthFactor

	modifier := percentileModifiers[len(percentileModifiers)-1].modifier
	for _, step := range percentileModifiers {
		if percentile <= step.breakpoint {
			modifier = step.modifier
			break
		}
	}

	variance := src.Float()*2*skillVariance - skillVariance
	skill := int(math.Round(float64(base+modifier) + variance))

	if skill < SkillMin {
		skill = SkillMin
	}
	if skill > SkillMax {
		skill = SkillMax
	}
	return skill, nil
}

// DrawPercentile converts a source draw to a percentile in (0,100].
func DrawPercentile(src entropy.Source) float64 {
	return 100 - src.Float()*100
}

// Legacy skill tier names, highest threshold first applies.
var legacySkillTiers = []struct {
	min  int
	name string
}{
	{111, "Legendary"},
	{96, "Master"},
	{81, "Expert"},
	{66, "Competent"},
	{51, "Journeyman"},
	{36, "Apprentice"},
	{21, "Novice"},
}

// LegacySkillRoll is the older dice-sum skill model: two six-sided rolls
// scaled by two plus a flat forty, clamped to [21,120], with seven named
// tiers.
//
// Deprecated: the percentile model in GenerateSkill is canonical. This path
// is kept so legacy merchant records remain interpretable.
func LegacySkillRoll(src entropy.Source) (int, string) {
	d6 := func() int { return int(src.Float()*6) + 1 }
	skill := (d6()+d6())*2 + 40
	if skill < 21 {
		skill = 21
	}
	if skill > 120 {
		skill = 120
	}
	for _, tier := range legacySkillTiers {
		if skill >= tier.min {
			return skill, tier.name
		}
	}
	return skill, "Novice"
}
