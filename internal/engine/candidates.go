package engine

import (
	"fmt"
	"math"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

// Candidate weight bonuses.
const (
	productionAlignmentBonus = 25
	demandAlignmentBonus     = 10
	minCandidateWeight       = 1
)

// candidateFlagBonuses adds weight for flag/category affinity. The trade
// flag widens everything a little; the others favor their own categories.
var candidateFlagBonuses = map[settlement.Flag]map[string]int{
	settlement.FlagAgriculture: {cargo.CategoryAgriculture: 10},
	settlement.FlagMine:        {cargo.CategoryMining: 10},
	settlement.FlagSmuggling:   {cargo.CategoryLuxury: 10},
	settlement.FlagTrade:       {"": 5},
}

// Candidate is one weighted entry in the eligible-cargo table, with the
// reasons that produced its weight.
type Candidate struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Weight   int      `json:"weight"`
	Reasons  []string `json:"reasons"`
}

// CandidateTable is the weighted list of cargo a settlement could offer in
// one season. Drives weighted draws and probability analytics; it renders
// nothing itself.
type CandidateTable struct {
	Season      cargo.Season `json:"season"`
	Entries     []Candidate  `json:"entries"`
	TotalWeight int          `json:"total_weight"`
}

// CandidateTableBuilder builds candidate tables from the catalog.
type CandidateTableBuilder struct {
	Catalog cargo.Catalog
}

// Build covers every catalog cargo type with a weight derived from the
// seasonal base price, production/demand alignment, and flag bonuses.
func (b CandidateTableBuilder) Build(s *settlement.Settlement, season cargo.Season) (CandidateTable, error) {
	if !season.Valid() {
		return CandidateTable{}, fmt.Errorf("season %d: %w", season, cargo.ErrInvalidArgument)
	}
	all := b.Catalog.ListAll()
	if len(all) == 0 {
		return CandidateTable{}, fmt.Errorf("cargo catalog empty: %w", cargo.ErrConfigurationMissing)
	}

	table := CandidateTable{Season: season}
	for _, ct := range all {
		c := Candidate{Name: ct.Name, Category: ct.Category}

		// Cheap goods move in bulk; weight starts high for them and
		// shrinks as the seasonal price climbs.
		price := ct.Prices.For(season)
		c.Weight = 30 - int(math.Round(price))
		c.Reasons = append(c.Reasons, fmt.Sprintf("seasonal base price %.1f", price))

		if s.Produces(ct.Category) {
			c.Weight += productionAlignmentBonus
			c.Reasons = append(c.Reasons, "produced locally")
		}
		if s.Demands(ct.Category) {
			c.Weight += demandAlignmentBonus
			c.Reasons = append(c.Reasons, "local demand draws sellers")
		}

		for _, f := range s.SortedFlags() {
			bonuses, ok := candidateFlagBonuses[f]
			if !ok {
				continue
			}
			if bonus, ok := bonuses[ct.Category]; ok {
				c.Weight += bonus
				c.Reasons = append(c.Reasons, fmt.Sprintf("%s flag favors %s", f, ct.Category))
			}
			if bonus, ok := bonuses[""]; ok {
				c.Weight += bonus
				c.Reasons = append(c.Reasons, fmt.Sprintf("%s flag widens the market", f))
			}
		}

		if c.Weight < minCandidateWeight {
			c.Weight = minCandidateWeight
		}
		table.Entries = append(table.Entries, c)
		table.TotalWeight += c.Weight
	}
	return table, nil
}

// Draw picks one candidate, weighted by table weights.
func (t CandidateTable) Draw(src entropy.Source) (Candidate, error) {
	if t.TotalWeight <= 0 || len(t.Entries) == 0 {
		return Candidate{}, fmt.Errorf("empty candidate table: %w", cargo.ErrConfigurationMissing)
	}
	pick := int(src.Float() * float64(t.TotalWeight))
	for _, c := range t.Entries {
		pick -= c.Weight
		if pick < 0 {
			return c, nil
		}
	}
	return t.Entries[len(t.Entries)-1], nil
}

// Probability returns one candidate's share of the total weight.
func (t CandidateTable) Probability(name string) float64 {
	if t.TotalWeight == 0 {
		return 0
	}
	for _, c := range t.Entries {
		if c.Name == name {
			return float64(c.Weight) / float64(t.TotalWeight)
		}
	}
	return 0
}
