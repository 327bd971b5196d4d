// Package economy provides supply/demand equilibrium derivation and the
// price pipeline for one settlement/cargo pair.
package economy

import (
	"errors"
	"math"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/settlement"
)

// Equilibrium bounds. Supply and demand always sum to EquilibriumTotal
// unless a clamp boundary is hit.
const (
	EquilibriumTotal   = 200
	EquilibriumFloor   = 5
	EquilibriumCeiling = 195
)

// Transfer fractions for tag alignment.
const (
	productionTransfer = 0.50 // fraction of demand moved to supply
	demandTransfer     = 0.35 // fraction of supply moved to demand
)

// EquilibriumState labels the derived balance.
type EquilibriumState string

const (
	StateBlocked       EquilibriumState = "blocked"
	StateDesperate     EquilibriumState = "desperate"
	StateOversupplied  EquilibriumState = "oversupplied"
	StateUndersupplied EquilibriumState = "undersupplied"
	StateBalanced      EquilibriumState = "balanced"
)

// Equilibrium is the 200-point supply/demand balance for one cargo type at
// one settlement. Computed fresh per trade attempt.
type Equilibrium struct {
	Supply int              `json:"supply"`
	Demand int              `json:"demand"`
	State  EquilibriumState `json:"state"`
}

// flagTransfer is one flag's one-directional transfer effect.
type flagTransfer struct {
	toSupply bool
	fraction float64
}

// Flag effect table for equilibrium. Flags absent here contribute nothing.
var equilibriumFlagEffects = map[settlement.Flag]flagTransfer{
	settlement.FlagTrade:       {toSupply: true, fraction: 0.20},
	settlement.FlagAgriculture: {toSupply: true, fraction: 0.15},
	settlement.FlagMine:        {toSupply: true, fraction: 0.15},
	settlement.FlagGovernment:  {toSupply: false, fraction: 0.20},
	settlement.FlagSmuggling:   {toSupply: true, fraction: 0.10},
}

// EquilibriumCalculator derives supply/demand balance from settlement tags
// and flags. The catalog resolves cargo names to categories; unknown names
// fall back to matching the raw name against the tags.
type EquilibriumCalculator struct {
	Catalog cargo.Catalog
}

// Compute derives the equilibrium for one cargo at one settlement. Starts
// both sides at 100 and applies tag transfers, then flag transfers in
// flag-name order. Both sides are clamped after every transfer so the
// invariant holds stepwise, not just at the end.
func (c EquilibriumCalculator) Compute(s *settlement.Settlement, cargoName string) Equilibrium {
	category := cargoName
	if c.Catalog != nil {
		if ct, err := c.Catalog.Get(cargoName); err == nil {
			category = ct.Category
		} else if !errors.Is(err, cargo.ErrNotFound) {
			// Catalog failures other than NotFound still degrade to the
			// raw name; equilibrium has no error path.
			category = cargoName
		}
	}

	supply, demand := 100.0, 100.0
	clamped := false

	if s.Produces(category) || s.Produces(cargoName) {
		clamped = transfer(&demand, &supply, productionTransfer) || clamped
	}
	if s.Demands(category) || s.Demands(cargoName) {
		clamped = transfer(&supply, &demand, demandTransfer) || clamped
	}

	for _, f := range s.SortedFlags() {
		effect, ok := equilibriumFlagEffects[f]
		if !ok {
			continue
		}
		if effect.toSupply {
			clamped = transfer(&demand, &supply, effect.fraction) || clamped
		} else {
			clamped = transfer(&supply, &demand, effect.fraction) || clamped
		}
	}

	eq := Equilibrium{Supply: int(math.Round(supply))}
	if clamped {
		eq.Demand = clampEquilibrium(int(math.Round(demand)))
		eq.Supply = clampEquilibrium(eq.Supply)
	} else {
		// Rounding must not break the 200-point invariant.
		eq.Demand = EquilibriumTotal - eq.Supply
	}
	eq.State = deriveState(eq.Supply, eq.Demand)
	return eq
}

// transfer moves fraction of *from into *to, clamping both sides. Reports
// whether a clamp boundary was hit.
func transfer(from, to *float64, fraction float64) bool {
	amount := *from * fraction
	*from -= amount
	*to += amount

	clamped := false
	if *from < EquilibriumFloor {
		*from = EquilibriumFloor
		clamped = true
	}
	if *to > EquilibriumCeiling {
		*to = EquilibriumCeiling
		clamped = true
	}
	return clamped
}

func clampEquilibrium(v int) int {
	if v < EquilibriumFloor {
		return EquilibriumFloor
	}
	if v > EquilibriumCeiling {
		return EquilibriumCeiling
	}
	return v
}

// deriveState labels the balance. Blocked outranks desperate, which
// outranks the ratio labels.
func deriveState(supply, demand int) EquilibriumState {
	if supply <= 10 || demand <= 10 {
		return StateBlocked
	}
	if supply <= 20 || demand <= 20 {
		return StateDesperate
	}
	ratio := float64(supply) / float64(demand)
	if ratio > 2.0 {
		return StateOversupplied
	}
	if ratio < 0.5 {
		return StateUndersupplied
	}
	return StateBalanced
}
