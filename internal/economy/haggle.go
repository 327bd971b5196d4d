package economy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/talgya/tradewinds/internal/cargo"
)

// HaggleOutcome is the table result of a negotiation attempt.
type HaggleOutcome string

const (
	// HaggleSuccess: the buyer talked the price down.
	HaggleSuccess HaggleOutcome = "success"
	// HaggleSuccessTalent: success backed by a haggling talent.
	HaggleSuccessTalent HaggleOutcome = "success_talent"
	// HaggleFailure: no movement either way.
	HaggleFailure HaggleOutcome = "failure"
	// HaggleFailurePenalty: the GM elected to punish a botched haggle.
	HaggleFailurePenalty HaggleOutcome = "failure_penalty"
)

// hagglePercents maps outcomes to signed percentages against the running
// price.
var hagglePercents = map[HaggleOutcome]struct {
	percent int64
	desc    string
}{
	HaggleSuccess:        {-10, "haggle succeeded"},
	HaggleSuccessTalent:  {-20, "haggle succeeded with talent"},
	HaggleFailure:        {0, "haggle failed"},
	HaggleFailurePenalty: {10, "haggle failed, penalty applied"},
}

// ApplyHaggle appends the haggle outcome to an existing breakdown. The
// haggle percentage applies to the running price after all earlier
// modifiers, so composition stays multiplicative.
func ApplyHaggle(b Breakdown, outcome HaggleOutcome) (Breakdown, error) {
	entry, ok := hagglePercents[outcome]
	if !ok {
		return Breakdown{}, fmt.Errorf("haggle outcome %q: %w", outcome, cargo.ErrInvalidArgument)
	}
	return b.withModifier(ModifierHaggle, entry.desc, decimal.NewFromInt(entry.percent)), nil
}
