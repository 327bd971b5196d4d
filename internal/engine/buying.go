package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/talgya/tradewinds/internal/cargo"
	"github.com/talgya/tradewinds/internal/economy"
	"github.com/talgya/tradewinds/internal/entropy"
	"github.com/talgya/tradewinds/internal/settlement"
)

// TradeOptions adjust one transaction attempt.
type TradeOptions struct {
	// AllowDesperation enables the penalized reroll after a failed
	// availability check.
	AllowDesperation bool

	// PartialPurchase marks the buyer as taking less than the full lot.
	PartialPurchase bool

	// Haggle, when set, is applied as the final price modifier.
	Haggle economy.HaggleOutcome

	// Quality defaults to average when empty.
	Quality cargo.QualityTier

	// Percentile overrides the skill percentile draw when positive.
	Percentile float64
}

// TradeAttempt is the full record of one end-to-end transaction attempt.
type TradeAttempt struct {
	Settlement  string              `json:"settlement"`
	Region      string              `json:"region"`
	Season      cargo.Season        `json:"season"`
	Merchant    Merchant            `json:"merchant"`
	Equilibrium economy.Equilibrium `json:"equilibrium"`
	Selection   Selection           `json:"selection"`

	Availability AvailabilityResult  `json:"availability"`
	Desperation  *AvailabilityResult `json:"desperation,omitempty"`
	Size         *SizeResult         `json:"size,omitempty"`

	// Candidates is the weighted table of cargo this settlement could have
	// offered this season, for odds analysis alongside the actual draw.
	Candidates *CandidateTable `json:"candidates,omitempty"`
}

// Orchestrator composes the calculators into one call graph per trade
// attempt. Stateless between attempts; all randomness flows through the
// injected source.
type Orchestrator struct {
	Catalog     cargo.Catalog
	Source      entropy.Source
	Equilibrium economy.EquilibriumCalculator
	Prices      economy.PriceCalculator
	Selector    CargoTypeSelector
	Candidates  CandidateTableBuilder
}

// NewOrchestrator wires an orchestrator over one catalog and one source.
func NewOrchestrator(catalog cargo.Catalog, src entropy.Source) *Orchestrator {
	return &Orchestrator{
		Catalog:     catalog,
		Source:      src,
		Equilibrium: economy.EquilibriumCalculator{Catalog: catalog},
		Prices:      economy.PriceCalculator{Catalog: catalog},
		Selector:    CargoTypeSelector{Catalog: catalog},
		Candidates:  CandidateTableBuilder{Catalog: catalog},
	}
}

// AttemptTrade runs one transaction attempt end to end: availability gate,
// optional desperation reroll, cargo selection, equilibrium, quantity,
// skill, and the price pipeline.
func (o *Orchestrator) AttemptTrade(s *settlement.Settlement, season cargo.Season, opts TradeOptions) (TradeAttempt, error) {
	if err := s.Validate(); err != nil {
		return TradeAttempt{}, err
	}
	if !season.Valid() {
		return TradeAttempt{}, fmt.Errorf("season %d: %w", season, cargo.ErrInvalidArgument)
	}

	attempt := TradeAttempt{
		Settlement: s.Name,
		Region:     s.Region,
		Season:     season,
		Merchant: Merchant{
			ID:           uuid.NewString(),
			Personality:  DrawPersonality(o.Source),
			Availability: AvailabilityPending,
		},
	}

	desperate := false
	attempt.Availability = CheckAvailability(s, o.Source)
	if attempt.Availability.Available {
		attempt.Merchant.Availability = AvailabilityAvailable
	} else {
		attempt.Merchant.Availability = AvailabilityUnavailable
		if !opts.AllowDesperation {
			return attempt, nil
		}
		reroll := CheckDesperation(s, o.Source)
		attempt.Desperation = &reroll
		if !reroll.Available {
			attempt.Merchant.Availability = AvailabilityDesperateUnavailable
			return attempt, nil
		}
		attempt.Merchant.Availability = AvailabilityDesperateAvailable
		desperate = true
	}

	sel, err := o.Selector.Select(s, season, o.Source)
	if err != nil {
		return TradeAttempt{}, err
	}
	attempt.Selection = sel
	attempt.Merchant.Cargo = sel.Cargo

	table, err := o.Candidates.Build(s, season)
	if err != nil {
		return TradeAttempt{}, err
	}
	attempt.Candidates = &table

	attempt.Equilibrium = o.Equilibrium.Compute(s, sel.Cargo)
	if attempt.Equilibrium.State == economy.StateBlocked {
		// A blocked market trumps the dice gate; nobody is moving this
		// cargo here.
		attempt.Merchant.Availability = AvailabilityUnavailable
		slog.Debug("trade blocked by equilibrium",
			"settlement", s.Name, "cargo", sel.Cargo,
			"supply", attempt.Equilibrium.Supply, "demand", attempt.Equilibrium.Demand)
		return attempt, nil
	}

	// Seekers outnumber producers where demand outweighs supply.
	if attempt.Equilibrium.Demand > attempt.Equilibrium.Supply {
		attempt.Merchant.Role = RoleSeeker
	} else {
		attempt.Merchant.Role = RoleProducer
	}

	size := CalculateCargoSize(s, o.Source)
	attempt.Size = &size
	attempt.Merchant.QuantityEP = size.TotalSize

	percentile := opts.Percentile
	if percentile <= 0 {
		percentile = DrawPercentile(o.Source)
	}
	skill, err := GenerateSkill(s, percentile, o.Source)
	if err != nil {
		return TradeAttempt{}, err
	}
	attempt.Merchant.Skill = skill

	if desperate {
		p := StandardDesperationPenalties
		attempt.Merchant.QuantityEP = int(math.Floor(float64(attempt.Merchant.QuantityEP) * p.QuantityFactor))
		attempt.Merchant.Skill = int(math.Round(float64(attempt.Merchant.Skill) * p.SkillFactor))
		if attempt.Merchant.Skill < SkillMin {
			attempt.Merchant.Skill = SkillMin
		}
	}

	// Unrecognized cargo has no catalog price; the record stays priceless
	// and the GM adjudicates.
	if sel.Recognized && attempt.Merchant.QuantityEP > 0 {
		breakdown, err := o.Prices.Calculate(sel.Cargo, season, attempt.Merchant.QuantityEP, economy.PriceOptions{
			Quality:         opts.Quality,
			PartialPurchase: opts.PartialPurchase,
			Desperation:     desperate,
		})
		if err != nil {
			return TradeAttempt{}, err
		}
		if opts.Haggle != "" {
			breakdown, err = economy.ApplyHaggle(breakdown, opts.Haggle)
			if err != nil {
				return TradeAttempt{}, err
			}
		}
		attempt.Merchant.Price = &breakdown
	}

	return attempt, nil
}

// GenerateMerchants runs one trade attempt per merchant slot. Attempts are
// independent; order matters only through the shared source.
func (o *Orchestrator) GenerateMerchants(s *settlement.Settlement, season cargo.Season, opts TradeOptions) ([]TradeAttempt, error) {
	slots := MerchantSlots(s)
	attempts := make([]TradeAttempt, 0, slots)
	for i := 0; i < slots; i++ {
		attempt, err := o.AttemptTrade(s, season, opts)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	slog.Debug("merchant slate generated",
		"settlement", s.Name, "season", season.String(), "slots", slots)
	return attempts, nil
}
