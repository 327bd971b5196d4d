// Package settlement provides the settlement data model: size and wealth
// ordinals, production/demand tags, flags, and garrison records.
package settlement

import (
	"fmt"
	"strings"

	"github.com/talgya/tradewinds/internal/cargo"
)

// TradeTag is the production tag that marks a settlement as a trade center.
const TradeTag = "Trade"

// Garrison holds structured troop counts for a settlement.
type Garrison struct {
	Infantry int `json:"infantry" yaml:"infantry"`
	Archers  int `json:"archers" yaml:"archers"`
	Cavalry  int `json:"cavalry" yaml:"cavalry"`
	Siege    int `json:"siege" yaml:"siege"`
}

// Total returns the full troop count.
func (g Garrison) Total() int {
	return g.Infantry + g.Archers + g.Cavalry + g.Siege
}

// Settlement is a population center participating in regional trade.
// Reference data; loaded once per session and never mutated by the core.
type Settlement struct {
	Region string `json:"region" yaml:"region"`
	Name   string `json:"name" yaml:"name"`

	// Size and wealth are ordinals in [1,5].
	Size   int `json:"size" yaml:"size"`
	Wealth int `json:"wealth" yaml:"wealth"`

	Population int `json:"population" yaml:"population"`

	// Production and demand tags are cargo categories, or the literal
	// "Trade" tag for production. Tag order is meaningful: the first
	// production tag is the settlement's primary good.
	Production []string `json:"production" yaml:"production"`
	Demand     []string `json:"demand" yaml:"demand"`

	Flags []Flag `json:"flags" yaml:"flags"`

	Garrison Garrison `json:"garrison" yaml:"garrison"`
	Notes    string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Validate checks the fields the trading core requires.
func (s *Settlement) Validate() error {
	if s == nil {
		return fmt.Errorf("settlement is nil: %w", cargo.ErrConfigurationMissing)
	}
	if s.Name == "" {
		return fmt.Errorf("settlement name: %w", cargo.ErrConfigurationMissing)
	}
	if s.Size < 1 || s.Size > 5 {
		return fmt.Errorf("settlement %s size %d outside [1,5]: %w", s.Name, s.Size, cargo.ErrConfigurationMissing)
	}
	if s.Wealth < 1 || s.Wealth > 5 {
		return fmt.Errorf("settlement %s wealth %d outside [1,5]: %w", s.Name, s.Wealth, cargo.ErrConfigurationMissing)
	}
	if s.Population < 0 {
		return fmt.Errorf("settlement %s population %d negative: %w", s.Name, s.Population, cargo.ErrConfigurationMissing)
	}
	for _, f := range s.Flags {
		if !f.Valid() {
			return fmt.Errorf("settlement %s flag %q: %w", s.Name, f, cargo.ErrConfigurationMissing)
		}
	}
	return nil
}

// IsTradeCenter reports whether the production tags include "Trade".
func (s *Settlement) IsTradeCenter() bool {
	for _, tag := range s.Production {
		if tag == TradeTag {
			return true
		}
	}
	return false
}

// Produces reports whether the settlement's production tags include the
// given cargo category.
func (s *Settlement) Produces(category string) bool {
	for _, tag := range s.Production {
		if tag == category {
			return true
		}
	}
	return false
}

// Demands reports whether the settlement's demand tags include the given
// cargo category.
func (s *Settlement) Demands(category string) bool {
	for _, tag := range s.Demand {
		if tag == category {
			return true
		}
	}
	return false
}

// SpecificGoods returns the production tags excluding "Trade", in tag order.
func (s *Settlement) SpecificGoods() []string {
	var out []string
	for _, tag := range s.Production {
		if tag != TradeTag {
			out = append(out, tag)
		}
	}
	return out
}

// ParseSizeCode converts a legacy letter code (V, ST, T, C, CS) to a size
// ordinal. CS settlements share the city ordinal.
func ParseSizeCode(code string) (int, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "V":
		return 1, nil
	case "ST":
		return 2, nil
	case "T":
		return 3, nil
	case "C":
		return 4, nil
	case "CS":
		return 4, nil
	default:
		return 0, fmt.Errorf("size code %q: %w", code, cargo.ErrInvalidArgument)
	}
}

// SizeCode returns the legacy letter code for a size ordinal.
func SizeCode(size int) string {
	switch size {
	case 1:
		return "V"
	case 2:
		return "ST"
	case 3:
		return "T"
	case 4:
		return "C"
	case 5:
		return "CS"
	default:
		return "?"
	}
}
