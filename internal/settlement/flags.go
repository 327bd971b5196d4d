package settlement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talgya/tradewinds/internal/cargo"
)

// Flag is a settlement trait that biases trade behavior. Flags form a closed
// enumeration; effect tables over them live with the calculators that apply
// them, keyed by these constants.
type Flag string

const (
	FlagTrade       Flag = "trade"
	FlagAgriculture Flag = "agriculture"
	FlagMine        Flag = "mine"
	FlagGovernment  Flag = "government"
	FlagSmuggling   Flag = "smuggling"
	FlagSubsistence Flag = "subsistence"
)

// AllFlags lists every defined flag, in name order.
var AllFlags = []Flag{
	FlagAgriculture,
	FlagGovernment,
	FlagMine,
	FlagSmuggling,
	FlagSubsistence,
	FlagTrade,
}

// Valid reports whether f is a defined flag.
func (f Flag) Valid() bool {
	for _, known := range AllFlags {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFlag converts a flag name (any case) to a Flag.
func ParseFlag(name string) (Flag, error) {
	f := Flag(strings.ToLower(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", fmt.Errorf("flag %q: %w", name, cargo.ErrInvalidArgument)
	}
	return f, nil
}

// SortedFlags returns the settlement's flags in name order. Flag effects are
// applied in this order so combinations stay deterministic.
func (s *Settlement) SortedFlags() []Flag {
	out := make([]Flag, len(s.Flags))
	copy(out, s.Flags)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasFlag reports whether the settlement carries the given flag.
func (s *Settlement) HasFlag(f Flag) bool {
	for _, have := range s.Flags {
		if have == f {
			return true
		}
	}
	return false
}
