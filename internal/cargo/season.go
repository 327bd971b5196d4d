// Package cargo provides the cargo-type reference data: seasonal base prices,
// quality tiers, the catalog contract, and the fixed seasonal roll tables.
package cargo

import (
	"fmt"
	"strings"
)

// Season indexes the four trading seasons. The zero value is not a season;
// every seasonal operation rejects it so a forgotten season fails fast
// instead of silently trading in spring.
type Season uint8

const (
	SeasonSpring Season = iota + 1
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

// Seasons lists all seasons in calendar order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// Valid reports whether s is one of the four defined seasons.
func (s Season) Valid() bool {
	return s >= SeasonSpring && s <= SeasonWinter
}

// String returns a human-readable season name.
func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	case SeasonWinter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// ParseSeason converts a season name (any case) to a Season.
func ParseSeason(name string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "autumn", "fall":
		return SeasonAutumn, nil
	case "winter":
		return SeasonWinter, nil
	default:
		return 0, fmt.Errorf("season %q: %w", name, ErrInvalidArgument)
	}
}
